package annotator

// Store is the persistence abstraction for video annotation state.
// Implementations can be in-memory, file-based, or remote.
// The Repository uses Store for all reads and writes; callers of Repository
// do not need to know which Store is used.
type Store interface {
	GetVideo(id VideoID) (*VideoRecord, bool)
	SetVideo(v *VideoRecord)
	ListVideoIDs() []VideoID
}

// InMemoryStore is an in-memory implementation of Store. Process restart
// discards everything it holds.
type InMemoryStore struct {
	videos map[VideoID]*VideoRecord
}

// NewInMemoryStore returns a new empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		videos: make(map[VideoID]*VideoRecord),
	}
}

// GetVideo implements Store.GetVideo.
func (s *InMemoryStore) GetVideo(id VideoID) (*VideoRecord, bool) {
	v, ok := s.videos[id]
	return v, ok
}

// SetVideo implements Store.SetVideo.
func (s *InMemoryStore) SetVideo(v *VideoRecord) {
	s.videos[v.ID] = v
}

// ListVideoIDs implements Store.ListVideoIDs.
func (s *InMemoryStore) ListVideoIDs() []VideoID {
	ids := make([]VideoID, 0, len(s.videos))
	for id := range s.videos {
		ids = append(ids, id)
	}
	return ids
}
