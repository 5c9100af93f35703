package annotator

import "sync"

// Repository defines the concurrency-safe contract for accessing and mutating
// in-memory video annotation state.
//
// The original deployment this replaces had no locking at all; guarding
// mutations with a mutex here is a deliberate hardening, not a transcription.
type Repository interface {
	// AppendAnnotation records an annotation for the given video, creating
	// the video record if it does not exist. Entries are immutable once
	// stored; there is no update or delete.
	AppendAnnotation(id VideoID, a Annotation)

	// Annotations returns a snapshot of the video's annotations in insertion
	// order. Unknown ids yield an empty slice, never an error.
	Annotations(id VideoID) []Annotation

	// SetCriticalMoment overwrites the video's critical moment, creating the
	// record if absent. Last write wins.
	SetCriticalMoment(id VideoID, seconds float64)

	// CriticalMoment returns the stored critical moment. The ok return is
	// false if the video is unknown or no critical moment has been set.
	CriticalMoment(id VideoID) (seconds float64, ok bool)

	// VideoCount returns the number of videos with any stored state.
	// Used for metrics.
	VideoCount() int
}

// InMemoryRepository is a concurrency-safe in-memory implementation of
// Repository. It uses a Store for persistence; by default that is an
// InMemoryStore.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store Store
}

// NewInMemoryRepository constructs a new repository with a default in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithStore(NewInMemoryStore())
}

// NewInMemoryRepositoryWithStore constructs a repository that uses the given Store.
// Useful for testing or for plugging in a different persistence backend.
func NewInMemoryRepositoryWithStore(store Store) *InMemoryRepository {
	return &InMemoryRepository{store: store}
}

// AppendAnnotation implements Repository.AppendAnnotation.
func (r *InMemoryRepository) AppendAnnotation(id VideoID, a Annotation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	video := r.getOrCreateVideoLocked(id)
	video.Annotations = append(video.Annotations, a)
}

// Annotations implements Repository.Annotations.
func (r *InMemoryRepository) Annotations(id VideoID) []Annotation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	video, exists := r.store.GetVideo(id)
	if !exists {
		return []Annotation{}
	}

	// Copy so callers never see later appends through the snapshot.
	out := make([]Annotation, len(video.Annotations))
	copy(out, video.Annotations)
	return out
}

// SetCriticalMoment implements Repository.SetCriticalMoment.
func (r *InMemoryRepository) SetCriticalMoment(id VideoID, seconds float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	video := r.getOrCreateVideoLocked(id)
	video.CriticalMoment = &seconds
}

// CriticalMoment implements Repository.CriticalMoment.
func (r *InMemoryRepository) CriticalMoment(id VideoID) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	video, exists := r.store.GetVideo(id)
	if !exists || video.CriticalMoment == nil {
		return 0, false
	}
	return *video.CriticalMoment, true
}

// VideoCount implements Repository.VideoCount.
func (r *InMemoryRepository) VideoCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.store.ListVideoIDs())
}

// getOrCreateVideoLocked returns an existing video record or creates a new
// one with an empty annotation list and no critical moment.
// Caller must hold r.mu in write mode.
func (r *InMemoryRepository) getOrCreateVideoLocked(id VideoID) *VideoRecord {
	if video, ok := r.store.GetVideo(id); ok {
		return video
	}

	video := &VideoRecord{ID: id}
	r.store.SetVideo(video)
	return video
}
