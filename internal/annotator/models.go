package annotator

import "encoding/json"

// VideoID uniquely identifies an annotated video. It is an opaque string
// chosen by the client (e.g. "blast_demo_001" or a static file path).
type VideoID string

// Annotation is a single user-submitted comment tied to a moment in a video.
// Core fields are strongly typed; any additional fields the client sends are
// preserved in Extra and flattened back into the JSON object on output, so
// clients never lose data they attached.
type Annotation struct {
	ID        string  // server-assigned
	Time      float64 // seconds into the video
	Comment   string
	User      string
	Timestamp string // server-assigned creation time, UTC, "2006-01-02 15:04:05"

	// Extra holds client-supplied fields outside the core set.
	Extra map[string]any
}

// coreFields are the JSON keys owned by Annotation itself; everything else
// lands in Extra.
var coreFields = map[string]bool{
	"id":        true,
	"time":      true,
	"comment":   true,
	"user":      true,
	"timestamp": true,
	"video_id":  true, // addressed by the request, not stored per entry
}

// MarshalJSON flattens Extra into the top-level object alongside the core
// fields.
func (a Annotation) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(a.Extra)+5)
	for k, v := range a.Extra {
		obj[k] = v
	}
	obj["id"] = a.ID
	obj["time"] = a.Time
	obj["comment"] = a.Comment
	obj["user"] = a.User
	obj["timestamp"] = a.Timestamp
	return json.Marshal(obj)
}

// UnmarshalJSON is the inverse of MarshalJSON: core keys populate the typed
// fields, the rest go to Extra. String-typed times are not coerced here;
// that happens in the service, which works on the raw payload map.
func (a *Annotation) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if v, ok := obj["id"].(string); ok {
		a.ID = v
	}
	if v, ok := obj["time"].(float64); ok {
		a.Time = v
	}
	if v, ok := obj["comment"].(string); ok {
		a.Comment = v
	}
	if v, ok := obj["user"].(string); ok {
		a.User = v
	}
	if v, ok := obj["timestamp"].(string); ok {
		a.Timestamp = v
	}
	for k, v := range obj {
		if coreFields[k] {
			continue
		}
		if a.Extra == nil {
			a.Extra = make(map[string]any)
		}
		a.Extra[k] = v
	}
	return nil
}

// VideoRecord is the top-level in-memory state for one video: its ordered
// annotation list (insertion order) and the optional critical moment used
// for auto-seeking playback.
type VideoRecord struct {
	ID             VideoID
	Annotations    []Annotation
	CriticalMoment *float64
}
