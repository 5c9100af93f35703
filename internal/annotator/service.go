package annotator

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TimestampFormat is the fixed human-readable format for server-assigned
// annotation timestamps. Timestamps are always UTC.
const TimestampFormat = "2006-01-02 15:04:05"

// ValidationError reports a missing or malformed request field. Handlers
// surface it to the caller as a 400 with the message; anything else is a
// server error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Service applies request validation and type coercion, and delegates
// storage to Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService returns a Service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SaveAnnotation validates and stores one annotation payload for a video.
// The payload's "time" value may arrive as a JSON number or a numeric
// string; it is coerced to a finite float before storage. The stored
// annotation gets a server-assigned id and UTC timestamp and is returned so
// the caller sees exactly what was persisted. The store is untouched on
// validation failure.
func (s *Service) SaveAnnotation(id VideoID, payload map[string]any) (Annotation, error) {
	if id == "" {
		return Annotation{}, validationErrorf("No video_id provided")
	}

	seconds, err := coerceFloat(payload["time"])
	if err != nil {
		return Annotation{}, validationErrorf("invalid time value: %v", payload["time"])
	}

	a := Annotation{
		ID:        uuid.NewString(),
		Time:      seconds,
		Timestamp: s.now().UTC().Format(TimestampFormat),
	}
	if v, ok := payload["comment"].(string); ok {
		a.Comment = v
	}
	if v, ok := payload["user"].(string); ok {
		a.User = v
	}
	for k, v := range payload {
		if coreFields[k] {
			continue
		}
		if a.Extra == nil {
			a.Extra = make(map[string]any)
		}
		a.Extra[k] = v
	}

	s.repo.AppendAnnotation(id, a)
	return a, nil
}

// Annotations returns the video's annotations in insertion order; an empty
// slice for an unknown id. Never fails.
func (s *Service) Annotations(id VideoID) []Annotation {
	return s.repo.Annotations(id)
}

// SetCriticalMoment validates and stores the auto-seek time for a video,
// overwriting any previous value.
func (s *Service) SetCriticalMoment(id VideoID, value any) (float64, error) {
	if id == "" {
		return 0, validationErrorf("No video_id provided")
	}

	seconds, err := coerceFloat(value)
	if err != nil {
		return 0, validationErrorf("invalid critical_moment value: %v", value)
	}

	s.repo.SetCriticalMoment(id, seconds)
	return seconds, nil
}

// CriticalMoment returns the stored critical moment, or nil when the video
// is unknown or no critical moment has been set. Never fails.
func (s *Service) CriticalMoment(id VideoID) *float64 {
	seconds, ok := s.repo.CriticalMoment(id)
	if !ok {
		return nil
	}
	return &seconds
}

// ReviewResult is the inspection view returned by Review: the video id plus
// every stored annotation, so differing users' entries can be compared
// side by side.
type ReviewResult struct {
	VideoID     VideoID      `json:"video_id"`
	Annotations []Annotation `json:"annotations"`
}

// Review returns all annotations for a video for manual inspection. The ok
// return is false when the video has no stored state at all.
func (s *Service) Review(id VideoID) (ReviewResult, bool) {
	if id == "" {
		return ReviewResult{}, false
	}
	annotations := s.repo.Annotations(id)
	if len(annotations) == 0 && s.CriticalMoment(id) == nil {
		return ReviewResult{}, false
	}
	return ReviewResult{VideoID: id, Annotations: annotations}, true
}

// coerceFloat converts a JSON-decoded value to a finite float64. Numbers
// pass through; numeric strings are parsed. NaN and infinities are rejected
// so stored values are always finite.
func coerceFloat(v any) (float64, error) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %v is not finite", f)
	}
	return f, nil
}
