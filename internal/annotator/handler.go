package annotator

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blast-annotator/internal/platform/metrics"
	"blast-annotator/internal/web"
)

const jsonContentType = "application/json; charset=utf-8"

// Handler exposes the annotation HTTP endpoints using go-chi.
type Handler struct {
	svc            *Service
	log            *slog.Logger
	metrics        *metrics.Metrics
	renderer       *web.Renderer
	defaultVideoID string
}

// NewHandler returns a Handler that uses the given Service, Logger, and optional
// Metrics. defaultVideoID parameterizes the index page. Metrics may be nil to
// disable metric recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics, renderer *web.Renderer, defaultVideoID string) *Handler {
	return &Handler{svc: svc, log: log, metrics: m, renderer: renderer, defaultVideoID: defaultVideoID}
}

// Index handles GET /. It renders the annotation page for the configured
// default video.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.IndexPage(w, h.defaultVideoID); err != nil {
		h.log.Error("render index failed", slog.String("error", err.Error()))
	}
}

// SaveAnnotation handles POST /save_annotation.
// Body: { "video_id": "blast_demo_001", "time": "12.34", "comment": "...", "user": "Alice", ... }.
// Unrecognized fields are preserved on the stored annotation.
func (h *Handler) SaveAnnotation(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.log.Debug("invalid annotation body", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	videoID, _ := payload["video_id"].(string)

	stored, err := h.svc.SaveAnnotation(VideoID(videoID), payload)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.log.Info("annotation rejected",
				slog.String("video_id", videoID),
				slog.String("error", verr.Message))
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		h.log.Error("save annotation failed", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Debug("annotation saved",
		slog.String("video_id", videoID),
		slog.Float64("time", stored.Time),
		slog.String("user", stored.User))
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": stored})
	if h.metrics != nil {
		h.metrics.IncAnnotationsSaved()
	}
}

// GetAnnotations handles GET /get_annotations?video_id=. Unknown ids yield
// an empty array, never an error.
func (h *Handler) GetAnnotations(w http.ResponseWriter, r *http.Request) {
	videoID := VideoID(r.URL.Query().Get("video_id"))
	writeJSON(w, http.StatusOK, h.svc.Annotations(videoID))
}

// SetCriticalMoment handles POST /set_critical_moment.
// Body: { "video_id": "blast_demo_001", "critical_moment": 5.0 }.
func (h *Handler) SetCriticalMoment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		VideoID        string `json:"video_id"`
		CriticalMoment any    `json:"critical_moment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.log.Debug("invalid critical moment body", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	stored, err := h.svc.SetCriticalMoment(VideoID(payload.VideoID), payload.CriticalMoment)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.log.Info("critical moment rejected",
				slog.String("video_id", payload.VideoID),
				slog.String("error", verr.Message))
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		h.log.Error("set critical moment failed", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Debug("critical moment set",
		slog.String("video_id", payload.VideoID),
		slog.Float64("critical_moment", stored))
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "critical_moment": stored})
	if h.metrics != nil {
		h.metrics.IncCriticalMomentsSet()
	}
}

// GetCriticalMoment handles GET /get_critical_moment?video_id=. The value is
// null when the video is unknown or no critical moment has been set.
func (h *Handler) GetCriticalMoment(w http.ResponseWriter, r *http.Request) {
	videoID := VideoID(r.URL.Query().Get("video_id"))
	writeJSON(w, http.StatusOK, map[string]any{"critical_moment": h.svc.CriticalMoment(videoID)})
}

// ReviewAnnotations handles GET /review_annotations?video_id=. It returns the
// full annotation list for manual side-by-side inspection of multiple users'
// entries, or an explicit no-data message for unknown ids.
func (h *Handler) ReviewAnnotations(w http.ResponseWriter, r *http.Request) {
	videoID := VideoID(r.URL.Query().Get("video_id"))

	result, ok := h.svc.Review(videoID)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{
			"annotations": []Annotation{},
			"message":     "No data for this video_id",
		})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"status": "error", "message": message})
}
