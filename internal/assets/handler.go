package assets

import (
	"log/slog"
	"net/http"

	"blast-annotator/internal/platform/metrics"
	"blast-annotator/internal/web"
)

// Handler serves the blast library page.
type Handler struct {
	scanner  *Scanner
	log      *slog.Logger
	metrics  *metrics.Metrics
	renderer *web.Renderer
}

// NewHandler returns a Handler that lists blasts discovered by scanner.
// Metrics may be nil to disable metric recording (e.g. in tests).
func NewHandler(scanner *Scanner, log *slog.Logger, m *metrics.Metrics, renderer *web.Renderer) *Handler {
	return &Handler{scanner: scanner, log: log, metrics: m, renderer: renderer}
}

// ListVideos handles GET /videos. A scan failure is a server error, not an
// empty page: "no blasts yet" and "misconfigured deployment" must stay
// distinguishable.
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	blasts, err := h.scanner.Scan()
	if err != nil {
		h.log.Error("blast scan failed", slog.String("error", err.Error()))
		http.Error(w, "failed to scan blast directory", http.StatusInternalServerError)
		return
	}
	if h.metrics != nil {
		h.metrics.IncAssetScans()
	}

	h.log.Debug("blast scan complete", slog.Int("blasts", len(blasts)))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.VideosPage(w, blasts); err != nil {
		h.log.Error("render videos failed", slog.String("error", err.Error()))
	}
}
