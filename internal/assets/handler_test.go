package assets

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blast-annotator/internal/web"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(scanner *Scanner) *chi.Mux {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	h := NewHandler(scanner, log, nil, web.NewRenderer())
	r := chi.NewRouter()
	r.Get("/videos", h.ListVideos)
	return r
}

func TestHandler_ListVideos(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "C1_328_109")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"blast.mp4", "vibration.csv", "report.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	r := newTestRouter(NewScanner(root, "/static/blasts"))
	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "C1_328_109") || !strings.Contains(body, "/static/blasts/C1_328_109/blast.mp4") {
		t.Errorf("page should list the discovered blast: %s", body)
	}
}

func TestHandler_ListVideos_missing_root(t *testing.T) {
	r := newTestRouter(NewScanner(filepath.Join(t.TempDir(), "nope"), "/static/blasts"))

	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// A missing root is a deployment problem, not an empty library.
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestHandler_ListVideos_empty_root(t *testing.T) {
	r := newTestRouter(NewScanner(t.TempDir(), "/static/blasts"))

	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No blasts found") {
		t.Errorf("empty library should render the empty state: %s", rec.Body.String())
	}
}
