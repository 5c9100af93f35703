package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blast-annotator/internal/annotator"
	"blast-annotator/internal/assets"
	"blast-annotator/internal/platform/config"
	"blast-annotator/internal/platform/logger"
	"blast-annotator/internal/platform/metrics"
	"blast-annotator/internal/web"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	port := config.GetEnv("PORT", "8080")
	logLevel := config.GetEnv("LOG_LEVEL", "info")
	logFormat := config.GetEnv("LOG_FORMAT", "json")
	staticDir := config.GetEnv("STATIC_DIR", "static")
	blastsDir := config.BlastsDir(staticDir)
	defaultVideoID := config.GetEnv("DEFAULT_VIDEO_ID", "static/328_109.MP4")

	log := logger.New(logLevel, logFormat)

	repo := annotator.NewInMemoryRepository()
	svc := annotator.NewService(repo)
	met := metrics.New()
	renderer := web.NewRenderer()

	ah := annotator.NewHandler(svc, log, met, renderer, defaultVideoID)
	scanner := assets.NewScanner(blastsDir, "/static/blasts")
	vh := assets.NewHandler(scanner, log, met, renderer)

	r := chi.NewRouter()
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		met.Handler(func() { met.SetTrackedVideos(repo.VideoCount()) }).ServeHTTP(w, req)
	})
	r.Get("/", ah.Index)
	r.Post("/save_annotation", ah.SaveAnnotation)
	r.Get("/get_annotations", ah.GetAnnotations)
	r.Post("/set_critical_moment", ah.SetCriticalMoment)
	r.Get("/get_critical_moment", ah.GetCriticalMoment)
	r.Get("/review_annotations", ah.ReviewAnnotations)
	r.Get("/videos", vh.ListVideos)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	addr := ":" + port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", port,
		"blasts_dir", blastsDir,
		"default_video_id", defaultVideoID,
		"log_level", logLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
