package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the annotation backend.
type Metrics struct {
	registry                *prometheus.Registry
	requestsTotal           prometheus.Counter
	annotationsSavedTotal   prometheus.Counter
	criticalMomentsSetTotal prometheus.Counter
	assetScansTotal         prometheus.Counter
	trackedVideos           prometheus.Gauge
	errorsTotal             prometheus.Counter
}

// New creates and registers Prometheus metrics for the annotation backend.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blast_requests_total",
		Help: "Total number of HTTP requests received",
	})
	annotationsSavedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blast_annotations_saved_total",
		Help: "Total number of annotations successfully stored",
	})
	criticalMomentsSetTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blast_critical_moments_set_total",
		Help: "Total number of critical moment writes",
	})
	assetScansTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blast_asset_scans_total",
		Help: "Total number of blast directory scans performed",
	})
	trackedVideos := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "blast_tracked_videos",
		Help: "Number of videos with any stored annotation state",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blast_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})

	registry.MustRegister(
		requestsTotal,
		annotationsSavedTotal,
		criticalMomentsSetTotal,
		assetScansTotal,
		trackedVideos,
		errorsTotal,
	)

	return &Metrics{
		registry:                registry,
		requestsTotal:           requestsTotal,
		annotationsSavedTotal:   annotationsSavedTotal,
		criticalMomentsSetTotal: criticalMomentsSetTotal,
		assetScansTotal:         assetScansTotal,
		trackedVideos:           trackedVideos,
		errorsTotal:             errorsTotal,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncAnnotationsSaved increments the annotations saved counter.
func (m *Metrics) IncAnnotationsSaved() {
	m.annotationsSavedTotal.Inc()
}

// IncCriticalMomentsSet increments the critical moment writes counter.
func (m *Metrics) IncCriticalMomentsSet() {
	m.criticalMomentsSetTotal.Inc()
}

// IncAssetScans increments the directory scan counter.
func (m *Metrics) IncAssetScans() {
	m.assetScansTotal.Inc()
}

// SetTrackedVideos sets the tracked videos gauge.
func (m *Metrics) SetTrackedVideos(n int) {
	m.trackedVideos.Set(float64(n))
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values (e.g. tracked videos).
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
