package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
	"sync"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	DocumentsRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_documents_rendered_total",
			Help: "Total number of rendered or generated documents by layout.",
		},
		[]string{"layout"},
	)
	QuickEdits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_quick_edits_total",
			Help: "Total number of quick edits by field and whether they changed the document.",
		},
		[]string{"field", "applied"},
	)
	AIGenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cv_ai_generation_duration_seconds",
			Help:    "Duration of each tailored document generation in seconds.",
			Buckets: []float64{1, 5, 15, 30, 60, 120},
		},
	)
	DraftsCleaned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cv_drafts_cleaned_total",
			Help: "Total number of removed stale drafts.",
		},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(DocumentsRendered)
		prometheus.MustRegister(QuickEdits)
		prometheus.MustRegister(AIGenerationDuration)
		prometheus.MustRegister(DraftsCleaned)
	})
}

// StartMetricsServer serves /metrics on address. An empty address disables it.
func StartMetricsServer(address string) {
	if address == "" {
		return
	}
	Register()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(address, mux))
	}()
	log.Infof("metrics server listening on %s", address)
}
