package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus metrics for the submission pipeline.
type Metrics struct {
	SubmissionsTotal   *prometheus.CounterVec
	StageFailures      *prometheus.CounterVec
	SubmissionDuration prometheus.Histogram
	StagedBytes        prometheus.Histogram
	HistoryFetches     prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics on the default
// registry, served at /metrics.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the pipeline metrics on reg. Tests pass a fresh
// registry so repeated construction does not collide.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_whisper_submissions_total",
			Help: "Total number of audio submissions by outcome",
		}, []string{"outcome"}),
		StageFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lecture_whisper_stage_failures_total",
			Help: "Total number of pipeline failures by stage",
		}, []string{"stage"}),
		SubmissionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lecture_whisper_submission_duration_seconds",
			Help:    "End-to-end submission duration including both remote calls",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		StagedBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lecture_whisper_staged_bytes",
			Help:    "Size of staged audio uploads in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		}),
		HistoryFetches: factory.NewCounter(prometheus.CounterOpts{
			Name: "lecture_whisper_history_fetches_total",
			Help: "Total number of history fetch requests",
		}),
	}
}
