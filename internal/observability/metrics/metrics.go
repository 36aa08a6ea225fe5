// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "video_pipeline"

// Metrics holds all Prometheus metrics for the pipeline worker.
type Metrics struct {
	// Activity metrics
	ActivityExecutions *prometheus.CounterVec
	ActivityErrors     *prometheus.CounterVec
	ActivityDuration   *prometheus.HistogramVec

	// Translation metrics
	TranslationsTotal *prometheus.CounterVec

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ActivityExecutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_executions_total",
			Help:      "Total number of activity executions by outcome",
		}, []string{"activity", "status"}),
		ActivityErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_errors_total",
			Help:      "Total number of activity failures by error type",
		}, []string{"activity", "error_type"}),
		ActivityDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "activity_duration_seconds",
			Help:      "Duration of activity executions in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}, []string{"activity"}),

		TranslationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translations_total",
			Help:      "Total number of completed translations by target language",
		}, []string{"language"}),

		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordActivity records one activity execution attempt.
func (m *Metrics) RecordActivity(activity string, err error, durationSeconds float64) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.ActivityExecutions.WithLabelValues(activity, status).Inc()
	m.ActivityDuration.WithLabelValues(activity).Observe(durationSeconds)
}

// RecordActivityError records an activity failure by error type.
func (m *Metrics) RecordActivityError(activity, errorType string) {
	m.ActivityErrors.WithLabelValues(activity, errorType).Inc()
}

// RecordTranslation records a completed translation.
func (m *Metrics) RecordTranslation(lang string) {
	m.TranslationsTotal.WithLabelValues(lang).Inc()
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic).Inc()
	}
}
