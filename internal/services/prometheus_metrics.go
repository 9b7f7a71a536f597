package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	suggestionRequests        *prometheus.CounterVec
	suggestionDuration        prometheus.Histogram
	bulkImportsTotal          *prometheus.CounterVec
	bulkImportDuration        prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		suggestionRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "suggestion_requests_total",
				Help: "Total number of suggestion requests",
			},
			[]string{"status", "cache"},
		),
		suggestionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "suggestion_duration_seconds",
				Help:    "Suggestion lookup duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		bulkImportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bulk_imports_total",
				Help: "Total number of bulk import batches",
			},
			[]string{"status"},
		),
		bulkImportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bulk_import_duration_milliseconds",
				Help:    "Bulk import batch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "suggestion_request":
		if status != "" {
			m.suggestionRequests.WithLabelValues(status, tags["cache"]).Inc()
		}
	case "bulk_import":
		if status != "" {
			m.bulkImportsTotal.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "suggestion_lookup":
		m.suggestionDuration.Observe(duration.Seconds())
	case "bulk_import":
		m.bulkImportDuration.Observe(float64(duration.Milliseconds()))
	}
}
