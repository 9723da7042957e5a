package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Ledger
	EntriesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_entries_written_total",
			Help: "Ledger entry writes by operation and entry type",
		},
		[]string{"operation", "type"}, // create|update|delete, credit|debit
	)
	EventsPublishFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_events_publish_failed_total",
			Help: "Ledger events that could not be published",
		},
	)

	registerOnce sync.Once
)

// Register adds all collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal, RequestLatency, EntriesWritten, EventsPublishFailed)
	})
}

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}
