// Package prometheus exposes BookLog metrics through a Prometheus registry.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for one process. Each Metrics owns its
// registry so tests can run side by side.
type Metrics struct {
	registry *prometheus.Registry

	repliesTotal    *prometheus.CounterVec
	replyDuration   *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the BookLog collectors along with the
// standard Go and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		repliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booklog_chat_replies_total",
			Help: "Total number of chat replies by intent",
		}, []string{"intent"}),
		replyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "booklog_chat_reply_duration_seconds",
			Help:    "Duration of chat replies in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"intent"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booklog_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "booklog_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.repliesTotal,
		m.replyDuration,
		m.requestsTotal,
		m.requestDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request. Path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, path string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path).Observe(d.Seconds())
}

func (m *Metrics) observeReply(intent string, d time.Duration) {
	m.repliesTotal.WithLabelValues(intent).Inc()
	m.replyDuration.WithLabelValues(intent).Observe(d.Seconds())
}
