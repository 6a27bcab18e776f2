package providers

import (
	"pitwall/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncRecordsGenerated(source string)
	IncAuthAttempts(op string, outcome string)
	SetActiveSessions(count int)
	SetActiveDashboards(count int)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	recordsGenerated *prometheus.CounterVec
	authAttempts     *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	activeDashboards prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncRecordsGenerated(source string) {
	m.recordsGenerated.WithLabelValues(source).Inc()
}

func (m *MetricsProvider) IncAuthAttempts(op string, outcome string) {
	m.authAttempts.WithLabelValues(op, outcome).Inc()
}

func (m *MetricsProvider) SetActiveSessions(count int) {
	m.activeSessions.Set(float64(count))
}

func (m *MetricsProvider) SetActiveDashboards(count int) {
	m.activeDashboards.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pitwall_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pitwall_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pitwall_cache_hits_total",
			Help: "Total number of feed cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pitwall_cache_misses_total",
			Help: "Total number of feed cache misses",
		}),

		recordsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pitwall_records_generated_total",
			Help: "Stat records appended to dashboard feeds",
		}, []string{"source"}),

		authAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pitwall_auth_attempts_total",
			Help: "Sign-in and sign-up attempts by outcome",
		}, []string{"op", "outcome"}),

		activeSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pitwall_sessions_active",
			Help: "Number of live viewer sessions",
		}),

		activeDashboards: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pitwall_dashboards_active",
			Help: "Number of sessions with a running feed generator",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncRecordsGenerated(_ string)                     {}
func (n *noopMetrics) IncAuthAttempts(_ string, _ string)               {}
func (n *noopMetrics) SetActiveSessions(_ int)                          {}
func (n *noopMetrics) SetActiveDashboards(_ int)                        {}
