package providers

import (
	"pitwall/internal/structures"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useFreshRegistry(t *testing.T) {
	t.Helper()
	reg := prometheus.NewRegistry()
	prevReg, prevGather := prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prevReg
		prometheus.DefaultGatherer = prevGather
	})
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncRecordsGenerated("generator")
	m.IncAuthAttempts("signin", "ok")
	m.SetActiveSessions(3)
	m.SetActiveDashboards(1)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	useFreshRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_Counters(t *testing.T) {
	useFreshRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf).(*MetricsProvider)

	m.IncRequestsTotal("/dashboard/feed", 200)
	m.IncRequestsTotal("/dashboard/feed", 401)
	m.ObserveRequestDuration("/dashboard/feed", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncCacheMisses()
	m.IncRecordsGenerated("generator")
	m.IncRecordsGenerated("generator")
	m.IncRecordsGenerated("prompt")
	m.IncAuthAttempts("signin", "error")
	m.SetActiveSessions(4)
	m.SetActiveDashboards(2)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.cacheMisses))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.recordsGenerated.WithLabelValues("generator")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.recordsGenerated.WithLabelValues("prompt")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.authAttempts.WithLabelValues("signin", "error")))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.activeDashboards))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("/dashboard/feed", "4xx")))

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{401, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
