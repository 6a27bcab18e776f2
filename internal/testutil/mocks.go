package testutil

import (
	"pitwall/internal/feed"
	"pitwall/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
	Hits int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	if ok {
		m.Hits++
	}
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	CacheHits        int
	CacheMisses      int
	Generated        map[string]int
	AuthAttempts     map[string]int // key: "op:outcome"
	ActiveSessions   int
	ActiveDashboards int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncRecordsGenerated(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Generated == nil {
		m.Generated = make(map[string]int)
	}
	m.Generated[source]++
}

func (m *MockMetrics) IncAuthAttempts(op string, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AuthAttempts == nil {
		m.AuthAttempts = make(map[string]int)
	}
	m.AuthAttempts[op+":"+outcome]++
}

func (m *MockMetrics) SetActiveSessions(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActiveSessions = count
}

func (m *MockMetrics) SetActiveDashboards(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActiveDashboards = count
}

func (m *MockMetrics) GeneratedBy(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Generated[source]
}

func (m *MockMetrics) Attempts(op, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.AuthAttempts[op+":"+outcome]
}

// MockBroker implements providers.BrokerProviderInterface.
type MockBroker struct {
	mu        sync.Mutex
	Published map[string]int // key: category
	Err       error
	Closed    bool
	// Gate, when set, holds every Publish until it is closed.
	Gate chan struct{}
}

func (m *MockBroker) Publish(category string, _ []byte) error {
	if m.Gate != nil {
		<-m.Gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Published == nil {
		m.Published = make(map[string]int)
	}
	m.Published[category]++
	return m.Err
}

func (m *MockBroker) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
}

func (m *MockBroker) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, v := range m.Published {
		n += v
	}
	return n
}

// ManualTicker is a feed.Ticker driven by the test. Tick blocks until the
// generator loop receives it.
type ManualTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time)}
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *ManualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Tick reports false if no loop picked the tick up within a second.
func (m *ManualTicker) Tick() bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-time.After(time.Second):
		return false
	}
}

// ManualTickers hands out a new ManualTicker per generator and keeps them
// in creation order.
type ManualTickers struct {
	mu      sync.Mutex
	Tickers []*ManualTicker
}

func (m *ManualTickers) Factory() feed.TickerFactory {
	return func(time.Duration) feed.Ticker {
		t := NewManualTicker()
		m.mu.Lock()
		m.Tickers = append(m.Tickers, t)
		m.mu.Unlock()
		return t
	}
}

func (m *ManualTickers) Last() *ManualTicker {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Tickers) == 0 {
		return nil
	}
	return m.Tickers[len(m.Tickers)-1]
}

func (m *ManualTickers) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Tickers)
}
