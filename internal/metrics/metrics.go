package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	SourcesFetched         int64
	SourcesFailed          int64
	PagesFetched           int64
	CabinetItemsMatched    int64
	ParliamentItemsMatched int64
	GenerativeSummaries    int64
	FallbackSummaries      int64

	// Timings
	LastRunDuration time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementSourcesFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesFetched++
}

func (m *Metrics) IncrementSourcesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesFailed++
}

func (m *Metrics) IncrementPagesFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PagesFetched++
}

func (m *Metrics) AddCabinetItemsMatched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CabinetItemsMatched += int64(n)
}

func (m *Metrics) AddParliamentItemsMatched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ParliamentItemsMatched += int64(n)
}

func (m *Metrics) IncrementGenerativeSummaries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerativeSummaries++
}

func (m *Metrics) IncrementFallbackSummaries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FallbackSummaries++
}

func (m *Metrics) RecordRunDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunDuration = duration
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"sources_fetched":          m.SourcesFetched,
		"sources_failed":           m.SourcesFailed,
		"pages_fetched":            m.PagesFetched,
		"cabinet_items_matched":    m.CabinetItemsMatched,
		"parliament_items_matched": m.ParliamentItemsMatched,
		"generative_summaries":     m.GenerativeSummaries,
		"fallback_summaries":       m.FallbackSummaries,
		"last_run_duration_ms":     m.LastRunDuration.Milliseconds(),
		"last_run_time":            m.LastRunTime.Format(time.RFC3339),
		"last_error_time":          m.LastErrorTime.Format(time.RFC3339),
		"last_error":               m.LastError,
		"is_healthy":               m.IsHealthy,
	}
}
