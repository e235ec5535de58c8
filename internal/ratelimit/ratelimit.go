package ratelimit

import (
	"log/slog"
	"sync"
)

// GenerativeLimiter caps how many generative summarization requests a single
// run may issue. It is a cost cap, not a throughput limiter: once the budget
// is spent the summarizer silently uses its deterministic fallback.
type GenerativeLimiter struct {
	mu    sync.Mutex
	count int
	max   int // 0 = unlimited
}

func NewGenerativeLimiter(max int) *GenerativeLimiter {
	return &GenerativeLimiter{max: max}
}

// Allow reports whether another generative request fits the budget and
// consumes one slot if it does.
func (rl *GenerativeLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.max > 0 && rl.count >= rl.max {
		slog.Warn("generative request budget reached", "used", rl.count, "max", rl.max)
		return false
	}
	rl.count++
	return true
}

// Used returns how many requests have been consumed.
func (rl *GenerativeLimiter) Used() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.count
}
