package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleEvictAfter = 10 * time.Minute

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimiter keeps one token bucket per key in process memory.
type LocalRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*localEntry
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func NewLocalRateLimiter(config RateLimitConfig) *LocalRateLimiter {
	burst := config.BurstSize
	if burst <= 0 {
		burst = 1
	}
	return &LocalRateLimiter{
		entries: make(map[string]*localEntry),
		limit:   rate.Every(config.window() / time.Duration(max(config.RequestsPerMinute, 1))),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *LocalRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		entry = &localEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = entry
	}
	entry.lastSeen = now
	l.evictIdleLocked(now)

	return entry.limiter.AllowN(now, 1), nil
}

func (l *LocalRateLimiter) evictIdleLocked(now time.Time) {
	for key, entry := range l.entries {
		if now.Sub(entry.lastSeen) > idleEvictAfter {
			delete(l.entries, key)
		}
	}
}
