// Package ratelimit provides per-key request limiting for the public form
// endpoints, backed by Redis or by in-process token buckets.
package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	BurstSize         int
}

func (c RateLimitConfig) window() time.Duration {
	return time.Minute
}

// RateLimiter decides whether the caller identified by key may proceed.
// A non-nil error means the backend could not answer; callers fail open.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
