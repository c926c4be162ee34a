// Package ratelimit provides fixed-window request counting for public
// submission endpoints. Counters live behind the Store interface so a
// single-process deployment can use process memory while multi-process
// deployments share counts through Redis.
package ratelimit

import (
	"context"
	"time"
)

// Result reports the counter state after recording a hit.
type Result struct {
	Count   int64
	ResetAt time.Time
}

// Store records hits against a client key within a fixed window.
type Store interface {
	// Hit increments the counter for key, starting a fresh window when the
	// previous one has elapsed, and returns the updated count.
	Hit(ctx context.Context, key string, window time.Duration) (Result, error)
}
