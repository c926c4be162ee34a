package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int64
}

// MemoryStore keeps counters in process memory. Stale windows are purged
// by a background loop so abandoned keys do not accumulate.
type MemoryStore struct {
	mu       sync.Mutex
	windows  map[string]*window
	stopChan chan struct{}
}

// NewMemoryStore creates a store and starts its cleanup loop.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	s := &MemoryStore{
		windows:  make(map[string]*window),
		stopChan: make(chan struct{}),
	}
	go s.cleanupLoop(cleanupInterval)
	return s
}

// Hit implements Store.
func (s *MemoryStore) Hit(_ context.Context, key string, windowDur time.Duration) (Result, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= windowDur {
		w = &window{start: now, count: 0}
		s.windows[key] = w
	}
	w.count++

	return Result{Count: w.count, ResetAt: w.start.Add(windowDur)}, nil
}

// Stop terminates the cleanup loop.
func (s *MemoryStore) Stop() {
	close(s.stopChan)
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanupExpired(interval)
		case <-s.stopChan:
			return
		}
	}
}

func (s *MemoryStore) cleanupExpired(maxAge time.Duration) {
	cutoff := time.Now().Add(-2 * maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, w := range s.windows {
		if w.start.Before(cutoff) {
			delete(s.windows, key)
		}
	}
}
