// Package security provides request rate limiting backed by a pluggable store
package security

import (
	"sync"
	"time"
)

// RateLimitStore is the counter store behind the rate limiter. It is injected
// so call sites never depend on where the counters live; a distributed store
// can replace the in-memory one without touching middleware.
type RateLimitStore interface {
	// Increment bumps the counter for key within the current window and
	// returns the new count. A fresh window starts the count at 1.
	Increment(key string, window time.Duration) int
	// Get returns the current count for key, 0 if the window expired.
	Get(key string) int
	// Reset clears the counter for key.
	Reset(key string)
}

type windowCounter struct {
	count     int
	windowEnd time.Time
}

// MemoryRateLimitStore is the default in-process RateLimitStore.
type MemoryRateLimitStore struct {
	mu       sync.Mutex
	counters map[string]*windowCounter
	now      func() time.Time
}

// NewMemoryRateLimitStore creates an empty in-memory store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		counters: make(map[string]*windowCounter),
		now:      time.Now,
	}
}

func (s *MemoryRateLimitStore) Increment(key string, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	counter, exists := s.counters[key]
	if !exists || now.After(counter.windowEnd) {
		s.counters[key] = &windowCounter{count: 1, windowEnd: now.Add(window)}
		return 1
	}

	counter.count++
	return counter.count
}

func (s *MemoryRateLimitStore) Get(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, exists := s.counters[key]
	if !exists || s.now().After(counter.windowEnd) {
		return 0
	}
	return counter.count
}

func (s *MemoryRateLimitStore) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counters, key)
}

// Cleanup discards expired windows. Intended to run on the cache cleanup tick.
func (s *MemoryRateLimitStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, counter := range s.counters {
		if now.After(counter.windowEnd) {
			delete(s.counters, key)
		}
	}
}
