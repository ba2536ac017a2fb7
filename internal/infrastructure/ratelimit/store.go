package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTTL is used when NewStore is given a non-positive TTL
const DefaultTTL = 10 * time.Minute

// limiterEntry holds a client's limiter and the time it was last used
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Store is a thread-safe registry of per-client token buckets. Clients that
// have been idle for longer than the TTL are evicted.
type Store struct {
	limit rate.Limit
	burst int
	ttl   time.Duration

	data  map[string]*limiterEntry
	mutex sync.Mutex
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewStore creates a store that allows perMinute requests per client with a
// burst of the same size. A non-positive ttl falls back to DefaultTTL.
func NewStore(perMinute int, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	store := &Store{
		limit: rate.Limit(float64(perMinute) / 60),
		burst: perMinute,
		ttl:   ttl,
		data:  make(map[string]*limiterEntry),
		now:   time.Now,
		stop:  make(chan struct{}),
	}

	go store.cleanupLoop(ttl)

	return store
}

// Allow reports whether the client may make a request now
func (s *Store) Allow(key string) bool {
	return s.limiter(key).Allow()
}

// limiter returns the client's limiter, creating it on first use
func (s *Store) limiter(key string) *rate.Limiter {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, exists := s.data[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.data[key] = entry
	}
	entry.lastSeen = s.now()

	return entry.limiter
}

// Cleanup removes clients idle for longer than the TTL
func (s *Store) Cleanup() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for key, entry := range s.data {
		if entry.lastSeen.Before(cutoff) {
			delete(s.data, key)
		}
	}
}

func (s *Store) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Cleanup()
		case <-s.stop:
			return
		}
	}
}

// Close stops the background cleanup
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
}

// Size returns the number of tracked clients (for debugging/monitoring)
func (s *Store) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.data)
}
