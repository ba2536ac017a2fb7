package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestStore_Allow(t *testing.T) {
	store := NewStore(3, time.Minute)
	defer store.Close()

	for i := 0; i < 3; i++ {
		if !store.Allow("10.0.0.1") {
			t.Fatalf("request %d denied, want allowed within burst", i+1)
		}
	}

	if store.Allow("10.0.0.1") {
		t.Error("Allow() = true after burst exhausted, want false")
	}

	if !store.Allow("10.0.0.2") {
		t.Error("Allow() = false for a different client, want true")
	}
}

func TestStore_Cleanup(t *testing.T) {
	store := NewStore(10, time.Minute)
	defer store.Close()

	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Allow("idle")
	current = current.Add(45 * time.Second)
	store.Allow("active")

	current = current.Add(30 * time.Second)
	store.Cleanup()

	if store.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 after evicting idle client", store.Size())
	}

	// All clients idle past the TTL
	current = current.Add(time.Hour)
	store.Cleanup()
	if store.Size() != 0 {
		t.Errorf("Size() = %d, want 0", store.Size())
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(1000, time.Minute)
	defer store.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n%5))
			for j := 0; j < 20; j++ {
				store.Allow(key)
			}
		}(i)
	}
	wg.Wait()

	if store.Size() != 5 {
		t.Errorf("Size() = %d, want 5", store.Size())
	}
}

func TestStore_CloseIsIdempotent(t *testing.T) {
	store := NewStore(1, time.Minute)
	store.Close()
	store.Close()
}

func TestNewStore_NonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		store := NewStore(2, ttl)

		if store.ttl != DefaultTTL {
			t.Errorf("NewStore(2, %v).ttl = %v, want %v", ttl, store.ttl, DefaultTTL)
		}
		if !store.Allow("10.0.0.1") {
			t.Errorf("Allow() = false with ttl %v, want true", ttl)
		}
		store.Close()
	}
}
