package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"ridgeline_roofing/internal/usecase/interfaces"
)

var testLimit = interfaces.Limit{Max: 3, Window: time.Hour}

// newTestStore builds a store with a controllable clock and no cron.
func newTestStore(now *time.Time) *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*record),
		now:     func() time.Time { return *now },
	}
}

func TestMemoryStore_AllowsUpToMaxThenDenies(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := s.Allow(ctx, "quote", "1.2.3.4", testLimit)
		if err != nil || !ok {
			t.Fatalf("submission %d: expected allow, got %v %v", i+1, ok, err)
		}
	}

	ok, err := s.Allow(ctx, "quote", "1.2.3.4", testLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected 4th submission within the window to be denied")
	}
}

func TestMemoryStore_WindowResetAdmitsAgain(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		s.Allow(ctx, "quote", "1.2.3.4", testLimit)
	}

	now = now.Add(time.Hour + time.Second)
	ok, err := s.Allow(ctx, "quote", "1.2.3.4", testLimit)
	if err != nil || !ok {
		t.Fatalf("expected allow after window reset, got %v %v", ok, err)
	}
}

func TestMemoryStore_IdentitiesAndBucketsAreIndependent(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s.Allow(ctx, "quote", "1.2.3.4", testLimit)
	}
	if ok, _ := s.Allow(ctx, "quote", "1.2.3.4", testLimit); ok {
		t.Fatal("expected denial for exhausted identity")
	}

	if ok, _ := s.Allow(ctx, "quote", "5.6.7.8", testLimit); !ok {
		t.Fatal("different identity should not contend")
	}
	if ok, _ := s.Allow(ctx, "contact", "1.2.3.4", testLimit); !ok {
		t.Fatal("different bucket should not share the counter")
	}
}

func TestMemoryStore_ConcurrentSameIdentitySerialized(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := s.Allow(ctx, "quote", "1.2.3.4", testLimit); ok {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != testLimit.Max {
		t.Fatalf("expected exactly %d admitted, got %d", testLimit.Max, admitted)
	}
}

func TestMemoryStore_SweepRemovesExpiredOnly(t *testing.T) {
	now := time.Now()
	s := newTestStore(&now)
	ctx := context.Background()

	s.Allow(ctx, "quote", "expired", testLimit)
	now = now.Add(2 * time.Hour)
	s.Allow(ctx, "quote", "fresh", testLimit)

	s.sweep()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records["quote|expired"]; ok {
		t.Fatal("expected expired record to be swept")
	}
	if _, ok := s.records["quote|fresh"]; !ok {
		t.Fatal("expected fresh record to survive the sweep")
	}
}
