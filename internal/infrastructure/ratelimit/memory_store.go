// Package ratelimit provides the submission counter stores behind the
// IRateLimitStore port: an in-memory map for single-instance deployments and
// Redis/DynamoDB shared counters for multi-instance ones.
package ratelimit

import (
	"context"
	"log"
	"sync"
	"time"

	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/robfig/cron/v3"
)

// sweepSpec is how often expired counters are purged. The sweep only bounds
// memory; correctness never depends on it because Allow checks expiry itself.
const sweepSpec = "@every 5m"

type record struct {
	count   int
	resetAt time.Time
}

// MemoryStore keeps fixed-window counters in a mutex-guarded map.
//
// The mutex serializes increment-and-check per identity, so concurrent
// submissions from the same client can't race past the limit. Counters do
// not survive a restart; the limit is a soft anti-abuse bound, not a
// security control, so that is acceptable.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	cron    *cron.Cron
	now     func() time.Time
}

var _ interfaces.IRateLimitStore = (*MemoryStore)(nil)

// NewMemoryStore builds the store and starts its background sweep. The sweep
// runs on the cron goroutine and never blocks request handling.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		records: make(map[string]*record),
		cron:    cron.New(),
		now:     time.Now,
	}
	if _, err := s.cron.AddFunc(sweepSpec, s.sweep); err != nil {
		log.Printf("[ratelimit][memory] failed scheduling sweep: %v", err)
	} else {
		s.cron.Start()
	}
	return s
}

func (s *MemoryStore) Allow(_ context.Context, bucket, identity string, limit interfaces.Limit) (bool, error) {
	key := bucket + "|" + identity
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok || now.After(rec.resetAt) {
		s.records[key] = &record{count: 1, resetAt: now.Add(limit.Window)}
		return true, nil
	}
	if rec.count >= limit.Max {
		return false, nil
	}
	rec.count++
	return true, nil
}

// sweep drops counters whose window has elapsed.
func (s *MemoryStore) sweep() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, rec := range s.records {
		if now.After(rec.resetAt) {
			delete(s.records, key)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[ratelimit][memory] sweep removed %d expired records, %d remain", removed, len(s.records))
	}
}

func (s *MemoryStore) Close() error {
	s.cron.Stop()
	return nil
}
