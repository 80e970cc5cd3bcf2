package interfaces

import (
	"context"
	"time"
)

// Limit bounds accepted submissions per identity inside a fixed window.
type Limit struct {
	Max    int
	Window time.Duration
}

// IRateLimitStore abstracts the submission counter store.
//
// The store owns its own lifecycle (expiry sweep or TTLs); callers only ask
// whether a submission is admitted. Backends:
//   - in-memory guarded map for single-instance deployments
//   - Redis or DynamoDB shared counters for multi-instance deployments
//
// bucket keeps different forms from sharing counters; identity is the
// best-effort client IP.
type IRateLimitStore interface {
	Allow(ctx context.Context, bucket, identity string, limit Limit) (bool, error)
	Close() error
}
