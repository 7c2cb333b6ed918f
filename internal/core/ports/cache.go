package ports

import (
	"context"
	"time"
)

// Cache is the key/value side-channel for list responses. All operations
// are best-effort: a cache failure must never fail the primary operation.
type Cache interface {
	// Get returns "" with a nil error on a miss.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
