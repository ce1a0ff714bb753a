// Package cache defines the contract for the recommendation result cache.
package cache

import (
	"context"
	"time"
)

// Cache is a time-bounded key/value store. Implementations must be safe for
// concurrent use; writes are blind overwrites and last writer wins.
type Cache interface {
	// Get returns the stored value and whether the key was present and
	// still fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value with an absolute expiry of now + ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete evicts a key. Current flows never call it; it exists so a
	// future write path can invalidate instead of waiting out the TTL.
	Delete(ctx context.Context, key string) error
}

// Noop satisfies Cache without storing anything. Every Get is a miss.
type Noop struct{}

func (Noop) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (Noop) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (Noop) Delete(_ context.Context, _ string) error {
	return nil
}
