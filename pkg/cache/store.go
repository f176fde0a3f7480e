// Package cache provides the result cache used in front of the listing store.
package cache

import (
	"context"
	"time"
)

// Store is a byte-oriented cache with per-entry TTL.
//
// Implementations fail soft: Get reports any backend error as a miss.
// Write and delete errors are returned so callers can log or retry them,
// but must never fail the request that triggered them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix removes every key starting with prefix and reports how many were removed.
	DeletePrefix(ctx context.Context, prefix string) (int, error)
	Ping(ctx context.Context) error
	Close() error
}
