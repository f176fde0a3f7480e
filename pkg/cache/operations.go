package cache

import (
	"context"
	"encoding/json"
	"time"

	"hypergo-properties/pkg/logger"
)

// GetJSON reads key and decodes it into T. Undecodable entries are dropped and reported as a miss.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool) {
	var out T
	data, ok := s.Get(ctx, key)
	if !ok {
		recordLookup(key, false)
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		logger.GlobalLogger.Errorf("failed to unmarshal cached value for key %s: %v", key, err)
		_ = s.Delete(ctx, key)
		recordLookup(key, false)
		var zero T
		return zero, false
	}
	recordLookup(key, true)
	return out, true
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", key, err, false)
	}
	return s.Set(ctx, key, data, ttl)
}
