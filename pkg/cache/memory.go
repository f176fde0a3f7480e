package cache

import (
	"context"
	"strings"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	memoryShards          = 8
	memoryEvictPercentage = 10
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store built on sturdyc.
// sturdyc enforces maxTTL and capacity; shorter per-entry TTLs are checked on read.
type MemoryStore struct {
	client *sturdyc.Client[memoryEntry]
	now    func() time.Time
}

func NewMemoryStore(capacity int, maxTTL time.Duration) *MemoryStore {
	if capacity < memoryShards {
		capacity = memoryShards
	}
	if maxTTL <= 0 {
		maxTTL = 5 * time.Minute
	}
	return &MemoryStore{
		client: sturdyc.New[memoryEntry](capacity, memoryShards, maxTTL, memoryEvictPercentage),
		now:    time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	start := time.Now()
	entry, ok := s.client.Get(key)
	recordOperation(backendMemory, "get", start, nil)
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		s.client.Delete(key)
		return nil, false
	}
	return clone(entry.data), true
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	entry := memoryEntry{data: clone(value)}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.client.Set(key, entry)
	recordOperation(backendMemory, "set", start, nil)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}

func (s *MemoryStore) DeletePrefix(_ context.Context, prefix string) (int, error) {
	start := time.Now()
	deleted := 0
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
			deleted++
		}
	}
	recordOperation(backendMemory, "delete_prefix", start, nil)
	return deleted, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
