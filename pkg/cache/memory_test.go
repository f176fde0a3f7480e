package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(100, time.Minute)

	if _, ok := s.Get(ctx, "missing"); ok {
		t.Fatal("expected miss")
	}

	value := []byte(`{"total":1}`)
	if err := s.Set(ctx, "k", value, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value[0] = 'X'

	got, ok := s.Get(ctx, "k")
	if !ok || string(got) != `{"total":1}` {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(100, time.Hour)
	now := time.Now()
	s.now = func() time.Time { return now }

	_ = s.Set(ctx, "short", []byte("1"), time.Second)
	_ = s.Set(ctx, "long", []byte("2"), time.Minute)

	now = now.Add(2 * time.Second)

	if _, ok := s.Get(ctx, "short"); ok {
		t.Error("expected short entry to expire")
	}
	if _, ok := s.Get(ctx, "long"); !ok {
		t.Error("expected long entry to survive")
	}
}

func TestMemoryStoreDeletePrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(100, time.Minute)

	_ = s.Set(ctx, SearchResultKey("a"), []byte("1"), time.Minute)
	_ = s.Set(ctx, SearchResultKey("b"), []byte("2"), time.Minute)
	_ = s.Set(ctx, FavoriteListKey("u1"), []byte("3"), time.Minute)

	n, err := s.DeletePrefix(ctx, NamespacePrefix(NamespaceSearch))
	if err != nil {
		t.Fatalf("DeletePrefix: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d keys, want 2", n)
	}
	if _, ok := s.Get(ctx, FavoriteListKey("u1")); !ok {
		t.Error("favorites key must survive a search purge")
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(100, time.Minute)

	type payload struct {
		Total int `json:"total"`
	}
	if err := SetJSON(ctx, s, "json", payload{Total: 30}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	got, ok := GetJSON[payload](ctx, s, "json")
	if !ok || got.Total != 30 {
		t.Fatalf("GetJSON = %+v, %v", got, ok)
	}

	_ = s.Set(ctx, "corrupt", []byte("{not json"), time.Minute)
	if _, ok := GetJSON[payload](ctx, s, "corrupt"); ok {
		t.Fatal("corrupt entry must read as a miss")
	}
	if _, ok := s.Get(ctx, "corrupt"); ok {
		t.Fatal("corrupt entry must be dropped")
	}
}
