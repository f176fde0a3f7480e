package utils

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"hypergo-properties/pkg/cache"
)

func TestBuildPaginationURL(t *testing.T) {
	params := url.Values{"city": {"Pune"}, "page": {"1"}}
	got := BuildPaginationURL("/api/properties", 2, 25, params)
	if got != "/api/properties?city=Pune&limit=25&page=2" {
		t.Errorf("BuildPaginationURL = %q", got)
	}
}

func TestLinkHeader(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		wantPrev   bool
		wantNext   bool
	}{
		{"first of two", 1, 2, false, true},
		{"last of two", 2, 2, true, false},
		{"single page", 1, 1, false, false},
		{"middle", 2, 3, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := LinkHeader("/api/properties", tt.page, 25, tt.totalPages, url.Values{})
			if strings.Contains(h, `rel="prev"`) != tt.wantPrev {
				t.Errorf("prev link mismatch: %q", h)
			}
			if strings.Contains(h, `rel="next"`) != tt.wantNext {
				t.Errorf("next link mismatch: %q", h)
			}
		})
	}
}

func TestRetry(t *testing.T) {
	retryable := cache.NewCacheError("delete", "k", errors.New("i/o timeout"), true)

	calls := 0
	n, err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return retryable
		}
		return nil
	})
	if err != nil || n != 3 {
		t.Fatalf("Retry = %d, %v", n, err)
	}

	calls = 0
	permanent := errors.New("bad input")
	n, err = Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) || n != 1 || calls != 1 {
		t.Fatalf("non-retryable error retried: n=%d calls=%d err=%v", n, calls, err)
	}

	n, err = Retry(context.Background(), 2, time.Millisecond, func() error { return retryable })
	if n != 2 || !cache.IsRetryable(err) {
		t.Fatalf("expected exhausted retries, got n=%d err=%v", n, err)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "x") != nil {
		t.Fatal("nil stays nil")
	}
	base := errors.New("boom")
	if err := WrapError(base, "op %d", 1); !errors.Is(err, base) || err.Error() != "op 1: boom" {
		t.Fatalf("WrapError = %v", err)
	}
}
