package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"hypergo-properties/pkg/cache"
)

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}

// IsRetryableError determines if an error is transient and worth retrying.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if cache.IsRetryable(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Retry runs fn up to attempts times with a linear backoff while the error is retryable.
// It returns the number of attempts made and the last error.
func Retry(ctx context.Context, attempts int, backoff time.Duration, fn func() error) (int, error) {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(); err == nil || !IsRetryableError(err) || i == attempts {
			return i, err
		}
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		case <-time.After(backoff * time.Duration(i)):
		}
	}
	return attempts, err
}
