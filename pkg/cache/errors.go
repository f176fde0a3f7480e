package cache

import (
	"errors"
	"fmt"
)

type CacheError struct {
	Operation string
	Key       string
	Err       error
	Retryable bool
}

func NewCacheError(operation, key string, err error, retryable bool) *CacheError {
	return &CacheError{
		Operation: operation,
		Key:       key,
		Err:       err,
		Retryable: retryable,
	}
}

func (e *CacheError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("cache operation %s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("cache operation %s failed for key %s: %v", e.Operation, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a cache failure worth retrying.
func IsRetryable(err error) bool {
	var ce *CacheError
	return errors.As(err, &ce) && ce.Retryable
}
