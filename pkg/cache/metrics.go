package cache

import (
	"time"

	"hypergo-properties/pkg/metrics"
)

const (
	backendRedis  = "redis"
	backendMemory = "memory"
)

// record the duration of a backend operation and count it as failed when err is set.
func recordOperation(backend, operation string, start time.Time, err error) {
	metrics.CacheOperationDuration.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CacheErrorsTotal.WithLabelValues(backend, operation).Inc()
	}
}

func recordLookup(key string, hit bool) {
	if hit {
		metrics.CacheHitsTotal.WithLabelValues(Namespace(key)).Inc()
		return
	}
	metrics.CacheMissesTotal.WithLabelValues(Namespace(key)).Inc()
}
