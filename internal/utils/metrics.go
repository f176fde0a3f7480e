package utils

import (
	"time"

	"hypergo-properties/pkg/metrics"
)

func RecordMongoOperationDuration(operation, collection string, start time.Time) {
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues(operation, collection).Observe(duration)
}

func RecordMongoError(operation, collection string) {
	metrics.MongoErrorsTotal.WithLabelValues(operation, collection).Inc()
}

// RecordInvalidation counts one cache invalidation event by outcome: ok, retried or failed.
func RecordInvalidation(event, outcome string) {
	metrics.CacheInvalidationsTotal.WithLabelValues(event, outcome).Inc()
}
