package database

import (
	"context"
	"time"

	"hypergo-properties/pkg/logger"
	"hypergo-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Indexes lists the index set per collection. The unique indexes back the
// duplicate checks the repositories translate into ErrDuplicate.
func Indexes() map[string][]mongo.IndexModel {
	asc := func(keys ...string) bson.D {
		d := make(bson.D, 0, len(keys))
		for _, k := range keys {
			d = append(d, bson.E{Key: k, Value: 1})
		}
		return d
	}
	return map[string][]mongo.IndexModel{
		"properties": {
			{Keys: asc("id"), Options: options.Index().SetUnique(true)},
			{Keys: asc("city")},
			{Keys: asc("state")},
			{Keys: asc("type")},
			{Keys: asc("price")},
			{Keys: asc("listingType")},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: asc("createdBy")},
		},
		"users": {
			{Keys: asc("email"), Options: options.Index().SetUnique(true)},
		},
		"favorites": {
			{Keys: asc("user", "property"), Options: options.Index().SetUnique(true)},
			{Keys: asc("property")},
		},
		"recommendations": {
			{Keys: asc("property", "sender", "recipient"), Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
}

// CreateIndexes ensures every index in Indexes exists.
func (m *MongoDatabase) CreateIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for coll, models := range Indexes() {
		start := time.Now()
		_, err := m.db.Collection(coll).Indexes().CreateMany(ctx, models)
		metrics.MongoOperationDuration.WithLabelValues("create_indexes", coll).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MongoErrorsTotal.WithLabelValues("create_indexes", coll).Inc()
			logger.GlobalLogger.Errorf("Failed to create indexes on %s: %v", coll, err)
			return err
		}
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully.")
	return nil
}
