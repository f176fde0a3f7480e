package database

import (
	"context"
	"fmt"
	"time"

	"hypergo-properties/pkg/config"
	"hypergo-properties/pkg/logger"
	"hypergo-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Connect opens a client for cfg.Database.URI and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetConnectTimeout(connectTimeout).
		SetMaxPoolSize(100)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	observe("connect", start, err)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to connect to MongoDB: %v", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	start = time.Now()
	err = client.Ping(ctx, nil)
	observe("ping", start, err)
	if err != nil {
		_ = client.Disconnect(ctx)
		logger.GlobalLogger.Errorf("failed to ping MongoDB: %v", err)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully.")
	return NewMongoDatabase(client, client.Database(cfg.Database.DBName)), nil
}

func observe(op string, start time.Time, err error) {
	metrics.MongoOperationDuration.WithLabelValues(op, "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues(op, "").Inc()
	}
}
