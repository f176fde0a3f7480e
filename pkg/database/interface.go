package database

import (
	"context"
	"time"

	"hypergo-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDatabase owns the client for the lifetime of the process.
type MongoDatabase struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoDatabase(client *mongo.Client, db *mongo.Database) *MongoDatabase {
	return &MongoDatabase{client: client, db: db}
}

func (m *MongoDatabase) DB() *mongo.Database {
	return m.db
}

func (m *MongoDatabase) Ping(ctx context.Context) error {
	start := time.Now()
	err := m.client.Ping(ctx, readpref.Primary())
	observe("ping", start, err)
	return err
}

func (m *MongoDatabase) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	err := m.client.Disconnect(ctx)
	observe("disconnect", start, err)
	if err != nil {
		logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		return err
	}
	logger.GlobalLogger.Println("MongoDB connection closed")
	return nil
}
