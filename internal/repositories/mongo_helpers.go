package repositories

import (
	"context"
	"errors"
	"time"

	"hypergo-properties/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	PropertiesCollection      = "properties"
	UsersCollection           = "users"
	FavoritesCollection       = "favorites"
	RecommendationsCollection = "recommendations"
)

// observe records the duration of a store call and counts real failures.
// ErrNoDocuments is a normal outcome and is not counted.
func observe(operation, collection string, start time.Time, err error) {
	utils.RecordMongoOperationDuration(operation, collection, start)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		utils.RecordMongoError(operation, collection)
	}
}

// translate maps driver errors onto repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	start := time.Now()
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	observe("find_one", coll.Name(), start, err)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	start := time.Now()
	cursor, err := coll.Find(ctx, filter, opts...)
	observe("find", coll.Name(), start, err)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	start = time.Now()
	err = cursor.All(ctx, &out)
	observe("cursor_all", coll.Name(), start, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
