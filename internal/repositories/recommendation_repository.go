package repositories

import (
	"context"
	"time"

	"hypergo-properties/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type recommendationRepository struct {
	collection *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) RecommendationRepository {
	return &recommendationRepository{
		collection: db.Collection(RecommendationsCollection),
	}
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func (r *recommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, rec)
	observe("insert", RecommendationsCollection, start, err)
	return translate(err)
}

func (r *recommendationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recommendation, error) {
	return findOne[models.Recommendation](ctx, r.collection, bson.M{"_id": id})
}

func (r *recommendationRepository) FindByRecipient(ctx context.Context, userID primitive.ObjectID) ([]models.Recommendation, error) {
	return findAll[models.Recommendation](ctx, r.collection, bson.M{"recipient": userID}, options.Find().SetSort(newestFirst))
}

func (r *recommendationRepository) FindBySender(ctx context.Context, userID primitive.ObjectID) ([]models.Recommendation, error) {
	return findAll[models.Recommendation](ctx, r.collection, bson.M{"sender": userID}, options.Find().SetSort(newestFirst))
}

// MarkViewed matches on _id only, so a second call matches without modifying.
func (r *recommendationRepository) MarkViewed(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.RecommendationViewed}},
	)
	observe("update_one", RecommendationsCollection, start, err)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *recommendationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	observe("delete_one", RecommendationsCollection, start, err)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *recommendationRepository) DeleteByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Recommendation, error) {
	recs, err := findAll[models.Recommendation](ctx, r.collection, bson.M{"property": propertyID})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	start := time.Now()
	_, err = r.collection.DeleteMany(ctx, bson.M{"property": propertyID})
	observe("delete_many", RecommendationsCollection, start, err)
	if err != nil {
		return nil, err
	}
	return recs, nil
}
