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

type favoriteRepository struct {
	collection *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) FavoriteRepository {
	return &favoriteRepository{
		collection: db.Collection(FavoritesCollection),
	}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	if favorite.ID.IsZero() {
		favorite.ID = primitive.NewObjectID()
	}
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, favorite)
	observe("insert", FavoritesCollection, start, err)
	return translate(err)
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, propertyID primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"user": userID, "property": propertyID})
	observe("delete_one", FavoritesCollection, start, err)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	start := time.Now()
	n, err := r.collection.CountDocuments(ctx, bson.M{"user": userID, "property": propertyID}, options.Count().SetLimit(1))
	observe("count_documents", FavoritesCollection, start, err)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *favoriteRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	return findAll[models.Favorite](ctx, r.collection, bson.M{"user": userID}, opts)
}

func (r *favoriteRepository) DeleteByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]primitive.ObjectID, error) {
	favorites, err := findAll[models.Favorite](ctx, r.collection, bson.M{"property": propertyID})
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return nil, nil
	}

	start := time.Now()
	_, err = r.collection.DeleteMany(ctx, bson.M{"property": propertyID})
	observe("delete_many", FavoritesCollection, start, err)
	if err != nil {
		return nil, err
	}

	users := make([]primitive.ObjectID, 0, len(favorites))
	for _, f := range favorites {
		users = append(users, f.UserID)
	}
	return users, nil
}
