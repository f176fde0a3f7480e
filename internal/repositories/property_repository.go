package repositories

import (
	"context"
	"regexp"
	"strings"
	"time"

	"hypergo-properties/internal/models"
	"hypergo-properties/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type propertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) PropertyRepository {
	return &propertyRepository{
		collection: db.Collection(PropertiesCollection),
	}
}

func (r *propertyRepository) Search(ctx context.Context, filter query.CanonicalFilter) ([]models.Property, int64, error) {
	match := SearchFilter(filter)

	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, match)
	observe("count_documents", PropertiesCollection, start, err)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || int64(filter.Skip()) >= total {
		return []models.Property{}, total, nil
	}

	findOptions := options.Find().
		SetSort(SearchSort(filter)).
		SetSkip(int64(filter.Skip())).
		SetLimit(int64(filter.Limit))

	properties, err := findAll[models.Property](ctx, r.collection, match, findOptions)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// SearchFilter translates a canonical filter into a MongoDB query document.
func SearchFilter(f query.CanonicalFilter) bson.M {
	match := bson.M{}
	if f.Category != "" {
		match["type"] = f.Category
	}
	if f.State != "" {
		match["state"] = f.State
	}
	if f.City != "" {
		match["city"] = f.City
	}
	if f.Furnished != "" {
		match["furnished"] = f.Furnished
	}
	if f.ListingType != "" {
		match["listingType"] = f.ListingType
	}
	if f.Bedrooms != nil {
		match["bedrooms"] = *f.Bedrooms
	}
	if f.Bathrooms != nil {
		match["bathrooms"] = *f.Bathrooms
	}
	if r := rangeFilter(f.Price); r != nil {
		match["price"] = r
	}
	if r := rangeFilter(f.Area); r != nil {
		match["areaSqFt"] = r
	}
	if len(f.Amenities) > 0 {
		quoted := make([]string, len(f.Amenities))
		for i, a := range f.Amenities {
			quoted[i] = regexp.QuoteMeta(a)
		}
		match["amenities"] = bson.M{"$regex": strings.Join(quoted, "|"), "$options": "i"}
	}
	return match
}

// SearchSort orders by the requested field and breaks ties on _id so pages are stable.
func SearchSort(f query.CanonicalFilter) bson.D {
	return bson.D{{Key: f.Sort.Field, Value: f.Sort.Direction}, {Key: "_id", Value: 1}}
}

func rangeFilter(r query.Range) bson.M {
	if r.IsZero() {
		return nil
	}
	out := bson.M{}
	if r.Min != nil {
		out["$gte"] = *r.Min
	}
	if r.Max != nil {
		out["$lte"] = *r.Max
	}
	return out
}

func (r *propertyRepository) FindByPublicID(ctx context.Context, id string) (*models.Property, error) {
	return findOne[models.Property](ctx, r.collection, bson.M{"id": id})
}

func (r *propertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	return findOne[models.Property](ctx, r.collection, bson.M{"_id": id})
}

func (r *propertyRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error) {
	if len(ids) == 0 {
		return []models.Property{}, nil
	}
	return findAll[models.Property](ctx, r.collection, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	observe("insert", PropertiesCollection, start, err)
	return translate(err)
}

// Update replaces the stored document with the same _id.
func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	start := time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": property.ID}, property)
	observe("replace_one", PropertiesCollection, start, err)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	observe("delete_one", PropertiesCollection, start, err)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
