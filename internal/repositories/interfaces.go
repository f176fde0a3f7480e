package repositories

import (
	"context"
	"errors"

	"hypergo-properties/internal/models"
	"hypergo-properties/internal/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Find methods return (nil, nil) when nothing matches.
// Mutations by id return ErrNotFound when nothing matched and ErrDuplicate on a unique-index violation.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type PropertyRepository interface {
	// Search returns one page of listings matching filter plus the total match count.
	Search(ctx context.Context, filter query.CanonicalFilter) ([]models.Property, int64, error)
	FindByPublicID(ctx context.Context, id string) (*models.Property, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, propertyID primitive.ObjectID) error
	Exists(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error)
	// FindByUser returns the user's favorites, newest first.
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error)
	// DeleteByProperty removes every favorite of a listing and returns the affected users.
	DeleteByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type RecommendationRepository interface {
	Create(ctx context.Context, rec *models.Recommendation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recommendation, error)
	// FindByRecipient and FindBySender return newest first.
	FindByRecipient(ctx context.Context, userID primitive.ObjectID) ([]models.Recommendation, error)
	FindBySender(ctx context.Context, userID primitive.ObjectID) ([]models.Recommendation, error)
	// MarkViewed sets status to viewed. Viewing a viewed recommendation is a no-op.
	MarkViewed(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DeleteByProperty removes every recommendation of a listing and returns what was removed.
	DeleteByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Recommendation, error)
}
