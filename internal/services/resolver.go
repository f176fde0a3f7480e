package services

import (
	"context"
	"strings"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
	"hypergo-properties/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolver turns an external reference into exactly one record. It looks up
// the public identifier first and the internal ObjectID second.
type Resolver[T any] struct {
	entity     string
	byPublicID func(ctx context.Context, ref string) (*T, error)
	byID       func(ctx context.Context, id primitive.ObjectID) (*T, error)
}

func NewResolver[T any](
	entity string,
	byPublicID func(ctx context.Context, ref string) (*T, error),
	byID func(ctx context.Context, id primitive.ObjectID) (*T, error),
) *Resolver[T] {
	return &Resolver[T]{entity: entity, byPublicID: byPublicID, byID: byID}
}

func NewPropertyResolver(repo repositories.PropertyRepository) *Resolver[models.Property] {
	return NewResolver("Property", repo.FindByPublicID, repo.FindByID)
}

// NewRecommendationResolver has no public identifier to look up.
func NewRecommendationResolver(repo repositories.RecommendationRepository) *Resolver[models.Recommendation] {
	return NewResolver[models.Recommendation]("Recommendation", nil, repo.FindByID)
}

func (r *Resolver[T]) Resolve(ctx context.Context, ref string) (*T, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, apperrors.NotFound(r.entity, ref)
	}

	if r.byPublicID != nil {
		rec, err := r.byPublicID(ctx, ref)
		if err != nil {
			return nil, apperrors.BackendUnavailable("find "+strings.ToLower(r.entity), err)
		}
		if rec != nil {
			return rec, nil
		}
	}

	oid, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, apperrors.NotFound(r.entity, ref)
	}
	rec, err := r.byID(ctx, oid)
	if err != nil {
		return nil, apperrors.BackendUnavailable("find "+strings.ToLower(r.entity), err)
	}
	if rec == nil {
		return nil, apperrors.NotFound(r.entity, ref)
	}
	return rec, nil
}
