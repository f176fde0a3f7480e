package services

import (
	"context"

	"hypergo-properties/internal/models"
	"hypergo-properties/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// usersByID loads every referenced user in one batch.
func usersByID(ctx context.Context, repo repositories.UserRepository, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserSummary, error) {
	out := make(map[primitive.ObjectID]*models.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	users, err := repo.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	for i := range users {
		out[users[i].ID] = users[i].Summary()
	}
	return out, nil
}

// propertiesByID loads every referenced listing with its owner in two batches.
func propertiesByID(ctx context.Context, props repositories.PropertyRepository, users repositories.UserRepository, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.PropertyResponse, error) {
	out := make(map[primitive.ObjectID]*models.PropertyResponse, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	found, err := props.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	populated, err := withOwners(ctx, users, found)
	if err != nil {
		return nil, err
	}
	for i := range populated {
		out[populated[i].ID] = &populated[i]
	}
	return out, nil
}

// withOwners attaches owner summaries to listings, preserving order.
func withOwners(ctx context.Context, users repositories.UserRepository, props []models.Property) ([]models.PropertyResponse, error) {
	ownerIDs := make([]primitive.ObjectID, 0, len(props))
	for _, p := range props {
		if !p.CreatedBy.IsZero() {
			ownerIDs = append(ownerIDs, p.CreatedBy)
		}
	}
	owners, err := usersByID(ctx, users, ownerIDs)
	if err != nil {
		return nil, err
	}
	out := make([]models.PropertyResponse, len(props))
	for i, p := range props {
		out[i] = models.PropertyResponse{Property: p, Owner: owners[p.CreatedBy]}
	}
	return out, nil
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
