// Package memory holds in-process repository implementations with the same
// uniqueness guarantees as the MongoDB indexes.
package memory

import (
	"context"
	"slices"
	"sync"

	"hypergo-properties/internal/models"
	"hypergo-properties/internal/query"
	"hypergo-properties/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyRepository struct {
	mu        sync.RWMutex
	byID      map[primitive.ObjectID]models.Property
	publicIDs map[string]primitive.ObjectID
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{
		byID:      make(map[primitive.ObjectID]models.Property),
		publicIDs: make(map[string]primitive.ObjectID),
	}
}

var _ repositories.PropertyRepository = (*PropertyRepository)(nil)

func (r *PropertyRepository) Search(_ context.Context, filter query.CanonicalFilter) ([]models.Property, int64, error) {
	r.mu.RLock()
	matched := make([]models.Property, 0)
	for _, p := range r.byID {
		if filter.Matches(&p) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b models.Property) int {
		return filter.Compare(&a, &b)
	})

	total := int64(len(matched))
	skip := filter.Skip()
	if skip >= len(matched) {
		return []models.Property{}, total, nil
	}
	end := min(skip+filter.Limit, len(matched))
	return matched[skip:end], total, nil
}

func (r *PropertyRepository) FindByPublicID(_ context.Context, id string) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	oid, ok := r.publicIDs[id]
	if !ok {
		return nil, nil
	}
	p := r.byID[oid]
	return &p, nil
}

func (r *PropertyRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PropertyRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PropertyRepository) Create(_ context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.publicIDs[property.PropertyID]; taken {
		return repositories.ErrDuplicate
	}
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	if _, taken := r.byID[property.ID]; taken {
		return repositories.ErrDuplicate
	}
	r.byID[property.ID] = *property
	r.publicIDs[property.PropertyID] = property.ID
	return nil
}

func (r *PropertyRepository) Update(_ context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[property.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	if existing.PropertyID != property.PropertyID {
		if _, taken := r.publicIDs[property.PropertyID]; taken {
			return repositories.ErrDuplicate
		}
		delete(r.publicIDs, existing.PropertyID)
		r.publicIDs[property.PropertyID] = property.ID
	}
	r.byID[property.ID] = *property
	return nil
}

func (r *PropertyRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.publicIDs, existing.PropertyID)
	return nil
}
