package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"hypergo-properties/internal/models"
	"hypergo-properties/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recommendationKey struct {
	property  primitive.ObjectID
	sender    primitive.ObjectID
	recipient primitive.ObjectID
}

type RecommendationRepository struct {
	mu     sync.RWMutex
	byID   map[primitive.ObjectID]models.Recommendation
	unique map[recommendationKey]primitive.ObjectID
}

func NewRecommendationRepository() *RecommendationRepository {
	return &RecommendationRepository{
		byID:   make(map[primitive.ObjectID]models.Recommendation),
		unique: make(map[recommendationKey]primitive.ObjectID),
	}
}

var _ repositories.RecommendationRepository = (*RecommendationRepository)(nil)

func keyOf(rec *models.Recommendation) recommendationKey {
	return recommendationKey{rec.PropertyID, rec.SenderID, rec.RecipientID}
}

func (r *RecommendationRepository) Create(_ context.Context, rec *models.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := keyOf(rec)
	if _, taken := r.unique[key]; taken {
		return repositories.ErrDuplicate
	}
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	r.byID[rec.ID] = *rec
	r.unique[key] = rec.ID
	return nil
}

func (r *RecommendationRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *RecommendationRepository) FindByRecipient(_ context.Context, userID primitive.ObjectID) ([]models.Recommendation, error) {
	return r.filter(func(rec models.Recommendation) bool { return rec.RecipientID == userID }), nil
}

func (r *RecommendationRepository) FindBySender(_ context.Context, userID primitive.ObjectID) ([]models.Recommendation, error) {
	return r.filter(func(rec models.Recommendation) bool { return rec.SenderID == userID }), nil
}

func (r *RecommendationRepository) filter(keep func(models.Recommendation) bool) []models.Recommendation {
	r.mu.RLock()
	out := make([]models.Recommendation, 0)
	for _, rec := range r.byID {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Recommendation) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.Hex(), a.ID.Hex())
	})
	return out
}

func (r *RecommendationRepository) MarkViewed(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	rec.Status = models.RecommendationViewed
	r.byID[id] = rec
	return nil
}

func (r *RecommendationRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.unique, keyOf(&rec))
	return nil
}

func (r *RecommendationRepository) DeleteByProperty(_ context.Context, propertyID primitive.ObjectID) ([]models.Recommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed []models.Recommendation
	for id, rec := range r.byID {
		if rec.PropertyID == propertyID {
			removed = append(removed, rec)
			delete(r.byID, id)
			delete(r.unique, keyOf(&rec))
		}
	}
	return removed, nil
}
