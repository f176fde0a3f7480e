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

type favoriteKey struct {
	user     primitive.ObjectID
	property primitive.ObjectID
}

type FavoriteRepository struct {
	mu        sync.RWMutex
	favorites map[favoriteKey]models.Favorite
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{favorites: make(map[favoriteKey]models.Favorite)}
}

var _ repositories.FavoriteRepository = (*FavoriteRepository)(nil)

func (r *FavoriteRepository) Create(_ context.Context, favorite *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favoriteKey{favorite.UserID, favorite.PropertyID}
	if _, taken := r.favorites[key]; taken {
		return repositories.ErrDuplicate
	}
	if favorite.ID.IsZero() {
		favorite.ID = primitive.NewObjectID()
	}
	r.favorites[key] = *favorite
	return nil
}

func (r *FavoriteRepository) Delete(_ context.Context, userID, propertyID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favoriteKey{userID, propertyID}
	if _, ok := r.favorites[key]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.favorites, key)
	return nil
}

func (r *FavoriteRepository) Exists(_ context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.favorites[favoriteKey{userID, propertyID}]
	return ok, nil
}

func (r *FavoriteRepository) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	r.mu.RLock()
	out := make([]models.Favorite, 0)
	for key, f := range r.favorites {
		if key.user == userID {
			out = append(out, f)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Favorite) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.Hex(), a.ID.Hex())
	})
	return out, nil
}

func (r *FavoriteRepository) DeleteByProperty(_ context.Context, propertyID primitive.ObjectID) ([]primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []primitive.ObjectID
	for key := range r.favorites {
		if key.property == propertyID {
			users = append(users, key.user)
			delete(r.favorites, key)
		}
	}
	return users, nil
}
