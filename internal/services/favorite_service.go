package services

import (
	"context"
	stderrors "errors"
	"time"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
	"hypergo-properties/internal/repositories"
	"hypergo-properties/pkg/cache"
	"hypergo-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FavoriteService struct {
	favorites   repositories.FavoriteRepository
	properties  repositories.PropertyRepository
	users       repositories.UserRepository
	resolver    *Resolver[models.Property]
	store       cache.Store
	invalidator *InvalidationCoordinator
	ttl         time.Duration
}

func NewFavoriteService(
	favorites repositories.FavoriteRepository,
	properties repositories.PropertyRepository,
	users repositories.UserRepository,
	store cache.Store,
	invalidator *InvalidationCoordinator,
	ttl time.Duration,
) *FavoriteService {
	return &FavoriteService{
		favorites:   favorites,
		properties:  properties,
		users:       users,
		resolver:    NewPropertyResolver(properties),
		store:       store,
		invalidator: invalidator,
		ttl:         ttl,
	}
}

func (s *FavoriteService) Add(ctx context.Context, userID primitive.ObjectID, ref string) (*models.Favorite, error) {
	property, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	favorite := &models.Favorite{
		UserID:     userID,
		PropertyID: property.ID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		if stderrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict(apperrors.MsgAlreadyFavorited, err)
		}
		logger.GlobalLogger.Errorf("failed to add favorite: user=%s, property=%s, error=%v", userID.Hex(), property.PropertyID, err)
		return nil, apperrors.BackendUnavailable("add favorite", err)
	}

	s.invalidator.FavoriteChanged(ctx, userID.Hex(), property.ID.Hex())
	return favorite, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID primitive.ObjectID, ref string) error {
	property, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		return err
	}

	if err := s.favorites.Delete(ctx, userID, property.ID); err != nil {
		if stderrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Favorite", ref)
		}
		logger.GlobalLogger.Errorf("failed to remove favorite: user=%s, property=%s, error=%v", userID.Hex(), property.PropertyID, err)
		return apperrors.BackendUnavailable("remove favorite", err)
	}

	s.invalidator.FavoriteChanged(ctx, userID.Hex(), property.ID.Hex())
	return nil
}

// List returns the user's favorites with listing and owner populated, newest first.
func (s *FavoriteService) List(ctx context.Context, userID primitive.ObjectID) ([]models.FavoriteResponse, bool, error) {
	key := cache.FavoriteListKey(userID.Hex())
	epoch := s.invalidator.Epoch()
	if cached, ok := cache.GetJSON[[]models.FavoriteResponse](ctx, s.store, key); ok {
		return cached, true, nil
	}

	favorites, err := s.favorites.FindByUser(ctx, userID)
	if err != nil {
		return nil, false, apperrors.BackendUnavailable("list favorites", err)
	}

	ids := make([]primitive.ObjectID, len(favorites))
	for i, f := range favorites {
		ids[i] = f.PropertyID
	}
	properties, err := propertiesByID(ctx, s.properties, s.users, ids)
	if err != nil {
		return nil, false, apperrors.BackendUnavailable("populate favorites", err)
	}

	out := make([]models.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		p, ok := properties[f.PropertyID]
		if !ok {
			continue
		}
		out = append(out, models.FavoriteResponse{ID: f.ID, UserID: f.UserID, Property: p, CreatedAt: f.CreatedAt})
	}

	s.invalidator.Populate(ctx, key, epoch, out, s.ttl)
	return out, false, nil
}

func (s *FavoriteService) Check(ctx context.Context, userID primitive.ObjectID, ref string) (*models.FavoriteCheck, bool, error) {
	property, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		return nil, false, err
	}

	key := cache.FavoriteCheckKey(userID.Hex(), property.ID.Hex())
	epoch := s.invalidator.Epoch()
	if cached, ok := cache.GetJSON[models.FavoriteCheck](ctx, s.store, key); ok {
		return &cached, true, nil
	}

	exists, err := s.favorites.Exists(ctx, userID, property.ID)
	if err != nil {
		return nil, false, apperrors.BackendUnavailable("check favorite", err)
	}
	check := &models.FavoriteCheck{IsFavorite: exists}
	s.invalidator.Populate(ctx, key, epoch, check, s.ttl)
	return check, false, nil
}
