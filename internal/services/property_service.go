package services

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
	"hypergo-properties/internal/repositories"
	"hypergo-properties/internal/validators"
	"hypergo-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicIDPrefix starts every generated listing identifier.
const PublicIDPrefix = "PROP"

const publicIDAttempts = 5

type PropertyService struct {
	repo            repositories.PropertyRepository
	users           repositories.UserRepository
	favorites       repositories.FavoriteRepository
	recommendations repositories.RecommendationRepository
	resolver        *Resolver[models.Property]
	validator       validators.PropertyValidator
	invalidator     *InvalidationCoordinator
	now             func() time.Time

	mu         sync.Mutex
	lastMillis int64
}

func NewPropertyService(
	repo repositories.PropertyRepository,
	users repositories.UserRepository,
	favorites repositories.FavoriteRepository,
	recommendations repositories.RecommendationRepository,
	validator validators.PropertyValidator,
	invalidator *InvalidationCoordinator,
) *PropertyService {
	return &PropertyService{
		repo:            repo,
		users:           users,
		favorites:       favorites,
		recommendations: recommendations,
		resolver:        NewPropertyResolver(repo),
		validator:       validator,
		invalidator:     invalidator,
		now:             time.Now,
	}
}

// nextPublicID returns PROP<unix millis>, strictly increasing within the process.
func (s *PropertyService) nextPublicID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := s.now().UnixMilli()
	if ms <= s.lastMillis {
		ms = s.lastMillis + 1
	}
	s.lastMillis = ms
	return PublicIDPrefix + strconv.FormatInt(ms, 10)
}

func (s *PropertyService) Create(ctx context.Context, ownerID primitive.ObjectID, input *models.PropertyInput) (*models.PropertyResponse, error) {
	if err := s.validator.ValidateCreate(input); err != nil {
		return nil, err
	}
	availableFrom, _ := validators.ParseISODate(input.AvailableFrom)

	now := s.now().UTC()
	property := &models.Property{
		Title:         strings.TrimSpace(input.Title),
		Type:          input.Type,
		Price:         input.Price,
		State:         strings.TrimSpace(input.State),
		City:          strings.TrimSpace(input.City),
		AreaSqFt:      input.AreaSqFt,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		Amenities:     input.Amenities,
		Furnished:     input.Furnished,
		AvailableFrom: availableFrom,
		ListedBy:      input.ListedBy,
		Tags:          input.Tags,
		ColorTheme:    input.ColorTheme,
		Rating:        input.Rating,
		IsVerified:    input.IsVerified,
		ListingType:   input.ListingType,
		CreatedBy:     ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var err error
	for attempt := 0; attempt < publicIDAttempts; attempt++ {
		property.ID = primitive.NilObjectID
		property.PropertyID = s.nextPublicID()
		err = s.repo.Create(ctx, property)
		if !stderrors.Is(err, repositories.ErrDuplicate) {
			break
		}
	}
	switch {
	case stderrors.Is(err, repositories.ErrDuplicate):
		return nil, apperrors.Conflict(apperrors.MsgPropertyIDTaken, err)
	case err != nil:
		logger.GlobalLogger.Errorf("failed to create property: owner=%s, error=%v", ownerID.Hex(), err)
		return nil, apperrors.BackendUnavailable("create property", err)
	}

	s.invalidator.ListingChanged(ctx)
	return s.populate(ctx, property)
}

// Get resolves ref by public id or internal id.
func (s *PropertyService) Get(ctx context.Context, ref string) (*models.PropertyResponse, error) {
	property, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, property)
}

func (s *PropertyService) Update(ctx context.Context, userID primitive.ObjectID, ref string, patch *models.PropertyPatch) (*models.PropertyResponse, error) {
	if err := s.validator.ValidateUpdate(patch); err != nil {
		return nil, err
	}
	property, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if property.CreatedBy != userID {
		return nil, apperrors.Forbidden(apperrors.MsgNotOwner)
	}

	applyPatch(property, patch)
	now := s.now().UTC()
	if now.After(property.UpdatedAt) {
		property.UpdatedAt = now
	}

	if err := s.repo.Update(ctx, property); err != nil {
		if stderrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Property", ref)
		}
		logger.GlobalLogger.Errorf("failed to update property: id=%s, error=%v", property.PropertyID, err)
		return nil, apperrors.BackendUnavailable("update property", err)
	}

	s.invalidator.ListingChanged(ctx)
	return s.populate(ctx, property)
}

// Delete removes the listing and every favorite and recommendation pointing at it.
func (s *PropertyService) Delete(ctx context.Context, userID primitive.ObjectID, ref string) error {
	property, err := s.resolver.Resolve(ctx, ref)
	if err != nil {
		return err
	}
	if property.CreatedBy != userID {
		return apperrors.Forbidden(apperrors.MsgNotOwner)
	}

	if err := s.repo.Delete(ctx, property.ID); err != nil {
		if stderrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Property", ref)
		}
		logger.GlobalLogger.Errorf("failed to delete property: id=%s, error=%v", property.PropertyID, err)
		return apperrors.BackendUnavailable("delete property", err)
	}

	favoritedBy, err := s.favorites.DeleteByProperty(ctx, property.ID)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to delete favorites of property %s: %v", property.PropertyID, err)
	}
	if _, err := s.recommendations.DeleteByProperty(ctx, property.ID); err != nil {
		logger.GlobalLogger.Errorf("failed to delete recommendations of property %s: %v", property.PropertyID, err)
	}

	users := make([]string, len(favoritedBy))
	for i, id := range favoritedBy {
		users[i] = id.Hex()
	}
	s.invalidator.ListingDeleted(ctx, property.ID.Hex(), users)
	return nil
}

func (s *PropertyService) populate(ctx context.Context, property *models.Property) (*models.PropertyResponse, error) {
	out, err := withOwners(ctx, s.users, []models.Property{*property})
	if err != nil {
		return nil, apperrors.BackendUnavailable("populate owner", err)
	}
	return &out[0], nil
}

func applyPatch(p *models.Property, patch *models.PropertyPatch) {
	if patch.Title != nil {
		p.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.State != nil {
		p.State = strings.TrimSpace(*patch.State)
	}
	if patch.City != nil {
		p.City = strings.TrimSpace(*patch.City)
	}
	if patch.AreaSqFt != nil {
		p.AreaSqFt = *patch.AreaSqFt
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.Amenities != nil {
		p.Amenities = *patch.Amenities
	}
	if patch.Furnished != nil {
		p.Furnished = *patch.Furnished
	}
	if patch.AvailableFrom != nil {
		if t, err := validators.ParseISODate(*patch.AvailableFrom); err == nil {
			p.AvailableFrom = t
		}
	}
	if patch.ListedBy != nil {
		p.ListedBy = *patch.ListedBy
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.ColorTheme != nil {
		p.ColorTheme = *patch.ColorTheme
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.IsVerified != nil {
		p.IsVerified = *patch.IsVerified
	}
	if patch.ListingType != nil {
		p.ListingType = *patch.ListingType
	}
}
