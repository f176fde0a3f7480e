package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
	"hypergo-properties/internal/repositories"
	"hypergo-properties/internal/validators"
	"hypergo-properties/pkg/cache"
	"hypergo-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecommendationService struct {
	recommendations repositories.RecommendationRepository
	properties      repositories.PropertyRepository
	users           repositories.UserRepository
	propResolver    *Resolver[models.Property]
	recResolver     *Resolver[models.Recommendation]
	validator       validators.RecommendationValidator
	store           cache.Store
	invalidator     *InvalidationCoordinator
	ttl             time.Duration
}

func NewRecommendationService(
	recommendations repositories.RecommendationRepository,
	properties repositories.PropertyRepository,
	users repositories.UserRepository,
	validator validators.RecommendationValidator,
	store cache.Store,
	invalidator *InvalidationCoordinator,
	ttl time.Duration,
) *RecommendationService {
	return &RecommendationService{
		recommendations: recommendations,
		properties:      properties,
		users:           users,
		propResolver:    NewPropertyResolver(properties),
		recResolver:     NewRecommendationResolver(recommendations),
		validator:       validator,
		store:           store,
		invalidator:     invalidator,
		ttl:             ttl,
	}
}

// SearchUser finds a recipient by email. Looking up yourself is rejected.
func (s *RecommendationService) SearchUser(ctx context.Context, requesterID primitive.ObjectID, email string) (*models.UserSummary, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.Validation(apperrors.FieldError{Field: "email", Message: "is required"})
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.BackendUnavailable("find user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User", email)
	}
	if user.ID == requesterID {
		return nil, apperrors.Invalid("email", apperrors.MsgSelfRecommendation)
	}
	return user.Summary(), nil
}

// Create recommends the listing at propertyRef to the user named in req.
// A self-recommendation is rejected before any other field is looked at.
func (s *RecommendationService) Create(ctx context.Context, senderID primitive.ObjectID, propertyRef string, req *models.RecommendRequest) (*models.RecommendationResponse, error) {
	self, err := s.isSelf(ctx, senderID, req)
	if err != nil {
		return nil, err
	}
	if self {
		return nil, apperrors.Invalid("recipient", apperrors.MsgSelfRecommendation)
	}
	if err := s.validator.ValidateRecommend(req); err != nil {
		return nil, err
	}

	property, err := s.propResolver.Resolve(ctx, propertyRef)
	if err != nil {
		return nil, err
	}
	recipient, err := s.findRecipient(ctx, req)
	if err != nil {
		return nil, err
	}
	if recipient.ID == senderID {
		return nil, apperrors.Invalid("recipient", apperrors.MsgSelfRecommendation)
	}

	rec := &models.Recommendation{
		PropertyID:  property.ID,
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Message:     strings.TrimSpace(req.Message),
		Status:      models.RecommendationPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.recommendations.Create(ctx, rec); err != nil {
		if stderrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict(apperrors.MsgAlreadyRecommended, err)
		}
		logger.GlobalLogger.Errorf("failed to create recommendation: sender=%s, property=%s, error=%v", senderID.Hex(), property.PropertyID, err)
		return nil, apperrors.BackendUnavailable("create recommendation", err)
	}

	s.invalidator.RecommendationChanged(ctx, senderID.Hex(), recipient.ID.Hex())

	out, err := s.populate(ctx, []models.Recommendation{*rec})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *RecommendationService) Received(ctx context.Context, userID primitive.ObjectID) ([]models.RecommendationResponse, bool, error) {
	return s.cachedList(ctx, cache.RecommendationsReceivedKey(userID.Hex()), func() ([]models.Recommendation, error) {
		return s.recommendations.FindByRecipient(ctx, userID)
	})
}

func (s *RecommendationService) Sent(ctx context.Context, userID primitive.ObjectID) ([]models.RecommendationResponse, bool, error) {
	return s.cachedList(ctx, cache.RecommendationsSentKey(userID.Hex()), func() ([]models.Recommendation, error) {
		return s.recommendations.FindBySender(ctx, userID)
	})
}

// MarkViewed moves a recommendation from pending to viewed. Only the recipient may do so
// and repeating it changes nothing.
func (s *RecommendationService) MarkViewed(ctx context.Context, userID primitive.ObjectID, ref string) (*models.Recommendation, error) {
	rec, err := s.recResolver.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if rec.RecipientID != userID {
		return nil, apperrors.Forbidden(apperrors.MsgNotRecipient)
	}
	if rec.Status == models.RecommendationViewed {
		return rec, nil
	}

	if err := s.recommendations.MarkViewed(ctx, rec.ID); err != nil {
		if stderrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Recommendation", ref)
		}
		return nil, apperrors.BackendUnavailable("mark recommendation viewed", err)
	}
	rec.Status = models.RecommendationViewed

	s.invalidator.RecommendationChanged(ctx, rec.SenderID.Hex(), rec.RecipientID.Hex())
	return rec, nil
}

func (s *RecommendationService) Delete(ctx context.Context, userID primitive.ObjectID, ref string) error {
	rec, err := s.recResolver.Resolve(ctx, ref)
	if err != nil {
		return err
	}
	if rec.SenderID != userID {
		return apperrors.Forbidden(apperrors.MsgNotSender)
	}

	if err := s.recommendations.Delete(ctx, rec.ID); err != nil {
		if stderrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Recommendation", ref)
		}
		return apperrors.BackendUnavailable("delete recommendation", err)
	}

	s.invalidator.RecommendationChanged(ctx, rec.SenderID.Hex(), rec.RecipientID.Hex())
	return nil
}

func (s *RecommendationService) isSelf(ctx context.Context, senderID primitive.ObjectID, req *models.RecommendRequest) (bool, error) {
	if req.RecipientID != "" && strings.EqualFold(strings.TrimSpace(req.RecipientID), senderID.Hex()) {
		return true, nil
	}
	if req.RecipientEmail == "" {
		return false, nil
	}
	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		return false, apperrors.BackendUnavailable("find sender", err)
	}
	return sender != nil && strings.EqualFold(strings.TrimSpace(req.RecipientEmail), sender.Email), nil
}

func (s *RecommendationService) findRecipient(ctx context.Context, req *models.RecommendRequest) (*models.User, error) {
	var (
		user *models.User
		err  error
		ref  string
	)
	if req.RecipientEmail != "" {
		ref = req.RecipientEmail
		user, err = s.users.FindByEmail(ctx, req.RecipientEmail)
	} else {
		ref = req.RecipientID
		oid, perr := primitive.ObjectIDFromHex(req.RecipientID)
		if perr != nil {
			return nil, apperrors.NotFound("User", ref)
		}
		user, err = s.users.FindByID(ctx, oid)
	}
	if err != nil {
		return nil, apperrors.BackendUnavailable("find recipient", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User", ref)
	}
	return user, nil
}

func (s *RecommendationService) cachedList(ctx context.Context, key string, load func() ([]models.Recommendation, error)) ([]models.RecommendationResponse, bool, error) {
	epoch := s.invalidator.Epoch()
	if cached, ok := cache.GetJSON[[]models.RecommendationResponse](ctx, s.store, key); ok {
		return cached, true, nil
	}

	recs, err := load()
	if err != nil {
		return nil, false, apperrors.BackendUnavailable("list recommendations", err)
	}
	out, err := s.populate(ctx, recs)
	if err != nil {
		return nil, false, err
	}

	s.invalidator.Populate(ctx, key, epoch, out, s.ttl)
	return out, false, nil
}

// populate attaches listing, sender and recipient with one batch per collection.
func (s *RecommendationService) populate(ctx context.Context, recs []models.Recommendation) ([]models.RecommendationResponse, error) {
	propIDs := make([]primitive.ObjectID, 0, len(recs))
	userIDs := make([]primitive.ObjectID, 0, 2*len(recs))
	for _, r := range recs {
		propIDs = append(propIDs, r.PropertyID)
		userIDs = append(userIDs, r.SenderID, r.RecipientID)
	}

	properties, err := propertiesByID(ctx, s.properties, s.users, propIDs)
	if err != nil {
		return nil, apperrors.BackendUnavailable("populate recommendation properties", err)
	}
	users, err := usersByID(ctx, s.users, userIDs)
	if err != nil {
		return nil, apperrors.BackendUnavailable("populate recommendation users", err)
	}

	out := make([]models.RecommendationResponse, len(recs))
	for i, r := range recs {
		out[i] = models.RecommendationResponse{
			Recommendation: r,
			Property:       properties[r.PropertyID],
			Sender:         users[r.SenderID],
			Recipient:      users[r.RecipientID],
		}
	}
	return out, nil
}
