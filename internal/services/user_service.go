package services

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
	"hypergo-properties/internal/repositories"
	"hypergo-properties/internal/validators"
	"hypergo-properties/pkg/auth"
	"hypergo-properties/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo       repositories.UserRepository
	validator  validators.UserValidator
	secret     string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, secret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		repo:       repo,
		validator:  validator,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewAppError("failed to hash password", apperrors.MsgInternalError, apperrors.ErrCodeInternal, http.StatusInternalServerError, err)
	}

	user := &models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashedPassword),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if stderrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict(apperrors.MsgEmailTaken, err)
		}
		logger.GlobalLogger.Errorf("failed to register user: email=%s, error=%v", user.Email, err)
		return nil, apperrors.BackendUnavailable("register user", err)
	}

	return s.issue(user)
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.BackendUnavailable("find user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized(apperrors.MsgInvalidCredentials, nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized(apperrors.MsgInvalidCredentials, err)
	}

	return s.issue(user)
}

func (s *UserService) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := auth.GenerateJWT(user.ID.Hex(), user.Name, user.Email, s.secret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.NewAppError("failed to generate token", apperrors.MsgInternalError, apperrors.ErrCodeInternal, http.StatusInternalServerError, err)
	}
	return &models.AuthResponse{
		Token:     token.Token,
		ExpiresIn: token.ExpiresIn,
		TokenType: token.TokenType,
		User:      user.Summary(),
	}, nil
}
