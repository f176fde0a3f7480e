package services

import (
	"context"
	"errors"
	"testing"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
	"hypergo-properties/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	reg, err := env.accounts.Register(ctx, &models.RegisterRequest{Name: "Asha", Email: "Asha@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.User.Email != "asha@example.com" || reg.TokenType != "Bearer" {
		t.Fatalf("unexpected response: %+v", reg)
	}
	claims, err := auth.ValidateJWT(reg.Token, "test-secret")
	if err != nil || claims.UserID != reg.User.ID.Hex() {
		t.Fatalf("token invalid: %+v %v", claims, err)
	}

	if _, err := env.accounts.Register(ctx, &models.RegisterRequest{Name: "Other", Email: "asha@example.com", Password: "secret2"}); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("duplicate email: %v", err)
	}

	login, err := env.accounts.Login(ctx, &models.LoginRequest{Email: "asha@example.com", Password: "secret1"})
	if err != nil || login.User.ID != reg.User.ID {
		t.Fatalf("Login: %+v %v", login, err)
	}

	for _, req := range []*models.LoginRequest{
		{Email: "asha@example.com", Password: "wrong"},
		{Email: "ghost@example.com", Password: "secret1"},
	} {
		if _, err := env.accounts.Login(ctx, req); !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Errorf("Login(%s) = %v, want Unauthorized", req.Email, err)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(nil)
	_, err := env.accounts.Register(context.Background(), &models.RegisterRequest{Name: "A", Email: "bad", Password: "1"})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
