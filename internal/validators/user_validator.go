package validators

import (
	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"

	"github.com/go-playground/validator/v10"
)

type userValidator struct {
	v *validator.Validate
}

func NewUserValidator() UserValidator {
	return &userValidator{v: newEngine()}
}

func (uv *userValidator) ValidateRegister(req *models.RegisterRequest) error {
	return validate(uv.v, req)
}

func (uv *userValidator) ValidateLogin(req *models.LoginRequest) error {
	return validate(uv.v, req)
}

type recommendationValidator struct {
	v *validator.Validate
}

func NewRecommendationValidator() RecommendationValidator {
	return &recommendationValidator{v: newEngine()}
}

// ValidateRecommend requires one recipient reference in addition to the field rules.
func (rv *recommendationValidator) ValidateRecommend(req *models.RecommendRequest) error {
	if req.RecipientEmail == "" && req.RecipientID == "" {
		return apperrors.Validation(apperrors.FieldError{
			Field:   "recipientEmail",
			Message: "recipientEmail or recipientId is required",
		})
	}
	return validate(rv.v, req)
}
