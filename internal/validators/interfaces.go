package validators

import (
	"hypergo-properties/internal/models"
)

type PropertyValidator interface {
	ValidateCreate(input *models.PropertyInput) error
	ValidateUpdate(patch *models.PropertyPatch) error
}

type UserValidator interface {
	ValidateRegister(req *models.RegisterRequest) error
	ValidateLogin(req *models.LoginRequest) error
}

type RecommendationValidator interface {
	ValidateRecommend(req *models.RecommendRequest) error
}
