package validators

import (
	"hypergo-properties/internal/models"

	"github.com/go-playground/validator/v10"
)

type propertyValidator struct {
	v *validator.Validate
}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{v: newEngine()}
}

func (pv *propertyValidator) ValidateCreate(input *models.PropertyInput) error {
	return validate(pv.v, input)
}

func (pv *propertyValidator) ValidateUpdate(patch *models.PropertyPatch) error {
	return validate(pv.v, patch)
}
