package validators

import (
	stderrors "errors"
	"strings"
	"testing"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
)

func validInput() models.PropertyInput {
	return models.PropertyInput{
		Title:         "Sea facing villa",
		Type:          models.TypeVilla,
		Price:         2500000,
		State:         "Goa",
		City:          "Panaji",
		AreaSqFt:      3200,
		Bedrooms:      4,
		Bathrooms:     3,
		Amenities:     "pool|garden",
		Furnished:     models.Furnished,
		AvailableFrom: "2025-06-01",
		ListedBy:      "Owner",
		Tags:          "sea-view",
		ColorTheme:    "#1a2b3c",
		Rating:        4.5,
		ListingType:   models.ListingSale,
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperrors.AppError
	if !stderrors.As(err, &appErr) || appErr.Kind != apperrors.KindValidation {
		t.Fatalf("expected validation AppError, got %v", err)
	}
	out := map[string]string{}
	for _, f := range appErr.Details {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateCreate(t *testing.T) {
	v := NewPropertyValidator()
	in := validInput()
	if err := v.ValidateCreate(&in); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	in.AvailableFrom = "2025-06-01T10:00:00Z"
	if err := v.ValidateCreate(&in); err != nil {
		t.Fatalf("RFC3339 date rejected: %v", err)
	}

	bad := validInput()
	bad.Title = ""
	bad.Type = "Castle"
	bad.Rating = 7
	bad.ColorTheme = "blue"
	bad.AvailableFrom = "next week"
	bad.Price = -1

	fields := fieldsOf(t, v.ValidateCreate(&bad))
	for _, name := range []string{"title", "type", "rating", "colorTheme", "availableFrom", "price"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("missing field error for %s in %v", name, fields)
		}
	}
	if fields["title"] != "is required" {
		t.Errorf("title message = %q", fields["title"])
	}
}

func TestValidateUpdate(t *testing.T) {
	v := NewPropertyValidator()
	if err := v.ValidateUpdate(&models.PropertyPatch{}); err != nil {
		t.Fatalf("empty patch rejected: %v", err)
	}

	furnished := "Half"
	fields := fieldsOf(t, v.ValidateUpdate(&models.PropertyPatch{Furnished: &furnished}))
	if !strings.HasPrefix(fields["furnished"], "must be one of") {
		t.Errorf("furnished message = %q", fields["furnished"])
	}
}

func TestValidateRegister(t *testing.T) {
	v := NewUserValidator()
	ok := &models.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"}
	if err := v.ValidateRegister(ok); err != nil {
		t.Fatalf("valid register rejected: %v", err)
	}

	fields := fieldsOf(t, v.ValidateRegister(&models.RegisterRequest{Name: "A", Email: "nope", Password: "123"}))
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %v", fields)
	}
}

func TestValidateRecommend(t *testing.T) {
	v := NewRecommendationValidator()

	fieldsOf(t, v.ValidateRecommend(&models.RecommendRequest{Message: "hi"}))

	long := &models.RecommendRequest{RecipientEmail: "b@example.com", Message: strings.Repeat("x", models.MaxRecommendationMessage+1)}
	if _, ok := fieldsOf(t, v.ValidateRecommend(long))["message"]; !ok {
		t.Error("expected message length error")
	}

	if err := v.ValidateRecommend(&models.RecommendRequest{RecipientID: "64b7f0c2a1b2c3d4e5f60718"}); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2025-06-01")
	if err != nil || d.Year() != 2025 || d.Month() != 6 {
		t.Fatalf("ParseISODate = %v, %v", d, err)
	}
	if _, err := ParseISODate("01/06/2025"); err == nil {
		t.Fatal("expected error")
	}
}
