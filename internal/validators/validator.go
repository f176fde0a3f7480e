package validators

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "hypergo-properties/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ISODateLayouts are the accepted forms of a date-only or full timestamp input.
var ISODateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// ParseISODate parses s with the first matching layout in ISODateLayouts.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range ISODateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseISODate(fl.Field().String())
		return err == nil
	})
	return v
}

// validate runs struct validation and converts failures into a Validation AppError.
func validate(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return apperrors.Validation(apperrors.FieldError{Field: "body", Message: err.Error()})
	}
	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return apperrors.Validation(fields...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "hexcolor":
		return "must be a hex color such as #1a2b3c"
	case "hexadecimal":
		return "must be hexadecimal"
	case "isodate":
		return "must be an ISO-8601 date"
	default:
		return "is invalid"
	}
}
