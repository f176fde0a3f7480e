package errors

import (
	"fmt"
	"net/http"
)

// Kind classifies an AppError independently of its transport status.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindForbidden          Kind = "forbidden"
	KindUnauthorized       Kind = "unauthorized"
	KindValidation         Kind = "validation_failed"
	KindBackendUnavailable Kind = "backend_unavailable"
	KindRateLimited        Kind = "rate_limited"
	KindInternal           Kind = "internal"
)

// FieldError describes one failing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	Kind             Kind
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	Details          []FieldError
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		if e.TechnicalMessage != "" {
			return e.TechnicalMessage
		}
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %v", e.TechnicalMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Is matches on Kind so callers can write errors.Is(err, apperrors.ErrNotFound).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind != "" && t.Kind == e.Kind && t.Code == ""
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		Kind:             kindForStatus(status),
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound           = &AppError{Kind: KindNotFound}
	ErrConflict           = &AppError{Kind: KindConflict}
	ErrForbidden          = &AppError{Kind: KindForbidden}
	ErrUnauthorized       = &AppError{Kind: KindUnauthorized}
	ErrValidation         = &AppError{Kind: KindValidation}
	ErrBackendUnavailable = &AppError{Kind: KindBackendUnavailable}
)

// NotFound reports that entity could not be resolved from the given reference.
func NotFound(entity, ref string) *AppError {
	return &AppError{
		Kind:             KindNotFound,
		TechnicalMessage: fmt.Sprintf("%s %q not found", entity, ref),
		UserMessage:      fmt.Sprintf(MsgNotFound, entity),
		Code:             ErrCodeNotFound,
		HTTPStatus:       http.StatusNotFound,
	}
}

func Conflict(userMessage string, err error) *AppError {
	return &AppError{
		Kind:             KindConflict,
		TechnicalMessage: userMessage,
		UserMessage:      userMessage,
		Code:             ErrCodeConflict,
		HTTPStatus:       http.StatusConflict,
		OriginalError:    err,
	}
}

func Forbidden(userMessage string) *AppError {
	return &AppError{
		Kind:             KindForbidden,
		TechnicalMessage: userMessage,
		UserMessage:      userMessage,
		Code:             ErrCodeForbidden,
		HTTPStatus:       http.StatusForbidden,
	}
}

func Unauthorized(userMessage string, err error) *AppError {
	return &AppError{
		Kind:             KindUnauthorized,
		TechnicalMessage: userMessage,
		UserMessage:      userMessage,
		Code:             ErrCodeUnauthorized,
		HTTPStatus:       http.StatusUnauthorized,
		OriginalError:    err,
	}
}

// Validation carries one entry per failing field.
func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Kind:             KindValidation,
		TechnicalMessage: fmt.Sprintf("validation failed on %d field(s)", len(fields)),
		UserMessage:      MsgInvalidParameters,
		Code:             ErrCodeInvalidParameters,
		HTTPStatus:       http.StatusBadRequest,
		Details:          fields,
	}
}

// Invalid is a single-field validation failure with its own user message.
func Invalid(field, userMessage string) *AppError {
	err := Validation(FieldError{Field: field, Message: userMessage})
	err.UserMessage = userMessage
	return err
}

// BackendUnavailable wraps a store failure; the caller sees a generic message only.
func BackendUnavailable(operation string, err error) *AppError {
	return &AppError{
		Kind:             KindBackendUnavailable,
		TechnicalMessage: fmt.Sprintf("%s failed", operation),
		UserMessage:      MsgInternalError,
		Code:             ErrCodeBackendUnavailable,
		HTTPStatus:       http.StatusInternalServerError,
		OriginalError:    err,
	}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusServiceUnavailable:
		return KindBackendUnavailable
	default:
		return KindInternal
	}
}

// Common error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInvalidParameters  = "INVALID_PARAMETERS"
	ErrCodeInternal           = "INTERNAL_ERROR"
)
