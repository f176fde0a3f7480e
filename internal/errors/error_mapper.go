package errors

import (
	"context"
	"errors"
	"net/http"
)

// MapError converts any error into an AppError suitable for a response.
// Unknown errors become INTERNAL_ERROR with the technical text preserved for logs only.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &AppError{
			Kind:             KindBackendUnavailable,
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeBackendUnavailable,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	default:
		return &AppError{
			Kind:             KindInternal,
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
