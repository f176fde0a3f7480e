package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsCarryKindAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		kind   Kind
		status int
	}{
		{"not found", NotFound("Property", "UNKNOWN"), KindNotFound, http.StatusNotFound},
		{"conflict", Conflict(MsgAlreadyFavorited, nil), KindConflict, http.StatusConflict},
		{"forbidden", Forbidden(MsgNotOwner), KindForbidden, http.StatusForbidden},
		{"unauthorized", Unauthorized(MsgAuthRequired, nil), KindUnauthorized, http.StatusUnauthorized},
		{"validation", Validation(FieldError{Field: "title", Message: "is required"}), KindValidation, http.StatusBadRequest},
		{"backend", BackendUnavailable("find property", fmt.Errorf("connection refused")), KindBackendUnavailable, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if tt.err.HTTPStatus != tt.status {
				t.Errorf("status = %d, want %d", tt.err.HTTPStatus, tt.status)
			}
		})
	}
}

func TestErrorsIsMatchesKind(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", NotFound("Property", "PROP9"))
	if !stderrors.Is(wrapped, ErrNotFound) {
		t.Fatal("expected wrapped NotFound to match ErrNotFound")
	}
	if stderrors.Is(wrapped, ErrConflict) {
		t.Fatal("NotFound must not match ErrConflict")
	}
}

func TestBackendUnavailableHidesCause(t *testing.T) {
	err := BackendUnavailable("search properties", fmt.Errorf("mongo: server selection timeout"))
	if err.UserMessage != MsgInternalError {
		t.Errorf("user message leaked detail: %q", err.UserMessage)
	}
	if !stderrors.Is(err, ErrBackendUnavailable) {
		t.Error("expected backend unavailable kind")
	}
}

func TestMapError(t *testing.T) {
	if MapError(nil) != nil {
		t.Fatal("nil error must map to nil")
	}

	orig := Forbidden(MsgNotSender)
	if got := MapError(fmt.Errorf("delete: %w", orig)); got != orig {
		t.Errorf("expected wrapped AppError to be returned as-is")
	}

	if got := MapError(context.DeadlineExceeded); got.Kind != KindBackendUnavailable {
		t.Errorf("deadline kind = %q", got.Kind)
	}

	got := MapError(fmt.Errorf("boom"))
	if got.Code != ErrCodeInternal || got.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("unexpected mapping: %+v", got)
	}
}
