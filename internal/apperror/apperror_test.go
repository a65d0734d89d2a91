package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		status   int
		code     string
	}{
		{"invalid id", InvalidID("bad id"), ErrInvalidID, 400, "INVALID_ID"},
		{"invalid input", InvalidInput("bad body"), ErrInvalidInput, 400, "INVALID_INPUT"},
		{"unauthenticated", Unauthenticated("who?"), ErrUnauthenticated, 401, "UNAUTHENTICATED"},
		{"forbidden", Forbidden("not yours"), ErrForbidden, 403, "FORBIDDEN"},
		{"not found", NotFound("gone"), ErrNotFound, 404, "NOT_FOUND"},
		{"persistence", Persistence("db down"), ErrPersistence, 500, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}
			if got := HTTPStatus(tt.err); got != tt.status {
				t.Errorf("HTTPStatus = %d, want %d", got, tt.status)
			}
			if got := Code(tt.err); got != tt.code {
				t.Errorf("Code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("update video: %w", NotFound("Video not found"))
	if !errors.Is(err, ErrNotFound) {
		t.Error("wrapped error lost its sentinel")
	}
	if got := HTTPStatus(err); got != 404 {
		t.Errorf("HTTPStatus of wrapped = %d, want 404", got)
	}
}

func TestUnknownErrorIsInternal(t *testing.T) {
	err := errors.New("something else")
	if got := HTTPStatus(err); got != 500 {
		t.Errorf("HTTPStatus = %d, want 500", got)
	}
	if got := Code(err); got != "INTERNAL_ERROR" {
		t.Errorf("Code = %q, want INTERNAL_ERROR", got)
	}
}

func TestMessage_HidesInternals(t *testing.T) {
	if got := Message(Forbidden("You do not own this video")); got != "You do not own this video" {
		t.Errorf("Message = %q, want caller-facing text", got)
	}
	if got := Message(Persistence("pool exhausted: 10.0.0.5")); got != "Something went wrong" {
		t.Errorf("Message leaked internals: %q", got)
	}
	if got := Message(errors.New("raw driver error")); got != "Something went wrong" {
		t.Errorf("Message leaked raw error: %q", got)
	}
}
