// Package apperror defines the error taxonomy shared by services and handlers.
// Services return errors wrapping one of the sentinels below; handlers match
// them with errors.Is and map them to HTTP responses.
package apperror

import "errors"

var (
	ErrInvalidID       = errors.New("invalid identifier")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrPersistence     = errors.New("persistence failure")
)

// Error carries a caller-facing message on top of a taxonomy sentinel.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func InvalidID(msg string) error       { return &Error{Kind: ErrInvalidID, Message: msg} }
func InvalidInput(msg string) error    { return &Error{Kind: ErrInvalidInput, Message: msg} }
func Unauthenticated(msg string) error { return &Error{Kind: ErrUnauthenticated, Message: msg} }
func Forbidden(msg string) error       { return &Error{Kind: ErrForbidden, Message: msg} }
func NotFound(msg string) error        { return &Error{Kind: ErrNotFound, Message: msg} }
func Persistence(msg string) error     { return &Error{Kind: ErrPersistence, Message: msg} }

// Code returns the wire error code for an error from this taxonomy.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID"
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrUnauthenticated):
		return "UNAUTHENTICATED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// Message returns the caller-facing message for an error from this taxonomy.
// Unrecognized errors get a generic message so internals never leak.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if !errors.Is(err, ErrPersistence) {
			return e.Message
		}
	}
	return "Something went wrong"
}

// HTTPStatus returns the HTTP status code for an error from this taxonomy.
// Unrecognized errors map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidInput):
		return 400
	case errors.Is(err, ErrUnauthenticated):
		return 401
	case errors.Is(err, ErrForbidden):
		return 403
	case errors.Is(err, ErrNotFound):
		return 404
	default:
		return 500
	}
}
