package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure. The HTTP layer maps kinds to status
// codes; services never touch status codes directly.
type Kind int

const (
	KindUnknown Kind = iota
	// KindAuthentication: missing, invalid or expired credential. Rejected
	// before any domain logic runs.
	KindAuthentication
	// KindAuthorization: valid principal, insufficient rights. Always checked
	// after existence checks.
	KindAuthorization
	// KindNotFound: referenced order or message is absent.
	KindNotFound
	// KindConflict: a business-rule rejection, e.g. chat closed because the
	// order reached a terminal status. Distinct from a missing resource.
	KindConflict
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Authentication(message string) *AppError {
	return New(KindAuthentication, message)
}

func Authorization(message string) *AppError {
	return New(KindAuthorization, message)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, message)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message)
}

// StatusCode maps a kind to the HTTP status the API exposes. Chat-closed
// conflicts surface as 400, matching the request/response contract.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	if appErr, ok := As(err); ok {
		return appErr.Kind == kind
	}
	return false
}
