package adapter

import (
	"errors"
	"fmt"
)

// Classification service errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnreachable wraps transport failures: DNS, refused connections,
	// timeouts and cancelled contexts.
	ErrUnreachable = errors.New("service unreachable")

	// ErrUnexpectedResponse is returned when a 2xx body does not have the
	// documented shape.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// Identity provider errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrWeakPassword       = errors.New("weak password")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrTokenExpired       = errors.New("token expired or revoked")
	ErrUserDisabled       = errors.New("user disabled")
	ErrIdentity           = errors.New("identity provider error")
)

// StatusError is a non-2xx answer of the classification service. Message is
// the human-readable text extracted from the body, or "Error <status>:
// <status text>" when the body carries none. It unwraps to the sentinel for
// its status class.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return statusKind(e.StatusCode)
}

// IdentityError is an error answer of the identity provider. Code is the
// provider's error code, e.g. "EMAIL_EXISTS".
type IdentityError struct {
	StatusCode int
	Code       string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity provider: %d %s", e.StatusCode, e.Code)
}

func (e *IdentityError) Unwrap() error {
	return identityKind(e.Code)
}
