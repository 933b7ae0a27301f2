package service

import "errors"

var (
	ErrAPINotConfigured     = errors.New("classification service URL is not configured")
	ErrSubmissionInFlight   = errors.New("a submission is already in flight")
	ErrModelWarmingUp       = errors.New("classification model is loading or rate limited")
	ErrClassificationFailed = errors.New("classification failed")
	ErrServiceUnreachable   = errors.New("service unreachable")

	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrWeakPassword           = errors.New("weak password")
	ErrInvalidEmail           = errors.New("invalid email")
	ErrTooManyAttempts        = errors.New("too many attempts")
	ErrInvalidCode            = errors.New("invalid verification code")
	ErrCodeSendFailed         = errors.New("verification code could not be sent")
	ErrResetEmailRequired     = errors.New("email is required for a password reset")
	ErrResetEmailFailed       = errors.New("password reset email could not be sent")
	ErrRegistrationFailed     = errors.New("registration failed")

	ErrFetchProfilesFailed = errors.New("profiles could not be fetched")
)

// UpstreamError is a failure reported by the classification service with a
// readable message. Message is already reduced to plain text.
type UpstreamError struct {
	Message string
	err     error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrClassificationFailed, e.err}
}
