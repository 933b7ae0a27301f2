package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyText           = errors.New("text is required")
	ErrEmptyUsername       = errors.New("username is required")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmptyPassword       = errors.New("password is required")
	ErrWeakPassword        = errors.New("password is too short")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrInvalidDisplayName  = errors.New("invalid display name")
	ErrInvalidCode         = errors.New("verification code must be 6 digits")
)
