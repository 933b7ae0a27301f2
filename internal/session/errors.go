package session

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a signed-in
	// user when the store is anonymous.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoRefreshToken is returned by Refresh when the session carries no
	// refresh token.
	ErrNoRefreshToken = errors.New("session has no refresh token")

	// ErrSessionChanged is returned by Refresh when the user signed out or
	// another session took over while the tokens were being exchanged.
	ErrSessionChanged = errors.New("session changed during refresh")
)
