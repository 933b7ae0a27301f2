// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the two external
// HTTP collaborators of profile-guard: the classification service and the
// identity provider.
//
// Error values defined in errors.go are mapped from HTTP responses by
// mapHTTPError and mapIdentityError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrTooManyRequests] for 429,
// [ErrInvalidCredentials] for a rejected password).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-profile-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ClassificationAdapter talks to the classification service. Every call is a
// single POST without retries; implementations attach the current ID token
// and a request ID to each request.
type ClassificationAdapter interface {
	// SetToken stores the ID token attached as a bearer token to subsequent
	// requests. An empty token removes the header.
	SetToken(token string)

	// Predict classifies a caption. POST /sentiment/predict {text}.
	Predict(ctx context.Context, text string) (models.Classification, error)

	// VerifyProfile classifies an Instagram account.
	// POST /api/verificar-perfil {username}.
	VerifyProfile(ctx context.Context, username string) (models.ProfileVerification, error)

	// SendVerificationCode asks the service to e-mail code to email.
	// POST /verify-email/send-code {email, code}.
	SendVerificationCode(ctx context.Context, req models.VerificationCodeRequest) error

	// CheckVerificationCode reports whether code is the one sent to email.
	// POST /verify-email/check-code {email, code}.
	CheckVerificationCode(ctx context.Context, req models.VerificationCodeRequest) (bool, error)
}

// IdentityAdapter talks to the identity provider's REST API.
type IdentityAdapter interface {
	// SignIn exchanges an e-mail and password for a session.
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)

	// SignUp creates an account and returns its first session.
	SignUp(ctx context.Context, creds models.Credentials) (models.Session, error)

	// UpdateProfile sets the display name of the account behind idToken and
	// returns the updated profile fields.
	UpdateProfile(ctx context.Context, idToken, displayName string) (models.Session, error)

	// Lookup returns the profile fields of the account behind idToken.
	// An expired or revoked token yields [ErrTokenExpired].
	Lookup(ctx context.Context, idToken string) (models.Session, error)

	// Refresh exchanges a refresh token for fresh tokens.
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)

	// SendPasswordReset asks the provider to e-mail a password reset link.
	SendPasswordReset(ctx context.Context, email string) error
}
