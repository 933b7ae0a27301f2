// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client use cases of profile-guard. Services
// validate user input, call the adapters and stores, and translate every
// failure into one of the sentinel errors of this package so that the TUI
// and the CLI can render it with [UserMessage].
package service

import (
	"context"

	"github.com/MKhiriev/go-profile-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionManager is the part of the session store the auth service drives.
// It is satisfied by *session.Store.
type SessionManager interface {
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)
	SignUp(ctx context.Context, reg models.Registration) (models.Session, error)
	SignOut(ctx context.Context) error
	Current() (models.Session, bool)
}

// AuthService covers sign-in, the two-step registration with an e-mailed
// verification code, password reset and sign-out.
type AuthService interface {
	// SignIn authenticates the user. Every rejection by the identity provider
	// is reported as ErrInvalidCredentials.
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RequestRegistration validates reg and e-mails a fresh six-digit code to
	// reg.Email. No account is created yet.
	RequestRegistration(ctx context.Context, reg models.Registration) error

	// ConfirmRegistration checks code against the one sent to reg.Email and,
	// when it matches, creates the account and signs it in.
	ConfirmRegistration(ctx context.Context, reg models.Registration, code string) (models.Session, error)

	// ResendCode e-mails a new code, replacing the previous one.
	ResendCode(ctx context.Context, email string) error

	// SendPasswordReset asks the identity provider to e-mail a reset link.
	SendPasswordReset(ctx context.Context, email string) error

	// SignOut ends the session and clears the local mirror.
	SignOut(ctx context.Context) error
}

// ClassificationService submits captions and usernames to the
// classification service. Only one submission may run at a time.
type ClassificationService interface {
	// AnalyzeText classifies a caption. Blank text is rejected without a
	// request.
	AnalyzeText(ctx context.Context, text string) (models.Classification, error)

	// VerifyProfile analyzes an Instagram account. Leading "@" characters are
	// removed; a blank username is rejected without a request.
	VerifyProfile(ctx context.Context, username string) (models.ProfileVerification, error)

	// InFlight reports whether a submission is waiting for its answer.
	InFlight() bool
}

// HistoryService reads the stored profile checks. It satisfies
// history.Source.
type HistoryService interface {
	ListProfiles(ctx context.Context, limit int) ([]models.RawProfile, error)

	// Records returns the normalized records of up to limit documents, newest
	// check first.
	Records(ctx context.Context, limit int) ([]models.ProfileCheckRecord, error)
}

// PreferencesService persists the small UI preferences of the client.
type PreferencesService interface {
	// SidebarOpen returns the persisted sidebar state. Without a stored value
	// the sidebar is open.
	SidebarOpen(ctx context.Context) bool

	SetSidebarOpen(ctx context.Context, open bool) error
}
