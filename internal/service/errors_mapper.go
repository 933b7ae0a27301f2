// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-guard/internal/adapter"
	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/internal/security"
	"github.com/MKhiriev/go-profile-guard/internal/validators"
	"github.com/MKhiriev/go-profile-guard/models"
)

// warmUpMarkers are fragments of the messages the classification service
// sends while its model is still loading.
var warmUpMarkers = []string{"cargando", "loading", "please wait", "espera"}

// mapAdapterError translates a classification adapter error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnreachable):
		return fmt.Errorf("%w: %w", ErrServiceUnreachable, err)
	case errors.Is(err, adapter.ErrTooManyRequests), errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrModelWarmingUp, err)
	case errors.Is(err, adapter.ErrUnexpectedResponse):
		return fmt.Errorf("%w: %w", ErrClassificationFailed, err)
	}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		msg := security.PlainText(statusErr.Message)
		if isWarmingUp(msg) {
			return fmt.Errorf("%w: %w", ErrModelWarmingUp, err)
		}
		return &UpstreamError{Message: msg, err: err}
	}

	return fmt.Errorf("%w: %w", ErrClassificationFailed, err)
}

// mapIdentityError translates an identity adapter error raised outside of
// sign-in. Sign-in failures are always reported as ErrInvalidCredentials.
func mapIdentityError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnreachable):
		return fmt.Errorf("%w: %w", ErrServiceUnreachable, err)
	case errors.Is(err, adapter.ErrEmailExists):
		return fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
	case errors.Is(err, adapter.ErrWeakPassword):
		return fmt.Errorf("%w: %w", ErrWeakPassword, err)
	case errors.Is(err, adapter.ErrInvalidEmail):
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	case errors.Is(err, adapter.ErrTooManyAttempts):
		return fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
	}
	return err
}

func isWarmingUp(msg string) bool {
	msg = strings.ToLower(msg)
	for _, marker := range warmUpMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// UserMessage returns the notice kind and the text shown to the user for
// err. Errors that are not part of any known category get a generic text:
// provider diagnostics never reach the screen.
func UserMessage(err error) (models.NoticeKind, string) {
	var upstream *UpstreamError

	switch {
	case err == nil:
		return models.NoticeInfo, ""

	case errors.Is(err, validators.ErrEmptyText):
		return models.NoticeWarning, app.MsgEmptyText
	case errors.Is(err, validators.ErrEmptyUsername):
		return models.NoticeWarning, app.MsgEmptyUsername
	case errors.Is(err, ErrAPINotConfigured):
		return models.NoticeDanger, app.MsgAPINotConfigured
	case errors.Is(err, ErrModelWarmingUp):
		return models.NoticeWarning, app.MsgModelWarmingUp
	case errors.Is(err, ErrSubmissionInFlight):
		return models.NoticeInfo, app.MsgSubmissionInFlight
	case errors.As(err, &upstream) && upstream.Message != "":
		return models.NoticeDanger, upstream.Message
	case errors.Is(err, ErrClassificationFailed):
		return models.NoticeDanger, app.MsgClassificationFailed
	case errors.Is(err, ErrServiceUnreachable):
		return models.NoticeDanger, app.MsgServiceUnreachable

	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, validators.ErrEmptyPassword):
		return models.NoticeDanger, app.MsgInvalidCredentials
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return models.NoticeDanger, app.MsgEmailAlreadyRegistered
	case errors.Is(err, ErrWeakPassword), errors.Is(err, validators.ErrWeakPassword):
		return models.NoticeWarning, app.MsgWeakPassword
	case errors.Is(err, validators.ErrPasswordsDoNotMatch):
		return models.NoticeWarning, app.MsgPasswordsDoNotMatch
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, validators.ErrInvalidEmail):
		return models.NoticeWarning, app.MsgInvalidEmail
	case errors.Is(err, validators.ErrInvalidDisplayName):
		return models.NoticeWarning, app.MsgInvalidDisplayName
	case errors.Is(err, ErrTooManyAttempts):
		return models.NoticeWarning, app.MsgTooManyAttempts
	case errors.Is(err, ErrInvalidCode), errors.Is(err, validators.ErrInvalidCode):
		return models.NoticeDanger, app.MsgInvalidCode
	case errors.Is(err, ErrCodeSendFailed):
		return models.NoticeDanger, app.MsgCodeSendFailed
	case errors.Is(err, ErrResetEmailRequired):
		return models.NoticeWarning, app.MsgResetEmailRequired
	case errors.Is(err, ErrResetEmailFailed):
		return models.NoticeDanger, app.MsgResetEmailFailed

	case errors.Is(err, ErrFetchProfilesFailed):
		return models.NoticeDanger, app.MsgFetchProfilesFailed
	}

	return models.NoticeDanger, app.MsgUnexpected
}
