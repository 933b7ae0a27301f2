// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-guard/internal/adapter"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/validators"
	"github.com/MKhiriev/go-profile-guard/models"
)

// codeGenerator returns a new six-digit verification code.
type codeGenerator func() (string, error)

type authService struct {
	sessions       SessionManager
	identity       adapter.IdentityAdapter
	classification adapter.ClassificationAdapter
	validator      validators.Validator
	newCode        codeGenerator

	logger *logger.Logger
}

func NewAuthService(
	sessions SessionManager,
	identity adapter.IdentityAdapter,
	classification adapter.ClassificationAdapter,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		sessions:       sessions,
		identity:       identity,
		classification: classification,
		validator:      validator,
		newCode:        validators.NewVerificationCode,
		logger:         logger,
	}
}

func (a *authService) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, err
	}

	session, err := a.sessions.SignIn(ctx, creds)
	if err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, adapter.ErrUnreachable) {
			log.Warn().Err(err).Str("func", "authService.SignIn").Msg("identity provider unreachable")
			return models.Session{}, fmt.Errorf("%w: %w", ErrServiceUnreachable, err)
		}
		log.Info().Err(err).Str("func", "authService.SignIn").Msg("sign in rejected")
		return models.Session{}, ErrInvalidCredentials
	}

	return session, nil
}

func (a *authService) RequestRegistration(ctx context.Context, reg models.Registration) error {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.DisplayName = strings.TrimSpace(reg.DisplayName)
	if err := a.validator.Validate(ctx, reg); err != nil {
		return err
	}

	return a.sendCode(ctx, reg.Email)
}

func (a *authService) ConfirmRegistration(ctx context.Context, reg models.Registration, code string) (models.Session, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.DisplayName = strings.TrimSpace(reg.DisplayName)
	if err := a.validator.Validate(ctx, reg); err != nil {
		return models.Session{}, err
	}

	code, err := validators.CleanCode(code)
	if err != nil {
		return models.Session{}, err
	}

	valid, err := a.classification.CheckVerificationCode(ctx, models.VerificationCodeRequest{Email: reg.Email, Code: code})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "authService.ConfirmRegistration").Msg("failed to check verification code")
		if errors.Is(err, adapter.ErrUnreachable) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrServiceUnreachable, err)
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}
	if !valid {
		return models.Session{}, ErrInvalidCode
	}

	session, err := a.sessions.SignUp(ctx, reg)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "authService.ConfirmRegistration").Msg("sign up failed")
		if mapped := mapIdentityError(err); mapped != err {
			return models.Session{}, mapped
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	return session, nil
}

func (a *authService) ResendCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := a.validator.Validate(ctx, models.Credentials{Email: email}, validators.FieldEmail); err != nil {
		return err
	}
	return a.sendCode(ctx, email)
}

func (a *authService) SendPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrResetEmailRequired
	}
	if err := a.validator.Validate(ctx, models.Credentials{Email: email}, validators.FieldEmail); err != nil {
		return err
	}

	if err := a.identity.SendPasswordReset(ctx, email); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "authService.SendPasswordReset").Msg("failed to send password reset email")
		return fmt.Errorf("%w: %w", ErrResetEmailFailed, err)
	}
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.sessions.SignOut(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.SignOut").Msg("failed to clear local session")
		return err
	}
	return nil
}

func (a *authService) sendCode(ctx context.Context, email string) error {
	code, err := a.newCode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCodeSendFailed, err)
	}

	err = a.classification.SendVerificationCode(ctx, models.VerificationCodeRequest{Email: email, Code: code})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "authService.sendCode").Msg("failed to send verification code")
		if errors.Is(err, adapter.ErrUnreachable) {
			return fmt.Errorf("%w: %w", ErrServiceUnreachable, err)
		}
		return fmt.Errorf("%w: %w", ErrCodeSendFailed, err)
	}
	return nil
}
