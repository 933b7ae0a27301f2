// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── InputValidator ────────────────────────────────────────────────────────────

func TestInputValidator_Credentials(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name  string
		creds models.Credentials
		want  error
	}{
		{"valid", models.Credentials{Email: "ana@example.com", Password: "x"}, nil},
		{"bad email", models.Credentials{Email: "ana", Password: "x"}, ErrInvalidEmail},
		{"empty email", models.Credentials{Password: "x"}, ErrInvalidEmail},
		{"empty password", models.Credentials{Email: "ana@example.com"}, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInputValidator_Registration(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()
	valid := models.Registration{
		DisplayName: "Ana Pérez",
		Email:       "ana@example.com",
		Password:    "secreto1",
		Confirm:     "secreto1",
	}

	require.NoError(t, v.Validate(ctx, &valid))

	short := valid
	short.Password, short.Confirm = "abc", "abc"
	assert.ErrorIs(t, v.Validate(ctx, short), ErrWeakPassword)

	mismatch := valid
	mismatch.Confirm = "otra-cosa"
	assert.ErrorIs(t, v.Validate(ctx, mismatch), ErrPasswordsDoNotMatch)

	noName := valid
	noName.DisplayName = "A"
	assert.ErrorIs(t, v.Validate(ctx, noName), ErrInvalidDisplayName)
}

func TestInputValidator_FieldScope(t *testing.T) {
	v := NewInputValidator()
	reg := models.Registration{Email: "ana@example.com"}

	assert.NoError(t, v.Validate(context.Background(), reg, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), reg, FieldPassword), ErrEmptyPassword)
}

func TestInputValidator_VerificationCode(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.VerificationCodeRequest{Email: "a@b.co", Code: "012345"}))
	assert.ErrorIs(t, v.Validate(ctx, models.VerificationCodeRequest{Email: "a@b.co", Code: "12a456"}), ErrInvalidCode)
	assert.ErrorIs(t, v.Validate(ctx, models.VerificationCodeRequest{Email: "a@b.co", Code: "1234"}), ErrInvalidCode)
}

func TestInputValidator_UnsupportedType(t *testing.T) {
	err := NewInputValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ── Clean helpers ─────────────────────────────────────────────────────────────

func TestCleanText(t *testing.T) {
	got, err := CleanText("  hola  ")
	require.NoError(t, err)
	assert.Equal(t, "hola", got)

	_, err = CleanText("")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = CleanText(" \n\t ")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestCleanUsername(t *testing.T) {
	tests := map[string]string{
		"ana_perez":   "ana_perez",
		"@ana_perez":  "ana_perez",
		"  @@ana ":    "ana",
		"ana@example": "ana@example",
	}
	for in, want := range tests {
		got, err := CleanUsername(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "   ", "@", " @@ "} {
		_, err := CleanUsername(in)
		assert.ErrorIs(t, err, ErrEmptyUsername, in)
	}
}

func TestCleanCode(t *testing.T) {
	got, err := CleanCode(" 004213 ")
	require.NoError(t, err)
	assert.Equal(t, "004213", got)

	for _, in := range []string{"", "12345", "1234567", "12345a", "１２３４５６"} {
		_, err := CleanCode(in)
		assert.ErrorIs(t, err, ErrInvalidCode, in)
	}
}

func TestNewVerificationCode(t *testing.T) {
	for range 50 {
		code, err := NewVerificationCode()
		require.NoError(t, err)
		_, err = CleanCode(code)
		require.NoError(t, err, code)
	}
}
