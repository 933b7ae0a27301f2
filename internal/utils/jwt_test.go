package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestParseIDToken_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signTestToken(t, &models.IDTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID: "uid-1",
		Email:  "ana@example.com",
		Name:   "Ana",
	})

	claims, err := ParseIDToken(raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.UID() != "uid-1" {
		t.Errorf("expected uid 'uid-1', got %q", claims.UID())
	}
	if claims.Email != "ana@example.com" || claims.Name != "Ana" {
		t.Errorf("unexpected profile claims: %+v", claims)
	}
	if !claims.ExpiresAt.Time.Equal(exp) {
		t.Errorf("expected exp %s, got %s", exp, claims.ExpiresAt.Time)
	}
}

func TestParseIDToken_SubjectFallback(t *testing.T) {
	raw := signTestToken(t, &models.IDTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-only"},
	})

	claims, err := ParseIDToken(raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.UID() != "sub-only" {
		t.Errorf("expected 'sub-only', got %q", claims.UID())
	}
}

func TestParseIDToken_Errors(t *testing.T) {
	noSubject := signTestToken(t, &models.IDTokenClaims{Email: "x@example.com"})

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"garbage", "not-a-jwt"},
		{"no subject", noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseIDToken(tt.token); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseIDToken_EmptySentinel(t *testing.T) {
	_, err := ParseIDToken("")
	if !errors.Is(err, ErrEmptyToken) {
		t.Errorf("expected ErrEmptyToken, got %v", err)
	}
}
