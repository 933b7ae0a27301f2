package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned when an empty string is passed where a JWT is
// expected.
var ErrEmptyToken = errors.New("empty token")

// ParseIDToken decodes the claims of an identity-provider ID token without
// verifying its signature.
//
// The client holds the token only to present it back to the provider, so
// the signature is the provider's concern. ParseIDToken is used to learn the
// user identifier, profile claims and expiry of a freshly issued token.
//
// Returns an error if the token is empty, malformed, or carries no subject.
//
// Example usage:
//
//	claims, err := utils.ParseIDToken(resp.IDToken)
//	if err != nil {
//	    // treat as signed out
//	}
func ParseIDToken(tokenString string) (models.IDTokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return models.IDTokenClaims{}, ErrEmptyToken
	}

	claims := models.IDTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.IDTokenClaims{}, fmt.Errorf("error parsing id token: %w", err)
	}

	if claims.UID() == "" {
		return models.IDTokenClaims{}, errors.New("id token carries no subject")
	}

	return claims, nil
}
