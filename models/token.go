// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// IDTokenClaims is the claim set of an identity-provider ID token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, exp, iat,
// iss, aud) and adds the profile claims the provider places in every token.
// The client never verifies the signature: the token is only inspected to
// learn who is signed in and when the token expires, and every call that
// needs trust presents it back to the provider.
type IDTokenClaims struct {
	jwt.RegisteredClaims

	// UserID duplicates the subject claim under the provider's own key.
	UserID string `json:"user_id"`

	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// UID returns the stable user identifier, preferring the provider-specific
// user_id claim and falling back to the subject.
func (c IDTokenClaims) UID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}
