// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// CleanText trims a caption and rejects it when it is blank.
func CleanText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// CleanUsername trims a profile handle, removes every leading "@" and
// rejects the result when nothing is left.
func CleanUsername(username string) (string, error) {
	username = strings.TrimLeft(strings.TrimSpace(username), "@")
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	return username, nil
}

// CleanCode trims a verification code and checks that it is exactly six
// ASCII digits.
func CleanCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if len(code) != 6 {
		return "", ErrInvalidCode
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return "", ErrInvalidCode
		}
	}
	return code, nil
}

// NewVerificationCode returns a uniformly random six-digit code, zero
// padded.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("error generating verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
