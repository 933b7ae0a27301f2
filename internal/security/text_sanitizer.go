// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package security reduces untrusted text to inert plain text before it is
// shown to the user.
//
// Server-provided error messages and stored reason lines are never
// interpreted: markup is removed with a bluemonday strict policy, terminal
// escape sequences are stripped, and the remaining control characters are
// dropped.
package security

import (
	"html"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizer turns untrusted text into plain text.
type TextSanitizer interface {
	// PlainText returns s without markup, escape sequences or control
	// characters other than newline and tab. Surrounding whitespace is
	// trimmed. The same input always yields the same output.
	PlainText(s string) string
}

type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer returns a TextSanitizer backed by bluemonday's strict
// policy, which allows no elements at all.
func NewTextSanitizer() TextSanitizer {
	return &textSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *textSanitizer) PlainText(raw string) string {
	if raw == "" {
		return ""
	}

	text := ansi.Strip(raw)
	text = html.UnescapeString(s.policy.Sanitize(text))
	text = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)

	return strings.TrimSpace(text)
}

var defaultSanitizer = NewTextSanitizer()

// PlainText sanitizes s with a shared strict sanitizer.
func PlainText(s string) string {
	return defaultSanitizer.PlainText(s)
}
