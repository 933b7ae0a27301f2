// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-profile-guard/internal/session"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// sessionGate resolves the stored session before a non-interactive command
// runs.
type sessionGate interface {
	Start(ctx context.Context) error
	State() session.State
}
