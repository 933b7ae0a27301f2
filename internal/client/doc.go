// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the profile-guard client runtime.
//
// It wires configuration, storage, the external adapters, the session store
// and the services into a single process lifecycle, and exposes them through
// a cobra command tree: the interactive terminal UI as the root command and
// non-interactive history, analyze, verify-profile, logout and version
// subcommands.
package client
