// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The classification API URL is allowed to be empty; analysis then reports
// that the backend is not configured instead of failing at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionKey == "" || cfg.App.InactivityTimeout <= 0 || cfg.App.NoticeDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.Local.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	profiles := cfg.Storage.Profiles
	if profiles.FetchLimit <= 0 || profiles.Collection == "" {
		return ErrInvalidStorageConfigs
	}
	switch profiles.Backend {
	case BackendFirestore:
		if profiles.ProjectID == "" {
			return fmt.Errorf("%w: firestore backend requires a project id", ErrInvalidStorageConfigs)
		}
	case BackendPostgres:
		if profiles.DSN == "" {
			return fmt.Errorf("%w: postgres backend requires a dsn", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown profiles backend %q", ErrInvalidStorageConfigs, profiles.Backend)
	}

	if cfg.Adapter.IdentityAPIKey == "" || cfg.Adapter.IdentityURL == "" || cfg.Adapter.TokenURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TokenRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.UI.PageSize <= 0 || cfg.UI.SidebarPersistDelay <= 0 || cfg.UI.SidebarAutoCollapse <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
