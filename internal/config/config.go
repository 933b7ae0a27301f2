// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// profile-guard client. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, timer and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local database and the profile store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the endpoints of the classification service and the
	// identity provider.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// UI holds presentation timings and sizes.
	UI UI `envPrefix:"UI_"`

	// ConfigFilePath is the optional path to a JSON (.json) or YAML
	// (.yaml, .yml) configuration file. When non-empty, the file is parsed
	// and merged on top of the values already loaded.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionKey is the secret the local session mirror is sealed with.
	// When empty a per-installation key is derived from the host and user.
	// Env: APP_SESSION_KEY
	SessionKey string `env:"SESSION_KEY"`

	// InactivityTimeout is the idle period after which the user is signed
	// out (default 20m).
	// Env: APP_INACTIVITY_TIMEOUT
	InactivityTimeout time.Duration `env:"INACTIVITY_TIMEOUT"`

	// NoticeDuration is how long a transient notice stays visible
	// (default 8s).
	// Env: APP_NOTICE_DURATION
	NoticeDuration time.Duration `env:"NOTICE_DURATION"`

	// LogFile is where the client writes its JSON log lines. The terminal
	// belongs to the TUI, so logs never go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// Local holds the client-side SQLite database settings.
	Local LocalDB `envPrefix:"LOCAL_"`

	// Profiles holds the settings of the store the profile checks are
	// read from.
	Profiles Profiles `envPrefix:"PROFILES_"`
}

// LocalDB holds connection settings for the local SQLite database.
type LocalDB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Profiles selects and configures the profile store.
type Profiles struct {
	// Backend is "firestore" (default) or "postgres".
	// Env: STORAGE_PROFILES_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the PostgreSQL connection string, used by the postgres backend.
	// Env: STORAGE_PROFILES_DSN
	DSN string `env:"DSN"`

	// ProjectID is the Firestore project, used by the firestore backend.
	// Env: STORAGE_PROFILES_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// CredentialsFile is an optional service-account key file for Firestore.
	// Application default credentials are used when empty.
	// Env: STORAGE_PROFILES_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	// Collection is the document collection (or table) name.
	// Env: STORAGE_PROFILES_COLLECTION
	Collection string `env:"COLLECTION"`

	// FetchLimit caps how many documents one history load reads
	// (default 1000).
	// Env: STORAGE_PROFILES_FETCH_LIMIT
	FetchLimit int `env:"FETCH_LIMIT"`

	// Migrate applies the bundled schema to the postgres backend on start.
	// Env: STORAGE_PROFILES_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Adapter holds configuration for external service integrations.
type Adapter struct {
	// APIURL is the base URL of the classification service. It may be
	// empty; analysis then reports that the backend is not configured.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds every outbound request. Zero keeps the
	// platform default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// IdentityAPIKey is the identity provider's web API key.
	// Env: ADAPTER_IDENTITY_API_KEY
	IdentityAPIKey string `env:"IDENTITY_API_KEY"`

	// IdentityURL is the base URL of the identity toolkit API.
	// Env: ADAPTER_IDENTITY_URL
	IdentityURL string `env:"IDENTITY_URL"`

	// TokenURL is the base URL of the secure token API.
	// Env: ADAPTER_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// TokenRefreshInterval is how often the token refresher checks whether
	// the ID token is about to expire (default 1m).
	// Env: WORKERS_TOKEN_REFRESH_INTERVAL
	TokenRefreshInterval time.Duration `env:"TOKEN_REFRESH_INTERVAL"`
}

// UI holds presentation settings.
type UI struct {
	// PageSize is the number of history rows per page (default 5).
	// Env: UI_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// SidebarPersistDelay debounces saving the sidebar state (default 4s).
	// Env: UI_SIDEBAR_PERSIST_DELAY
	SidebarPersistDelay time.Duration `env:"SIDEBAR_PERSIST_DELAY"`

	// SidebarAutoCollapse closes an opened sidebar after this delay
	// (default 4s).
	// Env: UI_SIDEBAR_AUTO_COLLAPSE
	SidebarAutoCollapse time.Duration `env:"SIDEBAR_AUTO_COLLAPSE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory (exported into the environment)
//  2. Environment variables
//  3. Command-line flags registered with [RegisterFlags] on fs
//  4. JSON or YAML file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(fs).
		withFile().
		build()
}
