package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.Profiles.ProjectID = "demo"
	cfg.Adapter.IdentityAPIKey = "web-key"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and starts from the defaults layer.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, defaults(), b.configs[0])
}

// ── defaults ──────────────────────────────────────────────────────────────────

func TestDefaults(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, 20*time.Minute, cfg.App.InactivityTimeout)
	assert.Equal(t, 8*time.Second, cfg.App.NoticeDuration)
	assert.NotEmpty(t, cfg.App.SessionKey)
	assert.Equal(t, BackendFirestore, cfg.Storage.Profiles.Backend)
	assert.Equal(t, "profiles", cfg.Storage.Profiles.Collection)
	assert.Equal(t, 1000, cfg.Storage.Profiles.FetchLimit)
	assert.Equal(t, 5, cfg.UI.PageSize)
	assert.Equal(t, 4*time.Second, cfg.UI.SidebarPersistDelay)
	assert.Equal(t, 4*time.Second, cfg.UI.SidebarAutoCollapse)
	assert.Empty(t, cfg.Adapter.APIURL)
}

func TestInstallationKey_Stable(t *testing.T) {
	assert.Equal(t, installationKey(), installationKey())
	assert.Len(t, installationKey(), 64)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnlyFailsValidation verifies that the defaults alone are
// not enough: the identity API key and the Firestore project are required.
func TestBuild_DefaultsOnlyFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that non-zero fields of later
// layers win and zero fields keep earlier values.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{Profiles: Profiles{ProjectID: "demo", FetchLimit: 10}},
			Adapter: Adapter{IdentityAPIKey: "first"},
		},
		&StructuredConfig{
			Adapter: Adapter{IdentityAPIKey: "second", APIURL: "https://api.example.com"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Adapter.IdentityAPIKey)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.APIURL)
	assert.Equal(t, 10, cfg.Storage.Profiles.FetchLimit)
	assert.Equal(t, "profiles", cfg.Storage.Profiles.Collection)
	assert.Equal(t, 20*time.Minute, cfg.App.InactivityTimeout)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_PathFromLastLayer verifies that the file path set by a later
// layer wins and the file's values are merged last.
func TestWithFile_PathFromLastLayer(t *testing.T) {
	ignored := writeTempJSONConfig(t, map[string]any{"adapter": map[string]any{"api_url": "ignored"}})
	used := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"api_url": "from-file", "identity_api_key": "k"},
		"storage": map[string]any{"profiles": map[string]any{"project_id": "demo"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: ignored, Adapter: Adapter{APIURL: "from-env"}},
		&StructuredConfig{ConfigFilePath: used},
	)

	cfg, err := b.withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Adapter.APIURL)
	assert.Equal(t, used, cfg.ConfigFilePath)
}

func TestWithFile_NoPath(t *testing.T) {
	b := newConfigBuilder().withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_BadPathSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/definitely/missing.json"})

	b.withFile()
	assert.Error(t, b.err)
}

// ── withFlags / withEnv ───────────────────────────────────────────────────────

func TestWithFlags_NilFlagSet(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_PROFILES_PROJECT_ID": "demo",
		"ADAPTER_IDENTITY_API_KEY":    "env-key",
		"ADAPTER_API_URL":             "https://env.example.com",
	})
	fs := newFlagSet(t, "--api-url", "https://flag.example.com", "--page-size", "9")

	cfg, err := GetStructuredConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", cfg.Adapter.APIURL)
	assert.Equal(t, "env-key", cfg.Adapter.IdentityAPIKey)
	assert.Equal(t, 9, cfg.UI.PageSize)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid firestore", mutate: func(*StructuredConfig) {}},
		{
			name: "valid postgres",
			mutate: func(c *StructuredConfig) {
				c.Storage.Profiles.Backend = BackendPostgres
				c.Storage.Profiles.DSN = "postgres://x"
			},
		},
		{
			name:   "empty api url is allowed",
			mutate: func(c *StructuredConfig) { c.Adapter.APIURL = "" },
		},
		{
			name:    "missing session key",
			mutate:  func(c *StructuredConfig) { c.App.SessionKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown backend",
			mutate:  func(c *StructuredConfig) { c.Storage.Profiles.Backend = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.Profiles.Backend = BackendPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero fetch limit",
			mutate:  func(c *StructuredConfig) { c.Storage.Profiles.FetchLimit = 0 },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing identity key",
			mutate:  func(c *StructuredConfig) { c.Adapter.IdentityAPIKey = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero refresh interval",
			mutate:  func(c *StructuredConfig) { c.Workers.TokenRefreshInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero page size",
			mutate:  func(c *StructuredConfig) { c.UI.PageSize = 0 },
			wantErr: ErrInvalidUIConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
