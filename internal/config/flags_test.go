package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newFlagSet(t,
		"-c", "/etc/profile-guard.yaml",
		"--session-key", "secret",
		"--inactivity-timeout", "30m",
		"--notice-duration", "4s",
		"--log-file", "/tmp/client.log",
		"--local-db", "/tmp/local.db",
		"--profiles-backend", "postgres",
		"--profiles-dsn", "postgres://localhost/profiles",
		"--project-id", "demo",
		"--credentials-file", "/etc/key.json",
		"--collection", "checks",
		"--fetch-limit", "50",
		"--api-url", "https://api.example.com",
		"--request-timeout", "15s",
		"--identity-api-key", "web-key",
		"--token-refresh-interval", "90s",
		"--page-size", "8",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/etc/profile-guard.yaml", cfg.ConfigFilePath)
	assert.Equal(t, App{
		SessionKey:        "secret",
		InactivityTimeout: 30 * time.Minute,
		NoticeDuration:    4 * time.Second,
		LogFile:           "/tmp/client.log",
	}, cfg.App)
	assert.Equal(t, "/tmp/local.db", cfg.Storage.Local.DSN)
	assert.Equal(t, Profiles{
		Backend:         "postgres",
		DSN:             "postgres://localhost/profiles",
		ProjectID:       "demo",
		CredentialsFile: "/etc/key.json",
		Collection:      "checks",
		FetchLimit:      50,
	}, cfg.Storage.Profiles)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.APIURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "web-key", cfg.Adapter.IdentityAPIKey)
	assert.Equal(t, 90*time.Second, cfg.Workers.TokenRefreshInterval)
	assert.Equal(t, 8, cfg.UI.PageSize)
}

// TestParseFlags_Unset verifies that flags not passed on the command line
// read as zero values and therefore never override other sources.
func TestParseFlags_Unset(t *testing.T) {
	cfg, err := parseFlags(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_UnregisteredFlagSet verifies that a flag set without the
// config flags is tolerated.
func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	assert.Error(t, fs.Parse([]string{"--inactivity-timeout", "soon"}))
}
