// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps [time.Duration] so that durations can be written as
// human-readable strings ("20m", "8s") in JSON and YAML config files.
type Duration struct {
	time.Duration
}

// UnmarshalJSON parses a JSON string such as "1m30s" into d.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"8s\": %w", err)
	}
	return d.parse(s)
}

// MarshalJSON writes d as its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalYAML parses a YAML scalar such as 20m into d.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"8s\": %w", err)
	}
	return d.parse(s)
}

// MarshalYAML writes d as its string form.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// StructuredFileConfig is the on-disk shape of the configuration file. Field
// names follow the environment variable names in snake case.
type StructuredFileConfig struct {
	App struct {
		SessionKey        string   `json:"session_key" yaml:"session_key"`
		InactivityTimeout Duration `json:"inactivity_timeout" yaml:"inactivity_timeout"`
		NoticeDuration    Duration `json:"notice_duration" yaml:"notice_duration"`
		LogFile           string   `json:"log_file" yaml:"log_file"`
	} `json:"app" yaml:"app"`

	Storage struct {
		Local struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"local" yaml:"local"`
		Profiles struct {
			Backend         string `json:"backend" yaml:"backend"`
			DSN             string `json:"dsn" yaml:"dsn"`
			ProjectID       string `json:"project_id" yaml:"project_id"`
			CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
			Collection      string `json:"collection" yaml:"collection"`
			FetchLimit      int    `json:"fetch_limit" yaml:"fetch_limit"`
			Migrate         bool   `json:"migrate" yaml:"migrate"`
		} `json:"profiles" yaml:"profiles"`
	} `json:"storage" yaml:"storage"`

	Adapter struct {
		APIURL         string   `json:"api_url" yaml:"api_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		IdentityAPIKey string   `json:"identity_api_key" yaml:"identity_api_key"`
		IdentityURL    string   `json:"identity_url" yaml:"identity_url"`
		TokenURL       string   `json:"token_url" yaml:"token_url"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		TokenRefreshInterval Duration `json:"token_refresh_interval" yaml:"token_refresh_interval"`
	} `json:"workers" yaml:"workers"`

	UI struct {
		PageSize            int      `json:"page_size" yaml:"page_size"`
		SidebarPersistDelay Duration `json:"sidebar_persist_delay" yaml:"sidebar_persist_delay"`
		SidebarAutoCollapse Duration `json:"sidebar_auto_collapse" yaml:"sidebar_auto_collapse"`
	} `json:"ui" yaml:"ui"`
}

// parseFile reads the configuration file at path and converts it into a
// [StructuredConfig]. The format is chosen by extension: .yaml and .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var fc StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionKey:        fc.App.SessionKey,
			InactivityTimeout: fc.App.InactivityTimeout.Duration,
			NoticeDuration:    fc.App.NoticeDuration.Duration,
			LogFile:           fc.App.LogFile,
		},
		Storage: Storage{
			Local: LocalDB{DSN: fc.Storage.Local.DSN},
			Profiles: Profiles{
				Backend:         fc.Storage.Profiles.Backend,
				DSN:             fc.Storage.Profiles.DSN,
				ProjectID:       fc.Storage.Profiles.ProjectID,
				CredentialsFile: fc.Storage.Profiles.CredentialsFile,
				Collection:      fc.Storage.Profiles.Collection,
				FetchLimit:      fc.Storage.Profiles.FetchLimit,
				Migrate:         fc.Storage.Profiles.Migrate,
			},
		},
		Adapter: Adapter{
			APIURL:         fc.Adapter.APIURL,
			RequestTimeout: fc.Adapter.RequestTimeout.Duration,
			IdentityAPIKey: fc.Adapter.IdentityAPIKey,
			IdentityURL:    fc.Adapter.IdentityURL,
			TokenURL:       fc.Adapter.TokenURL,
		},
		Workers: Workers{
			TokenRefreshInterval: fc.Workers.TokenRefreshInterval.Duration,
		},
		UI: UI{
			PageSize:            fc.UI.PageSize,
			SidebarPersistDelay: fc.UI.SidebarPersistDelay.Duration,
			SidebarAutoCollapse: fc.UI.SidebarAutoCollapse.Duration,
		},
	}
}
