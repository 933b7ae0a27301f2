package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig            = "config"
	FlagSessionKey        = "session-key"
	FlagInactivityTimeout = "inactivity-timeout"
	FlagNoticeDuration    = "notice-duration"
	FlagLogFile           = "log-file"
	FlagLocalDSN          = "local-db"
	FlagProfilesBackend   = "profiles-backend"
	FlagProfilesDSN       = "profiles-dsn"
	FlagProjectID         = "project-id"
	FlagCredentialsFile   = "credentials-file"
	FlagCollection        = "collection"
	FlagFetchLimit        = "fetch-limit"
	FlagAPIURL            = "api-url"
	FlagRequestTimeout    = "request-timeout"
	FlagIdentityAPIKey    = "identity-api-key"
	FlagRefreshInterval   = "token-refresh-interval"
	FlagPageSize          = "page-size"
)

// RegisterFlags registers all configuration flags on fs. It is called once
// on the root command's persistent flag set.
//
// Flags:
//
//	-c/--config              JSON or YAML file path with configs
//	--session-key            secret sealing the local session mirror
//	--inactivity-timeout     idle sign-out delay (e.g., 20m)
//	--notice-duration        transient notice lifetime (e.g., 8s)
//	--log-file               log file path
//	--local-db               local SQLite file path
//	--profiles-backend       firestore | postgres
//	--profiles-dsn           PostgreSQL DSN of the profile store
//	--project-id             Firestore project ID
//	--credentials-file       Firestore service account key file
//	--collection             profile collection or table name
//	--fetch-limit            maximum documents per history load
//	--api-url                classification service base URL
//	--request-timeout        outbound request timeout (e.g., 30s)
//	--identity-api-key       identity provider web API key
//	--token-refresh-interval token refresh check interval (e.g., 1m)
//	--page-size              history rows per page
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON or YAML config file path")
	fs.String(FlagSessionKey, "", "Secret sealing the local session mirror")
	fs.Duration(FlagInactivityTimeout, 0, "Idle sign-out delay (e.g., 20m)")
	fs.Duration(FlagNoticeDuration, 0, "Transient notice lifetime (e.g., 8s)")
	fs.String(FlagLogFile, "", "Log file path")
	fs.String(FlagLocalDSN, "", "Local SQLite file path")
	fs.String(FlagProfilesBackend, "", "Profile store backend: firestore or postgres")
	fs.String(FlagProfilesDSN, "", "PostgreSQL DSN of the profile store")
	fs.String(FlagProjectID, "", "Firestore project ID")
	fs.String(FlagCredentialsFile, "", "Firestore service account key file")
	fs.String(FlagCollection, "", "Profile collection or table name")
	fs.Int(FlagFetchLimit, 0, "Maximum documents per history load")
	fs.String(FlagAPIURL, "", "Classification service base URL")
	fs.Duration(FlagRequestTimeout, 0, "Outbound request timeout (e.g., 30s)")
	fs.String(FlagIdentityAPIKey, "", "Identity provider web API key")
	fs.Duration(FlagRefreshInterval, 0, "Token refresh check interval (e.g., 1m)")
	fs.Int(FlagPageSize, 0, "History rows per page")
}

// parseFlags reads the flags registered by [RegisterFlags] back into a
// [StructuredConfig]. Unset flags keep their zero defaults and therefore
// never override other sources.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	r := flagReader{fs: fs}

	cfg := &StructuredConfig{
		App: App{
			SessionKey:        r.str(FlagSessionKey),
			InactivityTimeout: r.duration(FlagInactivityTimeout),
			NoticeDuration:    r.duration(FlagNoticeDuration),
			LogFile:           r.str(FlagLogFile),
		},
		Storage: Storage{
			Local: LocalDB{DSN: r.str(FlagLocalDSN)},
			Profiles: Profiles{
				Backend:         r.str(FlagProfilesBackend),
				DSN:             r.str(FlagProfilesDSN),
				ProjectID:       r.str(FlagProjectID),
				CredentialsFile: r.str(FlagCredentialsFile),
				Collection:      r.str(FlagCollection),
				FetchLimit:      r.int(FlagFetchLimit),
			},
		},
		Adapter: Adapter{
			APIURL:         r.str(FlagAPIURL),
			RequestTimeout: r.duration(FlagRequestTimeout),
			IdentityAPIKey: r.str(FlagIdentityAPIKey),
		},
		Workers: Workers{
			TokenRefreshInterval: r.duration(FlagRefreshInterval),
		},
		UI: UI{
			PageSize: r.int(FlagPageSize),
		},
		ConfigFilePath: r.str(FlagConfig),
	}

	if r.err != nil {
		return nil, fmt.Errorf("error reading flags: %w", r.err)
	}
	return cfg, nil
}

// flagReader reads flags that may not be registered on fs; missing flags
// read as zero values.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) str(name string) string {
	if r.fs.Lookup(name) == nil {
		return ""
	}
	v, err := r.fs.GetString(name)
	r.keep(err)
	return v
}

func (r *flagReader) int(name string) int {
	if r.fs.Lookup(name) == nil {
		return 0
	}
	v, err := r.fs.GetInt(name)
	r.keep(err)
	return v
}

func (r *flagReader) duration(name string) time.Duration {
	if r.fs.Lookup(name) == nil {
		return 0
	}
	v, err := r.fs.GetDuration(name)
	r.keep(err)
	return v
}

func (r *flagReader) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}
