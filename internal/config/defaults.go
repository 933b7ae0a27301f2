package config

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/user"
	"path/filepath"
	"time"
)

// Backend names accepted by Storage.Profiles.Backend.
const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
)

const (
	appDirName = "profile-guard"

	defaultInactivityTimeout   = 20 * time.Minute
	defaultNoticeDuration      = 8 * time.Second
	defaultCollection          = "profiles"
	defaultFetchLimit          = 1000
	defaultIdentityURL         = "https://identitytoolkit.googleapis.com/v1"
	defaultTokenURL            = "https://securetoken.googleapis.com/v1"
	defaultRefreshInterval     = time.Minute
	defaultPageSize            = 5
	defaultSidebarPersistDelay = 4 * time.Second
	defaultSidebarAutoCollapse = 4 * time.Second
)

// defaults is the lowest-priority layer of the builder.
func defaults() *StructuredConfig {
	dir := appDir()

	return &StructuredConfig{
		App: App{
			SessionKey:        installationKey(),
			InactivityTimeout: defaultInactivityTimeout,
			NoticeDuration:    defaultNoticeDuration,
			LogFile:           filepath.Join(dir, "client.log"),
		},
		Storage: Storage{
			Local: LocalDB{DSN: filepath.Join(dir, "local.db")},
			Profiles: Profiles{
				Backend:    BackendFirestore,
				Collection: defaultCollection,
				FetchLimit: defaultFetchLimit,
			},
		},
		Adapter: Adapter{
			IdentityURL: defaultIdentityURL,
			TokenURL:    defaultTokenURL,
		},
		Workers: Workers{
			TokenRefreshInterval: defaultRefreshInterval,
		},
		UI: UI{
			PageSize:            defaultPageSize,
			SidebarPersistDelay: defaultSidebarPersistDelay,
			SidebarAutoCollapse: defaultSidebarAutoCollapse,
		},
	}
}

func appDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, appDirName)
}

// installationKey derives a stable per-user secret from the host name and
// the current user. It keeps the local session mirror unreadable when the
// database file is copied to another machine.
func installationKey() string {
	host, _ := os.Hostname()
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username + ":" + u.Uid
	}

	sum := sha256.Sum256([]byte(appDirName + "|" + host + "|" + name))
	return hex.EncodeToString(sum[:])
}
