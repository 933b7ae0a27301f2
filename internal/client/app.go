package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-guard/internal/adapter"
	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/crypto"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/service"
	"github.com/MKhiriev/go-profile-guard/internal/session"
	"github.com/MKhiriev/go-profile-guard/internal/store"
	"github.com/MKhiriev/go-profile-guard/internal/tui"
	"github.com/MKhiriev/go-profile-guard/internal/workers"
	"github.com/MKhiriev/go-profile-guard/models"
)

var _ Client = (*App)(nil)

// App owns every long-lived dependency of one client process.
type App struct {
	cfg       *config.StructuredConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	storages *store.ClientStorages
	sessions *session.Store
	services *service.ClientServices

	unsubscribe func()
}

// NewApp opens the storages and builds the adapters, the session store and
// the services. The classification adapter follows the session: every
// session change replaces the bearer token it sends.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	sealer, err := crypto.NewTokenSealer(cfg.App.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("error creating token sealer: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	identity := adapter.NewHTTPIdentityAdapter(cfg.Adapter, log)
	classification := adapter.NewHTTPClassificationAdapter(cfg.Adapter, log)

	sessions := session.NewStore(identity, storages.Session, clock.Real(), log)
	unsubscribe := sessions.Subscribe(func(_ session.State, s models.Session) {
		classification.SetToken(s.AccessToken)
	})

	return &App{
		cfg:         cfg,
		buildInfo:   buildInfo,
		logger:      log,
		storages:    storages,
		sessions:    sessions,
		services:    service.NewClientServices(cfg, sessions, identity, classification, storages, log),
		unsubscribe: unsubscribe,
	}, nil
}

// Run starts the token refresher and blocks in the terminal UI until the
// user quits. The refresher is stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(ctx))
	defer cancel()

	group := workers.NewWorkers(
		session.NewTokenRefresher(a.sessions, clock.Real(), a.cfg.Workers.TokenRefreshInterval, a.logger),
	)
	done := make(chan error, 1)
	go func() {
		done <- group.Run(ctx)
	}()

	ui := tui.New(tui.Deps{
		Services:  a.services,
		Sessions:  a.sessions,
		Config:    a.cfg,
		BuildInfo: a.buildInfo,
		Logger:    a.logger,
	})
	runErr := ui.Run(ctx)

	cancel()
	if err := <-done; err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("background workers stopped with error")
	}
	return runErr
}

// Close releases the storages.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if err := a.storages.Close(); err != nil {
		return errors.Join(errors.New("error closing storages"), err)
	}
	return nil
}
