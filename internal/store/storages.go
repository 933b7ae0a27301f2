package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/crypto"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
)

// ClientStorages groups all storage repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Profiles is the document store the profile checks are read from.
	Profiles ProfileSource

	// Session is the SQLite-backed mirror of the signed-in session.
	Session LocalSessionRepository

	// Preferences is the SQLite-backed UI preferences table.
	Preferences PreferencesRepository

	closers []func() error
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the local SQLite database at cfg.Local.DSN, creating the file
//     if needed, and runs the local migrations.
//  2. Connects to the profile store selected by cfg.Profiles.Backend.
//  3. Wires the repositories over both connections.
//
// Everything opened so far is closed again when a later step fails.
func NewClientStorages(ctx context.Context, cfg config.Storage, sealer crypto.TokenSealer, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	local, err := NewConnectSQLite(ctx, cfg.Local, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	storages := &ClientStorages{
		Session:     NewLocalSessionRepository(local, sealer, log),
		Preferences: NewPreferencesRepository(local, log),
		closers:     []func() error{local.Close},
	}

	switch cfg.Profiles.Backend {
	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.Profiles, log)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("postgres connection error: %w", err), storages.Close())
		}
		storages.closers = append(storages.closers, db.Close)

		storages.Profiles, err = NewPostgresProfileSource(db, cfg.Profiles.Collection, log)
		if err != nil {
			return nil, errors.Join(err, storages.Close())
		}
	default:
		source, closeFn, err := NewFirestoreProfileSource(ctx, cfg.Profiles, log)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("firestore connection error: %w", err), storages.Close())
		}
		storages.closers = append(storages.closers, closeFn)
		storages.Profiles = source
	}

	return storages, nil
}

// Close releases every connection opened by [NewClientStorages], newest
// first.
func (s *ClientStorages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
