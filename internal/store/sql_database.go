package store

import (
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-profile-guard/internal/logger"
)

// DB wraps a database/sql handle together with the backend's error
// classifier (nil for SQLite) and the logger it was opened with.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// classify joins err with the store sentinel the backend's classifier picks
// for it. Without a classifier err is returned unchanged.
func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return err
	}

	switch db.errorClassificator.Classify(err) {
	case Unavailable:
		return errors.Join(ErrProfilesUnavailable, err)
	case Forbidden:
		return errors.Join(ErrProfilesForbidden, err)
	case MissingCollection:
		return errors.Join(ErrInvalidCollection, err)
	default:
		return err
	}
}
