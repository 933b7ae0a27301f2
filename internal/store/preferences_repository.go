package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/logger"
)

type preferencesRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (p *preferencesRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.DB.QueryRowContext(ctx, getPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferencesRepository.Get").
			Str("key", key).
			Msg("failed to read preference")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, nil
}

func (p *preferencesRepository) Set(ctx context.Context, key, value string) error {
	if _, err := p.DB.ExecContext(ctx, setPreference, key, value, p.now().UnixMilli()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferencesRepository.Set").
			Str("key", key).
			Msg("failed to write preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
