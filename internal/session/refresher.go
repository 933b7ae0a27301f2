package session

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/clock"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
)

// refreshMargin is how long before expiry the ID token is renewed.
const refreshMargin = 5 * time.Minute

// TokenRefresher is a background worker that renews the ID token shortly
// before it expires.
type TokenRefresher struct {
	store    *Store
	clock    clock.Clock
	interval time.Duration
	logger   *logger.Logger
}

func NewTokenRefresher(store *Store, c clock.Clock, interval time.Duration, log *logger.Logger) *TokenRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &TokenRefresher{
		store:    store,
		clock:    c,
		interval: interval,
		logger:   log,
	}
}

// Run checks the session every interval until ctx is cancelled. Refresh
// failures are logged and retried on the next tick.
func (r *TokenRefresher) Run(ctx context.Context) error {
	r.logger.Info().Dur("interval", r.interval).Msg("token refresher started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("token refresher stopped")
			return nil
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *TokenRefresher) tick(ctx context.Context) {
	session, ok := r.store.Current()
	if !ok {
		return
	}
	if r.clock.Now().Add(refreshMargin).Before(session.ExpiresAt) {
		return
	}

	if err := r.store.Refresh(ctx); err != nil {
		if errors.Is(err, ErrSessionChanged) {
			r.logger.Debug().Str("func", "TokenRefresher.tick").Msg("session changed while refreshing")
			return
		}
		r.logger.Warn().Err(err).Str("func", "TokenRefresher.tick").Msg("failed to refresh session")
		return
	}
	r.logger.Debug().Str("func", "TokenRefresher.tick").Msg("session refreshed")
}
