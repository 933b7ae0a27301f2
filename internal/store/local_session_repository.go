package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/crypto"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/models"
)

type localSessionRepository struct {
	*DB
	sealer crypto.TokenSealer
	now    func() time.Time
	logger *logger.Logger
}

// sessionTokens is the plaintext sealed into local_session.sealed_tokens.
type sessionTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewLocalSessionRepository mirrors the session into the single-row
// local_session table. Tokens are sealed with sealer; the profile fields are
// stored in clear so the landing page can greet the user before unsealing.
func NewLocalSessionRepository(db *DB, sealer crypto.TokenSealer, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		sealer: sealer,
		now:    time.Now,
		logger: logger,
	}
}

func (l *localSessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	plain, err := json.Marshal(sessionTokens{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken})
	if err != nil {
		return fmt.Errorf("failed to encode session tokens: %w", err)
	}
	sealed, err := l.sealer.Seal(string(plain))
	if err != nil {
		log.Err(err).Str("func", "localSessionRepository.Save").Msg("failed to seal session tokens")
		return fmt.Errorf("failed to seal session tokens: %w", err)
	}

	_, err = l.DB.ExecContext(ctx, saveLocalSession,
		session.UID,
		session.Email,
		session.DisplayName,
		session.PhotoURL,
		sealed,
		session.ExpiresAt.UnixMilli(),
		l.now().UnixMilli(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.Save").
			Str("uid", session.UID).
			Msg("failed to upsert local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var (
		session   models.Session
		sealed    string
		expiresAt int64
	)
	err := l.DB.QueryRowContext(ctx, loadLocalSession).Scan(
		&session.UID,
		&session.Email,
		&session.DisplayName,
		&session.PhotoURL,
		&sealed,
		&expiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "localSessionRepository.Load").Msg("failed to read local session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	plain, err := l.sealer.Open(sealed)
	if err != nil {
		// a mirror sealed with another key is as good as no mirror
		log.Warn().Err(err).Str("func", "localSessionRepository.Load").Msg("failed to open sealed session tokens")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLocalSessionNotFound, err)
	}

	var tokens sessionTokens
	if err = json.Unmarshal([]byte(plain), &tokens); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLocalSessionNotFound, err)
	}

	session.AccessToken = tokens.AccessToken
	session.RefreshToken = tokens.RefreshToken
	session.ExpiresAt = time.UnixMilli(expiresAt)

	return session, nil
}

func (l *localSessionRepository) Clear(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearLocalSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.Clear").Msg("failed to clear local session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
