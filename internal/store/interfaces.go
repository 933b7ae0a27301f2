package store

import (
	"context"

	"github.com/MKhiriev/go-profile-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileSource reads raw profile-check documents from the document store.
// A listing is all-or-nothing: on error no partial result is returned.
type ProfileSource interface {
	ListProfiles(ctx context.Context, limit int) ([]models.RawProfile, error)
}

// LocalSessionRepository mirrors the signed-in session to the local
// database so the client can restore it on the next start.
type LocalSessionRepository interface {
	Save(ctx context.Context, session models.Session) error
	Load(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}

// PreferencesRepository stores small UI preferences as key/value strings.
type PreferencesRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ErrorClassificator decides which store sentinel a failed query maps to.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
