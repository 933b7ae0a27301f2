package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB the way NewConnectPostgres does.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

// newLocalDB opens a migrated SQLite database in a temp directory.
func newLocalDB(t *testing.T) *DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "local.db")
	db, err := NewConnectSQLite(testContext(), config.LocalDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// fakeSealer marks sealed values with a key-specific prefix so tests can
// simulate a mirror written under another key.
type fakeSealer struct {
	key string
}

var errWrongKey = errors.New("wrong key")

func (f fakeSealer) Seal(plaintext string) (string, error) {
	return f.key + ":" + plaintext, nil
}

func (f fakeSealer) Open(sealed string) (string, error) {
	plain, ok := strings.CutPrefix(sealed, f.key+":")
	if !ok {
		return "", errWrongKey
	}
	return plain, nil
}
