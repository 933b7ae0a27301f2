package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the profile source which store sentinel a failed
// query should surface as.
type ErrorClassification int

const (
	// Unclassified errors are returned as they are.
	Unclassified ErrorClassification = iota

	// Unavailable means the database could not serve the read right now:
	// lost connections, a server that is starting or shutting down, or a
	// rolled-back snapshot. Maps to [ErrProfilesUnavailable].
	Unavailable

	// Forbidden means the configured role may not read the collection.
	// Maps to [ErrProfilesForbidden].
	Forbidden

	// MissingCollection means the configured table does not exist.
	// Maps to [ErrInvalidCollection].
	MissingCollection
)

// PostgresErrorClassifier implements [ErrorClassificator] for the PostgreSQL
// profile collection.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Connection failures that never
// reached the server are [Unavailable]; server errors are classified by their
// SQLSTATE in [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
		return Unavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgerrcode.IsInsufficientResources(pgErr.Code):
		return Unavailable

	case pgErr.Code == pgerrcode.CannotConnectNow,
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CrashShutdown,
		pgErr.Code == pgerrcode.QueryCanceled:
		return Unavailable

	case pgErr.Code == pgerrcode.InsufficientPrivilege,
		pgerrcode.IsInvalidAuthorizationSpecification(pgErr.Code):
		return Forbidden

	case pgErr.Code == pgerrcode.UndefinedTable:
		return MissingCollection
	}

	return Unclassified
}
