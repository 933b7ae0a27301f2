package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfilesUnavailable is returned when the profile store cannot be
	// reached or answered with a transient failure.
	ErrProfilesUnavailable = errors.New("profile store unavailable")

	// ErrProfilesForbidden is returned when the profile store rejected the
	// caller's credentials.
	ErrProfilesForbidden = errors.New("profile store access denied")

	// ErrDecodingDocument is returned when a stored profile document is not a
	// JSON object. A listing fails as a whole on the first such document.
	ErrDecodingDocument = errors.New("error decoding profile document")

	// ErrInvalidCollection is returned when the configured collection name
	// is not a plain SQL identifier.
	ErrInvalidCollection = errors.New("invalid profile collection name")

	// ErrLocalSessionNotFound is returned when no session has been mirrored
	// to the local database.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrPreferenceNotFound is returned when a preference key has never been
	// written.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
