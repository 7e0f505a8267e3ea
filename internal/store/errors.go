package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by login matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPageNotFound is returned when no page matches the id (and owner,
	// for owner-scoped operations).
	ErrPageNotFound = errors.New("page was not found")

	// ErrPageAlreadyExists is returned when a create collides with an
	// existing page id.
	ErrPageAlreadyExists = errors.New("page already exists")

	// ErrDraftNotFound is returned by the client draft store for unknown keys.
	ErrDraftNotFound = errors.New("draft was not found")

	// ErrStorageUnavailable wraps transient backend failures (lost
	// connections, serialization failures, deadlocks).
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan page row")
	ErrScanningRows       = errors.New("failed to scan page rows")

	// ErrEncodingPage is returned when sections or settings cannot be
	// converted to or from their stored representation.
	ErrEncodingPage = errors.New("failed to encode page")
)
