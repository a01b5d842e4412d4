package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an INSERT violates the
	// unique constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an INSERT violates the
	// unique constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when no live session is stored under
	// the requested token hash.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionAlreadyExists is returned when a session with the same token
	// hash is already stored.
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a storage-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingSession is returned when a session cannot be (de)serialized
	// for the key-value store.
	ErrEncodingSession = errors.New("failed to encode session")

	// ErrUnsupportedDriver is returned by NewStorages for a driver or
	// backend name it does not know.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)
