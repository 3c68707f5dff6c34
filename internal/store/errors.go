package store

import "errors"

// Sentinel errors returned by [UserDirectory] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a record with the same email
	// is already stored. Backends enforce this with a unique index, so a
	// concurrent duplicate insert fails the same way.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup matches no record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDirectoryUnavailable wraps any driver or network failure of the
	// backing store.
	ErrDirectoryUnavailable = errors.New("user directory unavailable")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown directory driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
