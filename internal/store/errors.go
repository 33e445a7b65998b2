package store

import "errors"

// Sentinel errors returned by keyring methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when no keyring record exists for the
	// requested handle.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyNotSaved is returned when an upsert completes without error
	// but the number of affected rows is zero, indicating that nothing
	// was actually persisted.
	ErrKeyNotSaved = errors.New("key was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// keyring methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan keyring row")
)
