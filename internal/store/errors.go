package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAddressAlreadyRegistered is returned when inserting a user violates
	// the uniqueness of its address, either against another user's current
	// address or against any address history entry.
	ErrAddressAlreadyRegistered = errors.New("address already registered")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrIPAddressNotFound is returned when no geolocation record exists
	// for the requested IP address.
	ErrIPAddressNotFound = errors.New("ip address was not found")

	// ErrRegistrationNotFound is returned when no registration event has
	// the requested session id.
	ErrRegistrationNotFound = errors.New("user registration was not found")

	// ErrSessionIDAlreadyExists is returned when a registration event is
	// inserted with a session id that is already taken.
	ErrSessionIDAlreadyExists = errors.New("session id already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a dynamic SQL query
	// with squirrel fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
