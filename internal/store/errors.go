package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user insert or update collides
	// with the unique email of another account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProfileNotFound is returned when no user profile matches the lookup key.
	ErrProfileNotFound = errors.New("user profile was not found")

	// ErrReservationNotFound is returned when no room reservation matches the id.
	ErrReservationNotFound = errors.New("reservation was not found")

	// ErrBookNotFound is returned when no book matches the id.
	ErrBookNotFound = errors.New("book was not found")

	// ErrBookReservationNotFound is returned when no book reservation matches the id.
	ErrBookReservationNotFound = errors.New("book reservation was not found")

	// ErrBookAlreadyReturned is returned by MarkReturned when returned_at is
	// already set.
	ErrBookAlreadyReturned = errors.New("book was already returned")
)

// Constraint errors translated from driver-specific codes by the dialect's
// [ErrorClassificator]. The driver error stays in the chain.
var (
	ErrDuplicateKey        = errors.New("duplicate key value violates unique constraint")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
	ErrNotNullViolation    = errors.New("not null constraint violation")
	ErrCheckViolation      = errors.New("value violates check constraint or enum")

	// ErrRetryable marks transient failures (lost connection, deadlock,
	// database locked) that may succeed when attempted again.
	ErrRetryable = errors.New("transient database error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery wraps driver errors that carry no known classification.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when the result of a DML statement
	// (INSERT, UPDATE, DELETE) cannot be read.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDialect is returned when the configured driver has no
	// connector.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// Transaction errors.
var (
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
