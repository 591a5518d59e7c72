package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set, or when a message references a
	// user that does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrMessageNotFound is returned when no message has the requested id.
	ErrMessageNotFound = errors.New("message was not found")

	// ErrNotRecipient is returned when someone other than the recipient
	// tries to mark a message as read.
	ErrNotRecipient = errors.New("user is not the recipient of the message")

	// ErrMessageAlreadyRead is returned when a message already carries a
	// read timestamp.
	ErrMessageAlreadyRead = errors.New("message was already read")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
