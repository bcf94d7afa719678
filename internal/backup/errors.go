package backup

import "errors"

var (
	// ErrMalformedDocument means the backup file is not syntactically valid
	// JSON. Nothing was written to the store.
	ErrMalformedDocument = errors.New("invalid JSON document")

	// ErrInvalidFormat means the document parsed but does not have the
	// expected backup shape (a "sessions" array). Nothing was written.
	ErrInvalidFormat = errors.New("invalid backup format")

	// ErrCanceled marks a user-aborted file selection. It is a distinct
	// no-op outcome, not a failure to report.
	ErrCanceled = errors.New("canceled")
)
