package copytext

import "errors"

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
//
// Encoding itself is total: every value of a supported type produces a
// defined string. These errors surface only when an encoder or writer is
// assembled, never while a value is being encoded.
var (
	// ErrAlreadyOptional indicates Optional was applied to an encoder
	// that is already optional.
	ErrAlreadyOptional = errors.New("encoder is already optional")

	// ErrNoFields indicates Join was called with no field encoders.
	ErrNoFields = errors.New("record has no fields")

	// ErrNoColumns indicates a writer was constructed with no columns.
	ErrNoColumns = errors.New("writer has no columns")
)
