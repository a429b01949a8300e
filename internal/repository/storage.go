package repository

import "errors"

// Storage failure kinds reported by repository implementations. Services and
// the error translator match on these instead of driver-specific errors, so
// the core stays decoupled from any particular storage product. Anything a
// repository returns that is not one of these is an unclassified failure.
var (
	// ErrConflict signals a uniqueness violation (duplicate email).
	ErrConflict = errors.New("storage: conflict")
	// ErrNotFound signals that no row matched the given identifier.
	ErrNotFound = errors.New("storage: not found")
)
