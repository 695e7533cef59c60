package repository

import "errors"

// Storage failures are mapped into these three kinds once, at the
// repository boundary. Engine-specific detail never crosses it.
var (
	// ErrNotFound means a referenced row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("unique constraint violated")

	// ErrPersistence is the catch-all for connectivity, malformed data or
	// any storage failure not otherwise classified. Nothing is retried
	// here; the caller decides.
	ErrPersistence = errors.New("persistence failure")
)
