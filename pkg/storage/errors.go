package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicateEmail is returned when a registration violates the unique
	// constraint on the normalized email.
	ErrDuplicateEmail = errors.New("duplicate registration email")
	// ErrDuplicateVersion is returned when an attachment version is already
	// taken for its (registration, type) pair.
	ErrDuplicateVersion = errors.New("duplicate attachment version")
)
