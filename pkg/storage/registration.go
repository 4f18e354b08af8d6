package storage

import (
	"context"
	"registrar/pkg/domain"
)

// RegistrationSearch groups a page of registrations with the total number of
// rows matching the query.
type RegistrationSearch struct {
	// Rows contains the current page ordered by creation time, newest first.
	Rows []domain.Registration
	// Total is the number of matching rows across all pages.
	Total int64
}

// RegistrationStorage defines persistence operations for registration
// aggregates. Reads return nil (and no error) when nothing matches.
type RegistrationStorage interface {
	// StoreRegistration inserts the full aggregate in a single statement along
	// with the optional credential hash. It returns ErrDuplicateEmail when the
	// normalized email is already taken.
	StoreRegistration(ctx context.Context, reg domain.Registration, passwordHash string) (*domain.Registration, error)
	// RegistrationByID fetches a registration by its internal ID.
	RegistrationByID(ctx context.Context, ID domain.RegistrationID) (*domain.Registration, error)
	// RegistrationByCodeAndEmail fetches the registration identified by the
	// (regCode, normalized email) pair.
	RegistrationByCodeAndEmail(ctx context.Context, regCode, email string) (*domain.Registration, error)
	// RegistrationsByEmail lists registrations for a normalized email, newest first.
	RegistrationsByEmail(ctx context.Context, email string) ([]domain.Registration, error)
	// RegistrationCredential returns the credential projection for a
	// normalized email. It is the only read that exposes the password hash.
	RegistrationCredential(ctx context.Context, email string) (*domain.RegistrationCredential, error)
	// LockRegistration fetches a registration and locks its row until the
	// surrounding transaction ends. It must be called inside a transaction.
	LockRegistration(ctx context.Context, ID domain.RegistrationID) (*domain.Registration, error)
	// UpdateRegistration writes the mutable sub-records of reg. Identity fields
	// (regCode, email, creation time) and the pricing snapshot are never written.
	UpdateRegistration(ctx context.Context, reg domain.Registration) (*domain.Registration, error)
	// SearchRegistrations performs a case-insensitive substring match across
	// code, names, email and affiliation. An empty query matches everything.
	SearchRegistrations(ctx context.Context, query string, offset, limit uint) (RegistrationSearch, error)
}
