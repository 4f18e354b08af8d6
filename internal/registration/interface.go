package registration

import (
	"context"
	"registrar/pkg/domain"
)

//go:generate mockgen -package mockregistration -source=interface.go -destination=mock/mockregistration.go *
type Service interface {
	// Create validates and stores a new registration with a fresh code and a
	// frozen price snapshot.
	Create(ctx context.Context, in CreateInput) (*domain.Registration, error)
	// Authenticate starts a session for the registration owning email.
	Authenticate(ctx context.Context, email, secret string) (*domain.Session, error)
	// Session resolves a session to its registration.
	Session(ctx context.Context, sessionID string) (*domain.Registration, error)
	// Logout ends a session.
	Logout(ctx context.Context, sessionID string) error
	// Lookup lists summaries of the registrations owned by email, newest first.
	Lookup(ctx context.Context, email string) ([]Summary, error)
	// Check returns the full record identified by (regCode, email).
	Check(ctx context.Context, regCode, email string) (*domain.Registration, error)
	// Update applies a registrant patch after re-authorizing by (regCode, email).
	Update(ctx context.Context, regCode, email string, patch Patch) (*domain.Registration, error)
	// Search pages through registrations matching query.
	Search(ctx context.Context, query string, page, pageSize int) (*SearchResult, error)
	// Get returns a registration by ID for operators.
	Get(ctx context.Context, ID domain.RegistrationID) (*domain.Registration, error)
	// AdminUpdate applies an operator patch.
	AdminUpdate(ctx context.Context, ID domain.RegistrationID, patch AdminPatch) (*domain.Registration, error)
}
