package session

import (
	"context"
	"registrar/pkg/domain"
)

//go:generate mockgen -package mocksession -source=interface.go -destination=mock/mocksession.go *
type Store interface {
	// Create stores s until s.ExpiresAt.
	Create(ctx context.Context, s domain.Session) error
	// Get returns the session with the given ID, or nil when it is unknown or expired.
	Get(ctx context.Context, ID string) (*domain.Session, error)
	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, ID string) error
}
