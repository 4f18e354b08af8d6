package pricing

import (
	"context"
	"registrar/pkg/domain"
)

//go:generate mockgen -package mockpricing -source=interface.go -destination=mock/mockpricing.go *
type Service interface {
	// Policy returns the active pricing policy.
	Policy(ctx context.Context) (*domain.PricingPolicy, error)
	// Quote prices a registration of category at the current instant.
	Quote(ctx context.Context, category domain.Category, dinner bool) (domain.PricingSnapshot, error)
	// Table renders the published price list.
	Table(ctx context.Context) (*Table, error)
	// Seed creates or replaces a pricing policy. Issued snapshots are unaffected.
	Seed(ctx context.Context, policy domain.PricingPolicy) (*domain.PricingPolicy, error)
}
