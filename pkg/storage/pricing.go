package storage

import (
	"context"
	"registrar/pkg/domain"
)

// PricingStorage persists the per-season pricing policy.
type PricingStorage interface {
	// PricingPolicy returns the policy stored under key, or nil when it has not
	// been seeded yet.
	PricingPolicy(ctx context.Context, key string) (*domain.PricingPolicy, error)
	// UpsertPricingPolicy creates or replaces the policy identified by policy.Key.
	// Existing registration snapshots are never touched.
	UpsertPricingPolicy(ctx context.Context, policy domain.PricingPolicy) (*domain.PricingPolicy, error)
}

// CounterStorage issues sequence numbers from named counters.
type CounterStorage interface {
	// NextSequence atomically increments the counter identified by key, creating
	// it at zero when absent, and returns the new value. The first call for a
	// key returns 1. The increment is a single read-modify-write at the storage
	// layer; concurrent callers never observe the same value.
	NextSequence(ctx context.Context, key string) (int64, error)
}
