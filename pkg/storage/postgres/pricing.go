package postgres

import (
	"context"
	"fmt"
	"registrar/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

func (p *PgSQL) PricingPolicy(ctx context.Context, key string) (*domain.PricingPolicy, error) {
	var row PgPricingPolicy
	found, err := p.Builder.From(pricingPoliciesTable).
		Where(goqu.I("key").Eq(key)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get pricing policy: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpsertPricingPolicy(ctx context.Context, policy domain.PricingPolicy) (*domain.PricingPolicy, error) {
	var row PgPricingPolicy
	if err := row.FromDomain(policy); err != nil {
		return nil, err
	}

	var out PgPricingPolicy
	found, err := p.Builder.Insert(pricingPoliciesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"currency":         row.Currency,
			"event_start_date": row.EventStartDate,
			"base":             row.Base,
			"early_adjustment": row.EarlyAdjustment,
			"late_adjustment":  row.LateAdjustment,
			"addon_price":      row.AddonPrice,
			"updated_at":       goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgPricingPolicy{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("could not upsert pricing policy: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not upsert pricing policy: no row returned")
	}

	return out.ToDomain()
}

// NextSequence increments the named counter with a single upsert statement.
// A missing counter is created as if it started at zero.
func (p *PgSQL) NextSequence(ctx context.Context, key string) (int64, error) {
	var seq int64
	found, err := p.Builder.Insert(countersTable).
		Rows(goqu.Record{"key": key, "seq": 1}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"seq":        goqu.L("counters.seq + 1"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning("seq").
		Executor().ScanValContext(ctx, &seq)
	if err != nil {
		return 0, fmt.Errorf("could not increment counter %q: %w", key, err)
	}
	if !found {
		return 0, fmt.Errorf("could not increment counter %q: no row returned", key)
	}

	return seq, nil
}
