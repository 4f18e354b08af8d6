// Package pricing resolves the pricing phase of an instant relative to an
// event start date and computes the price snapshot frozen onto registrations.
package pricing

import (
	"context"
	"fmt"
	"registrar/internal/config"
	"registrar/pkg/domain"
	"registrar/pkg/serrors"
	"registrar/pkg/storage"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("registrar/internal/pricing") //nolint: gochecknoglobals

// Options configure which policy is active and how dates are read.
type Options struct {
	// PolicyKey identifies the active pricing policy.
	PolicyKey string
	// Location is the time zone whose calendar dates drive phase selection.
	Location *time.Location
	// Now returns the current instant. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	loc, err := time.LoadLocation(cfg.Pricing.Location)
	if err != nil {
		return Options{}, fmt.Errorf("could not load pricing location %q: %w", cfg.Pricing.Location, err)
	}

	return Options{
		PolicyKey: cfg.Pricing.PolicyKey,
		Location:  loc,
	}, nil
}

// SeedPolicy builds the policy written by the seed-pricing command from config.
func SeedPolicy(cfg *config.Config) (domain.PricingPolicy, error) {
	seed := cfg.Pricing.Seed
	start, err := ParseDate(seed.EventStartDate)
	if err != nil {
		return domain.PricingPolicy{}, serrors.Invalid("eventStartDate", "must be a YYYY-MM-DD date")
	}

	return domain.PricingPolicy{
		Key:            cfg.Pricing.PolicyKey,
		Currency:       seed.Currency,
		EventStartDate: start,
		Base: domain.CategoryPrices{
			Student:  seed.BaseStudent,
			Academia: seed.BaseAcademia,
			Industry: seed.BaseIndustry,
		},
		EarlyAdjustment: domain.CategoryPrices{
			Student:  seed.EarlyStudent,
			Academia: seed.EarlyAcademia,
			Industry: seed.EarlyIndustry,
		},
		LateAdjustment: domain.CategoryPrices{
			Student:  seed.LateStudent,
			Academia: seed.LateAcademia,
			Industry: seed.LateIndustry,
		},
		AddonPrice: seed.DinnerAddon,
	}, nil
}

type service struct {
	options Options
	storage storage.PricingStorage
}

// New creates a pricing Service reading policies from storage.
func New(storage storage.PricingStorage, options Options) Service {
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &service{
		options: options,
		storage: storage,
	}
}

func (s *service) Policy(ctx context.Context) (*domain.PricingPolicy, error) {
	policy, err := s.storage.PricingPolicy(ctx, s.options.PolicyKey)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load pricing policy")
	}
	if policy == nil {
		return nil, serrors.With(serrors.ErrNotFound, "pricing not seeded yet")
	}

	return policy, nil
}

func (s *service) Quote(ctx context.Context, category domain.Category, dinner bool) (domain.PricingSnapshot, error) {
	ctx, span := tracer.Start(ctx, "pricing.Quote", trace.WithAttributes(
		attribute.String("category", string(category)),
	))
	defer span.End()

	policy, err := s.Policy(ctx)
	if err != nil {
		return domain.PricingSnapshot{}, err
	}

	phase := Classify(s.options.Now(), policy.EventStartDate, s.options.Location)
	span.SetAttributes(attribute.String("phase", string(phase)))

	return ComputeSnapshot(category, phase, *policy, dinner)
}

func (s *service) Table(ctx context.Context) (*Table, error) {
	policy, err := s.Policy(ctx)
	if err != nil {
		return nil, err
	}

	table := BuildTable(*policy, s.options.Now(), s.options.Location)

	return &table, nil
}

func (s *service) Seed(ctx context.Context, policy domain.PricingPolicy) (*domain.PricingPolicy, error) {
	if err := validatePolicy(policy); err != nil {
		return nil, err
	}

	stored, err := s.storage.UpsertPricingPolicy(ctx, policy)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not store pricing policy")
	}

	return stored, nil
}

func validatePolicy(policy domain.PricingPolicy) error {
	if strings.TrimSpace(policy.Key) == "" {
		return serrors.Invalid("key", "must not be empty")
	}
	if len(policy.Currency) != 3 {
		return serrors.Invalid("currency", "must be a three-letter currency code")
	}
	if policy.EventStartDate.IsZero() {
		return serrors.Invalid("eventStartDate", "must be set")
	}
	if policy.AddonPrice < 0 {
		return serrors.Invalid("addonPrice", "must not be negative")
	}
	for _, w := range Windows(policy.EventStartDate) {
		prices := PhasePrices(policy, w.Phase)
		if prices.Student < 0 || prices.Academia < 0 || prices.Industry < 0 {
			return serrors.Invalid("base", "%s prices must not be negative", w.Phase)
		}
	}

	return nil
}
