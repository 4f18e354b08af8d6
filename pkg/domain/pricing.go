package domain

import "time"

// Phase is a named pricing window determined by the distance between "today"
// and the event start date.
type Phase string

const (
	// PhaseEarlyBird covers everything up to and including 90 days before the event.
	PhaseEarlyBird Phase = "Early-bird"
	// PhaseRegular covers 89 to 14 days before the event.
	PhaseRegular Phase = "Regular"
	// PhaseLateOnSite covers the last 13 days before the event and the start date itself.
	PhaseLateOnSite Phase = "Late/On-site"
	// PhaseClosed covers every day strictly after the event start date.
	PhaseClosed Phase = "Closed"
)

// CategoryPrices holds one amount per registration category.
type CategoryPrices struct {
	Student  int64 `json:"student"`
	Academia int64 `json:"academia"`
	Industry int64 `json:"industry"`
}

// For returns the amount configured for the given category. Unknown
// categories yield zero.
func (c CategoryPrices) For(category Category) int64 {
	switch category {
	case CategoryStudent:
		return c.Student
	case CategoryAcademia:
		return c.Academia
	case CategoryIndustry:
		return c.Industry
	default:
		return 0
	}
}

// Add returns the element-wise sum of two price tables.
func (c CategoryPrices) Add(o CategoryPrices) CategoryPrices {
	return CategoryPrices{
		Student:  c.Student + o.Student,
		Academia: c.Academia + o.Academia,
		Industry: c.Industry + o.Industry,
	}
}

// PricingPolicy is the per-season price configuration. It is read on every
// registration and edited rarely; snapshots taken from it are never
// recomputed.
type PricingPolicy struct {
	// Key identifies the season, e.g. "pricing-2026".
	Key string `json:"key"`
	// Currency is the ISO currency code every amount is expressed in.
	Currency string `json:"currency"`
	// EventStartDate is the first day of the event. Only its calendar date is relevant.
	EventStartDate time.Time `json:"eventStartDate"`
	// Base is the unadjusted price per category.
	Base CategoryPrices `json:"base"`
	// EarlyAdjustment is added to Base during the early-bird phase.
	EarlyAdjustment CategoryPrices `json:"earlyAdjustment"`
	// LateAdjustment is added to Base during the late/on-site phase.
	LateAdjustment CategoryPrices `json:"lateAdjustment"`
	// AddonPrice is the price of the dinner add-on.
	AddonPrice int64 `json:"addonPrice"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PricingSnapshot holds the price figures frozen onto a registration at
// creation time.
type PricingSnapshot struct {
	Currency    string `json:"currency"`
	Phase       Phase  `json:"phase"`
	Base        int64  `json:"base"`
	AddonsTotal int64  `json:"addonsTotal"`
	Total       int64  `json:"total"`
}
