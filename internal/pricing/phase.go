package pricing

import (
	"registrar/pkg/domain"
	"registrar/pkg/serrors"
	"time"
)

// Window boundaries in days before the event start date.
const (
	earlyBirdLastDay   = 90
	regularFirstDay    = 89
	regularLastDay     = 14
	lateOnSiteFirstDay = 13
)

// Window is a closed range of calendar dates. A nil bound is open.
type Window struct {
	Phase domain.Phase
	Start *time.Time
	End   *time.Time
}

// civilDate returns the calendar date of t in loc, expressed as midnight UTC
// so that date arithmetic is free of DST shifts.
func civilDate(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startDate reads the calendar date of an event start. Only its date in its
// own location matters.
func startDate(start time.Time) time.Time {
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole calendar days from the date of now in
// loc to the start date. It is negative once the start date has passed.
func DaysUntil(now, start time.Time, loc *time.Location) int {
	return int(startDate(start).Sub(civilDate(now, loc)).Hours() / 24)
}

// Classify maps an instant to its pricing phase. Every instant belongs to
// exactly one phase; 90 days before the start date is the last early-bird day
// and the start date itself is still late/on-site.
func Classify(now, start time.Time, loc *time.Location) domain.Phase {
	return classifyDays(DaysUntil(now, start, loc))
}

func classifyDays(days int) domain.Phase {
	switch {
	case days >= earlyBirdLastDay:
		return domain.PhaseEarlyBird
	case days >= regularLastDay:
		return domain.PhaseRegular
	case days >= 0:
		return domain.PhaseLateOnSite
	default:
		return domain.PhaseClosed
	}
}

// Windows returns the three priced windows of an event: early-bird (open
// start), regular and late/on-site. Closed is everything after the last one.
func Windows(start time.Time) []Window {
	s := startDate(start)
	day := func(before int) *time.Time {
		d := s.AddDate(0, 0, -before)

		return &d
	}

	return []Window{
		{Phase: domain.PhaseEarlyBird, End: day(earlyBirdLastDay)},
		{Phase: domain.PhaseRegular, Start: day(regularFirstDay), End: day(regularLastDay)},
		{Phase: domain.PhaseLateOnSite, Start: day(lateOnSiteFirstDay), End: day(0)},
	}
}

// PhasePrices returns the per-category base price in effect during phase.
// Regular and Closed use the unadjusted base.
func PhasePrices(policy domain.PricingPolicy, phase domain.Phase) domain.CategoryPrices {
	switch phase {
	case domain.PhaseEarlyBird:
		return policy.Base.Add(policy.EarlyAdjustment)
	case domain.PhaseLateOnSite:
		return policy.Base.Add(policy.LateAdjustment)
	default:
		return policy.Base
	}
}

// ComputeSnapshot prices a registration of the given category in phase. It is
// pure: identical inputs always produce identical snapshots.
func ComputeSnapshot(category domain.Category,
	phase domain.Phase,
	policy domain.PricingPolicy,
	dinner bool,
) (domain.PricingSnapshot, error) {
	if !category.Valid() {
		return domain.PricingSnapshot{}, serrors.Invalid("category", "must be one of student, academia, industry")
	}

	base := PhasePrices(policy, phase).For(category)
	var addons int64
	if dinner {
		addons = policy.AddonPrice
	}

	return domain.PricingSnapshot{
		Currency:    policy.Currency,
		Phase:       phase,
		Base:        base,
		AddonsTotal: addons,
		Total:       base + addons,
	}, nil
}
