package pricing

import (
	"registrar/pkg/domain"
	"time"
)

// dateLayout is the wire format of calendar dates in the pricing table.
const dateLayout = "2006-01-02"

// TableWindow is a window rendered with calendar dates. An empty bound is open.
type TableWindow struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// TableRow is one priced window of the pricing table.
type TableRow struct {
	Phase  domain.Phase          `json:"phase"`
	Window TableWindow           `json:"window"`
	Prices domain.CategoryPrices `json:"prices"`
}

// Table is the published price list of an event.
type Table struct {
	Currency       string       `json:"currency"`
	DinnerAddon    int64        `json:"dinnerAddon"`
	EventStartDate string       `json:"eventStartDate"`
	NowPhase       domain.Phase `json:"nowPhase"`
	Rows           []TableRow   `json:"rows"`
}

// BuildTable renders the priced windows of policy and the phase in effect at now.
func BuildTable(policy domain.PricingPolicy, now time.Time, loc *time.Location) Table {
	windows := Windows(policy.EventStartDate)
	rows := make([]TableRow, 0, len(windows))
	for _, w := range windows {
		rows = append(rows, TableRow{
			Phase:  w.Phase,
			Window: TableWindow{Start: formatDate(w.Start), End: formatDate(w.End)},
			Prices: PhasePrices(policy, w.Phase),
		})
	}

	return Table{
		Currency:       policy.Currency,
		DinnerAddon:    policy.AddonPrice,
		EventStartDate: startDate(policy.EventStartDate).Format(dateLayout),
		NowPhase:       Classify(now, policy.EventStartDate, loc),
		Rows:           rows,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(dateLayout)
}

// ParseDate parses a calendar date in the pricing table format.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s) //nolint: wrapcheck
}
