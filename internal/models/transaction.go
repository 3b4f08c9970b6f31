package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateAggregated is the sentinel date carried by period-aggregated entries
// (e.g. monthly consumer-sales totals from a tax filing) that have no
// single transaction date.
const DateAggregated = "Monthly Agg."

// Transaction is the canonical record every source parser produces.
// Amount sign is load-bearing: positive means inflow (revenue-like),
// negative means outflow (expense-like). Category is empty until the
// categorizer assigns it; nothing else mutates after parsing.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
}

// Category taxonomy. The order Operational..Financial is also the keyword
// matching order used by the categorizer.
const (
	CategoryRevenue       = "Revenue"
	CategoryOperational   = "Operational"
	CategoryPayroll       = "Payroll"
	CategoryMarketing     = "Marketing"
	CategorySoftware      = "Software"
	CategoryTravelMeals   = "Travel & Meals"
	CategoryCOGS          = "COGS"
	CategoryTaxes         = "Taxes"
	CategoryFinancial     = "Financial"
	CategoryMiscellaneous = "Miscellaneous"
)

// ISODate is the serialization format for normalized dates.
const ISODate = "2006-01-02"

// dateLayouts are tried in order by ParseDate. Day-first layouts come
// before month-first so ambiguous dates like 01/02/2024 resolve day-first,
// matching the statement and tax-filing conventions we ingest.
var dateLayouts = []string{
	"2006-01-02",
	"2006/1/2",
	"2006-1-2",
	"2/1/2006",
	"2-1-2006",
	"1/2/2006",
	"2/1/06",
	"2 Jan 2006",
}

// ParseDate attempts to interpret an as-extracted date string. The second
// return is false when no known layout matches (including the aggregate
// sentinel); callers treat that as "no usable date".
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
