package models

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Summary is the scalar aggregate computed once per request and shared
// read-only by the tax estimator and the working-capital analyzer.
type Summary struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
}

// Summarize folds the amount sign convention into the three totals:
// revenue is the sum of positive amounts, expenses the absolute sum of
// negative ones.
func Summarize(txns []Transaction) Summary {
	var rev, exp decimal.Decimal
	for _, t := range txns {
		switch {
		case t.Amount.IsPositive():
			rev = rev.Add(t.Amount)
		case t.Amount.IsNegative():
			exp = exp.Add(t.Amount.Abs())
		}
	}
	return Summary{
		TotalRevenue:  rev,
		TotalExpenses: exp,
		NetProfit:     rev.Sub(exp),
	}
}

// ProfitMarginPct returns net profit as a percentage of revenue, 0 when
// there is no revenue.
func (s Summary) ProfitMarginPct() float64 {
	if !s.TotalRevenue.IsPositive() {
		return 0
	}
	return s.NetProfit.Div(s.TotalRevenue).InexactFloat64() * 100
}

// HealthScore maps the profit margin onto a 0-100 scale: base 50 plus two
// points per margin percentage point, clamped at both ends.
func (s Summary) HealthScore() int {
	return int(math.Min(100, math.Max(0, s.ProfitMarginPct()*2+50)))
}

// Metrics is the report-facing view of the summary. The JSON key names
// are part of the report contract consumed by external renderers and must
// not change.
type Metrics struct {
	TotalRevenue  float64 `json:"Total Revenue"`
	TotalExpenses float64 `json:"Total Expenses"`
	NetProfit     float64 `json:"Net Profit"`
	ProfitMargin  string  `json:"Profit Margin"`
	Industry      string  `json:"Industry"`
	Company       string  `json:"Company"`
}

// Metrics renders the summary for the report document.
func (s Summary) Metrics(company, industry string) Metrics {
	return Metrics{
		TotalRevenue:  s.TotalRevenue.InexactFloat64(),
		TotalExpenses: s.TotalExpenses.InexactFloat64(),
		NetProfit:     s.NetProfit.InexactFloat64(),
		ProfitMargin:  fmt.Sprintf("%.2f%%", s.ProfitMarginPct()),
		Industry:      industry,
		Company:       company,
	}
}
