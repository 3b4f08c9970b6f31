// Package workingcap assesses working-capital health: burn rate,
// marketing efficiency and qualitative recommendations.
package workingcap

import (
	"math"

	"github.com/insightdelivered/sme-finance-analyzer/internal/bookkeeping"
	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// operationalShareLimit triggers an audit recommendation when operational
// spend exceeds this share of total expenses.
const operationalShareLimit = 0.6

// Marketing efficiency thresholds: above the high bar marketing scales
// well; below the low bar (with actual spend) the ROI is poor.
const (
	efficiencyHigh = 5
	efficiencyLow  = 2
)

// Result is the working-capital document (the report's "working_capital"
// key).
type Result struct {
	BurnRate            float64  `json:"burn_rate"`
	MarketingEfficiency float64  `json:"marketing_efficiency"`
	Status              string   `json:"status"`
	Recommendations     []string `json:"recommendations"`
	OperationalSpend    float64  `json:"operational_spend"`
}

// Analyze derives the health assessment from the financial summary and
// the categorized breakdown. Burn rate is the total expenses for the
// observed period; it is not normalized to a monthly rate. Rules are
// ordered and several can apply; a negative net profit alone makes the
// status Critical.
func Analyze(summary models.Summary, books *bookkeeping.Result) *Result {
	totalRevenue := summary.TotalRevenue.InexactFloat64()
	totalExpenses := summary.TotalExpenses.InexactFloat64()
	netProfit := summary.NetProfit.InexactFloat64()

	var marketingSpend, operationalSpend float64
	if books != nil {
		for _, item := range books.Breakdown {
			switch item.Name {
			case models.CategoryMarketing:
				marketingSpend = item.Value
			case models.CategoryOperational:
				operationalSpend = item.Value
			}
		}
	}

	var efficiency float64
	if marketingSpend > 0 {
		efficiency = totalRevenue / marketingSpend
	}

	status := "Healthy"
	recommendations := []string{}

	if netProfit < 0 {
		status = "Critical"
		recommendations = append(recommendations,
			"Immediate: Reduce non-essential operational costs.",
			"Review payment terms with suppliers (extend days payable).")
	} else if totalExpenses > 0 && operationalSpend/totalExpenses > operationalShareLimit {
		recommendations = append(recommendations,
			"Operational costs are high (>60%). Audit utility and recurring services.")
	}

	if efficiency > efficiencyHigh {
		recommendations = append(recommendations,
			"Marketing is highly efficient. Consider scaling ad spend.")
	} else if efficiency < efficiencyLow && marketingSpend > 0 {
		recommendations = append(recommendations,
			"Marketing ROI is low. Review campaign targeting.")
	}

	return &Result{
		BurnRate:            totalExpenses,
		MarketingEfficiency: math.Round(efficiency*100) / 100,
		Status:              status,
		Recommendations:     recommendations,
		OperationalSpend:    operationalSpend,
	}
}
