// Package tax estimates liability and attributes deductions from
// categorized expense data. The flat rate is an indicative heuristic, not
// filing advice.
package tax

import (
	"math"

	"github.com/insightdelivered/sme-finance-analyzer/internal/bookkeeping"
	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// flatRate is the indicative corporate tax rate applied to net profit.
const flatRate = 0.25

// burdenThreshold flips the status to a high-burden warning when the
// estimate exceeds this share of net profit.
const burdenThreshold = 0.4

// deductibleCategories are the expense categories counted toward
// deductions.
var deductibleCategories = map[string]bool{
	models.CategoryOperational: true,
	models.CategoryMarketing:   true,
	models.CategorySoftware:    true,
	models.CategoryTravelMeals: true,
	models.CategoryCOGS:        true,
	models.CategoryPayroll:     true,
}

// Result is the tax document (the report's "tax" key).
type Result struct {
	EstimatedTax       float64                     `json:"estimated_tax"`
	TaxRate            string                      `json:"tax_rate"`
	TotalDeductible    float64                     `json:"total_deductible_expenses"`
	DeductionBreakdown []bookkeeping.CategoryTotal `json:"deduction_breakdown"`
	Status             string                      `json:"status"`
	Message            string                      `json:"message"`
}

// Estimate computes the liability estimate from the financial summary and
// the categorized breakdown. Losses owe no tax (floor at zero). A nil
// bookkeeping result yields zero deductions, not a failure.
func Estimate(summary models.Summary, books *bookkeeping.Result) *Result {
	netProfit := summary.NetProfit.InexactFloat64()
	estimated := math.Max(0, netProfit*flatRate)

	var totalDeductible float64
	deductions := []bookkeeping.CategoryTotal{}
	if books != nil {
		for _, item := range books.Breakdown {
			if deductibleCategories[item.Name] {
				totalDeductible += item.Value
				deductions = append(deductions, item)
			}
		}
	}

	status, msg := "Good", "Tax liability is manageable."
	// With a flat 25% rate this triggers exactly when net profit is
	// negative (0 > 0.4*netProfit).
	if estimated > netProfit*burdenThreshold {
		status = "High Tax Burden"
		msg = "Consider re-evaluating expenses or consulting a tax pro."
	}

	return &Result{
		EstimatedTax:       estimated,
		TaxRate:            "25% (Indicative)",
		TotalDeductible:    totalDeductible,
		DeductionBreakdown: deductions,
		Status:             status,
		Message:            msg,
	}
}
