// Package forecast projects short-horizon revenue and expense trends from
// monthly-resampled transaction history.
package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// horizon is the number of future months projected per series.
const horizon = 6

// monthLabel is the display format for projected months.
const monthLabel = "Jan 2006"

// Point is one projected month.
type Point struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Result is the forecast document (the report's "forecast" key). A series
// with fewer than two monthly data points projects nothing; that is an
// empty list, not an error.
type Result struct {
	RevenueForecast []Point `json:"revenue_forecast"`
	ExpenseForecast []Point `json:"expense_forecast"`
}

// Generate buckets amounts by calendar month, independently for the
// revenue subset (positive amounts) and the expense subset (negative
// amounts, magnitudes summed), and projects each series six months out
// with a least-squares linear trend over (month ordinal, monthly sum)
// pairs. Rows with unparseable dates are dropped first; if everything is
// dropped the forecast is explicitly empty.
func Generate(txns []models.Transaction) *Result {
	revenue := monthlySeries(txns, func(d decimal.Decimal) bool { return d.IsPositive() })
	expense := monthlySeries(txns, func(d decimal.Decimal) bool { return d.IsNegative() })

	return &Result{
		RevenueForecast: project(revenue),
		ExpenseForecast: project(expense),
	}
}

// monthPoint is one observed month.
type monthPoint struct {
	month time.Time
	sum   decimal.Decimal
}

// monthlySeries sums amount magnitudes by calendar month for transactions
// matching the subset predicate, sorted chronologically.
func monthlySeries(txns []models.Transaction, keep func(decimal.Decimal) bool) []monthPoint {
	sums := make(map[time.Time]decimal.Decimal)
	for _, t := range txns {
		when, ok := models.ParseDate(t.Date)
		if !ok || !keep(t.Amount) {
			continue
		}
		month := time.Date(when.Year(), when.Month(), 1, 0, 0, 0, 0, time.UTC)
		sums[month] = sums[month].Add(t.Amount.Abs())
	}

	series := make([]monthPoint, 0, len(sums))
	for month, sum := range sums {
		series = append(series, monthPoint{month: month, sum: sum})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].month.Before(series[j].month)
	})
	return series
}

// project extrapolates the fitted trend over the next horizon months.
// Projections are floored at zero (revenue and expense magnitudes cannot
// go negative) and rounded to two decimal places.
func project(series []monthPoint) []Point {
	if len(series) < 2 {
		return []Point{}
	}

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, p := range series {
		xs[i] = float64(i)
		ys[i] = p.sum.InexactFloat64()
	}
	slope, intercept := linearFit(xs, ys)

	last := series[len(series)-1].month
	points := make([]Point, 0, horizon)
	for i := 1; i <= horizon; i++ {
		x := float64(len(series) - 1 + i)
		predicted := math.Max(0, slope*x+intercept)
		points = append(points, Point{
			Date:   last.AddDate(0, i, 0).Format(monthLabel),
			Amount: math.Round(predicted*100) / 100,
		})
	}
	return points
}

// linearFit returns the least-squares slope and intercept for the given
// points. Callers guarantee at least two points with distinct x values.
func linearFit(xs, ys []float64) (slope, intercept float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
