// Package bookkeeping classifies canonical transactions into the fixed
// SME category taxonomy and aggregates the expense breakdown consumed by
// the tax and working-capital modules.
package bookkeeping

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// categoryRule pairs a category with its ordered keyword list. Rules are
// evaluated in declaration order and the first substring hit wins, so the
// order below is a tie-break mechanism, not a style choice.
type categoryRule struct {
	name     string
	keywords []string
}

func defaultRules() []categoryRule {
	return []categoryRule{
		{models.CategoryOperational, []string{"rent", "utility", "electricity", "water", "internet", "phone", "office", "repair", "maintenance", "cleaning"}},
		{models.CategoryPayroll, []string{"salary", "wages", "contractor", "consultant", "payroll", "bonus", "hiring"}},
		{models.CategoryMarketing, []string{"ads", "advertising", "facebook", "google", "marketing", "promo", "campaign", "social media", "seo"}},
		{models.CategorySoftware, []string{"aws", "azure", "google cloud", "software", "subscription", "zoom", "slack", "microsoft", "adobe", "saas"}},
		{models.CategoryTravelMeals, []string{"uber", "lyft", "taxi", "flight", "hotel", "airbnb", "travel", "meal", "food", "restaurant", "dinner", "lunch"}},
		{models.CategoryCOGS, []string{"inventory", "raw material", "freight", "shipping", "goods", "supplier", "purchase order"}},
		{models.CategoryTaxes, []string{"tax", "gst", "vat", "irs", "gov", "audit"}},
		{models.CategoryFinancial, []string{"bank", "fee", "interest", "insurance", "loan", "credit card"}},
	}
}

// Categorizer assigns taxonomy labels by keyword matching.
type Categorizer struct {
	rules []categoryRule
}

// New returns a categorizer with the standard SME keyword table.
func New() *Categorizer {
	return &Categorizer{rules: defaultRules()}
}

// NewWithExtras returns a categorizer whose keyword lists are extended
// with operator-supplied keywords per category. Extras for unknown
// category names are ignored; extras never change rule order.
func NewWithExtras(extras map[string][]string) *Categorizer {
	c := New()
	for i, rule := range c.rules {
		for _, kw := range extras[rule.name] {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				c.rules[i].keywords = append(c.rules[i].keywords, kw)
			}
		}
	}
	return c
}

// Classify returns the category for a single transaction. A positive
// amount is always Revenue, before any keyword test. Classification
// depends only on the amount sign and the description, so re-classifying
// an already-categorized transaction is a no-op.
func (c *Categorizer) Classify(amount decimal.Decimal, description string) string {
	if amount.IsPositive() {
		return models.CategoryRevenue
	}
	desc := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.name
			}
		}
	}
	return models.CategoryMiscellaneous
}

// CategoryTotal is one expense-breakdown entry.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RecentTransaction is a display-formatted transaction for the report.
type RecentTransaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// Result is the categorizer output handed to downstream modules and the
// report document (the "bookkeeping" key).
type Result struct {
	Breakdown          []CategoryTotal     `json:"breakdown"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
}

// maxRecent caps the recency list in the report.
const maxRecent = 20

// Categorize annotates every transaction with its category and builds
// the expense breakdown plus the recency list. The breakdown sums
// absolute values of expense transactions only, in category discovery
// order. Transactions without a parseable date stay in the breakdown but
// are excluded from the recency list.
func (c *Categorizer) Categorize(txns []models.Transaction) (*Result, error) {
	if len(txns) == 0 {
		return nil, errors.New("no transactions to categorize")
	}

	for i := range txns {
		txns[i].Category = c.Classify(txns[i].Amount, txns[i].Description)
	}

	result := &Result{
		Breakdown:          buildBreakdown(txns),
		RecentTransactions: recentTransactions(txns),
	}
	return result, nil
}

func buildBreakdown(txns []models.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range txns {
		if !t.Amount.IsNegative() {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount.Abs())
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		breakdown = append(breakdown, CategoryTotal{
			Name:  name,
			Value: totals[name].InexactFloat64(),
		})
	}
	return breakdown
}

func recentTransactions(txns []models.Transaction) []RecentTransaction {
	type dated struct {
		when time.Time
		txn  models.Transaction
	}
	var pool []dated
	for _, t := range txns {
		if when, ok := models.ParseDate(t.Date); ok {
			pool = append(pool, dated{when: when, txn: t})
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].when.After(pool[j].when)
	})
	if len(pool) > maxRecent {
		pool = pool[:maxRecent]
	}

	recent := make([]RecentTransaction, 0, len(pool))
	for _, d := range pool {
		recent = append(recent, RecentTransaction{
			Date:        d.when.Format(models.ISODate),
			Description: d.txn.Description,
			Amount:      d.txn.Amount.InexactFloat64(),
			Category:    d.txn.Category,
		})
	}
	return recent
}
