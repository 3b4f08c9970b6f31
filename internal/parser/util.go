package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Date-shaped substring: digit groups 2-4 / 1-2 / 2-4 separated by
	// dashes or slashes (covers YYYY-MM-DD and DD/MM/YYYY style dates).
	datePattern = regexp.MustCompile(`(\d{2,4}[-/]\d{1,2}[-/]\d{2,4})`)

	// Amount-shaped substring: optional sign, digit groups with optional
	// thousands separators, exactly two decimal digits.
	amountPattern = regexp.MustCompile(`([-+]?[\d,]+\.\d{2})`)

	spacesPattern = regexp.MustCompile(`\s+`)
)

// cleanAmount strips currency symbols, thousands separators and stray
// whitespace (including the Unicode variants that show up in extracted
// statement text) so the remainder is plain decimal digits.
func cleanAmount(s string) string {
	r := strings.NewReplacer(
		"£", "", "$", "", "€", "", "₹", "",
		",", "", " ", "", " ", "",
	)
	return r.Replace(strings.TrimSpace(s))
}

// parseAmount converts a string like "1,234.56" or "-£1,234.56" into a
// decimal. Empty or bare-sign strings parse as zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = cleanAmount(s)
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// collapseWhitespace squeezes runs of whitespace into single spaces and
// trims the ends.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(spacesPattern.ReplaceAllString(s, " "))
}
