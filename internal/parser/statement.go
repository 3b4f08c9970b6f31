package parser

import (
	"strings"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// StatementParser recovers transactions from linearized bank-statement
// text. It is a pure function of already-extracted page text; PDF text
// extraction itself is the extractor package's job.
//
// A line qualifies as a transaction only if it carries both a date-shaped
// and at least one amount-shaped substring. Lines that fail numeric
// coercion are silently dropped, never escalated.
type StatementParser struct{}

// FormatName returns the parser name.
func (p *StatementParser) FormatName() string { return "statement" }

// Parse treats data as extracted statement text (pages concatenated with
// newlines) and scans it line by line.
func (p *StatementParser) Parse(data []byte) ([]models.Transaction, error) {
	return p.ParseText(string(data)), nil
}

// ParseText scans statement text line by line, keeping every line that
// yields a transaction.
func (p *StatementParser) ParseText(text string) []models.Transaction {
	var txns []models.Transaction
	for _, line := range strings.Split(text, "\n") {
		if txn, ok := extractLine(line); ok {
			txns = append(txns, txn)
		}
	}
	return txns
}

// extractLine attempts to read one transaction from a statement line.
// Returns false when the line does not qualify.
func extractLine(line string) (models.Transaction, bool) {
	date := datePattern.FindString(line)
	amounts := amountPattern.FindAllString(line, -1)
	if date == "" || len(amounts) == 0 {
		return models.Transaction{}, false
	}

	raw := lastAmountWins(amounts)
	amt, err := parseAmount(raw)
	if err != nil {
		return models.Transaction{}, false
	}

	// The description is whatever remains after removing the date and the
	// chosen amount token.
	desc := strings.ReplaceAll(line, date, "")
	desc = strings.ReplaceAll(desc, raw, "")

	return models.Transaction{
		Date:        date,
		Description: collapseWhitespace(desc),
		Amount:      amt,
	}, true
}

// lastAmountWins selects the transaction amount when a line carries
// several amount-shaped tokens (typically debit/credit/balance columns).
// The last token on the line is taken; on multi-column statements this
// can be the running balance rather than the movement.
func lastAmountWins(matches []string) string {
	return matches[len(matches)-1]
}
