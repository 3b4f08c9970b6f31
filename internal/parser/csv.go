package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// CSVParser normalizes free-form transaction CSVs. Header names vary
// between exports, so each header is matched case-insensitively against
// an alias table; a file whose headers resolve no amount column is
// rejected outright.
type CSVParser struct{}

// columnAliases maps accepted header synonyms (lower-cased, trimmed) to
// the canonical field they populate.
var columnAliases = map[string]string{
	"amount":           "amount",
	"value":            "amount",
	"total":            "amount",
	"date":             "date",
	"transaction_date": "date",
	"time":             "date",
	"desc":             "description",
	"memo":             "description",
	"description":      "description",
}

// FormatName returns the parser name.
func (p *CSVParser) FormatName() string { return "csv" }

// Parse reads the CSV, resolves headers through the alias table and
// returns one transaction per data row. Non-numeric amount cells coerce
// to zero rather than failing the row.
func (p *CSVParser) Parse(data []byte) ([]models.Transaction, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := resolveColumns(records[0])
	amountCol, ok := cols["amount"]
	if !ok {
		return nil, ErrNoAmountColumn
	}

	var txns []models.Transaction
	for _, rec := range records[1:] {
		txn := models.Transaction{Amount: decimal.Zero}
		if i, ok := cols["date"]; ok && i < len(rec) {
			txn.Date = strings.TrimSpace(rec[i])
		}
		if i, ok := cols["description"]; ok && i < len(rec) {
			txn.Description = strings.TrimSpace(rec[i])
		}
		if amountCol < len(rec) {
			if amt, err := parseAmount(rec[amountCol]); err == nil {
				txn.Amount = amt
			}
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// resolveColumns maps canonical field names to header indexes. The first
// header that resolves to a canonical name wins; later duplicates are
// ignored.
func resolveColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		canon, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, seen := cols[canon]; !seen {
			cols[canon] = i
		}
	}
	return cols
}
