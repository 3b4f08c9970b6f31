// Package writer exports normalized canonical transactions as CSV, an
// operator utility for inspecting what the ingestion pipeline produced.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// CSVWriter writes canonical transactions in CSV format.
type CSVWriter struct{}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, txns []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txns)
}

// Write writes the header row followed by one row per transaction.
// Amounts keep their canonical signed form; the category column is empty
// for uncategorized records.
func (w *CSVWriter) Write(out io.Writer, txns []models.Transaction) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if err := cw.Write([]string{"Date", "Description", "Amount", "Category"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, txn := range txns {
		row := []string{
			txn.Date,
			txn.Description,
			txn.Amount.StringFixed(2),
			txn.Category,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	return cw.Error()
}
