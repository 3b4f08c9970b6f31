package parser

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCSVParserHeaderAliasing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"canonical headers", "Date,Description,Amount\n2023-01-01,Sales,5000\n"},
		{"aliased headers", "transaction_date,memo,value\n2023-01-01,Sales,5000\n"},
		{"total as amount", "Time,Desc,Total\n2023-01-01,Sales,5000\n"},
		{"upper case", "DATE,DESCRIPTION,AMOUNT\n2023-01-01,Sales,5000\n"},
		{"padded headers", " Date , Description , Amount \n2023-01-01,Sales,5000\n"},
	}

	p := &CSVParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, err := p.Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(txns) != 1 {
				t.Fatalf("expected 1 transaction, got %d", len(txns))
			}
			if txns[0].Date != "2023-01-01" {
				t.Errorf("date = %q", txns[0].Date)
			}
			if txns[0].Description != "Sales" {
				t.Errorf("description = %q", txns[0].Description)
			}
			if !txns[0].Amount.Equal(decimal.NewFromInt(5000)) {
				t.Errorf("amount = %s, want 5000", txns[0].Amount)
			}
		})
	}
}

func TestCSVParserMissingAmountColumn(t *testing.T) {
	p := &CSVParser{}
	_, err := p.Parse([]byte("Date,Description\n2023-01-01,Sales\n"))
	if !errors.Is(err, ErrNoAmountColumn) {
		t.Fatalf("expected ErrNoAmountColumn, got %v", err)
	}
}

func TestCSVParserNonNumericAmountCoercesToZero(t *testing.T) {
	p := &CSVParser{}
	txns, err := p.Parse([]byte("Date,Description,Amount\n2023-01-01,Sales,not-a-number\n2023-01-02,Rent,-1000\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if !txns[0].Amount.IsZero() {
		t.Errorf("non-numeric amount = %s, want 0", txns[0].Amount)
	}
	if !txns[1].Amount.Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("amount = %s, want -1000", txns[1].Amount)
	}
}

func TestCSVParserMissingOptionalColumns(t *testing.T) {
	p := &CSVParser{}
	txns, err := p.Parse([]byte("Amount\n100\n-200\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if txns[0].Date != "" || txns[0].Description != "" {
		t.Errorf("expected empty date and description, got %q %q", txns[0].Date, txns[0].Description)
	}
}

func TestCSVParserShortRows(t *testing.T) {
	// A row shorter than the header must not panic; the missing amount
	// cell coerces to zero.
	p := &CSVParser{}
	txns, err := p.Parse([]byte("Date,Description,Amount\n2023-01-01\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if !txns[0].Amount.IsZero() {
		t.Errorf("amount = %s, want 0", txns[0].Amount)
	}
}

func TestCSVParserEmptyInput(t *testing.T) {
	p := &CSVParser{}
	txns, err := p.Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 0 {
		t.Fatalf("expected empty result, got %d", len(txns))
	}
}
