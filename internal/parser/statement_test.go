package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStatementParserLastAmountWins(t *testing.T) {
	// Debit/credit/balance style line: the last amount-shaped token is
	// taken as the transaction amount, by policy.
	p := &StatementParser{}
	txns := p.ParseText("01/02/2023 GROCERY STORE 45.00 1,254.50")
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if !txns[0].Amount.Equal(decimal.RequireFromString("1254.50")) {
		t.Errorf("amount = %s, want 1254.50 (last token)", txns[0].Amount)
	}
}

func TestStatementParserLineQualification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"date and amount", "2023-01-15 ACME SUPPLIES -320.00", 1},
		{"date only", "2023-01-15 opening balance brought forward", 0},
		{"amount only", "CARD PAYMENT 99.99", 0},
		{"neither", "Statement of account", 0},
		{"signed amount", "15/01/2023 REFUND +45.50", 1},
	}

	p := &StatementParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := p.ParseText(tt.line)
			if len(txns) != tt.want {
				t.Errorf("got %d transactions, want %d", len(txns), tt.want)
			}
		})
	}
}

func TestStatementParserDescription(t *testing.T) {
	p := &StatementParser{}
	txns := p.ParseText("15/01/2023   CARD  PAYMENT   TESCO   25.99")
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Date != "15/01/2023" {
		t.Errorf("date = %q", txns[0].Date)
	}
	if txns[0].Description != "CARD PAYMENT TESCO" {
		t.Errorf("description = %q, want %q", txns[0].Description, "CARD PAYMENT TESCO")
	}
}

func TestStatementParserMultiLine(t *testing.T) {
	text := "ACME BANK\nStatement Period Jan 2023\n" +
		"2023-01-01 Client payment 5,000.00\n" +
		"2023-01-02 Rent -1,000.00\n" +
		"Closing balance\n"

	p := &StatementParser{}
	txns, err := p.Parse([]byte(text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if !txns[0].Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("first amount = %s", txns[0].Amount)
	}
	if !txns[1].Amount.Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("second amount = %s", txns[1].Amount)
	}
}

func TestStatementParserEmptyDocument(t *testing.T) {
	p := &StatementParser{}
	txns := p.ParseText("No transaction lines here\nJust prose.")
	if len(txns) != 0 {
		t.Fatalf("expected empty result, got %d", len(txns))
	}
}
