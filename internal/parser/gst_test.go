package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

func TestGSTParserB2BAndB2CS(t *testing.T) {
	doc := `{
		"b2b": [
			{"inv": [{"idt": "15-01-2023", "inum": "INV-001", "val": 200}]}
		],
		"b2cs": [
			{"txval": 300}
		]
	}`

	p := &GSTParser{}
	txns, err := p.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}

	b2b := txns[0]
	if b2b.Description != "GST Inv#INV-001 (B2B)" {
		t.Errorf("b2b description = %q", b2b.Description)
	}
	if b2b.Date != "2023-01-15" {
		t.Errorf("b2b date = %q, want day-month-year normalized to ISO", b2b.Date)
	}
	if b2b.Category != models.CategoryRevenue {
		t.Errorf("b2b category = %q", b2b.Category)
	}

	b2cs := txns[1]
	if b2cs.Description != "GST B2CS Aggregated Sales" {
		t.Errorf("b2cs description = %q", b2cs.Description)
	}
	// The aggregate sentinel has no parseable date and becomes today.
	if b2cs.Date != time.Now().Format(models.ISODate) {
		t.Errorf("b2cs date = %q, want today", b2cs.Date)
	}

	total := txns[0].Amount.Add(txns[1].Amount)
	if !total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("total = %s, want 500", total)
	}
}

func TestGSTParserDefaults(t *testing.T) {
	doc := `{"b2b": [{"inv": [{"val": 100}]}]}`

	p := &GSTParser{}
	txns, err := p.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Description != "GST Inv#NA (B2B)" {
		t.Errorf("description = %q, want NA placeholder", txns[0].Description)
	}
	if txns[0].Date != time.Now().Format(models.ISODate) {
		t.Errorf("date = %q, want today for missing invoice date", txns[0].Date)
	}
}

func TestGSTParserEmptyFiling(t *testing.T) {
	p := &GSTParser{}
	txns, err := p.Parse([]byte(`{"gstin": "22AAAAA0000A1Z5"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 0 {
		t.Fatalf("expected empty result, got %d", len(txns))
	}
}

func TestGSTParserInvalidJSON(t *testing.T) {
	p := &GSTParser{}
	if _, err := p.Parse([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
