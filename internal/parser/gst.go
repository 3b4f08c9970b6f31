package parser

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// GSTParser extracts revenue transactions from a GSTR-1 tax-filing JSON
// document. Every extracted amount is Revenue regardless of sign: the tax
// authority is a trusted source, unlike the generic sign convention used
// elsewhere.
type GSTParser struct{}

// gstDateLayout is the day-month-year convention GSTR-1 invoice dates use.
const gstDateLayout = "02-01-2006"

// gstFiling mirrors the subset of the GSTR-1 schema we consume: b2b
// invoice lists and b2cs monthly consumer aggregates. Both collections
// are optional.
type gstFiling struct {
	B2B []struct {
		Inv []struct {
			Idt  string      `json:"idt"`
			Inum string      `json:"inum"`
			Val  json.Number `json:"val"`
		} `json:"inv"`
	} `json:"b2b"`
	B2CS []struct {
		Txval json.Number `json:"txval"`
	} `json:"b2cs"`
}

// FormatName returns the parser name.
func (p *GSTParser) FormatName() string { return "gst" }

// Parse decodes the filing and emits one Revenue transaction per B2B
// invoice and per B2CS aggregate entry. Zero invoices under both keys
// yields an empty result, which callers treat as insufficient input.
func (p *GSTParser) Parse(data []byte) ([]models.Transaction, error) {
	var filing gstFiling
	if err := json.Unmarshal(data, &filing); err != nil {
		return nil, fmt.Errorf("decoding GSTR-1 JSON: %w", err)
	}

	var txns []models.Transaction
	for _, entry := range filing.B2B {
		for _, inv := range entry.Inv {
			inum := inv.Inum
			if inum == "" {
				inum = "NA"
			}
			txns = append(txns, models.Transaction{
				Date:        normalizeGSTDate(inv.Idt),
				Description: fmt.Sprintf("GST Inv#%s (B2B)", inum),
				Amount:      numberToDecimal(inv.Val),
				Category:    models.CategoryRevenue,
			})
		}
	}
	for _, entry := range filing.B2CS {
		txns = append(txns, models.Transaction{
			Date:        normalizeGSTDate(models.DateAggregated),
			Description: "GST B2CS Aggregated Sales",
			Amount:      numberToDecimal(entry.Txval),
			Category:    models.CategoryRevenue,
		})
	}
	return txns, nil
}

// normalizeGSTDate parses a day-month-year invoice date and re-serializes
// it as an ISO date string. Anything unparseable, including the aggregate
// sentinel, becomes today so aggregates sort alongside current activity.
func normalizeGSTDate(s string) string {
	t, err := time.Parse(gstDateLayout, s)
	if err != nil {
		t = time.Now()
	}
	return t.Format(models.ISODate)
}

func numberToDecimal(n json.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
