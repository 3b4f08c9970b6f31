package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

func TestWrite(t *testing.T) {
	txns := []models.Transaction{
		{Date: "2023-01-01", Description: "Sales", Amount: decimal.NewFromInt(5000), Category: models.CategoryRevenue},
		{Date: "2023-01-02", Description: "Rent, office", Amount: decimal.RequireFromString("-1000.5"), Category: models.CategoryOperational},
		{Date: "2023-01-03", Description: "Unknown", Amount: decimal.NewFromInt(-10)},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, txns))

	want := "Date,Description,Amount,Category\n" +
		"2023-01-01,Sales,5000.00,Revenue\n" +
		"2023-01-02,\"Rent, office\",-1000.50,Operational\n" +
		"2023-01-03,Unknown,-10.00,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, nil))
	assert.Equal(t, "Date,Description,Amount,Category\n", buf.String())
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w := &CSVWriter{}
	require.NoError(t, w.WriteToFile(path, []models.Transaction{
		{Date: "2023-01-01", Description: "Sales", Amount: decimal.NewFromInt(100), Category: models.CategoryRevenue},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2023-01-01,Sales,100.00,Revenue")
}
