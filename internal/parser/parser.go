package parser

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// Format identifies a supported source document format.
type Format string

const (
	// FormatCSV is a free-form transaction CSV with arbitrary headers.
	FormatCSV Format = "csv"
	// FormatStatement is linearized bank-statement text extracted from a PDF.
	FormatStatement Format = "statement"
	// FormatGST is a GSTR-1 tax-filing JSON document.
	FormatGST Format = "gst"
)

var (
	// ErrNoAmountColumn is returned when no CSV header resolves to the
	// required amount field.
	ErrNoAmountColumn = errors.New("no column maps to amount; expected one of amount, value, total")

	// ErrNoTransactions is returned by callers when a parse succeeds but
	// yields nothing usable for analysis.
	ErrNoTransactions = errors.New("no transactions could be extracted from the input")

	// ErrUnsupportedFormat is returned by New for format values it does not
	// know.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// Parser converts raw source bytes into an ordered sequence of canonical
// transactions. Ordering follows extraction order, not chronology. An
// empty result is valid at this level; callers decide whether to reject it.
type Parser interface {
	Parse(data []byte) ([]models.Transaction, error)
	FormatName() string
}

// New returns the parser for the given format.
func New(format Format) (Parser, error) {
	switch format {
	case FormatCSV:
		return &CSVParser{}, nil
	case FormatStatement:
		return &StatementParser{}, nil
	case FormatGST:
		return &GSTParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DetectFormat picks a format from the filename extension, falling back
// to content sniffing when the extension is missing or unknown.
func DetectFormat(filename string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV
	case ".pdf":
		return FormatStatement
	case ".json":
		return FormatGST
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")), bytes.HasPrefix(trimmed, []byte("[")):
		return FormatGST
	case bytes.HasPrefix(trimmed, []byte("%PDF")):
		return FormatStatement
	default:
		return FormatCSV
	}
}
