// Package pipeline orchestrates one request-scoped analysis run: source
// parsing, summary metrics, categorization and the three downstream
// analysis modules, assembled into the composite report document.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/sme-finance-analyzer/internal/bookkeeping"
	"github.com/insightdelivered/sme-finance-analyzer/internal/extractor"
	"github.com/insightdelivered/sme-finance-analyzer/internal/forecast"
	"github.com/insightdelivered/sme-finance-analyzer/internal/insight"
	"github.com/insightdelivered/sme-finance-analyzer/internal/logger"
	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
	"github.com/insightdelivered/sme-finance-analyzer/internal/parser"
	"github.com/insightdelivered/sme-finance-analyzer/internal/tax"
	"github.com/insightdelivered/sme-finance-analyzer/internal/workingcap"
)

// Request carries one uploaded document plus its business context.
type Request struct {
	Filename string
	Data     []byte
	Company  string
	Industry string
	Language string
}

// Report is the composite analysis document. The JSON key names are the
// contract with external report rendering; a module that failed appears
// as null rather than failing the whole report.
type Report struct {
	Metrics        models.Metrics      `json:"metrics"`
	HealthScore    int                 `json:"health_score"`
	AIAnalysis     string              `json:"ai_analysis"`
	Forecast       *forecast.Result    `json:"forecast"`
	Bookkeeping    *bookkeeping.Result `json:"bookkeeping"`
	Tax            *tax.Result         `json:"tax"`
	WorkingCapital *workingcap.Result  `json:"working_capital"`

	// Transactions holds the categorized canonical records for callers
	// that export them; not part of the report document.
	Transactions []models.Transaction `json:"-"`
}

// Pipeline wires the categorizer and the narrative boundary.
type Pipeline struct {
	categorizer *bookkeeping.Categorizer
	analyzer    insight.Analyzer
}

// New builds a pipeline. A nil categorizer gets the standard keyword
// table; a nil analyzer gets the deterministic fallback narrative.
func New(categorizer *bookkeeping.Categorizer, analyzer insight.Analyzer) *Pipeline {
	if categorizer == nil {
		categorizer = bookkeeping.New()
	}
	if analyzer == nil {
		analyzer = insight.Fallback{}
	}
	return &Pipeline{categorizer: categorizer, analyzer: analyzer}
}

// Analyze runs the full pipeline for one document. Ingestion failures
// (unsupported input, no extractable transactions, missing amount column)
// are returned as errors; failures inside individual analysis modules are
// logged and degrade that module's result to null.
func (p *Pipeline) Analyze(ctx context.Context, req Request) (*Report, error) {
	log := logger.FromContext(ctx).With().
		Str("report_id", uuid.NewString()).
		Str("filename", req.Filename).
		Logger()

	txns, err := p.ingest(req)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, parser.ErrNoTransactions
	}
	log.Info().Int("transactions", len(txns)).Msg("ingestion complete")

	summary := models.Summarize(txns)
	report := &Report{
		Metrics:     summary.Metrics(req.Company, req.Industry),
		HealthScore: summary.HealthScore(),
	}

	// Categorization feeds the tax and working-capital modules; its
	// failure leaves them working from a nil breakdown.
	runModule(log, "bookkeeping", func() error {
		books, err := p.categorizer.Categorize(txns)
		if err != nil {
			return err
		}
		report.Bookkeeping = books
		return nil
	})
	report.Transactions = txns

	// The three analysis modules are independent once categorization has
	// run; each is isolated so one module's bug never blocks the others.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		runModule(log, "forecast", func() error {
			report.Forecast = forecast.Generate(txns)
			return nil
		})
	}()
	go func() {
		defer wg.Done()
		runModule(log, "tax", func() error {
			report.Tax = tax.Estimate(summary, report.Bookkeeping)
			return nil
		})
	}()
	go func() {
		defer wg.Done()
		runModule(log, "working_capital", func() error {
			report.WorkingCapital = workingcap.Analyze(summary, report.Bookkeeping)
			return nil
		})
	}()
	wg.Wait()

	report.AIAnalysis = p.narrative(ctx, log, report.Metrics, req.Language)
	return report, nil
}

// ingest detects the input format and produces canonical transactions.
// Raw PDF bytes go through the text-extraction boundary before the
// statement parser sees them.
func (p *Pipeline) ingest(req Request) ([]models.Transaction, error) {
	format := parser.DetectFormat(req.Filename, req.Data)
	data := req.Data

	if format == parser.FormatStatement && bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("%PDF")) {
		pages, err := extractor.ExtractText(data)
		if err != nil {
			return nil, fmt.Errorf("PDF extraction failed: %w", err)
		}
		data = []byte(strings.Join(pages, "\n"))
	}

	src, err := parser.New(format)
	if err != nil {
		return nil, err
	}
	txns, err := src.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s input: %w", src.FormatName(), err)
	}
	return txns, nil
}

// narrative asks the configured analyzer for the opaque narrative blob,
// falling back to the deterministic narrative when it fails.
func (p *Pipeline) narrative(ctx context.Context, log zerolog.Logger, metrics models.Metrics, language string) string {
	text, err := p.analyzer.Analyze(ctx, metrics, language)
	if err == nil {
		return text
	}
	log.Warn().Err(err).Msg("narrative analyzer failed; using fallback")
	text, err = insight.Fallback{}.Analyze(ctx, metrics, language)
	if err != nil {
		log.Error().Err(err).Msg("fallback narrative failed")
		return ""
	}
	return text
}

// runModule executes one analysis module with failure isolation: errors
// and panics are logged and leave the module's result unset.
func runModule(log zerolog.Logger, name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("module", name).Msg("analysis module panicked")
		}
	}()
	if err := fn(); err != nil {
		log.Error().Err(err).Str("module", name).Msg("analysis module failed")
	}
}
