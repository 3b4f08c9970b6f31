// Package insight defines the narrative-analysis boundary. The narrative
// itself comes from an external collaborator; its output is carried
// through the report as an opaque JSON blob, never parsed or validated by
// the core.
package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/insightdelivered/sme-finance-analyzer/internal/models"
)

// Analyzer produces the narrative placed at the report's ai_analysis key.
type Analyzer interface {
	Analyze(ctx context.Context, metrics models.Metrics, language string) (string, error)
}

// Fallback is the deterministic stand-in used when no external analyzer
// is configured or the configured one fails. Its shape matches what
// downstream report assembly expects from the real collaborator.
type Fallback struct{}

// Analyze builds a minimal narrative from the metrics alone.
func (Fallback) Analyze(_ context.Context, metrics models.Metrics, _ string) (string, error) {
	payload := map[string]any{
		"creditworthiness":     "Unknown",
		"risk_assessment":      "Narrative analysis is not configured.",
		"cost_optimization":    []string{},
		"executive_summary":    fmt.Sprintf("The business reports a net profit margin of %s. Revenue is %.2f.", metrics.ProfitMargin, metrics.TotalRevenue),
		"recommended_products": []string{},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding fallback narrative: %w", err)
	}
	return string(b), nil
}
