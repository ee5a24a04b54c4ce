package triage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/triage-api/internal/config"
	"github.com/sells-group/triage-api/internal/model"
	"github.com/sells-group/triage-api/pkg/anthropic"
)

const defaultTimeout = 60 * time.Second

// Analyzer orchestrates a single-pass batch analysis: bound the batch, build
// the prompt, make one completion call, extract, normalize. It holds no
// cross-request state; concurrent calls are independent.
type Analyzer struct {
	client anthropic.Client
	ai     config.AnthropicConfig
	cfg    config.AnalyzeConfig
}

// NewAnalyzer creates an Analyzer. Configuration is passed in explicitly;
// nothing is read from the environment at request time.
func NewAnalyzer(client anthropic.Client, ai config.AnthropicConfig, cfg config.AnalyzeConfig) *Analyzer {
	return &Analyzer{client: client, ai: ai, cfg: cfg}
}

// Configured reports whether a provider credential is present, without a
// live provider call.
func (a *Analyzer) Configured() bool {
	return a.ai.Configured()
}

// AnalyzeBatch runs the full pipeline for one batch of complaints. Exactly
// one provider call is made per invocation; failures are terminal and never
// retried.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, complaints []model.ComplaintInput) (*model.AnalysisResponse, error) {
	if len(complaints) == 0 {
		return nil, ErrInputInvalid
	}
	if !a.ai.Configured() {
		return nil, ErrNotConfigured
	}

	batch := TruncateBatch(complaints, a.cfg.MaxBatchSize)
	if len(batch) < len(complaints) {
		zap.L().Warn("analyze: batch truncated",
			zap.Int("submitted", len(complaints)),
			zap.Int("kept", len(batch)),
		)
	}

	req, err := BuildPrompt(batch, a.ai)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(a.cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := a.client.CreateMessage(callCtx, req)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	resp.Usage.LogCost(a.ai.Model, "analyze")

	text := resp.Text()
	var results []model.AnalysisResult
	if parsed, ok := ExtractJSON(text); ok {
		results = Normalize(parsed, batch)
	}
	if len(results) == 0 {
		// Nothing usable is equivalent to a provider failure; keep an
		// excerpt of the raw text for diagnostics.
		return nil, &UnparseableError{Raw: Excerpt(text)}
	}

	zap.L().Info("analyze: batch complete",
		zap.Int("complaints", len(batch)),
		zap.Int("results", len(results)),
	)

	return &model.AnalysisResponse{
		Count:   len(results),
		Results: results,
	}, nil
}
