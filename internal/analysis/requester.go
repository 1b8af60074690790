// Package analysis requests a structured token analysis from a generative
// model and parses it into models.AnalysisResult.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/config"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/models"
)

// Requester builds the prompt and schema for a snapshot and parses the reply.
type Requester struct {
	gen             Generator
	model           string
	thinkingBudget  int
	searchGrounding bool
	timeout         time.Duration
	logger          *common.Logger
}

// NewRequester creates a Requester using gen and the [analysis] settings.
func NewRequester(gen Generator, cfg config.AnalysisConfig, logger *common.Logger) *Requester {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Requester{
		gen:             gen,
		model:           cfg.Model,
		thinkingBudget:  cfg.ThinkingBudget,
		searchGrounding: cfg.SearchGrounding,
		timeout:         cfg.GetTimeout(),
		logger:          logger,
	}
}

// RequestAnalysis asks the provider to analyse snap with free text in loc.
// The result is all-or-nothing: any parse or validation failure is
// ErrMalformedResponse.
func (r *Requester) RequestAnalysis(ctx context.Context, snap *models.TokenSnapshot, loc locale.Locale) (*models.AnalysisResult, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: no snapshot to analyse", ErrProviderFailure)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	req := GenerateRequest{
		Model:           r.model,
		Prompt:          BuildPrompt(snap, loc),
		Schema:          ResponseSchema(),
		SearchGrounding: r.searchGrounding,
		ThinkingBudget:  r.thinkingBudget,
	}

	start := time.Now()
	resp, err := r.gen.Generate(ctx, req)
	if err != nil {
		if !isClassified(err) {
			err = fmt.Errorf("%w: %v", ErrProviderFailure, err)
		}
		r.logger.Warn().
			Str("model", r.model).
			Str("token", snap.BaseToken.Address).
			Dur("elapsed", time.Since(start)).
			Err(err).
			Msg("analysis request failed")
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	result, err := ParseResult(resp.Text)
	if err != nil {
		r.logger.Warn().
			Str("model", r.model).
			Str("token", snap.BaseToken.Address).
			Str("body", compactJSON(resp.Text, 500)).
			Err(err).
			Msg("analysis response rejected")
		return nil, err
	}
	result.Sources = mergeSources(resp.Citations)

	r.logger.Info().
		Str("model", r.model).
		Str("token", snap.BaseToken.Address).
		Str("locale", loc.String()).
		Int("sources", len(result.Sources)).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")

	return result, nil
}

func isClassified(err error) bool {
	return errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, ErrProviderFailure) ||
		errors.Is(err, ErrMalformedResponse)
}
