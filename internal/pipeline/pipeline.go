// Package pipeline runs one token lookup: market snapshot first, then the
// analysis, and maps every failure to a single Kind.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/market"
	"github.com/bobmcallan/meme-scanner/internal/metrics"
	"github.com/bobmcallan/meme-scanner/internal/models"
)

// Fetcher resolves an address to its best trading pair.
type Fetcher interface {
	FetchSnapshot(ctx context.Context, address string) (*models.TokenSnapshot, error)
}

// Analyzer requests the structured analysis of a snapshot.
type Analyzer interface {
	RequestAnalysis(ctx context.Context, snap *models.TokenSnapshot, loc locale.Locale) (*models.AnalysisResult, error)
}

// Result is a completed lookup. Both parts are always present.
type Result struct {
	Address  string                 `json:"address"`
	Locale   locale.Locale          `json:"locale"`
	Snapshot *models.TokenSnapshot  `json:"snapshot"`
	Analysis *models.AnalysisResult `json:"analysis"`
	Elapsed  time.Duration          `json:"elapsed"`
}

// Pipeline wires a Fetcher and an Analyzer.
type Pipeline struct {
	fetcher  Fetcher
	analyzer Analyzer
	metrics  *metrics.Metrics
	logger   *common.Logger
}

// New creates a Pipeline. metrics and logger may be nil.
func New(f Fetcher, a Analyzer, m *metrics.Metrics, logger *common.Logger) *Pipeline {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Pipeline{fetcher: f, analyzer: a, metrics: m, logger: logger}
}

// Run performs one lookup. The analysis stage runs only after the market
// stage produced a real snapshot. Errors are always *Error.
func (p *Pipeline) Run(ctx context.Context, address string, loc locale.Locale) (*Result, error) {
	address = strings.TrimSpace(address)
	done := p.metrics.TrackInFlight()
	defer done()
	start := time.Now()

	if address == "" {
		return nil, p.fail(address, StageMarket, fmt.Errorf("%w: blank address", market.ErrNotFound))
	}

	t := time.Now()
	snap, err := p.fetcher.FetchSnapshot(ctx, address)
	p.metrics.ObserveStage(metrics.StageMarket, time.Since(t), err == nil)
	if err != nil {
		return nil, p.fail(address, StageMarket, err)
	}
	if snap == nil {
		return nil, p.fail(address, StageMarket, market.ErrNoPairs)
	}

	t = time.Now()
	result, err := p.analyzer.RequestAnalysis(ctx, snap, loc)
	p.metrics.ObserveStage(metrics.StageAnalysis, time.Since(t), err == nil)
	if err != nil {
		return nil, p.fail(address, StageAnalysis, err)
	}

	elapsed := time.Since(start)
	p.metrics.RecordLookup("ok")
	p.logger.Info().
		Str("address", address).
		Str("symbol", snap.Symbol()).
		Str("locale", loc.String()).
		Bool("fdv", snap.IsFDV).
		Int("sources", len(result.Sources)).
		Dur("elapsed", elapsed).
		Msg("lookup complete")

	return &Result{
		Address:  address,
		Locale:   loc,
		Snapshot: snap,
		Analysis: result,
		Elapsed:  elapsed,
	}, nil
}

func (p *Pipeline) fail(address, stage string, err error) *Error {
	kind := Classify(err)
	p.metrics.RecordLookup(string(kind))

	ev := p.logger.Warn()
	switch kind {
	case KindNotFound:
		ev = p.logger.Info()
	case KindMalformedResponse, KindPermissionDenied, KindResourceNotFound:
		ev = p.logger.Error()
	}
	ev.Str("address", address).
		Str("stage", stage).
		Str("kind", string(kind)).
		Err(err).
		Msg("lookup failed")

	return &Error{Kind: kind, Stage: stage, Err: err}
}
