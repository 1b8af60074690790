package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/meme-scanner/internal/analysis"
	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/config"
	"github.com/bobmcallan/meme-scanner/internal/handlers"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/market"
	"github.com/bobmcallan/meme-scanner/internal/mcp"
	"github.com/bobmcallan/meme-scanner/internal/metrics"
	"github.com/bobmcallan/meme-scanner/internal/pipeline"
	"github.com/bobmcallan/meme-scanner/internal/session"
)

// janitorInterval is how often expired sessions are swept.
const janitorInterval = time.Minute

// App holds all application components and dependencies.
type App struct {
	Config  *config.Config
	Logger  *common.Logger
	Metrics *metrics.Metrics
	Catalog *locale.Catalog

	Market   *market.Client
	Analyzer *analysis.Requester
	Pipeline *pipeline.Pipeline
	Sessions *session.Store

	// HTTP handlers
	PageHandler       *handlers.PageHandler
	HealthHandler     *handlers.HealthHandler
	VersionHandler    *handlers.VersionHandler
	DashboardHandler  *handlers.DashboardHandler
	ScanHandler       *handlers.ScanHandler
	APIScanHandler    *handlers.APIScanHandler
	SessionAPIHandler *handlers.SessionAPIHandler
	MCPHandler        *mcp.Handler

	cancel context.CancelFunc
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("RUNNING IN DEV MODE, templates report dev mode and debug output is expected")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	catalog, err := locale.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load label catalog: %w", err)
	}
	a.Catalog = catalog

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if err := a.initPipeline(ctx); err != nil {
		cancel()
		return nil, err
	}
	a.initSessions(ctx)
	a.initHandlers()

	logger.Info().
		Bool("analysis_configured", cfg.HasAnalysisKey()).
		Str("model", cfg.Analysis.Model).
		Str("chain", cfg.Market.Chain).
		Msg("application initialization complete")

	return a, nil
}

// initPipeline wires the market client, the analysis requester and metrics.
func (a *App) initPipeline(ctx context.Context) error {
	a.Metrics = metrics.New()

	a.Market = market.NewClient(a.Config.Market.BaseURL, a.Config.Market.Chain, a.Config.Market.GetTimeout(), a.Logger)

	gen, err := analysis.NewGenerator(ctx, a.Config.Analysis)
	if err != nil {
		return fmt.Errorf("failed to create analysis client: %w", err)
	}
	if !a.Config.HasAnalysisKey() {
		a.Logger.Warn().Msg("no analysis API key configured, every lookup will report a configuration error")
	}
	a.Analyzer = analysis.NewRequester(gen, a.Config.Analysis, a.Logger)

	a.Pipeline = pipeline.New(a.Market, a.Analyzer, a.Metrics, a.Logger)
	return nil
}

// initSessions creates the browser session store and its janitor.
func (a *App) initSessions(ctx context.Context) {
	a.Sessions = session.NewStore(a.Config.Session.GetTTL(), a.Config.Session.MaxEntries)
	go a.Sessions.RunJanitor(ctx, janitorInterval)

	if err := a.Metrics.RegisterGaugeFunc("sessions", "Browser sessions currently held.", func() float64 {
		return float64(a.Sessions.Len())
	}); err != nil {
		a.Logger.Warn().Err(err).Msg("failed to register sessions gauge")
	}
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.PageHandler = handlers.NewPageHandler(a.Logger, a.Config.IsDevMode())
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.DashboardHandler = handlers.NewDashboardHandler(a.Logger, a.PageHandler, a.Sessions, a.Catalog)
	a.ScanHandler = handlers.NewScanHandler(a.Logger, a.Pipeline, a.Sessions)
	a.APIScanHandler = handlers.NewAPIScanHandler(a.Logger, a.Pipeline, a.Catalog)
	a.SessionAPIHandler = handlers.NewSessionAPIHandler(a.Logger, a.Sessions)
	a.MCPHandler = mcp.NewHandler(a.Pipeline, a.Catalog, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close stops background work.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	return nil
}
