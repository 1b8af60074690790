// Package mcp exposes token lookups as Model Context Protocol tools over a
// stateless streamable HTTP endpoint.
package mcp

import (
	"context"
	"net/http"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/config"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/pipeline"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Runner performs one token lookup.
type Runner interface {
	Run(ctx context.Context, address string, loc locale.Locale) (*pipeline.Result, error)
}

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler registers the scanner tools and builds the endpoint. Each call
// is independent; no browser session is read or written.
func NewHandler(runner Runner, catalog *locale.Catalog, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"meme-scanner",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(ScanTool(), ScanToolHandler(runner, catalog, logger))
	mcpSrv.AddTool(FormatPriceTool(), FormatPriceToolHandler())
	mcpSrv.AddTool(VersionTool(), VersionToolHandler())

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	if logger != nil {
		logger.Info().Int("tools", 3).Msg("MCP handler initialized")
	}

	return &Handler{
		streamable: streamable,
		logger:     logger,
	}
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
