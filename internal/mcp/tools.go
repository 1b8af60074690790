package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/display"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/pipeline"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ScanTool returns the scan_token tool definition.
func ScanTool() mcp.Tool {
	codes := make([]string, 0, len(locale.Supported()))
	for _, l := range locale.Supported() {
		codes = append(codes, l.String())
	}
	return mcp.NewTool("scan_token",
		mcp.WithDescription("Look up a Solana token by contract address: live DexScreener market data, an AI risk and sentiment analysis, and derived display figures (micro-price, market ratios, chart links)."),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Token contract address (CA)."),
		),
		mcp.WithString("locale",
			mcp.Description("Language for the analysis text."),
			mcp.Enum(codes...),
		),
	)
}

// ScanToolHandler runs one lookup and returns the JSON payload. Failures come
// back as tool errors carrying the localized user message and the error kind.
func ScanToolHandler(runner Runner, catalog *locale.Catalog, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		loc := locale.Parse(r.GetString("locale", ""))

		address := strings.TrimSpace(r.GetString("address", ""))
		if address == "" {
			return errorResult(catalog.T(loc, "error.address_required")), nil
		}

		res, err := runner.Run(ctx, address, loc)
		if err != nil {
			kind := pipeline.Classify(err)
			return errorResult(string(kind) + ": " + catalog.T(loc, pipeline.MessageKey(kind))), nil
		}

		out, err := json.Marshal(pipeline.NewPayload(res))
		if err != nil {
			if logger != nil {
				logger.Error().Str("address", address).Err(err).Msg("failed to marshal scan payload")
			}
			return errorResult("failed to marshal scan result"), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(out))},
		}, nil
	}
}

// FormatPriceTool returns the format_price tool definition.
func FormatPriceTool() mcp.Tool {
	return mcp.NewTool("format_price",
		mcp.WithDescription("Render a USD price string in compact micro-price notation, e.g. 0.00000123 becomes $0.0₍₅₎123."),
		mcp.WithString("price",
			mcp.Required(),
			mcp.Description("Decimal price string as reported by the market data provider."),
		),
	)
}

// FormatPriceToolHandler returns the micro-price breakdown of a price string.
func FormatPriceToolHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		price, err := r.RequireString("price")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		mp := display.FormatMicroPrice(price)
		out, err := json.Marshal(map[string]interface{}{
			"display": mp.Display,
			"compact": mp.Compact,
			"zeros":   mp.Zeros,
			"digits":  mp.Digits,
			"valid":   mp.Valid,
		})
		if err != nil {
			return errorResult("failed to marshal price"), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(out))},
		}, nil
	}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
