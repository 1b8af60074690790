// Package market fetches trading pairs from the DexScreener token endpoint
// and selects the pair a lookup reports on.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/models"
)

// maxBodyBytes caps how much of a provider response is read.
const maxBodyBytes = 4 << 20

var (
	// ErrNotFound is the family of "no such token" outcomes. It is a valid
	// empty result, not a failure.
	ErrNotFound = errors.New("token not found")
	// ErrNoPairs means the provider returned no pairs at all.
	ErrNoPairs = fmt.Errorf("%w: provider returned no pairs", ErrNotFound)
	// ErrNoChainPairs means pairs exist, but none on the target chain.
	ErrNoChainPairs = fmt.Errorf("%w: no pairs on target chain", ErrNotFound)
	// ErrUnavailable wraps network failures, non-2xx statuses and undecodable bodies.
	ErrUnavailable = errors.New("market data unavailable")
)

// Client reads token pairs from the market-data provider.
type Client struct {
	baseURL    string
	chain      string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client for baseURL (e.g. https://api.dexscreener.com/latest/dex)
// that selects pairs on chain. A zero timeout leaves requests bounded only by
// the caller's context and the transport.
func NewClient(baseURL, chain string, timeout time.Duration, logger *common.Logger) *Client {
	if timeout < 0 {
		timeout = 0
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		chain:      chain,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Chain returns the chain the client selects pairs on.
func (c *Client) Chain() string {
	return c.chain
}

// FetchSnapshot looks up address and returns the deepest pair on the client's chain.
// GET {base}/tokens/{address} -> { pairs: [...] }
func (c *Client) FetchSnapshot(ctx context.Context, address string) (*models.TokenSnapshot, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrNoPairs
	}

	endpoint := c.baseURL + "/tokens/" + url.PathEscape(address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to reach provider: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: provider returned %d: %s", ErrUnavailable, resp.StatusCode, truncate(string(body), 200))
	}

	var result models.PairsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", ErrUnavailable, err)
	}

	pair, candidates, ok := SelectBestPair(result.Pairs, c.chain)
	if len(result.Pairs) == 0 {
		c.logger.Debug().Str("address", address).Msg("provider returned no pairs")
		return nil, ErrNoPairs
	}
	if !ok {
		c.logger.Debug().
			Str("address", address).
			Int("pairs", len(result.Pairs)).
			Str("chain", c.chain).
			Msg("no pairs on target chain")
		return nil, ErrNoChainPairs
	}

	c.logger.Debug().
		Str("address", address).
		Str("pair", pair.PairAddress).
		Str("dex", pair.DexID).
		Int("candidates", candidates).
		Float64("liquidity_usd", pair.Liquidity.USDOrZero()).
		Msg("pair selected")

	return models.NewTokenSnapshot(pair, candidates), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
