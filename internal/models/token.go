// Package models holds the market and analysis data types shared across meme-scanner.
package models

import (
	"strings"
	"time"
)

// PairsResponse is the body of the market provider's token lookup.
type PairsResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Pair is a single trading pair as returned by the market provider.
// Nullable provider fields are pointers.
type Pair struct {
	ChainID       string         `json:"chainId"`
	DexID         string         `json:"dexId"`
	URL           string         `json:"url"`
	PairAddress   string         `json:"pairAddress"`
	BaseToken     PairToken      `json:"baseToken"`
	QuoteToken    PairToken      `json:"quoteToken"`
	PriceNative   string         `json:"priceNative"`
	PriceUSD      string         `json:"priceUsd"`
	Liquidity     *PairLiquidity `json:"liquidity"`
	FDV           *float64       `json:"fdv"`
	MarketCap     *float64       `json:"marketCap"`
	PairCreatedAt *int64         `json:"pairCreatedAt"`
	Volume        Windows        `json:"volume"`
	PriceChange   Windows        `json:"priceChange"`
	Info          *PairInfo      `json:"info"`
}

// PairToken identifies one side of a pair.
type PairToken struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// PairLiquidity is the pool depth of a pair. Any field may be absent.
type PairLiquidity struct {
	USD   *float64 `json:"usd"`
	Base  *float64 `json:"base"`
	Quote *float64 `json:"quote"`
}

// USDOrZero returns the USD liquidity, treating absence as zero.
func (l *PairLiquidity) USDOrZero() float64 {
	if l == nil || l.USD == nil {
		return 0
	}
	return *l.USD
}

// PairInfo is the optional metadata block of a pair.
type PairInfo struct {
	ImageURL  string    `json:"imageUrl"`
	Header    string    `json:"header"`
	OpenGraph string    `json:"openGraph"`
	Websites  []Website `json:"websites"`
	Socials   []Social  `json:"socials"`
}

// Windows holds a value per rolling window.
type Windows struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// Website is a labelled project link.
type Website struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SocialType classifies a social link. Unknown provider values are kept verbatim.
type SocialType string

const (
	SocialWebsite  SocialType = "website"
	SocialTwitter  SocialType = "twitter"
	SocialTelegram SocialType = "telegram"
	SocialDiscord  SocialType = "discord"
)

// Known reports whether t is one of the recognised social types.
func (t SocialType) Known() bool {
	switch t {
	case SocialWebsite, SocialTwitter, SocialTelegram, SocialDiscord:
		return true
	}
	return false
}

// Social is a typed social link.
type Social struct {
	Type SocialType `json:"type"`
	URL  string     `json:"url"`
}

// TokenSnapshot is the selected pair for one lookup, normalised for display and analysis.
type TokenSnapshot struct {
	Chain       string    `json:"chain"`
	Dex         string    `json:"dex"`
	PairAddress string    `json:"pairAddress"`
	PairURL     string    `json:"pairUrl,omitempty"`
	BaseToken   PairToken `json:"baseToken"`
	QuoteToken  PairToken `json:"quoteToken"`

	// PriceUSD is kept as the provider's decimal string; meme prices routinely
	// carry more significant zeros than a float64 prints faithfully.
	PriceUSD    string  `json:"priceUsd"`
	PriceNative string  `json:"priceNative"`
	PriceChange Windows `json:"priceChange"`
	Volume      Windows `json:"volume"`

	Liquidity *float64 `json:"liquidity"` // nil = unknown
	MarketCap *float64 `json:"marketCap"`
	FDV       float64  `json:"fdv"`
	Valuation float64  `json:"valuation"`
	IsFDV     bool     `json:"isFdv"`

	ImageURL      string     `json:"imageUrl,omitempty"`
	Websites      []Website  `json:"websites,omitempty"`
	Socials       []Social   `json:"socials,omitempty"`
	PairCreatedAt *time.Time `json:"pairCreatedAt,omitempty"`

	CandidateCount int `json:"candidateCount"`
}

// NewTokenSnapshot normalises a selected pair. Market cap is preferred for
// valuation; a missing or zero market cap falls back to FDV.
func NewTokenSnapshot(p Pair, candidates int) *TokenSnapshot {
	s := &TokenSnapshot{
		Chain:          p.ChainID,
		Dex:            p.DexID,
		PairAddress:    p.PairAddress,
		PairURL:        p.URL,
		BaseToken:      p.BaseToken,
		QuoteToken:     p.QuoteToken,
		PriceUSD:       strings.TrimSpace(p.PriceUSD),
		PriceNative:    strings.TrimSpace(p.PriceNative),
		PriceChange:    p.PriceChange,
		Volume:         p.Volume,
		MarketCap:      p.MarketCap,
		CandidateCount: candidates,
	}

	if p.Liquidity != nil && p.Liquidity.USD != nil {
		v := *p.Liquidity.USD
		s.Liquidity = &v
	}
	if p.FDV != nil {
		s.FDV = *p.FDV
	}
	if p.MarketCap != nil && *p.MarketCap != 0 {
		s.Valuation = *p.MarketCap
	} else {
		s.Valuation = s.FDV
		s.IsFDV = true
	}

	if p.PairCreatedAt != nil && *p.PairCreatedAt > 0 {
		t := time.UnixMilli(*p.PairCreatedAt).UTC()
		s.PairCreatedAt = &t
	}

	if p.Info != nil {
		s.ImageURL = p.Info.ImageURL
		s.Websites = append(s.Websites, p.Info.Websites...)
		for _, soc := range p.Info.Socials {
			s.Socials = append(s.Socials, Social{
				Type: SocialType(strings.TrimSpace(string(soc.Type))),
				URL:  soc.URL,
			})
		}
	}

	return s
}

// Symbol returns the base token symbol, or "?" when the provider omitted it.
func (s *TokenSnapshot) Symbol() string {
	if s.BaseToken.Symbol == "" {
		return "?"
	}
	return s.BaseToken.Symbol
}
