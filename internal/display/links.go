package display

import (
	"net/url"
	"strings"

	"github.com/bobmcallan/meme-scanner/internal/models"
)

// ChartURL links to the DexScreener chart for a token.
func ChartURL(chain, address string) string {
	return "https://dexscreener.com/" + url.PathEscape(chainOrDefault(chain)) + "/" + url.PathEscape(address)
}

// ChartEmbedURL is the chart in embeddable dark mode without the trades and info panes.
func ChartEmbedURL(chain, address string) string {
	return ChartURL(chain, address) + "?embed=1&theme=dark&trades=0&info=0"
}

// BubbleMapURL links to the Bubblemaps cluster view for a token.
func BubbleMapURL(chain, address string) string {
	return "https://app.bubblemaps.io/" + url.PathEscape(chainOrDefault(chain)) + "/token/" + url.PathEscape(address)
}

func chainOrDefault(chain string) string {
	if chain == "" {
		return "solana"
	}
	return chain
}

// IsPumpFun reports whether the pair address marks a pump.fun launch.
func IsPumpFun(pairAddress string) bool {
	return strings.Contains(strings.ToLower(pairAddress), "pump")
}

// SocialIcon returns a short badge for a social link type. Unknown types
// show their own name.
func SocialIcon(t models.SocialType) string {
	switch models.SocialType(strings.ToLower(string(t))) {
	case models.SocialTwitter:
		return "X"
	case models.SocialTelegram:
		return "TG"
	case models.SocialDiscord:
		return "DC"
	case models.SocialWebsite:
		return "WEB"
	}
	if t == "" {
		return "LINK"
	}
	return strings.ToUpper(string(t))
}
