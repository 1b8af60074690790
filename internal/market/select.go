package market

import "github.com/bobmcallan/meme-scanner/internal/models"

// SelectBestPair returns the pair on chain with the greatest USD liquidity,
// along with how many pairs on chain were considered. Missing liquidity ranks
// as zero. Ties keep the earliest pair in provider order. ok is false when no
// pair is on chain.
func SelectBestPair(pairs []models.Pair, chain string) (best models.Pair, candidates int, ok bool) {
	bestLiq := 0.0
	for _, p := range pairs {
		if p.ChainID != chain {
			continue
		}
		candidates++
		liq := p.Liquidity.USDOrZero()
		if !ok || liq > bestLiq {
			best, bestLiq, ok = p, liq, true
		}
	}
	return best, candidates, ok
}
