package pipeline

import (
	"github.com/bobmcallan/meme-scanner/internal/display"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/models"
)

// Payload is the JSON shape of a completed lookup for the API and tool surfaces.
type Payload struct {
	Address   string                 `json:"address"`
	Locale    locale.Locale          `json:"locale"`
	Snapshot  *models.TokenSnapshot  `json:"snapshot"`
	Analysis  *models.AnalysisResult `json:"analysis"`
	Derived   display.Derived        `json:"derived"`
	ElapsedMs int64                  `json:"elapsedMs"`
}

// NewPayload adds the derived display values to a result.
func NewPayload(r *Result) Payload {
	if r == nil {
		return Payload{}
	}
	return Payload{
		Address:   r.Address,
		Locale:    r.Locale,
		Snapshot:  r.Snapshot,
		Analysis:  r.Analysis,
		Derived:   display.NewDerived(r.Snapshot),
		ElapsedMs: r.Elapsed.Milliseconds(),
	}
}
