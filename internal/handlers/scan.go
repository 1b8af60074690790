package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/pipeline"
	"github.com/bobmcallan/meme-scanner/internal/session"
)

// Runner performs one token lookup.
type Runner interface {
	Run(ctx context.Context, address string, loc locale.Locale) (*pipeline.Result, error)
}

// ScanHandler drives the browser session: scan, reset and language switch.
type ScanHandler struct {
	logger *common.Logger
	runner Runner
	store  *session.Store
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(logger *common.Logger, runner Runner, store *session.Store) *ScanHandler {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &ScanHandler{logger: logger, runner: runner, store: store}
}

// HandleScan handles POST /scan. The lookup runs to completion even if the
// browser goes away; a newer scan on the same session makes the result stale.
func (h *ScanHandler) HandleScan(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	address := strings.TrimSpace(r.FormValue("address"))
	if address == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	loc := RequestLocale(r)
	sess := sessionFor(w, r, h.store)
	seq := sess.Begin(address)

	start := time.Now()
	res, err := h.runner.Run(context.WithoutCancel(r.Context()), address, loc)

	var applied bool
	if err != nil {
		applied = sess.Fail(seq, err)
	} else {
		applied = sess.Complete(seq, res)
	}
	if !applied {
		h.logger.Debug().
			Str("address", address).
			Int("seq", int(seq)).
			Dur("elapsed", time.Since(start)).
			Msg("discarded stale lookup")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleReset handles POST /reset.
func (h *ScanHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}
	sessionFor(w, r, h.store).Reset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLang handles GET /lang?l=ja. Only the label tables and the requested
// analysis language change; the session state is untouched.
func (h *ScanHandler) HandleLang(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}
	loc := locale.Parse(r.URL.Query().Get("l"))
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookie,
		Value:    loc.String(),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
