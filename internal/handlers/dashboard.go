package handlers

import (
	"net/http"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/config"
	"github.com/bobmcallan/meme-scanner/internal/display"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/pipeline"
	"github.com/bobmcallan/meme-scanner/internal/session"
)

// LocaleOption is one entry of the language switcher.
type LocaleOption struct {
	Code   string
	Name   string
	Active bool
}

// DashboardHandler renders the scanner page from the browser's session state.
type DashboardHandler struct {
	logger  *common.Logger
	pages   *PageHandler
	store   *session.Store
	catalog *locale.Catalog
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(logger *common.Logger, pages *PageHandler, store *session.Store, catalog *locale.Catalog) *DashboardHandler {
	return &DashboardHandler{
		logger:  logger,
		pages:   pages,
		store:   store,
		catalog: catalog,
	}
}

// ServeHTTP handles GET /.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !RequireMethod(w, r, "GET") {
		return
	}

	loc := RequestLocale(r)
	tr := h.catalog.For(loc)
	st := sessionFor(w, r, h.store).State()

	data := map[string]interface{}{
		"Page":    "home",
		"Tr":      tr,
		"Lang":    loc.String(),
		"Locales": localeOptions(loc),
		"State":   st,
		"CSRF":    CSRFToken(r),
		"Version": config.GetVersion(),
	}

	switch {
	case st.Phase == session.PhaseLoaded:
		data["Token"] = display.NewTokenView(st.Snapshot, st.Analysis, tr)
		data["Analysis"] = display.NewAnalysisView(st.Analysis, tr)
	case st.Failed():
		data["Error"] = tr.T(pipeline.MessageKey(st.ErrKind))
	}

	// The page is per-session; never serve it from a shared cache.
	w.Header().Set("Cache-Control", "no-store")
	h.pages.Render(w, "index.html", data)
}

func localeOptions(active locale.Locale) []LocaleOption {
	var opts []LocaleOption
	for _, l := range locale.Supported() {
		opts = append(opts, LocaleOption{Code: l.String(), Name: l.LanguageName(), Active: l == active})
	}
	return opts
}
