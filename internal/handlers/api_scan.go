package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/locale"
	"github.com/bobmcallan/meme-scanner/internal/pipeline"
)

// APIScanHandler runs a stateless lookup for JSON clients.
type APIScanHandler struct {
	logger  *common.Logger
	runner  Runner
	catalog *locale.Catalog
}

// NewAPIScanHandler creates a new API scan handler.
func NewAPIScanHandler(logger *common.Logger, runner Runner, catalog *locale.Catalog) *APIScanHandler {
	return &APIScanHandler{logger: logger, runner: runner, catalog: catalog}
}

type scanRequest struct {
	Address string `json:"address"`
	Locale  string `json:"locale"`
}

// ServeHTTP handles POST /api/scan.
func (h *APIScanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	loc := RequestLocale(r)
	if req.Locale != "" {
		loc = locale.Parse(req.Locale)
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]string{
			"status": "error",
			"kind":   "address_required",
			"error":  h.catalog.T(loc, "error.address_required"),
		})
		return
	}

	res, err := h.runner.Run(r.Context(), address, loc)
	if err != nil {
		kind := pipeline.Classify(err)
		WriteJSON(w, StatusForKind(kind), map[string]string{
			"status": "error",
			"kind":   string(kind),
			"error":  h.catalog.T(loc, pipeline.MessageKey(kind)),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   pipeline.NewPayload(res),
	})
}

// StatusForKind maps an error kind to an HTTP status.
func StatusForKind(k pipeline.Kind) int {
	switch k {
	case pipeline.KindNotFound:
		return http.StatusNotFound
	case pipeline.KindPermissionDenied, pipeline.KindResourceNotFound:
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}
