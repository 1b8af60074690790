package handlers

import (
	"net/http"

	"github.com/bobmcallan/meme-scanner/internal/common"
	"github.com/bobmcallan/meme-scanner/internal/session"
)

// SessionAPIHandler exposes the browser session state as JSON.
type SessionAPIHandler struct {
	logger *common.Logger
	store  *session.Store
}

// NewSessionAPIHandler creates a new session API handler.
func NewSessionAPIHandler(logger *common.Logger, store *session.Store) *SessionAPIHandler {
	return &SessionAPIHandler{logger: logger, store: store}
}

// HandleState handles GET /api/session.
func (h *SessionAPIHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}
	st := sessionFor(w, r, h.store).State()
	w.Header().Set("Cache-Control", "no-store")
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   st,
	})
}

// HandleReset handles POST /api/session/reset.
func (h *SessionAPIHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}
	sess := sessionFor(w, r, h.store)
	sess.Reset()
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   sess.State(),
	})
}

// HandleClear handles DELETE /api/session: the session is dropped and its
// cookie expired. The next request starts a fresh idle session.
func (h *SessionAPIHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "DELETE") {
		return
	}
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		h.store.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
