package handlers

import (
	"net/http"

	"github.com/bobmcallan/meme-scanner/internal/session"
)

// sessionFor returns the browser's session, issuing a cookie for a new one.
func sessionFor(w http.ResponseWriter, r *http.Request, store *session.Store) *session.Session {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}
	s, sid, created := store.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   r.TLS != nil,
		})
	}
	return s
}
