package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bobmcallan/meme-scanner/internal/locale"
)

const (
	// SessionCookie carries the session store id.
	SessionCookie = "scanner_session"
	// LangCookie carries the chosen locale.
	LangCookie = "scanner_lang"
	// CSRFField is the form field checked against the _csrf cookie.
	CSRFField = "_csrf"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// RequestLocale reads the locale from the lang cookie, then Accept-Language.
func RequestLocale(r *http.Request) locale.Locale {
	if c, err := r.Cookie(LangCookie); err == nil && c.Value != "" {
		return locale.Parse(c.Value)
	}
	return locale.Parse(r.Header.Get("Accept-Language"))
}

type csrfKey struct{}

// WithCSRFToken stores the request's CSRF token so pages can embed it.
func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfKey{}, token)
}

// CSRFToken returns the token stored by WithCSRFToken, or the _csrf cookie.
func CSRFToken(r *http.Request) string {
	if v, ok := r.Context().Value(csrfKey{}).(string); ok && v != "" {
		return v
	}
	if c, err := r.Cookie(CSRFField); err == nil {
		return c.Value
	}
	return ""
}
