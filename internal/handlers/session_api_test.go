package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bobmcallan/meme-scanner/internal/session"
)

func TestSessionAPIHandler_NewSessionIsIdle(t *testing.T) {
	h := NewSessionAPIHandler(nil, session.NewStore(time.Hour, 10))

	req := httptest.NewRequest("GET", "/api/session", nil)
	w := httptest.NewRecorder()
	h.HandleState(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Status string        `json:"status"`
		Data   session.State `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Data.Phase != session.PhaseIdle {
		t.Errorf("expected idle, got %s", body.Data.Phase)
	}
	sessionCookie(t, w)
}

func TestSessionAPIHandler_ReflectsLoadedState(t *testing.T) {
	store := session.NewStore(time.Hour, 10)
	s, sid, _ := store.GetOrCreate("")
	s.Complete(s.Begin("AAA111"), testResult())

	h := NewSessionAPIHandler(nil, store)
	req := httptest.NewRequest("GET", "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sid})
	w := httptest.NewRecorder()
	h.HandleState(w, req)

	var body struct {
		Data session.State `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Data.Phase != session.PhaseLoaded {
		t.Errorf("expected loaded, got %s", body.Data.Phase)
	}
	if body.Data.Snapshot == nil || body.Data.Analysis == nil {
		t.Error("loaded state must carry snapshot and analysis")
	}
}

func TestSessionAPIHandler_Reset(t *testing.T) {
	store := session.NewStore(time.Hour, 10)
	s, sid, _ := store.GetOrCreate("")
	s.Complete(s.Begin("AAA111"), testResult())

	h := NewSessionAPIHandler(nil, store)
	req := httptest.NewRequest("POST", "/api/session/reset", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sid})
	w := httptest.NewRecorder()
	h.HandleReset(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if s.State().Phase != session.PhaseIdle {
		t.Errorf("expected idle after reset, got %s", s.State().Phase)
	}
}

func TestSessionAPIHandler_ResetRejectsGET(t *testing.T) {
	h := NewSessionAPIHandler(nil, session.NewStore(time.Hour, 10))

	req := httptest.NewRequest("GET", "/api/session/reset", nil)
	w := httptest.NewRecorder()
	h.HandleReset(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestSessionAPIHandler_ClearDropsSession(t *testing.T) {
	store := session.NewStore(time.Hour, 10)
	_, sid, _ := store.GetOrCreate("")

	h := NewSessionAPIHandler(nil, store)
	req := httptest.NewRequest("DELETE", "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sid})
	w := httptest.NewRecorder()
	h.HandleClear(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if _, ok := store.Get(sid); ok {
		t.Error("expected session to be removed")
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie && c.MaxAge >= 0 {
			t.Error("expected session cookie to be expired")
		}
	}
}
