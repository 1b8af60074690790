// Package session holds the per-browser lookup state. Every transition
// replaces the whole State value; readers always get a consistent copy.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/bobmcallan/meme-scanner/internal/models"
	"github.com/bobmcallan/meme-scanner/internal/pipeline"
)

// Phase is where a session is in the lookup cycle.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseLoaded   Phase = "loaded"
	PhaseNotFound Phase = "not_found"
	PhaseError    Phase = "error"
)

// State is an immutable snapshot of a session. Loaded states always carry
// both Snapshot and Analysis; failed states carry neither.
type State struct {
	Phase     Phase                  `json:"phase"`
	Seq       uint64                 `json:"seq"`
	Address   string                 `json:"address,omitempty"`
	Snapshot  *models.TokenSnapshot  `json:"snapshot,omitempty"`
	Analysis  *models.AnalysisResult `json:"analysis,omitempty"`
	ErrKind   pipeline.Kind          `json:"errorKind,omitempty"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// Failed reports whether the last lookup ended in an error.
func (s State) Failed() bool {
	return s.Phase == PhaseNotFound || s.Phase == PhaseError
}

var errIncompleteResult = errors.New("incomplete lookup result")

// Session serialises transitions for one browser.
type Session struct {
	mu    sync.Mutex
	state State
	seq   uint64
	now   func() time.Time
}

// New creates an idle session.
func New() *Session {
	s := &Session{now: time.Now}
	s.state = State{Phase: PhaseIdle, UpdatedAt: s.now()}
	return s
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin enters loading for address and returns the token that the outcome
// must present. Any earlier token becomes stale.
func (s *Session) Begin(address string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.state = State{Phase: PhaseLoading, Seq: s.seq, Address: address, UpdatedAt: s.now()}
	return s.seq
}

// Complete applies a successful lookup if seq is still current. It returns
// false when the result is stale and was discarded.
func (s *Session) Complete(seq uint64, r *pipeline.Result) bool {
	if r == nil || r.Snapshot == nil || r.Analysis == nil {
		return s.Fail(seq, &pipeline.Error{Kind: pipeline.KindMalformedResponse, Stage: pipeline.StageAnalysis, Err: errIncompleteResult})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || s.state.Phase != PhaseLoading {
		return false
	}
	s.state = State{
		Phase:     PhaseLoaded,
		Seq:       seq,
		Address:   s.state.Address,
		Snapshot:  r.Snapshot,
		Analysis:  r.Analysis,
		UpdatedAt: s.now(),
	}
	return true
}

// Fail applies a failed lookup if seq is still current.
func (s *Session) Fail(seq uint64, err error) bool {
	kind := pipeline.Classify(err)
	phase := PhaseError
	if kind == pipeline.KindNotFound {
		phase = PhaseNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || s.state.Phase != PhaseLoading {
		return false
	}
	s.state = State{
		Phase:     phase,
		Seq:       seq,
		Address:   s.state.Address,
		ErrKind:   kind,
		UpdatedAt: s.now(),
	}
	return true
}

// Reset returns to idle. A lookup still in flight is discarded when it lands.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.state = State{Phase: PhaseIdle, Seq: s.seq, UpdatedAt: s.now()}
}
