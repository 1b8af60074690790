package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// entry wraps a session with its idle deadline and insertion order.
type entry struct {
	session   *Session
	expiry    time.Time
	insertIdx int64
}

// Store keeps sessions keyed by cookie id. Entries expire after ttl without
// access; at capacity the oldest insertion is evicted.
// Thread-safe with sync.Mutex.
type Store struct {
	mu         sync.Mutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	nextIdx    int64
	now        func() time.Time
}

// NewStore creates a Store with the given idle TTL and max entry count.
func NewStore(ttl time.Duration, maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &Store{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns a live session and extends its deadline.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.items[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if now.After(e.expiry) {
		delete(st.items, id)
		return nil, false
	}
	e.expiry = now.Add(st.ttl)
	st.items[id] = e
	return e.session, true
}

// GetOrCreate returns the session for id, creating a fresh one under a new
// id when id is unknown or expired. created reports a new session.
func (st *Store) GetOrCreate(id string) (s *Session, sid string, created bool) {
	if s, ok := st.Get(id); ok {
		return s, id, false
	}
	sid = uuid.NewString()
	s = New()

	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.items) >= st.maxEntries {
		st.evictOldest()
	}
	st.items[sid] = entry{session: s, expiry: st.now().Add(st.ttl), insertIdx: st.nextIdx}
	st.nextIdx++
	return s, sid, true
}

// Delete drops a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.items, id)
}

// Len returns the number of stored sessions, expired ones included until swept.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.items)
}

// Sweep removes expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	n := 0
	for id, e := range st.items {
		if now.After(e.expiry) {
			delete(st.items, id)
			n++
		}
	}
	return n
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
func (st *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}

// evictOldest removes the entry with the lowest insertIdx. Must be called with mu held.
func (st *Store) evictOldest() {
	var oldestKey string
	var oldestIdx int64 = -1

	for key, e := range st.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(st.items, oldestKey)
	}
}
