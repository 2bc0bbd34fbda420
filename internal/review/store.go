package review

import (
	"sync"
	"time"
)

// QueueState is the in-memory position of one live review pass. The ordered
// id list is fixed at construction and never reordered mid-pass. This state
// is disposable: losing it forces a fresh pass but never corrupts the
// durable session log.
type QueueState struct {
	Token        string
	SessionID    string // durable review_sessions row backing this pass
	HighlightIDs []string
	Cursor       int
	LastTouched  time.Time
}

// Expired reports whether the pass has been idle past the threshold and
// should be treated as absent.
func (q *QueueState) Expired(now time.Time, idle time.Duration) bool {
	return now.Sub(q.LastTouched) > idle
}

// SessionStore maps session tokens to queue state. Implementations must be
// safe for concurrent use by interleaved requests.
type SessionStore interface {
	Get(token string) (*QueueState, bool)
	Put(state *QueueState)
	Delete(token string)
	// SweepExpired drops every entry idle past the threshold and returns how
	// many were removed.
	SweepExpired(now time.Time, idle time.Duration) int
}

// MemoryStore is the process-wide in-memory SessionStore.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*QueueState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*QueueState)}
}

// Get returns a copy of the state for token. Callers mutate the copy and
// write it back with Put.
func (s *MemoryStore) Get(token string) (*QueueState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	cp := *state
	return &cp, true
}

func (s *MemoryStore) Put(state *QueueState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *state
	s.sessions[state.Token] = &cp
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *MemoryStore) SweepExpired(now time.Time, idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, state := range s.sessions {
		if state.Expired(now, idle) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
