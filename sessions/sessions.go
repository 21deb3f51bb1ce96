// Package sessions keeps one entry table per browser session, in memory.
// Nothing here is persisted; a restart starts every user from an empty
// table.
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"paperrate/entries"
)

// CookieName is the cookie that carries the session ID.
const CookieName = "paperrate_session"

// Session is the state owned by one browser session.
type Session struct {
	ID        string
	Entries   *entries.Store
	CreatedAt time.Time

	mu         sync.Mutex
	lastActive time.Time
}

// LastActive reports when the session was last resolved by a request.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

// Manager maps session IDs to sessions and expires idle ones.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	// successors maps an expired session ID to the session that replaced
	// it, so requests racing on the same stale cookie share one session.
	successors map[string]*Session
	ttl        time.Duration
	now        func() time.Time
}

// NewManager returns a manager whose sessions expire after ttl of
// inactivity. A ttl of zero disables expiry.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		successors: make(map[string]*Session),
		ttl:        ttl,
		now:        time.Now,
	}
}

// Resolve returns the live session for id, or creates a new one when id is
// empty, unknown or expired. The second result is true when a new session
// was created and the caller must hand its ID back to the client.
func (m *Manager) Resolve(id string) (*Session, bool) {
	now := m.now()

	if id != "" {
		m.mu.RLock()
		s, ok := m.sessions[id]
		m.mu.RUnlock()
		if ok && !m.expired(s, now) {
			s.touch(now)
			return s, false
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if cur, ok := m.sessions[id]; ok && !m.expired(cur, now) {
			cur.touch(now)
			return cur, false
		}
		if next, ok := m.successors[id]; ok {
			if _, live := m.sessions[next.ID]; live && !m.expired(next, now) {
				next.touch(now)
				return next, true
			}
		}
	}

	s := &Session{
		ID:         uuid.NewString(),
		Entries:    entries.NewStore(),
		CreatedAt:  now,
		lastActive: now,
	}
	m.sessions[s.ID] = s
	if _, known := m.sessions[id]; known {
		delete(m.sessions, id)
		m.successors[id] = s
	}

	return s, true
}

// Get returns the session for id without creating or touching it.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Prune drops every expired session and returns how many were removed.
func (m *Manager) Prune() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	for id, next := range m.successors {
		if _, live := m.sessions[next.ID]; !live {
			delete(m.successors, id)
		}
	}
	return removed
}

// Len reports the number of tracked sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// TTL is the idle lifetime of a session.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.LastActive()) > m.ttl
}
