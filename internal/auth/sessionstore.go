package auth

import (
	"sync"

	"github.com/nightowlapp/nightowl/internal/models"
)

// SessionStore owns the single session of record. It is an explicit object
// passed to collaborators rather than package-level state, so each process
// (or test) controls its own lifecycle. At most one session is active: a new
// sign-in replaces the previous session, sign-out clears it.
type SessionStore struct {
	mu      sync.RWMutex
	current *models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get returns a copy of the current session, or nil when signed out.
func (s *SessionStore) Get() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Replace installs session as the session of record, displacing any
// existing one.
func (s *SessionStore) Replace(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session.Clone()
}

// Clear removes the current session. Clearing an empty store is a no-op.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
