package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the live sessions, keyed by session ID. Each session is owned
// by one interactive client; the store itself is shared across requests and
// guarded by a read-write lock.
type Store struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session in the calculator view and registers it.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		View:      ViewCalculator,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given ID.
func (s *Store) Get(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, exists := s.sessions[sessionID]
	return sess, exists
}

// GetAll returns a snapshot of all live sessions.
func (s *Store) GetAll() map[string]*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*Session, len(s.sessions))
	for k, v := range s.sessions {
		result[k] = v
	}
	return result
}

// Delete ends a session, discarding its state.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
