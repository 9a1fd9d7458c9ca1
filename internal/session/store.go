package session

import (
	"sync"

	"keeneyes-backend/internal/models"
)

// Session holds the rolling conversation state for one caller-chosen
// session identifier. The embedded mutex serializes whole chat turns:
// the orchestrator holds it from history append through the completion
// call, so concurrent requests on the same session cannot interleave.
type Session struct {
	sync.Mutex

	History []models.ChatMessage
	Vehicle *models.VehicleInfo
}

// TruncateHistory drops the oldest turns so at most max remain.
// Caller must hold the session lock.
func (s *Session) TruncateHistory(max int) {
	if len(s.History) > max {
		s.History = s.History[len(s.History)-max:]
	}
}

// Store is an in-memory map of session ID to session state. Sessions are
// created lazily and live for the process lifetime; there is no eviction,
// so the map grows with the number of distinct session IDs seen.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating an empty one on first
// reference. Repeated calls with the same id return the same *Session.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[id]; ok {
		return sess
	}
	sess = &Session{}
	s.sessions[id] = sess
	return sess
}

// Len reports the number of distinct sessions seen so far.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
