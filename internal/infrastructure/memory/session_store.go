package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/skatetube/internal/domain/repository"
)

type session struct {
	userID  string
	expires time.Time
}

// SessionStore is the in-process session table used when Redis is not configured.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]session), now: time.Now}
}

// Create also sweeps expired sessions so abandoned tokens do not pile up.
func (s *SessionStore) Create(_ context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, sess := range s.sessions {
		if !now.Before(sess.expires) {
			delete(s.sessions, k)
		}
	}
	s.sessions[token] = session{userID: userID, expires: now.Add(ttl)}
	return nil
}

// Lookup drops expired entries lazily.
func (s *SessionStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", repository.ErrNotFound
	}
	if !s.now().Before(sess.expires) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", repository.ErrNotFound
	}
	return sess.userID, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

var _ repository.SessionStore = (*SessionStore)(nil)
