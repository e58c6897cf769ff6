// Package memory provides in-memory adapters for the session and
// persistence ports. Suitable for tests and single-process runs.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// SessionStore implements ports.SessionStore in memory.
// Safe for concurrent use.
type SessionStore struct {
	data map[string]*domain.Session
	mu   sync.RWMutex
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		data: make(map[string]*domain.Session),
	}
}

// cloneSession deep-copies a session through JSON, matching the
// isolation a serializing store provides.
func cloneSession(sess *domain.Session) (*domain.Session, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	var out domain.Session
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &out, nil
}

// Save persists the session in memory.
func (s *SessionStore) Save(ctx context.Context, userID string, sess *domain.Session) error {
	copied, err := cloneSession(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = copied
	return nil
}

// Load retrieves the session from memory. The caller gets a copy and
// cannot mutate stored state through the pointer.
func (s *SessionStore) Load(ctx context.Context, userID string) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.data[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(sess)
}

// Delete removes the session.
func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}

// List returns ids of active sessions.
func (s *SessionStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
