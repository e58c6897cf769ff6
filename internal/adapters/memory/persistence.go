package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// Store implements ports.Store in memory. Records are retrievable for
// inspection, which the tests and the profile endpoint rely on.
type Store struct {
	mu            sync.RWMutex
	profiles      map[string]*domain.ProfileData
	interactions  map[string][]domain.Interaction
	decisionSteps map[string][]domain.DecisionStep
}

// NewStore creates a new in-memory persistence store.
func NewStore() *Store {
	return &Store{
		profiles:      make(map[string]*domain.ProfileData),
		interactions:  make(map[string][]domain.Interaction),
		decisionSteps: make(map[string][]domain.DecisionStep),
	}
}

// SaveProfile stores the profile snapshot.
func (s *Store) SaveProfile(ctx context.Context, userID string, data *domain.ProfileData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = data
	return nil
}

// LoadProfile retrieves the profile snapshot.
func (s *Store) LoadProfile(ctx context.Context, userID string) (*domain.ProfileData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return data, nil
}

// AppendInteraction records one conversation turn, assigning an id and
// timestamp when missing.
func (s *Store) AppendInteraction(ctx context.Context, interaction *domain.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *interaction
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	s.interactions[record.UserID] = append(s.interactions[record.UserID], record)
	return nil
}

// AppendDecisionStep records one decision-tree step.
func (s *Store) AppendDecisionStep(ctx context.Context, step *domain.DecisionStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *step
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	s.decisionSteps[record.UserID] = append(s.decisionSteps[record.UserID], record)
	return nil
}

// Interactions returns the recorded turns for a user, oldest first.
func (s *Store) Interactions(userID string) []domain.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Interaction, len(s.interactions[userID]))
	copy(out, s.interactions[userID])
	return out
}

// DecisionSteps returns the recorded tree steps for a user, oldest
// first.
func (s *Store) DecisionSteps(userID string) []domain.DecisionStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.DecisionStep, len(s.decisionSteps[userID]))
	copy(out, s.decisionSteps[userID])
	return out
}
