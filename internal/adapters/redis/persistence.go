package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// Store implements ports.Store using Redis. Profiles live as JSON
// values; interactions and decision steps are append-only lists.
type Store struct {
	client *backend.Client
	prefix string
}

// NewStore creates a Redis persistence store from an existing client.
func NewStore(client *backend.Client) *Store {
	return &Store{
		client: client,
		prefix: "finapp:",
	}
}

func (s *Store) profileKey(userID string) string {
	return s.prefix + "profile:" + userID
}

func (s *Store) interactionsKey(userID string) string {
	return s.prefix + "interactions:" + userID
}

func (s *Store) decisionsKey(userID string) string {
	return s.prefix + "decisions:" + userID
}

// SaveProfile stores the profile snapshot.
func (s *Store) SaveProfile(ctx context.Context, userID string, data *domain.ProfileData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, s.profileKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// LoadProfile retrieves the profile snapshot.
func (s *Store) LoadProfile(ctx context.Context, userID string) (*domain.ProfileData, error) {
	val, err := s.client.Get(ctx, s.profileKey(userID)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var data domain.ProfileData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &data, nil
}

// AppendInteraction records one conversation turn.
func (s *Store) AppendInteraction(ctx context.Context, interaction *domain.Interaction) error {
	record := *interaction
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(&record)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}
	if err := s.client.RPush(ctx, s.interactionsKey(record.UserID), raw).Err(); err != nil {
		return fmt.Errorf("failed to append interaction: %w", err)
	}
	return nil
}

// AppendDecisionStep records one decision-tree step.
func (s *Store) AppendDecisionStep(ctx context.Context, step *domain.DecisionStep) error {
	record := *step
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(&record)
	if err != nil {
		return fmt.Errorf("failed to marshal decision step: %w", err)
	}
	if err := s.client.RPush(ctx, s.decisionsKey(record.UserID), raw).Err(); err != nil {
		return fmt.Errorf("failed to append decision step: %w", err)
	}
	return nil
}

// Interactions returns the recorded turns for a user, oldest first.
func (s *Store) Interactions(ctx context.Context, userID string) ([]domain.Interaction, error) {
	raws, err := s.client.LRange(ctx, s.interactionsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	out := make([]domain.Interaction, 0, len(raws))
	for _, raw := range raws {
		var record domain.Interaction
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal interaction: %w", err)
		}
		out = append(out, record)
	}
	return out, nil
}
