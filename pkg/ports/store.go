package ports

import (
	"context"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// SessionStore defines the interface for persisting conversation state.
// The external store is authoritative; in-process copies are caches.
type SessionStore interface {
	// Save persists the session for a given user ID.
	Save(ctx context.Context, userID string, session *domain.Session) error

	// Load retrieves the session for a given user ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, userID string) (*domain.Session, error)

	// Delete removes the session for a given user ID.
	Delete(ctx context.Context, userID string) error

	// List returns the user IDs with active sessions.
	List(ctx context.Context) ([]string, error)
}

// Store is the archival persistence collaborator. Every method is
// fire-and-forget from the core's perspective: failures are absorbed by
// the caller (logged and swallowed) and never abort a conversation turn.
type Store interface {
	// SaveProfile stores the completed profile snapshot for a user.
	SaveProfile(ctx context.Context, userID string, data *domain.ProfileData) error

	// LoadProfile retrieves a previously saved profile snapshot.
	// Returns domain.ErrProfileNotFound when none exists.
	LoadProfile(ctx context.Context, userID string) (*domain.ProfileData, error)

	// AppendInteraction records one conversation turn.
	AppendInteraction(ctx context.Context, interaction *domain.Interaction) error

	// AppendDecisionStep records one decision-tree step.
	AppendDecisionStep(ctx context.Context, step *domain.DecisionStep) error
}
