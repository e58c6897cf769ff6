package domain

// Stage tags the conversation state machine position for a session.
type Stage string

const (
	// StageAwaitingForm means the intake form is still collecting answers.
	StageAwaitingForm Stage = "awaiting_form"
	// StageRouting means the form is complete and the next message decides
	// between free-form advice and the decision tree.
	StageRouting Stage = "routing"
	// StageFreeform means the last turn was answered by an advisor category.
	StageFreeform Stage = "freeform"
	// StageTree means an active decision-tree walkthrough is in progress.
	StageTree Stage = "tree"
)

// Session is the per-user conversation snapshot. The authoritative copy
// lives in the external session store; in-process copies are caches.
type Session struct {
	UserID string `json:"user_id"`
	Stage  Stage  `json:"stage"`

	// Profile holds the intake form working state (nil until first turn).
	Profile *Profile `json:"profile,omitempty"`

	// Tree holds the decision-tree traversal state, created lazily on
	// first tree entry and reset only by explicit request.
	Tree *TreeSession `json:"tree,omitempty"`

	// Context accumulates profile data and presentation hints handed to
	// the advice generator. Keys are stable across turns.
	Context map[string]any `json:"context,omitempty"`

	// Language selects the prompt template language ("en", "pl").
	Language string `json:"language,omitempty"`
}

// NewSession creates a fresh session waiting on the intake form.
func NewSession(userID string) *Session {
	return &Session{
		UserID:  userID,
		Stage:   StageAwaitingForm,
		Profile: NewProfile(),
		Context: make(map[string]any),
	}
}
