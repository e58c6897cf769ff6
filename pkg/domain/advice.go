package domain

import "time"

// AdviceRequest is handed to the external advice generator for free-form
// turns: the question, the accumulated context, and the routing category.
type AdviceRequest struct {
	UserID   string         `json:"user_id"`
	Question string         `json:"question"`
	Context  map[string]any `json:"context,omitempty"`
	Category Category       `json:"advisory_type"`
	Language string         `json:"language"`
}

// Advice is the generator's reply. Confidence is in [0, 1].
type Advice struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources,omitempty"`
	Disclaimer string   `json:"disclaimer"`
}

// Interaction is one persisted conversation turn.
type Interaction struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Question  string         `json:"question"`
	Reply     string         `json:"reply"`
	Category  Category       `json:"advisor_type"`
	Context   map[string]any `json:"context,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// DecisionStep is one persisted decision-tree interaction.
type DecisionStep struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	NodeID    string         `json:"node_id"`
	Answer    string         `json:"answer,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
