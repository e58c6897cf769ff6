package domain

// NodeType constants define the decision-tree node behavior.
const (
	// NodeQuestion displays a prompt and halts waiting for an option pick.
	NodeQuestion = "question"
	// NodeRecommendation is a sink: it yields generated recommendations.
	NodeRecommendation = "recommendation"
)

// Option is a selectable answer on a question node.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DecisionNode is a vertex in the static advisory graph. Question nodes
// carry a transition map covering exactly their declared options;
// recommendation nodes carry a template instead and have no options.
type DecisionNode struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Question string   `json:"question,omitempty"`
	Options  []Option `json:"options,omitempty"`

	// Next maps an option ID to the following node ID.
	Next map[string]string `json:"next_steps,omitempty"`

	// Template seeds the title/description of the base recommendation on
	// recommendation nodes.
	Template *RecommendationTemplate `json:"recommendation,omitempty"`
}

// RecommendationTemplate is the static part of a recommendation node.
type RecommendationTemplate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TreeSession tracks one user's traversal. The journey is append-only and
// the goal, once derived from the root answer, never changes for the
// lifetime of the session.
type TreeSession struct {
	Current string            `json:"current_node_id"`
	Journey []string          `json:"journey"`
	Answers map[string]string `json:"answers"`
	Goal    string            `json:"goal,omitempty"`
}

// NewTreeSession returns an empty traversal that has not entered the tree.
func NewTreeSession() *TreeSession {
	return &TreeSession{Answers: make(map[string]string)}
}

// Impact levels for recommendations.
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// Recommendation is one generated advisory outcome.
type Recommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"advisor_type"`
	Impact      string   `json:"impact"`
	ActionItems []string `json:"action_items"`
}

// Report condenses terminal recommendations for callers that persist only
// the decision path: a one-line summary plus the leading action steps.
type Report struct {
	Summary string   `json:"summary"`
	Steps   []string `json:"steps"`
}
