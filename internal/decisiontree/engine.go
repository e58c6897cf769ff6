// Package decisiontree walks a user through a fixed advisory graph. The
// graph is static: a root question about the financial goal, then one
// short branch of follow-up questions per goal, each ending in a
// recommendation node. The engine is stateless; all progress lives in
// the domain.TreeSession it is handed.
package decisiontree

import (
	"fmt"
	"log/slog"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/logging"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// Engine answers questions against the static advisory graph.
type Engine struct {
	nodes  map[string]*domain.DecisionNode
	goals  map[string]string
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for graph warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine builds an engine over the built-in advisory graph.
func NewEngine(opts ...Option) *Engine {
	nodes := buildGraph()
	e := &Engine{
		nodes:  nodes,
		goals:  buildGoalIndex(nodes),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// buildGoalIndex maps every branch node onto the goal whose root option
// leads to it. The branches are disjoint, so the first goal to reach a
// node owns it.
func buildGoalIndex(nodes map[string]*domain.DecisionNode) map[string]string {
	index := make(map[string]string)
	root, ok := nodes[RootNodeID]
	if !ok {
		return index
	}
	for goal, start := range root.Next {
		queue := []string{start}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if _, seen := index[id]; seen {
				continue
			}
			index[id] = goal
			if node, ok := nodes[id]; ok {
				for _, next := range node.Next {
					queue = append(queue, next)
				}
			}
		}
	}
	return index
}

// Node returns the graph node with the given id.
func (e *Engine) Node(id string) (*domain.DecisionNode, error) {
	node, ok := e.nodes[id]
	if !ok {
		return nil, &domain.LookupError{Kind: "node", ID: id}
	}
	return node, nil
}

// Root returns the entry node of the graph.
func (e *Engine) Root() *domain.DecisionNode {
	return e.nodes[RootNodeID]
}

// StepResult is the outcome of one processed answer.
type StepResult struct {
	Node            *domain.DecisionNode    `json:"node"`
	Progress        float64                 `json:"progress"`
	Invalid         bool                    `json:"invalid,omitempty"`
	Message         string                  `json:"message,omitempty"`
	Recommendations []domain.Recommendation `json:"recommendations,omitempty"`
}

// ProcessStep advances the session by one answer. An empty nodeID enters
// the graph at the root. An answer that is not an option of the current
// node does not advance the session; the result carries Invalid and the
// node is presented again. Reaching a recommendation node generates the
// recommendation set for the chosen goal.
func (e *Engine) ProcessStep(ts *domain.TreeSession, nodeID, answer string) *StepResult {
	if nodeID == "" {
		ts.Current = RootNodeID
		ts.Journey = append(ts.Journey, RootNodeID)
		return e.present(ts, e.Root())
	}

	node, err := e.Node(nodeID)
	if err != nil {
		// Unknown entry points degrade to the root rather than
		// stranding the session.
		e.logger.Warn("unknown node, restarting at root", "node", nodeID)
		ts.Current = RootNodeID
		ts.Journey = append(ts.Journey, RootNodeID)
		return e.present(ts, e.Root())
	}

	if answer == "" || node.Type != domain.NodeQuestion {
		ts.Current = node.ID
		// Entering mid-branch implies the root answer: record the goal
		// and count the entry so progress lines up with a root walk.
		if len(ts.Journey) == 0 {
			ts.Journey = append(ts.Journey, node.ID)
			if goal, ok := e.goals[node.ID]; ok && ts.Goal == "" {
				ts.Goal = goal
				if ts.Answers == nil {
					ts.Answers = make(map[string]string)
				}
				ts.Answers[RootNodeID] = goal
			}
		}
		return e.present(ts, node)
	}

	nextID, ok := node.Next[answer]
	if !ok {
		result := e.present(ts, node)
		result.Invalid = true
		result.Message = fmt.Sprintf("%q is not one of the available options. Please pick one of the answers below.", answer)
		return result
	}

	if ts.Answers == nil {
		ts.Answers = make(map[string]string)
	}
	ts.Answers[node.ID] = answer
	if node.ID == RootNodeID {
		ts.Goal = answer
	}

	next, err := e.Node(nextID)
	if err != nil {
		e.logger.Warn("dangling transition, restarting at root", "node", node.ID, "answer", answer)
		next = e.Root()
	}
	ts.Current = next.ID
	ts.Journey = append(ts.Journey, next.ID)
	return e.present(ts, next)
}

// present builds the result for the node the session now sits on.
func (e *Engine) present(ts *domain.TreeSession, node *domain.DecisionNode) *StepResult {
	result := &StepResult{
		Node:     node,
		Progress: e.Progress(ts),
	}
	if node.Type == domain.NodeRecommendation {
		result.Recommendations = e.Recommendations(ts.Goal, ts.Answers)
		if node.Template != nil {
			result.Message = node.Template.Description
		}
	}
	return result
}

// Progress reports how far along the fixed-length path the session is,
// saturating at 1.0.
func (e *Engine) Progress(ts *domain.TreeSession) float64 {
	p := float64(len(ts.Journey)) / float64(expectedPathLength)
	if p > 1.0 {
		return 1.0
	}
	return p
}

// Finished reports whether the session sits on a recommendation node.
func (e *Engine) Finished(ts *domain.TreeSession) bool {
	node, err := e.Node(ts.Current)
	if err != nil {
		return false
	}
	return node.Type == domain.NodeRecommendation
}

// PathEntry is one recorded decision, used to replay a session.
type PathEntry struct {
	NodeID    string `json:"node_id"`
	Selection string `json:"selection"`
}

// StepOption is a presentable choice for a replayed step.
type StepOption struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Value    string `json:"value"`
	Question string `json:"question"`
}

// fallbackOption is returned when a replayed path cannot be resolved
// against the graph.
func fallbackOption() []StepOption {
	return []StepOption{{
		ID:       "continue",
		Text:     "Continue",
		Value:    "continue",
		Question: "Let's keep going with your financial plan.",
	}}
}

// OptionsForStep replays recorded decisions and returns the options of
// the node the path arrives at. Step 0 is always the root. A path that
// cannot be resolved yields a single generic option instead of an error.
func (e *Engine) OptionsForStep(step int, path []PathEntry) []StepOption {
	var node *domain.DecisionNode
	if step <= 0 || len(path) == 0 {
		node = e.Root()
	} else {
		last := path[len(path)-1]
		from, err := e.Node(last.NodeID)
		if err != nil {
			e.logger.Warn("replay from unknown node", "node", last.NodeID)
			return fallbackOption()
		}
		nextID, ok := from.Next[last.Selection]
		if !ok {
			e.logger.Warn("replay with unknown selection", "node", last.NodeID, "selection", last.Selection)
			return fallbackOption()
		}
		next, err := e.Node(nextID)
		if err != nil {
			return fallbackOption()
		}
		node = next
	}

	if node.Type != domain.NodeQuestion || len(node.Options) == 0 {
		return fallbackOption()
	}
	options := make([]StepOption, 0, len(node.Options))
	for _, opt := range node.Options {
		options = append(options, StepOption{
			ID:       opt.ID,
			Text:     opt.Label,
			Value:    opt.ID,
			Question: node.Question,
		})
	}
	return options
}

// Validate checks structural invariants of the graph: every transition
// target exists, question nodes offer exactly their transition keys, and
// recommendation nodes are terminal.
func (e *Engine) Validate() error {
	if _, ok := e.nodes[RootNodeID]; !ok {
		return fmt.Errorf("graph has no root node")
	}
	for id, node := range e.nodes {
		switch node.Type {
		case domain.NodeQuestion:
			if len(node.Options) == 0 {
				return fmt.Errorf("question node %q has no options", id)
			}
			if len(node.Next) != len(node.Options) {
				return fmt.Errorf("question node %q: %d options but %d transitions", id, len(node.Options), len(node.Next))
			}
			for _, opt := range node.Options {
				target, ok := node.Next[opt.ID]
				if !ok {
					return fmt.Errorf("question node %q: option %q has no transition", id, opt.ID)
				}
				if _, ok := e.nodes[target]; !ok {
					return fmt.Errorf("question node %q: option %q points at unknown node %q", id, opt.ID, target)
				}
			}
		case domain.NodeRecommendation:
			if len(node.Next) != 0 || len(node.Options) != 0 {
				return fmt.Errorf("recommendation node %q must be terminal", id)
			}
		default:
			return fmt.Errorf("node %q has unknown type %q", id, node.Type)
		}
	}
	return nil
}
