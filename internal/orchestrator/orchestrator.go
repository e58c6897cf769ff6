// Package orchestrator composes the intake form, the router, the
// decision tree and the advice generator into single-message turns. One
// call handles one user message to completion; all state lives in the
// session store between calls.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/decisiontree"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/intake"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/logging"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/metrics"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/router"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/session"
)

// apology is the single degraded reply for unexpected failures.
const apology = "I'm sorry, something went wrong on my side. Please try again in a moment."

// Turn is the outcome of one handled message.
type Turn struct {
	Reply           string                  `json:"reply"`
	Kind            router.Kind             `json:"kind"`
	Category        domain.Category         `json:"category,omitempty"`
	Stage           domain.Stage            `json:"stage"`
	Node            *domain.DecisionNode    `json:"node,omitempty"`
	Progress        float64                 `json:"progress,omitempty"`
	Recommendations []domain.Recommendation `json:"recommendations,omitempty"`
}

// Orchestrator wires the sub-machines together.
type Orchestrator struct {
	sessions  *session.Manager
	store     ports.Store
	generator ports.AdviceGenerator

	form     *intake.Engine
	tree     *decisiontree.Engine
	router   *router.Router
	metrics  *metrics.Metrics
	logger   *slog.Logger
	language string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithMetrics attaches a metrics set.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// WithLanguage sets the language new sessions are created with, which
// selects the prompt and disclaimer variants for generated advice.
func WithLanguage(language string) Option {
	return func(o *Orchestrator) {
		o.language = language
	}
}

// New builds an Orchestrator over its collaborators.
func New(sessions *session.Manager, store ports.Store, generator ports.AdviceGenerator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sessions:  sessions,
		store:     store,
		generator: generator,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.form = intake.NewEngine(intake.WithLogger(o.logger))
	o.tree = decisiontree.NewEngine(decisiontree.WithLogger(o.logger))
	o.router = router.New(router.WithLogger(o.logger))
	return o
}

// Tree exposes the decision tree engine for replay endpoints.
func (o *Orchestrator) Tree() *decisiontree.Engine {
	return o.tree
}

// Sessions exposes the session manager.
func (o *Orchestrator) Sessions() *session.Manager {
	return o.sessions
}

// HandleMessage processes one user message to completion under the
// per-user lock. Internal failures degrade to an apology reply; the
// returned error only reports lock or store-of-record problems.
func (o *Orchestrator) HandleMessage(ctx context.Context, userID, message string) (*Turn, error) {
	message = strings.TrimSpace(message)

	var turn *Turn
	err := o.sessions.WithLock(ctx, userID, func(ctx context.Context) error {
		sess, err := o.loadOrCreate(ctx, userID)
		if err != nil {
			return err
		}

		turn = o.processTurn(ctx, sess, message)
		turn.Stage = sess.Stage

		o.persistInteraction(ctx, sess, message, turn)

		if err := o.sessions.Store().Save(ctx, userID, sess); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if o.metrics != nil {
		o.metrics.Turns.WithLabelValues(string(turn.Kind), string(turn.Category)).Inc()
	}
	return turn, nil
}

func (o *Orchestrator) loadOrCreate(ctx context.Context, userID string) (*domain.Session, error) {
	sess, err := o.sessions.Store().Load(ctx, userID)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	sess = domain.NewSession(userID)
	sess.Language = o.language
	return sess, nil
}

// processTurn runs the sub-machines. It never returns an error; every
// failure path ends in a reply.
func (o *Orchestrator) processTurn(ctx context.Context, sess *domain.Session, message string) *Turn {
	// Administrative commands bypass routing.
	if router.IsRestartForm(message) {
		sess.Profile = domain.NewProfile()
		sess.Tree = nil
		sess.Stage = domain.StageAwaitingForm
		if sess.Context == nil {
			sess.Context = make(map[string]any)
		}
		sess.Context["form_opened"] = true
		return &Turn{
			Kind:  router.KindForm,
			Reply: "Let's start over. " + o.form.NextQuestion(sess.Profile),
		}
	}
	if router.IsSkipForm(message) && !o.form.Complete(sess.Profile) {
		if sess.Profile == nil {
			sess.Profile = domain.NewProfile()
		}
		o.form.ForceComplete(sess.Profile)
		o.completeForm(ctx, sess)
		return &Turn{
			Kind:  router.KindForm,
			Reply: "Understood, skipping the intake form. " + intake.Greeting(o.form.ProfileData(sess.Profile)),
		}
	}

	// A confirmation prompt from the previous turn turns a plain "yes"
	// into tree entry.
	if pending, _ := sess.Context["pending_tree_confirm"].(bool); pending {
		delete(sess.Context, "pending_tree_confirm")
		if affirmative(message) {
			category := o.router.ClassifyIntent(message)
			return o.treeTurn(ctx, sess, message, &router.Decision{
				Kind:      router.KindTree,
				Category:  category,
				EntryNode: o.router.EntryNode(message, category, nil),
			})
		}
	}

	decision := o.router.Route(message, sess)

	switch decision.Kind {
	case router.KindForm:
		return o.formTurn(ctx, sess, message)
	case router.KindTree:
		return o.treeTurn(ctx, sess, message, decision)
	default:
		return o.freeformTurn(ctx, sess, message, decision)
	}
}

// formTurn feeds one answer to the intake form.
func (o *Orchestrator) formTurn(ctx context.Context, sess *domain.Session, message string) *Turn {
	if sess.Profile == nil {
		sess.Profile = domain.NewProfile()
	}

	// The first form turn presents the opening question; the message that
	// triggered it is not consumed as an answer.
	if opened, _ := sess.Context["form_opened"].(bool); !opened {
		if sess.Context == nil {
			sess.Context = make(map[string]any)
		}
		sess.Context["form_opened"] = true
		return &Turn{
			Kind:  router.KindForm,
			Reply: "Welcome! Before we talk money, I need a short profile. " + o.form.NextQuestion(sess.Profile),
		}
	}

	before := sess.Profile.Cursor
	reply := o.form.ProcessAnswer(sess.Profile, message)

	if o.metrics != nil {
		result := "ok"
		if sess.Profile.Cursor == before && !sess.Profile.Complete {
			result = "invalid"
		}
		o.metrics.FormAnswers.WithLabelValues(result).Inc()
	}

	if o.form.Complete(sess.Profile) {
		o.completeForm(ctx, sess)
		reply = reply + "\n\n" + intake.Greeting(o.form.ProfileData(sess.Profile))
	}
	return &Turn{Kind: router.KindForm, Reply: reply}
}

// completeForm snapshots the profile into the session context and the
// archival store, and moves the session out of AWAITING_FORM.
func (o *Orchestrator) completeForm(ctx context.Context, sess *domain.Session) {
	data := o.form.ProfileData(sess.Profile)

	if sess.Context == nil {
		sess.Context = make(map[string]any)
	}
	sess.Context["financial_data"] = data.Financial
	sess.Context["behavioral_profile"] = data.Behavioral
	sess.Context["recommended_advisor"] = string(data.RecommendedAdvisor)
	sess.Stage = domain.StageRouting

	if err := o.store.SaveProfile(ctx, sess.UserID, data); err != nil {
		o.dropPersistence("save profile", sess.UserID, err)
	}
}

// treeTurn advances or enters the decision tree.
func (o *Orchestrator) treeTurn(ctx context.Context, sess *domain.Session, message string, decision *router.Decision) *Turn {
	// Implicit guidance requests ask for confirmation before entering.
	if decision.Confirm != "" && sess.Stage != domain.StageTree {
		if sess.Context == nil {
			sess.Context = make(map[string]any)
		}
		sess.Context["pending_tree_confirm"] = true
		return &Turn{
			Kind:     router.KindFreeform,
			Category: decision.Category,
			Reply:    decision.Confirm,
		}
	}

	var result *decisiontree.StepResult
	if sess.Stage != domain.StageTree || sess.Tree == nil {
		sess.Tree = domain.NewTreeSession()
		sess.Stage = domain.StageTree
		entry := decision.EntryNode
		if entry == decisiontree.RootNodeID {
			entry = ""
		}
		result = o.tree.ProcessStep(sess.Tree, entry, "")
	} else {
		answer := resolveAnswer(o.nodeFor(sess.Tree), message)
		result = o.tree.ProcessStep(sess.Tree, sess.Tree.Current, answer)
		if !result.Invalid {
			o.persistDecisionStep(ctx, sess, result, answer)
		}
	}

	if o.metrics != nil && sess.Tree.Goal != "" {
		o.metrics.TreeSteps.WithLabelValues(sess.Tree.Goal).Inc()
	}

	turn := &Turn{
		Kind:            router.KindTree,
		Category:        decision.Category,
		Node:            result.Node,
		Progress:        result.Progress,
		Recommendations: result.Recommendations,
	}

	switch {
	case result.Node.Type == domain.NodeRecommendation:
		// Terminal node: leave the tree so routing resumes next turn.
		sess.Stage = domain.StageFreeform
		turn.Reply = renderRecommendations(result)
	case result.Invalid:
		turn.Reply = result.Message + "\n\n" + renderQuestion(result.Node)
	default:
		turn.Reply = renderQuestion(result.Node)
	}
	return turn
}

// freeformTurn asks the advice generator.
func (o *Orchestrator) freeformTurn(ctx context.Context, sess *domain.Session, message string, decision *router.Decision) *Turn {
	if sess.Stage == domain.StageRouting {
		sess.Stage = domain.StageFreeform
	}

	req := &domain.AdviceRequest{
		UserID:   sess.UserID,
		Question: message,
		Context:  o.router.EnrichContext(sess.Context),
		Category: decision.Category,
		Language: sess.Language,
	}

	advice, err := o.generator.Generate(ctx, req)
	if err != nil {
		o.logger.Error("advice generation failed", "user_id", sess.UserID, "category", decision.Category, "err", err)
		if o.metrics != nil {
			o.metrics.GeneratorFailures.Inc()
		}
		return &Turn{Kind: router.KindFreeform, Category: decision.Category, Reply: apology}
	}

	reply := advice.Answer
	if advice.Disclaimer != "" {
		reply = reply + "\n\n_" + advice.Disclaimer + "_"
	}
	return &Turn{Kind: router.KindFreeform, Category: decision.Category, Reply: reply}
}

// persistInteraction archives the turn. Failures are logged, counted
// and swallowed.
func (o *Orchestrator) persistInteraction(ctx context.Context, sess *domain.Session, message string, turn *Turn) {
	err := o.store.AppendInteraction(ctx, &domain.Interaction{
		UserID:   sess.UserID,
		Question: message,
		Reply:    turn.Reply,
		Category: turn.Category,
		Context:  sess.Context,
	})
	if err != nil {
		o.dropPersistence("append interaction", sess.UserID, err)
	}
}

func (o *Orchestrator) persistDecisionStep(ctx context.Context, sess *domain.Session, result *decisiontree.StepResult, answer string) {
	err := o.store.AppendDecisionStep(ctx, &domain.DecisionStep{
		UserID: sess.UserID,
		NodeID: result.Node.ID,
		Answer: answer,
		Context: map[string]any{
			"goal":     sess.Tree.Goal,
			"progress": result.Progress,
		},
	})
	if err != nil {
		o.dropPersistence("append decision step", sess.UserID, err)
	}
}

func (o *Orchestrator) dropPersistence(op, userID string, err error) {
	o.logger.Warn("persistence write dropped", "op", op, "user_id", userID, "err", err)
	if o.metrics != nil {
		o.metrics.PersistenceDrops.Inc()
	}
}

func (o *Orchestrator) nodeFor(ts *domain.TreeSession) *domain.DecisionNode {
	node, err := o.tree.Node(ts.Current)
	if err != nil {
		return nil
	}
	return node
}

// resolveAnswer maps free text onto an option id: the id itself, a
// 1-based option number, or a case-insensitive label match.
func resolveAnswer(node *domain.DecisionNode, message string) string {
	if node == nil {
		return message
	}
	trimmed := strings.TrimSpace(message)
	for _, opt := range node.Options {
		if strings.EqualFold(trimmed, opt.ID) || strings.EqualFold(trimmed, opt.Label) {
			return opt.ID
		}
	}
	if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= len(node.Options) {
		return node.Options[n-1].ID
	}
	return trimmed
}

func renderQuestion(node *domain.DecisionNode) string {
	var b strings.Builder
	b.WriteString(node.Question)
	for i, opt := range node.Options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, opt.Label)
	}
	return b.String()
}

func renderRecommendations(result *decisiontree.StepResult) string {
	var b strings.Builder
	if result.Message != "" {
		b.WriteString(result.Message)
		b.WriteString("\n")
	}
	for _, rec := range result.Recommendations {
		fmt.Fprintf(&b, "\n**%s**\n%s\n", rec.Title, rec.Description)
		for _, item := range rec.ActionItems {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return strings.TrimSpace(b.String())
}

// affirmative recognizes short consent replies to a confirmation prompt.
func affirmative(message string) bool {
	switch strings.ToLower(strings.TrimRight(strings.TrimSpace(message), ".!")) {
	case "yes", "yes please", "sure", "ok", "okay", "please do", "let's do it", "go ahead":
		return true
	}
	return false
}
