// Package router decides, per message, which sub-machine handles the
// turn: the intake form, the decision tree, or free-form advice. It only
// ever returns descriptors; enacting a transition is the orchestrator's
// job.
package router

import (
	"log/slog"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/logging"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// Kind names the sub-machine a turn is routed to.
type Kind string

const (
	KindForm     Kind = "form"
	KindTree     Kind = "tree"
	KindFreeform Kind = "freeform"
)

// Decision is a transition descriptor. EntryNode is only set for tree
// decisions and may name a node the graph does not have; the tree engine
// degrades unknown entries to its root.
type Decision struct {
	Kind      Kind            `json:"kind"`
	Category  domain.Category `json:"category,omitempty"`
	EntryNode string          `json:"entry_node,omitempty"`
	Confirm   string          `json:"confirm,omitempty"`
}

// Readiness is the outcome of tree-readiness detection.
type Readiness struct {
	Ready   bool
	Goal    domain.Category // resolved for explicit triggers only
	Confirm string          // confirmation prompt for implicit triggers
}

// Router classifies messages and produces routing decisions.
type Router struct {
	logger *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// New returns a Router.
func New(opts ...Option) *Router {
	r := &Router{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ClassifyIntent maps a message to exactly one advisor category. Every
// message resolves; no keyword match means financial.
func (r *Router) ClassifyIntent(message string) domain.Category {
	lowered := strings.ToLower(message)
	switch {
	case containsAny(lowered, taxKeywords):
		return domain.CategoryTax
	case containsAny(lowered, legalKeywords):
		return domain.CategoryLegal
	case containsAny(lowered, investmentKeywords):
		return domain.CategoryInvestment
	case containsAny(lowered, financialKeywords):
		return domain.CategoryFinancial
	default:
		return domain.CategoryFinancial
	}
}

// DetectTreeReadiness reports whether the message asks for structured
// guidance. Explicit requests resolve a goal via intent classification;
// implicit ones leave the goal open and carry a confirmation prompt.
func (r *Router) DetectTreeReadiness(message string) Readiness {
	lowered := strings.ToLower(message)
	if containsAny(lowered, explicitTreeTriggers) {
		return Readiness{Ready: true, Goal: r.ClassifyIntent(message)}
	}
	if containsAny(lowered, implicitTreeTriggers) {
		return Readiness{
			Ready:   true,
			Confirm: "It sounds like a structured plan could help. Would you like me to walk you through a few questions to build one?",
		}
	}
	return Readiness{}
}

// behavioralHints is the decoded shape of the behavioral profile inside
// a context map.
type behavioralHints struct {
	RiskTolerance       string `mapstructure:"risk_tolerance"`
	DecisionStyle       string `mapstructure:"decision_style"`
	FinancialDiscipline string `mapstructure:"financial_discipline"`
	TimePreference      string `mapstructure:"time_preference"`
}

// EnrichContext returns a copy of the context with presentation hints
// derived from the behavioral profile. The input map and the profile are
// never mutated.
func (r *Router) EnrichContext(ctx map[string]any) map[string]any {
	enriched := make(map[string]any, len(ctx)+3)
	for k, v := range ctx {
		enriched[k] = v
	}

	raw, ok := ctx["behavioral_profile"]
	if !ok {
		return enriched
	}
	var hints behavioralHints
	if err := mapstructure.Decode(raw, &hints); err != nil {
		r.logger.Warn("undecodable behavioral profile in context", "err", err)
		return enriched
	}

	if style := communicationStyle(hints.DecisionStyle); style != "" {
		enriched["communication_style"] = style
	}
	if style := investmentStyle(hints.RiskTolerance); style != "" {
		enriched["investment_style"] = style
	}
	if horizon := planningHorizon(hints.TimePreference); horizon != "" {
		enriched["planning_horizon"] = horizon
	}
	return enriched
}

func communicationStyle(decisionStyle string) string {
	switch decisionStyle {
	case "analytical":
		return "detailed"
	case "intuitive":
		return "concise"
	case "consultative":
		return "dialogic"
	case "directive":
		return "direct"
	}
	return ""
}

func investmentStyle(riskTolerance string) string {
	switch riskTolerance {
	case "conservative":
		return "capital_preservation"
	case "moderate":
		return "balanced"
	case "aggressive":
		return "growth"
	}
	return ""
}

func planningHorizon(timePreference string) string {
	switch timePreference {
	case "short_term":
		return "months"
	case "medium_term":
		return "years"
	case "long_term":
		return "decades"
	}
	return ""
}

// EntryNode picks the tree entry point for a readiness transition.
// Investment and tax intents map to their dedicated entry nodes; a debt
// mention in the message, or positive debt in the profile, targets the
// debt branch. Anything else starts at the root. The returned id is a
// descriptor only; the tree engine treats ids it does not know as the
// root.
func (r *Router) EntryNode(message string, category domain.Category, data *domain.ProfileData) string {
	switch category {
	case domain.CategoryInvestment:
		return "investment_risk"
	case domain.CategoryTax:
		return "tax_situation"
	}
	if containsAny(strings.ToLower(message), debtKeywords) {
		return "debt_type"
	}
	if data != nil {
		if debt, ok := data.Financial["debt"].(float64); ok && debt > 0 {
			return "debt_type"
		}
	}
	return "root"
}

// Route produces the transition descriptor for one message. The session
// is read, never written; stage changes are enacted by the caller.
func (r *Router) Route(message string, sess *domain.Session) *Decision {
	if sess.Stage == domain.StageAwaitingForm && !IsSkipForm(message) {
		return &Decision{Kind: KindForm}
	}

	if sess.Stage == domain.StageTree {
		return &Decision{Kind: KindTree, Category: r.categoryFor(message, sess)}
	}

	if readiness := r.DetectTreeReadiness(message); readiness.Ready {
		category := readiness.Goal
		if category == "" {
			category = r.categoryFor(message, sess)
		}
		return &Decision{
			Kind:      KindTree,
			Category:  category,
			EntryNode: r.EntryNode(message, category, profileData(sess)),
			Confirm:   readiness.Confirm,
		}
	}

	return &Decision{Kind: KindFreeform, Category: r.categoryFor(message, sess)}
}

// categoryFor resolves the advisor category, letting an explicit context
// override beat the classifier.
func (r *Router) categoryFor(message string, sess *domain.Session) domain.Category {
	if raw, ok := sess.Context["advisor_category"]; ok {
		if s, ok := raw.(string); ok {
			if override := domain.Category(s); override.Valid() {
				return override
			}
			r.logger.Warn("ignoring invalid advisor category override", "category", s)
		}
	}
	return r.ClassifyIntent(message)
}

func profileData(sess *domain.Session) *domain.ProfileData {
	if sess.Context == nil {
		return nil
	}
	financial, _ := sess.Context["financial_data"].(map[string]any)
	behavioral, _ := sess.Context["behavioral_profile"].(map[string]any)
	if financial == nil && behavioral == nil {
		return nil
	}
	return &domain.ProfileData{Financial: financial, Behavioral: behavioral}
}

// IsSkipForm reports whether the message is the administrative command
// that force-completes the intake form.
func IsSkipForm(message string) bool {
	return strings.Contains(strings.ToLower(message), "skip form")
}

// IsRestartForm reports whether the message is the administrative
// command that resets the intake form.
func IsRestartForm(message string) bool {
	lowered := strings.ToLower(message)
	return strings.Contains(lowered, "restart form") || strings.Contains(lowered, "fill out form")
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
