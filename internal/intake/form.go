// Package intake implements the sequential, typed collection of a user
// profile: financial fields first, behavioral profiling after, ending in
// a summary and a derived advisor recommendation.
package intake

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/logging"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// skipToken lets a user pass over a non-required field explicitly.
const skipToken = "skip"

// Engine runs the intake form over an externally held domain.Profile.
// It keeps no per-user state itself, so one Engine serves all sessions.
type Engine struct {
	logger *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger configures a logger for the Engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an intake form engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NextQuestion returns the prompt of the first not-yet-filled field in
// fixed order. Optional fields are skipped once every required field is
// filled. When no field remains it marks the profile complete and
// returns the generated summary. No external side effects.
func (e *Engine) NextQuestion(p *domain.Profile) string {
	if p.Complete {
		return "The form is already complete. How can I help you?"
	}
	for {
		if p.Cursor >= len(fieldOrder) {
			p.Complete = true
			return e.Summary(p)
		}
		field := fieldOrder[p.Cursor]
		if !field.Required && e.requiredFilled(p) {
			p.Cursor++
			continue
		}
		return field.Prompt
	}
}

// ProcessAnswer validates the raw answer against the current field. On
// failure it returns a human-readable error plus the original prompt and
// the cursor does not advance. On success the (mapped or type-coerced)
// value is stored, the cursor advances exactly one field, and the next
// question (or summary) is returned.
func (e *Engine) ProcessAnswer(p *domain.Profile, raw string) string {
	if p.Complete {
		return "The form is already complete. How can I help you?"
	}
	if p.Cursor >= len(fieldOrder) {
		p.Complete = true
		return e.Summary(p)
	}

	field := fieldOrder[p.Cursor]
	answer := strings.TrimSpace(raw)

	if !field.Required && (answer == "" || strings.EqualFold(answer, skipToken)) {
		p.Cursor++
		return e.NextQuestion(p)
	}

	value, err := validate(field, answer)
	if err != nil {
		e.logger.Debug("intake answer rejected", "field", field.Name, "err", err)
		return err.Reason + "\n" + field.Prompt
	}

	if p.Values == nil {
		p.Values = make(map[string]any)
	}
	p.Values[field.Name] = value
	p.Cursor++
	return e.NextQuestion(p)
}

// validate type-checks one answer and returns the value to store.
func validate(field Field, answer string) (any, *domain.ValidationError) {
	switch field.Type {
	case "choice":
		key := strings.ToLower(answer)
		matched := false
		for _, opt := range field.Options {
			if key == opt {
				matched = true
				break
			}
		}
		if !matched {
			return nil, &domain.ValidationError{
				Field:  field.Name,
				Reason: "Please pick one of the available options: " + strings.Join(field.Options, ", ") + ".",
			}
		}
		if mapped, ok := field.Mapping[key]; ok {
			return mapped, nil
		}
		return key, nil
	case "number":
		value, err := parseNumber(answer)
		if err != nil {
			return nil, &domain.ValidationError{Field: field.Name, Reason: "Please provide a numeric value."}
		}
		return value, nil
	default:
		return answer, nil
	}
}

// Complete reports whether every field has been visited.
func (e *Engine) Complete(p *domain.Profile) bool {
	return p != nil && p.Complete
}

// ForceComplete marks the form done with whatever values it holds. Used
// by the "skip form" administrative command.
func (e *Engine) ForceComplete(p *domain.Profile) {
	p.Cursor = len(fieldOrder)
	p.Complete = true
}

// requiredFilled reports whether every required field has a value.
func (e *Engine) requiredFilled(p *domain.Profile) bool {
	for _, field := range fieldOrder {
		if field.Required && p.Value(field.Name) == nil {
			return false
		}
	}
	return true
}

// ProfileData assembles the read-only view of the collected profile,
// split into financial and behavioral subsets, with the derived advisor.
func (e *Engine) ProfileData(p *domain.Profile) *domain.ProfileData {
	data := &domain.ProfileData{
		Financial:  make(map[string]any),
		Behavioral: make(map[string]any),
	}
	for _, field := range fieldOrder {
		value := p.Value(field.Name)
		if value == nil {
			continue
		}
		if field.Financial {
			data.Financial[field.Name] = value
		} else {
			data.Behavioral[field.Name] = value
		}
	}
	data.RecommendedAdvisor = e.RecommendAdvisor(p)
	return data
}

// Summary generates the end-of-form profile recap plus the transition
// prompt into the advisory conversation.
func (e *Engine) Summary(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("Thank you. Here is a summary of your financial profile:\n\n")

	b.WriteString("Financial data:\n")
	for _, field := range fieldOrder {
		if !field.Financial {
			continue
		}
		if value := p.Value(field.Name); value != nil {
			fmt.Fprintf(&b, "- %s: %v\n", fieldLabel(field.Name), value)
		}
	}

	b.WriteString("\nBehavioral profile:\n")
	for _, field := range fieldOrder {
		if field.Financial {
			continue
		}
		if value := p.Value(field.Name); value != nil {
			fmt.Fprintf(&b, "- %s: %v\n", fieldLabel(field.Name), value)
		}
	}

	advisor := e.RecommendAdvisor(p)
	fmt.Fprintf(&b, "\nBased on your profile, you are assigned: %s\n", advisor.DisplayName())
	b.WriteString("\nWe can now start an interactive conversation. What would you like to achieve with your finances? You can describe your goals, concerns, or ask specific questions.")
	return b.String()
}

// Greeting builds the post-form opening message from a completed profile.
func Greeting(data *domain.ProfileData) string {
	var b strings.Builder
	b.WriteString("Welcome! Thank you for filling in the form. ")
	if goal, ok := data.Behavioral["financial_goal"].(string); ok && goal != "" {
		fmt.Fprintf(&b, "I can see your main financial goal is: %s. ", goal)
	}
	if risk, ok := data.Behavioral["risk_tolerance"].(string); ok {
		switch risk {
		case "conservative":
			b.WriteString("You prefer a cautious approach to risk. ")
		case "moderate":
			b.WriteString("You prefer a balanced approach to risk. ")
		case "aggressive":
			b.WriteString("You are open to higher risk for potentially higher returns. ")
		}
	}
	b.WriteString("How can I help you reach your financial goals? We can discuss specific strategies, walk through a guided decision tree, or I can answer your questions.")
	return b.String()
}

// fieldLabel renders a field name for display ("risk_tolerance" ->
// "Risk tolerance").
func fieldLabel(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// FieldNames returns the form's field names in question order. Used for
// introspection.
func FieldNames() []string {
	names := make([]string, 0, len(fieldOrder))
	for _, field := range fieldOrder {
		names = append(names, field.Name)
	}
	return names
}
