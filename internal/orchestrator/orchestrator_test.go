package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/adapters/memory"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/advice"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/orchestrator"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/router"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/session"
)

func newOrchestrator(t *testing.T, generator ports.AdviceGenerator) (*orchestrator.Orchestrator, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	sessions := session.NewManager(memory.NewSessionStore())
	if generator == nil {
		generator = advice.NewStaticGenerator()
	}
	return orchestrator.New(sessions, store, generator), store
}

// completeIntake drives the form to completion with the profile from
// the default-advisor scenario: moderate risk, analytical, flexible,
// long-term, retirement goal.
func completeIntake(t *testing.T, o *orchestrator.Orchestrator, userID string) {
	t.Helper()
	ctx := context.Background()

	// The first message only opens the form.
	if _, err := o.HandleMessage(ctx, userID, "hi"); err != nil {
		t.Fatalf("opening message failed: %v", err)
	}

	answers := []string{
		"30",    // age
		"PL",    // country
		"skip",  // region
		"8000",  // income
		"4000",  // expenses
		"10000", // savings
		"skip",  // debt
		"skip",  // investments
		"skip",  // investment horizon
		"b",     // risk tolerance -> moderate
		"a",     // decision style -> analytical
		"b",     // discipline -> flexible
		"c",     // time preference -> long_term
		"retirement",
	}
	for _, answer := range answers {
		if _, err := o.HandleMessage(ctx, userID, answer); err != nil {
			t.Fatalf("HandleMessage(%q) failed: %v", answer, err)
		}
	}
}

func TestOrchestrator_IntakeFlow(t *testing.T) {
	o, _ := newOrchestrator(t, nil)
	ctx := context.Background()

	t.Run("First Message Opens The Form", func(t *testing.T) {
		turn, err := o.HandleMessage(ctx, "u1", "hello")
		if err != nil {
			t.Fatalf("HandleMessage failed: %v", err)
		}
		if turn.Kind != router.KindForm {
			t.Fatalf("expected form turn, got %q", turn.Kind)
		}
		if !strings.Contains(turn.Reply, "age") {
			t.Errorf("expected the first question, got %q", turn.Reply)
		}
		if turn.Stage != domain.StageAwaitingForm {
			t.Errorf("expected awaiting_form stage, got %q", turn.Stage)
		}
	})

	t.Run("Invalid Number Does Not Advance", func(t *testing.T) {
		turn, err := o.HandleMessage(ctx, "u1", "abc")
		if err != nil {
			t.Fatalf("HandleMessage failed: %v", err)
		}
		if !strings.Contains(turn.Reply, "numeric") {
			t.Errorf("expected a numeric validation message, got %q", turn.Reply)
		}
		// Still on the age question.
		turn, _ = o.HandleMessage(ctx, "u1", "30")
		if !strings.Contains(strings.ToLower(turn.Reply), "country") {
			t.Errorf("expected the country question after a valid age, got %q", turn.Reply)
		}
	})
}

func TestOrchestrator_DefaultAdvisorScenario(t *testing.T) {
	o, store := newOrchestrator(t, nil)
	completeIntake(t, o, "u1")

	data, err := store.LoadProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if data.RecommendedAdvisor != domain.CategoryFinancial {
		t.Errorf("expected the default financial advisor, got %q", data.RecommendedAdvisor)
	}
	if data.Financial["income"] != 8000.0 {
		t.Errorf("income = %v", data.Financial["income"])
	}
	if data.Behavioral["risk_tolerance"] != "moderate" {
		t.Errorf("risk_tolerance = %v", data.Behavioral["risk_tolerance"])
	}
}

func TestOrchestrator_TreeFlow(t *testing.T) {
	o, store := newOrchestrator(t, nil)
	ctx := context.Background()
	completeIntake(t, o, "u1")

	t.Run("Explicit Trigger Enters The Tree", func(t *testing.T) {
		turn, err := o.HandleMessage(ctx, "u1", "show me options step by step")
		if err != nil {
			t.Fatalf("HandleMessage failed: %v", err)
		}
		if turn.Kind != router.KindTree {
			t.Fatalf("expected tree turn, got %q", turn.Kind)
		}
		if turn.Node == nil || turn.Node.ID != "root" {
			t.Fatalf("expected to sit on the root question, got %+v", turn.Node)
		}
		if turn.Stage != domain.StageTree {
			t.Errorf("expected tree stage, got %q", turn.Stage)
		}
	})

	t.Run("Numbered Answers Walk The Branch", func(t *testing.T) {
		turn, _ := o.HandleMessage(ctx, "u1", "1") // emergency fund
		if turn.Node.ID != "ef_timeframe" {
			t.Fatalf("expected ef_timeframe, got %q", turn.Node.ID)
		}
		o.HandleMessage(ctx, "u1", "1") // within 6 months
		o.HandleMessage(ctx, "u1", "2") // six months of expenses
		turn, _ = o.HandleMessage(ctx, "u1", "1") // automatic

		if len(turn.Recommendations) == 0 {
			t.Fatal("expected recommendations at the terminal node")
		}
		if turn.Progress != 1.0 {
			t.Errorf("expected progress 1.0, got %v", turn.Progress)
		}
		if turn.Stage != domain.StageFreeform {
			t.Errorf("expected to leave the tree after the terminal node, got %q", turn.Stage)
		}
	})

	t.Run("Decision Steps Persisted", func(t *testing.T) {
		steps := store.DecisionSteps("u1")
		if len(steps) == 0 {
			t.Fatal("expected persisted decision steps")
		}
	})

	t.Run("Invalid Option Re-Prompts", func(t *testing.T) {
		o.HandleMessage(ctx, "u1", "guide me")
		before := len(store.DecisionSteps("u1"))
		turn, _ := o.HandleMessage(ctx, "u1", "win the lottery")
		if turn.Kind != router.KindTree {
			t.Fatalf("expected tree turn, got %q", turn.Kind)
		}
		if !strings.Contains(turn.Reply, "not one of the available options") {
			t.Errorf("expected an invalid-option message, got %q", turn.Reply)
		}
		if turn.Node.ID != "root" {
			t.Errorf("expected to stay on root, got %q", turn.Node.ID)
		}
		if got := len(store.DecisionSteps("u1")); got != before {
			t.Errorf("rejected answer must not be archived as a step: %d -> %d", before, got)
		}
	})
}

func TestOrchestrator_DebtEntryWalk(t *testing.T) {
	o, _ := newOrchestrator(t, nil)
	ctx := context.Background()
	completeIntake(t, o, "u1")

	turn, err := o.HandleMessage(ctx, "u1", "guide me through paying off my debt")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if turn.Kind != router.KindTree {
		t.Fatalf("expected tree turn, got %q", turn.Kind)
	}
	if turn.Node == nil || turn.Node.ID != "debt_type" {
		t.Fatalf("expected to enter at the debt question, got %+v", turn.Node)
	}

	o.HandleMessage(ctx, "u1", "credit_card")
	o.HandleMessage(ctx, "u1", "medium")
	turn, _ = o.HandleMessage(ctx, "u1", "avalanche")

	if turn.Progress != 1.0 {
		t.Errorf("expected progress 1.0 at the terminal node, got %v", turn.Progress)
	}
	if turn.Stage != domain.StageFreeform {
		t.Errorf("expected to leave the tree after the terminal node, got %q", turn.Stage)
	}
	found := false
	for _, rec := range turn.Recommendations {
		if rec.ID == "debt_budget_discipline" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the debt common recommendation, got %v", turn.Recommendations)
	}
}

func TestOrchestrator_InvestmentRiskDescriptor(t *testing.T) {
	o, _ := newOrchestrator(t, nil)
	ctx := context.Background()
	completeIntake(t, o, "u1")

	// The investment entry node does not exist in the graph; the tree
	// engine degrades it to the root instead of stranding the session.
	turn, err := o.HandleMessage(ctx, "u1", "show me options for investing")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if turn.Kind != router.KindTree {
		t.Fatalf("expected tree turn, got %q", turn.Kind)
	}
	if turn.Category != domain.CategoryInvestment {
		t.Errorf("expected investment category, got %q", turn.Category)
	}
	if turn.Node.ID != "root" {
		t.Errorf("expected root fallback for the unknown entry node, got %q", turn.Node.ID)
	}
}

func TestOrchestrator_AdminCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("Skip Form", func(t *testing.T) {
		o, _ := newOrchestrator(t, nil)
		turn, err := o.HandleMessage(ctx, "u1", "skip form")
		if err != nil {
			t.Fatalf("HandleMessage failed: %v", err)
		}
		if turn.Stage != domain.StageRouting {
			t.Errorf("expected routing stage after skip, got %q", turn.Stage)
		}

		// Next message routes normally instead of feeding the form.
		turn, _ = o.HandleMessage(ctx, "u1", "hello")
		if turn.Kind != router.KindFreeform {
			t.Errorf("expected freeform after skipped form, got %q", turn.Kind)
		}
	})

	t.Run("Restart Form", func(t *testing.T) {
		o, _ := newOrchestrator(t, nil)
		completeIntake(t, o, "u1")

		turn, err := o.HandleMessage(ctx, "u1", "restart form")
		if err != nil {
			t.Fatalf("HandleMessage failed: %v", err)
		}
		if turn.Stage != domain.StageAwaitingForm {
			t.Errorf("expected awaiting_form after restart, got %q", turn.Stage)
		}
		if !strings.Contains(turn.Reply, "age") {
			t.Errorf("expected the first question again, got %q", turn.Reply)
		}
	})
}

type captureGenerator struct {
	last *domain.AdviceRequest
}

func (g *captureGenerator) Generate(_ context.Context, req *domain.AdviceRequest) (*domain.Advice, error) {
	g.last = req
	return &domain.Advice{Answer: "ok"}, nil
}

func TestOrchestrator_ConfiguredLanguage(t *testing.T) {
	gen := &captureGenerator{}
	sessions := session.NewManager(memory.NewSessionStore())
	o := orchestrator.New(sessions, memory.NewStore(), gen, orchestrator.WithLanguage("pl"))
	ctx := context.Background()

	o.HandleMessage(ctx, "u1", "skip form")
	if _, err := o.HandleMessage(ctx, "u1", "how should I plan my spending?"); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if gen.last == nil {
		t.Fatal("expected the generator to be called")
	}
	if gen.last.Language != "pl" {
		t.Errorf("expected the configured language on the request, got %q", gen.last.Language)
	}
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, *domain.AdviceRequest) (*domain.Advice, error) {
	return nil, errors.New("upstream down")
}

func TestOrchestrator_GeneratorFailureDegrades(t *testing.T) {
	o, _ := newOrchestrator(t, failingGenerator{})
	ctx := context.Background()
	completeIntake(t, o, "u1")

	turn, err := o.HandleMessage(ctx, "u1", "how do I budget?")
	if err != nil {
		t.Fatalf("HandleMessage must not fail on generator errors: %v", err)
	}
	if !strings.Contains(turn.Reply, "sorry") {
		t.Errorf("expected the apology reply, got %q", turn.Reply)
	}
}

type failingStore struct{}

func (failingStore) SaveProfile(context.Context, string, *domain.ProfileData) error {
	return errors.New("store down")
}
func (failingStore) LoadProfile(context.Context, string) (*domain.ProfileData, error) {
	return nil, domain.ErrProfileNotFound
}
func (failingStore) AppendInteraction(context.Context, *domain.Interaction) error {
	return errors.New("store down")
}
func (failingStore) AppendDecisionStep(context.Context, *domain.DecisionStep) error {
	return errors.New("store down")
}

func TestOrchestrator_PersistenceFailuresSwallowed(t *testing.T) {
	sessions := session.NewManager(memory.NewSessionStore())
	o := orchestrator.New(sessions, failingStore{}, advice.NewStaticGenerator())
	ctx := context.Background()

	turn, err := o.HandleMessage(ctx, "u1", "hello")
	if err != nil {
		t.Fatalf("HandleMessage must absorb persistence failures: %v", err)
	}
	if turn.Reply == "" {
		t.Error("expected a reply despite the failing store")
	}
}

func TestOrchestrator_InteractionsPersisted(t *testing.T) {
	o, store := newOrchestrator(t, nil)
	ctx := context.Background()

	o.HandleMessage(ctx, "u1", "hello")
	o.HandleMessage(ctx, "u1", "30")

	records := store.Interactions("u1")
	if len(records) != 2 {
		t.Fatalf("expected 2 persisted interactions, got %d", len(records))
	}
	if records[0].Question != "hello" {
		t.Errorf("first record question = %q", records[0].Question)
	}
	if records[0].Reply == "" {
		t.Error("expected the reply archived alongside the question")
	}
}
