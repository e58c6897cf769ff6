package router_test

import (
	"testing"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/router"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

func TestClassifyIntent(t *testing.T) {
	r := router.New()

	cases := []struct {
		message string
		want    domain.Category
	}{
		{"how do I file my tax return", domain.CategoryTax},
		{"is this deduction legal under the contract", domain.CategoryTax}, // tax beats legal
		{"do I need a lawyer for this contract", domain.CategoryLegal},
		{"should I buy an ETF or single stocks", domain.CategoryInvestment},
		{"legal advice on my investment portfolio", domain.CategoryLegal}, // legal beats investment
		{"help me build a budget", domain.CategoryFinancial},
		{"hello", domain.CategoryFinancial},
		{"", domain.CategoryFinancial},
	}
	for _, tc := range cases {
		if got := r.ClassifyIntent(tc.message); got != tc.want {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestDetectTreeReadiness(t *testing.T) {
	r := router.New()

	t.Run("Explicit", func(t *testing.T) {
		readiness := r.DetectTreeReadiness("show me options")
		if !readiness.Ready {
			t.Fatal("expected ready")
		}
		if readiness.Goal != domain.CategoryFinancial {
			t.Errorf("expected financial goal by default, got %q", readiness.Goal)
		}
		if readiness.Confirm != "" {
			t.Error("explicit trigger must not ask for confirmation")
		}
	})

	t.Run("Explicit With Investment Hint", func(t *testing.T) {
		readiness := r.DetectTreeReadiness("show me options for investing")
		if !readiness.Ready || readiness.Goal != domain.CategoryInvestment {
			t.Fatalf("expected ready investment, got %+v", readiness)
		}
	})

	t.Run("Implicit", func(t *testing.T) {
		readiness := r.DetectTreeReadiness("I don't know where to start")
		if !readiness.Ready {
			t.Fatal("expected ready")
		}
		if readiness.Goal != "" {
			t.Errorf("implicit trigger must leave the goal open, got %q", readiness.Goal)
		}
		if readiness.Confirm == "" {
			t.Error("implicit trigger must carry a confirmation prompt")
		}
	})

	t.Run("Neutral", func(t *testing.T) {
		if r.DetectTreeReadiness("what's the weather").Ready {
			t.Error("neutral message must not be ready")
		}
	})
}

func TestEnrichContext(t *testing.T) {
	r := router.New()

	ctx := map[string]any{
		"behavioral_profile": map[string]any{
			"risk_tolerance":  "aggressive",
			"decision_style":  "analytical",
			"time_preference": "long_term",
		},
		"existing": "kept",
	}
	enriched := r.EnrichContext(ctx)

	if enriched["communication_style"] != "detailed" {
		t.Errorf("communication_style = %v", enriched["communication_style"])
	}
	if enriched["investment_style"] != "growth" {
		t.Errorf("investment_style = %v", enriched["investment_style"])
	}
	if enriched["planning_horizon"] != "decades" {
		t.Errorf("planning_horizon = %v", enriched["planning_horizon"])
	}
	if enriched["existing"] != "kept" {
		t.Error("existing context keys must be preserved")
	}
	if _, ok := ctx["communication_style"]; ok {
		t.Error("input context must not be mutated")
	}

	t.Run("No Behavioral Profile", func(t *testing.T) {
		out := r.EnrichContext(map[string]any{"a": 1})
		if _, ok := out["communication_style"]; ok {
			t.Error("no hints expected without a behavioral profile")
		}
	})
}

func TestEntryNode(t *testing.T) {
	r := router.New()

	if got := r.EntryNode("anything", domain.CategoryInvestment, nil); got != "investment_risk" {
		t.Errorf("investment entry = %q", got)
	}
	if got := r.EntryNode("anything", domain.CategoryTax, nil); got != "tax_situation" {
		t.Errorf("tax entry = %q", got)
	}
	if got := r.EntryNode("help me pay off my loan", domain.CategoryFinancial, nil); got != "debt_type" {
		t.Errorf("debt mention entry = %q", got)
	}
	data := &domain.ProfileData{Financial: map[string]any{"debt": 12000.0}}
	if got := r.EntryNode("structured plan please", domain.CategoryFinancial, data); got != "debt_type" {
		t.Errorf("profile debt entry = %q", got)
	}
	if got := r.EntryNode("structured plan please", domain.CategoryFinancial, nil); got != "root" {
		t.Errorf("default entry = %q", got)
	}
}

func TestRoute(t *testing.T) {
	r := router.New()

	t.Run("Incomplete Form Delegates", func(t *testing.T) {
		sess := domain.NewSession("u1")
		decision := r.Route("35", sess)
		if decision.Kind != router.KindForm {
			t.Fatalf("expected form decision, got %q", decision.Kind)
		}
	})

	t.Run("Skip Form Bypasses Delegation", func(t *testing.T) {
		sess := domain.NewSession("u1")
		decision := r.Route("please skip form", sess)
		if decision.Kind == router.KindForm {
			t.Fatal("skip form must not delegate to the form")
		}
	})

	t.Run("Readiness Yields Tree Descriptor", func(t *testing.T) {
		sess := domain.NewSession("u1")
		sess.Stage = domain.StageRouting
		decision := r.Route("show me options for investing", sess)
		if decision.Kind != router.KindTree {
			t.Fatalf("expected tree decision, got %q", decision.Kind)
		}
		if decision.Category != domain.CategoryInvestment {
			t.Errorf("expected investment category, got %q", decision.Category)
		}
		if decision.EntryNode != "investment_risk" {
			t.Errorf("expected investment_risk entry, got %q", decision.EntryNode)
		}
		if sess.Stage != domain.StageRouting {
			t.Error("route must not mutate the session stage")
		}
	})

	t.Run("Context Override Beats Classifier", func(t *testing.T) {
		sess := domain.NewSession("u1")
		sess.Stage = domain.StageFreeform
		sess.Context["advisor_category"] = "legal"
		decision := r.Route("how should I invest my savings", sess)
		if decision.Kind != router.KindFreeform {
			t.Fatalf("expected freeform decision, got %q", decision.Kind)
		}
		if decision.Category != domain.CategoryLegal {
			t.Errorf("expected legal override, got %q", decision.Category)
		}
	})

	t.Run("Neutral Message Goes Freeform", func(t *testing.T) {
		sess := domain.NewSession("u1")
		sess.Stage = domain.StageRouting
		decision := r.Route("hello there", sess)
		if decision.Kind != router.KindFreeform || decision.Category != domain.CategoryFinancial {
			t.Fatalf("expected freeform financial, got %+v", decision)
		}
	})

	t.Run("Tree Stage Stays In Tree", func(t *testing.T) {
		sess := domain.NewSession("u1")
		sess.Stage = domain.StageTree
		decision := r.Route("emergency_fund", sess)
		if decision.Kind != router.KindTree {
			t.Fatalf("expected tree decision, got %q", decision.Kind)
		}
	})
}

func TestAdminCommands(t *testing.T) {
	if !router.IsSkipForm("Skip Form please") {
		t.Error("skip form not recognized")
	}
	if router.IsSkipForm("skip the formalities") {
		t.Error("false positive on skip form")
	}
	if !router.IsRestartForm("can we restart form") || !router.IsRestartForm("I want to fill out form again") {
		t.Error("restart form not recognized")
	}
}
