package decisiontree_test

import (
	"testing"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/decisiontree"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

func TestEngine_Validate(t *testing.T) {
	engine := decisiontree.NewEngine()
	if err := engine.Validate(); err != nil {
		t.Fatalf("built-in graph failed validation: %v", err)
	}
}

func TestEngine_ProcessStep(t *testing.T) {
	engine := decisiontree.NewEngine()

	t.Run("Empty Node Enters At Root", func(t *testing.T) {
		ts := domain.NewTreeSession()
		result := engine.ProcessStep(ts, "", "")
		if result.Node.ID != decisiontree.RootNodeID {
			t.Fatalf("expected root node, got %q", result.Node.ID)
		}
		if len(ts.Journey) != 1 || ts.Journey[0] != decisiontree.RootNodeID {
			t.Errorf("expected journey [root], got %v", ts.Journey)
		}
		if result.Progress != 0.25 {
			t.Errorf("expected progress 0.25, got %v", result.Progress)
		}
	})

	t.Run("Root Answer Sets Goal", func(t *testing.T) {
		ts := domain.NewTreeSession()
		engine.ProcessStep(ts, "", "")
		result := engine.ProcessStep(ts, decisiontree.RootNodeID, "emergency_fund")
		if ts.Goal != "emergency_fund" {
			t.Errorf("expected goal emergency_fund, got %q", ts.Goal)
		}
		if result.Node.ID != "ef_timeframe" {
			t.Errorf("expected ef_timeframe, got %q", result.Node.ID)
		}
		if ts.Answers[decisiontree.RootNodeID] != "emergency_fund" {
			t.Errorf("root answer not recorded: %v", ts.Answers)
		}
	})

	t.Run("Invalid Answer Does Not Advance", func(t *testing.T) {
		ts := domain.NewTreeSession()
		engine.ProcessStep(ts, "", "")
		result := engine.ProcessStep(ts, decisiontree.RootNodeID, "win_lottery")
		if !result.Invalid {
			t.Fatal("expected Invalid result")
		}
		if result.Node.ID != decisiontree.RootNodeID {
			t.Errorf("expected to stay on root, got %q", result.Node.ID)
		}
		if len(ts.Journey) != 1 {
			t.Errorf("journey must not grow on invalid answer, got %v", ts.Journey)
		}
		if _, ok := ts.Answers["root"]; ok {
			t.Error("invalid answer must not be recorded")
		}
		if result.Message == "" {
			t.Error("expected a message naming the invalid option")
		}
	})

	t.Run("Unknown Node Restarts At Root", func(t *testing.T) {
		ts := domain.NewTreeSession()
		result := engine.ProcessStep(ts, "no_such_node", "whatever")
		if result.Node.ID != decisiontree.RootNodeID {
			t.Errorf("expected root fallback, got %q", result.Node.ID)
		}
	})

	t.Run("Progress Saturates", func(t *testing.T) {
		ts := domain.NewTreeSession()
		ts.Journey = []string{"a", "b", "c", "d", "e", "f"}
		if p := engine.Progress(ts); p != 1.0 {
			t.Errorf("expected progress 1.0, got %v", p)
		}
	})
}

// walk runs one full branch from the root to its recommendation node.
func walk(t *testing.T, engine *decisiontree.Engine, answers []string) (*domain.TreeSession, *decisiontree.StepResult) {
	t.Helper()
	ts := domain.NewTreeSession()
	result := engine.ProcessStep(ts, "", "")
	for _, answer := range answers {
		result = engine.ProcessStep(ts, result.Node.ID, answer)
		if result.Invalid {
			t.Fatalf("unexpected invalid answer %q at node %q", answer, result.Node.ID)
		}
	}
	return ts, result
}

func TestEngine_FullBranches(t *testing.T) {
	engine := decisiontree.NewEngine()

	cases := []struct {
		goal      string
		answers   []string
		commonRec string
	}{
		{"emergency_fund", []string{"emergency_fund", "short", "six", "automatic"}, "emergency_fund_location"},
		{"debt_reduction", []string{"debt_reduction", "credit_card", "medium", "avalanche"}, "debt_budget_discipline"},
		{"home_purchase", []string{"home_purchase", "medium", "twenty", "medium"}, "home_purchase_preparation"},
		{"retirement", []string{"retirement", "standard", "mid", "pension_account"}, "retirement_diversification"},
		{"education", []string{"education", "short", "university", "large"}, "education_fund_review"},
		{"vacation", []string{"vacation", "short", "large", "credit"}, "vacation_budget_management"},
		{"other", []string{"other", "medium", "long", "high"}, "other_goal_tracking"},
	}

	for _, tc := range cases {
		t.Run(tc.goal, func(t *testing.T) {
			ts, result := walk(t, engine, tc.answers)
			if result.Node.Type != domain.NodeRecommendation {
				t.Fatalf("expected a recommendation node, got %q (%s)", result.Node.ID, result.Node.Type)
			}
			if result.Progress != 1.0 {
				t.Errorf("expected progress 1.0 at the end, got %v", result.Progress)
			}
			if len(ts.Journey) != 4 {
				t.Errorf("expected journey of length 4, got %v", ts.Journey)
			}
			if len(result.Recommendations) == 0 {
				t.Fatal("expected recommendations at the terminal node")
			}
			found := false
			for _, rec := range result.Recommendations {
				if rec.ID == tc.commonRec {
					found = true
				}
				if rec.Title == "" || rec.Description == "" || len(rec.ActionItems) == 0 {
					t.Errorf("recommendation %q is incomplete", rec.ID)
				}
			}
			if !found {
				t.Errorf("expected common recommendation %q for goal %s", tc.commonRec, tc.goal)
			}
		})
	}
}

func TestEngine_MidBranchEntry(t *testing.T) {
	engine := decisiontree.NewEngine()
	ts := domain.NewTreeSession()

	result := engine.ProcessStep(ts, "debt_type", "")
	if result.Node.ID != "debt_type" {
		t.Fatalf("expected debt_type, got %q", result.Node.ID)
	}
	if ts.Goal != decisiontree.GoalDebtReduction {
		t.Fatalf("expected the goal derived from the branch, got %q", ts.Goal)
	}
	if ts.Answers[decisiontree.RootNodeID] != decisiontree.GoalDebtReduction {
		t.Errorf("expected the implied root answer recorded, got %v", ts.Answers)
	}
	if result.Progress != 0.25 {
		t.Errorf("expected progress 0.25 after entry, got %v", result.Progress)
	}

	for _, answer := range []string{"credit_card", "medium", "avalanche"} {
		result = engine.ProcessStep(ts, ts.Current, answer)
		if result.Invalid {
			t.Fatalf("unexpected invalid answer %q at node %q", answer, result.Node.ID)
		}
	}
	if result.Node.Type != domain.NodeRecommendation {
		t.Fatalf("expected a recommendation node, got %q", result.Node.ID)
	}
	if result.Progress != 1.0 {
		t.Errorf("expected progress 1.0 at the end, got %v", result.Progress)
	}
	found := false
	for _, rec := range result.Recommendations {
		if rec.ID == "debt_budget_discipline" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the debt common recommendation, got %v", result.Recommendations)
	}
}

func TestEngine_Recommendations_Fallback(t *testing.T) {
	engine := decisiontree.NewEngine()

	t.Run("Unknown Goal", func(t *testing.T) {
		recs := engine.Recommendations("world_domination", nil)
		if len(recs) != 1 || recs[0].ID != "generic_plan" {
			t.Fatalf("expected the generic recommendation, got %v", recs)
		}
	})

	t.Run("Missing Answers Use Defaults", func(t *testing.T) {
		recs := engine.Recommendations("emergency_fund", map[string]string{})
		if len(recs) == 0 {
			t.Fatal("expected recommendations despite missing answers")
		}
	})
}

func TestEngine_OptionsForStep(t *testing.T) {
	engine := decisiontree.NewEngine()

	t.Run("Step Zero Is Root", func(t *testing.T) {
		options := engine.OptionsForStep(0, nil)
		if len(options) != 7 {
			t.Fatalf("expected 7 goal options, got %d", len(options))
		}
		if options[0].Question == "" {
			t.Error("expected options to carry the question text")
		}
	})

	t.Run("Replay Matches Live Walk", func(t *testing.T) {
		ts := domain.NewTreeSession()
		result := engine.ProcessStep(ts, "", "")
		result = engine.ProcessStep(ts, result.Node.ID, "retirement")

		options := engine.OptionsForStep(1, []decisiontree.PathEntry{
			{NodeID: "root", Selection: "retirement"},
		})
		if len(options) == 0 {
			t.Fatal("expected options from replay")
		}
		if options[0].Question != result.Node.Question {
			t.Errorf("replayed question %q differs from live %q", options[0].Question, result.Node.Question)
		}
	})

	t.Run("Broken Path Yields Fallback", func(t *testing.T) {
		options := engine.OptionsForStep(2, []decisiontree.PathEntry{
			{NodeID: "root", Selection: "become_astronaut"},
		})
		if len(options) != 1 || options[0].ID != "continue" {
			t.Fatalf("expected the single fallback option, got %v", options)
		}
	})
}

func TestEngine_Report(t *testing.T) {
	engine := decisiontree.NewEngine()

	t.Run("Full Path", func(t *testing.T) {
		report := engine.Report([]decisiontree.PathEntry{
			{NodeID: "root", Selection: "vacation"},
			{NodeID: "vacation_timeframe", Selection: "short"},
			{NodeID: "vacation_cost", Selection: "large"},
			{NodeID: "vacation_savings_method", Selection: "dedicated"},
		}, nil)
		if report.Summary == "" {
			t.Fatal("expected a non-empty summary")
		}
		if len(report.Steps) != 4 {
			t.Errorf("expected 4 steps, got %d", len(report.Steps))
		}
	})

	t.Run("Empty Path", func(t *testing.T) {
		report := engine.Report(nil, nil)
		if report.Summary == "" || len(report.Steps) == 0 {
			t.Fatal("expected the generic report")
		}
	})
}
