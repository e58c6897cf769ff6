package tests

import (
	"context"
	"testing"
	"time"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports"
)

// SessionStoreContract is a reusable suite verifying that an adapter
// complies with ports.SessionStore semantics.
func SessionStoreContract(t *testing.T, store ports.SessionStore) {
	t.Helper()
	ctx := context.Background()
	userID := "contract-user"

	t.Run("Load_NotFound", func(t *testing.T) {
		if _, err := store.Load(ctx, userID); err != domain.ErrSessionNotFound {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_Roundtrip", func(t *testing.T) {
		session := domain.NewSession(userID)
		session.Stage = domain.StageRouting
		session.Context["recommended_advisor"] = "investment"
		session.Tree = domain.NewTreeSession()
		session.Tree.Current = "root"
		session.Tree.Journey = []string{"root"}

		if err := store.Save(ctx, userID, session); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := store.Load(ctx, userID)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.Stage != domain.StageRouting {
			t.Errorf("expected stage %q, got %q", domain.StageRouting, loaded.Stage)
		}
		if loaded.Context["recommended_advisor"] != "investment" {
			t.Errorf("context not preserved: %v", loaded.Context)
		}
		if loaded.Tree == nil || loaded.Tree.Current != "root" {
			t.Errorf("tree state not preserved: %+v", loaded.Tree)
		}
	})

	t.Run("Load_Isolation", func(t *testing.T) {
		loaded, err := store.Load(ctx, userID)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		loaded.Context["mutated"] = true

		again, err := store.Load(ctx, userID)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if _, ok := again.Context["mutated"]; ok {
			t.Error("store returned a shared mutable session")
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		found := false
		for _, id := range ids {
			if id == userID {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q in %v", userID, ids)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, userID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := store.Load(ctx, userID); err != domain.ErrSessionNotFound {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
	})
}

// StoreContract is a reusable suite verifying that an adapter complies
// with ports.Store semantics.
func StoreContract(t *testing.T, store ports.Store) {
	t.Helper()
	ctx := context.Background()
	userID := "contract-user"

	t.Run("LoadProfile_NotFound", func(t *testing.T) {
		if _, err := store.LoadProfile(ctx, userID); err != domain.ErrProfileNotFound {
			t.Errorf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("SaveProfile_Roundtrip", func(t *testing.T) {
		data := &domain.ProfileData{
			Financial:          map[string]any{"income": 8000.0},
			Behavioral:         map[string]any{"risk_tolerance": "moderate"},
			RecommendedAdvisor: domain.CategoryFinancial,
		}
		if err := store.SaveProfile(ctx, userID, data); err != nil {
			t.Fatalf("save profile failed: %v", err)
		}
		loaded, err := store.LoadProfile(ctx, userID)
		if err != nil {
			t.Fatalf("load profile failed: %v", err)
		}
		if loaded.RecommendedAdvisor != domain.CategoryFinancial {
			t.Errorf("advisor not preserved: %+v", loaded)
		}
		if loaded.Behavioral["risk_tolerance"] != "moderate" {
			t.Errorf("behavioral data not preserved: %+v", loaded.Behavioral)
		}
	})

	t.Run("AppendInteraction", func(t *testing.T) {
		err := store.AppendInteraction(ctx, &domain.Interaction{
			ID:        "i-1",
			UserID:    userID,
			Question:  "how do I start saving?",
			Reply:     "open a savings account",
			Category:  domain.CategoryFinancial,
			CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("append interaction failed: %v", err)
		}
	})

	t.Run("AppendDecisionStep", func(t *testing.T) {
		err := store.AppendDecisionStep(ctx, &domain.DecisionStep{
			ID:        "d-1",
			UserID:    userID,
			NodeID:    "root",
			Answer:    "retirement",
			CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("append decision step failed: %v", err)
		}
	})
}
