package memory_test

import (
	"context"
	"testing"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/adapters/memory"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports/tests"
)

func TestSessionStore_Contract(t *testing.T) {
	tests.SessionStoreContract(t, memory.NewSessionStore())
}

func TestStore_Contract(t *testing.T) {
	tests.StoreContract(t, memory.NewStore())
}

func TestSessionStore_Isolation(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	sess := domain.NewSession("u1")
	sess.Context["key"] = "original"
	if err := store.Save(ctx, "u1", sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Mutating the saved pointer must not affect the stored copy.
	sess.Context["key"] = "mutated"

	loaded, err := store.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Context["key"] != "original" {
		t.Errorf("stored session leaked mutation: %v", loaded.Context["key"])
	}

	// Mutating a loaded copy must not affect the store either.
	loaded.Context["key"] = "mutated-after-load"
	again, _ := store.Load(ctx, "u1")
	if again.Context["key"] != "original" {
		t.Errorf("loaded session shares state with the store: %v", again.Context["key"])
	}
}

func TestStore_AssignsIDs(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := store.AppendInteraction(ctx, &domain.Interaction{
		UserID:   "u1",
		Question: "q",
		Reply:    "r",
		Category: domain.CategoryFinancial,
	})
	if err != nil {
		t.Fatalf("AppendInteraction failed: %v", err)
	}

	records := store.Interactions("u1")
	if len(records) != 1 {
		t.Fatalf("expected 1 interaction, got %d", len(records))
	}
	if records[0].ID == "" {
		t.Error("expected an assigned id")
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("expected an assigned timestamp")
	}
}
