package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/adapters/redis"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports/tests"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisSessionStore_Contract(t *testing.T) {
	client := newTestClient(t)
	tests.SessionStoreContract(t, redis.NewSessionStoreFromClient(client))
}

func TestRedisStore_Contract(t *testing.T) {
	client := newTestClient(t)
	tests.StoreContract(t, redis.NewStore(client))
}

func TestRedisSessionStore_TTLPruning(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewSessionStoreFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	if err := store.Save(ctx, "u1", domain.NewSession("u1")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Expire the key and walk the clock past the index score.
	mr.FastForward(2 * time.Second)

	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected expired session pruned from index, got %v", ids)
	}
}

func TestRedisStore_InteractionOrder(t *testing.T) {
	client := newTestClient(t)
	store := redis.NewStore(client)
	ctx := context.Background()

	for _, q := range []string{"first", "second", "third"} {
		err := store.AppendInteraction(ctx, &domain.Interaction{
			UserID:   "u1",
			Question: q,
			Category: domain.CategoryFinancial,
		})
		if err != nil {
			t.Fatalf("AppendInteraction(%q) failed: %v", q, err)
		}
	}

	records, err := store.Interactions(ctx, "u1")
	if err != nil {
		t.Fatalf("Interactions failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 interactions, got %d", len(records))
	}
	for i, want := range []string{"first", "second", "third"} {
		if records[i].Question != want {
			t.Errorf("interaction %d = %q, want %q", i, records[i].Question, want)
		}
	}
}
