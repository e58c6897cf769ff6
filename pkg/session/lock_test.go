package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// MockStore structure
type MockStore struct{}

func (m *MockStore) Save(ctx context.Context, userID string, sess *domain.Session) error {
	return nil
}
func (m *MockStore) Load(ctx context.Context, userID string) (*domain.Session, error) {
	return nil, nil
}
func (m *MockStore) Delete(ctx context.Context, userID string) error { return nil }
func (m *MockStore) List(ctx context.Context) ([]string, error)      { return nil, nil }

func TestManager_LockLifecycle(t *testing.T) {
	mgr := NewManager(&MockStore{})
	ctx := context.Background()
	count := 10000

	for i := 0; i < count; i++ {
		uid := fmt.Sprintf("user-%d", i)
		_ = mgr.Save(ctx, uid, &domain.Session{UserID: uid})
		_ = mgr.Delete(ctx, uid)
	}

	lockCount := len(mgr.locks)
	t.Logf("Sessions Created: %d, Locks Remaining: %d", count, lockCount)

	if lockCount != 0 {
		t.Errorf("Memory Leak Detected: %d locks remaining in memory after Delete", lockCount)
	}
}
