package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeStore struct {
	sessions []Session
	deleted  []uuid.UUID
	cleared  bool
}

func (f *fakeStore) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 || limit >= len(f.sessions) {
		return f.sessions, nil
	}
	return f.sessions[:limit], nil
}

func (f *fakeStore) SessionDetails(ctx context.Context, id uuid.UUID) (*SessionDetails, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			return &SessionDetails{Session: s}, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) DeleteAllSessions(ctx context.Context) error {
	f.cleared = true
	return nil
}

func TestManagerOverview(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < DefaultListLimit+10; i++ {
		store.sessions = append(store.sessions, endedSession(1, time.Minute))
	}

	mgr := NewManager(store)
	sessions, stats, err := mgr.Overview(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(sessions) != DefaultListLimit {
		t.Errorf("listed %d sessions, want cap of %d", len(sessions), DefaultListLimit)
	}
	// Stats cover everything, not just the visible page.
	if stats.TotalSessions != DefaultListLimit+10 {
		t.Errorf("stats over %d sessions, want %d", stats.TotalSessions, DefaultListLimit+10)
	}
}

func TestManagerDetailsMissing(t *testing.T) {
	mgr := NewManager(&fakeStore{})
	d, err := mgr.Details(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if d != nil {
		t.Fatal("expected nil details for unknown session")
	}
}
