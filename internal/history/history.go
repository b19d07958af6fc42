// Package history exposes list/inspect/delete operations over persisted
// practice sessions and the cross-session statistics derived from them.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultListLimit caps history queries; a bound on result size, not a
// correctness value.
const DefaultListLimit = 50

// Session is a persisted practice session as the history views need it.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time
	EndedAt   *time.Time // nil while in progress
	ItemCount int
	TimeLimit int
}

// ItemRecord is one displayed item within a session.
type ItemRecord struct {
	Name        string
	DisplayedAt time.Time
}

// SessionDetails is a session together with its ordered item records. Items
// may be empty: a session created and ended with nothing recorded is valid.
type SessionDetails struct {
	Session
	Items []ItemRecord
}

// Store is the persistence surface the manager needs, implemented per domain
// in internal/store.
type Store interface {
	// ListSessions returns ended sessions, newest started_at first.
	// limit <= 0 means no cap.
	ListSessions(ctx context.Context, limit int) ([]Session, error)

	// SessionDetails returns the session and its items in display order, or
	// nil when the id does not exist.
	SessionDetails(ctx context.Context, id uuid.UUID) (*SessionDetails, error)

	// DeleteSession removes a session and its item records. Unknown ids are
	// not an error.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteAllSessions removes every session and item record, leaving
	// preferences untouched.
	DeleteAllSessions(ctx context.Context) error
}

// Manager wraps a domain's Store with the refresh-after-mutation flow the
// history screen follows.
type Manager struct {
	store Store
	limit int
}

// NewManager creates a history manager with the default list limit.
func NewManager(store Store) *Manager {
	return &Manager{store: store, limit: DefaultListLimit}
}

// List returns the most recent ended sessions.
func (m *Manager) List(ctx context.Context) ([]Session, error) {
	return m.store.ListSessions(ctx, m.limit)
}

// Details returns one session with its items, or nil if it no longer exists.
func (m *Manager) Details(ctx context.Context, id uuid.UUID) (*SessionDetails, error) {
	return m.store.SessionDetails(ctx, id)
}

// DeleteOne removes a session. Idempotent: deleting an already-deleted id
// succeeds silently, which keeps the UI safe under double-presses.
func (m *Manager) DeleteOne(ctx context.Context, id uuid.UUID) error {
	return m.store.DeleteSession(ctx, id)
}

// DeleteAll clears the domain's history.
func (m *Manager) DeleteAll(ctx context.Context) error {
	return m.store.DeleteAllSessions(ctx)
}

// Overview fetches the session list and aggregate stats together. There is
// no incremental update path: after any mutation callers refetch the whole
// view through this.
func (m *Manager) Overview(ctx context.Context) ([]Session, Stats, error) {
	sessions, err := m.store.ListSessions(ctx, m.limit)
	if err != nil {
		return nil, Stats{}, err
	}

	// Stats run over the full history, not the capped list.
	all, err := m.store.ListSessions(ctx, 0)
	if err != nil {
		return nil, Stats{}, err
	}

	return sessions, ComputeStats(all), nil
}
