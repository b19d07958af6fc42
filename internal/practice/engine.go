package practice

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/jazzgym/internal/catalog"
)

// SessionStore is the persistence surface the engine needs. Implementations
// live in internal/store; tests substitute fakes.
type SessionStore interface {
	// CreateSession opens a new persisted session and returns its handle.
	CreateSession(ctx context.Context, timeLimit int) (uuid.UUID, error)

	// AppendItem records a displayed item against the session and bumps its
	// stored item count.
	AppendItem(ctx context.Context, sessionID uuid.UUID, name string) error

	// CloseSession stamps the session's end time.
	CloseSession(ctx context.Context, sessionID uuid.UUID) error
}

// Engine drives the session lifecycle for one domain: Start, Advance, End.
// It is parameterized over the category type so chords and scales share one
// implementation; the only behavioral difference between the two is the
// repeat-avoidance flag.
//
// Engine methods are not safe for concurrent calls against the same State;
// callers serialize (the practice screen holds an in-flight guard).
type Engine[C ~string] struct {
	store       SessionStore
	library     []catalog.Item[C]
	avoidRepeat bool
	now         func() time.Time
}

// NewEngine creates an engine over the given library. avoidRepeat controls
// whether Advance excludes the item just shown from the next pick; the scale
// domain enables it, the chord domain does not.
func NewEngine[C ~string](store SessionStore, library []catalog.Item[C], avoidRepeat bool) *Engine[C] {
	return &Engine[C]{
		store:       store,
		library:     library,
		avoidRepeat: avoidRepeat,
		now:         time.Now,
	}
}

// Start filters the library by the enabled categories, picks the first item,
// and creates the persisted session. Validation failures (empty category set)
// surface before anything is written.
func (e *Engine[C]) Start(ctx context.Context, timeLimit int, enabled []C) (*State[C], error) {
	pool, err := catalog.Filter(e.library, enabled)
	if err != nil {
		return nil, err
	}

	first, err := catalog.PickRandom(pool, nil)
	if err != nil {
		return nil, err
	}

	sessionID, err := e.store.CreateSession(ctx, timeLimit)
	if err != nil {
		return nil, &PersistenceError{Op: "create session", Err: err}
	}

	return &State[C]{
		SessionID: sessionID,
		Current:   &first,
		Completed: 0,
		Active:    true,
		TimeLimit: timeLimit,
		Pool:      pool,
		StartedAt: e.now(),
	}, nil
}

// Advance records the current item and moves to the next one. The returned
// state carries everything forward except Current and Completed. On any
// failure the passed state remains valid and the step can be retried.
func (e *Engine[C]) Advance(ctx context.Context, state *State[C]) (*State[C], error) {
	if state == nil || state.SessionID == uuid.Nil || state.Current == nil {
		return nil, ErrNoActiveSession
	}

	if err := e.store.AppendItem(ctx, state.SessionID, state.Current.Name); err != nil {
		return nil, &PersistenceError{Op: "record item", Err: err}
	}

	var previous *catalog.Item[C]
	if e.avoidRepeat {
		previous = state.Current
	}
	next, err := catalog.PickRandom(state.Pool, previous)
	if err != nil {
		return nil, err
	}

	advanced := *state
	advanced.Current = &next
	advanced.Completed = state.Completed + 1
	return &advanced, nil
}

// End records the item still on display (so the final prompt counts), closes
// the persisted session, and returns the summary. The caller discards its
// State afterwards; a new session requires a fresh Start.
func (e *Engine[C]) End(ctx context.Context, state *State[C]) (*Summary, error) {
	if state == nil || state.SessionID == uuid.Nil {
		return nil, ErrNoActiveSession
	}

	if state.Current != nil {
		if err := e.store.AppendItem(ctx, state.SessionID, state.Current.Name); err != nil {
			return nil, &PersistenceError{Op: "record item", Err: err}
		}
	}

	if err := e.store.CloseSession(ctx, state.SessionID); err != nil {
		return nil, &PersistenceError{Op: "close session", Err: err}
	}

	totalItems := state.Completed
	if state.Current != nil {
		totalItems++
	}

	return &Summary{
		SessionID:       state.SessionID,
		TotalItems:      totalItems,
		DurationMinutes: round1(float64(totalItems*state.TimeLimit) / 60),
		StartedAt:       state.StartedAt,
		EndedAt:         e.now(),
	}, nil
}

// round1 rounds to one decimal place, half away from zero. 0.35 → 0.4,
// 0.05 → 0.1.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
