package practice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/jazzgym/internal/catalog"
)

type fakeStore struct {
	createdLimits []int
	items         map[uuid.UUID][]string
	closed        map[uuid.UUID]bool

	createErr error
	appendErr error
	closeErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:  make(map[uuid.UUID][]string),
		closed: make(map[uuid.UUID]bool),
	}
}

func (f *fakeStore) CreateSession(ctx context.Context, timeLimit int) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	id := uuid.New()
	f.createdLimits = append(f.createdLimits, timeLimit)
	f.items[id] = nil
	return id, nil
}

func (f *fakeStore) AppendItem(ctx context.Context, sessionID uuid.UUID, name string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.items[sessionID] = append(f.items[sessionID], name)
	return nil
}

func (f *fakeStore) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closed[sessionID] = true
	return nil
}

func chordEngine(store SessionStore) *Engine[catalog.ChordType] {
	return NewEngine(store, catalog.ChordLibrary(), false)
}

func scaleEngine(store SessionStore) *Engine[catalog.ScaleType] {
	return NewEngine(store, catalog.ScaleLibrary(), true)
}

func TestEngineStart(t *testing.T) {
	ctx := context.Background()

	t.Run("creates session with first item", func(t *testing.T) {
		store := newFakeStore()
		eng := chordEngine(store)

		state, err := eng.Start(ctx, 10, []catalog.ChordType{catalog.ChordMajor})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, state.SessionID)
		assert.True(t, state.Active)
		assert.Equal(t, 0, state.Completed)
		assert.Equal(t, 10, state.TimeLimit)
		assert.Len(t, state.Pool, 4*17)
		require.NotNil(t, state.Current)
		assert.Equal(t, catalog.ChordMajor, state.Current.Category)
		assert.False(t, state.StartedAt.IsZero())

		// Nothing recorded yet: the first item only counts once advanced
		// past or when the session ends.
		assert.Empty(t, store.items[state.SessionID])
		assert.Equal(t, []int{10}, store.createdLimits)
	})

	t.Run("empty category set fails before persistence", func(t *testing.T) {
		store := newFakeStore()
		eng := chordEngine(store)

		_, err := eng.Start(ctx, 10, nil)
		assert.ErrorIs(t, err, catalog.ErrNoCategoriesEnabled)
		assert.Empty(t, store.createdLimits)
	})

	t.Run("create failure wraps as persistence error", func(t *testing.T) {
		store := newFakeStore()
		store.createErr = errors.New("disk full")
		eng := chordEngine(store)

		_, err := eng.Start(ctx, 10, []catalog.ChordType{catalog.ChordMajor})
		var perr *PersistenceError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "create session", perr.Op)
	})
}

func TestEngineAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("records current and moves on", func(t *testing.T) {
		store := newFakeStore()
		eng := chordEngine(store)

		state, err := eng.Start(ctx, 10, []catalog.ChordType{catalog.ChordMajor})
		require.NoError(t, err)
		shown := state.Current.Name

		next, err := eng.Advance(ctx, state)
		require.NoError(t, err)

		assert.Equal(t, []string{shown}, store.items[state.SessionID])
		assert.Equal(t, 1, next.Completed)
		assert.Equal(t, state.SessionID, next.SessionID)
		assert.Equal(t, state.TimeLimit, next.TimeLimit)
		assert.NotNil(t, next.Current)

		// Original state untouched.
		assert.Equal(t, 0, state.Completed)
	})

	t.Run("scales never repeat back to back", func(t *testing.T) {
		store := newFakeStore()
		eng := scaleEngine(store)

		state, err := eng.Start(ctx, 5, []catalog.ScaleType{catalog.ScaleDorian})
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			prev := state.Current.Name
			state, err = eng.Advance(ctx, state)
			require.NoError(t, err)
			assert.NotEqual(t, prev, state.Current.Name)
		}
	})

	t.Run("no active session", func(t *testing.T) {
		eng := chordEngine(newFakeStore())

		_, err := eng.Advance(ctx, nil)
		assert.ErrorIs(t, err, ErrNoActiveSession)

		_, err = eng.Advance(ctx, &State[catalog.ChordType]{})
		assert.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("persistence failure keeps state retryable", func(t *testing.T) {
		store := newFakeStore()
		eng := chordEngine(store)

		state, err := eng.Start(ctx, 10, []catalog.ChordType{catalog.ChordMajor})
		require.NoError(t, err)
		shown := state.Current.Name

		store.appendErr = errors.New("locked")
		_, err = eng.Advance(ctx, state)
		var perr *PersistenceError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "record item", perr.Op)

		// Same state works once the store recovers.
		store.appendErr = nil
		next, err := eng.Advance(ctx, state)
		require.NoError(t, err)
		assert.Equal(t, 1, next.Completed)
		assert.Equal(t, []string{shown}, store.items[state.SessionID])
	})
}

func TestEngineEnd(t *testing.T) {
	ctx := context.Background()

	start := func(t *testing.T, store SessionStore, timeLimit int) *State[catalog.ChordType] {
		t.Helper()
		eng := chordEngine(store)
		state, err := eng.Start(ctx, timeLimit, []catalog.ChordType{catalog.ChordMajor})
		require.NoError(t, err)
		return state
	}

	t.Run("counts the item on display", func(t *testing.T) {
		store := newFakeStore()
		eng := chordEngine(store)
		state := start(t, store, 10)

		var err error
		for i := 0; i < 5; i++ {
			state, err = eng.Advance(ctx, state)
			require.NoError(t, err)
		}

		sum, err := eng.End(ctx, state)
		require.NoError(t, err)

		assert.Equal(t, 6, sum.TotalItems)
		assert.Len(t, store.items[state.SessionID], 6)
		assert.True(t, store.closed[state.SessionID])
	})

	t.Run("duration rounds to one decimal", func(t *testing.T) {
		tests := []struct {
			name      string
			timeLimit int
			advances  int
			want      float64
		}{
			{"6 items at 10s", 10, 5, 1.0},
			{"3 items at 7s", 7, 2, 0.4},
			{"1 item at 3s", 3, 0, 0.1},
			{"1 item at 60s", 60, 0, 1.0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := newFakeStore()
				eng := chordEngine(store)
				state := start(t, store, tt.timeLimit)

				var err error
				for i := 0; i < tt.advances; i++ {
					state, err = eng.Advance(ctx, state)
					require.NoError(t, err)
				}

				sum, err := eng.End(ctx, state)
				require.NoError(t, err)
				assert.InDelta(t, tt.want, sum.DurationMinutes, 1e-9)
			})
		}
	})

	t.Run("no active session", func(t *testing.T) {
		eng := chordEngine(newFakeStore())
		_, err := eng.End(ctx, nil)
		assert.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("close failure surfaces", func(t *testing.T) {
		store := newFakeStore()
		eng := chordEngine(store)
		state := start(t, store, 10)

		store.closeErr = errors.New("locked")
		_, err := eng.End(ctx, state)
		var perr *PersistenceError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "close session", perr.Op)
	})
}

func TestSummaryTimestamps(t *testing.T) {
	store := newFakeStore()
	eng := chordEngine(store)
	fixed := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	eng.now = func() time.Time { return fixed }

	state, err := eng.Start(context.Background(), 10, []catalog.ChordType{catalog.ChordMajor})
	require.NoError(t, err)
	assert.Equal(t, fixed, state.StartedAt)

	sum, err := eng.End(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, fixed, sum.StartedAt)
	assert.Equal(t, fixed, sum.EndedAt)
	assert.Equal(t, state.SessionID, sum.SessionID)
}
