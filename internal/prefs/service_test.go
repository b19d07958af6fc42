package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/jazzgym/internal/catalog"
)

type memStore struct {
	prefs   Preferences[catalog.ScaleType]
	saveErr error
	loadErr error
}

func (m *memStore) Load(ctx context.Context) (Preferences[catalog.ScaleType], error) {
	if m.loadErr != nil {
		return Preferences[catalog.ScaleType]{}, m.loadErr
	}
	return m.prefs, nil
}

func (m *memStore) Save(ctx context.Context, p Preferences[catalog.ScaleType]) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.prefs = p
	return nil
}

func TestServiceApply(t *testing.T) {
	ctx := context.Background()
	limit := func(n int) *int { return &n }

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		store := &memStore{prefs: ScaleDefaults()}
		svc := NewService[catalog.ScaleType](store)

		got, err := svc.Apply(ctx, Update[catalog.ScaleType]{TimeLimit: limit(20)})
		require.NoError(t, err)
		assert.Equal(t, 20, got.TimeLimit)
		assert.Equal(t, ScaleDefaults().Enabled, got.Enabled)
		assert.Equal(t, got, store.prefs)
	})

	t.Run("invalid update leaves storage untouched", func(t *testing.T) {
		store := &memStore{prefs: ScaleDefaults()}
		svc := NewService[catalog.ScaleType](store)

		got, err := svc.Apply(ctx, Update[catalog.ScaleType]{TimeLimit: limit(99)})
		assert.ErrorIs(t, err, ErrTimeLimitOutOfRange)
		assert.Equal(t, ScaleDefaults(), got)
		assert.Equal(t, ScaleDefaults(), store.prefs)
	})

	t.Run("empty category set rejected", func(t *testing.T) {
		store := &memStore{prefs: ScaleDefaults()}
		svc := NewService[catalog.ScaleType](store)

		_, err := svc.Apply(ctx, Update[catalog.ScaleType]{Enabled: []catalog.ScaleType{}})
		assert.ErrorIs(t, err, catalog.ErrNoCategoriesEnabled)
		assert.Equal(t, ScaleDefaults(), store.prefs)
	})

	t.Run("save failure returns authoritative stored prefs", func(t *testing.T) {
		store := &memStore{prefs: ScaleDefaults(), saveErr: errors.New("disk full")}
		svc := NewService[catalog.ScaleType](store)

		got, err := svc.Apply(ctx, Update[catalog.ScaleType]{TimeLimit: limit(30)})
		require.Error(t, err)
		assert.Equal(t, ScaleDefaults(), got)
	})
}
