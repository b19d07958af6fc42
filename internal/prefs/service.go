package prefs

import "context"

// Store persists one domain's preferences.
type Store[C ~string] interface {
	// Load returns the stored preferences, creating the domain defaults on
	// first use.
	Load(ctx context.Context) (Preferences[C], error)

	// Save replaces the stored preferences. Implementations validate before
	// writing.
	Save(ctx context.Context, p Preferences[C]) error
}

// Update is a partial preferences change. Nil/empty fields keep the stored
// value.
type Update[C ~string] struct {
	TimeLimit *int
	Enabled   []C
}

// Service applies preference updates with validate-then-persist semantics.
// The speculative merge, the write, and the rollback re-fetch are one
// operation so callers can't interleave them incorrectly.
type Service[C ~string] struct {
	store Store[C]
}

// NewService creates a preferences service over the given store.
func NewService[C ~string](store Store[C]) *Service[C] {
	return &Service[C]{store: store}
}

// Load returns the current stored preferences.
func (s *Service[C]) Load(ctx context.Context) (Preferences[C], error) {
	return s.store.Load(ctx)
}

// Apply merges u over the stored preferences, validates, and persists.
// On any failure the speculative value is discarded and the authoritative
// stored preferences are re-fetched and returned alongside the error, so the
// caller's view never drifts from storage.
func (s *Service[C]) Apply(ctx context.Context, u Update[C]) (Preferences[C], error) {
	current, err := s.store.Load(ctx)
	if err != nil {
		return Preferences[C]{}, err
	}

	next := current
	if u.TimeLimit != nil {
		next.TimeLimit = *u.TimeLimit
	}
	if u.Enabled != nil {
		next.Enabled = u.Enabled
	}

	if err := Validate(next.TimeLimit, next.Enabled); err != nil {
		return current, err
	}

	if err := s.store.Save(ctx, next); err != nil {
		// Reconcile with whatever storage actually holds.
		if stored, loadErr := s.store.Load(ctx); loadErr == nil {
			return stored, err
		}
		return current, err
	}

	return next, nil
}
