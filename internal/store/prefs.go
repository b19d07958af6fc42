package store

import (
	"context"
	"fmt"

	"github.com/abhisek/jazzgym/ent"
	"github.com/abhisek/jazzgym/internal/catalog"
	"github.com/abhisek/jazzgym/internal/prefs"
)

// prefsID is the fixed id of each domain's singleton preferences row.
const prefsID = 1

// ChordPrefs persists the chord preferences singleton. Satisfies
// prefs.Store[catalog.ChordType].
type ChordPrefs struct {
	client *ent.Client
}

func (r *ChordPrefs) Load(ctx context.Context) (prefs.Preferences[catalog.ChordType], error) {
	row, err := r.client.ChordPreferences.Get(ctx, prefsID)
	if err != nil {
		if !ent.IsNotFound(err) {
			return prefs.Preferences[catalog.ChordType]{}, fmt.Errorf("load chord preferences: %w", err)
		}
		defaults := prefs.ChordDefaults()
		if err := r.create(ctx, defaults); err != nil {
			return prefs.Preferences[catalog.ChordType]{}, err
		}
		return defaults, nil
	}

	return prefs.Preferences[catalog.ChordType]{
		TimeLimit: row.TimeLimit,
		Enabled:   fromNames[catalog.ChordType](row.EnabledTypes),
	}, nil
}

func (r *ChordPrefs) Save(ctx context.Context, p prefs.Preferences[catalog.ChordType]) error {
	if err := prefs.Validate(p.TimeLimit, p.Enabled); err != nil {
		return err
	}

	err := r.client.ChordPreferences.UpdateOneID(prefsID).
		SetTimeLimit(p.TimeLimit).
		SetEnabledTypes(toNames(p.Enabled)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return r.create(ctx, p)
		}
		return fmt.Errorf("save chord preferences: %w", err)
	}
	return nil
}

func (r *ChordPrefs) create(ctx context.Context, p prefs.Preferences[catalog.ChordType]) error {
	_, err := r.client.ChordPreferences.Create().
		SetID(prefsID).
		SetTimeLimit(p.TimeLimit).
		SetEnabledTypes(toNames(p.Enabled)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create chord preferences: %w", err)
	}
	return nil
}

// ScalePrefs persists the scale preferences singleton. Satisfies
// prefs.Store[catalog.ScaleType].
type ScalePrefs struct {
	client *ent.Client
}

func (r *ScalePrefs) Load(ctx context.Context) (prefs.Preferences[catalog.ScaleType], error) {
	row, err := r.client.ScalePreferences.Get(ctx, prefsID)
	if err != nil {
		if !ent.IsNotFound(err) {
			return prefs.Preferences[catalog.ScaleType]{}, fmt.Errorf("load scale preferences: %w", err)
		}
		defaults := prefs.ScaleDefaults()
		if err := r.create(ctx, defaults); err != nil {
			return prefs.Preferences[catalog.ScaleType]{}, err
		}
		return defaults, nil
	}

	return prefs.Preferences[catalog.ScaleType]{
		TimeLimit: row.TimeLimit,
		Enabled:   fromNames[catalog.ScaleType](row.EnabledTypes),
	}, nil
}

func (r *ScalePrefs) Save(ctx context.Context, p prefs.Preferences[catalog.ScaleType]) error {
	if err := prefs.Validate(p.TimeLimit, p.Enabled); err != nil {
		return err
	}

	err := r.client.ScalePreferences.UpdateOneID(prefsID).
		SetTimeLimit(p.TimeLimit).
		SetEnabledTypes(toNames(p.Enabled)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return r.create(ctx, p)
		}
		return fmt.Errorf("save scale preferences: %w", err)
	}
	return nil
}

func (r *ScalePrefs) create(ctx context.Context, p prefs.Preferences[catalog.ScaleType]) error {
	_, err := r.client.ScalePreferences.Create().
		SetID(prefsID).
		SetTimeLimit(p.TimeLimit).
		SetEnabledTypes(toNames(p.Enabled)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create scale preferences: %w", err)
	}
	return nil
}

func toNames[C ~string](categories []C) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

func fromNames[C ~string](names []string) []C {
	out := make([]C, len(names))
	for i, n := range names {
		out[i] = C(n)
	}
	return out
}
