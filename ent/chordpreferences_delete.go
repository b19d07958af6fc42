// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jazzgym/ent/chordpreferences"
	"github.com/abhisek/jazzgym/ent/predicate"
)

// ChordPreferencesDelete is the builder for deleting a ChordPreferences entity.
type ChordPreferencesDelete struct {
	config
	hooks    []Hook
	mutation *ChordPreferencesMutation
}

// Where appends a list predicates to the ChordPreferencesDelete builder.
func (_d *ChordPreferencesDelete) Where(ps ...predicate.ChordPreferences) *ChordPreferencesDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChordPreferencesDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChordPreferencesDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChordPreferencesDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(chordpreferences.Table, sqlgraph.NewFieldSpec(chordpreferences.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChordPreferencesDeleteOne is the builder for deleting a single ChordPreferences entity.
type ChordPreferencesDeleteOne struct {
	_d *ChordPreferencesDelete
}

// Where appends a list predicates to the ChordPreferencesDelete builder.
func (_d *ChordPreferencesDeleteOne) Where(ps ...predicate.ChordPreferences) *ChordPreferencesDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChordPreferencesDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{chordpreferences.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChordPreferencesDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
