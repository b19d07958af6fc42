// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jazzgym/ent/predicate"
	"github.com/abhisek/jazzgym/ent/scalepreferences"
)

// ScalePreferencesDelete is the builder for deleting a ScalePreferences entity.
type ScalePreferencesDelete struct {
	config
	hooks    []Hook
	mutation *ScalePreferencesMutation
}

// Where appends a list predicates to the ScalePreferencesDelete builder.
func (_d *ScalePreferencesDelete) Where(ps ...predicate.ScalePreferences) *ScalePreferencesDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScalePreferencesDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScalePreferencesDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScalePreferencesDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scalepreferences.Table, sqlgraph.NewFieldSpec(scalepreferences.FieldID, field.TypeInt))
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

// ScalePreferencesDeleteOne is the builder for deleting a single ScalePreferences entity.
type ScalePreferencesDeleteOne struct {
	_d *ScalePreferencesDelete
}

// Where appends a list predicates to the ScalePreferencesDelete builder.
func (_d *ScalePreferencesDeleteOne) Where(ps ...predicate.ScalePreferences) *ScalePreferencesDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScalePreferencesDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scalepreferences.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScalePreferencesDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
