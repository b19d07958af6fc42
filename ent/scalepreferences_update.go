// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jazzgym/ent/predicate"
	"github.com/abhisek/jazzgym/ent/scalepreferences"
)

// ScalePreferencesUpdate is the builder for updating ScalePreferences entities.
type ScalePreferencesUpdate struct {
	config
	hooks    []Hook
	mutation *ScalePreferencesMutation
}

// Where appends a list predicates to the ScalePreferencesUpdate builder.
func (_u *ScalePreferencesUpdate) Where(ps ...predicate.ScalePreferences) *ScalePreferencesUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimeLimit sets the "time_limit" field.
func (_u *ScalePreferencesUpdate) SetTimeLimit(v int) *ScalePreferencesUpdate {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *ScalePreferencesUpdate) SetNillableTimeLimit(v *int) *ScalePreferencesUpdate {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *ScalePreferencesUpdate) AddTimeLimit(v int) *ScalePreferencesUpdate {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// SetEnabledTypes sets the "enabled_types" field.
func (_u *ScalePreferencesUpdate) SetEnabledTypes(v []string) *ScalePreferencesUpdate {
	_u.mutation.SetEnabledTypes(v)
	return _u
}

// AppendEnabledTypes appends value to the "enabled_types" field.
func (_u *ScalePreferencesUpdate) AppendEnabledTypes(v []string) *ScalePreferencesUpdate {
	_u.mutation.AppendEnabledTypes(v)
	return _u
}

// Mutation returns the ScalePreferencesMutation object of the builder.
func (_u *ScalePreferencesUpdate) Mutation() *ScalePreferencesMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScalePreferencesUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScalePreferencesUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScalePreferencesUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScalePreferencesUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScalePreferencesUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scalepreferences.Table, scalepreferences.Columns, sqlgraph.NewFieldSpec(scalepreferences.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(scalepreferences.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(scalepreferences.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnabledTypes(); ok {
		_spec.SetField(scalepreferences.FieldEnabledTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnabledTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scalepreferences.FieldEnabledTypes, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scalepreferences.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScalePreferencesUpdateOne is the builder for updating a single ScalePreferences entity.
type ScalePreferencesUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScalePreferencesMutation
}

// SetTimeLimit sets the "time_limit" field.
func (_u *ScalePreferencesUpdateOne) SetTimeLimit(v int) *ScalePreferencesUpdateOne {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *ScalePreferencesUpdateOne) SetNillableTimeLimit(v *int) *ScalePreferencesUpdateOne {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *ScalePreferencesUpdateOne) AddTimeLimit(v int) *ScalePreferencesUpdateOne {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// SetEnabledTypes sets the "enabled_types" field.
func (_u *ScalePreferencesUpdateOne) SetEnabledTypes(v []string) *ScalePreferencesUpdateOne {
	_u.mutation.SetEnabledTypes(v)
	return _u
}

// AppendEnabledTypes appends value to the "enabled_types" field.
func (_u *ScalePreferencesUpdateOne) AppendEnabledTypes(v []string) *ScalePreferencesUpdateOne {
	_u.mutation.AppendEnabledTypes(v)
	return _u
}

// Mutation returns the ScalePreferencesMutation object of the builder.
func (_u *ScalePreferencesUpdateOne) Mutation() *ScalePreferencesMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScalePreferencesUpdate builder.
func (_u *ScalePreferencesUpdateOne) Where(ps ...predicate.ScalePreferences) *ScalePreferencesUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScalePreferencesUpdateOne) Select(field string, fields ...string) *ScalePreferencesUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScalePreferences entity.
func (_u *ScalePreferencesUpdateOne) Save(ctx context.Context) (*ScalePreferences, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScalePreferencesUpdateOne) SaveX(ctx context.Context) *ScalePreferences {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScalePreferencesUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScalePreferencesUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScalePreferencesUpdateOne) sqlSave(ctx context.Context) (_node *ScalePreferences, err error) {
	_spec := sqlgraph.NewUpdateSpec(scalepreferences.Table, scalepreferences.Columns, sqlgraph.NewFieldSpec(scalepreferences.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScalePreferences.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scalepreferences.FieldID)
		for _, f := range fields {
			if !scalepreferences.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scalepreferences.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(scalepreferences.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(scalepreferences.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnabledTypes(); ok {
		_spec.SetField(scalepreferences.FieldEnabledTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnabledTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scalepreferences.FieldEnabledTypes, value)
		})
	}
	_node = &ScalePreferences{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scalepreferences.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
