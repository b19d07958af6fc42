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
	"github.com/abhisek/jazzgym/ent/chordpreferences"
	"github.com/abhisek/jazzgym/ent/predicate"
)

// ChordPreferencesUpdate is the builder for updating ChordPreferences entities.
type ChordPreferencesUpdate struct {
	config
	hooks    []Hook
	mutation *ChordPreferencesMutation
}

// Where appends a list predicates to the ChordPreferencesUpdate builder.
func (_u *ChordPreferencesUpdate) Where(ps ...predicate.ChordPreferences) *ChordPreferencesUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimeLimit sets the "time_limit" field.
func (_u *ChordPreferencesUpdate) SetTimeLimit(v int) *ChordPreferencesUpdate {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *ChordPreferencesUpdate) SetNillableTimeLimit(v *int) *ChordPreferencesUpdate {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *ChordPreferencesUpdate) AddTimeLimit(v int) *ChordPreferencesUpdate {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// SetEnabledTypes sets the "enabled_types" field.
func (_u *ChordPreferencesUpdate) SetEnabledTypes(v []string) *ChordPreferencesUpdate {
	_u.mutation.SetEnabledTypes(v)
	return _u
}

// AppendEnabledTypes appends value to the "enabled_types" field.
func (_u *ChordPreferencesUpdate) AppendEnabledTypes(v []string) *ChordPreferencesUpdate {
	_u.mutation.AppendEnabledTypes(v)
	return _u
}

// Mutation returns the ChordPreferencesMutation object of the builder.
func (_u *ChordPreferencesUpdate) Mutation() *ChordPreferencesMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChordPreferencesUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChordPreferencesUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChordPreferencesUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChordPreferencesUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChordPreferencesUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chordpreferences.Table, chordpreferences.Columns, sqlgraph.NewFieldSpec(chordpreferences.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(chordpreferences.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(chordpreferences.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnabledTypes(); ok {
		_spec.SetField(chordpreferences.FieldEnabledTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnabledTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chordpreferences.FieldEnabledTypes, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chordpreferences.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChordPreferencesUpdateOne is the builder for updating a single ChordPreferences entity.
type ChordPreferencesUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChordPreferencesMutation
}

// SetTimeLimit sets the "time_limit" field.
func (_u *ChordPreferencesUpdateOne) SetTimeLimit(v int) *ChordPreferencesUpdateOne {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *ChordPreferencesUpdateOne) SetNillableTimeLimit(v *int) *ChordPreferencesUpdateOne {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *ChordPreferencesUpdateOne) AddTimeLimit(v int) *ChordPreferencesUpdateOne {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// SetEnabledTypes sets the "enabled_types" field.
func (_u *ChordPreferencesUpdateOne) SetEnabledTypes(v []string) *ChordPreferencesUpdateOne {
	_u.mutation.SetEnabledTypes(v)
	return _u
}

// AppendEnabledTypes appends value to the "enabled_types" field.
func (_u *ChordPreferencesUpdateOne) AppendEnabledTypes(v []string) *ChordPreferencesUpdateOne {
	_u.mutation.AppendEnabledTypes(v)
	return _u
}

// Mutation returns the ChordPreferencesMutation object of the builder.
func (_u *ChordPreferencesUpdateOne) Mutation() *ChordPreferencesMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChordPreferencesUpdate builder.
func (_u *ChordPreferencesUpdateOne) Where(ps ...predicate.ChordPreferences) *ChordPreferencesUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChordPreferencesUpdateOne) Select(field string, fields ...string) *ChordPreferencesUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChordPreferences entity.
func (_u *ChordPreferencesUpdateOne) Save(ctx context.Context) (*ChordPreferences, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChordPreferencesUpdateOne) SaveX(ctx context.Context) *ChordPreferences {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChordPreferencesUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChordPreferencesUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChordPreferencesUpdateOne) sqlSave(ctx context.Context) (_node *ChordPreferences, err error) {
	_spec := sqlgraph.NewUpdateSpec(chordpreferences.Table, chordpreferences.Columns, sqlgraph.NewFieldSpec(chordpreferences.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChordPreferences.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chordpreferences.FieldID)
		for _, f := range fields {
			if !chordpreferences.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chordpreferences.FieldID {
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
		_spec.SetField(chordpreferences.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(chordpreferences.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnabledTypes(); ok {
		_spec.SetField(chordpreferences.FieldEnabledTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnabledTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chordpreferences.FieldEnabledTypes, value)
		})
	}
	_node = &ChordPreferences{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chordpreferences.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
