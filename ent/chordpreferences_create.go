// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jazzgym/ent/chordpreferences"
)

// ChordPreferencesCreate is the builder for creating a ChordPreferences entity.
type ChordPreferencesCreate struct {
	config
	mutation *ChordPreferencesMutation
	hooks    []Hook
}

// SetTimeLimit sets the "time_limit" field.
func (_c *ChordPreferencesCreate) SetTimeLimit(v int) *ChordPreferencesCreate {
	_c.mutation.SetTimeLimit(v)
	return _c
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_c *ChordPreferencesCreate) SetNillableTimeLimit(v *int) *ChordPreferencesCreate {
	if v != nil {
		_c.SetTimeLimit(*v)
	}
	return _c
}

// SetEnabledTypes sets the "enabled_types" field.
func (_c *ChordPreferencesCreate) SetEnabledTypes(v []string) *ChordPreferencesCreate {
	_c.mutation.SetEnabledTypes(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ChordPreferencesCreate) SetID(v int) *ChordPreferencesCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChordPreferencesCreate) SetNillableID(v *int) *ChordPreferencesCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChordPreferencesMutation object of the builder.
func (_c *ChordPreferencesCreate) Mutation() *ChordPreferencesMutation {
	return _c.mutation
}

// Save creates the ChordPreferences in the database.
func (_c *ChordPreferencesCreate) Save(ctx context.Context) (*ChordPreferences, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChordPreferencesCreate) SaveX(ctx context.Context) *ChordPreferences {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChordPreferencesCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChordPreferencesCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChordPreferencesCreate) defaults() {
	if _, ok := _c.mutation.TimeLimit(); !ok {
		v := chordpreferences.DefaultTimeLimit
		_c.mutation.SetTimeLimit(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := chordpreferences.DefaultID
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChordPreferencesCreate) check() error {
	if _, ok := _c.mutation.TimeLimit(); !ok {
		return &ValidationError{Name: "time_limit", err: errors.New(`ent: missing required field "ChordPreferences.time_limit"`)}
	}
	if _, ok := _c.mutation.EnabledTypes(); !ok {
		return &ValidationError{Name: "enabled_types", err: errors.New(`ent: missing required field "ChordPreferences.enabled_types"`)}
	}
	return nil
}

func (_c *ChordPreferencesCreate) sqlSave(ctx context.Context) (*ChordPreferences, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChordPreferencesCreate) createSpec() (*ChordPreferences, *sqlgraph.CreateSpec) {
	var (
		_node = &ChordPreferences{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chordpreferences.Table, sqlgraph.NewFieldSpec(chordpreferences.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TimeLimit(); ok {
		_spec.SetField(chordpreferences.FieldTimeLimit, field.TypeInt, value)
		_node.TimeLimit = value
	}
	if value, ok := _c.mutation.EnabledTypes(); ok {
		_spec.SetField(chordpreferences.FieldEnabledTypes, field.TypeJSON, value)
		_node.EnabledTypes = value
	}
	return _node, _spec
}

// ChordPreferencesCreateBulk is the builder for creating many ChordPreferences entities in bulk.
type ChordPreferencesCreateBulk struct {
	config
	err      error
	builders []*ChordPreferencesCreate
}

// Save creates the ChordPreferences entities in the database.
func (_c *ChordPreferencesCreateBulk) Save(ctx context.Context) ([]*ChordPreferences, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChordPreferences, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChordPreferencesMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChordPreferencesCreateBulk) SaveX(ctx context.Context) []*ChordPreferences {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChordPreferencesCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChordPreferencesCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
