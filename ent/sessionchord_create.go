// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jazzgym/ent/practicesession"
	"github.com/abhisek/jazzgym/ent/sessionchord"
	"github.com/google/uuid"
)

// SessionChordCreate is the builder for creating a SessionChord entity.
type SessionChordCreate struct {
	config
	mutation *SessionChordMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SessionChordCreate) SetName(v string) *SessionChordCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDisplayedAt sets the "displayed_at" field.
func (_c *SessionChordCreate) SetDisplayedAt(v time.Time) *SessionChordCreate {
	_c.mutation.SetDisplayedAt(v)
	return _c
}

// SetNillableDisplayedAt sets the "displayed_at" field if the given value is not nil.
func (_c *SessionChordCreate) SetNillableDisplayedAt(v *time.Time) *SessionChordCreate {
	if v != nil {
		_c.SetDisplayedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session" edge to the PracticeSession entity by ID.
func (_c *SessionChordCreate) SetSessionID(id uuid.UUID) *SessionChordCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetSession sets the "session" edge to the PracticeSession entity.
func (_c *SessionChordCreate) SetSession(v *PracticeSession) *SessionChordCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionChordMutation object of the builder.
func (_c *SessionChordCreate) Mutation() *SessionChordMutation {
	return _c.mutation
}

// Save creates the SessionChord in the database.
func (_c *SessionChordCreate) Save(ctx context.Context) (*SessionChord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionChordCreate) SaveX(ctx context.Context) *SessionChord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionChordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionChordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionChordCreate) defaults() {
	if _, ok := _c.mutation.DisplayedAt(); !ok {
		v := sessionchord.DefaultDisplayedAt()
		_c.mutation.SetDisplayedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionChordCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SessionChord.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := sessionchord.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SessionChord.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayedAt(); !ok {
		return &ValidationError{Name: "displayed_at", err: errors.New(`ent: missing required field "SessionChord.displayed_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionChord.session"`)}
	}
	return nil
}

func (_c *SessionChordCreate) sqlSave(ctx context.Context) (*SessionChord, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionChordCreate) createSpec() (*SessionChord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionChord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionchord.Table, sqlgraph.NewFieldSpec(sessionchord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sessionchord.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DisplayedAt(); ok {
		_spec.SetField(sessionchord.FieldDisplayedAt, field.TypeTime, value)
		_node.DisplayedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionchord.SessionTable,
			Columns: []string{sessionchord.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.practice_session_chords = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionChordCreateBulk is the builder for creating many SessionChord entities in bulk.
type SessionChordCreateBulk struct {
	config
	err      error
	builders []*SessionChordCreate
}

// Save creates the SessionChord entities in the database.
func (_c *SessionChordCreateBulk) Save(ctx context.Context) ([]*SessionChord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionChord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionChordMutation)
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
				if specs[i].ID.Value != nil {
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
func (_c *SessionChordCreateBulk) SaveX(ctx context.Context) []*SessionChord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionChordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionChordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
