// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/abhisek/jazzgym/ent/sessionscale"
	"github.com/google/uuid"
)

// SessionScaleCreate is the builder for creating a SessionScale entity.
type SessionScaleCreate struct {
	config
	mutation *SessionScaleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SessionScaleCreate) SetName(v string) *SessionScaleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDisplayedAt sets the "displayed_at" field.
func (_c *SessionScaleCreate) SetDisplayedAt(v time.Time) *SessionScaleCreate {
	_c.mutation.SetDisplayedAt(v)
	return _c
}

// SetNillableDisplayedAt sets the "displayed_at" field if the given value is not nil.
func (_c *SessionScaleCreate) SetNillableDisplayedAt(v *time.Time) *SessionScaleCreate {
	if v != nil {
		_c.SetDisplayedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session" edge to the ScaleSession entity by ID.
func (_c *SessionScaleCreate) SetSessionID(id uuid.UUID) *SessionScaleCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetSession sets the "session" edge to the ScaleSession entity.
func (_c *SessionScaleCreate) SetSession(v *ScaleSession) *SessionScaleCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionScaleMutation object of the builder.
func (_c *SessionScaleCreate) Mutation() *SessionScaleMutation {
	return _c.mutation
}

// Save creates the SessionScale in the database.
func (_c *SessionScaleCreate) Save(ctx context.Context) (*SessionScale, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionScaleCreate) SaveX(ctx context.Context) *SessionScale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionScaleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionScaleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionScaleCreate) defaults() {
	if _, ok := _c.mutation.DisplayedAt(); !ok {
		v := sessionscale.DefaultDisplayedAt()
		_c.mutation.SetDisplayedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionScaleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SessionScale.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := sessionscale.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SessionScale.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayedAt(); !ok {
		return &ValidationError{Name: "displayed_at", err: errors.New(`ent: missing required field "SessionScale.displayed_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionScale.session"`)}
	}
	return nil
}

func (_c *SessionScaleCreate) sqlSave(ctx context.Context) (*SessionScale, error) {
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

func (_c *SessionScaleCreate) createSpec() (*SessionScale, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionScale{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionscale.Table, sqlgraph.NewFieldSpec(sessionscale.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sessionscale.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DisplayedAt(); ok {
		_spec.SetField(sessionscale.FieldDisplayedAt, field.TypeTime, value)
		_node.DisplayedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionscale.SessionTable,
			Columns: []string{sessionscale.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scalesession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.scale_session_scales = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionScaleCreateBulk is the builder for creating many SessionScale entities in bulk.
type SessionScaleCreateBulk struct {
	config
	err      error
	builders []*SessionScaleCreate
}

// Save creates the SessionScale entities in the database.
func (_c *SessionScaleCreateBulk) Save(ctx context.Context) ([]*SessionScale, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionScale, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionScaleMutation)
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
func (_c *SessionScaleCreateBulk) SaveX(ctx context.Context) []*SessionScale {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionScaleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionScaleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
