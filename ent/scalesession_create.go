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

// ScaleSessionCreate is the builder for creating a ScaleSession entity.
type ScaleSessionCreate struct {
	config
	mutation *ScaleSessionMutation
	hooks    []Hook
}

// SetStartedAt sets the "started_at" field.
func (_c *ScaleSessionCreate) SetStartedAt(v time.Time) *ScaleSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ScaleSessionCreate) SetNillableStartedAt(v *time.Time) *ScaleSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *ScaleSessionCreate) SetEndedAt(v time.Time) *ScaleSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *ScaleSessionCreate) SetNillableEndedAt(v *time.Time) *ScaleSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *ScaleSessionCreate) SetItemCount(v int) *ScaleSessionCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *ScaleSessionCreate) SetNillableItemCount(v *int) *ScaleSessionCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// SetTimeLimit sets the "time_limit" field.
func (_c *ScaleSessionCreate) SetTimeLimit(v int) *ScaleSessionCreate {
	_c.mutation.SetTimeLimit(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScaleSessionCreate) SetID(v uuid.UUID) *ScaleSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScaleSessionCreate) SetNillableID(v *uuid.UUID) *ScaleSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddScaleIDs adds the "scales" edge to the SessionScale entity by IDs.
func (_c *ScaleSessionCreate) AddScaleIDs(ids ...int) *ScaleSessionCreate {
	_c.mutation.AddScaleIDs(ids...)
	return _c
}

// AddScales adds the "scales" edges to the SessionScale entity.
func (_c *ScaleSessionCreate) AddScales(v ...*SessionScale) *ScaleSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScaleIDs(ids...)
}

// Mutation returns the ScaleSessionMutation object of the builder.
func (_c *ScaleSessionCreate) Mutation() *ScaleSessionMutation {
	return _c.mutation
}

// Save creates the ScaleSession in the database.
func (_c *ScaleSessionCreate) Save(ctx context.Context) (*ScaleSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScaleSessionCreate) SaveX(ctx context.Context) *ScaleSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScaleSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScaleSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScaleSessionCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := scalesession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := scalesession.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scalesession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScaleSessionCreate) check() error {
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ScaleSession.started_at"`)}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "ScaleSession.item_count"`)}
	}
	if v, ok := _c.mutation.ItemCount(); ok {
		if err := scalesession.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "ScaleSession.item_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeLimit(); !ok {
		return &ValidationError{Name: "time_limit", err: errors.New(`ent: missing required field "ScaleSession.time_limit"`)}
	}
	return nil
}

func (_c *ScaleSessionCreate) sqlSave(ctx context.Context) (*ScaleSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScaleSessionCreate) createSpec() (*ScaleSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ScaleSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scalesession.Table, sqlgraph.NewFieldSpec(scalesession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(scalesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(scalesession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(scalesession.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.TimeLimit(); ok {
		_spec.SetField(scalesession.FieldTimeLimit, field.TypeInt, value)
		_node.TimeLimit = value
	}
	if nodes := _c.mutation.ScalesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scalesession.ScalesTable,
			Columns: []string{scalesession.ScalesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionscale.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScaleSessionCreateBulk is the builder for creating many ScaleSession entities in bulk.
type ScaleSessionCreateBulk struct {
	config
	err      error
	builders []*ScaleSessionCreate
}

// Save creates the ScaleSession entities in the database.
func (_c *ScaleSessionCreateBulk) Save(ctx context.Context) ([]*ScaleSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScaleSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScaleSessionMutation)
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
func (_c *ScaleSessionCreateBulk) SaveX(ctx context.Context) []*ScaleSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScaleSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScaleSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
