// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jazzgym/ent/predicate"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/abhisek/jazzgym/ent/sessionscale"
)

// ScaleSessionUpdate is the builder for updating ScaleSession entities.
type ScaleSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ScaleSessionMutation
}

// Where appends a list predicates to the ScaleSessionUpdate builder.
func (_u *ScaleSessionUpdate) Where(ps ...predicate.ScaleSession) *ScaleSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ScaleSessionUpdate) SetEndedAt(v time.Time) *ScaleSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ScaleSessionUpdate) SetNillableEndedAt(v *time.Time) *ScaleSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ScaleSessionUpdate) ClearEndedAt() *ScaleSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *ScaleSessionUpdate) SetItemCount(v int) *ScaleSessionUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *ScaleSessionUpdate) SetNillableItemCount(v *int) *ScaleSessionUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *ScaleSessionUpdate) AddItemCount(v int) *ScaleSessionUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetTimeLimit sets the "time_limit" field.
func (_u *ScaleSessionUpdate) SetTimeLimit(v int) *ScaleSessionUpdate {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *ScaleSessionUpdate) SetNillableTimeLimit(v *int) *ScaleSessionUpdate {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *ScaleSessionUpdate) AddTimeLimit(v int) *ScaleSessionUpdate {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// AddScaleIDs adds the "scales" edge to the SessionScale entity by IDs.
func (_u *ScaleSessionUpdate) AddScaleIDs(ids ...int) *ScaleSessionUpdate {
	_u.mutation.AddScaleIDs(ids...)
	return _u
}

// AddScales adds the "scales" edges to the SessionScale entity.
func (_u *ScaleSessionUpdate) AddScales(v ...*SessionScale) *ScaleSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScaleIDs(ids...)
}

// Mutation returns the ScaleSessionMutation object of the builder.
func (_u *ScaleSessionUpdate) Mutation() *ScaleSessionMutation {
	return _u.mutation
}

// ClearScales clears all "scales" edges to the SessionScale entity.
func (_u *ScaleSessionUpdate) ClearScales() *ScaleSessionUpdate {
	_u.mutation.ClearScales()
	return _u
}

// RemoveScaleIDs removes the "scales" edge to SessionScale entities by IDs.
func (_u *ScaleSessionUpdate) RemoveScaleIDs(ids ...int) *ScaleSessionUpdate {
	_u.mutation.RemoveScaleIDs(ids...)
	return _u
}

// RemoveScales removes "scales" edges to SessionScale entities.
func (_u *ScaleSessionUpdate) RemoveScales(v ...*SessionScale) *ScaleSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScaleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScaleSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScaleSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScaleSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScaleSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScaleSessionUpdate) check() error {
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := scalesession.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "ScaleSession.item_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ScaleSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scalesession.Table, scalesession.Columns, sqlgraph.NewFieldSpec(scalesession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(scalesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(scalesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(scalesession.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(scalesession.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(scalesession.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(scalesession.FieldTimeLimit, field.TypeInt, value)
	}
	if _u.mutation.ScalesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScalesIDs(); len(nodes) > 0 && !_u.mutation.ScalesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScalesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scalesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScaleSessionUpdateOne is the builder for updating a single ScaleSession entity.
type ScaleSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScaleSessionMutation
}

// SetEndedAt sets the "ended_at" field.
func (_u *ScaleSessionUpdateOne) SetEndedAt(v time.Time) *ScaleSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ScaleSessionUpdateOne) SetNillableEndedAt(v *time.Time) *ScaleSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ScaleSessionUpdateOne) ClearEndedAt() *ScaleSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *ScaleSessionUpdateOne) SetItemCount(v int) *ScaleSessionUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *ScaleSessionUpdateOne) SetNillableItemCount(v *int) *ScaleSessionUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *ScaleSessionUpdateOne) AddItemCount(v int) *ScaleSessionUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetTimeLimit sets the "time_limit" field.
func (_u *ScaleSessionUpdateOne) SetTimeLimit(v int) *ScaleSessionUpdateOne {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *ScaleSessionUpdateOne) SetNillableTimeLimit(v *int) *ScaleSessionUpdateOne {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *ScaleSessionUpdateOne) AddTimeLimit(v int) *ScaleSessionUpdateOne {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// AddScaleIDs adds the "scales" edge to the SessionScale entity by IDs.
func (_u *ScaleSessionUpdateOne) AddScaleIDs(ids ...int) *ScaleSessionUpdateOne {
	_u.mutation.AddScaleIDs(ids...)
	return _u
}

// AddScales adds the "scales" edges to the SessionScale entity.
func (_u *ScaleSessionUpdateOne) AddScales(v ...*SessionScale) *ScaleSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScaleIDs(ids...)
}

// Mutation returns the ScaleSessionMutation object of the builder.
func (_u *ScaleSessionUpdateOne) Mutation() *ScaleSessionMutation {
	return _u.mutation
}

// ClearScales clears all "scales" edges to the SessionScale entity.
func (_u *ScaleSessionUpdateOne) ClearScales() *ScaleSessionUpdateOne {
	_u.mutation.ClearScales()
	return _u
}

// RemoveScaleIDs removes the "scales" edge to SessionScale entities by IDs.
func (_u *ScaleSessionUpdateOne) RemoveScaleIDs(ids ...int) *ScaleSessionUpdateOne {
	_u.mutation.RemoveScaleIDs(ids...)
	return _u
}

// RemoveScales removes "scales" edges to SessionScale entities.
func (_u *ScaleSessionUpdateOne) RemoveScales(v ...*SessionScale) *ScaleSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScaleIDs(ids...)
}

// Where appends a list predicates to the ScaleSessionUpdate builder.
func (_u *ScaleSessionUpdateOne) Where(ps ...predicate.ScaleSession) *ScaleSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScaleSessionUpdateOne) Select(field string, fields ...string) *ScaleSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScaleSession entity.
func (_u *ScaleSessionUpdateOne) Save(ctx context.Context) (*ScaleSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScaleSessionUpdateOne) SaveX(ctx context.Context) *ScaleSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScaleSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScaleSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScaleSessionUpdateOne) check() error {
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := scalesession.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "ScaleSession.item_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ScaleSessionUpdateOne) sqlSave(ctx context.Context) (_node *ScaleSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scalesession.Table, scalesession.Columns, sqlgraph.NewFieldSpec(scalesession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScaleSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scalesession.FieldID)
		for _, f := range fields {
			if !scalesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scalesession.FieldID {
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
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(scalesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(scalesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(scalesession.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(scalesession.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(scalesession.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(scalesession.FieldTimeLimit, field.TypeInt, value)
	}
	if _u.mutation.ScalesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScalesIDs(); len(nodes) > 0 && !_u.mutation.ScalesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScalesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScaleSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scalesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
