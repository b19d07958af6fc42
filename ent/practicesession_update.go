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
	"github.com/abhisek/jazzgym/ent/practicesession"
	"github.com/abhisek/jazzgym/ent/predicate"
	"github.com/abhisek/jazzgym/ent/sessionchord"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PracticeSessionUpdate) SetEndedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableEndedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PracticeSessionUpdate) ClearEndedAt() *PracticeSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *PracticeSessionUpdate) SetItemCount(v int) *PracticeSessionUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableItemCount(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *PracticeSessionUpdate) AddItemCount(v int) *PracticeSessionUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetTimeLimit sets the "time_limit" field.
func (_u *PracticeSessionUpdate) SetTimeLimit(v int) *PracticeSessionUpdate {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTimeLimit(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *PracticeSessionUpdate) AddTimeLimit(v int) *PracticeSessionUpdate {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// AddChordIDs adds the "chords" edge to the SessionChord entity by IDs.
func (_u *PracticeSessionUpdate) AddChordIDs(ids ...int) *PracticeSessionUpdate {
	_u.mutation.AddChordIDs(ids...)
	return _u
}

// AddChords adds the "chords" edges to the SessionChord entity.
func (_u *PracticeSessionUpdate) AddChords(v ...*SessionChord) *PracticeSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChordIDs(ids...)
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// ClearChords clears all "chords" edges to the SessionChord entity.
func (_u *PracticeSessionUpdate) ClearChords() *PracticeSessionUpdate {
	_u.mutation.ClearChords()
	return _u
}

// RemoveChordIDs removes the "chords" edge to SessionChord entities by IDs.
func (_u *PracticeSessionUpdate) RemoveChordIDs(ids ...int) *PracticeSessionUpdate {
	_u.mutation.RemoveChordIDs(ids...)
	return _u
}

// RemoveChords removes "chords" edges to SessionChord entities.
func (_u *PracticeSessionUpdate) RemoveChords(v ...*SessionChord) *PracticeSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := practicesession.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.item_count": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(practicesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(practicesession.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(practicesession.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(practicesession.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(practicesession.FieldTimeLimit, field.TypeInt, value)
	}
	if _u.mutation.ChordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   practicesession.ChordsTable,
			Columns: []string{practicesession.ChordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionchord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChordsIDs(); len(nodes) > 0 && !_u.mutation.ChordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   practicesession.ChordsTable,
			Columns: []string{practicesession.ChordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionchord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   practicesession.ChordsTable,
			Columns: []string{practicesession.ChordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionchord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetEndedAt sets the "ended_at" field.
func (_u *PracticeSessionUpdateOne) SetEndedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableEndedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PracticeSessionUpdateOne) ClearEndedAt() *PracticeSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *PracticeSessionUpdateOne) SetItemCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableItemCount(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *PracticeSessionUpdateOne) AddItemCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetTimeLimit sets the "time_limit" field.
func (_u *PracticeSessionUpdateOne) SetTimeLimit(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTimeLimit(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *PracticeSessionUpdateOne) AddTimeLimit(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// AddChordIDs adds the "chords" edge to the SessionChord entity by IDs.
func (_u *PracticeSessionUpdateOne) AddChordIDs(ids ...int) *PracticeSessionUpdateOne {
	_u.mutation.AddChordIDs(ids...)
	return _u
}

// AddChords adds the "chords" edges to the SessionChord entity.
func (_u *PracticeSessionUpdateOne) AddChords(v ...*SessionChord) *PracticeSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChordIDs(ids...)
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// ClearChords clears all "chords" edges to the SessionChord entity.
func (_u *PracticeSessionUpdateOne) ClearChords() *PracticeSessionUpdateOne {
	_u.mutation.ClearChords()
	return _u
}

// RemoveChordIDs removes the "chords" edge to SessionChord entities by IDs.
func (_u *PracticeSessionUpdateOne) RemoveChordIDs(ids ...int) *PracticeSessionUpdateOne {
	_u.mutation.RemoveChordIDs(ids...)
	return _u
}

// RemoveChords removes "chords" edges to SessionChord entities.
func (_u *PracticeSessionUpdateOne) RemoveChords(v ...*SessionChord) *PracticeSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChordIDs(ids...)
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := practicesession.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.item_count": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(practicesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(practicesession.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(practicesession.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(practicesession.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(practicesession.FieldTimeLimit, field.TypeInt, value)
	}
	if _u.mutation.ChordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   practicesession.ChordsTable,
			Columns: []string{practicesession.ChordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionchord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChordsIDs(); len(nodes) > 0 && !_u.mutation.ChordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   practicesession.ChordsTable,
			Columns: []string{practicesession.ChordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionchord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   practicesession.ChordsTable,
			Columns: []string{practicesession.ChordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionchord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
