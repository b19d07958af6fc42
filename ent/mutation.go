// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/jazzgym/ent/chordpreferences"
	"github.com/abhisek/jazzgym/ent/practicesession"
	"github.com/abhisek/jazzgym/ent/predicate"
	"github.com/abhisek/jazzgym/ent/scalepreferences"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/abhisek/jazzgym/ent/sessionchord"
	"github.com/abhisek/jazzgym/ent/sessionscale"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChordPreferences = "ChordPreferences"
	TypePracticeSession  = "PracticeSession"
	TypeScalePreferences = "ScalePreferences"
	TypeScaleSession     = "ScaleSession"
	TypeSessionChord     = "SessionChord"
	TypeSessionScale     = "SessionScale"
)

// ChordPreferencesMutation represents an operation that mutates the ChordPreferences nodes in the graph.
type ChordPreferencesMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	time_limit          *int
	addtime_limit       *int
	enabled_types       *[]string
	appendenabled_types []string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ChordPreferences, error)
	predicates          []predicate.ChordPreferences
}

var _ ent.Mutation = (*ChordPreferencesMutation)(nil)

// chordpreferencesOption allows management of the mutation configuration using functional options.
type chordpreferencesOption func(*ChordPreferencesMutation)

// newChordPreferencesMutation creates new mutation for the ChordPreferences entity.
func newChordPreferencesMutation(c config, op Op, opts ...chordpreferencesOption) *ChordPreferencesMutation {
	m := &ChordPreferencesMutation{
		config:        c,
		op:            op,
		typ:           TypeChordPreferences,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChordPreferencesID sets the ID field of the mutation.
func withChordPreferencesID(id int) chordpreferencesOption {
	return func(m *ChordPreferencesMutation) {
		var (
			err   error
			once  sync.Once
			value *ChordPreferences
		)
		m.oldValue = func(ctx context.Context) (*ChordPreferences, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChordPreferences.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChordPreferences sets the old ChordPreferences of the mutation.
func withChordPreferences(node *ChordPreferences) chordpreferencesOption {
	return func(m *ChordPreferencesMutation) {
		m.oldValue = func(context.Context) (*ChordPreferences, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChordPreferencesMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChordPreferencesMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChordPreferences entities.
func (m *ChordPreferencesMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChordPreferencesMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChordPreferencesMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChordPreferences.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimeLimit sets the "time_limit" field.
func (m *ChordPreferencesMutation) SetTimeLimit(i int) {
	m.time_limit = &i
	m.addtime_limit = nil
}

// TimeLimit returns the value of the "time_limit" field in the mutation.
func (m *ChordPreferencesMutation) TimeLimit() (r int, exists bool) {
	v := m.time_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimit returns the old "time_limit" field's value of the ChordPreferences entity.
// If the ChordPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChordPreferencesMutation) OldTimeLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimit: %w", err)
	}
	return oldValue.TimeLimit, nil
}

// AddTimeLimit adds i to the "time_limit" field.
func (m *ChordPreferencesMutation) AddTimeLimit(i int) {
	if m.addtime_limit != nil {
		*m.addtime_limit += i
	} else {
		m.addtime_limit = &i
	}
}

// AddedTimeLimit returns the value that was added to the "time_limit" field in this mutation.
func (m *ChordPreferencesMutation) AddedTimeLimit() (r int, exists bool) {
	v := m.addtime_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimit resets all changes to the "time_limit" field.
func (m *ChordPreferencesMutation) ResetTimeLimit() {
	m.time_limit = nil
	m.addtime_limit = nil
}

// SetEnabledTypes sets the "enabled_types" field.
func (m *ChordPreferencesMutation) SetEnabledTypes(s []string) {
	m.enabled_types = &s
	m.appendenabled_types = nil
}

// EnabledTypes returns the value of the "enabled_types" field in the mutation.
func (m *ChordPreferencesMutation) EnabledTypes() (r []string, exists bool) {
	v := m.enabled_types
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabledTypes returns the old "enabled_types" field's value of the ChordPreferences entity.
// If the ChordPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChordPreferencesMutation) OldEnabledTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabledTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabledTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabledTypes: %w", err)
	}
	return oldValue.EnabledTypes, nil
}

// AppendEnabledTypes adds s to the "enabled_types" field.
func (m *ChordPreferencesMutation) AppendEnabledTypes(s []string) {
	m.appendenabled_types = append(m.appendenabled_types, s...)
}

// AppendedEnabledTypes returns the list of values that were appended to the "enabled_types" field in this mutation.
func (m *ChordPreferencesMutation) AppendedEnabledTypes() ([]string, bool) {
	if len(m.appendenabled_types) == 0 {
		return nil, false
	}
	return m.appendenabled_types, true
}

// ResetEnabledTypes resets all changes to the "enabled_types" field.
func (m *ChordPreferencesMutation) ResetEnabledTypes() {
	m.enabled_types = nil
	m.appendenabled_types = nil
}

// Where appends a list predicates to the ChordPreferencesMutation builder.
func (m *ChordPreferencesMutation) Where(ps ...predicate.ChordPreferences) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChordPreferencesMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChordPreferencesMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChordPreferences, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChordPreferencesMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChordPreferencesMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChordPreferences).
func (m *ChordPreferencesMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChordPreferencesMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.time_limit != nil {
		fields = append(fields, chordpreferences.FieldTimeLimit)
	}
	if m.enabled_types != nil {
		fields = append(fields, chordpreferences.FieldEnabledTypes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChordPreferencesMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chordpreferences.FieldTimeLimit:
		return m.TimeLimit()
	case chordpreferences.FieldEnabledTypes:
		return m.EnabledTypes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChordPreferencesMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chordpreferences.FieldTimeLimit:
		return m.OldTimeLimit(ctx)
	case chordpreferences.FieldEnabledTypes:
		return m.OldEnabledTypes(ctx)
	}
	return nil, fmt.Errorf("unknown ChordPreferences field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChordPreferencesMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chordpreferences.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimit(v)
		return nil
	case chordpreferences.FieldEnabledTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabledTypes(v)
		return nil
	}
	return fmt.Errorf("unknown ChordPreferences field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChordPreferencesMutation) AddedFields() []string {
	var fields []string
	if m.addtime_limit != nil {
		fields = append(fields, chordpreferences.FieldTimeLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChordPreferencesMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chordpreferences.FieldTimeLimit:
		return m.AddedTimeLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChordPreferencesMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chordpreferences.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimit(v)
		return nil
	}
	return fmt.Errorf("unknown ChordPreferences numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChordPreferencesMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChordPreferencesMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChordPreferencesMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChordPreferences nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChordPreferencesMutation) ResetField(name string) error {
	switch name {
	case chordpreferences.FieldTimeLimit:
		m.ResetTimeLimit()
		return nil
	case chordpreferences.FieldEnabledTypes:
		m.ResetEnabledTypes()
		return nil
	}
	return fmt.Errorf("unknown ChordPreferences field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChordPreferencesMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChordPreferencesMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChordPreferencesMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChordPreferencesMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChordPreferencesMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChordPreferencesMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChordPreferencesMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChordPreferences unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChordPreferencesMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChordPreferences edge %s", name)
}

// PracticeSessionMutation represents an operation that mutates the PracticeSession nodes in the graph.
type PracticeSessionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	started_at    *time.Time
	ended_at      *time.Time
	item_count    *int
	additem_count *int
	time_limit    *int
	addtime_limit *int
	clearedFields map[string]struct{}
	chords        map[int]struct{}
	removedchords map[int]struct{}
	clearedchords bool
	done          bool
	oldValue      func(context.Context) (*PracticeSession, error)
	predicates    []predicate.PracticeSession
}

var _ ent.Mutation = (*PracticeSessionMutation)(nil)

// practicesessionOption allows management of the mutation configuration using functional options.
type practicesessionOption func(*PracticeSessionMutation)

// newPracticeSessionMutation creates new mutation for the PracticeSession entity.
func newPracticeSessionMutation(c config, op Op, opts ...practicesessionOption) *PracticeSessionMutation {
	m := &PracticeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeSessionID sets the ID field of the mutation.
func withPracticeSessionID(id uuid.UUID) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeSession
		)
		m.oldValue = func(ctx context.Context) (*PracticeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeSession sets the old PracticeSession of the mutation.
func withPracticeSession(node *PracticeSession) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		m.oldValue = func(context.Context) (*PracticeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PracticeSession entities.
func (m *PracticeSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStartedAt sets the "started_at" field.
func (m *PracticeSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PracticeSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PracticeSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *PracticeSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *PracticeSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *PracticeSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[practicesession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *PracticeSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *PracticeSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, practicesession.FieldEndedAt)
}

// SetItemCount sets the "item_count" field.
func (m *PracticeSessionMutation) SetItemCount(i int) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *PracticeSessionMutation) ItemCount() (r int, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *PracticeSessionMutation) AddItemCount(i int) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *PracticeSessionMutation) AddedItemCount() (r int, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *PracticeSessionMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
}

// SetTimeLimit sets the "time_limit" field.
func (m *PracticeSessionMutation) SetTimeLimit(i int) {
	m.time_limit = &i
	m.addtime_limit = nil
}

// TimeLimit returns the value of the "time_limit" field in the mutation.
func (m *PracticeSessionMutation) TimeLimit() (r int, exists bool) {
	v := m.time_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimit returns the old "time_limit" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTimeLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimit: %w", err)
	}
	return oldValue.TimeLimit, nil
}

// AddTimeLimit adds i to the "time_limit" field.
func (m *PracticeSessionMutation) AddTimeLimit(i int) {
	if m.addtime_limit != nil {
		*m.addtime_limit += i
	} else {
		m.addtime_limit = &i
	}
}

// AddedTimeLimit returns the value that was added to the "time_limit" field in this mutation.
func (m *PracticeSessionMutation) AddedTimeLimit() (r int, exists bool) {
	v := m.addtime_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimit resets all changes to the "time_limit" field.
func (m *PracticeSessionMutation) ResetTimeLimit() {
	m.time_limit = nil
	m.addtime_limit = nil
}

// AddChordIDs adds the "chords" edge to the SessionChord entity by ids.
func (m *PracticeSessionMutation) AddChordIDs(ids ...int) {
	if m.chords == nil {
		m.chords = make(map[int]struct{})
	}
	for i := range ids {
		m.chords[ids[i]] = struct{}{}
	}
}

// ClearChords clears the "chords" edge to the SessionChord entity.
func (m *PracticeSessionMutation) ClearChords() {
	m.clearedchords = true
}

// ChordsCleared reports if the "chords" edge to the SessionChord entity was cleared.
func (m *PracticeSessionMutation) ChordsCleared() bool {
	return m.clearedchords
}

// RemoveChordIDs removes the "chords" edge to the SessionChord entity by IDs.
func (m *PracticeSessionMutation) RemoveChordIDs(ids ...int) {
	if m.removedchords == nil {
		m.removedchords = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chords, ids[i])
		m.removedchords[ids[i]] = struct{}{}
	}
}

// RemovedChords returns the removed IDs of the "chords" edge to the SessionChord entity.
func (m *PracticeSessionMutation) RemovedChordsIDs() (ids []int) {
	for id := range m.removedchords {
		ids = append(ids, id)
	}
	return
}

// ChordsIDs returns the "chords" edge IDs in the mutation.
func (m *PracticeSessionMutation) ChordsIDs() (ids []int) {
	for id := range m.chords {
		ids = append(ids, id)
	}
	return
}

// ResetChords resets all changes to the "chords" edge.
func (m *PracticeSessionMutation) ResetChords() {
	m.chords = nil
	m.clearedchords = false
	m.removedchords = nil
}

// Where appends a list predicates to the PracticeSessionMutation builder.
func (m *PracticeSessionMutation) Where(ps ...predicate.PracticeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeSession).
func (m *PracticeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.started_at != nil {
		fields = append(fields, practicesession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, practicesession.FieldEndedAt)
	}
	if m.item_count != nil {
		fields = append(fields, practicesession.FieldItemCount)
	}
	if m.time_limit != nil {
		fields = append(fields, practicesession.FieldTimeLimit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldStartedAt:
		return m.StartedAt()
	case practicesession.FieldEndedAt:
		return m.EndedAt()
	case practicesession.FieldItemCount:
		return m.ItemCount()
	case practicesession.FieldTimeLimit:
		return m.TimeLimit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case practicesession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case practicesession.FieldItemCount:
		return m.OldItemCount(ctx)
	case practicesession.FieldTimeLimit:
		return m.OldTimeLimit(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case practicesession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case practicesession.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case practicesession.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimit(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeSessionMutation) AddedFields() []string {
	var fields []string
	if m.additem_count != nil {
		fields = append(fields, practicesession.FieldItemCount)
	}
	if m.addtime_limit != nil {
		fields = append(fields, practicesession.FieldTimeLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldItemCount:
		return m.AddedItemCount()
	case practicesession.FieldTimeLimit:
		return m.AddedTimeLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	case practicesession.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimit(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicesession.FieldEndedAt) {
		fields = append(fields, practicesession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ClearField(name string) error {
	switch name {
	case practicesession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ResetField(name string) error {
	switch name {
	case practicesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case practicesession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case practicesession.FieldItemCount:
		m.ResetItemCount()
		return nil
	case practicesession.FieldTimeLimit:
		m.ResetTimeLimit()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chords != nil {
		edges = append(edges, practicesession.EdgeChords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case practicesession.EdgeChords:
		ids := make([]ent.Value, 0, len(m.chords))
		for id := range m.chords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedchords != nil {
		edges = append(edges, practicesession.EdgeChords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case practicesession.EdgeChords:
		ids := make([]ent.Value, 0, len(m.removedchords))
		for id := range m.removedchords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchords {
		edges = append(edges, practicesession.EdgeChords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case practicesession.EdgeChords:
		return m.clearedchords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PracticeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeSessionMutation) ResetEdge(name string) error {
	switch name {
	case practicesession.EdgeChords:
		m.ResetChords()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession edge %s", name)
}

// ScalePreferencesMutation represents an operation that mutates the ScalePreferences nodes in the graph.
type ScalePreferencesMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	time_limit          *int
	addtime_limit       *int
	enabled_types       *[]string
	appendenabled_types []string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ScalePreferences, error)
	predicates          []predicate.ScalePreferences
}

var _ ent.Mutation = (*ScalePreferencesMutation)(nil)

// scalepreferencesOption allows management of the mutation configuration using functional options.
type scalepreferencesOption func(*ScalePreferencesMutation)

// newScalePreferencesMutation creates new mutation for the ScalePreferences entity.
func newScalePreferencesMutation(c config, op Op, opts ...scalepreferencesOption) *ScalePreferencesMutation {
	m := &ScalePreferencesMutation{
		config:        c,
		op:            op,
		typ:           TypeScalePreferences,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScalePreferencesID sets the ID field of the mutation.
func withScalePreferencesID(id int) scalepreferencesOption {
	return func(m *ScalePreferencesMutation) {
		var (
			err   error
			once  sync.Once
			value *ScalePreferences
		)
		m.oldValue = func(ctx context.Context) (*ScalePreferences, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScalePreferences.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScalePreferences sets the old ScalePreferences of the mutation.
func withScalePreferences(node *ScalePreferences) scalepreferencesOption {
	return func(m *ScalePreferencesMutation) {
		m.oldValue = func(context.Context) (*ScalePreferences, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScalePreferencesMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScalePreferencesMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScalePreferences entities.
func (m *ScalePreferencesMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScalePreferencesMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScalePreferencesMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScalePreferences.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimeLimit sets the "time_limit" field.
func (m *ScalePreferencesMutation) SetTimeLimit(i int) {
	m.time_limit = &i
	m.addtime_limit = nil
}

// TimeLimit returns the value of the "time_limit" field in the mutation.
func (m *ScalePreferencesMutation) TimeLimit() (r int, exists bool) {
	v := m.time_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimit returns the old "time_limit" field's value of the ScalePreferences entity.
// If the ScalePreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalePreferencesMutation) OldTimeLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimit: %w", err)
	}
	return oldValue.TimeLimit, nil
}

// AddTimeLimit adds i to the "time_limit" field.
func (m *ScalePreferencesMutation) AddTimeLimit(i int) {
	if m.addtime_limit != nil {
		*m.addtime_limit += i
	} else {
		m.addtime_limit = &i
	}
}

// AddedTimeLimit returns the value that was added to the "time_limit" field in this mutation.
func (m *ScalePreferencesMutation) AddedTimeLimit() (r int, exists bool) {
	v := m.addtime_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimit resets all changes to the "time_limit" field.
func (m *ScalePreferencesMutation) ResetTimeLimit() {
	m.time_limit = nil
	m.addtime_limit = nil
}

// SetEnabledTypes sets the "enabled_types" field.
func (m *ScalePreferencesMutation) SetEnabledTypes(s []string) {
	m.enabled_types = &s
	m.appendenabled_types = nil
}

// EnabledTypes returns the value of the "enabled_types" field in the mutation.
func (m *ScalePreferencesMutation) EnabledTypes() (r []string, exists bool) {
	v := m.enabled_types
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabledTypes returns the old "enabled_types" field's value of the ScalePreferences entity.
// If the ScalePreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScalePreferencesMutation) OldEnabledTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabledTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabledTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabledTypes: %w", err)
	}
	return oldValue.EnabledTypes, nil
}

// AppendEnabledTypes adds s to the "enabled_types" field.
func (m *ScalePreferencesMutation) AppendEnabledTypes(s []string) {
	m.appendenabled_types = append(m.appendenabled_types, s...)
}

// AppendedEnabledTypes returns the list of values that were appended to the "enabled_types" field in this mutation.
func (m *ScalePreferencesMutation) AppendedEnabledTypes() ([]string, bool) {
	if len(m.appendenabled_types) == 0 {
		return nil, false
	}
	return m.appendenabled_types, true
}

// ResetEnabledTypes resets all changes to the "enabled_types" field.
func (m *ScalePreferencesMutation) ResetEnabledTypes() {
	m.enabled_types = nil
	m.appendenabled_types = nil
}

// Where appends a list predicates to the ScalePreferencesMutation builder.
func (m *ScalePreferencesMutation) Where(ps ...predicate.ScalePreferences) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScalePreferencesMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScalePreferencesMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScalePreferences, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScalePreferencesMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScalePreferencesMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScalePreferences).
func (m *ScalePreferencesMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScalePreferencesMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.time_limit != nil {
		fields = append(fields, scalepreferences.FieldTimeLimit)
	}
	if m.enabled_types != nil {
		fields = append(fields, scalepreferences.FieldEnabledTypes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScalePreferencesMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scalepreferences.FieldTimeLimit:
		return m.TimeLimit()
	case scalepreferences.FieldEnabledTypes:
		return m.EnabledTypes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScalePreferencesMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scalepreferences.FieldTimeLimit:
		return m.OldTimeLimit(ctx)
	case scalepreferences.FieldEnabledTypes:
		return m.OldEnabledTypes(ctx)
	}
	return nil, fmt.Errorf("unknown ScalePreferences field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScalePreferencesMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scalepreferences.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimit(v)
		return nil
	case scalepreferences.FieldEnabledTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabledTypes(v)
		return nil
	}
	return fmt.Errorf("unknown ScalePreferences field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScalePreferencesMutation) AddedFields() []string {
	var fields []string
	if m.addtime_limit != nil {
		fields = append(fields, scalepreferences.FieldTimeLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScalePreferencesMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scalepreferences.FieldTimeLimit:
		return m.AddedTimeLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScalePreferencesMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scalepreferences.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimit(v)
		return nil
	}
	return fmt.Errorf("unknown ScalePreferences numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScalePreferencesMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScalePreferencesMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScalePreferencesMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScalePreferences nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScalePreferencesMutation) ResetField(name string) error {
	switch name {
	case scalepreferences.FieldTimeLimit:
		m.ResetTimeLimit()
		return nil
	case scalepreferences.FieldEnabledTypes:
		m.ResetEnabledTypes()
		return nil
	}
	return fmt.Errorf("unknown ScalePreferences field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScalePreferencesMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScalePreferencesMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScalePreferencesMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScalePreferencesMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScalePreferencesMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScalePreferencesMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScalePreferencesMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScalePreferences unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScalePreferencesMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScalePreferences edge %s", name)
}

// ScaleSessionMutation represents an operation that mutates the ScaleSession nodes in the graph.
type ScaleSessionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	started_at    *time.Time
	ended_at      *time.Time
	item_count    *int
	additem_count *int
	time_limit    *int
	addtime_limit *int
	clearedFields map[string]struct{}
	scales        map[int]struct{}
	removedscales map[int]struct{}
	clearedscales bool
	done          bool
	oldValue      func(context.Context) (*ScaleSession, error)
	predicates    []predicate.ScaleSession
}

var _ ent.Mutation = (*ScaleSessionMutation)(nil)

// scalesessionOption allows management of the mutation configuration using functional options.
type scalesessionOption func(*ScaleSessionMutation)

// newScaleSessionMutation creates new mutation for the ScaleSession entity.
func newScaleSessionMutation(c config, op Op, opts ...scalesessionOption) *ScaleSessionMutation {
	m := &ScaleSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeScaleSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScaleSessionID sets the ID field of the mutation.
func withScaleSessionID(id uuid.UUID) scalesessionOption {
	return func(m *ScaleSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ScaleSession
		)
		m.oldValue = func(ctx context.Context) (*ScaleSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScaleSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScaleSession sets the old ScaleSession of the mutation.
func withScaleSession(node *ScaleSession) scalesessionOption {
	return func(m *ScaleSessionMutation) {
		m.oldValue = func(context.Context) (*ScaleSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScaleSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScaleSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScaleSession entities.
func (m *ScaleSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScaleSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScaleSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScaleSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStartedAt sets the "started_at" field.
func (m *ScaleSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScaleSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScaleSession entity.
// If the ScaleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScaleSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScaleSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *ScaleSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *ScaleSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the ScaleSession entity.
// If the ScaleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScaleSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *ScaleSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[scalesession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *ScaleSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[scalesession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *ScaleSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, scalesession.FieldEndedAt)
}

// SetItemCount sets the "item_count" field.
func (m *ScaleSessionMutation) SetItemCount(i int) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *ScaleSessionMutation) ItemCount() (r int, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the ScaleSession entity.
// If the ScaleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScaleSessionMutation) OldItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *ScaleSessionMutation) AddItemCount(i int) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *ScaleSessionMutation) AddedItemCount() (r int, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *ScaleSessionMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
}

// SetTimeLimit sets the "time_limit" field.
func (m *ScaleSessionMutation) SetTimeLimit(i int) {
	m.time_limit = &i
	m.addtime_limit = nil
}

// TimeLimit returns the value of the "time_limit" field in the mutation.
func (m *ScaleSessionMutation) TimeLimit() (r int, exists bool) {
	v := m.time_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimit returns the old "time_limit" field's value of the ScaleSession entity.
// If the ScaleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScaleSessionMutation) OldTimeLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimit: %w", err)
	}
	return oldValue.TimeLimit, nil
}

// AddTimeLimit adds i to the "time_limit" field.
func (m *ScaleSessionMutation) AddTimeLimit(i int) {
	if m.addtime_limit != nil {
		*m.addtime_limit += i
	} else {
		m.addtime_limit = &i
	}
}

// AddedTimeLimit returns the value that was added to the "time_limit" field in this mutation.
func (m *ScaleSessionMutation) AddedTimeLimit() (r int, exists bool) {
	v := m.addtime_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimit resets all changes to the "time_limit" field.
func (m *ScaleSessionMutation) ResetTimeLimit() {
	m.time_limit = nil
	m.addtime_limit = nil
}

// AddScaleIDs adds the "scales" edge to the SessionScale entity by ids.
func (m *ScaleSessionMutation) AddScaleIDs(ids ...int) {
	if m.scales == nil {
		m.scales = make(map[int]struct{})
	}
	for i := range ids {
		m.scales[ids[i]] = struct{}{}
	}
}

// ClearScales clears the "scales" edge to the SessionScale entity.
func (m *ScaleSessionMutation) ClearScales() {
	m.clearedscales = true
}

// ScalesCleared reports if the "scales" edge to the SessionScale entity was cleared.
func (m *ScaleSessionMutation) ScalesCleared() bool {
	return m.clearedscales
}

// RemoveScaleIDs removes the "scales" edge to the SessionScale entity by IDs.
func (m *ScaleSessionMutation) RemoveScaleIDs(ids ...int) {
	if m.removedscales == nil {
		m.removedscales = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scales, ids[i])
		m.removedscales[ids[i]] = struct{}{}
	}
}

// RemovedScales returns the removed IDs of the "scales" edge to the SessionScale entity.
func (m *ScaleSessionMutation) RemovedScalesIDs() (ids []int) {
	for id := range m.removedscales {
		ids = append(ids, id)
	}
	return
}

// ScalesIDs returns the "scales" edge IDs in the mutation.
func (m *ScaleSessionMutation) ScalesIDs() (ids []int) {
	for id := range m.scales {
		ids = append(ids, id)
	}
	return
}

// ResetScales resets all changes to the "scales" edge.
func (m *ScaleSessionMutation) ResetScales() {
	m.scales = nil
	m.clearedscales = false
	m.removedscales = nil
}

// Where appends a list predicates to the ScaleSessionMutation builder.
func (m *ScaleSessionMutation) Where(ps ...predicate.ScaleSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScaleSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScaleSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScaleSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScaleSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScaleSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScaleSession).
func (m *ScaleSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScaleSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.started_at != nil {
		fields = append(fields, scalesession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, scalesession.FieldEndedAt)
	}
	if m.item_count != nil {
		fields = append(fields, scalesession.FieldItemCount)
	}
	if m.time_limit != nil {
		fields = append(fields, scalesession.FieldTimeLimit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScaleSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scalesession.FieldStartedAt:
		return m.StartedAt()
	case scalesession.FieldEndedAt:
		return m.EndedAt()
	case scalesession.FieldItemCount:
		return m.ItemCount()
	case scalesession.FieldTimeLimit:
		return m.TimeLimit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScaleSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scalesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scalesession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case scalesession.FieldItemCount:
		return m.OldItemCount(ctx)
	case scalesession.FieldTimeLimit:
		return m.OldTimeLimit(ctx)
	}
	return nil, fmt.Errorf("unknown ScaleSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScaleSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scalesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scalesession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case scalesession.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case scalesession.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimit(v)
		return nil
	}
	return fmt.Errorf("unknown ScaleSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScaleSessionMutation) AddedFields() []string {
	var fields []string
	if m.additem_count != nil {
		fields = append(fields, scalesession.FieldItemCount)
	}
	if m.addtime_limit != nil {
		fields = append(fields, scalesession.FieldTimeLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScaleSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scalesession.FieldItemCount:
		return m.AddedItemCount()
	case scalesession.FieldTimeLimit:
		return m.AddedTimeLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScaleSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scalesession.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	case scalesession.FieldTimeLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimit(v)
		return nil
	}
	return fmt.Errorf("unknown ScaleSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScaleSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scalesession.FieldEndedAt) {
		fields = append(fields, scalesession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScaleSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScaleSessionMutation) ClearField(name string) error {
	switch name {
	case scalesession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown ScaleSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScaleSessionMutation) ResetField(name string) error {
	switch name {
	case scalesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scalesession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case scalesession.FieldItemCount:
		m.ResetItemCount()
		return nil
	case scalesession.FieldTimeLimit:
		m.ResetTimeLimit()
		return nil
	}
	return fmt.Errorf("unknown ScaleSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScaleSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scales != nil {
		edges = append(edges, scalesession.EdgeScales)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScaleSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scalesession.EdgeScales:
		ids := make([]ent.Value, 0, len(m.scales))
		for id := range m.scales {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScaleSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedscales != nil {
		edges = append(edges, scalesession.EdgeScales)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScaleSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scalesession.EdgeScales:
		ids := make([]ent.Value, 0, len(m.removedscales))
		for id := range m.removedscales {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScaleSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscales {
		edges = append(edges, scalesession.EdgeScales)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScaleSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case scalesession.EdgeScales:
		return m.clearedscales
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScaleSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ScaleSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScaleSessionMutation) ResetEdge(name string) error {
	switch name {
	case scalesession.EdgeScales:
		m.ResetScales()
		return nil
	}
	return fmt.Errorf("unknown ScaleSession edge %s", name)
}

// SessionChordMutation represents an operation that mutates the SessionChord nodes in the graph.
type SessionChordMutation struct {
	config
	op             Op
	typ            string
	id             *int
	name           *string
	displayed_at   *time.Time
	clearedFields  map[string]struct{}
	session        *uuid.UUID
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionChord, error)
	predicates     []predicate.SessionChord
}

var _ ent.Mutation = (*SessionChordMutation)(nil)

// sessionchordOption allows management of the mutation configuration using functional options.
type sessionchordOption func(*SessionChordMutation)

// newSessionChordMutation creates new mutation for the SessionChord entity.
func newSessionChordMutation(c config, op Op, opts ...sessionchordOption) *SessionChordMutation {
	m := &SessionChordMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionChord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionChordID sets the ID field of the mutation.
func withSessionChordID(id int) sessionchordOption {
	return func(m *SessionChordMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionChord
		)
		m.oldValue = func(ctx context.Context) (*SessionChord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionChord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionChord sets the old SessionChord of the mutation.
func withSessionChord(node *SessionChord) sessionchordOption {
	return func(m *SessionChordMutation) {
		m.oldValue = func(context.Context) (*SessionChord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionChordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionChordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionChordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionChordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionChord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SessionChordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SessionChordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SessionChord entity.
// If the SessionChord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionChordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SessionChordMutation) ResetName() {
	m.name = nil
}

// SetDisplayedAt sets the "displayed_at" field.
func (m *SessionChordMutation) SetDisplayedAt(t time.Time) {
	m.displayed_at = &t
}

// DisplayedAt returns the value of the "displayed_at" field in the mutation.
func (m *SessionChordMutation) DisplayedAt() (r time.Time, exists bool) {
	v := m.displayed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayedAt returns the old "displayed_at" field's value of the SessionChord entity.
// If the SessionChord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionChordMutation) OldDisplayedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayedAt: %w", err)
	}
	return oldValue.DisplayedAt, nil
}

// ResetDisplayedAt resets all changes to the "displayed_at" field.
func (m *SessionChordMutation) ResetDisplayedAt() {
	m.displayed_at = nil
}

// SetSessionID sets the "session" edge to the PracticeSession entity by id.
func (m *SessionChordMutation) SetSessionID(id uuid.UUID) {
	m.session = &id
}

// ClearSession clears the "session" edge to the PracticeSession entity.
func (m *SessionChordMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the PracticeSession entity was cleared.
func (m *SessionChordMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *SessionChordMutation) SessionID() (id uuid.UUID, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionChordMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionChordMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionChordMutation builder.
func (m *SessionChordMutation) Where(ps ...predicate.SessionChord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionChordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionChordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionChord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionChordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionChordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionChord).
func (m *SessionChordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionChordMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, sessionchord.FieldName)
	}
	if m.displayed_at != nil {
		fields = append(fields, sessionchord.FieldDisplayedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionChordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionchord.FieldName:
		return m.Name()
	case sessionchord.FieldDisplayedAt:
		return m.DisplayedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionChordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionchord.FieldName:
		return m.OldName(ctx)
	case sessionchord.FieldDisplayedAt:
		return m.OldDisplayedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionChord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionChordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionchord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sessionchord.FieldDisplayedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionChord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionChordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionChordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionChordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionChord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionChordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionChordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionChordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionChord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionChordMutation) ResetField(name string) error {
	switch name {
	case sessionchord.FieldName:
		m.ResetName()
		return nil
	case sessionchord.FieldDisplayedAt:
		m.ResetDisplayedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionChord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionChordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionchord.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionChordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionchord.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionChordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionChordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionChordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionchord.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionChordMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionchord.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionChordMutation) ClearEdge(name string) error {
	switch name {
	case sessionchord.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionChord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionChordMutation) ResetEdge(name string) error {
	switch name {
	case sessionchord.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionChord edge %s", name)
}

// SessionScaleMutation represents an operation that mutates the SessionScale nodes in the graph.
type SessionScaleMutation struct {
	config
	op             Op
	typ            string
	id             *int
	name           *string
	displayed_at   *time.Time
	clearedFields  map[string]struct{}
	session        *uuid.UUID
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionScale, error)
	predicates     []predicate.SessionScale
}

var _ ent.Mutation = (*SessionScaleMutation)(nil)

// sessionscaleOption allows management of the mutation configuration using functional options.
type sessionscaleOption func(*SessionScaleMutation)

// newSessionScaleMutation creates new mutation for the SessionScale entity.
func newSessionScaleMutation(c config, op Op, opts ...sessionscaleOption) *SessionScaleMutation {
	m := &SessionScaleMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionScale,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionScaleID sets the ID field of the mutation.
func withSessionScaleID(id int) sessionscaleOption {
	return func(m *SessionScaleMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionScale
		)
		m.oldValue = func(ctx context.Context) (*SessionScale, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionScale.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionScale sets the old SessionScale of the mutation.
func withSessionScale(node *SessionScale) sessionscaleOption {
	return func(m *SessionScaleMutation) {
		m.oldValue = func(context.Context) (*SessionScale, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionScaleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionScaleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionScaleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionScaleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionScale.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SessionScaleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SessionScaleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SessionScale entity.
// If the SessionScale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionScaleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SessionScaleMutation) ResetName() {
	m.name = nil
}

// SetDisplayedAt sets the "displayed_at" field.
func (m *SessionScaleMutation) SetDisplayedAt(t time.Time) {
	m.displayed_at = &t
}

// DisplayedAt returns the value of the "displayed_at" field in the mutation.
func (m *SessionScaleMutation) DisplayedAt() (r time.Time, exists bool) {
	v := m.displayed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayedAt returns the old "displayed_at" field's value of the SessionScale entity.
// If the SessionScale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionScaleMutation) OldDisplayedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayedAt: %w", err)
	}
	return oldValue.DisplayedAt, nil
}

// ResetDisplayedAt resets all changes to the "displayed_at" field.
func (m *SessionScaleMutation) ResetDisplayedAt() {
	m.displayed_at = nil
}

// SetSessionID sets the "session" edge to the ScaleSession entity by id.
func (m *SessionScaleMutation) SetSessionID(id uuid.UUID) {
	m.session = &id
}

// ClearSession clears the "session" edge to the ScaleSession entity.
func (m *SessionScaleMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the ScaleSession entity was cleared.
func (m *SessionScaleMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *SessionScaleMutation) SessionID() (id uuid.UUID, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionScaleMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionScaleMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionScaleMutation builder.
func (m *SessionScaleMutation) Where(ps ...predicate.SessionScale) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionScaleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionScaleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionScale, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionScaleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionScaleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionScale).
func (m *SessionScaleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionScaleMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, sessionscale.FieldName)
	}
	if m.displayed_at != nil {
		fields = append(fields, sessionscale.FieldDisplayedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionScaleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionscale.FieldName:
		return m.Name()
	case sessionscale.FieldDisplayedAt:
		return m.DisplayedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionScaleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionscale.FieldName:
		return m.OldName(ctx)
	case sessionscale.FieldDisplayedAt:
		return m.OldDisplayedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionScale field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionScaleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionscale.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sessionscale.FieldDisplayedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionScale field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionScaleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionScaleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionScaleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionScale numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionScaleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionScaleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionScaleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionScale nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionScaleMutation) ResetField(name string) error {
	switch name {
	case sessionscale.FieldName:
		m.ResetName()
		return nil
	case sessionscale.FieldDisplayedAt:
		m.ResetDisplayedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionScale field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionScaleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionscale.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionScaleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionscale.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionScaleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionScaleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionScaleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionscale.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionScaleMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionscale.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionScaleMutation) ClearEdge(name string) error {
	switch name {
	case sessionscale.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionScale unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionScaleMutation) ResetEdge(name string) error {
	switch name {
	case sessionscale.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionScale edge %s", name)
}
