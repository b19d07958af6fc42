// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/google/uuid"
)

// ScaleSession is the model entity for the ScaleSession schema.
type ScaleSession struct {
	config `json:"-"`
	// ID of the ent.
	// Opaque session handle issued at creation
	ID uuid.UUID `json:"id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Null while the session is in progress
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Incremented for each recorded item
	ItemCount int `json:"item_count,omitempty"`
	// Seconds per item, snapshot taken at session start
	TimeLimit int `json:"time_limit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScaleSessionQuery when eager-loading is set.
	Edges        ScaleSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScaleSessionEdges holds the relations/edges for other nodes in the graph.
type ScaleSessionEdges struct {
	// Scales holds the value of the scales edge.
	Scales []*SessionScale `json:"scales,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ScalesOrErr returns the Scales value or an error if the edge
// was not loaded in eager-loading.
func (e ScaleSessionEdges) ScalesOrErr() ([]*SessionScale, error) {
	if e.loadedTypes[0] {
		return e.Scales, nil
	}
	return nil, &NotLoadedError{edge: "scales"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScaleSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scalesession.FieldItemCount, scalesession.FieldTimeLimit:
			values[i] = new(sql.NullInt64)
		case scalesession.FieldStartedAt, scalesession.FieldEndedAt:
			values[i] = new(sql.NullTime)
		case scalesession.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScaleSession fields.
func (_m *ScaleSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scalesession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scalesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case scalesession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case scalesession.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = int(value.Int64)
			}
		case scalesession.FieldTimeLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit", values[i])
			} else if value.Valid {
				_m.TimeLimit = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScaleSession.
// This includes values selected through modifiers, order, etc.
func (_m *ScaleSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScales queries the "scales" edge of the ScaleSession entity.
func (_m *ScaleSession) QueryScales() *SessionScaleQuery {
	return NewScaleSessionClient(_m.config).QueryScales(_m)
}

// Update returns a builder for updating this ScaleSession.
// Note that you need to call ScaleSession.Unwrap() before calling this method if this ScaleSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScaleSession) Update() *ScaleSessionUpdateOne {
	return NewScaleSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScaleSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScaleSession) Unwrap() *ScaleSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScaleSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScaleSession) String() string {
	var builder strings.Builder
	builder.WriteString("ScaleSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("time_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimit))
	builder.WriteByte(')')
	return builder.String()
}

// ScaleSessions is a parsable slice of ScaleSession.
type ScaleSessions []*ScaleSession
