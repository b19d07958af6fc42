// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/abhisek/jazzgym/ent/sessionscale"
	"github.com/google/uuid"
)

// SessionScale is the model entity for the SessionScale schema.
type SessionScale struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Display name of the item shown to the user
	Name string `json:"name,omitempty"`
	// DisplayedAt holds the value of the "displayed_at" field.
	DisplayedAt time.Time `json:"displayed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionScaleQuery when eager-loading is set.
	Edges                SessionScaleEdges `json:"edges"`
	scale_session_scales *uuid.UUID
	selectValues         sql.SelectValues
}

// SessionScaleEdges holds the relations/edges for other nodes in the graph.
type SessionScaleEdges struct {
	// Session holds the value of the session edge.
	Session *ScaleSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionScaleEdges) SessionOrErr() (*ScaleSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scalesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionScale) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionscale.FieldID:
			values[i] = new(sql.NullInt64)
		case sessionscale.FieldName:
			values[i] = new(sql.NullString)
		case sessionscale.FieldDisplayedAt:
			values[i] = new(sql.NullTime)
		case sessionscale.ForeignKeys[0]: // scale_session_scales
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionScale fields.
func (_m *SessionScale) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionscale.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionscale.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case sessionscale.FieldDisplayedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field displayed_at", values[i])
			} else if value.Valid {
				_m.DisplayedAt = value.Time
			}
		case sessionscale.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field scale_session_scales", values[i])
			} else if value.Valid {
				_m.scale_session_scales = new(uuid.UUID)
				*_m.scale_session_scales = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionScale.
// This includes values selected through modifiers, order, etc.
func (_m *SessionScale) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionScale entity.
func (_m *SessionScale) QuerySession() *ScaleSessionQuery {
	return NewSessionScaleClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SessionScale.
// Note that you need to call SessionScale.Unwrap() before calling this method if this SessionScale
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionScale) Update() *SessionScaleUpdateOne {
	return NewSessionScaleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionScale entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionScale) Unwrap() *SessionScale {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionScale is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionScale) String() string {
	var builder strings.Builder
	builder.WriteString("SessionScale(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("displayed_at=")
	builder.WriteString(_m.DisplayedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionScales is a parsable slice of SessionScale.
type SessionScales []*SessionScale
