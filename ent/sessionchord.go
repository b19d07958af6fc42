// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/jazzgym/ent/practicesession"
	"github.com/abhisek/jazzgym/ent/sessionchord"
	"github.com/google/uuid"
)

// SessionChord is the model entity for the SessionChord schema.
type SessionChord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Display name of the item shown to the user
	Name string `json:"name,omitempty"`
	// DisplayedAt holds the value of the "displayed_at" field.
	DisplayedAt time.Time `json:"displayed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionChordQuery when eager-loading is set.
	Edges                   SessionChordEdges `json:"edges"`
	practice_session_chords *uuid.UUID
	selectValues            sql.SelectValues
}

// SessionChordEdges holds the relations/edges for other nodes in the graph.
type SessionChordEdges struct {
	// Session holds the value of the session edge.
	Session *PracticeSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionChordEdges) SessionOrErr() (*PracticeSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: practicesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionChord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionchord.FieldID:
			values[i] = new(sql.NullInt64)
		case sessionchord.FieldName:
			values[i] = new(sql.NullString)
		case sessionchord.FieldDisplayedAt:
			values[i] = new(sql.NullTime)
		case sessionchord.ForeignKeys[0]: // practice_session_chords
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionChord fields.
func (_m *SessionChord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionchord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionchord.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case sessionchord.FieldDisplayedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field displayed_at", values[i])
			} else if value.Valid {
				_m.DisplayedAt = value.Time
			}
		case sessionchord.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field practice_session_chords", values[i])
			} else if value.Valid {
				_m.practice_session_chords = new(uuid.UUID)
				*_m.practice_session_chords = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionChord.
// This includes values selected through modifiers, order, etc.
func (_m *SessionChord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionChord entity.
func (_m *SessionChord) QuerySession() *PracticeSessionQuery {
	return NewSessionChordClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SessionChord.
// Note that you need to call SessionChord.Unwrap() before calling this method if this SessionChord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionChord) Update() *SessionChordUpdateOne {
	return NewSessionChordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionChord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionChord) Unwrap() *SessionChord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionChord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionChord) String() string {
	var builder strings.Builder
	builder.WriteString("SessionChord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("displayed_at=")
	builder.WriteString(_m.DisplayedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionChords is a parsable slice of SessionChord.
type SessionChords []*SessionChord
