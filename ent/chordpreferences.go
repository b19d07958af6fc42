// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/jazzgym/ent/chordpreferences"
)

// ChordPreferences is the model entity for the ChordPreferences schema.
type ChordPreferences struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Seconds per item, 3-60
	TimeLimit int `json:"time_limit,omitempty"`
	// Enabled category names, never empty
	EnabledTypes []string `json:"enabled_types,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChordPreferences) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chordpreferences.FieldEnabledTypes:
			values[i] = new([]byte)
		case chordpreferences.FieldID, chordpreferences.FieldTimeLimit:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChordPreferences fields.
func (_m *ChordPreferences) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chordpreferences.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chordpreferences.FieldTimeLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit", values[i])
			} else if value.Valid {
				_m.TimeLimit = int(value.Int64)
			}
		case chordpreferences.FieldEnabledTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field enabled_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EnabledTypes); err != nil {
					return fmt.Errorf("unmarshal field enabled_types: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChordPreferences.
// This includes values selected through modifiers, order, etc.
func (_m *ChordPreferences) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChordPreferences.
// Note that you need to call ChordPreferences.Unwrap() before calling this method if this ChordPreferences
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChordPreferences) Update() *ChordPreferencesUpdateOne {
	return NewChordPreferencesClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChordPreferences entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChordPreferences) Unwrap() *ChordPreferences {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChordPreferences is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChordPreferences) String() string {
	var builder strings.Builder
	builder.WriteString("ChordPreferences(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("time_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimit))
	builder.WriteString(", ")
	builder.WriteString("enabled_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnabledTypes))
	builder.WriteByte(')')
	return builder.String()
}

// ChordPreferencesSlice is a parsable slice of ChordPreferences.
type ChordPreferencesSlice []*ChordPreferences
