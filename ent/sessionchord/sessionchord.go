// Code generated by ent, DO NOT EDIT.

package sessionchord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sessionchord type in the database.
	Label = "session_chord"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDisplayedAt holds the string denoting the displayed_at field in the database.
	FieldDisplayedAt = "displayed_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// Table holds the table name of the sessionchord in the database.
	Table = "session_chords"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "session_chords"
	// SessionInverseTable is the table name for the PracticeSession entity.
	// It exists in this package in order to avoid circular dependency with the "practicesession" package.
	SessionInverseTable = "practice_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "practice_session_chords"
)

// Columns holds all SQL columns for sessionchord fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDisplayedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "session_chords"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"practice_session_chords",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDisplayedAt holds the default value on creation for the "displayed_at" field.
	DefaultDisplayedAt func() time.Time
)

// OrderOption defines the ordering options for the SessionChord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDisplayedAt orders the results by the displayed_at field.
func ByDisplayedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
