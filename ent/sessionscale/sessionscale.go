// Code generated by ent, DO NOT EDIT.

package sessionscale

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sessionscale type in the database.
	Label = "session_scale"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDisplayedAt holds the string denoting the displayed_at field in the database.
	FieldDisplayedAt = "displayed_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// Table holds the table name of the sessionscale in the database.
	Table = "session_scales"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "session_scales"
	// SessionInverseTable is the table name for the ScaleSession entity.
	// It exists in this package in order to avoid circular dependency with the "scalesession" package.
	SessionInverseTable = "scale_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "scale_session_scales"
)

// Columns holds all SQL columns for sessionscale fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDisplayedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "session_scales"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"scale_session_scales",
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

// OrderOption defines the ordering options for the SessionScale queries.
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
