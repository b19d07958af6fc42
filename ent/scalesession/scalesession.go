// Code generated by ent, DO NOT EDIT.

package scalesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the scalesession type in the database.
	Label = "scale_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldItemCount holds the string denoting the item_count field in the database.
	FieldItemCount = "item_count"
	// FieldTimeLimit holds the string denoting the time_limit field in the database.
	FieldTimeLimit = "time_limit"
	// EdgeScales holds the string denoting the scales edge name in mutations.
	EdgeScales = "scales"
	// Table holds the table name of the scalesession in the database.
	Table = "scale_sessions"
	// ScalesTable is the table that holds the scales relation/edge.
	ScalesTable = "session_scales"
	// ScalesInverseTable is the table name for the SessionScale entity.
	// It exists in this package in order to avoid circular dependency with the "sessionscale" package.
	ScalesInverseTable = "session_scales"
	// ScalesColumn is the table column denoting the scales relation/edge.
	ScalesColumn = "scale_session_scales"
)

// Columns holds all SQL columns for scalesession fields.
var Columns = []string{
	FieldID,
	FieldStartedAt,
	FieldEndedAt,
	FieldItemCount,
	FieldTimeLimit,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultItemCount holds the default value on creation for the "item_count" field.
	DefaultItemCount int
	// ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	ItemCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ScaleSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByItemCount orders the results by the item_count field.
func ByItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCount, opts...).ToFunc()
}

// ByTimeLimit orders the results by the time_limit field.
func ByTimeLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimit, opts...).ToFunc()
}

// ByScalesCount orders the results by scales count.
func ByScalesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScalesStep(), opts...)
	}
}

// ByScales orders the results by scales terms.
func ByScales(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScalesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newScalesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScalesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScalesTable, ScalesColumn),
	)
}
