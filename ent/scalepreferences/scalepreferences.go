// Code generated by ent, DO NOT EDIT.

package scalepreferences

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scalepreferences type in the database.
	Label = "scale_preferences"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTimeLimit holds the string denoting the time_limit field in the database.
	FieldTimeLimit = "time_limit"
	// FieldEnabledTypes holds the string denoting the enabled_types field in the database.
	FieldEnabledTypes = "enabled_types"
	// Table holds the table name of the scalepreferences in the database.
	Table = "scale_preferences"
)

// Columns holds all SQL columns for scalepreferences fields.
var Columns = []string{
	FieldID,
	FieldTimeLimit,
	FieldEnabledTypes,
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
	// DefaultTimeLimit holds the default value on creation for the "time_limit" field.
	DefaultTimeLimit int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID int
)

// OrderOption defines the ordering options for the ScalePreferences queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTimeLimit orders the results by the time_limit field.
func ByTimeLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimit, opts...).ToFunc()
}
