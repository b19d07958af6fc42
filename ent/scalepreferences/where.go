// Code generated by ent, DO NOT EDIT.

package scalepreferences

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/jazzgym/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldLTE(FieldID, id))
}

// TimeLimit applies equality check predicate on the "time_limit" field. It's identical to TimeLimitEQ.
func TimeLimit(v int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldEQ(FieldTimeLimit, v))
}

// TimeLimitEQ applies the EQ predicate on the "time_limit" field.
func TimeLimitEQ(v int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldEQ(FieldTimeLimit, v))
}

// TimeLimitNEQ applies the NEQ predicate on the "time_limit" field.
func TimeLimitNEQ(v int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldNEQ(FieldTimeLimit, v))
}

// TimeLimitIn applies the In predicate on the "time_limit" field.
func TimeLimitIn(vs ...int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldIn(FieldTimeLimit, vs...))
}

// TimeLimitNotIn applies the NotIn predicate on the "time_limit" field.
func TimeLimitNotIn(vs ...int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldNotIn(FieldTimeLimit, vs...))
}

// TimeLimitGT applies the GT predicate on the "time_limit" field.
func TimeLimitGT(v int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldGT(FieldTimeLimit, v))
}

// TimeLimitGTE applies the GTE predicate on the "time_limit" field.
func TimeLimitGTE(v int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldGTE(FieldTimeLimit, v))
}

// TimeLimitLT applies the LT predicate on the "time_limit" field.
func TimeLimitLT(v int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldLT(FieldTimeLimit, v))
}

// TimeLimitLTE applies the LTE predicate on the "time_limit" field.
func TimeLimitLTE(v int) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.FieldLTE(FieldTimeLimit, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScalePreferences) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScalePreferences) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScalePreferences) predicate.ScalePreferences {
	return predicate.ScalePreferences(sql.NotPredicates(p))
}
