// Code generated by ent, DO NOT EDIT.

package sessionchord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/jazzgym/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldEQ(FieldName, v))
}

// DisplayedAt applies equality check predicate on the "displayed_at" field. It's identical to DisplayedAtEQ.
func DisplayedAt(v time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldEQ(FieldDisplayedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldContainsFold(FieldName, v))
}

// DisplayedAtEQ applies the EQ predicate on the "displayed_at" field.
func DisplayedAtEQ(v time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldEQ(FieldDisplayedAt, v))
}

// DisplayedAtNEQ applies the NEQ predicate on the "displayed_at" field.
func DisplayedAtNEQ(v time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldNEQ(FieldDisplayedAt, v))
}

// DisplayedAtIn applies the In predicate on the "displayed_at" field.
func DisplayedAtIn(vs ...time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldIn(FieldDisplayedAt, vs...))
}

// DisplayedAtNotIn applies the NotIn predicate on the "displayed_at" field.
func DisplayedAtNotIn(vs ...time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldNotIn(FieldDisplayedAt, vs...))
}

// DisplayedAtGT applies the GT predicate on the "displayed_at" field.
func DisplayedAtGT(v time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldGT(FieldDisplayedAt, v))
}

// DisplayedAtGTE applies the GTE predicate on the "displayed_at" field.
func DisplayedAtGTE(v time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldGTE(FieldDisplayedAt, v))
}

// DisplayedAtLT applies the LT predicate on the "displayed_at" field.
func DisplayedAtLT(v time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldLT(FieldDisplayedAt, v))
}

// DisplayedAtLTE applies the LTE predicate on the "displayed_at" field.
func DisplayedAtLTE(v time.Time) predicate.SessionChord {
	return predicate.SessionChord(sql.FieldLTE(FieldDisplayedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionChord {
	return predicate.SessionChord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.PracticeSession) predicate.SessionChord {
	return predicate.SessionChord(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionChord) predicate.SessionChord {
	return predicate.SessionChord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionChord) predicate.SessionChord {
	return predicate.SessionChord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionChord) predicate.SessionChord {
	return predicate.SessionChord(sql.NotPredicates(p))
}
