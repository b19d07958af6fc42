package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
)

// PracticeSession is one timed chord practice run.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Mixin() []ent.Mixin {
	return []ent.Mixin{SessionMixin{}}
}

func (PracticeSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chords", SessionChord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
