package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
)

// SessionChord records a single chord displayed during a practice session.
type SessionChord struct {
	ent.Schema
}

func (SessionChord) Mixin() []ent.Mixin {
	return []ent.Mixin{ItemRecordMixin{}}
}

func (SessionChord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PracticeSession.Type).
			Ref("chords").
			Unique().
			Required(),
	}
}
