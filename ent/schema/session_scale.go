package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
)

// SessionScale records a single scale displayed during a practice session.
type SessionScale struct {
	ent.Schema
}

func (SessionScale) Mixin() []ent.Mixin {
	return []ent.Mixin{ItemRecordMixin{}}
}

func (SessionScale) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ScaleSession.Type).
			Ref("scales").
			Unique().
			Required(),
	}
}
