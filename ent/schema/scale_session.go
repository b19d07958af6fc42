package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
)

// ScaleSession is one timed scale practice run.
type ScaleSession struct {
	ent.Schema
}

func (ScaleSession) Mixin() []ent.Mixin {
	return []ent.Mixin{SessionMixin{}}
}

func (ScaleSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("scales", SessionScale.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
