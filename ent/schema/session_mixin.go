package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// SessionMixin provides the fields shared by chord and scale practice
// sessions. The two domains live in separate tables but carry identical
// lifecycle columns.
type SessionMixin struct {
	mixin.Schema
}

func (SessionMixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Comment("Opaque session handle issued at creation"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Null while the session is in progress"),
		field.Int("item_count").
			Default(0).
			NonNegative().
			Comment("Incremented for each recorded item"),
		field.Int("time_limit").
			Comment("Seconds per item, snapshot taken at session start"),
	}
}

func (SessionMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}

// ItemRecordMixin provides the fields shared by per-item child records.
type ItemRecordMixin struct {
	mixin.Schema
}

func (ItemRecordMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Display name of the item shown to the user"),
		field.Time("displayed_at").
			Default(time.Now).
			Immutable(),
	}
}
