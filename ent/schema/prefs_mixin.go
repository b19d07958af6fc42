package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// PrefsMixin provides the fields shared by the per-domain preferences
// singletons. Each domain has exactly one row with id 1; range and
// non-emptiness rules are enforced by the prefs package before any write.
type PrefsMixin struct {
	mixin.Schema
}

func (PrefsMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Default(1),
		field.Int("time_limit").
			Default(10).
			Comment("Seconds per item, 3-60"),
		field.JSON("enabled_types", []string{}).
			Comment("Enabled category names, never empty"),
	}
}
