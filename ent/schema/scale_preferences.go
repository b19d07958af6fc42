package schema

import "entgo.io/ent"

// ScalePreferences is the singleton row holding scale practice settings.
type ScalePreferences struct {
	ent.Schema
}

func (ScalePreferences) Mixin() []ent.Mixin {
	return []ent.Mixin{PrefsMixin{}}
}
