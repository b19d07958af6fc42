package schema

import "entgo.io/ent"

// ChordPreferences is the singleton row holding chord practice settings.
type ChordPreferences struct {
	ent.Schema
}

func (ChordPreferences) Mixin() []ent.Mixin {
	return []ent.Mixin{PrefsMixin{}}
}
