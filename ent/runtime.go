// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/jazzgym/ent/chordpreferences"
	"github.com/abhisek/jazzgym/ent/practicesession"
	"github.com/abhisek/jazzgym/ent/scalepreferences"
	"github.com/abhisek/jazzgym/ent/scalesession"
	"github.com/abhisek/jazzgym/ent/schema"
	"github.com/abhisek/jazzgym/ent/sessionchord"
	"github.com/abhisek/jazzgym/ent/sessionscale"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chordpreferencesMixin := schema.ChordPreferences{}.Mixin()
	chordpreferencesMixinFields0 := chordpreferencesMixin[0].Fields()
	_ = chordpreferencesMixinFields0
	chordpreferencesFields := schema.ChordPreferences{}.Fields()
	_ = chordpreferencesFields
	// chordpreferencesDescTimeLimit is the schema descriptor for time_limit field.
	chordpreferencesDescTimeLimit := chordpreferencesMixinFields0[1].Descriptor()
	// chordpreferences.DefaultTimeLimit holds the default value on creation for the time_limit field.
	chordpreferences.DefaultTimeLimit = chordpreferencesDescTimeLimit.Default.(int)
	// chordpreferencesDescID is the schema descriptor for id field.
	chordpreferencesDescID := chordpreferencesMixinFields0[0].Descriptor()
	// chordpreferences.DefaultID holds the default value on creation for the id field.
	chordpreferences.DefaultID = chordpreferencesDescID.Default.(int)
	practicesessionMixin := schema.PracticeSession{}.Mixin()
	practicesessionMixinFields0 := practicesessionMixin[0].Fields()
	_ = practicesessionMixinFields0
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescStartedAt is the schema descriptor for started_at field.
	practicesessionDescStartedAt := practicesessionMixinFields0[1].Descriptor()
	// practicesession.DefaultStartedAt holds the default value on creation for the started_at field.
	practicesession.DefaultStartedAt = practicesessionDescStartedAt.Default.(func() time.Time)
	// practicesessionDescItemCount is the schema descriptor for item_count field.
	practicesessionDescItemCount := practicesessionMixinFields0[3].Descriptor()
	// practicesession.DefaultItemCount holds the default value on creation for the item_count field.
	practicesession.DefaultItemCount = practicesessionDescItemCount.Default.(int)
	// practicesession.ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	practicesession.ItemCountValidator = practicesessionDescItemCount.Validators[0].(func(int) error)
	// practicesessionDescID is the schema descriptor for id field.
	practicesessionDescID := practicesessionMixinFields0[0].Descriptor()
	// practicesession.DefaultID holds the default value on creation for the id field.
	practicesession.DefaultID = practicesessionDescID.Default.(func() uuid.UUID)
	scalepreferencesMixin := schema.ScalePreferences{}.Mixin()
	scalepreferencesMixinFields0 := scalepreferencesMixin[0].Fields()
	_ = scalepreferencesMixinFields0
	scalepreferencesFields := schema.ScalePreferences{}.Fields()
	_ = scalepreferencesFields
	// scalepreferencesDescTimeLimit is the schema descriptor for time_limit field.
	scalepreferencesDescTimeLimit := scalepreferencesMixinFields0[1].Descriptor()
	// scalepreferences.DefaultTimeLimit holds the default value on creation for the time_limit field.
	scalepreferences.DefaultTimeLimit = scalepreferencesDescTimeLimit.Default.(int)
	// scalepreferencesDescID is the schema descriptor for id field.
	scalepreferencesDescID := scalepreferencesMixinFields0[0].Descriptor()
	// scalepreferences.DefaultID holds the default value on creation for the id field.
	scalepreferences.DefaultID = scalepreferencesDescID.Default.(int)
	scalesessionMixin := schema.ScaleSession{}.Mixin()
	scalesessionMixinFields0 := scalesessionMixin[0].Fields()
	_ = scalesessionMixinFields0
	scalesessionFields := schema.ScaleSession{}.Fields()
	_ = scalesessionFields
	// scalesessionDescStartedAt is the schema descriptor for started_at field.
	scalesessionDescStartedAt := scalesessionMixinFields0[1].Descriptor()
	// scalesession.DefaultStartedAt holds the default value on creation for the started_at field.
	scalesession.DefaultStartedAt = scalesessionDescStartedAt.Default.(func() time.Time)
	// scalesessionDescItemCount is the schema descriptor for item_count field.
	scalesessionDescItemCount := scalesessionMixinFields0[3].Descriptor()
	// scalesession.DefaultItemCount holds the default value on creation for the item_count field.
	scalesession.DefaultItemCount = scalesessionDescItemCount.Default.(int)
	// scalesession.ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	scalesession.ItemCountValidator = scalesessionDescItemCount.Validators[0].(func(int) error)
	// scalesessionDescID is the schema descriptor for id field.
	scalesessionDescID := scalesessionMixinFields0[0].Descriptor()
	// scalesession.DefaultID holds the default value on creation for the id field.
	scalesession.DefaultID = scalesessionDescID.Default.(func() uuid.UUID)
	sessionchordMixin := schema.SessionChord{}.Mixin()
	sessionchordMixinFields0 := sessionchordMixin[0].Fields()
	_ = sessionchordMixinFields0
	sessionchordFields := schema.SessionChord{}.Fields()
	_ = sessionchordFields
	// sessionchordDescName is the schema descriptor for name field.
	sessionchordDescName := sessionchordMixinFields0[0].Descriptor()
	// sessionchord.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sessionchord.NameValidator = sessionchordDescName.Validators[0].(func(string) error)
	// sessionchordDescDisplayedAt is the schema descriptor for displayed_at field.
	sessionchordDescDisplayedAt := sessionchordMixinFields0[1].Descriptor()
	// sessionchord.DefaultDisplayedAt holds the default value on creation for the displayed_at field.
	sessionchord.DefaultDisplayedAt = sessionchordDescDisplayedAt.Default.(func() time.Time)
	sessionscaleMixin := schema.SessionScale{}.Mixin()
	sessionscaleMixinFields0 := sessionscaleMixin[0].Fields()
	_ = sessionscaleMixinFields0
	sessionscaleFields := schema.SessionScale{}.Fields()
	_ = sessionscaleFields
	// sessionscaleDescName is the schema descriptor for name field.
	sessionscaleDescName := sessionscaleMixinFields0[0].Descriptor()
	// sessionscale.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sessionscale.NameValidator = sessionscaleDescName.Validators[0].(func(string) error)
	// sessionscaleDescDisplayedAt is the schema descriptor for displayed_at field.
	sessionscaleDescDisplayedAt := sessionscaleMixinFields0[1].Descriptor()
	// sessionscale.DefaultDisplayedAt holds the default value on creation for the displayed_at field.
	sessionscale.DefaultDisplayedAt = sessionscaleDescDisplayedAt.Default.(func() time.Time)
}
