// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChordPreferences is the predicate function for chordpreferences builders.
type ChordPreferences func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// ScalePreferences is the predicate function for scalepreferences builders.
type ScalePreferences func(*sql.Selector)

// ScaleSession is the predicate function for scalesession builders.
type ScaleSession func(*sql.Selector)

// SessionChord is the predicate function for sessionchord builders.
type SessionChord func(*sql.Selector)

// SessionScale is the predicate function for sessionscale builders.
type SessionScale func(*sql.Selector)
