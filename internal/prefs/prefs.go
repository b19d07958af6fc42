// Package prefs holds the per-domain practice settings, their validation
// rules, and the update service used by the settings screens.
package prefs

import (
	"errors"

	"github.com/abhisek/jazzgym/internal/catalog"
)

const (
	MinTimeLimit     = 3
	MaxTimeLimit     = 60
	DefaultTimeLimit = 10
)

// ErrTimeLimitOutOfRange is returned when a time limit falls outside the
// 3-60 second range.
var ErrTimeLimitOutOfRange = errors.New("time limit must be between 3 and 60 seconds")

// Preferences are the configurable session parameters for one domain.
type Preferences[C ~string] struct {
	TimeLimit int
	Enabled   []C
}

// Validate checks the invariants every stored or applied preference set must
// hold: time limit in [3,60] and a non-empty category set.
func Validate[C ~string](timeLimit int, enabled []C) error {
	if timeLimit < MinTimeLimit || timeLimit > MaxTimeLimit {
		return ErrTimeLimitOutOfRange
	}
	if len(enabled) == 0 {
		return catalog.ErrNoCategoriesEnabled
	}
	return nil
}

// ChordDefaults returns the first-use chord settings: 10 seconds, every
// chord type enabled.
func ChordDefaults() Preferences[catalog.ChordType] {
	return Preferences[catalog.ChordType]{
		TimeLimit: DefaultTimeLimit,
		Enabled:   catalog.AllChordTypes(),
	}
}

// ScaleDefaults returns the first-use scale settings: 10 seconds, the seven
// core types enabled (Lydian, Phrygian, Locrian start off).
func ScaleDefaults() Preferences[catalog.ScaleType] {
	return Preferences[catalog.ScaleType]{
		TimeLimit: DefaultTimeLimit,
		Enabled: []catalog.ScaleType{
			catalog.ScaleMajor,
			catalog.ScaleNaturalMinor,
			catalog.ScaleHarmonicMinor,
			catalog.ScaleMelodicMinor,
			catalog.ScaleDorian,
			catalog.ScaleMixolydian,
			catalog.ScaleAltered,
		},
	}
}
