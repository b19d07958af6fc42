// Package catalog holds the static chord and scale libraries and the pure
// query functions over them: category filtering and random selection.
package catalog

import "errors"

// ErrNoCategoriesEnabled is returned when a filter is asked for with an
// empty category set. At least one category must always be enabled.
var ErrNoCategoriesEnabled = errors.New("no categories enabled")

// ErrEmptyPool is returned when a random pick is requested from an empty pool.
var ErrEmptyPool = errors.New("empty item pool")

// Root is a chromatic root spelling. Enharmonic duplicates (C#/Db etc.) are
// distinct entries so both spellings come up in practice.
type Root string

// roots lists all 17 spellings in catalog order.
var roots = []Root{
	"C", "C#", "Db",
	"D", "D#", "Eb",
	"E",
	"F", "F#", "Gb",
	"G", "G#", "Ab",
	"A", "A#", "Bb",
	"B",
}

// Item is a single practice item: a chord or a scale, tagged with the
// category used for filtering. Items are immutable values built once at
// process start.
type Item[C ~string] struct {
	Root     Root
	Quality  string // chord quality suffix; empty for scales
	Category C
	Name     string // display name, e.g. "Cmaj7" or "C Dorian"
}

// Filter returns the items whose category is in enabled, preserving library
// order. It fails with ErrNoCategoriesEnabled when enabled is empty: callers
// are expected to have validated preferences, but an empty set here is always
// a bug, never a request for "everything".
func Filter[C ~string](library []Item[C], enabled []C) ([]Item[C], error) {
	if len(enabled) == 0 {
		return nil, ErrNoCategoriesEnabled
	}

	on := make(map[C]bool, len(enabled))
	for _, c := range enabled {
		on[c] = true
	}

	var out []Item[C]
	for _, item := range library {
		if on[item.Category] {
			out = append(out, item)
		}
	}
	return out, nil
}
