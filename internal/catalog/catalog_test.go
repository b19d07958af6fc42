package catalog

import (
	"errors"
	"testing"
)

func TestChordLibrary(t *testing.T) {
	lib := ChordLibrary()

	if got, want := len(lib), 425; got != want {
		t.Fatalf("chord library size = %d, want %d", got, want)
	}

	// 17 roots per non-empty category, category sizes from the quality table.
	wantPerCategory := map[ChordType]int{
		ChordMajor:      4 * 17,
		ChordMinor:      5 * 17,
		ChordDominant:   8 * 17,
		ChordDiminished: 3 * 17,
		ChordAugmented:  2 * 17,
		ChordSuspended:  3 * 17,
	}
	counts := make(map[ChordType]int)
	for _, item := range lib {
		counts[item.Category]++
	}
	for cat, want := range wantPerCategory {
		if counts[cat] != want {
			t.Errorf("category %s has %d chords, want %d", cat, counts[cat], want)
		}
	}
	if counts[ChordExtended] != 0 {
		t.Errorf("Extended should have no dedicated entries, got %d", counts[ChordExtended])
	}

	names := make(map[string]bool)
	for _, item := range lib {
		if item.Name != string(item.Root)+item.Quality {
			t.Errorf("item name %q does not match root %q + quality %q", item.Name, item.Root, item.Quality)
		}
		if names[item.Name] {
			t.Errorf("duplicate chord name %q", item.Name)
		}
		names[item.Name] = true
	}
}

func TestScaleLibrary(t *testing.T) {
	lib := ScaleLibrary()

	if got, want := len(lib), 170; got != want {
		t.Fatalf("scale library size = %d, want %d", got, want)
	}

	counts := make(map[ScaleType]int)
	for _, item := range lib {
		counts[item.Category]++
	}
	for _, st := range AllScaleTypes() {
		if counts[st] != 17 {
			t.Errorf("scale type %s has %d entries, want 17", st, counts[st])
		}
	}
}

func TestFilter(t *testing.T) {
	t.Run("single category", func(t *testing.T) {
		pool, err := Filter(ScaleLibrary(), []ScaleType{ScaleDorian})
		if err != nil {
			t.Fatal(err)
		}
		if len(pool) != 17 {
			t.Fatalf("Dorian pool size = %d, want 17", len(pool))
		}
		for _, item := range pool {
			if item.Category != ScaleDorian {
				t.Errorf("unexpected category %s in Dorian pool", item.Category)
			}
		}
	})

	t.Run("multiple categories", func(t *testing.T) {
		pool, err := Filter(ScaleLibrary(), []ScaleType{ScaleMajor, ScaleMixolydian})
		if err != nil {
			t.Fatal(err)
		}
		if len(pool) != 34 {
			t.Fatalf("pool size = %d, want 34", len(pool))
		}
	})

	t.Run("empty set is an error", func(t *testing.T) {
		_, err := Filter(ChordLibrary(), nil)
		if !errors.Is(err, ErrNoCategoriesEnabled) {
			t.Fatalf("err = %v, want ErrNoCategoriesEnabled", err)
		}
	})

	t.Run("unknown category yields empty pool", func(t *testing.T) {
		pool, err := Filter(ChordLibrary(), []ChordType{ChordExtended})
		if err != nil {
			t.Fatal(err)
		}
		if len(pool) != 0 {
			t.Fatalf("Extended pool size = %d, want 0", len(pool))
		}
	})
}
