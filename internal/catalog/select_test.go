package catalog

import (
	"errors"
	"testing"
)

func TestPickRandom(t *testing.T) {
	t.Run("empty pool", func(t *testing.T) {
		_, err := PickRandom[ChordType](nil, nil)
		if !errors.Is(err, ErrEmptyPool) {
			t.Fatalf("err = %v, want ErrEmptyPool", err)
		}
	})

	t.Run("single item ignores previous", func(t *testing.T) {
		only := Item[ChordType]{Root: "C", Category: ChordMajor, Name: "C"}
		got, err := PickRandom([]Item[ChordType]{only}, &only)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "C" {
			t.Fatalf("got %q, want the only item back", got.Name)
		}
	})

	t.Run("picks stay inside pool", func(t *testing.T) {
		pool, err := Filter(ChordLibrary(), []ChordType{ChordDiminished})
		if err != nil {
			t.Fatal(err)
		}
		inPool := make(map[string]bool, len(pool))
		for _, item := range pool {
			inPool[item.Name] = true
		}

		for i := 0; i < 200; i++ {
			got, err := PickRandom(pool, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !inPool[got.Name] {
				t.Fatalf("picked %q, not in pool", got.Name)
			}
		}
	})

	t.Run("never repeats previous", func(t *testing.T) {
		pool, err := Filter(ScaleLibrary(), []ScaleType{ScaleDorian})
		if err != nil {
			t.Fatal(err)
		}

		prev, err := PickRandom(pool, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 200; i++ {
			next, err := PickRandom(pool, &prev)
			if err != nil {
				t.Fatal(err)
			}
			if next.Name == prev.Name {
				t.Fatalf("iteration %d repeated %q", i, prev.Name)
			}
			prev = next
		}
	})

	t.Run("falls back to full pool when exclusion empties it", func(t *testing.T) {
		// Two entries sharing a display name: exclusion removes both.
		twin := Item[ScaleType]{Root: "C", Category: ScaleMajor, Name: "C Major"}
		pool := []Item[ScaleType]{twin, twin}

		got, err := PickRandom(pool, &twin)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "C Major" {
			t.Fatalf("got %q, want fallback pick from full pool", got.Name)
		}
	})
}
