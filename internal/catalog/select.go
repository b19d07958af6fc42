package catalog

import "math/rand/v2"

// PickRandom returns a uniformly random item from pool. It fails with
// ErrEmptyPool when pool is empty.
//
// When previous is non-nil the candidate set excludes items sharing its
// display name, so the same prompt never shows twice in a row. A pool of
// exactly one item is returned as-is: repeat avoidance is impossible there
// and is not an error. Should exclusion ever empty the candidates, selection
// falls back to the full pool.
func PickRandom[C ~string](pool []Item[C], previous *Item[C]) (Item[C], error) {
	if len(pool) == 0 {
		var zero Item[C]
		return zero, ErrEmptyPool
	}
	if len(pool) == 1 {
		return pool[0], nil
	}

	candidates := pool
	if previous != nil {
		filtered := make([]Item[C], 0, len(pool))
		for _, item := range pool {
			if item.Name != previous.Name {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	return candidates[rand.IntN(len(candidates))], nil
}
