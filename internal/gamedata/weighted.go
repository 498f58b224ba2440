package gamedata

import "math/rand"

// Weighted is implemented by table entries that carry a relative weight.
type Weighted interface {
	Weight() int
}

// TotalWeight sums the positive weights of entries.
func TotalWeight[T Weighted](entries []T) int {
	total := 0
	for _, e := range entries {
		if w := e.Weight(); w > 0 {
			total += w
		}
	}
	return total
}

// PickWeighted selects an entry by walking the table: it draws an integer
// roll in [1, total] and returns the first entry whose cumulative weight is
// at least the roll. Entries with non-positive weight are never selected.
// ok is false when the table has no positive weight.
func PickWeighted[T Weighted](rng *rand.Rand, entries []T) (picked T, ok bool) {
	i, ok := PickWeightedIndex(rng, entries)
	if !ok {
		return picked, false
	}
	return entries[i], true
}

// PickWeightedIndex is PickWeighted returning the index of the entry, for
// callers that hand out pointers into the table.
func PickWeightedIndex[T Weighted](rng *rand.Rand, entries []T) (int, bool) {
	total := TotalWeight(entries)
	if total <= 0 {
		return -1, false
	}
	return rollIndex(entries, 1+rng.Intn(total))
}

// pickRoll walks the table for a given roll in [1, total].
func pickRoll[T Weighted](entries []T, roll int) (picked T, ok bool) {
	i, ok := rollIndex(entries, roll)
	if !ok {
		return picked, false
	}
	return entries[i], true
}

func rollIndex[T Weighted](entries []T, roll int) (int, bool) {
	cumulative := 0
	for i, e := range entries {
		w := e.Weight()
		if w <= 0 {
			continue
		}
		cumulative += w
		if cumulative >= roll {
			return i, true
		}
	}
	return -1, false
}
