package tile

import "sort"

// BySuitValue implements sort.Interface for []Tile based on suit then value
type BySuitValue []Tile

func (a BySuitValue) Len() int      { return len(a) }
func (a BySuitValue) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a BySuitValue) Less(i, j int) bool {
	if c := Compare(a[i], a[j]); c != 0 {
		return c < 0
	}
	// Plain fives sort ahead of the red five so sorted output is stable.
	return !a[i].IsRed && a[j].IsRed
}

// Sorted returns a sorted copy; the input slice is left untouched.
func Sorted(tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	sort.Sort(BySuitValue(out))
	return out
}

// Counts is a multiset of tiles indexed by Kind. It is a value type: copying
// it copies the whole table.
type Counts [NumKinds]uint8

// CountTiles counts tiles by kind (ignores IsRed).
func CountTiles(tiles []Tile) Counts {
	var c Counts
	for _, t := range tiles {
		c[t.Kind()]++
	}
	return c
}

// Total returns the number of tiles in the multiset.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += int(v)
	}
	return n
}

// Max returns the kind with the highest count and that count.
func (c Counts) Max() (Kind, int) {
	best, n := Kind(0), 0
	for k, v := range c {
		if int(v) > n {
			best, n = Kind(k), int(v)
		}
	}
	return best, n
}

// Of returns the count of the tile's kind.
func (c Counts) Of(t Tile) int {
	return int(c[t.Kind()])
}

// Tiles expands the multiset back into sorted plain tiles.
func (c Counts) Tiles() []Tile {
	out := make([]Tile, 0, c.Total())
	for k, v := range c {
		for i := 0; i < int(v); i++ {
			out = append(out, Kind(k).Tile())
		}
	}
	return out
}

// CountRed returns the number of red fives in tiles.
func CountRed(tiles []Tile) int {
	n := 0
	for _, t := range tiles {
		if t.IsRedFive() {
			n++
		}
	}
	return n
}
