package hand

import "mahjong-eval/tile"

// Decompose breaks a 14-tile completed hand into 4 melds and 1 pair.
// Returns false for hands that are not a standard shape (Kokushi,
// Chiitoitsu, or incomplete).
//
// Pair candidates are tried in canonical order. Below each pair the lowest
// remaining tile is consumed as a triplet first and as a sequence only if the
// triplet branch fails, so hands with several readings always resolve to the
// same one: 111222333m reads as three triplets, never three sequences.
func Decompose(tiles []tile.Tile) (Decomposition, bool) {
	return DecomposeWithMelds(tiles, nil)
}

// DecomposeWithMelds decomposes a 14-tile hand whose declared melds are
// already fixed. The fixed melds' tiles must be part of tiles, quads counted
// as three. Fixed melds come first in the result.
func DecomposeWithMelds(tiles []tile.Tile, fixed []Meld) (Decomposition, bool) {
	if len(tiles) != CompleteSize || len(fixed) > 4 {
		return Decomposition{}, false
	}
	counts, ok := countValid(tiles)
	if !ok {
		return Decomposition{}, false
	}
	for _, m := range fixed {
		if !m.Valid() {
			return Decomposition{}, false
		}
		for _, t := range m.HandTiles() {
			k := t.Kind()
			if counts[k] == 0 {
				return Decomposition{}, false
			}
			counts[k]--
		}
	}

	melds, pair, ok := decomposeCounts(counts, 4-len(fixed))
	if !ok {
		return Decomposition{}, false
	}
	all := make([]Meld, 0, 4)
	all = append(all, fixed...)
	all = append(all, melds...)
	return Decomposition{Melds: all, Pair: pair}, true
}

// decomposeCounts picks a head pair and tiles the remainder with need melds.
func decomposeCounts(c tile.Counts, need int) ([]Meld, tile.Tile, bool) {
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		if c[k] < 2 {
			continue
		}
		rest := c
		rest[k] -= 2
		if melds, ok := formMelds(rest, need); ok {
			return melds, k.Tile(), true
		}
	}
	return nil, tile.Tile{}, false
}

// formMelds covers c exactly with need concealed melds. c is a copy; every
// branch works on its own table.
func formMelds(c tile.Counts, need int) ([]Meld, bool) {
	k, ok := lowest(c)
	if !ok {
		return nil, need == 0
	}
	if need == 0 {
		return nil, false
	}

	if c[k] >= 3 {
		next := c
		next[k] -= 3
		if rest, ok := formMelds(next, need-1); ok {
			return append([]Meld{NewTriplet(k.Tile(), false)}, rest...), true
		}
	}
	if startsSequence(c, k) {
		next := c
		next[k]--
		next[k+1]--
		next[k+2]--
		if rest, ok := formMelds(next, need-1); ok {
			return append([]Meld{NewSequence(k.Tile(), false)}, rest...), true
		}
	}
	return nil, false
}

// isStandardComplete reports whether c is exactly four melds and a pair.
func isStandardComplete(c tile.Counts) bool {
	_, _, ok := decomposeCounts(c, 4)
	return ok
}

func lowest(c tile.Counts) (tile.Kind, bool) {
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		if c[k] > 0 {
			return k, true
		}
	}
	return 0, false
}

// startsSequence reports whether k, k+1 and k+2 are all present in one
// numbered suit.
func startsSequence(c tile.Counts, k tile.Kind) bool {
	t := k.Tile()
	if t.Suit == tile.Honor || t.Value > 7 {
		return false
	}
	return c[k] > 0 && c[k+1] > 0 && c[k+2] > 0
}
