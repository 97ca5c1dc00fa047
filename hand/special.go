package hand

import "mahjong-eval/tile"

// orphanKinds are the 13 terminal and honor kinds required for Kokushi.
var orphanKinds = [13]tile.Kind{
	tile.New(tile.Man, 1).Kind(), tile.New(tile.Man, 9).Kind(),
	tile.New(tile.Pin, 1).Kind(), tile.New(tile.Pin, 9).Kind(),
	tile.New(tile.Sou, 1).Kind(), tile.New(tile.Sou, 9).Kind(),
	tile.New(tile.Honor, tile.East).Kind(), tile.New(tile.Honor, tile.South).Kind(),
	tile.New(tile.Honor, tile.West).Kind(), tile.New(tile.Honor, tile.North).Kind(),
	tile.New(tile.Honor, tile.White).Kind(), tile.New(tile.Honor, tile.Green).Kind(),
	tile.New(tile.Honor, tile.Red).Kind(),
}

// IsThirteenOrphans checks for the 13 Orphans hand (14 tiles): each required
// terminal and honor once, one of them twice, nothing else.
func IsThirteenOrphans(tiles []tile.Tile) bool {
	if len(tiles) != CompleteSize {
		return false
	}
	c, ok := countValid(tiles)
	return ok && isThirteenOrphans(c)
}

// IsSevenPairs checks for the Seven Pairs hand (14 tiles): seven distinct
// kinds, two of each. Four of a kind is not two pairs.
func IsSevenPairs(tiles []tile.Tile) bool {
	if len(tiles) != CompleteSize {
		return false
	}
	c, ok := countValid(tiles)
	return ok && isSevenPairs(c)
}

func isThirteenOrphans(c tile.Counts) bool {
	if c.Total() != CompleteSize {
		return false
	}
	pairs := 0
	for _, k := range orphanKinds {
		switch c[k] {
		case 1:
		case 2:
			pairs++
		default:
			return false
		}
	}
	// 12 singles + 1 pair over the required kinds leaves no room for others.
	return pairs == 1
}

func isSevenPairs(c tile.Counts) bool {
	if c.Total() != CompleteSize {
		return false
	}
	pairs := 0
	for _, n := range c {
		switch n {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}
