package yaku

import "mahjong-eval/tile"

// DoraFromIndicator returns the tile indicated by a dora indicator: the next
// value in a numbered suit (9 wraps to 1), the next wind (North wraps to
// East) or the next dragon (Red wraps to White). The result is never red.
func DoraFromIndicator(indicator tile.Tile) tile.Tile {
	dora := indicator.Plain()
	switch {
	case indicator.IsWind():
		dora.Value = indicator.Value%4 + 1
	case indicator.IsDragon():
		dora.Value = tile.White + (indicator.Value-tile.White+1)%3
	default:
		dora.Value = indicator.Value%9 + 1
	}
	return dora
}

// CountDora counts the dora in tiles: one per tile matching an indicated
// tile, per indicator. Ura dora count only under riichi and red fives only
// when the ruleset uses them.
func CountDora(tiles []tile.Tile, ctx Context) int {
	count := countIndicated(tiles, ctx.DoraIndicators)
	if ctx.Riichi || ctx.DoubleRiichi {
		count += countIndicated(tiles, ctx.UraDoraIndicators)
	}
	if ctx.RedFives {
		count += tile.CountRed(tiles)
	}
	return count
}

func countIndicated(tiles []tile.Tile, indicators []tile.Tile) int {
	count := 0
	for _, indicator := range indicators {
		dora := DoraFromIndicator(indicator)
		for _, t := range tiles {
			if t.Equals(dora) {
				count++
			}
		}
	}
	return count
}
