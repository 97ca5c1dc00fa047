package hand

import "mahjong-eval/tile"

// Shanten estimates how many tile exchanges separate a hand from tenpai.
//
// A complete 14-tile hand reports -1 and a tenpai hand 0; both come from the
// exact completion checks. Any other hand gets
//
//	max(1, 8 - 2*melds - pair - partials)
//
// minimized over every standard-shape split of the hand. Seven Pairs and
// Thirteen Orphans only count once they are tenpai, so for hands heading
// that way the value is an upper bound.
//
// A 14-tile hand counts as tenpai when some discard leaves a tenpai hand.
func Shanten(tiles []tile.Tile) (int, error) {
	return (*Analyzer)(nil).Shanten(tiles)
}

// Shanten is the memoized form of the package-level function.
func (a *Analyzer) Shanten(tiles []tile.Tile) (int, error) {
	switch len(tiles) {
	case ReadySize:
		counts, err := validateTiles(tiles)
		if err != nil {
			return 0, err
		}
		if len(a.waitKinds(counts)) > 0 {
			return 0, nil
		}
		return estimateShanten(counts), nil
	case CompleteSize:
		counts, err := validateTiles(tiles)
		if err != nil {
			return 0, err
		}
		if a.complete(counts) {
			return -1, nil
		}
		tenpai := false
		a.eachTenpaiDiscard(counts, func(tile.Kind, []tile.Kind) bool {
			tenpai = true
			return false
		})
		if tenpai {
			return 0, nil
		}
		return estimateShanten(counts), nil
	}
	return 0, sizeError(len(tiles), ReadySize)
}

// estimateShanten searches every split of the counts into melds, pairs and
// two-tile partial runs, leaving any tile unused, and keeps the lowest
//
//	8 - 2*melds - pair - partials
//
// Extra pairs count as partials, and melds plus partials are capped at four.
// Adding tiles to a hand never raises the result.
func estimateShanten(c tile.Counts) int {
	best := 8
	searchBlocks(&c, 0, c.Total(), blocks{}, &best)
	if best < 1 {
		best = 1
	}
	return best
}

// blocks tallies one partial split of a hand.
type blocks struct {
	melds, pairs, partials int
}

func (b blocks) shanten() int {
	pair, partials := 0, b.partials
	if b.pairs > 0 {
		pair = 1
		partials += b.pairs - 1
	}
	if b.melds+partials > 4 {
		partials = 4 - b.melds
	}
	if partials < 0 {
		partials = 0
	}
	return 8 - 2*b.melds - pair - partials
}

// maxGain bounds how far left tiles can still lower the value: two per
// meld of three, one for a leftover pair or partial.
func maxGain(left int) int {
	return 2*(left/3) + (left%3)/2
}

// searchBlocks walks kinds lowest-first. At kind k it tries a triplet, a
// sequence, a pair and both partial shapes, then leaves one copy unused.
func searchBlocks(c *tile.Counts, k tile.Kind, left int, b blocks, best *int) {
	for k < tile.NumKinds && c[k] == 0 {
		k++
	}
	cur := b.shanten()
	if k == tile.NumKinds {
		if cur < *best {
			*best = cur
		}
		return
	}
	if cur-maxGain(left) >= *best {
		return
	}

	if c[k] >= 3 {
		c[k] -= 3
		searchBlocks(c, k, left-3, blocks{b.melds + 1, b.pairs, b.partials}, best)
		c[k] += 3
	}
	if startsSequence(*c, k) {
		c[k], c[k+1], c[k+2] = c[k]-1, c[k+1]-1, c[k+2]-1
		searchBlocks(c, k, left-3, blocks{b.melds + 1, b.pairs, b.partials}, best)
		c[k], c[k+1], c[k+2] = c[k]+1, c[k+1]+1, c[k+2]+1
	}
	if c[k] >= 2 {
		c[k] -= 2
		searchBlocks(c, k, left-2, blocks{b.melds, b.pairs + 1, b.partials}, best)
		c[k] += 2
	}
	for _, next := range partialPartners(*c, k) {
		c[k]--
		c[next]--
		searchBlocks(c, k, left-2, blocks{b.melds, b.pairs, b.partials + 1}, best)
		c[k]++
		c[next]++
	}
	c[k]--
	searchBlocks(c, k, left-1, b, best)
	c[k]++
}

// partialPartners lists the kinds that form a two-sided (k, k+1) or one-gap
// (k, k+2) run with k.
func partialPartners(c tile.Counts, k tile.Kind) []tile.Kind {
	t := k.Tile()
	if t.Suit == tile.Honor {
		return nil
	}
	var out []tile.Kind
	if t.Value <= 8 && c[k+1] > 0 {
		out = append(out, k+1)
	}
	if t.Value <= 7 && c[k+2] > 0 {
		out = append(out, k+2)
	}
	return out
}
