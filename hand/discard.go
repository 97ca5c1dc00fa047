package hand

import "mahjong-eval/tile"

// DiscardOption is one discard from a 14-tile hand that leaves it tenpai.
type DiscardOption struct {
	Discard tile.Tile   // plain representative of the kind discarded
	Waits   []tile.Tile // waits of the remaining 13 tiles
}

// TenpaiDiscards lists, in canonical order, each tile kind whose discard
// leaves a 14-tile hand tenpai. A complete hand still lists its options.
func TenpaiDiscards(tiles []tile.Tile) ([]DiscardOption, error) {
	return (*Analyzer)(nil).TenpaiDiscards(tiles)
}

// TenpaiDiscards is the memoized form of the package-level function.
func (a *Analyzer) TenpaiDiscards(tiles []tile.Tile) ([]DiscardOption, error) {
	counts, err := Validate(tiles, CompleteSize)
	if err != nil {
		return nil, err
	}
	options := []DiscardOption{}
	a.eachTenpaiDiscard(counts, func(k tile.Kind, waits []tile.Kind) bool {
		opt := DiscardOption{Discard: k.Tile(), Waits: make([]tile.Tile, len(waits))}
		for i, w := range waits {
			opt.Waits[i] = w.Tile()
		}
		options = append(options, opt)
		return true
	})
	return options, nil
}

// eachTenpaiDiscard calls fn for every held kind whose removal leaves a
// tenpai hand, stopping when fn returns false.
func (a *Analyzer) eachTenpaiDiscard(c tile.Counts, fn func(tile.Kind, []tile.Kind) bool) {
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		if c[k] == 0 {
			continue
		}
		after := c
		after[k]--
		if waits := a.waitKinds(after); len(waits) > 0 && !fn(k, waits) {
			return
		}
	}
}
