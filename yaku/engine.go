// Package yaku evaluates the scoring rules of a completed hand against the
// situational context of the win and reports the han they are worth.
package yaku

import (
	"fmt"
	"strconv"

	"mahjong-eval/hand"
	mjerrors "mahjong-eval/internal/errors"
	"mahjong-eval/tile"
)

// ErrInvalidMeld is returned for declared melds that are not real melds or
// whose tiles are missing from the hand.
var ErrInvalidMeld = mjerrors.New(mjerrors.CodeInvalidMeld, "invalid meld")

// ErrUnsupportedContext matches the errors reported by Context.Validate.
var ErrUnsupportedContext = mjerrors.New(mjerrors.CodeUnsupportedContext, "unsupported context")

// Record is one scoring line of an evaluated hand.
type Record struct {
	ID      string
	Name    string
	Han     int
	Yakuman bool
}

func (r Record) String() string {
	if r.Yakuman {
		return r.Name + " (Yakuman)"
	}
	return fmt.Sprintf("%s (%d Han)", r.Name, r.Han)
}

// TotalHan sums the han of records.
func TotalHan(records []Record) int {
	han := 0
	for _, r := range records {
		han += r.Han
	}
	return han
}

// CheckAll lists every yaku the completed hand scores, in catalogue order,
// followed by a single dora record when any dora are held.
//
// tiles are the 13 tiles held before the win, declared meld tiles included.
// Each declared quad adds its fourth tile, so len(tiles) is 13 plus the
// number of quads in ctx.Melds. A hand that does not complete with win yields
// no records and no error.
//
// If any yakuman applies only yakuman are returned: no standard yaku and no
// dora.
func CheckAll(tiles []tile.Tile, win tile.Tile, ctx Context) ([]Record, error) {
	e, err := newEval(tiles, win, ctx)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return []Record{}, nil
	}

	var records []Record
	for _, g := range groupOrder {
		if g == GroupDora {
			continue
		}
		for _, entry := range catalog {
			if entry.Group != g {
				continue
			}
			han := entry.Han(e.closed)
			if han == 0 || !predicates[entry.ID](e) {
				continue
			}
			records = append(records, Record{ID: entry.ID, Name: entry.Name, Han: han, Yakuman: entry.Yakuman})
		}
		if g == GroupYakuman && len(records) > 0 {
			return records, nil
		}
	}

	if n := CountDora(e.physical, ctx); n > 0 {
		dora, _ := Lookup("dora")
		records = append(records, Record{ID: dora.ID, Name: dora.Name, Han: n})
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// IsComplete reports whether the hand completes with win under the declared
// melds of ctx, using the same reading CheckAll does. It tells an incomplete
// hand from a complete one that scores no yaku.
func IsComplete(tiles []tile.Tile, win tile.Tile, ctx Context) (bool, error) {
	e, err := newEval(tiles, win, ctx)
	if err != nil {
		return false, err
	}
	return e != nil, nil
}

// eval is the per-call view of a completed hand shared by the predicates.
type eval struct {
	ctx      Context
	win      tile.Tile
	physical []tile.Tile // every tile, quads as four
	tiles    []tile.Tile // the 14-tile hand, quads as three
	counts   tile.Counts
	closed   bool

	decomp     *hand.Decomposition // nil for a hand with no standard reading
	sevenPairs bool
	orphans    bool
}

// newEval validates the input and builds the shared view. It returns nil
// without error when the hand is not complete.
func newEval(tiles []tile.Tile, win tile.Tile, ctx Context) (*eval, error) {
	quads := 0
	for i, m := range ctx.Melds {
		if !m.Valid() {
			return nil, mjerrors.WithMetadata(mjerrors.CodeInvalidMeld,
				fmt.Sprintf("meld %d is not a real meld: %v", i, m),
				map[string]string{"meld": strconv.Itoa(i)})
		}
		if m.Kind == hand.Quad {
			quads++
		}
	}
	if len(ctx.Melds) > 4 {
		return nil, mjerrors.WithMetadata(mjerrors.CodeInvalidMeld,
			fmt.Sprintf("%d declared melds, at most 4", len(ctx.Melds)),
			map[string]string{"melds": strconv.Itoa(len(ctx.Melds))})
	}

	for _, ind := range []struct {
		name  string
		tiles []tile.Tile
	}{{"dora", ctx.DoraIndicators}, {"ura", ctx.UraDoraIndicators}} {
		for i, t := range ind.tiles {
			if !t.Valid() {
				return nil, mjerrors.WithMetadata(mjerrors.CodeInvalidTile,
					fmt.Sprintf("%s indicator %d is not a tile: %+v", ind.name, i, t),
					map[string]string{"indicator": ind.name, "index": strconv.Itoa(i)})
			}
		}
	}

	physical := make([]tile.Tile, 0, len(tiles)+1)
	physical = append(physical, tiles...)
	physical = append(physical, win)
	counts, err := hand.Validate(physical, hand.CompleteSize+quads)
	if err != nil {
		return nil, err
	}
	for i, m := range ctx.Melds {
		for _, t := range m.Tiles() {
			if counts[t.Kind()] == 0 {
				return nil, mjerrors.WithMetadata(mjerrors.CodeInvalidMeld,
					fmt.Sprintf("meld %d needs %s, not in hand", i, t),
					map[string]string{"meld": strconv.Itoa(i), "tile": t.String()})
			}
			counts[t.Kind()]--
		}
	}

	norm := withoutQuadExtras(physical, ctx.Melds)
	e := &eval{
		ctx:      ctx,
		win:      win,
		physical: physical,
		tiles:    norm,
		counts:   tile.CountTiles(norm),
		closed:   ctx.Closed(),
	}
	if d, ok := hand.DecomposeWithMelds(norm, ctx.Melds); ok {
		e.decomp = &d
	}
	if len(ctx.Melds) == 0 {
		e.sevenPairs = hand.IsSevenPairs(norm)
		e.orphans = hand.IsThirteenOrphans(norm)
	}
	if e.decomp == nil && !e.sevenPairs && !e.orphans {
		return nil, nil
	}
	return e, nil
}

// withoutQuadExtras drops one copy of each declared quad, preferring a plain
// tile over a red five, so the rest of the evaluation sees 14 tiles.
func withoutQuadExtras(tiles []tile.Tile, melds []hand.Meld) []tile.Tile {
	out := append([]tile.Tile(nil), tiles...)
	for _, m := range melds {
		if m.Kind != hand.Quad {
			continue
		}
		drop := -1
		for i, t := range out {
			if !t.Equals(m.First) {
				continue
			}
			if drop < 0 || out[drop].IsRedFive() {
				drop = i
			}
		}
		if drop >= 0 {
			out = append(out[:drop], out[drop+1:]...)
		}
	}
	return out
}
