package yaku

import (
	"fmt"

	"mahjong-eval/hand"
	mjerrors "mahjong-eval/internal/errors"
	"mahjong-eval/tile"
)

// Context holds the situational facts of a win that the tiles alone do not
// carry. The zero value is a closed ron with no winds, flags or dora.
type Context struct {
	SeatWind  tile.Wind // NoWind: seat wind yakuhai cannot apply
	RoundWind tile.Wind // NoWind: round wind yakuhai cannot apply

	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool

	Tsumo     bool // self-draw; false means ron
	LastTile  bool // last tile of the wall (haitei) or its discard (houtei)
	AfterKan  bool // replacement tile after a quad
	RobbedKan bool // ron on a tile added to a quad
	FirstTurn bool // uninterrupted first go-around
	Dealer    bool

	Open  bool        // any meld claimed from a discard
	Melds []hand.Meld // declared melds, quads included

	DoraIndicators    []tile.Tile
	UraDoraIndicators []tile.Tile // counted only under riichi
	RedFives          bool
}

// Closed reports whether the hand counts as concealed: nothing claimed and
// every declared meld a concealed quad.
func (c Context) Closed() bool {
	if c.Open {
		return false
	}
	for _, m := range c.Melds {
		if m.Open || m.Kind != hand.Quad {
			return false
		}
	}
	return true
}

// Quads returns the number of declared quads.
func (c Context) Quads() int {
	n := 0
	for _, m := range c.Melds {
		if m.Kind == hand.Quad {
			n++
		}
	}
	return n
}

// Validate reports context fields that are missing or contradictory. CheckAll
// never fails on these; the affected yaku simply do not apply. Hosts can use
// Validate to log incomplete contexts.
func (c Context) Validate() error {
	unsupported := func(field, msg string) error {
		return mjerrors.WithMetadata(mjerrors.CodeUnsupportedContext, msg,
			map[string]string{"field": field})
	}
	switch {
	case c.SeatWind == tile.NoWind:
		return unsupported("seat_wind", "seat wind missing")
	case c.RoundWind == tile.NoWind:
		return unsupported("round_wind", "round wind missing")
	case c.Ippatsu && !c.Riichi && !c.DoubleRiichi:
		return unsupported("ippatsu", "ippatsu without riichi")
	case c.Riichi && c.DoubleRiichi:
		return unsupported("double_riichi", "riichi and double riichi both set")
	case (c.Riichi || c.DoubleRiichi) && !c.Closed():
		return unsupported("riichi", "riichi on an open hand")
	case c.AfterKan && !c.Tsumo:
		return unsupported("after_kan", "replacement tile win must be tsumo")
	case c.RobbedKan && c.Tsumo:
		return unsupported("robbed_kan", "robbing a quad must be ron")
	case c.Dealer && c.FirstTurn && !c.Tsumo:
		return unsupported("first_turn", "dealer cannot ron on the first turn")
	}
	for i, m := range c.Melds {
		if !m.Valid() {
			return mjerrors.WithMetadata(mjerrors.CodeInvalidMeld,
				fmt.Sprintf("meld %d is not a real meld: %v", i, m),
				map[string]string{"meld": fmt.Sprint(i)})
		}
	}
	return nil
}
