// Package hand answers completion, waiting and shanten queries over a hand
// snapshot. All functions are pure: they never write through their inputs.
package hand

import (
	"fmt"

	"mahjong-eval/tile"
)

// MeldKind represents the type of a group in a decomposed hand.
type MeldKind int

const (
	Sequence MeldKind = iota // Chi
	Triplet                  // Pon / Ankou
	Quad                     // Kan (Ankan, Daiminkan, Shouminkan)
)

func (k MeldKind) String() string {
	switch k {
	case Sequence:
		return "Sequence"
	case Triplet:
		return "Triplet"
	case Quad:
		return "Quad"
	}
	return fmt.Sprintf("MeldKind(%d)", int(k))
}

// Meld is one group of a hand. First is the lowest tile of a sequence or the
// repeated tile of a triplet or quad.
type Meld struct {
	Kind  MeldKind
	First tile.Tile
	Open  bool // formed by claiming a discard
}

// NewSequence builds the sequence starting at first.
func NewSequence(first tile.Tile, open bool) Meld {
	return Meld{Kind: Sequence, First: first.Plain(), Open: open}
}

// NewTriplet builds a triplet of t.
func NewTriplet(t tile.Tile, open bool) Meld {
	return Meld{Kind: Triplet, First: t.Plain(), Open: open}
}

// NewQuad builds a quad of t.
func NewQuad(t tile.Tile, open bool) Meld {
	return Meld{Kind: Quad, First: t.Plain(), Open: open}
}

// Tiles lists the plain tiles of the meld. A quad lists four.
func (m Meld) Tiles() []tile.Tile {
	switch m.Kind {
	case Sequence:
		return []tile.Tile{
			m.First,
			tile.New(m.First.Suit, m.First.Value+1),
			tile.New(m.First.Suit, m.First.Value+2),
		}
	case Quad:
		return []tile.Tile{m.First, m.First, m.First, m.First}
	}
	return []tile.Tile{m.First, m.First, m.First}
}

// HandTiles lists the tiles the meld occupies in a 14-tile hand, where a
// quad is counted as a triplet.
func (m Meld) HandTiles() []tile.Tile {
	if m.Kind == Quad {
		return []tile.Tile{m.First, m.First, m.First}
	}
	return m.Tiles()
}

// IsTripletLike reports triplets and quads.
func (m Meld) IsTripletLike() bool {
	return m.Kind == Triplet || m.Kind == Quad
}

// Contains reports whether a tile of t's kind is part of the meld.
func (m Meld) Contains(t tile.Tile) bool {
	if m.Kind != Sequence {
		return m.First.Equals(t)
	}
	return t.Suit == m.First.Suit && t.Value >= m.First.Value && t.Value <= m.First.Value+2
}

// HasTerminalOrHonor reports whether any tile of the meld is a 1, 9 or honor.
func (m Meld) HasTerminalOrHonor() bool {
	if m.Kind != Sequence {
		return m.First.IsTerminalOrHonor()
	}
	return m.First.Value == 1 || m.First.Value == 7
}

// Valid checks the meld names real tiles.
func (m Meld) Valid() bool {
	if !m.First.Valid() {
		return false
	}
	if m.Kind == Sequence {
		return m.First.Suit != tile.Honor && m.First.Value <= 7
	}
	return m.Kind == Triplet || m.Kind == Quad
}

func (m Meld) String() string {
	state := "closed"
	if m.Open {
		state = "open"
	}
	return fmt.Sprintf("%s(%s, %s)", m.Kind, tile.Format(m.Tiles()), state)
}

// Decomposition is four melds plus one pair that together reconstruct a
// complete hand.
type Decomposition struct {
	Melds []Meld
	Pair  tile.Tile
}

// Sequences returns the sequence melds in order.
func (d Decomposition) Sequences() []Meld {
	var out []Meld
	for _, m := range d.Melds {
		if m.Kind == Sequence {
			out = append(out, m)
		}
	}
	return out
}

// Triplets returns the triplet and quad melds in order.
func (d Decomposition) Triplets() []Meld {
	var out []Meld
	for _, m := range d.Melds {
		if m.IsTripletLike() {
			out = append(out, m)
		}
	}
	return out
}
