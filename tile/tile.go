// Package tile defines mahjong tile identity, ordering and counting.
package tile

import "fmt"

// Suit is one of the three numbered suits or the honor suit.
type Suit int

const (
	Man   Suit = iota // characters
	Pin               // circles
	Sou               // bamboo
	Honor             // winds and dragons
)

func (s Suit) String() string {
	switch s {
	case Man:
		return "Man"
	case Pin:
		return "Pin"
	case Sou:
		return "Sou"
	case Honor:
		return "Honor"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Honor tile values, in canonical order.
const (
	East  = 1
	South = 2
	West  = 3
	North = 4
	White = 5
	Green = 6
	Red   = 7
)

var honorNames = [...]string{"", "East", "South", "West", "North", "White", "Green", "Red"}

// Tile represents a mahjong tile
type Tile struct {
	Suit  Suit
	Value int  // 1-9 for numbered suits, East..Red (1-7) for honors
	IsRed bool // Is it a red five?
}

// New returns a plain tile of the given suit and value.
func New(suit Suit, value int) Tile {
	return Tile{Suit: suit, Value: value}
}

// RedFive returns the red variant of the five in a numbered suit.
func RedFive(suit Suit) Tile {
	return Tile{Suit: suit, Value: 5, IsRed: true}
}

// Valid reports whether the tile names one of the 34 kinds.
func (t Tile) Valid() bool {
	switch t.Suit {
	case Man, Pin, Sou:
		if t.IsRed && t.Value != 5 {
			return false
		}
		return t.Value >= 1 && t.Value <= 9
	case Honor:
		return !t.IsRed && t.Value >= East && t.Value <= Red
	}
	return false
}

// IsRedFive reports whether the tile is a red five. Red fives compare equal to
// plain fives and differ only for dora counting.
func (t Tile) IsRedFive() bool {
	return t.IsRed && t.Value == 5 && t.Suit != Honor
}

// Equals compares suit and value only.
func (t Tile) Equals(o Tile) bool {
	return t.Suit == o.Suit && t.Value == o.Value
}

// Plain returns the tile with the red flag cleared.
func (t Tile) Plain() Tile {
	t.IsRed = false
	return t
}

func (t Tile) IsHonor() bool { return t.Suit == Honor }

func (t Tile) IsWind() bool { return t.Suit == Honor && t.Value >= East && t.Value <= North }

func (t Tile) IsDragon() bool { return t.Suit == Honor && t.Value >= White && t.Value <= Red }

// IsTerminal checks if a tile is a 1 or 9 of a numbered suit.
func (t Tile) IsTerminal() bool {
	return t.Suit != Honor && (t.Value == 1 || t.Value == 9)
}

// IsTerminalOrHonor reports the "yaochuu" tiles.
func (t Tile) IsTerminalOrHonor() bool {
	return t.IsHonor() || t.IsTerminal()
}

// IsSimple checks if a tile is a number tile from 2 to 8.
func (t Tile) IsSimple() bool {
	return t.Suit != Honor && t.Value >= 2 && t.Value <= 8
}

// Kind is the canonical key of a tile, 0..33, ordered Man < Pin < Sou < Honor
// and by value within a suit. Red fives share the kind of the plain five.
type Kind int

// NumKinds is the size of the tile universe.
const NumKinds = 34

// Kind returns the canonical key of the tile.
func (t Tile) Kind() Kind {
	return Kind(int(t.Suit)*9 + t.Value - 1)
}

// Tile returns the plain representative of the kind.
func (k Kind) Tile() Tile {
	return Tile{Suit: Suit(int(k) / 9), Value: int(k)%9 + 1}
}

// Compare orders tiles by suit then value. It returns -1, 0 or +1 and treats
// red fives as plain fives.
func Compare(a, b Tile) int {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}

// String renders the tile the way the game log names it, e.g. "Man 5",
// "Red Pin 5", "East".
func (t Tile) String() string {
	if t.Suit == Honor {
		if t.Value >= East && t.Value <= Red {
			return honorNames[t.Value]
		}
		return fmt.Sprintf("Honor %d", t.Value)
	}
	if t.IsRedFive() {
		return fmt.Sprintf("Red %s %d", t.Suit, t.Value)
	}
	return fmt.Sprintf("%s %d", t.Suit, t.Value)
}

// Wind is a seat or round wind. The zero value means the wind is unknown.
type Wind int

const (
	NoWind Wind = iota
	WindEast
	WindSouth
	WindWest
	WindNorth
)

// Tile returns the honor tile of the wind.
func (w Wind) Tile() (Tile, bool) {
	if w < WindEast || w > WindNorth {
		return Tile{}, false
	}
	return Tile{Suit: Honor, Value: int(w)}, true
}

func (w Wind) String() string {
	if t, ok := w.Tile(); ok {
		return t.String()
	}
	return "None"
}

// ParseWind accepts "E", "east", "South" and so on.
func ParseWind(s string) (Wind, error) {
	switch s {
	case "E", "e", "East", "east":
		return WindEast, nil
	case "S", "s", "South", "south":
		return WindSouth, nil
	case "W", "w", "West", "west":
		return WindWest, nil
	case "N", "n", "North", "north":
		return WindNorth, nil
	case "":
		return NoWind, nil
	}
	return NoWind, fmt.Errorf("unknown wind %q", s)
}
