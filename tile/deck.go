package tile

import "math/rand"

const (
	HandSize   = 13
	TotalTiles = 136 // 4 * (9*3 + 7)
)

// AllKinds returns one plain tile for each of the 34 kinds in canonical order.
// Useful for Tenpai checks.
func AllKinds() []Tile {
	out := make([]Tile, NumKinds)
	for k := range out {
		out[k] = Kind(k).Tile()
	}
	return out
}

// Deck creates a standard 136-tile set. With redFives, one five of each
// numbered suit is red.
func Deck(redFives bool) []Tile {
	deck := make([]Tile, 0, TotalTiles)
	for k := Kind(0); k < NumKinds; k++ {
		t := k.Tile()
		for i := 0; i < 4; i++ {
			c := t
			if redFives && t.Suit != Honor && t.Value == 5 && i == 0 {
				c.IsRed = true
			}
			deck = append(deck, c)
		}
	}
	return deck
}

// Shuffle shuffles tiles in place using the given source.
func Shuffle(r *rand.Rand, tiles []Tile) {
	r.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
}
