package tile

import (
	"math/rand"
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []Tile
	}{
		{"1m2m3m", []Tile{New(Man, 1), New(Man, 2), New(Man, 3)}},
		{"123m 9p", []Tile{New(Man, 1), New(Man, 2), New(Man, 3), New(Pin, 9)}},
		{"05s", []Tile{RedFive(Sou), New(Sou, 5)}},
		{"17z", []Tile{New(Honor, East), New(Honor, Red)}},
		{"E S W N w g r", []Tile{
			New(Honor, East), New(Honor, South), New(Honor, West), New(Honor, North),
			New(Honor, White), New(Honor, Green), New(Honor, Red),
		}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Parse(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"123", "m", "8z", "0z", "12x", "1E"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	tiles := MustParse("9s 1m E 0p 5p r")
	if got, want := Format(tiles), "1m50p9s17z"; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestRedFiveEquality(t *testing.T) {
	red, plain := RedFive(Pin), New(Pin, 5)
	if !red.Equals(plain) {
		t.Fatal("red five should equal plain five")
	}
	if Compare(red, plain) != 0 {
		t.Fatal("red five should compare equal to plain five")
	}
	if red.Kind() != plain.Kind() {
		t.Fatal("red five should share the plain five's kind")
	}
	if !red.IsRedFive() || plain.IsRedFive() {
		t.Fatal("IsRedFive should distinguish the variants")
	}
	if red == plain {
		t.Fatal("struct equality should still see the red flag")
	}
}

func TestCanonicalOrder(t *testing.T) {
	tiles := MustParse("r E 9s 1p 1m w N 5m")
	sort.Sort(BySuitValue(tiles))
	want := "1m 5m 1p 9s E N w r"
	if got := MustParse(want); len(got) != len(tiles) {
		t.Fatal("fixture size mismatch")
	}
	for i, w := range MustParse(want) {
		if !tiles[i].Equals(w) {
			t.Fatalf("sorted[%d] = %v, want %v (all: %v)", i, tiles[i], w, tiles)
		}
	}
}

func TestKindRoundTrip(t *testing.T) {
	kinds := AllKinds()
	if len(kinds) != NumKinds {
		t.Fatalf("AllKinds has %d tiles, want %d", len(kinds), NumKinds)
	}
	for k, tl := range kinds {
		if !tl.Valid() {
			t.Errorf("kind %d tile %v invalid", k, tl)
		}
		if tl.Kind() != Kind(k) {
			t.Errorf("kind %d round-trips to %d", k, tl.Kind())
		}
		if k > 0 && Compare(kinds[k-1], tl) >= 0 {
			t.Errorf("kinds out of order at %d", k)
		}
	}
}

func TestValid(t *testing.T) {
	invalid := []Tile{
		{Suit: Man, Value: 0},
		{Suit: Sou, Value: 10},
		{Suit: Honor, Value: 8},
		{Suit: Pin, Value: 4, IsRed: true},
		{Suit: Honor, Value: 5, IsRed: true},
		{Suit: Suit(7), Value: 1},
	}
	for _, tl := range invalid {
		if tl.Valid() {
			t.Errorf("%+v should be invalid", tl)
		}
	}
}

func TestDeck(t *testing.T) {
	deck := Deck(true)
	if len(deck) != TotalTiles {
		t.Fatalf("deck has %d tiles, want %d", len(deck), TotalTiles)
	}
	counts := CountTiles(deck)
	for k, n := range counts {
		if n != 4 {
			t.Errorf("kind %v has %d copies", Kind(k).Tile(), n)
		}
	}
	if got := CountRed(deck); got != 3 {
		t.Fatalf("red fives = %d, want 3", got)
	}
	if got := CountRed(Deck(false)); got != 0 {
		t.Fatalf("red fives without rule = %d, want 0", got)
	}

	r := rand.New(rand.NewSource(7))
	Shuffle(r, deck)
	if CountTiles(deck) != counts {
		t.Fatal("shuffle changed the multiset")
	}
}

func TestCounts(t *testing.T) {
	c := CountTiles(MustParse("1112m 0p5p E"))
	if c.Total() != 7 {
		t.Fatalf("Total = %d", c.Total())
	}
	if k, n := c.Max(); k != New(Man, 1).Kind() || n != 3 {
		t.Fatalf("Max = %v,%d", k, n)
	}
	if c.Of(New(Pin, 5)) != 2 {
		t.Fatal("red and plain five should count together")
	}
	if got := Format(c.Tiles()); got != "1112m55p1z" {
		t.Fatalf("Tiles = %s", got)
	}
}

func TestParseWind(t *testing.T) {
	for in, want := range map[string]Wind{"E": WindEast, "south": WindSouth, "W": WindWest, "North": WindNorth, "": NoWind} {
		got, err := ParseWind(in)
		if err != nil || got != want {
			t.Errorf("ParseWind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseWind("up"); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := NoWind.Tile(); ok {
		t.Fatal("NoWind should have no tile")
	}
}
