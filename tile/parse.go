package tile

import (
	"fmt"
	"strings"

	mjerrors "mahjong-eval/internal/errors"
)

// Parse reads tile notation into tiles, keeping input order.
//
// Digits are collected until a suit letter closes them: "123m 406p 789s 11z".
// A 0 in a numbered suit is a red five; honors use 1-7 with suit z. The
// single letters E S W N (winds) and w g r (dragons) are also accepted.
// Whitespace is ignored.
func Parse(s string) ([]Tile, error) {
	var tiles []Tile
	var pending []int

	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			pending = append(pending, int(r-'0'))
		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			if len(pending) == 0 {
				return nil, parseError(s, i, "suit letter without digits")
			}
			suit := map[rune]Suit{'m': Man, 'p': Pin, 's': Sou, 'z': Honor}[r]
			for _, d := range pending {
				t := Tile{Suit: suit, Value: d}
				if d == 0 && suit != Honor {
					t = RedFive(suit)
				}
				if !t.Valid() {
					return nil, parseError(s, i, fmt.Sprintf("no tile %d%c", d, r))
				}
				tiles = append(tiles, t)
			}
			pending = pending[:0]
		case strings.ContainsRune("ESWNwgr", r):
			if len(pending) > 0 {
				return nil, parseError(s, i, "digits without suit letter")
			}
			tiles = append(tiles, New(Honor, strings.IndexRune("ESWNwgr", r)+1))
		case r == ' ' || r == '\t' || r == ',':
			if len(pending) > 0 {
				return nil, parseError(s, i, "digits without suit letter")
			}
		default:
			return nil, parseError(s, i, fmt.Sprintf("unexpected %q", r))
		}
	}
	if len(pending) > 0 {
		return nil, parseError(s, len(s), "digits without suit letter")
	}
	return tiles, nil
}

// MustParse is Parse for fixtures and tests; it panics on error.
func MustParse(s string) []Tile {
	tiles, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// MustParseOne parses exactly one tile.
func MustParseOne(s string) Tile {
	tiles := MustParse(s)
	if len(tiles) != 1 {
		panic(fmt.Sprintf("tile: %q is %d tiles, want 1", s, len(tiles)))
	}
	return tiles[0]
}

// Format renders tiles in compact notation, sorted, e.g. "123m055p11z".
func Format(tiles []Tile) string {
	var b strings.Builder
	sorted := Sorted(tiles)
	letters := [...]byte{'m', 'p', 's', 'z'}
	for i, t := range sorted {
		if t.IsRedFive() {
			b.WriteByte('0')
		} else {
			fmt.Fprintf(&b, "%d", t.Value)
		}
		if i == len(sorted)-1 || sorted[i+1].Suit != t.Suit {
			b.WriteByte(letters[t.Suit])
		}
	}
	return b.String()
}

func parseError(s string, pos int, msg string) error {
	return mjerrors.WithMetadata(mjerrors.CodeInvalidTile,
		fmt.Sprintf("parse %q at %d: %s", s, pos, msg),
		map[string]string{"input": s})
}
