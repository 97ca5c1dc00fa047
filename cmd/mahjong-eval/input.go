package main

import (
	"fmt"
	"strings"

	"mahjong-eval/hand"
	mjerrors "mahjong-eval/internal/errors"
	"mahjong-eval/tile"
)

// splitLine separates a stdin line into hand and optional win tile. The win
// tile is the last field when the line has more than one.
func splitLine(line string) (handStr, winStr string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return line, ""
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
}

func parseOne(s string) (tile.Tile, error) {
	tiles, err := tile.Parse(s)
	if err != nil {
		return tile.Tile{}, err
	}
	if len(tiles) != 1 {
		return tile.Tile{}, mjerrors.WithMetadata(mjerrors.CodeInvalidTile,
			fmt.Sprintf("win %q is %d tiles, want 1", s, len(tiles)),
			map[string]string{"input": s})
	}
	return tiles[0], nil
}

// parseMelds reads comma-separated declared melds. Each item is
// "<call>:<tiles>" where call is chi, pon, kan (open quad) or ankan
// (concealed quad).
func parseMelds(s string) ([]hand.Meld, error) {
	var melds []hand.Meld
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		call, tilesStr, ok := strings.Cut(item, ":")
		if !ok {
			return nil, meldError(item, "want <call>:<tiles>")
		}
		tiles, err := tile.Parse(tilesStr)
		if err != nil {
			return nil, mjerrors.Wrap(mjerrors.CodeInvalidMeld, fmt.Sprintf("meld %q", item), err)
		}
		sorted := tile.Sorted(tiles)

		var m hand.Meld
		switch strings.ToLower(call) {
		case "chi":
			if len(sorted) != 3 {
				return nil, meldError(item, "chi takes 3 tiles")
			}
			m = hand.NewSequence(sorted[0], true)
		case "pon":
			if len(sorted) != 3 {
				return nil, meldError(item, "pon takes 3 tiles")
			}
			m = hand.NewTriplet(sorted[0], true)
		case "kan", "ankan":
			if len(sorted) != 4 {
				return nil, meldError(item, call+" takes 4 tiles")
			}
			m = hand.NewQuad(sorted[0], call == "kan")
		default:
			return nil, meldError(item, fmt.Sprintf("unknown call %q", call))
		}

		// The tiles given must be the tiles the meld names.
		want := m.Tiles()
		for i := range want {
			if !sorted[i].Equals(want[i]) {
				return nil, meldError(item, "tiles do not form a "+strings.ToLower(m.Kind.String()))
			}
		}
		melds = append(melds, m)
	}
	return melds, nil
}

func meldError(item, msg string) error {
	return mjerrors.WithMetadata(mjerrors.CodeInvalidMeld,
		fmt.Sprintf("meld %q: %s", item, msg),
		map[string]string{"meld": item})
}
