package hand

import (
	"fmt"
	"strconv"

	mjerrors "mahjong-eval/internal/errors"
	"mahjong-eval/tile"
)

const (
	// ReadySize is the size of a hand waiting for its winning tile.
	ReadySize = tile.HandSize
	// CompleteSize is the size of a hand including the winning tile.
	CompleteSize = tile.HandSize + 1
)

// Sentinels for errors.Is. Returned errors carry the same code plus metadata.
var (
	ErrInvalidHandSize  = mjerrors.New(mjerrors.CodeInvalidHandSize, "invalid hand size")
	ErrInvalidTileCount = mjerrors.New(mjerrors.CodeInvalidTileCount, "invalid tile count")
	ErrInvalidTile      = mjerrors.New(mjerrors.CodeInvalidTile, "invalid tile")
)

// Validate checks a hand snapshot has the wanted size, only real tiles, and at
// most four copies of any kind. It returns the kind counts on success.
func Validate(tiles []tile.Tile, size int) (tile.Counts, error) {
	if len(tiles) != size {
		return tile.Counts{}, sizeError(len(tiles), size)
	}
	return validateTiles(tiles)
}

func validateTiles(tiles []tile.Tile) (tile.Counts, error) {
	for _, t := range tiles {
		if !t.Valid() {
			return tile.Counts{}, mjerrors.WithMetadata(mjerrors.CodeInvalidTile,
				fmt.Sprintf("invalid tile %+v", t),
				map[string]string{"suit": strconv.Itoa(int(t.Suit)), "value": strconv.Itoa(t.Value)})
		}
	}
	counts := tile.CountTiles(tiles)
	if k, n := counts.Max(); n > 4 {
		return tile.Counts{}, mjerrors.WithMetadata(mjerrors.CodeInvalidTileCount,
			fmt.Sprintf("%d copies of %s", n, k.Tile()),
			map[string]string{"tile": k.Tile().String(), "count": strconv.Itoa(n)})
	}
	return counts, nil
}

// countValid counts tiles for the boolean detectors, which answer false
// instead of failing on tiles outside the 34 kinds.
func countValid(tiles []tile.Tile) (tile.Counts, bool) {
	for _, t := range tiles {
		if !t.Valid() {
			return tile.Counts{}, false
		}
	}
	return tile.CountTiles(tiles), true
}
