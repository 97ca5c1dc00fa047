package hand

import (
	"fmt"
	"strconv"

	mjerrors "mahjong-eval/internal/errors"
	"mahjong-eval/tile"
)

// IsWinningHand reports whether tiles plus the optional winning tile form a
// complete hand (Standard, Chiitoi, Kokushi). The combined hand must hold
// exactly 14 tiles; anything else is an InvalidHandSize error, not "false".
func IsWinningHand(tiles []tile.Tile, win ...tile.Tile) (bool, error) {
	return (*Analyzer)(nil).IsWinningHand(tiles, win...)
}

// CanWin reports whether a 13-tile hand completes on the discarded tile.
func CanWin(tiles []tile.Tile, discarded tile.Tile) (bool, error) {
	if len(tiles) != ReadySize {
		return false, sizeError(len(tiles), ReadySize)
	}
	return IsWinningHand(tiles, discarded)
}

// IsWinningHand is the memoized form of the package-level function.
func (a *Analyzer) IsWinningHand(tiles []tile.Tile, win ...tile.Tile) (bool, error) {
	if len(win) > 1 {
		return false, mjerrors.New(mjerrors.CodeInvalidHandSize,
			fmt.Sprintf("at most one winning tile, got %d", len(win)))
	}
	full := make([]tile.Tile, 0, len(tiles)+len(win))
	full = append(full, tiles...)
	full = append(full, win...)

	counts, err := Validate(full, CompleteSize)
	if err != nil {
		return false, err
	}
	return a.complete(counts), nil
}

// isComplete checks special shapes first; they qualify regardless of how
// the tiles would split into melds.
func isComplete(c tile.Counts) bool {
	if isThirteenOrphans(c) || isSevenPairs(c) {
		return true
	}
	return isStandardComplete(c)
}

func sizeError(got, want int) error {
	return mjerrors.WithMetadata(mjerrors.CodeInvalidHandSize,
		fmt.Sprintf("hand has %d tiles, want %d", got, want),
		map[string]string{"size": strconv.Itoa(got), "want": strconv.Itoa(want)})
}
