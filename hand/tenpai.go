package hand

import (
	"sync"

	"mahjong-eval/tile"
)

// Analyzer memoizes completion and wait queries for a burst of related
// queries, e.g. every discard option of one turn. A nil *Analyzer is valid
// and computes everything afresh. Safe for concurrent use.
type Analyzer struct {
	mu        sync.RWMutex
	completed map[tile.Counts]bool
	waits     map[tile.Counts][]tile.Kind
}

// NewAnalyzer returns an Analyzer with empty caches.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		completed: make(map[tile.Counts]bool, 256),
		waits:     make(map[tile.Counts][]tile.Kind, 64),
	}
}

// Reset drops all cached results.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.completed = make(map[tile.Counts]bool, 256)
	a.waits = make(map[tile.Counts][]tile.Kind, 64)
}

// IsTenpai checks if a 13-tile hand is one tile away from being complete.
func IsTenpai(tiles []tile.Tile) (bool, error) {
	return (*Analyzer)(nil).IsTenpai(tiles)
}

// WaitingTiles returns every tile kind that completes a 13-tile hand, in
// canonical order, as plain tiles. A kind the hand already holds four of is
// never a wait.
func WaitingTiles(tiles []tile.Tile) ([]tile.Tile, error) {
	return (*Analyzer)(nil).WaitingTiles(tiles)
}

// IsTenpai is the memoized form of the package-level function.
func (a *Analyzer) IsTenpai(tiles []tile.Tile) (bool, error) {
	counts, err := Validate(tiles, ReadySize)
	if err != nil {
		return false, err
	}
	return len(a.waitKinds(counts)) > 0, nil
}

// WaitingTiles is the memoized form of the package-level function.
func (a *Analyzer) WaitingTiles(tiles []tile.Tile) ([]tile.Tile, error) {
	counts, err := Validate(tiles, ReadySize)
	if err != nil {
		return nil, err
	}
	kinds := a.waitKinds(counts)
	out := make([]tile.Tile, len(kinds))
	for i, k := range kinds {
		out[i] = k.Tile()
	}
	return out, nil
}

// waitKinds tries each of the 34 kinds as the 14th tile.
func (a *Analyzer) waitKinds(c tile.Counts) []tile.Kind {
	if a != nil {
		a.mu.RLock()
		cached, ok := a.waits[c]
		a.mu.RUnlock()
		if ok {
			return append([]tile.Kind(nil), cached...)
		}
	}

	var kinds []tile.Kind
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		if c[k] >= 4 {
			continue
		}
		work := c
		work[k]++
		if a.complete(work) {
			kinds = append(kinds, k)
		}
	}

	if a != nil {
		a.mu.Lock()
		a.waits[c] = append([]tile.Kind(nil), kinds...)
		a.mu.Unlock()
	}
	return kinds
}

func (a *Analyzer) complete(c tile.Counts) bool {
	if a == nil {
		return isComplete(c)
	}
	a.mu.RLock()
	v, ok := a.completed[c]
	a.mu.RUnlock()
	if ok {
		return v
	}
	v = isComplete(c)
	a.mu.Lock()
	a.completed[c] = v
	a.mu.Unlock()
	return v
}
