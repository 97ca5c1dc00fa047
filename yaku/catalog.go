package yaku

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Group is an evaluation tier of the catalogue.
type Group string

const (
	GroupYakuman  Group = "yakuman"
	GroupBasic    Group = "basic"
	GroupSequence Group = "sequence"
	GroupValue    Group = "value"
	GroupTiming   Group = "timing"
	GroupDora     Group = "dora"
)

// groupOrder is the fixed evaluation order of the groups.
var groupOrder = []Group{GroupYakuman, GroupBasic, GroupSequence, GroupValue, GroupTiming, GroupDora}

// Entry is one row of the catalogue.
type Entry struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Group     Group  `yaml:"group"`
	HanClosed int    `yaml:"han_closed"`
	HanOpen   int    `yaml:"han_open"` // 0: closed hands only
	Yakuman   bool   `yaml:"yakuman"`
}

// Han returns the value of the entry for a closed or open hand.
func (e Entry) Han(closed bool) int {
	if closed {
		return e.HanClosed
	}
	return e.HanOpen
}

type rawCatalog struct {
	Version string  `yaml:"version"`
	Yaku    []Entry `yaml:"yaku"`
}

//go:embed catalog.yaml
var catalogYAML []byte

// catalog is loaded once at init and never mutated.
var catalog = mustLoad(catalogYAML)

// Catalog returns a copy of the catalogue in evaluation order.
func Catalog() []Entry {
	return append([]Entry(nil), catalog...)
}

// Lookup returns the catalogue entry with the given id.
func Lookup(id string) (Entry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func mustLoad(b []byte) []Entry {
	entries, err := loadCatalog(b)
	if err != nil {
		panic(fmt.Sprintf("yaku: %v", err))
	}
	return entries
}

func loadCatalog(b []byte) ([]Entry, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	if err := validateCatalog(raw.Yaku); err != nil {
		return nil, err
	}
	return raw.Yaku, nil
}

// validateCatalog checks every entry is backed by a predicate, sits in a
// known group, and that groups appear in evaluation order.
func validateCatalog(entries []Entry) error {
	var errs []string
	seen := make(map[string]bool, len(entries))
	rank := make(map[Group]int, len(groupOrder))
	for i, g := range groupOrder {
		rank[g] = i
	}

	last := 0
	for i, e := range entries {
		where := fmt.Sprintf("yaku[%d] %q", i, e.ID)
		if e.ID == "" {
			errs = append(errs, fmt.Sprintf("yaku[%d]: id is required", i))
			continue
		}
		if seen[e.ID] {
			errs = append(errs, where+": duplicate id")
		}
		seen[e.ID] = true

		r, ok := rank[e.Group]
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("%s: unknown group %q", where, e.Group))
		case r < last:
			errs = append(errs, fmt.Sprintf("%s: group %q out of order", where, e.Group))
		default:
			last = r
		}

		if e.Group == GroupDora {
			if e.Yakuman {
				errs = append(errs, where+": dora is never yakuman")
			}
			continue
		}
		if _, ok := predicates[e.ID]; !ok {
			errs = append(errs, where+": no predicate registered")
		}
		if e.Yakuman != (e.Group == GroupYakuman) {
			errs = append(errs, where+": yakuman flag must match the yakuman group")
		}
		if e.Yakuman {
			if e.HanClosed != 13 || (e.HanOpen != 0 && e.HanOpen != 13) {
				errs = append(errs, where+": yakuman must be worth 13 han")
			}
			continue
		}
		if e.HanClosed <= 0 {
			errs = append(errs, where+": han_closed must be >= 1")
		}
		if e.HanOpen < 0 || e.HanOpen > e.HanClosed {
			errs = append(errs, where+": han_open must be in [0, han_closed]")
		}
	}
	for id := range predicates {
		if !seen[id] {
			errs = append(errs, fmt.Sprintf("predicate %q has no catalogue entry", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalogue validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
