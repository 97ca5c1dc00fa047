package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"mahjong-eval/hand"
	"mahjong-eval/internal/i18n"
	"mahjong-eval/tile"
	"mahjong-eval/yaku"
)

// display writes query results in the configured locale.
type display struct {
	w      io.Writer
	p      *message.Printer
	locale string
}

func newDisplay(w io.Writer, locale string) *display {
	return &display{w: w, p: i18n.Printer(locale), locale: locale}
}

// formatHand renders a hand in sorted compact notation.
func formatHand(tiles []tile.Tile) string {
	return tile.Format(tiles)
}

// formatMelds renders declared melds, marking concealed quads.
func formatMelds(melds []hand.Meld) string {
	if len(melds) == 0 {
		return ""
	}
	parts := make([]string, 0, len(melds))
	for _, m := range melds {
		s := tile.Format(m.Tiles())
		switch {
		case m.Kind == hand.Quad && !m.Open:
			s = "[" + s + "]"
		case m.Open:
			s = s + "*"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func (d *display) header(tiles []tile.Tile, win *tile.Tile, melds []hand.Meld) {
	line := formatHand(tiles)
	if win != nil {
		line += " + " + tile.Format([]tile.Tile{*win})
	}
	if m := formatMelds(melds); m != "" {
		line += " | " + m
	}
	fmt.Fprintln(d.w, line)
}

func (d *display) yaku(tiles []tile.Tile, win tile.Tile, melds []hand.Meld, records []yaku.Record, complete bool) {
	d.header(tiles, &win, melds)
	if len(records) == 0 {
		if !complete {
			fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.no_win"))
		} else {
			fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.no_yaku"))
		}
		return
	}
	for _, r := range records {
		name := i18n.YakuName(d.locale, r.ID)
		if r.Yakuman {
			fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.yakuman", name))
		} else {
			fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.han", name, r.Han))
		}
	}
	fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.total", yaku.TotalHan(records)))
}

func (d *display) waits(tiles, waits []tile.Tile) {
	d.header(tiles, nil, nil)
	fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.waits", tile.Format(waits)))
}

func (d *display) discards(tiles []tile.Tile, options []hand.DiscardOption) {
	d.header(tiles, nil, nil)
	for _, o := range options {
		fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.discard", tile.Format([]tile.Tile{o.Discard}), tile.Format(o.Waits)))
	}
}

func (d *display) complete(tiles []tile.Tile) {
	d.header(tiles, nil, nil)
	fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.complete"))
}

func (d *display) noten(tiles []tile.Tile, shanten int) {
	d.header(tiles, nil, nil)
	fmt.Fprintln(d.w, "  "+d.p.Sprintf("cli.noten", shanten))
}
