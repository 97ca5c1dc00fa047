// Command mahjong-eval evaluates riichi mahjong hands from the command line.
//
// With -hand it evaluates one hand: 13 tiles report waits or shanten, 14
// tiles report the discards that leave the hand tenpai, and 13 tiles plus
// -win report the yaku scored. Without -hand it reads one hand
// per line from stdin, "<tiles> [<win tile>]", under the same flags.
//
//	mahjong-eval -hand 34m456p345s678s22p -win 2m -riichi -tsumo -seat E -round E
//	echo "1112345678999m" | mahjong-eval
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"mahjong-eval/hand"
	"mahjong-eval/internal/config"
	"mahjong-eval/tile"
	"mahjong-eval/yaku"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the parsed command-line settings.
type options struct {
	hand   string
	win    string
	melds  string
	dora   string
	ura    string
	seat   string
	round  string
	locale string

	riichi, doubleRiichi, ippatsu bool
	tsumo, lastTile               bool
	afterKan, robbedKan           bool
	firstTurn, dealer             bool
	redFives                      bool
}

// evaluator answers one query at a time for the CLI.
type evaluator struct {
	analyzer *hand.Analyzer // nil when caching is disabled
	ctx      yaku.Context
	out      *display
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "mahjong-eval: ", 0)

	rules, err := config.LoadRules()
	if err != nil {
		logger.Print(err)
		return 1
	}

	var opts options
	fs := flag.NewFlagSet("mahjong-eval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.hand, "hand", "", "tiles held before the win, meld tiles included (e.g. 123m406p789s11z)")
	fs.StringVar(&opts.win, "win", "", "winning tile; omit to list waits")
	fs.StringVar(&opts.melds, "melds", "", "declared melds, e.g. chi:123m,pon:555z,kan:1111p,ankan:9999s")
	fs.StringVar(&opts.dora, "dora", "", "dora indicators")
	fs.StringVar(&opts.ura, "ura", "", "ura dora indicators")
	fs.StringVar(&opts.seat, "seat", "", "seat wind (E, S, W, N)")
	fs.StringVar(&opts.round, "round", "", "round wind (E, S, W, N)")
	fs.StringVar(&opts.locale, "lang", rules.Locale, "output locale")
	fs.BoolVar(&opts.riichi, "riichi", false, "riichi declared")
	fs.BoolVar(&opts.doubleRiichi, "double-riichi", false, "riichi declared on the first discard")
	fs.BoolVar(&opts.ippatsu, "ippatsu", false, "win within one go-around of riichi")
	fs.BoolVar(&opts.tsumo, "tsumo", false, "self-drawn win")
	fs.BoolVar(&opts.lastTile, "last", false, "win on the last tile")
	fs.BoolVar(&opts.afterKan, "rinshan", false, "win on a quad replacement tile")
	fs.BoolVar(&opts.robbedKan, "chankan", false, "win by robbing a quad")
	fs.BoolVar(&opts.firstTurn, "first-turn", false, "win in the uninterrupted first go-around")
	fs.BoolVar(&opts.dealer, "dealer", false, "winner is the dealer")
	fs.BoolVar(&opts.redFives, "red", rules.RedFives, "count red fives as dora")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx, err := buildContext(opts)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if err := ctx.Validate(); err != nil {
		logger.Printf("warning: %v", err)
	}

	ev := &evaluator{
		ctx: ctx,
		out: newDisplay(stdout, opts.locale),
	}
	if rules.CacheWaits {
		ev.analyzer = hand.NewAnalyzer()
	}

	if opts.hand != "" {
		if err := ev.query(opts.hand, opts.win); err != nil {
			logger.Print(err)
			return 1
		}
		return 0
	}

	failed := false
	scanner := bufio.NewScanner(stdin)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		handStr, winStr := splitLine(text)
		if err := ev.query(handStr, winStr); err != nil {
			logger.Printf("line %d: %v", line, err)
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("read input: %v", err)
		return 1
	}
	if failed {
		return 1
	}
	return 0
}

// query evaluates one hand. Without a win tile it reports waits, tenpai
// discards or shanten.
func (ev *evaluator) query(handStr, winStr string) error {
	tiles, err := tile.Parse(handStr)
	if err != nil {
		return err
	}
	if winStr == "" {
		return ev.waits(tiles)
	}
	win, err := parseOne(winStr)
	if err != nil {
		return err
	}
	records, err := yaku.CheckAll(tiles, win, ev.ctx)
	if err != nil {
		return err
	}
	complete := len(records) > 0
	if !complete {
		// CheckAll reports an incomplete hand and a yakuless one the same way.
		if complete, err = yaku.IsComplete(tiles, win, ev.ctx); err != nil {
			return err
		}
	}
	ev.out.yaku(tiles, win, ev.ctx.Melds, records, complete)
	return nil
}

func (ev *evaluator) waits(tiles []tile.Tile) error {
	if len(tiles) == hand.CompleteSize {
		return ev.discards(tiles)
	}
	waits, err := ev.analyzer.WaitingTiles(tiles)
	if err != nil {
		return err
	}
	if len(waits) > 0 {
		ev.out.waits(tiles, waits)
		return nil
	}
	shanten, err := ev.analyzer.Shanten(tiles)
	if err != nil {
		return err
	}
	ev.out.noten(tiles, shanten)
	return nil
}

// discards reports the tenpai discards of a 14-tile hand.
func (ev *evaluator) discards(tiles []tile.Tile) error {
	shanten, err := ev.analyzer.Shanten(tiles)
	if err != nil {
		return err
	}
	if shanten < 0 {
		ev.out.complete(tiles)
		return nil
	}
	options, err := ev.analyzer.TenpaiDiscards(tiles)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		ev.out.noten(tiles, shanten)
		return nil
	}
	ev.out.discards(tiles, options)
	return nil
}

func buildContext(opts options) (yaku.Context, error) {
	ctx := yaku.Context{
		Riichi:       opts.riichi,
		DoubleRiichi: opts.doubleRiichi,
		Ippatsu:      opts.ippatsu,
		Tsumo:        opts.tsumo,
		LastTile:     opts.lastTile,
		AfterKan:     opts.afterKan,
		RobbedKan:    opts.robbedKan,
		FirstTurn:    opts.firstTurn,
		Dealer:       opts.dealer,
		RedFives:     opts.redFives,
	}
	var err error
	if ctx.SeatWind, err = tile.ParseWind(opts.seat); err != nil {
		return yaku.Context{}, fmt.Errorf("seat: %w", err)
	}
	if ctx.RoundWind, err = tile.ParseWind(opts.round); err != nil {
		return yaku.Context{}, fmt.Errorf("round: %w", err)
	}
	if ctx.DoraIndicators, err = tile.Parse(opts.dora); err != nil {
		return yaku.Context{}, fmt.Errorf("dora: %w", err)
	}
	if ctx.UraDoraIndicators, err = tile.Parse(opts.ura); err != nil {
		return yaku.Context{}, fmt.Errorf("ura: %w", err)
	}
	if ctx.Melds, err = parseMelds(opts.melds); err != nil {
		return yaku.Context{}, err
	}
	for _, m := range ctx.Melds {
		if m.Open {
			ctx.Open = true
		}
	}
	return ctx, nil
}
