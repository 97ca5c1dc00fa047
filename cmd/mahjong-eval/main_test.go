package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mahjong-eval/hand"
	mjerrors "mahjong-eval/internal/errors"
	"mahjong-eval/tile"
	"mahjong-eval/yaku"
)

func setRules(t *testing.T) {
	t.Helper()
	t.Setenv("MAHJONG_RED_FIVES", "true")
	t.Setenv("MAHJONG_LOCALE", "en-US")
	t.Setenv("MAHJONG_CACHE_WAITS", "true")
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func wantLines(t *testing.T, out string, lines ...string) {
	t.Helper()
	for _, l := range lines {
		if !strings.Contains(out, l) {
			t.Errorf("output missing %q:\n%s", l, out)
		}
	}
}

func TestRun_Yaku(t *testing.T) {
	setRules(t)
	code, out, errOut := runCLI(t, "",
		"-hand", "34m456p345s678s22p", "-win", "2m", "-riichi", "-seat", "S", "-round", "E")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	wantLines(t, out, "Riichi (1 han)", "Tanyao (1 han)", "Pinfu (1 han)", "Total: 3 han")
	if strings.Index(out, "Tanyao") > strings.Index(out, "Pinfu") {
		t.Errorf("records out of catalogue order:\n%s", out)
	}
}

func TestRun_Japanese(t *testing.T) {
	setRules(t)
	code, out, errOut := runCLI(t, "",
		"-lang", "ja-JP", "-hand", "34m456p345s678s22p", "-win", "2m", "-riichi", "-seat", "S", "-round", "E")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	wantLines(t, out, "立直 (1翻)", "合計: 3翻")
}

func TestRun_NoYakuAndNoWin(t *testing.T) {
	setRules(t)
	_, out, _ := runCLI(t, "", "-hand", "13m456p345s678s22p", "-win", "2m", "-seat", "S", "-round", "E")
	wantLines(t, out, "No yaku")

	_, out, _ = runCLI(t, "", "-hand", "13m456p345s678s22p", "-win", "9m")
	wantLines(t, out, "Not a winning hand")

	// Complete as 123m 456m 789m, but not with 234m fixed as a chi.
	_, out, _ = runCLI(t, "", "-hand", "123456789m11z22z", "-win", "2z", "-melds", "chi:234m")
	wantLines(t, out, "Not a winning hand")
}

func TestRun_Waits(t *testing.T) {
	setRules(t)
	code, out, _ := runCLI(t, "", "-hand", "1112345678999m")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	wantLines(t, out, "Waiting on: 123456789m")
}

func TestRun_Stdin(t *testing.T) {
	setRules(t)
	input := strings.Join([]string{
		"# comment",
		"147m258p369s1234z",
		"",
		"123m456p789s11z22z 2z",
	}, "\n")
	code, out, errOut := runCLI(t, input, "-seat", "S", "-round", "E")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	wantLines(t, out, "Not tenpai (shanten 8)", "Total:")
}

func TestRun_Errors(t *testing.T) {
	setRules(t)
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"BadTile", "", []string{"-hand", "123x"}, "parse"},
		{"WrongSize", "", []string{"-hand", "123m"}, "tiles"},
		{"BadWind", "", []string{"-hand", "1112345678999m", "-seat", "X"}, "seat"},
		{"BadMeld", "", []string{"-hand", "1112345678999m", "-melds", "chi:124m"}, "meld"},
		{"BadLine", "123m\n", nil, "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.stdin, tt.args...)
			if code != 1 {
				t.Errorf("exit %d, want 1", code)
			}
			if !strings.Contains(errOut, "mahjong-eval: ") || !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr = %q, want prefix and %q", errOut, tt.want)
			}
		})
	}
}

func TestParseMelds(t *testing.T) {
	melds, err := parseMelds("chi:213m, pon:555z,kan:0555p,ankan:9999s")
	if err != nil {
		t.Fatal(err)
	}
	want := []hand.Meld{
		hand.NewSequence(tile.MustParseOne("1m"), true),
		hand.NewTriplet(tile.MustParseOne("5z"), true),
		hand.NewQuad(tile.MustParseOne("5p"), true),
		hand.NewQuad(tile.MustParseOne("9s"), false),
	}
	if len(melds) != len(want) {
		t.Fatalf("got %d melds, want %d", len(melds), len(want))
	}
	for i := range want {
		if melds[i] != want[i] {
			t.Errorf("meld %d = %v, want %v", i, melds[i], want[i])
		}
	}

	for _, bad := range []string{"chi:124m", "pon:55z", "pon:556z", "kan:555m", "peng:555m", "555m", "chi:12x"} {
		if _, err := parseMelds(bad); mjerrors.CodeOf(err) != mjerrors.CodeInvalidMeld {
			t.Errorf("parseMelds(%q) err = %v, want code %s", bad, err, mjerrors.CodeInvalidMeld)
		}
	}

	// A tile typo keeps the parse error as its cause.
	_, err = parseMelds("pon:5y")
	if !errors.Is(err, yaku.ErrInvalidMeld) || !errors.Is(err, hand.ErrInvalidTile) {
		t.Errorf("parseMelds(pon:5y) err = %v, want invalid meld wrapping invalid tile", err)
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct{ line, hand, win string }{
		{"1112345678999m", "1112345678999m", ""},
		{"123m456p789s11z22z 2z", "123m456p789s11z22z", "2z"},
		{"123m 456p 789s 11z22z 2z", "123m 456p 789s 11z22z", "2z"},
	}
	for _, tt := range tests {
		h, w := splitLine(tt.line)
		if h != tt.hand || w != tt.win {
			t.Errorf("splitLine(%q) = %q, %q", tt.line, h, w)
		}
	}
}

func TestRun_Discards(t *testing.T) {
	setRules(t)
	_, out, _ := runCLI(t, "", "-hand", "234m234p234s567s9s1z")
	wantLines(t, out, "Discard 9s: waiting on 1z", "Discard 1z: waiting on 9s")

	_, out, _ = runCLI(t, "", "-hand", "234m234p234s567s99s")
	wantLines(t, out, "Complete hand")
}
