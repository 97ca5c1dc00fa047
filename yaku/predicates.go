package yaku

import (
	"mahjong-eval/hand"
	"mahjong-eval/tile"
)

type predicate func(e *eval) bool

// predicates maps catalogue ids to their checks. Han values and order live in
// catalog.yaml.
var predicates = map[string]predicate{
	// yakuman
	"kokushi":     checkKokushi,
	"suuankou":    checkSuuankou,
	"daisangen":   checkDaisangen,
	"shousuushii": checkShousuushii,
	"daisuushii":  checkDaisuushii,
	"tsuuiisou":   checkTsuuiisou,
	"chinroutou":  checkChinroutou,
	"ryuuiisou":   checkRyuuiisou,
	"chuuren":     checkChuuren,
	"suukantsu":   checkSuukantsu,
	"tenhou":      checkTenhou,
	"chihou":      checkChihou,
	"renhou":      checkRenhou,

	// basic
	"riichi":       checkRiichi,
	"ippatsu":      checkIppatsu,
	"menzen_tsumo": checkMenzenTsumo,
	"tanyao":       checkTanyao,
	"pinfu":        checkPinfu,
	"chiitoitsu":   checkChiitoitsu,
	"toitoi":       checkToitoi,
	"honitsu":      checkHonitsu,
	"chinitsu":     checkChinitsu,

	// sequence patterns
	"iipeikou":        func(e *eval) bool { return e.peikou() == 1 },
	"ryanpeikou":      func(e *eval) bool { return e.peikou() == 2 },
	"sanshoku_doujun": checkSanshokuDoujun,
	"ittsu":           checkIttsu,

	// value tiles
	"yakuhai_seat":    checkSeatWind,
	"yakuhai_round":   checkRoundWind,
	"yakuhai_white":   dragonTriplet(tile.White),
	"yakuhai_green":   dragonTriplet(tile.Green),
	"yakuhai_red":     dragonTriplet(tile.Red),
	"sanshoku_doukou": checkSanshokuDoukou,
	"sanankou":        func(e *eval) bool { return e.concealedTriplets() >= 3 },
	"sankantsu":       func(e *eval) bool { return e.ctx.Quads() == 3 },
	"shousangen":      checkShousangen,
	"honroutou":       checkHonroutou,
	"chanta":          checkChanta,
	"junchan":         checkJunchan,

	// timing
	"rinshan":       func(e *eval) bool { return e.ctx.AfterKan && e.ctx.Tsumo },
	"chankan":       func(e *eval) bool { return e.ctx.RobbedKan && !e.ctx.Tsumo },
	"haitei":        func(e *eval) bool { return e.ctx.LastTile && e.ctx.Tsumo && !e.ctx.AfterKan },
	"houtei":        func(e *eval) bool { return e.ctx.LastTile && !e.ctx.Tsumo },
	"double_riichi": func(e *eval) bool { return e.ctx.DoubleRiichi },
}

// --- Helpers ---

// every reports whether all 14 tiles satisfy fn.
func (e *eval) every(fn func(tile.Tile) bool) bool {
	for _, t := range e.tiles {
		if !fn(t) {
			return false
		}
	}
	return true
}

func (e *eval) melds() []hand.Meld {
	if e.decomp == nil {
		return nil
	}
	return e.decomp.Melds
}

// concealedMelds are the melds formed from the closed part of the hand.
func (e *eval) concealedMelds() []hand.Meld {
	if e.decomp == nil {
		return nil
	}
	return e.decomp.Melds[len(e.ctx.Melds):]
}

// hasTriplet reports a triplet or quad of t.
func (e *eval) hasTriplet(t tile.Tile) bool {
	for _, m := range e.melds() {
		if m.IsTripletLike() && m.First.Equals(t) {
			return true
		}
	}
	return false
}

// concealedTriplets counts concealed triplets and quads. On ron, a triplet
// completed by the discard counts as open unless the winning tile can be read
// as part of a concealed sequence instead.
func (e *eval) concealedTriplets() int {
	if e.decomp == nil {
		return 0
	}
	n := 0
	for _, m := range e.ctx.Melds {
		if m.IsTripletLike() && !m.Open {
			n++
		}
	}
	winInSequence := false
	for _, m := range e.concealedMelds() {
		if m.Kind == hand.Sequence && m.Contains(e.win) {
			winInSequence = true
		}
	}
	for _, m := range e.concealedMelds() {
		if !m.IsTripletLike() {
			continue
		}
		if !e.ctx.Tsumo && !winInSequence && m.First.Equals(e.win) {
			continue
		}
		n++
	}
	return n
}

// peikou counts pairs of identical concealed sequences.
func (e *eval) peikou() int {
	if !e.closed || e.decomp == nil {
		return 0
	}
	seen := map[tile.Kind]int{}
	for _, m := range e.decomp.Sequences() {
		seen[m.First.Kind()]++
	}
	n := 0
	for _, c := range seen {
		n += c / 2
	}
	return n
}

// isValueTile reports dragons and the seat and round winds.
func (e *eval) isValueTile(t tile.Tile) bool {
	if t.IsDragon() {
		return true
	}
	for _, w := range []tile.Wind{e.ctx.SeatWind, e.ctx.RoundWind} {
		if wt, ok := w.Tile(); ok && wt.Equals(t) {
			return true
		}
	}
	return false
}

func (e *eval) honorTriplets(fn func(tile.Tile) bool) int {
	n := 0
	for _, m := range e.melds() {
		if m.IsTripletLike() && fn(m.First) {
			n++
		}
	}
	return n
}

// suits returns which numbered suits appear and whether honors appear.
func (e *eval) suits() (numbered map[tile.Suit]bool, honors bool) {
	numbered = map[tile.Suit]bool{}
	for _, t := range e.tiles {
		if t.IsHonor() {
			honors = true
			continue
		}
		numbered[t.Suit] = true
	}
	return numbered, honors
}

// outside reports whether every meld and the pair hold a tile satisfying fn
// and at least one meld is a sequence.
func (e *eval) outside(pairOK func(tile.Tile) bool) bool {
	if e.decomp == nil || !pairOK(e.decomp.Pair) {
		return false
	}
	if len(e.decomp.Sequences()) == 0 {
		return false
	}
	for _, m := range e.decomp.Melds {
		if !m.HasTerminalOrHonor() {
			return false
		}
	}
	return true
}

// --- Yakuman ---

func checkKokushi(e *eval) bool {
	return e.orphans
}

func checkSuuankou(e *eval) bool {
	return e.closed && e.concealedTriplets() == 4
}

func checkDaisangen(e *eval) bool {
	return e.honorTriplets(tile.Tile.IsDragon) == 3
}

func checkShousuushii(e *eval) bool {
	return e.decomp != nil && e.decomp.Pair.IsWind() && e.honorTriplets(tile.Tile.IsWind) == 3
}

func checkDaisuushii(e *eval) bool {
	return e.honorTriplets(tile.Tile.IsWind) == 4
}

func checkTsuuiisou(e *eval) bool {
	return e.every(tile.Tile.IsHonor)
}

func checkChinroutou(e *eval) bool {
	return e.every(tile.Tile.IsTerminal)
}

// checkRyuuiisou: 2, 3, 4, 6, 8 of bamboo and the green dragon only.
func checkRyuuiisou(e *eval) bool {
	return e.every(func(t tile.Tile) bool {
		if t.Suit == tile.Sou {
			switch t.Value {
			case 2, 3, 4, 6, 8:
				return true
			}
			return false
		}
		return t.Suit == tile.Honor && t.Value == tile.Green
	})
}

// checkChuuren: 1112345678999 of one suit plus any tile of that suit.
func checkChuuren(e *eval) bool {
	if !e.closed || len(e.ctx.Melds) > 0 {
		return false
	}
	suits, honors := e.suits()
	if honors || len(suits) != 1 {
		return false
	}
	suit := e.tiles[0].Suit
	for v := 1; v <= 9; v++ {
		need := 1
		if v == 1 || v == 9 {
			need = 3
		}
		if e.counts.Of(tile.New(suit, v)) < need {
			return false
		}
	}
	return true
}

func checkSuukantsu(e *eval) bool {
	return e.ctx.Quads() == 4
}

func checkTenhou(e *eval) bool {
	return e.ctx.FirstTurn && e.ctx.Dealer && e.ctx.Tsumo && len(e.ctx.Melds) == 0
}

func checkChihou(e *eval) bool {
	return e.ctx.FirstTurn && !e.ctx.Dealer && e.ctx.Tsumo && len(e.ctx.Melds) == 0
}

func checkRenhou(e *eval) bool {
	return e.ctx.FirstTurn && !e.ctx.Dealer && !e.ctx.Tsumo && len(e.ctx.Melds) == 0
}

// --- Basic ---

func checkRiichi(e *eval) bool {
	return e.ctx.Riichi && !e.ctx.DoubleRiichi
}

func checkIppatsu(e *eval) bool {
	return e.ctx.Ippatsu && (e.ctx.Riichi || e.ctx.DoubleRiichi)
}

func checkMenzenTsumo(e *eval) bool {
	return e.ctx.Tsumo
}

func checkTanyao(e *eval) bool {
	return e.every(tile.Tile.IsSimple)
}

// checkPinfu: four concealed sequences, a pair that is not a value tile, and
// a two-sided wait on one of the sequences.
func checkPinfu(e *eval) bool {
	if e.decomp == nil || len(e.ctx.Melds) > 0 || len(e.decomp.Sequences()) != 4 {
		return false
	}
	if e.isValueTile(e.decomp.Pair) {
		return false
	}
	for _, m := range e.decomp.Sequences() {
		if m.First.Suit != e.win.Suit {
			continue
		}
		switch e.win.Value {
		case m.First.Value:
			if m.First.Value != 7 {
				return true
			}
		case m.First.Value + 2:
			if m.First.Value != 1 {
				return true
			}
		}
	}
	return false
}

// checkChiitoitsu fires only when the hand has no standard reading.
func checkChiitoitsu(e *eval) bool {
	return e.sevenPairs && e.decomp == nil
}

func checkToitoi(e *eval) bool {
	return e.decomp != nil && len(e.decomp.Triplets()) == 4
}

func checkHonitsu(e *eval) bool {
	suits, honors := e.suits()
	return honors && len(suits) == 1
}

func checkChinitsu(e *eval) bool {
	suits, honors := e.suits()
	return !honors && len(suits) == 1
}

// --- Sequence patterns ---

func checkSanshokuDoujun(e *eval) bool {
	bySuit := map[int]map[tile.Suit]bool{}
	for _, m := range e.melds() {
		if m.Kind != hand.Sequence {
			continue
		}
		if bySuit[m.First.Value] == nil {
			bySuit[m.First.Value] = map[tile.Suit]bool{}
		}
		bySuit[m.First.Value][m.First.Suit] = true
	}
	for _, suits := range bySuit {
		if len(suits) == 3 {
			return true
		}
	}
	return false
}

// checkIttsu: 123, 456 and 789 of one suit.
func checkIttsu(e *eval) bool {
	starts := map[tile.Suit]map[int]bool{}
	for _, m := range e.melds() {
		if m.Kind != hand.Sequence {
			continue
		}
		if starts[m.First.Suit] == nil {
			starts[m.First.Suit] = map[int]bool{}
		}
		starts[m.First.Suit][m.First.Value] = true
	}
	for _, s := range starts {
		if s[1] && s[4] && s[7] {
			return true
		}
	}
	return false
}

// --- Value tiles ---

func checkSeatWind(e *eval) bool {
	t, ok := e.ctx.SeatWind.Tile()
	return ok && e.hasTriplet(t)
}

func checkRoundWind(e *eval) bool {
	t, ok := e.ctx.RoundWind.Tile()
	return ok && e.hasTriplet(t)
}

func dragonTriplet(value int) predicate {
	return func(e *eval) bool {
		return e.hasTriplet(tile.New(tile.Honor, value))
	}
}

func checkSanshokuDoukou(e *eval) bool {
	bySuit := map[int]map[tile.Suit]bool{}
	for _, m := range e.melds() {
		if !m.IsTripletLike() || m.First.IsHonor() {
			continue
		}
		if bySuit[m.First.Value] == nil {
			bySuit[m.First.Value] = map[tile.Suit]bool{}
		}
		bySuit[m.First.Value][m.First.Suit] = true
	}
	for _, suits := range bySuit {
		if len(suits) == 3 {
			return true
		}
	}
	return false
}

// checkShousangen: two dragon triplets and a dragon pair.
func checkShousangen(e *eval) bool {
	return e.decomp != nil && e.decomp.Pair.IsDragon() && e.honorTriplets(tile.Tile.IsDragon) == 2
}

func checkHonroutou(e *eval) bool {
	return e.every(tile.Tile.IsTerminalOrHonor)
}

// checkChanta: every group holds a terminal or honor, with at least one honor.
func checkChanta(e *eval) bool {
	_, honors := e.suits()
	return honors && e.outside(tile.Tile.IsTerminalOrHonor)
}

// checkJunchan: every group holds a terminal and there are no honors.
func checkJunchan(e *eval) bool {
	_, honors := e.suits()
	return !honors && e.outside(tile.Tile.IsTerminal)
}
