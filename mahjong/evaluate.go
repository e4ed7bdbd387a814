package mahjong

// Evaluate determines every yaku satisfied by one decomposition under the
// given context. Pure function of its inputs; the hand is needed only for
// concealment and the red fives, which the kind-level decomposition cannot
// carry.
func (s *Scorer) Evaluate(d *Decomposition, h Hand, ctx *Context) YakuResult {
	closed := h.IsConcealedHand()

	yakuman := s.yakumanList(d, ctx, closed)
	if len(yakuman) > 0 {
		return s.yakumanResult(yakuman)
	}

	var list []YakuHan
	add := func(y Yaku) {
		if han := y.HanValue(closed); han > 0 {
			list = append(list, YakuHan{Yaku: y, Han: han})
		}
	}

	s.contextYaku(ctx, closed, add)

	switch d.Kind {
	case SevenPairs:
		s.sevenPairsYaku(d, add)
	case Standard:
		s.standardYaku(d, ctx, closed, add)
	}

	result := YakuResult{Yaku: list}
	if !result.HasYaku() {
		// dora never rescue a yaku-less hand
		return YakuResult{}
	}

	result.Yaku = append(result.Yaku, s.doraEntries(d, h, ctx)...)
	for _, yh := range result.Yaku {
		result.Han += yh.Han
	}
	return result
}

// contextYaku covers the conditions that depend only on the table state
// and whole-hand concealment, shared by every decomposition kind.
func (s *Scorer) contextYaku(ctx *Context, closed bool, add func(Yaku)) {
	if ctx.DoubleRiichi {
		add(YakuDoubleRiichi)
	} else if ctx.Riichi {
		add(YakuRiichi)
	}
	if ctx.Ippatsu {
		add(YakuIppatsu)
	}
	if closed && ctx.Method == Tsumo {
		add(YakuMenzenTsumo)
	}
	if ctx.Haitei {
		add(YakuHaitei)
	}
	if ctx.Houtei {
		add(YakuHoutei)
	}
	if ctx.Rinshan {
		add(YakuRinshan)
	}
	if ctx.Chankan {
		add(YakuChankan)
	}
}

func (s *Scorer) sevenPairsYaku(d *Decomposition, add func(Yaku)) {
	add(YakuChiitoitsu)

	allSimple, allYaochuu := true, true
	for _, g := range d.Groups {
		if !g.tile().IsSimple() {
			allSimple = false
		}
		if !g.tile().IsTerminalOrHonor() {
			allYaochuu = false
		}
	}
	if allSimple {
		add(YakuTanyao)
	}
	if allYaochuu {
		add(YakuHonroutou)
	}
	s.flushYaku(d.AllTiles(), add)
}

func (s *Scorer) standardYaku(d *Decomposition, ctx *Context, closed bool, add func(Yaku)) {
	allTiles := d.AllTiles()

	// Yakuhai triplets; each dragon and each matching wind scores on its
	// own, and a doubled wind scores twice.
	for _, g := range d.Groups {
		if !g.isSet() || g.tile().Suit != SuitDragon {
			continue
		}
		add(YakuDragon)
	}
	seat := Tile{Suit: SuitWind, Value: ctx.SeatWind}
	round := Tile{Suit: SuitWind, Value: ctx.RoundWind}
	for _, g := range d.Groups {
		if !g.isSet() {
			continue
		}
		if g.tile().SameKind(seat) {
			add(YakuSeatWind)
		}
		if g.tile().SameKind(round) {
			add(YakuRoundWind)
		}
	}

	if s.isPinfu(d, ctx, closed) {
		add(YakuPinfu)
	}

	if closed || s.Rules.OpenTanyao {
		simple := true
		for _, t := range allTiles {
			if !t.IsSimple() {
				simple = false
				break
			}
		}
		if simple {
			add(YakuTanyao)
		}
	}

	runs := runGroups(d)
	if closed {
		switch identicalRunPairs(runs) {
		case 2:
			add(YakuRyanpeikou)
		case 1:
			add(YakuIipeikou)
		}
	}
	if sanshokuRuns(runs) {
		add(YakuSanshokuDoujun)
	}
	if ittsuRuns(runs) {
		add(YakuIttsu)
	}

	sets, quads := 0, 0
	for _, g := range d.Groups {
		if g.isSet() {
			sets++
		}
		if g.Type == GroupQuad {
			quads++
		}
	}
	if sets == 4 {
		add(YakuToitoi)
	}
	if concealedSets(d, ctx) == 3 {
		add(YakuSanankou)
	}
	if quads == 3 {
		add(YakuSankantsu)
	}
	if sanshokuSets(d) {
		add(YakuSanshokuDoukou)
	}

	dragonSets := 0
	for _, g := range d.Groups {
		if g.isSet() && g.tile().Suit == SuitDragon {
			dragonSets++
		}
	}
	if dragonSets == 2 && d.pair().tile().Suit == SuitDragon {
		add(YakuShousangen)
	}

	allYaochuu := true
	for _, t := range allTiles {
		if !t.IsTerminalOrHonor() {
			allYaochuu = false
			break
		}
	}
	if allYaochuu {
		add(YakuHonroutou)
	} else {
		chanta, junchan := chantaJunchan(d)
		if junchan {
			add(YakuJunchan)
		} else if chanta {
			add(YakuChanta)
		}
	}

	s.flushYaku(allTiles, add)
}

// isPinfu: fully concealed, four runs, valueless pair, two-sided wait.
// A rinshan or chankan win never scores pinfu alongside.
func (s *Scorer) isPinfu(d *Decomposition, ctx *Context, closed bool) bool {
	if !closed || d.Wait != WaitRyanmen || ctx.Rinshan || ctx.Chankan {
		return false
	}
	for _, g := range d.Groups {
		if g.Type != GroupRun && g.Type != GroupPair {
			return false
		}
	}
	pair := d.pair().tile()
	if pair.Suit == SuitDragon || s.contextYakuhaiWind(ctx, pair) {
		return false
	}
	return true
}

func (s *Scorer) contextYakuhaiWind(ctx *Context, t Tile) bool {
	return t.Suit == SuitWind && (t.Value == ctx.SeatWind || t.Value == ctx.RoundWind)
}

// flushYaku adds chinitsu or honitsu; the predicates are disjoint on
// "honors present", so at most one fires.
func (s *Scorer) flushYaku(tiles []Tile, add func(Yaku)) {
	suit := Suit(-1)
	honors := false
	for _, t := range tiles {
		if t.IsHonor() {
			honors = true
			continue
		}
		if suit == Suit(-1) {
			suit = t.Suit
		} else if suit != t.Suit {
			return
		}
	}
	if suit == Suit(-1) {
		return // all honors is tsuuiisou territory, not a flush
	}
	if honors {
		add(YakuHonitsu)
	} else {
		add(YakuChinitsu)
	}
}

// concealedSets counts triplets/quads that stayed concealed, excluding a
// triplet the winning tile completed by ron.
func concealedSets(d *Decomposition, ctx *Context) int {
	n := 0
	for i, g := range d.Groups {
		if !g.isSet() || !g.Concealed {
			continue
		}
		if d.ronOpensGroup(i, ctx.Method) {
			continue
		}
		n++
	}
	return n
}

func runGroups(d *Decomposition) []Group {
	var runs []Group
	for _, g := range d.Groups {
		if g.Type == GroupRun {
			runs = append(runs, g)
		}
	}
	return runs
}

func identicalRunPairs(runs []Group) int {
	used := make([]bool, len(runs))
	pairs := 0
	for i := range runs {
		if used[i] {
			continue
		}
		for j := i + 1; j < len(runs); j++ {
			if !used[j] && runs[i].tile().SameKind(runs[j].tile()) {
				used[i], used[j] = true, true
				pairs++
				break
			}
		}
	}
	return pairs
}

func sanshokuRuns(runs []Group) bool {
	return sanshokuKinds(runs)
}

// sanshokuKinds reports whether the same value appears in all three
// numbered suits among the given groups.
func sanshokuKinds(groups []Group) bool {
	bySuit := map[int][3]bool{}
	for _, g := range groups {
		t := g.tile()
		if t.IsHonor() {
			continue
		}
		m := bySuit[t.Value]
		m[int(t.Suit)] = true
		bySuit[t.Value] = m
	}
	for _, m := range bySuit {
		if m[0] && m[1] && m[2] {
			return true
		}
	}
	return false
}

func sanshokuSets(d *Decomposition) bool {
	var sets []Group
	for _, g := range d.Groups {
		if g.isSet() {
			sets = append(sets, g)
		}
	}
	return sanshokuKinds(sets)
}

func ittsuRuns(runs []Group) bool {
	bySuit := map[Suit]map[int]bool{}
	for _, g := range runs {
		t := g.tile()
		if bySuit[t.Suit] == nil {
			bySuit[t.Suit] = map[int]bool{}
		}
		bySuit[t.Suit][t.Value] = true
	}
	for _, starts := range bySuit {
		if starts[1] && starts[4] && starts[7] {
			return true
		}
	}
	return false
}

// chantaJunchan: every group (pair included) carries a terminal or honor;
// junchan additionally admits no honors.
func chantaJunchan(d *Decomposition) (bool, bool) {
	junchan := true
	for _, g := range d.Groups {
		hasTerminal, hasHonor := false, false
		for _, t := range g.Tiles {
			if t.IsTerminal() {
				hasTerminal = true
			}
			if t.IsHonor() {
				hasHonor = true
			}
		}
		if !hasTerminal && !hasHonor {
			return false, false
		}
		if hasHonor {
			junchan = false
		}
	}
	return true, junchan
}

// doraEntries aggregates regular dora, red fives and (under riichi) ura
// dora into breakdown lines. Dora count han but never enable a win.
func (s *Scorer) doraEntries(d *Decomposition, h Hand, ctx *Context) []YakuHan {
	var entries []YakuHan
	tiles := d.AllTiles()

	if n := countDora(tiles, ctx.DoraIndicators); n > 0 {
		entries = append(entries, YakuHan{Yaku: YakuDora, Han: n})
	}
	aka := 0
	for _, t := range h.AllTiles() {
		if t.IsRed {
			aka++
		}
	}
	if aka > 0 {
		entries = append(entries, YakuHan{Yaku: YakuAkaDora, Han: aka})
	}
	if ctx.Riichi || ctx.DoubleRiichi {
		if n := countDora(tiles, ctx.UraDoraIndicators); n > 0 {
			entries = append(entries, YakuHan{Yaku: YakuUraDora, Han: n})
		}
	}
	return entries
}

func countDora(tiles []Tile, indicators []Tile) int {
	n := 0
	for _, ind := range indicators {
		dora := ind.DoraSuccessor()
		for _, t := range tiles {
			if t.SameKind(dora) {
				n++
			}
		}
	}
	return n
}
