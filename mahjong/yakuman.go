package mahjong

// yakumanList gathers every yakuman the decomposition earns. Non-empty
// output short-circuits regular yaku evaluation entirely.
func (s *Scorer) yakumanList(d *Decomposition, ctx *Context, closed bool) []Yaku {
	var list []Yaku

	if ctx.Tenhou {
		list = append(list, YakuTenhou)
	}
	if ctx.Chiihou {
		list = append(list, YakuChiihou)
	}
	if ctx.Renhou && s.Rules.RenhouYakuman {
		list = append(list, YakuRenhou)
	}

	switch d.Kind {
	case ThirteenOrphans:
		if d.ThirteenSided {
			list = append(list, YakuKokushiJuusanmen)
		} else {
			list = append(list, YakuKokushi)
		}
	case SevenPairs:
		if allHonors(d.AllTiles()) {
			list = append(list, YakuTsuuiisou)
		}
	case Standard:
		list = append(list, s.standardYakuman(d, ctx, closed)...)
	}
	return list
}

func (s *Scorer) standardYakuman(d *Decomposition, ctx *Context, closed bool) []Yaku {
	var list []Yaku
	tiles := d.AllTiles()

	if allHonors(tiles) {
		list = append(list, YakuTsuuiisou)
	}
	allTerminal := true
	allGreen := true
	for _, t := range tiles {
		if !t.IsTerminal() {
			allTerminal = false
		}
		if !t.isGreen() {
			allGreen = false
		}
	}
	if allTerminal {
		list = append(list, YakuChinroutou)
	}
	if allGreen {
		list = append(list, YakuRyuuiisou)
	}

	quads := 0
	for _, g := range d.Groups {
		if g.Type == GroupQuad {
			quads++
		}
	}
	if quads == 4 {
		list = append(list, YakuSuukantsu)
	}

	if concealedSets(d, ctx) == 4 {
		if d.Wait == WaitTanki {
			list = append(list, YakuSuuankouTanki)
		} else {
			list = append(list, YakuSuuankou)
		}
	}

	dragonSets, windSets := 0, 0
	for _, g := range d.Groups {
		if !g.isSet() {
			continue
		}
		switch g.tile().Suit {
		case SuitDragon:
			dragonSets++
		case SuitWind:
			windSets++
		}
	}
	if dragonSets == 3 {
		list = append(list, YakuDaisangen)
	}
	if windSets == 4 {
		list = append(list, YakuDaisuushii)
	} else if windSets == 3 && d.pair().tile().Suit == SuitWind {
		list = append(list, YakuShousuushii)
	}

	if closed {
		if junsei, ok := chuurenShape(d); ok {
			if junsei {
				list = append(list, YakuJunseiChuuren)
			} else {
				list = append(list, YakuChuuren)
			}
		}
	}
	return list
}

// chuurenShape tests for 1112345678999 plus one extra of the same suit.
// The second return is false when the shape does not hold; the first marks
// the pure nine-sided variant, where the extra copy is the winning tile.
func chuurenShape(d *Decomposition) (junsei, ok bool) {
	tiles := d.AllTiles()
	suit := tiles[0].Suit
	var counts [10]int
	for _, t := range tiles {
		if t.IsHonor() || t.Suit != suit {
			return false, false
		}
		counts[t.Value]++
	}
	extra := Tile{}
	for v := 1; v <= 9; v++ {
		want := 1
		if v == 1 || v == 9 {
			want = 3
		}
		switch counts[v] - want {
		case 0:
		case 1:
			if extra != (Tile{}) {
				return false, false
			}
			extra = Tile{Suit: suit, Value: v}
		default:
			return false, false
		}
	}
	if extra == (Tile{}) {
		return false, false
	}
	return extra.SameKind(d.WinningTile), true
}

func allHonors(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsHonor() {
			return false
		}
	}
	return true
}

// yakumanResult folds the detected yakuman into a final result. Double
// yakuman flatten to single when the ruleset disables them, and multiple
// yakuman either stack or keep only the largest.
func (s *Scorer) yakumanResult(list []Yaku) YakuResult {
	result := YakuResult{}
	for _, y := range list {
		mult := y.YakumanMultiple()
		if !s.Rules.DoubleYakuman && mult > 1 {
			mult = 1
		}
		result.Yaku = append(result.Yaku, YakuHan{Yaku: y, Han: 13 * mult})
		if s.Rules.SumYakuman {
			result.YakumanMultiple += mult
		} else if mult > result.YakumanMultiple {
			result.YakumanMultiple = mult
		}
	}
	if !s.Rules.SumYakuman && len(result.Yaku) > 1 {
		// keep only the largest when stacking is off
		best := result.Yaku[0]
		for _, yh := range result.Yaku[1:] {
			if yh.Han > best.Han {
				best = yh
			}
		}
		result.Yaku = []YakuHan{best}
	}
	result.Han = 13 * result.YakumanMultiple
	return result
}
