package mahjong

// computeFu totals the minipoints of one decomposition. Pinfu is decided
// by the evaluator and passed in so the two stay consistent.
func computeFu(d *Decomposition, ctx *Context, closed, pinfu bool) int {
	switch d.Kind {
	case SevenPairs:
		return 25
	case ThirteenOrphans:
		fu := 20
		if ctx.Method == Ron {
			fu += 10
		} else {
			fu += 2
		}
		return roundUpFu(fu)
	}

	if pinfu {
		if ctx.Method == Tsumo {
			return 20
		}
		return 30
	}

	fu := 20
	if closed && ctx.Method == Ron {
		fu += 10
	}
	if ctx.Method == Tsumo {
		fu += 2
	}

	for i, g := range d.Groups {
		if !g.isSet() {
			continue
		}
		base := 2
		if g.Type == GroupQuad {
			base = 8
		}
		if g.tile().IsTerminalOrHonor() {
			base *= 2
		}
		if g.Concealed && !d.ronOpensGroup(i, ctx.Method) {
			base *= 2
		}
		fu += base
	}

	switch d.Wait {
	case WaitKanchan, WaitPenchan, WaitTanki:
		fu += 2
	}

	fu += ctx.yakuhaiPair(d.pair().tile())

	// an open hand that lands on bare 20 is scored as 30
	if !closed && fu == 20 {
		fu = 30
	}
	return roundUpFu(fu)
}

func roundUpFu(fu int) int {
	return (fu + 9) / 10 * 10
}
