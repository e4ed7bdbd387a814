package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundUpFu(t *testing.T) {
	assert.Equal(t, 20, roundUpFu(20))
	assert.Equal(t, 30, roundUpFu(22))
	assert.Equal(t, 40, roundUpFu(32))
	assert.Equal(t, 50, roundUpFu(42))
	assert.Equal(t, 70, roundUpFu(64))
}

func TestFuPinfu(t *testing.T) {
	h := mustHand(t, "234m22456p677889s", "8s")

	ron := mustScore(t, h, ronCtx())
	assert.Equal(t, 30, ron.Fu)

	ctx := tsumoCtx()
	tsumo := mustScore(t, h, ctx)
	assert.Equal(t, 20, tsumo.Fu)
}

func TestFuChiitoitsuFixed(t *testing.T) {
	h := mustHand(t, "1122m3344p5566s77z", "7z")
	b := mustScore(t, h, ronCtx())
	assert.Equal(t, 25, b.Fu)
}

func TestFuClosedKanAndYakuhaiPair(t *testing.T) {
	// 20 base + 10 closed ron + 32 terminal ankan + 2 tanki + 2 dragon pair
	h := mustHand(t, "234m456p789s55z", "5z", meld(t, MeldClosedKan, "1m"))
	ctx := ronCtx()
	ctx.Riichi = true
	b := mustScore(t, h, ctx)
	assert.Equal(t, 70, b.Fu)
}

func TestFuOpenHandFloor(t *testing.T) {
	// all-run open ron lands on bare 20 and is charged as 30
	h := mustHand(t, "345p56677888s", "3p", meld(t, MeldChi, "2m"))
	b := mustScore(t, h, ronCtx())
	assert.Equal(t, 30, b.Fu)
}

func TestFuRonTripletCountsOpen(t *testing.T) {
	// 444z finished by discard scores 4 fu, not 8
	h := mustHand(t, "111m333p456s11z444z", "4z")
	ctx := ronCtx()
	ctx.Riichi = true
	b := mustScore(t, h, ctx)
	// 20 + 10 menzen ron + 8 (111m) + 4 (333p) + 4 (444z open) + 2 pair = 48
	assert.Equal(t, 50, b.Fu)
}

func TestFuDoubleWindPair(t *testing.T) {
	// an east pair when east is both seat and round wind gives 4 fu
	h := mustHand(t, "234m456p456678s11z", "1z")
	ctx := Context{RoundWind: East, SeatWind: East, Method: Tsumo}
	b := mustScore(t, h, ctx)
	// 20 + 2 tsumo + 2 tanki + 4 pair = 28
	assert.Equal(t, 30, b.Fu)
}

func TestFuMultipleOfTen(t *testing.T) {
	hands := []Hand{
		mustHand(t, "234m22456p677889s", "8s"),
		mustHand(t, "111m333p555s99p", "9p", meld(t, MeldPon, "3z")),
		mustHand(t, "123m789m123p999s11p", "1p"),
	}
	for _, h := range hands {
		b := mustScore(t, h, ronCtx())
		assert.Zero(t, b.Fu%10)
	}
}
