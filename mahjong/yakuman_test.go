package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKokushi(t *testing.T) {
	h := mustHand(t, "19m19p19s12345677z", "1m")
	b := mustScore(t, h, ronCtx())

	assert.Equal(t, 1, b.YakumanMultiple)
	assert.Equal(t, 8000, b.BasePoints)
	require.Len(t, b.Yaku, 1)
	assert.Equal(t, YakuKokushi, b.Yaku[0].Yaku)
}

func TestKokushiThirteenSidedDouble(t *testing.T) {
	h := mustHand(t, "19m19p19s12345677z", "7z")
	b := mustScore(t, h, ronCtx())

	assert.Equal(t, 2, b.YakumanMultiple)
	assert.Equal(t, 16000, b.BasePoints)
	assert.Equal(t, YakuKokushiJuusanmen, b.Yaku[0].Yaku)
}

func TestKokushiDoubleDisabled(t *testing.T) {
	rules := DefaultRuleset()
	rules.DoubleYakuman = false
	h := mustHand(t, "19m19p19s12345677z", "7z")
	b, err := NewScorer(rules).Score(h, ronCtx())
	require.NoError(t, err)
	assert.Equal(t, 1, b.YakumanMultiple)
}

func TestSuuankou(t *testing.T) {
	h := mustHand(t, "111m222p333555s99m", "5s")
	b := mustScore(t, h, tsumoCtx())

	assert.Equal(t, 1, b.YakumanMultiple)
	assert.Equal(t, YakuSuuankou, b.Yaku[0].Yaku)
	// dealer pays 16000, the others 8000 each
	assert.Equal(t, 16000, b.DealerPays)
	assert.Equal(t, 8000, b.NonDealerPays)
	assert.Equal(t, 32000, b.Total)
}

func TestSuuankouRonDemotedToSanankou(t *testing.T) {
	// the triplet completed by the discard is not concealed
	h := mustHand(t, "111m222p333555s99m", "5s")
	b := mustScore(t, h, ronCtx())

	assert.Equal(t, 0, b.YakumanMultiple)
	ys := yakuSet(b)
	assert.Equal(t, 2, ys[YakuSanankou])
	assert.Equal(t, 2, ys[YakuToitoi])
}

func TestSuuankouTankiDouble(t *testing.T) {
	h := mustHand(t, "111m222p555s999s99m", "9m")
	b := mustScore(t, h, ronCtx())

	assert.Equal(t, 2, b.YakumanMultiple)
	assert.Equal(t, YakuSuuankouTanki, b.Yaku[0].Yaku)
}

func TestDaisangen(t *testing.T) {
	h := mustHand(t, "555666777z123m99m", "9m")
	b := mustScore(t, h, ronCtx())

	assert.Equal(t, 1, b.YakumanMultiple)
	assert.Equal(t, YakuDaisangen, b.Yaku[0].Yaku)
	assert.Equal(t, 32000, b.DiscarderPays)
}

func TestShousuushiiAndDaisuushii(t *testing.T) {
	shou := mustHand(t, "111222333z44z567m", "7m")
	b := mustScore(t, shou, ronCtx())
	assert.Equal(t, YakuShousuushii, b.Yaku[0].Yaku)

	// ron on the north triplet keeps suuankou out of the picture
	dai := mustHand(t, "111222333444z55m", "4z")
	b = mustScore(t, dai, ronCtx())
	assert.Equal(t, YakuDaisuushii, b.Yaku[0].Yaku)
}

func TestTsuuiisouSevenPairs(t *testing.T) {
	h := mustHand(t, "11223344556677z", "7z")
	b := mustScore(t, h, ronCtx())
	assert.Equal(t, YakuTsuuiisou, b.Yaku[0].Yaku)
	assert.Equal(t, 1, b.YakumanMultiple)
}

func TestChinroutou(t *testing.T) {
	h := mustHand(t, "111999m111p999s99p", "9p")
	b := mustScore(t, h, tsumoCtx())
	found := false
	for _, yh := range b.Yaku {
		if yh.Yaku == YakuChinroutou {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRyuuiisou(t *testing.T) {
	h := mustHand(t, "223344666888s66z", "8s")
	b := mustScore(t, h, ronCtx())
	assert.Equal(t, YakuRyuuiisou, b.Yaku[0].Yaku)
}

func TestSuukantsu(t *testing.T) {
	h := mustHand(t, "66m", "6m",
		meld(t, MeldClosedKan, "1m"), meld(t, MeldClosedKan, "2p"),
		meld(t, MeldOpenKan, "3s"), meld(t, MeldOpenKan, "5z"))
	b := mustScore(t, h, ronCtx())
	assert.Equal(t, YakuSuukantsu, b.Yaku[0].Yaku)
	assert.Equal(t, 1, b.YakumanMultiple)
}

func TestChuuren(t *testing.T) {
	h := mustHand(t, "11123455678999m", "1m")
	b := mustScore(t, h, ronCtx())
	assert.Equal(t, YakuChuuren, b.Yaku[0].Yaku)
	assert.Equal(t, 1, b.YakumanMultiple)
}

func TestJunseiChuurenDouble(t *testing.T) {
	h := mustHand(t, "11123455678999m", "5m")
	b := mustScore(t, h, ronCtx())
	assert.Equal(t, YakuJunseiChuuren, b.Yaku[0].Yaku)
	assert.Equal(t, 2, b.YakumanMultiple)
}

func TestTenhouStacksWithHandYakuman(t *testing.T) {
	h := mustHand(t, "111m222p333555s99m", "5s")
	ctx := Context{RoundWind: East, SeatWind: East, Dealer: true, Method: Tsumo, Tenhou: true}
	b := mustScore(t, h, ctx)

	// tenhou + suuankou stack under the default ruleset
	assert.Equal(t, 2, b.YakumanMultiple)
	assert.Equal(t, 16000, b.BasePoints)
}

func TestYakumanSkipsFu(t *testing.T) {
	kokushi := mustHand(t, "19m19p19s12345677z", "7z")
	b := mustScore(t, kokushi, ronCtx())
	assert.Zero(t, b.Fu)

	suuankou := mustHand(t, "111m222p333555s99m", "5s")
	b = mustScore(t, suuankou, tsumoCtx())
	assert.Zero(t, b.Fu)

	// counted yakuman still carries its fu
	chinitsu := mustHand(t, "11123345567789m", "3m")
	ctx := ronCtx()
	ctx.Riichi = true
	ctx.Ippatsu = true
	ctx.DoraIndicators = []Tile{{Suit: SuitMan, Value: 2}, {Suit: SuitMan, Value: 2}}
	b = mustScore(t, chinitsu, ctx)
	assert.NotZero(t, b.Fu)
}

func TestSumYakumanDisabledKeepsLargest(t *testing.T) {
	rules := DefaultRuleset()
	rules.SumYakuman = false
	h := mustHand(t, "111m222p333555s99m", "5s")
	ctx := Context{RoundWind: East, SeatWind: East, Dealer: true, Method: Tsumo, Tenhou: true}
	b, err := NewScorer(rules).Score(h, ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, b.YakumanMultiple)
	require.Len(t, b.Yaku, 1)
}
