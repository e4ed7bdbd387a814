package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t *testing.T, concealed, win string, melds ...Meld) Hand {
	t.Helper()
	tiles, err := ParseTiles(concealed)
	require.NoError(t, err)
	winTile, err := ParseTile(win)
	require.NoError(t, err)
	return Hand{Concealed: tiles, Melds: melds, WinningTile: winTile}
}

func meld(t *testing.T, typ MeldType, tile string) Meld {
	t.Helper()
	tl, err := ParseTile(tile)
	require.NoError(t, err)
	return Meld{Type: typ, Tile: tl}
}

func kinds(ds []Decomposition) map[DecompositionKind]int {
	m := map[DecompositionKind]int{}
	for _, d := range ds {
		m[d.Kind]++
	}
	return m
}

func TestDecomposeStandard(t *testing.T) {
	h := mustHand(t, "234m22456p677889s", "8s")
	ds, err := Decompose(h)
	require.NoError(t, err)

	// 678+789 sou split, winning tile in either run
	require.Len(t, ds, 2)
	waits := map[Wait]bool{}
	for _, d := range ds {
		assert.Equal(t, Standard, d.Kind)
		assert.Len(t, d.Groups, 5)
		assert.Len(t, d.AllTiles(), 14)
		waits[d.Wait] = true
	}
	assert.True(t, waits[WaitRyanmen])
	assert.True(t, waits[WaitKanchan])
}

func TestDecomposeWaitShapes(t *testing.T) {
	cases := []struct {
		name      string
		concealed string
		win       string
		want      Wait
	}{
		{"penchan low", "123m456p789s111z44z", "3m", WaitPenchan},
		{"penchan high", "789m456p789s111z44z", "7m", WaitPenchan},
		{"kanchan", "456m555p789s111z44z", "5m", WaitKanchan},
		{"tanki", "123m456p789s111z44z", "4z", WaitTanki},
		{"shanpon", "123m456p789s11z444z", "4z", WaitShanpon},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ds, err := Decompose(mustHand(t, c.concealed, c.win))
			require.NoError(t, err)
			found := false
			for _, d := range ds {
				if d.Wait == c.want {
					found = true
				}
			}
			assert.True(t, found, "missing wait %v", c.want)
		})
	}
}

func TestDecomposeWithMelds(t *testing.T) {
	h := mustHand(t, "456p789s55z", "5z",
		meld(t, MeldPon, "1m"), meld(t, MeldChi, "2s"))
	ds, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, ds, 1)

	d := ds[0]
	assert.Equal(t, WaitTanki, d.Wait)
	open := 0
	for _, g := range d.Groups {
		if !g.Concealed {
			open++
		}
	}
	assert.Equal(t, 2, open)
}

func TestDecomposeSevenPairs(t *testing.T) {
	ds, err := Decompose(mustHand(t, "1122m3344p5566s77z", "7z"))
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, SevenPairs, ds[0].Kind)
	assert.Len(t, ds[0].Groups, 7)
	assert.Equal(t, WaitTanki, ds[0].Wait)
}

func TestDecomposeSevenPairsNeedsDistinct(t *testing.T) {
	// four of a kind never counts as two pairs
	_, err := Decompose(mustHand(t, "1122m3344p5555s77z", "7z"))
	assert.ErrorIs(t, err, ErrInvalidHandShape)
}

func TestDecomposeSevenPairsAlsoStandard(t *testing.T) {
	// ryanpeikou shape reads both ways
	ds, err := Decompose(mustHand(t, "112233m445566p77s", "7s"))
	require.NoError(t, err)
	byKind := kinds(ds)
	assert.Greater(t, byKind[Standard], 0)
	assert.Equal(t, 1, byKind[SevenPairs])
}

func TestDecomposeThirteenOrphans(t *testing.T) {
	ds, err := Decompose(mustHand(t, "19m19p19s12345677z", "7z"))
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, ThirteenOrphans, ds[0].Kind)
	assert.True(t, ds[0].ThirteenSided)

	ds, err = Decompose(mustHand(t, "19m19p19s12345677z", "1m"))
	require.NoError(t, err)
	assert.False(t, ds[0].ThirteenSided)
}

func TestDecomposeInvalidShapes(t *testing.T) {
	cases := []struct {
		name string
		hand Hand
	}{
		{"not a winning shape", mustHand(t, "1122m3344p7777z56s", "7z")},
		{"wrong tile count", mustHand(t, "123m456p789s11z", "1z")},
		{"winning tile absent", mustHand(t, "123m456p789s11222z", "9p")},
		{"five copies", mustHand(t, "11111m456p789s222z", "1m")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decompose(c.hand)
			assert.ErrorIs(t, err, ErrInvalidHandShape)
		})
	}
}

func TestDecomposeStepLimit(t *testing.T) {
	h := mustHand(t, "234m22456p677889s", "8s")

	_, err := standardDecompositionsCapped(h, 1)
	assert.ErrorIs(t, err, ErrInvalidHandShape)

	ds, err := standardDecompositionsCapped(h, maxDecomposeSteps)
	require.NoError(t, err)
	assert.NotEmpty(t, ds)
}

func TestDecomposeClosedKanTanki(t *testing.T) {
	h := mustHand(t, "234m456p789s55z", "5z", meld(t, MeldClosedKan, "1m"))
	ds, err := Decompose(h)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, WaitTanki, ds[0].Wait)
	assert.True(t, h.IsConcealedHand())
}
