package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTiles(t *testing.T) {
	tiles, err := ParseTiles("234m567p789s11z")
	require.NoError(t, err)
	require.Len(t, tiles, 11)
	assert.Equal(t, Tile{Suit: SuitMan, Value: 2}, tiles[0])
	assert.Equal(t, Tile{Suit: SuitPin, Value: 7}, tiles[5])
	assert.Equal(t, Tile{Suit: SuitWind, Value: East}, tiles[9])
}

func TestParseTilesRedFive(t *testing.T) {
	tiles, err := ParseTiles("055m")
	require.NoError(t, err)
	require.Len(t, tiles, 3)
	assert.True(t, tiles[0].IsRed)
	assert.Equal(t, 5, tiles[0].Value)
	assert.False(t, tiles[1].IsRed)
	assert.True(t, tiles[0].SameKind(tiles[1]))
}

func TestParseTilesErrors(t *testing.T) {
	for _, bad := range []string{"5x", "8z", "12", "0z"} {
		_, err := ParseTiles(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseTileSingle(t *testing.T) {
	tile, err := ParseTile("7z")
	require.NoError(t, err)
	assert.Equal(t, Tile{Suit: SuitDragon, Value: Red}, tile)

	_, err = ParseTile("12m")
	assert.Error(t, err)
}

func TestTileString(t *testing.T) {
	assert.Equal(t, "5m", Tile{Suit: SuitMan, Value: 5}.String())
	assert.Equal(t, "0m", Tile{Suit: SuitMan, Value: 5, IsRed: true}.String())
	assert.Equal(t, "3z", Tile{Suit: SuitWind, Value: West}.String())
	assert.Equal(t, "6z", Tile{Suit: SuitDragon, Value: Green}.String())
}

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < tileKinds; i++ {
		assert.Equal(t, i, TileFromIndex(i).Index())
	}
}

func TestDoraSuccessor(t *testing.T) {
	cases := []struct {
		indicator, dora string
	}{
		{"4p", "5p"},
		{"9m", "1m"},
		{"9s", "1s"},
		{"4z", "1z"},
		{"2z", "3z"},
		{"7z", "5z"},
		{"5z", "6z"},
	}
	for _, c := range cases {
		ind, err := ParseTile(c.indicator)
		require.NoError(t, err)
		want, err := ParseTile(c.dora)
		require.NoError(t, err)
		assert.True(t, ind.DoraSuccessor().SameKind(want), "%s -> %s", c.indicator, c.dora)
	}
}

func TestTileClasses(t *testing.T) {
	nine := Tile{Suit: SuitSou, Value: 9}
	five := Tile{Suit: SuitPin, Value: 5}
	wind := Tile{Suit: SuitWind, Value: North}

	assert.True(t, nine.IsTerminal())
	assert.False(t, nine.IsSimple())
	assert.True(t, five.IsSimple())
	assert.False(t, wind.IsTerminal())
	assert.True(t, wind.IsHonor())
	assert.True(t, wind.IsTerminalOrHonor())
}

func TestSortAndFormat(t *testing.T) {
	tiles, err := ParseTiles("9m1m5p2p3z1z")
	require.NoError(t, err)
	SortTiles(tiles)
	assert.Equal(t, "19m25p13z", FormatTiles(tiles))
}
