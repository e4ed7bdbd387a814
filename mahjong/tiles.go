package mahjong

import (
	"fmt"
	"sort"
	"strings"
)

// Suit identifies the five tile families.
type Suit int

const (
	SuitMan Suit = iota // characters
	SuitPin             // circles
	SuitSou             // bamboo
	SuitWind
	SuitDragon
)

// Wind values (Tile.Value for SuitWind, and Context winds).
const (
	East  = 1
	South = 2
	West  = 3
	North = 4
)

// Dragon values (Tile.Value for SuitDragon).
const (
	White = 1
	Green = 2
	Red   = 3
)

// tileKinds is the size of the canonical tile-index space:
// man 0-8, pin 9-17, sou 18-26, winds 27-30, dragons 31-33.
const tileKinds = 34

// Tile is an immutable tile identity. IsRed marks a red five (aka dora);
// it never affects equality of kind, ordering, or decomposition.
type Tile struct {
	Suit  Suit
	Value int
	IsRed bool
}

var suitRunes = map[Suit]rune{
	SuitMan: 'm', SuitPin: 'p', SuitSou: 's',
}

var windNames = []string{"", "East", "South", "West", "North"}
var dragonNames = []string{"", "White", "Green", "Red"}

// Index maps the tile to its canonical 0-33 index.
func (t Tile) Index() int {
	switch t.Suit {
	case SuitMan:
		return t.Value - 1
	case SuitPin:
		return t.Value - 1 + 9
	case SuitSou:
		return t.Value - 1 + 18
	case SuitWind:
		return t.Value - 1 + 27
	default:
		return t.Value - 1 + 31
	}
}

// TileFromIndex is the inverse of Index. Red flags are lost.
func TileFromIndex(idx int) Tile {
	switch {
	case idx < 9:
		return Tile{Suit: SuitMan, Value: idx + 1}
	case idx < 18:
		return Tile{Suit: SuitPin, Value: idx - 9 + 1}
	case idx < 27:
		return Tile{Suit: SuitSou, Value: idx - 18 + 1}
	case idx < 31:
		return Tile{Suit: SuitWind, Value: idx - 27 + 1}
	default:
		return Tile{Suit: SuitDragon, Value: idx - 31 + 1}
	}
}

// SameKind reports tile-identity equality ignoring the red flag.
func (t Tile) SameKind(o Tile) bool {
	return t.Suit == o.Suit && t.Value == o.Value
}

// IsHonor reports whether the tile is a wind or dragon.
func (t Tile) IsHonor() bool {
	return t.Suit == SuitWind || t.Suit == SuitDragon
}

// IsTerminal reports whether the tile is a 1 or 9 of a number suit.
func (t Tile) IsTerminal() bool {
	return !t.IsHonor() && (t.Value == 1 || t.Value == 9)
}

// IsSimple reports whether the tile is a 2-8 of a number suit.
func (t Tile) IsSimple() bool {
	return !t.IsHonor() && t.Value >= 2 && t.Value <= 8
}

// IsTerminalOrHonor reports whether the tile is a yaochuu tile.
func (t Tile) IsTerminalOrHonor() bool {
	return t.IsHonor() || t.IsTerminal()
}

// isGreen reports membership in the all-green set: sou 2,3,4,6,8 and the
// green dragon.
func (t Tile) isGreen() bool {
	if t.Suit == SuitSou {
		switch t.Value {
		case 2, 3, 4, 6, 8:
			return true
		}
		return false
	}
	return t.Suit == SuitDragon && t.Value == Green
}

// DoraSuccessor returns the tile a dora indicator points at: the next value
// within the suit, wrapping 9 to 1, N to E and the red dragon to the white.
func (t Tile) DoraSuccessor() Tile {
	next := Tile{Suit: t.Suit, Value: t.Value + 1}
	switch t.Suit {
	case SuitWind:
		if t.Value == North {
			next.Value = East
		}
	case SuitDragon:
		if t.Value == Red {
			next.Value = White
		}
	default:
		if t.Value == 9 {
			next.Value = 1
		}
	}
	return next
}

// String renders the tile in mpsz notation: "5m", "3z". A red five renders
// as "0" of its suit, following common notation.
func (t Tile) String() string {
	switch t.Suit {
	case SuitWind:
		return fmt.Sprintf("%dz", t.Value)
	case SuitDragon:
		return fmt.Sprintf("%dz", t.Value+4)
	default:
		v := t.Value
		if t.IsRed {
			v = 0
		}
		return fmt.Sprintf("%d%c", v, suitRunes[t.Suit])
	}
}

// Name returns a human-readable tile name for display.
func (t Tile) Name() string {
	switch t.Suit {
	case SuitWind:
		return windNames[t.Value]
	case SuitDragon:
		return dragonNames[t.Value]
	case SuitMan:
		return fmt.Sprintf("Man %d", t.Value)
	case SuitPin:
		return fmt.Sprintf("Pin %d", t.Value)
	default:
		return fmt.Sprintf("Sou %d", t.Value)
	}
}

// ParseTile parses a single tile in mpsz notation ("5m", "0p" for the red
// five, "1z".."7z" for honors in E S W N White Green Red order).
func ParseTile(s string) (Tile, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return Tile{}, err
	}
	if len(tiles) != 1 {
		return Tile{}, fmt.Errorf("expected one tile, got %d in %q", len(tiles), s)
	}
	return tiles[0], nil
}

// ParseTiles parses mpsz notation with grouped suffixes: "234m567p789s11z".
// A digit 0 in a number suit is the red five. Whitespace between groups is
// allowed.
func ParseTiles(s string) ([]Tile, error) {
	var tiles []Tile
	var pending []int

	for _, r := range strings.ReplaceAll(s, " ", "") {
		switch {
		case r >= '0' && r <= '9':
			pending = append(pending, int(r-'0'))
		case r == 'm' || r == 'p' || r == 's':
			suit := map[rune]Suit{'m': SuitMan, 'p': SuitPin, 's': SuitSou}[r]
			for _, v := range pending {
				t := Tile{Suit: suit, Value: v}
				if v == 0 {
					t.Value = 5
					t.IsRed = true
				}
				tiles = append(tiles, t)
			}
			pending = nil
		case r == 'z':
			for _, v := range pending {
				switch {
				case v >= 1 && v <= 4:
					tiles = append(tiles, Tile{Suit: SuitWind, Value: v})
				case v >= 5 && v <= 7:
					tiles = append(tiles, Tile{Suit: SuitDragon, Value: v - 4})
				default:
					return nil, fmt.Errorf("invalid honor %dz in %q", v, s)
				}
			}
			pending = nil
		default:
			return nil, fmt.Errorf("unexpected %q in tile string %q", r, s)
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("dangling digits without suit in %q", s)
	}
	return tiles, nil
}

// FormatTiles renders a tile slice back to a compact mpsz string, keeping
// the order given.
func FormatTiles(tiles []Tile) string {
	var b strings.Builder
	for i, t := range tiles {
		s := t.String()
		if i+1 < len(tiles) {
			ns := tiles[i+1].String()
			if s[len(s)-1] == ns[len(ns)-1] {
				s = s[:len(s)-1]
			}
		}
		b.WriteString(s)
	}
	return b.String()
}

// SortTiles orders tiles by suit then value, reds after plain fives.
func SortTiles(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Index() != tiles[j].Index() {
			return tiles[i].Index() < tiles[j].Index()
		}
		return !tiles[i].IsRed && tiles[j].IsRed
	})
}

// tileCounts is a multiset over tile kinds, keyed by Index.
type tileCounts [tileKinds]int8

func countTiles(tiles []Tile) tileCounts {
	var c tileCounts
	for _, t := range tiles {
		c[t.Index()]++
	}
	return c
}

func (c tileCounts) total() int {
	n := 0
	for _, v := range c {
		n += int(v)
	}
	return n
}

// key returns a memoization key for the multiset.
func (c tileCounts) key() string {
	b := make([]byte, tileKinds)
	for i, v := range c {
		b[i] = byte(v)
	}
	return string(b)
}
