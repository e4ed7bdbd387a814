package mahjong

import "fmt"

// MeldType classifies a declared meld.
type MeldType int

const (
	MeldChi       MeldType = iota // called run
	MeldPon                       // called triplet
	MeldOpenKan                   // daiminkan / shouminkan
	MeldClosedKan                 // ankan
)

var meldTypeNames = map[MeldType]string{
	MeldChi:       "chi",
	MeldPon:       "pon",
	MeldOpenKan:   "kan",
	MeldClosedKan: "ankan",
}

// Meld is a group fixed during play. Tile is the representative: the lowest
// tile for a chi, the repeated tile otherwise.
type Meld struct {
	Type MeldType
	Tile Tile
}

// IsConcealed reports whether the meld keeps the hand concealed for yaku
// purposes. Only a closed kan does.
func (m Meld) IsConcealed() bool {
	return m.Type == MeldClosedKan
}

// Tiles expands the meld into its component tiles.
func (m Meld) Tiles() []Tile {
	switch m.Type {
	case MeldChi:
		return []Tile{
			m.Tile,
			{Suit: m.Tile.Suit, Value: m.Tile.Value + 1},
			{Suit: m.Tile.Suit, Value: m.Tile.Value + 2},
		}
	case MeldPon:
		return []Tile{m.Tile, m.Tile, m.Tile}
	default:
		return []Tile{m.Tile, m.Tile, m.Tile, m.Tile}
	}
}

// validate checks the meld is a structurally legal run/triplet/quad.
func (m Meld) validate() error {
	if m.Tile.IsHonor() {
		if m.Type == MeldChi {
			return fmt.Errorf("chi of honor tile %s", m.Tile)
		}
		return nil
	}
	if m.Tile.Value < 1 || m.Tile.Value > 9 {
		return fmt.Errorf("meld tile %s out of range", m.Tile)
	}
	if m.Type == MeldChi && m.Tile.Value > 7 {
		return fmt.Errorf("chi cannot start at %s", m.Tile)
	}
	return nil
}

// group converts the declared meld into a decomposition group.
func (m Meld) group() Group {
	g := Group{Tiles: m.Tiles(), Concealed: m.IsConcealed()}
	switch m.Type {
	case MeldChi:
		g.Type = GroupRun
	case MeldPon:
		g.Type = GroupTriplet
	default:
		g.Type = GroupQuad
	}
	return g
}

func (m Meld) String() string {
	return fmt.Sprintf("%s:%s", meldTypeNames[m.Type], m.Tile)
}
