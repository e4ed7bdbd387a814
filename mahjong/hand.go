package mahjong

// WinMethod distinguishes a win off a discard from a self-draw.
type WinMethod int

const (
	Ron WinMethod = iota
	Tsumo
)

// Hand is the validated 14-tile winning hand handed to the engine.
// Concealed holds the tiles not locked in declared melds, winning tile
// included; a kan keeps its fourth tile inside the meld, so
// len(Concealed) + 3*len(Melds) == 14 always.
type Hand struct {
	Concealed   []Tile
	Melds       []Meld
	WinningTile Tile
}

// IsConcealedHand reports menzen status: no melds other than closed kans.
func (h Hand) IsConcealedHand() bool {
	for _, m := range h.Melds {
		if !m.IsConcealed() {
			return false
		}
	}
	return true
}

// AllTiles returns every tile of the hand, melds expanded.
func (h Hand) AllTiles() []Tile {
	tiles := make([]Tile, 0, 14+len(h.Melds))
	tiles = append(tiles, h.Concealed...)
	for _, m := range h.Melds {
		tiles = append(tiles, m.Tiles()...)
	}
	return tiles
}

// validateShape enforces the structural preconditions the upstream
// collaborator owes us. Violations surface as InvalidHandShape.
func (h Hand) validateShape() error {
	if len(h.Melds) > 4 {
		return invalidHand("more than 4 declared melds")
	}
	if len(h.Concealed)+3*len(h.Melds) != 14 {
		return invalidHand("concealed tiles and melds do not add up to 14")
	}
	counts := countTiles(h.AllTiles())
	for i, n := range counts {
		if n > 4 {
			return invalidHandf("5 or more copies of %s", TileFromIndex(i))
		}
	}
	winningInHand := false
	for _, t := range h.Concealed {
		if t.SameKind(h.WinningTile) {
			winningInHand = true
			break
		}
	}
	if !winningInHand {
		return invalidHand("winning tile is not among the concealed tiles")
	}
	for _, m := range h.Melds {
		if err := m.validate(); err != nil {
			return invalidHand(err.Error())
		}
	}
	return nil
}

// Context carries everything about the table state that scoring depends on.
type Context struct {
	RoundWind int // East..North
	SeatWind  int
	Dealer    bool

	Method       WinMethod
	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool

	// Timing flags.
	Haitei  bool // win on the last wall draw (tsumo only)
	Houtei  bool // win on the last discard (ron only)
	Rinshan bool // win on the replacement draw after a kan
	Chankan bool // win by robbing an added kan
	Tenhou  bool // dealer wins on the initial deal
	Chiihou bool // non-dealer wins on the first uninterrupted draw
	Renhou  bool // non-dealer wins on a discard before their first draw

	DoraIndicators    []Tile
	UraDoraIndicators []Tile

	Honba        int
	RiichiSticks int
}

// yakuhaiPair returns the fu value of a pair of the given honor tile:
// dragons and matching winds score, a double wind scores twice.
func (c *Context) yakuhaiPair(t Tile) int {
	if t.Suit == SuitDragon {
		return 2
	}
	if t.Suit != SuitWind {
		return 0
	}
	fu := 0
	if t.Value == c.SeatWind {
		fu += 2
	}
	if t.Value == c.RoundWind {
		fu += 2
	}
	return fu
}

// validate rejects mutually contradictory context flags rather than
// resolving them silently.
func (c *Context) validate(h Hand) error {
	if c.SeatWind < East || c.SeatWind > North {
		return ambiguous("seat wind out of range")
	}
	if c.RoundWind < East || c.RoundWind > North {
		return ambiguous("round wind out of range")
	}
	if c.Riichi && c.DoubleRiichi {
		return ambiguous("riichi and double riichi at once")
	}
	if c.Ippatsu && !(c.Riichi || c.DoubleRiichi) {
		return ambiguous("ippatsu without riichi")
	}
	if (c.Riichi || c.DoubleRiichi) && !h.IsConcealedHand() {
		return ambiguous("riichi with an open hand")
	}
	if c.Haitei && c.Method == Ron {
		return ambiguous("haitei must be a tsumo win")
	}
	if c.Houtei && c.Method == Tsumo {
		return ambiguous("houtei must be a ron win")
	}
	if c.Haitei && c.Houtei {
		return ambiguous("haitei and houtei at once")
	}
	if c.Rinshan && c.Method == Ron {
		return ambiguous("rinshan must be a tsumo win")
	}
	if c.Chankan && c.Method == Tsumo {
		return ambiguous("chankan must be a ron win")
	}
	if c.Tenhou {
		if !c.Dealer || c.Method != Tsumo || len(h.Melds) > 0 {
			return ambiguous("tenhou requires a concealed dealer tsumo on the first draw")
		}
	}
	if c.Chiihou {
		if c.Dealer || c.Method != Tsumo || len(h.Melds) > 0 {
			return ambiguous("chiihou requires a concealed non-dealer tsumo")
		}
	}
	if c.Renhou && c.Method != Ron {
		return ambiguous("renhou must be a ron win")
	}
	if len(c.UraDoraIndicators) > 0 && !(c.Riichi || c.DoubleRiichi) {
		return ambiguous("ura dora indicators without riichi")
	}
	return nil
}
