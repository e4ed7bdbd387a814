package mahjong

import (
	"sort"
	"strings"
)

// GroupType tags one component of a decomposed hand.
type GroupType int

const (
	GroupRun GroupType = iota
	GroupTriplet
	GroupQuad
	GroupPair
)

// Group is one run, triplet, quad or pair of a Standard decomposition.
// Concealed is false for called melds and for nothing else; whether a
// ron-completed triplet still counts as concealed is decided later, where
// the win method is known.
type Group struct {
	Type      GroupType
	Tiles     []Tile
	Concealed bool
}

// tile returns the representative tile (lowest for runs).
func (g Group) tile() Tile { return g.Tiles[0] }

// isSet reports whether the group is a triplet or quad.
func (g Group) isSet() bool { return g.Type == GroupTriplet || g.Type == GroupQuad }

func (g Group) contains(t Tile) bool {
	for _, gt := range g.Tiles {
		if gt.SameKind(t) {
			return true
		}
	}
	return false
}

// Wait classifies how the winning tile completed its group.
type Wait int

const (
	WaitRyanmen Wait = iota // two-sided
	WaitKanchan             // closed (middle of a run)
	WaitPenchan             // edge (12 waiting 3 / 89 waiting 7)
	WaitTanki               // pair wait
	WaitShanpon             // dual-pair wait completing a triplet
)

// DecompositionKind selects the recognized winning shapes.
type DecompositionKind int

const (
	Standard DecompositionKind = iota
	SevenPairs
	ThirteenOrphans
)

// Decomposition is one candidate structuring of the 14 tiles, with a fixed
// placement of the winning tile. The same group multiset can appear under
// several placements; each is scored independently and the best one wins.
type Decomposition struct {
	Kind   DecompositionKind
	Groups []Group // 4 groups + pair for Standard, 7 pairs for SevenPairs

	WinningTile  Tile
	WinningGroup int  // index into Groups, -1 for ThirteenOrphans
	Wait         Wait

	// ThirteenOrphans only: the hand held all 13 orphans before the win,
	// i.e. the duplicated tile is the winning tile.
	ThirteenSided bool
	OrphanTiles   []Tile
}

// AllTiles returns the 14 tiles of the decomposition (quads contribute 4).
func (d *Decomposition) AllTiles() []Tile {
	if d.Kind == ThirteenOrphans {
		return d.OrphanTiles
	}
	var tiles []Tile
	for _, g := range d.Groups {
		tiles = append(tiles, g.Tiles...)
	}
	return tiles
}

// pair returns the pair group of a Standard decomposition.
func (d *Decomposition) pair() Group {
	for _, g := range d.Groups {
		if g.Type == GroupPair {
			return g
		}
	}
	return Group{}
}

// ronOpensGroup reports whether group i should be treated as open because
// the winning tile arrived by ron and completed it. A triplet finished off
// a discard was never concealed.
func (d *Decomposition) ronOpensGroup(i int, method WinMethod) bool {
	return method == Ron && i == d.WinningGroup && d.Groups[i].Type == GroupTriplet
}

// defensive cap on search states; a well-formed 14-tile hand stays far
// below this.
const maxDecomposeSteps = 1 << 16

// Decompose enumerates every valid structuring of the hand. It returns
// InvalidHandShape when no recognized shape fits, or when the search blows
// through its step limit.
func Decompose(h Hand) ([]Decomposition, error) {
	if err := h.validateShape(); err != nil {
		return nil, err
	}

	std, err := standardDecompositions(h)
	if err != nil {
		return nil, err
	}
	out := std
	if len(h.Melds) == 0 {
		if d, ok := sevenPairsDecomposition(h); ok {
			out = append(out, d)
		}
		if d, ok := thirteenOrphansDecomposition(h); ok {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil, invalidHand("no winning shape fits these tiles")
	}
	return out, nil
}

func standardDecompositions(h Hand) ([]Decomposition, error) {
	return standardDecompositionsCapped(h, maxDecomposeSteps)
}

func standardDecompositionsCapped(h Hand, limit int) ([]Decomposition, error) {
	meldGroups := make([]Group, len(h.Melds))
	for i, m := range h.Melds {
		meldGroups[i] = m.group()
	}

	counts := countTiles(h.Concealed)
	need := 4 - len(h.Melds)
	memo := map[string]bool{} // remainder states known unsolvable
	steps := 0

	var out []Decomposition
	seen := map[string]bool{}

	for i := 0; i < tileKinds; i++ {
		if counts[i] < 2 {
			continue
		}
		counts[i] -= 2
		var partitions [][]Group
		enumerateGroups(&counts, need, nil, &partitions, memo, &steps, limit)
		counts[i] += 2

		pairTile := TileFromIndex(i)
		for _, part := range partitions {
			groups := make([]Group, 0, len(meldGroups)+len(part)+1)
			groups = append(groups, meldGroups...)
			groups = append(groups, part...)
			groups = append(groups, Group{
				Type:      GroupPair,
				Tiles:     []Tile{pairTile, pairTile},
				Concealed: true,
			})
			for _, d := range placeWinningTile(groups, h.WinningTile, len(meldGroups)) {
				k := decompositionKey(&d)
				if !seen[k] {
					seen[k] = true
					out = append(out, d)
				}
			}
		}
		if steps > limit {
			return nil, invalidHand("decomposition search exceeded its step limit")
		}
	}
	return out, nil
}

// enumerateGroups collects every way to split the remainder into `need`
// runs/triplets. Branches on the lowest occupied tile only, so each group
// multiset is produced once; remainder states that admit no split are
// memoized and never revisited.
func enumerateGroups(counts *tileCounts, need int, acc []Group, out *[][]Group, memo map[string]bool, steps *int, limit int) bool {
	*steps++
	if *steps > limit {
		return false
	}

	i := 0
	for i < tileKinds && counts[i] == 0 {
		i++
	}
	if i == tileKinds {
		if need == 0 {
			*out = append(*out, append([]Group(nil), acc...))
			return true
		}
		return false
	}
	if need == 0 {
		return false
	}
	key := counts.key()
	if memo[key] {
		return false
	}

	found := false
	tile := TileFromIndex(i)

	if counts[i] >= 3 {
		counts[i] -= 3
		g := Group{Type: GroupTriplet, Tiles: []Tile{tile, tile, tile}, Concealed: true}
		if enumerateGroups(counts, need-1, append(acc, g), out, memo, steps, limit) {
			found = true
		}
		counts[i] += 3
	}

	if i < 27 && i%9 < 7 && counts[i] > 0 && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		g := Group{
			Type:      GroupRun,
			Tiles:     []Tile{tile, TileFromIndex(i + 1), TileFromIndex(i + 2)},
			Concealed: true,
		}
		if enumerateGroups(counts, need-1, append(acc, g), out, memo, steps, limit) {
			found = true
		}
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}

	if !found {
		memo[key] = true
	}
	return found
}

// placeWinningTile yields one Decomposition per way the winning tile can
// have completed the hand: the pair (tanki), a concealed triplet (shanpon)
// or a concealed run (ryanmen/kanchan/penchan). Declared melds were fixed
// before the win and cannot host it.
func placeWinningTile(groups []Group, winning Tile, meldCount int) []Decomposition {
	var out []Decomposition
	for i := meldCount; i < len(groups); i++ {
		g := groups[i]
		if !g.contains(winning) {
			continue
		}
		d := Decomposition{
			Kind:         Standard,
			Groups:       groups,
			WinningTile:  winning,
			WinningGroup: i,
		}
		switch g.Type {
		case GroupPair:
			d.Wait = WaitTanki
		case GroupTriplet:
			d.Wait = WaitShanpon
		case GroupRun:
			t1, t2, t3 := g.Tiles[0], g.Tiles[1], g.Tiles[2]
			switch {
			case winning.SameKind(t2):
				d.Wait = WaitKanchan
			case winning.SameKind(t1):
				if t3.Value == 9 {
					d.Wait = WaitPenchan
				} else {
					d.Wait = WaitRyanmen
				}
			default:
				if t1.Value == 1 {
					d.Wait = WaitPenchan
				} else {
					d.Wait = WaitRyanmen
				}
			}
		default:
			continue // concealed quads cannot be completed by the winning tile
		}
		out = append(out, d)
	}
	return out
}

func sevenPairsDecomposition(h Hand) (Decomposition, bool) {
	counts := countTiles(h.Concealed)
	var groups []Group
	winning := -1
	for i, n := range counts {
		switch n {
		case 0:
		case 2:
			t := TileFromIndex(i)
			if t.SameKind(h.WinningTile) {
				winning = len(groups)
			}
			groups = append(groups, Group{Type: GroupPair, Tiles: []Tile{t, t}, Concealed: true})
		default:
			// a tile held once, three or four times breaks the shape;
			// four of a kind is not two pairs here
			return Decomposition{}, false
		}
	}
	if len(groups) != 7 || winning < 0 {
		return Decomposition{}, false
	}
	return Decomposition{
		Kind:         SevenPairs,
		Groups:       groups,
		WinningTile:  h.WinningTile,
		WinningGroup: winning,
		Wait:         WaitTanki,
	}, true
}

func thirteenOrphansDecomposition(h Hand) (Decomposition, bool) {
	counts := countTiles(h.Concealed)
	var dup Tile
	kinds := 0
	for i, n := range counts {
		if n == 0 {
			continue
		}
		t := TileFromIndex(i)
		if !t.IsTerminalOrHonor() || n > 2 {
			return Decomposition{}, false
		}
		kinds++
		if n == 2 {
			if dup != (Tile{}) {
				return Decomposition{}, false
			}
			dup = t
		}
	}
	if kinds != 13 || dup == (Tile{}) {
		return Decomposition{}, false
	}
	tiles := append([]Tile(nil), h.Concealed...)
	SortTiles(tiles)
	return Decomposition{
		Kind:          ThirteenOrphans,
		WinningTile:   h.WinningTile,
		WinningGroup:  -1,
		Wait:          WaitTanki,
		ThirteenSided: dup.SameKind(h.WinningTile),
		OrphanTiles:   tiles,
	}, true
}

// decompositionKey canonicalizes (groups, wait placement) for
// de-duplication: identical group multisets with the winning tile in an
// identical group are the same candidate.
func decompositionKey(d *Decomposition) string {
	parts := make([]string, 0, len(d.Groups)+1)
	for i, g := range d.Groups {
		s := groupKey(g)
		if i == d.WinningGroup {
			s += "*"
		}
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

func groupKey(g Group) string {
	var b strings.Builder
	b.WriteByte(byte('a' + int(g.Type)))
	if g.Concealed {
		b.WriteByte('c')
	}
	for _, t := range g.Tiles {
		b.WriteString(t.String())
	}
	return b.String()
}
