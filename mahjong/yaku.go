package mahjong

// Yaku identifies a scoring condition. Dora entries share the list but are
// never a yaku on their own.
type Yaku int

const (
	YakuRiichi Yaku = iota
	YakuDoubleRiichi
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuIipeikou
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuTanyao
	YakuSeatWind
	YakuRoundWind
	YakuDragon

	YakuChiitoitsu
	YakuSanshokuDoujun
	YakuSanshokuDoukou
	YakuIttsu
	YakuChanta
	YakuJunchan
	YakuToitoi
	YakuSanankou
	YakuSankantsu
	YakuShousangen
	YakuHonroutou

	YakuRyanpeikou
	YakuHonitsu

	YakuChinitsu

	// Yakuman.
	YakuTenhou
	YakuChiihou
	YakuRenhou
	YakuDaisangen
	YakuSuuankou
	YakuSuuankouTanki
	YakuShousuushii
	YakuDaisuushii
	YakuTsuuiisou
	YakuChinroutou
	YakuRyuuiisou
	YakuSuukantsu
	YakuKokushi
	YakuKokushiJuusanmen
	YakuChuuren
	YakuJunseiChuuren

	// Dora, appended to the yaku list for the breakdown.
	YakuDora
	YakuUraDora
	YakuAkaDora
)

var yakuNames = map[Yaku]string{
	YakuRiichi:           "Riichi",
	YakuDoubleRiichi:     "Double Riichi",
	YakuIppatsu:          "Ippatsu",
	YakuMenzenTsumo:      "Menzen Tsumo",
	YakuPinfu:            "Pinfu",
	YakuIipeikou:         "Iipeikou",
	YakuHaitei:           "Haitei Raoyue",
	YakuHoutei:           "Houtei Raoyui",
	YakuRinshan:          "Rinshan Kaihou",
	YakuChankan:          "Chankan",
	YakuTanyao:           "Tanyao",
	YakuSeatWind:         "Yakuhai (Seat Wind)",
	YakuRoundWind:        "Yakuhai (Round Wind)",
	YakuDragon:           "Yakuhai (Dragon)",
	YakuChiitoitsu:       "Chiitoitsu",
	YakuSanshokuDoujun:   "Sanshoku Doujun",
	YakuSanshokuDoukou:   "Sanshoku Doukou",
	YakuIttsu:            "Ittsu",
	YakuChanta:           "Chanta",
	YakuJunchan:          "Junchan",
	YakuToitoi:           "Toitoi",
	YakuSanankou:         "Sanankou",
	YakuSankantsu:        "Sankantsu",
	YakuShousangen:       "Shousangen",
	YakuHonroutou:        "Honroutou",
	YakuRyanpeikou:       "Ryanpeikou",
	YakuHonitsu:          "Honitsu",
	YakuChinitsu:         "Chinitsu",
	YakuTenhou:           "Tenhou",
	YakuChiihou:          "Chiihou",
	YakuRenhou:           "Renhou",
	YakuDaisangen:        "Daisangen",
	YakuSuuankou:         "Suuankou",
	YakuSuuankouTanki:    "Suuankou Tanki",
	YakuShousuushii:      "Shousuushii",
	YakuDaisuushii:       "Daisuushii",
	YakuTsuuiisou:        "Tsuuiisou",
	YakuChinroutou:       "Chinroutou",
	YakuRyuuiisou:        "Ryuuiisou",
	YakuSuukantsu:        "Suukantsu",
	YakuKokushi:          "Kokushi Musou",
	YakuKokushiJuusanmen: "Kokushi Musou Juusanmen",
	YakuChuuren:          "Chuuren Poutou",
	YakuJunseiChuuren:    "Junsei Chuuren Poutou",
	YakuDora:             "Dora",
	YakuUraDora:          "Ura Dora",
	YakuAkaDora:          "Aka Dora",
}

func (y Yaku) String() string { return yakuNames[y] }

// hanValues holds closed/open han. Open 0 means closed-only.
var hanValues = map[Yaku][2]int{
	YakuRiichi:         {1, 0},
	YakuDoubleRiichi:   {2, 0},
	YakuIppatsu:        {1, 0},
	YakuMenzenTsumo:    {1, 0},
	YakuPinfu:          {1, 0},
	YakuIipeikou:       {1, 0},
	YakuHaitei:         {1, 1},
	YakuHoutei:         {1, 1},
	YakuRinshan:        {1, 1},
	YakuChankan:        {1, 1},
	YakuTanyao:         {1, 1},
	YakuSeatWind:       {1, 1},
	YakuRoundWind:      {1, 1},
	YakuDragon:         {1, 1},
	YakuChiitoitsu:     {2, 0},
	YakuSanshokuDoujun: {2, 1},
	YakuSanshokuDoukou: {2, 2},
	YakuIttsu:          {2, 1},
	YakuChanta:         {2, 1},
	YakuJunchan:        {3, 2},
	YakuToitoi:         {2, 2},
	YakuSanankou:       {2, 2},
	YakuSankantsu:      {2, 2},
	YakuShousangen:     {2, 2},
	YakuHonroutou:      {2, 2},
	YakuRyanpeikou:     {3, 0},
	YakuHonitsu:        {3, 2},
	YakuChinitsu:       {6, 5},
}

// HanValue returns the han a yaku is worth, 0 if it cannot apply to an
// open hand. Yakuman and dora entries are valued elsewhere.
func (y Yaku) HanValue(closed bool) int {
	v := hanValues[y]
	if closed {
		return v[0]
	}
	return v[1]
}

// IsYakuman reports whether the yaku bypasses fu/han arithmetic.
func (y Yaku) IsYakuman() bool {
	return y >= YakuTenhou && y <= YakuJunseiChuuren
}

// YakumanMultiple returns 1 or, for the recognized double-yakuman forms, 2.
// Rulesets that do not pay doubles flatten the 2 back to 1.
func (y Yaku) YakumanMultiple() int {
	switch y {
	case YakuSuuankouTanki, YakuKokushiJuusanmen, YakuJunseiChuuren:
		return 2
	}
	return 1
}

// YakuHan is one line of the final breakdown.
type YakuHan struct {
	Yaku Yaku
	Han  int
}

// YakuResult is the outcome of evaluating one decomposition against one
// context. YakumanMultiple > 0 suppresses Han/fu arithmetic entirely.
type YakuResult struct {
	Yaku            []YakuHan
	Han             int
	YakumanMultiple int
}

// HasYaku reports whether any entry is a real yaku rather than dora.
func (r YakuResult) HasYaku() bool {
	if r.YakumanMultiple > 0 {
		return true
	}
	for _, yh := range r.Yaku {
		switch yh.Yaku {
		case YakuDora, YakuUraDora, YakuAkaDora:
		default:
			return true
		}
	}
	return false
}
