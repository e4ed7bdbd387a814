package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"riichi-calc/mahjong"
)

var log = logrus.New()

func main() {
	var (
		handStr  = flag.String("hand", "", "concealed tiles in mpsz notation, winning tile included (e.g. 234m567p789s11z55s)")
		winStr   = flag.String("win", "", "winning tile (e.g. 5s)")
		meldsStr = flag.String("melds", "", "declared melds, comma separated (e.g. pon:5z,chi:3p,ankan:1m,kan:9s)")
		seatStr  = flag.String("seat", "east", "seat wind: east, south, west or north")
		roundStr = flag.String("round", "east", "round wind")
		rulesStr = flag.String("rules", "", "path to a ruleset yaml file")
		doraStr  = flag.String("dora", "", "dora indicators (e.g. 3m7z)")
		uraStr   = flag.String("ura", "", "ura dora indicators, riichi only")

		tsumo    = flag.Bool("tsumo", false, "won by self-draw instead of discard")
		dealer   = flag.Bool("dealer", false, "winner is the dealer")
		riichi   = flag.Bool("riichi", false, "riichi declared")
		wRiichi  = flag.Bool("double-riichi", false, "riichi declared on the first discard")
		ippatsu  = flag.Bool("ippatsu", false, "won within one go-around of riichi")
		haitei   = flag.Bool("haitei", false, "won on the last draw")
		houtei   = flag.Bool("houtei", false, "won on the last discard")
		rinshan  = flag.Bool("rinshan", false, "won on the replacement tile after a kan")
		chankan  = flag.Bool("chankan", false, "won by robbing a kan")
		tenhou   = flag.Bool("tenhou", false, "dealer win on the opening draw")
		chiihou  = flag.Bool("chiihou", false, "non-dealer win on the first draw")
		renhou   = flag.Bool("renhou", false, "won on a discard before the first draw")
		honba    = flag.Int("honba", 0, "repeat counters on the table")
		sticks   = flag.Int("sticks", 0, "riichi sticks on the table")
		verbose  = flag.Bool("v", false, "debug logging")
		noColor  = flag.Bool("no-color", false, "disable colored output")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *noColor {
		color.NoColor = true
	}
	if *handStr == "" || *winStr == "" {
		fmt.Fprintln(os.Stderr, "both -hand and -win are required")
		flag.Usage()
		os.Exit(2)
	}

	hand, ctx, err := buildInput(*handStr, *winStr, *meldsStr, *seatStr, *roundStr, *doraStr, *uraStr)
	if err != nil {
		log.WithError(err).Fatal("bad input")
	}
	ctx.Dealer = *dealer
	if *tsumo {
		ctx.Method = mahjong.Tsumo
	}
	ctx.Riichi = *riichi
	ctx.DoubleRiichi = *wRiichi
	ctx.Ippatsu = *ippatsu
	ctx.Haitei = *haitei
	ctx.Houtei = *houtei
	ctx.Rinshan = *rinshan
	ctx.Chankan = *chankan
	ctx.Tenhou = *tenhou
	ctx.Chiihou = *chiihou
	ctx.Renhou = *renhou
	ctx.Honba = *honba
	ctx.RiichiSticks = *sticks

	rules := mahjong.DefaultRuleset()
	if *rulesStr != "" {
		rules, err = mahjong.LoadRuleset(*rulesStr)
		if err != nil {
			log.WithError(err).Fatal("cannot load ruleset")
		}
	}

	scorer := mahjong.NewScorer(rules)
	scorer.SetLogger(log)

	breakdown, err := scorer.Score(hand, ctx)
	switch {
	case errors.Is(err, mahjong.ErrNoYakuFound):
		color.Yellow("The hand is complete but has no yaku, so it cannot win.")
		os.Exit(1)
	case err != nil:
		log.WithError(err).Fatal("cannot score hand")
	}

	printBreakdown(hand, &ctx, breakdown)
}

func buildInput(handStr, winStr, meldsStr, seatStr, roundStr, doraStr, uraStr string) (mahjong.Hand, mahjong.Context, error) {
	var hand mahjong.Hand
	var ctx mahjong.Context

	concealed, err := mahjong.ParseTiles(handStr)
	if err != nil {
		return hand, ctx, fmt.Errorf("hand: %w", err)
	}
	win, err := mahjong.ParseTile(winStr)
	if err != nil {
		return hand, ctx, fmt.Errorf("winning tile: %w", err)
	}
	melds, err := parseMelds(meldsStr)
	if err != nil {
		return hand, ctx, err
	}
	hand = mahjong.Hand{Concealed: concealed, Melds: melds, WinningTile: win}

	ctx.SeatWind, err = parseWind(seatStr)
	if err != nil {
		return hand, ctx, fmt.Errorf("seat: %w", err)
	}
	ctx.RoundWind, err = parseWind(roundStr)
	if err != nil {
		return hand, ctx, fmt.Errorf("round: %w", err)
	}
	if doraStr != "" {
		if ctx.DoraIndicators, err = mahjong.ParseTiles(doraStr); err != nil {
			return hand, ctx, fmt.Errorf("dora: %w", err)
		}
	}
	if uraStr != "" {
		if ctx.UraDoraIndicators, err = mahjong.ParseTiles(uraStr); err != nil {
			return hand, ctx, fmt.Errorf("ura: %w", err)
		}
	}
	return hand, ctx, nil
}

func parseMelds(s string) ([]mahjong.Meld, error) {
	if s == "" {
		return nil, nil
	}
	var melds []mahjong.Meld
	for _, part := range strings.Split(s, ",") {
		kind, tileStr, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found {
			return nil, fmt.Errorf("meld %q: want type:tile, like pon:5z", part)
		}
		var mt mahjong.MeldType
		switch kind {
		case "chi":
			mt = mahjong.MeldChi
		case "pon":
			mt = mahjong.MeldPon
		case "kan", "minkan":
			mt = mahjong.MeldOpenKan
		case "ankan":
			mt = mahjong.MeldClosedKan
		default:
			return nil, fmt.Errorf("meld %q: unknown type %q", part, kind)
		}
		t, err := mahjong.ParseTile(tileStr)
		if err != nil {
			return nil, fmt.Errorf("meld %q: %w", part, err)
		}
		melds = append(melds, mahjong.Meld{Type: mt, Tile: t})
	}
	return melds, nil
}

func parseWind(s string) (int, error) {
	switch strings.ToLower(s) {
	case "east", "e":
		return mahjong.East, nil
	case "south", "s":
		return mahjong.South, nil
	case "west", "w":
		return mahjong.West, nil
	case "north", "n":
		return mahjong.North, nil
	}
	return 0, fmt.Errorf("unknown wind %q", s)
}

func printBreakdown(hand mahjong.Hand, ctx *mahjong.Context, b *mahjong.ScoreBreakdown) {
	heading := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgGreen, color.Bold)
	name := color.New(color.FgWhite)

	heading.Println("Hand")
	fmt.Printf("  %s", mahjong.FormatTiles(hand.Concealed))
	for _, m := range hand.Melds {
		fmt.Printf("  [%s]", m)
	}
	fmt.Printf("  win: %s (%s)\n\n", hand.WinningTile, hand.WinningTile.Name())

	heading.Println("Yaku")
	for _, yh := range b.Yaku {
		name.Printf("  %-24s", yh.Yaku)
		fmt.Printf("%d han\n", yh.Han)
	}
	fmt.Println()

	if b.Limit != "" {
		value.Printf("%s  ", strings.ToUpper(b.Limit))
	}
	if b.YakumanMultiple > 0 {
		fmt.Printf("%d han\n", b.Han)
	} else {
		fmt.Printf("%d han %d fu\n", b.Han, b.Fu)
	}

	heading.Println("\nPayment")
	if ctx.Method == mahjong.Ron {
		fmt.Printf("  discarder pays %d\n", b.DiscarderPays)
	} else if ctx.Dealer {
		fmt.Printf("  %d from everyone\n", b.NonDealerPays)
	} else {
		fmt.Printf("  %d from the dealer, %d from the others\n", b.DealerPays, b.NonDealerPays)
	}
	value.Printf("  total %d\n", b.Total)
}
