package mahjong

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Scorer evaluates winning hands under one ruleset. The zero value is not
// usable; construct with NewScorer.
type Scorer struct {
	Rules Ruleset
	log   *logrus.Logger
}

func NewScorer(rules Ruleset) *Scorer {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &Scorer{Rules: rules, log: logger}
}

// SetLogger replaces the scorer's logger. Useful for surfacing the
// decomposition search at debug level.
func (s *Scorer) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		s.log = logger
	}
}

// ScoreBreakdown is the full account of one scored win: the yaku list,
// the han/fu arithmetic behind it and the resulting table payments.
// Fu is 0 when the hand scored as a yakuman; a kazoe yakuman keeps the
// fu its han were counted against.
type ScoreBreakdown struct {
	Yaku            []YakuHan
	Han             int
	Fu              int
	YakumanMultiple int
	Limit           string
	BasePoints      int

	// DiscarderPays is set on ron; DealerPays and NonDealerPays on tsumo
	// (a dealer tsumo fills only NonDealerPays). All include honba.
	DiscarderPays int
	DealerPays    int
	NonDealerPays int

	// Total is what the winner collects, riichi sticks included.
	Total int
}

// Score validates the hand and context, enumerates every reading of the
// hand, and returns the breakdown of the highest-scoring one.
func (s *Scorer) Score(h Hand, ctx Context) (*ScoreBreakdown, error) {
	if err := h.validateShape(); err != nil {
		return nil, err
	}
	if err := ctx.validate(h); err != nil {
		return nil, err
	}

	decomps, err := Decompose(h)
	if err != nil {
		return nil, err
	}
	s.log.WithField("decompositions", len(decomps)).Debug("hand decomposed")

	closed := h.IsConcealedHand()
	best := (*ScoreBreakdown)(nil)
	for i := range decomps {
		d := &decomps[i]
		result := s.Evaluate(d, h, &ctx)
		if !result.HasYaku() && result.YakumanMultiple == 0 {
			continue
		}
		cand := &ScoreBreakdown{
			Yaku:            result.Yaku,
			Han:             result.Han,
			YakumanMultiple: result.YakumanMultiple,
		}
		// yakuman bypass fu arithmetic entirely, so Fu stays 0
		if result.YakumanMultiple == 0 {
			pinfu := false
			for _, yh := range result.Yaku {
				if yh.Yaku == YakuPinfu {
					pinfu = true
				}
			}
			cand.Fu = computeFu(d, &ctx, closed, pinfu)
		}
		if betterBreakdown(cand, best) {
			best = cand
		}
	}
	if best == nil {
		return nil, noYaku()
	}

	s.applyLimit(best)
	s.applyPayments(best, &ctx)
	s.log.WithFields(logrus.Fields{
		"han":   best.Han,
		"fu":    best.Fu,
		"base":  best.BasePoints,
		"total": best.Total,
	}).Debug("scored")
	return best, nil
}

// Score is the package-level convenience entry point using the default
// ruleset.
func Score(h Hand, ctx Context) (*ScoreBreakdown, error) {
	return NewScorer(DefaultRuleset()).Score(h, ctx)
}

// betterBreakdown orders candidates by yakuman multiple, then han, then
// fu. Comparing the same pair always yields the same winner.
func betterBreakdown(a, b *ScoreBreakdown) bool {
	if b == nil {
		return true
	}
	if a.YakumanMultiple != b.YakumanMultiple {
		return a.YakumanMultiple > b.YakumanMultiple
	}
	if a.Han != b.Han {
		return a.Han > b.Han
	}
	return a.Fu > b.Fu
}

// applyLimit fills BasePoints and the limit name from han and fu.
func (s *Scorer) applyLimit(b *ScoreBreakdown) {
	if b.YakumanMultiple > 0 {
		b.BasePoints = 8000 * b.YakumanMultiple
		b.Limit = yakumanName(b.YakumanMultiple)
		return
	}
	switch {
	case b.Han >= 13:
		b.BasePoints = 8000
		b.YakumanMultiple = 1
		b.Limit = "kazoe yakuman"
	case b.Han >= 11:
		b.BasePoints = 6000
		b.Limit = "sanbaiman"
	case b.Han >= 8:
		b.BasePoints = 4000
		b.Limit = "baiman"
	case b.Han >= 6:
		b.BasePoints = 3000
		b.Limit = "haneman"
	case b.Han == 5:
		b.BasePoints = 2000
		b.Limit = "mangan"
	default:
		raw := b.Fu << uint(2+b.Han)
		if raw > 2000 {
			b.BasePoints = 2000
			b.Limit = "mangan"
			return
		}
		if s.Rules.KiriageMangan && raw == 1920 {
			b.BasePoints = 2000
			b.Limit = "mangan"
			return
		}
		b.BasePoints = raw
	}
}

func yakumanName(multiple int) string {
	switch multiple {
	case 1:
		return "yakuman"
	case 2:
		return "double yakuman"
	default:
		return fmt.Sprintf("%dx yakuman", multiple)
	}
}

// applyPayments turns base points into table payments, with honba and
// riichi stick bonuses.
func (s *Scorer) applyPayments(b *ScoreBreakdown, ctx *Context) {
	sticks := 1000 * ctx.RiichiSticks

	if ctx.Method == Ron {
		mult := 4
		if ctx.Dealer {
			mult = 6
		}
		b.DiscarderPays = roundUp100(b.BasePoints*mult) + 300*ctx.Honba
		b.Total = b.DiscarderPays + sticks
		return
	}

	honba := 100 * ctx.Honba
	if ctx.Dealer {
		b.NonDealerPays = roundUp100(2*b.BasePoints) + honba
		b.Total = 3*b.NonDealerPays + sticks
		return
	}
	b.DealerPays = roundUp100(2*b.BasePoints) + honba
	b.NonDealerPays = roundUp100(b.BasePoints) + honba
	b.Total = b.DealerPays + 2*b.NonDealerPays + sticks
}

func roundUp100(points int) int {
	return (points + 99) / 100 * 100
}
