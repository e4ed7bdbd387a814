package mahjong

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ruleset holds the table-rule policies the engine does not hardcode.
// Zero value is NOT usable; start from DefaultRuleset.
type Ruleset struct {
	// KiriageMangan rounds 4 han 30 fu and 3 han 60 fu up to mangan.
	KiriageMangan bool `yaml:"kiriage_mangan"`
	// OpenTanyao (kuitan) allows tanyao on an open hand.
	OpenTanyao bool `yaml:"open_tanyao"`
	// DoubleYakuman pays the premium forms (suuankou tanki, juusanmen
	// kokushi, junsei chuuren) as two yakuman instead of one.
	DoubleYakuman bool `yaml:"double_yakuman"`
	// SumYakuman adds the multiples of distinct simultaneous yakuman;
	// when false only the largest counts.
	SumYakuman bool `yaml:"sum_yakuman"`
	// RenhouYakuman treats renhou as a yakuman; when false the flag is
	// ignored entirely.
	RenhouYakuman bool `yaml:"renhou_yakuman"`
}

// DefaultRuleset mirrors common Tenhou-style rules.
func DefaultRuleset() Ruleset {
	return Ruleset{
		KiriageMangan: false,
		OpenTanyao:    true,
		DoubleYakuman: true,
		SumYakuman:    true,
		RenhouYakuman: true,
	}
}

// LoadRuleset reads a YAML rules file over the defaults, so a file only
// needs the knobs it changes.
func LoadRuleset(path string) (Ruleset, error) {
	rules := DefaultRuleset()
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return rules, nil
}
