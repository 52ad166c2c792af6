package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Tier selects one of the fixed difficulty profiles.
type Tier int

const (
	TierEasy   Tier = 1
	TierNormal Tier = 2
	TierHard   Tier = 3
)

// Tiers returns all tiers in selection order.
func Tiers() []Tier {
	return []Tier{TierEasy, TierNormal, TierHard}
}

// String returns the lowercase tier name used in YAML and on the command line.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierNormal:
		return "normal"
	case TierHard:
		return "hard"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	return t >= TierEasy && t <= TierHard
}

// ParseTier converts a name ("easy", "normal", "hard") or digit ("1".."3") to a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return TierEasy, nil
	case "normal", "2", "":
		return TierNormal, nil
	case "hard", "3":
		return TierHard, nil
	default:
		return TierNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Profile is the immutable tuning for one difficulty tier.
type Profile struct {
	Gap               float64       `yaml:"gap"`
	Spacing           float64       `yaml:"spacing"`
	BaseSpeed         float64       `yaml:"base_speed"`
	SecondsPerSpeedup time.Duration `yaml:"seconds_per_speedup"`
	SpeedupDelta      float64       `yaml:"speedup_delta"`
}

// Validate reports profile values that would break the pipeline.
func (p Profile) Validate() error {
	var errs []error
	if p.Gap <= 0 {
		errs = append(errs, errors.New("gap must be positive"))
	}
	if p.Spacing <= 0 {
		errs = append(errs, errors.New("spacing must be positive"))
	}
	if p.BaseSpeed <= 0 {
		errs = append(errs, errors.New("base_speed must be positive"))
	}
	if p.SecondsPerSpeedup <= 0 {
		errs = append(errs, errors.New("seconds_per_speedup must be positive"))
	}
	if p.SpeedupDelta < 0 {
		errs = append(errs, errors.New("speedup_delta must not be negative"))
	}
	return errors.Join(errs...)
}

// Profile returns the profile for the given tier.
// Unknown tiers get the normal profile.
func (c FlappyConfig) Profile(t Tier) Profile {
	switch t {
	case TierEasy:
		return c.Tiers.Easy
	case TierHard:
		return c.Tiers.Hard
	default:
		return c.Tiers.Normal
	}
}

// EasyProfile, NormalProfile and HardProfile are the built-in tier values.
func EasyProfile() Profile {
	return Profile{Gap: 190, Spacing: 320, BaseSpeed: 2.2, SecondsPerSpeedup: 12 * time.Second, SpeedupDelta: 0.15}
}

func NormalProfile() Profile {
	return Profile{Gap: 160, Spacing: 280, BaseSpeed: 2.5, SecondsPerSpeedup: 10 * time.Second, SpeedupDelta: 0.2}
}

func HardProfile() Profile {
	return Profile{Gap: 140, Spacing: 260, BaseSpeed: 3.2, SecondsPerSpeedup: 8 * time.Second, SpeedupDelta: 0.25}
}
