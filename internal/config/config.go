// Package config holds the tunable knobs of the analytics engines and
// validates them once, before any computation runs. Invalid configuration is
// fatal; the engines never renormalize or silently repair caller mistakes.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BlendWeights are the power index component weights. They must sum to 1.0.
type BlendWeights struct {
	WinPct float64 `koanf:"win_pct"`
	Elo    float64 `koanf:"elo"`
	Margin float64 `koanf:"margin"`
}

// Config is the full engine configuration.
type Config struct {
	// InitialRating is the Elo rating assigned to an owner with no prior
	// games in the replayed scope.
	InitialRating float64 `koanf:"initial_rating"`

	// KFactor is the maximum rating movement per game.
	KFactor float64 `koanf:"k_factor"`

	// PowerWeights blend the normalized win%, Elo, and margin components.
	PowerWeights BlendWeights `koanf:"power_weights"`

	// RevengeMargin is the minimum flip margin for a revenge win.
	RevengeMargin float64 `koanf:"revenge_margin"`

	// HighScoreThreshold feeds the "scored at least N" streak condition.
	HighScoreThreshold float64 `koanf:"high_score_threshold"`

	// BlowoutMargin feeds the "won by at least N" streak condition.
	BlowoutMargin float64 `koanf:"blowout_margin"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		InitialRating:      1000.0,
		KFactor:            32.0,
		PowerWeights:       BlendWeights{WinPct: 0.40, Elo: 0.35, Margin: 0.25},
		RevengeMargin:      15.0,
		HighScoreThreshold: 100.0,
		BlowoutMargin:      30.0,
	}
}

// Validate checks structural constraints. All failures wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.KFactor <= 0 {
		return fmt.Errorf("%w: k_factor must be positive, got %g", ErrInvalidConfig, c.KFactor)
	}
	w := c.PowerWeights
	if w.WinPct < 0 || w.Elo < 0 || w.Margin < 0 {
		return fmt.Errorf("%w: power weights must be non-negative (%g/%g/%g)",
			ErrInvalidConfig, w.WinPct, w.Elo, w.Margin)
	}
	if sum := w.WinPct + w.Elo + w.Margin; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%w: power weights must sum to 1.0, got %g", ErrInvalidConfig, sum)
	}
	if c.RevengeMargin < 0 {
		return fmt.Errorf("%w: revenge_margin must be non-negative, got %g", ErrInvalidConfig, c.RevengeMargin)
	}
	return nil
}
