package config

import (
	"fmt"
	"strings"
)

// FilterConfig controls the Framework Filter (C2): BlockList removes edges
// whose target matches a pattern, AllowList re-admits edges that would
// otherwise be blocked (§4.2's allow-before-block precedence).
type FilterConfig struct {
	BlockList []string `yaml:"BlockList"`
	AllowList []string `yaml:"AllowList"`
}

// DefaultFilterConfig returns the documented default: block the BCL and the
// Microsoft.* namespace, allow nothing extra (§6).
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		BlockList: []string{"Microsoft.*", "System.*"},
		AllowList: []string{},
	}
}

// ScoringWeights are the four extraction-score combination weights (§4.6).
// Each must lie in [0,1] and the four must sum to 1 within ±0.01.
type ScoringWeights struct {
	Coupling         float64 `yaml:"Coupling"`
	Complexity       float64 `yaml:"Complexity"`
	TechDebt         float64 `yaml:"TechDebt"`
	ExternalExposure float64 `yaml:"ExternalExposure"`
}

// DefaultScoringWeights returns the documented default combination weights.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Coupling:         0.40,
		Complexity:       0.30,
		TechDebt:         0.20,
		ExternalExposure: 0.10,
	}
}

const weightSumTolerance = 0.01

// Sum returns the sum of the four weights.
func (w ScoringWeights) Sum() float64 {
	return w.Coupling + w.Complexity + w.TechDebt + w.ExternalExposure
}

// Validate checks each weight lies in [0,1] and the sum is within ±0.01 of
// 1.0, per §6. Returns ErrInvalidWeights on violation.
func (w ScoringWeights) Validate() error {
	for _, v := range []float64{w.Coupling, w.Complexity, w.TechDebt, w.ExternalExposure} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: each weight must be in [0,1], got %v", ErrInvalidWeights, v)
		}
	}
	sum := w.Sum()
	if sum < 1-weightSumTolerance || sum > 1+weightSumTolerance {
		return fmt.Errorf("%w: sum %.4f not within ±%.2f of 1.0", ErrInvalidWeights, sum, weightSumTolerance)
	}
	return nil
}

// Validate checks every pattern is non-empty, per §7's "pattern list
// contains a null" configuration error.
func (f FilterConfig) Validate() error {
	for _, p := range f.BlockList {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: BlockList", ErrNilPattern)
		}
	}
	for _, p := range f.AllowList {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: AllowList", ErrNilPattern)
		}
	}
	return nil
}

// Config is the full on-disk configuration surface (§6): framework filters
// and scoring weights. The zero value is not ready for use — call
// Default() or Load to obtain a populated Config.
type Config struct {
	FrameworkFilters FilterConfig   `yaml:"FrameworkFilters"`
	ScoringWeights   ScoringWeights `yaml:"ScoringWeights"`
}

// Default returns a Config populated with the documented defaults for both
// sections.
func Default() Config {
	return Config{
		FrameworkFilters: DefaultFilterConfig(),
		ScoringWeights:   DefaultScoringWeights(),
	}
}

// Validate runs both sections' validation and returns the first failure.
func (c Config) Validate() error {
	if err := c.FrameworkFilters.Validate(); err != nil {
		return err
	}
	if err := c.ScoringWeights.Validate(); err != nil {
		return err
	}
	return nil
}
