package analysis

import (
	"github.com/abhisek/markcurve/internal/target"
)

// Config holds every tuning knob for one analysis run. It is validated
// once and passed explicitly into each stage; no component reads global
// state.
type Config struct {
	// PassRateTarget is the mass the target distribution must place at or
	// above PassThreshold.
	PassRateTarget float64 `json:"pass_rate_target"`
	// TargetDist selects the target family, "truncnorm" or "beta".
	TargetDist string `json:"target_dist"`

	// FacilityEasy / FacilityHard bound the normal item difficulty range.
	FacilityEasy float64 `json:"facility_easy"`
	FacilityHard float64 `json:"facility_hard"`
	// DiscrimPoor is the poor-discriminator threshold.
	DiscrimPoor float64 `json:"discrim_poor"`
	// DiscriminationExcludesItem correlates each item against rest-score
	// totals instead of totals that include the item itself.
	DiscriminationExcludesItem bool `json:"discrim_excludes_item"`

	// BandCount is the number of quantile bands in the shift report.
	BandCount int `json:"band_count"`

	// PassThreshold / HighThreshold partition totals into fail/mid/high.
	PassThreshold float64 `json:"pass_threshold"`
	HighThreshold float64 `json:"high_threshold"`
	// MidFraction and MinTailShare drive the bimodality rule, see
	// bands.SplitConfig.
	MidFraction  float64 `json:"mid_fraction"`
	MinTailShare float64 `json:"min_tail_share"`

	// Sigma is the truncnorm spread; Concentration the beta a+b.
	Sigma         float64 `json:"sigma"`
	Concentration float64 `json:"concentration"`
}

// DefaultConfig returns the standard analysis settings.
func DefaultConfig() Config {
	return Config{
		PassRateTarget:             0.80,
		TargetDist:                 string(target.FamilyTruncNorm),
		FacilityEasy:               0.85,
		FacilityHard:               0.35,
		DiscrimPoor:                0.15,
		DiscriminationExcludesItem: false,
		BandCount:                  5,
		PassThreshold:              0.5,
		HighThreshold:              0.8,
		MidFraction:                0.5,
		MinTailShare:               0.10,
		Sigma:                      target.DefaultSigma,
		Concentration:              target.DefaultConcentration,
	}
}

// Validate checks ranges and threshold orderings. It returns a
// *ConfigError naming the offending option.
func (c *Config) Validate() error {
	if c.PassRateTarget <= 0 || c.PassRateTarget >= 1 {
		return configErr("pass_rate_target", "%g outside (0,1)", c.PassRateTarget)
	}
	if _, err := target.ParseFamily(c.TargetDist); err != nil {
		return &ConfigError{Option: "target_dist", Err: err}
	}
	if c.FacilityEasy < 0 || c.FacilityEasy > 1 {
		return configErr("facility_easy", "%g outside [0,1]", c.FacilityEasy)
	}
	if c.FacilityHard < 0 || c.FacilityHard > 1 {
		return configErr("facility_hard", "%g outside [0,1]", c.FacilityHard)
	}
	if c.FacilityEasy <= c.FacilityHard {
		return configErr("facility_easy", "easy threshold %g must exceed hard threshold %g", c.FacilityEasy, c.FacilityHard)
	}
	if c.DiscrimPoor < -1 || c.DiscrimPoor > 1 {
		return configErr("discrim_poor", "%g outside [-1,1]", c.DiscrimPoor)
	}
	if c.BandCount < 1 {
		return configErr("band_count", "%d must be positive", c.BandCount)
	}
	if c.PassThreshold <= 0 || c.PassThreshold >= 1 {
		return configErr("pass_threshold", "%g outside (0,1)", c.PassThreshold)
	}
	if c.HighThreshold < 0 || c.HighThreshold > 1 {
		return configErr("high_threshold", "%g outside [0,1]", c.HighThreshold)
	}
	if c.PassThreshold >= c.HighThreshold {
		return configErr("pass_threshold", "pass threshold %g must be below high threshold %g", c.PassThreshold, c.HighThreshold)
	}
	if c.MidFraction < 0 {
		return configErr("mid_fraction", "%g must be non-negative", c.MidFraction)
	}
	if c.MinTailShare < 0 || c.MinTailShare > 0.5 {
		return configErr("min_tail_share", "%g outside [0,0.5]", c.MinTailShare)
	}
	if c.Sigma <= 0 {
		return configErr("sigma", "%g must be positive", c.Sigma)
	}
	if c.Concentration <= 0.1 {
		return configErr("concentration", "%g must exceed 0.1", c.Concentration)
	}
	return nil
}
