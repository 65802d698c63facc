package target

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// TruncNorm is a normal distribution truncated to [0,1].
type TruncNorm struct {
	norm distuv.Normal
	// CDF of the untruncated normal at the truncation bounds.
	lo, hi float64
}

// buildTruncNorm holds the spread fixed and solves the mean so that the
// truncated distribution places spec.PassRate of its mass at or above
// spec.PassMark.
func buildTruncNorm(spec Spec) (Distribution, error) {
	sigma := spec.Sigma
	if sigma <= 0 {
		sigma = DefaultSigma
	}

	tail := func(mu float64) float64 {
		tn := newTruncNorm(mu, sigma)
		return 1 - tn.CDF(spec.PassMark) - spec.PassRate
	}
	// Tail mass is strictly increasing in mu; one score-range either side
	// of the pass mark brackets every reachable pass rate.
	mu, err := bisect(tail, spec.PassMark-1, spec.PassMark+1)
	if err != nil {
		return nil, fmt.Errorf("solve truncnorm mean: %w", err)
	}
	tn := newTruncNorm(mu, sigma)
	return &tn, nil
}

func newTruncNorm(mu, sigma float64) TruncNorm {
	n := distuv.Normal{Mu: mu, Sigma: sigma}
	return TruncNorm{norm: n, lo: n.CDF(0), hi: n.CDF(1)}
}

func (t *TruncNorm) mass() float64 { return t.hi - t.lo }

// CDF returns the truncated cumulative probability at x.
func (t *TruncNorm) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return (t.norm.CDF(x) - t.lo) / t.mass()
}

// Quantile returns the score at cumulative probability u, clamped to the
// [0,1] support.
func (t *TruncNorm) Quantile(u float64) float64 {
	x := t.norm.Quantile(t.lo + u*t.mass())
	return math.Min(1, math.Max(0, x))
}

// Prob returns the truncated density at x.
func (t *TruncNorm) Prob(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	return t.norm.Prob(x) / t.mass()
}

// Mu returns the solved (untruncated) mean.
func (t *TruncNorm) Mu() float64 { return t.norm.Mu }

// Sigma returns the fixed spread.
func (t *TruncNorm) Sigma() float64 { return t.norm.Sigma }

func (t *TruncNorm) Params() string {
	return fmt.Sprintf("truncnorm(mu=%.4f, sigma=%.4f)", t.norm.Mu, t.norm.Sigma)
}
