// Package target builds bounded parametric score distributions whose
// upper tail mass at the pass mark matches a desired pass rate. All
// distributions live on the normalized [0,1] score scale.
package target

import "fmt"

// Distribution is a target mark distribution on [0,1].
type Distribution interface {
	// Quantile returns the score at cumulative probability u in (0,1).
	Quantile(u float64) float64
	// CDF returns the cumulative probability at score x.
	CDF(x float64) float64
	// Prob returns the probability density at score x.
	Prob(x float64) float64
	// Params describes the solved parameters for reporting.
	Params() string
}

// Spec declares what to build. PassRate is the mass that must lie at or
// above PassMark after solving.
type Spec struct {
	Family   Family
	PassRate float64
	PassMark float64
	// Sigma is the truncated-normal spread, held fixed while the mean is
	// solved. Ignored by the beta family.
	Sigma float64
	// Concentration is the beta family's fixed a+b while the mean is
	// solved. Ignored by the truncated-normal family.
	Concentration float64
}

// Defaults for the solver inputs, on the normalized scale.
const (
	DefaultPassMark = 0.5
	// DefaultSigma is one sixth of the score range, so an untruncated
	// target would span roughly the whole scale at three sigma.
	DefaultSigma = 1.0 / 6.0
	// DefaultConcentration keeps the solved beta unimodal for mid-range
	// pass rates.
	DefaultConcentration = 6.0
)

// Build solves the requested family's parameters and returns the
// distribution. The pass rate and pass mark must lie strictly inside
// (0,1); a solve that cannot bracket or converge is reported as an error.
func Build(spec Spec) (Distribution, error) {
	if spec.PassRate <= 0 || spec.PassRate >= 1 {
		return nil, fmt.Errorf("pass rate target %g outside (0,1)", spec.PassRate)
	}
	if spec.PassMark <= 0 || spec.PassMark >= 1 {
		return nil, fmt.Errorf("pass mark %g outside (0,1)", spec.PassMark)
	}
	switch spec.Family {
	case FamilyTruncNorm:
		return buildTruncNorm(spec)
	case FamilyBeta:
		return buildBeta(spec)
	default:
		return nil, fmt.Errorf("unknown target distribution family %q", spec.Family)
	}
}
