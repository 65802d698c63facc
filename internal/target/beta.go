package target

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Beta is a beta target distribution, naturally bounded to [0,1].
type Beta struct {
	dist distuv.Beta
}

// buildBeta holds the concentration (alpha+beta) fixed and solves the
// shape split so that spec.PassRate of the mass lies at or above
// spec.PassMark. The method-of-moments view: alpha/concentration is the
// distribution mean, so the solve slides the mean until the tail
// constraint holds exactly.
func buildBeta(spec Spec) (Distribution, error) {
	nu := spec.Concentration
	if nu <= 0 {
		nu = DefaultConcentration
	}

	tail := func(alpha float64) float64 {
		d := distuv.Beta{Alpha: alpha, Beta: nu - alpha}
		return 1 - d.CDF(spec.PassMark) - spec.PassRate
	}
	// Tail mass is strictly increasing in alpha for fixed concentration.
	const edge = 0.05
	alpha, err := bisect(tail, edge, nu-edge)
	if err != nil {
		return nil, fmt.Errorf("solve beta shape: %w", err)
	}
	return &Beta{dist: distuv.Beta{Alpha: alpha, Beta: nu - alpha}}, nil
}

// CDF returns the cumulative probability at x.
func (b *Beta) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return b.dist.CDF(x)
}

// Quantile returns the score at cumulative probability u.
func (b *Beta) Quantile(u float64) float64 {
	return b.dist.Quantile(u)
}

// Prob returns the density at x.
func (b *Beta) Prob(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	return b.dist.Prob(x)
}

// Alpha returns the solved first shape parameter.
func (b *Beta) Alpha() float64 { return b.dist.Alpha }

// ShapeBeta returns the solved second shape parameter.
func (b *Beta) ShapeBeta() float64 { return b.dist.Beta }

func (b *Beta) Params() string {
	return fmt.Sprintf("beta(a=%.4f, b=%.4f)", b.dist.Alpha, b.dist.Beta)
}
