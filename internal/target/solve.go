package target

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoConvergence indicates the parameter solve exhausted its iteration
// budget without reaching tolerance.
var ErrNoConvergence = errors.New("parameter solve did not converge")

const (
	solveMaxIter = 200
	solveTol     = 1e-12
)

// bisect finds a root of f in [lo, hi] by bisection. The bracket must
// straddle a sign change.
func bisect(f func(float64) float64, lo, hi float64) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return 0, fmt.Errorf("no sign change on bracket [%g, %g]", lo, hi)
	}
	for i := 0; i < solveMaxIter; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)
		if fmid == 0 || hi-lo < solveTol {
			return mid, nil
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	if hi-lo < 1e-9 {
		return lo + (hi-lo)/2, nil
	}
	return 0, ErrNoConvergence
}
