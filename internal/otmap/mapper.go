// Package otmap computes the one-dimensional optimal-transport coupling
// between an empirical set of scores and a target distribution. In one
// dimension the minimal-cost coupling under any convex cost is the
// monotone rearrangement, so mapping rank i of n to the target quantile
// at (i-0.5)/n is exact, not an approximation.
package otmap

import (
	"errors"
	"sort"
)

// ErrNoStudents indicates there are no scores to map.
var ErrNoStudents = errors.New("no student scores to map")

// Map assigns each score the target-quantile value of its ascending rank,
// using the continuity-corrected probability (i - 0.5)/n for 1-indexed
// rank i. Scores that tie receive the mean of the values their ranks
// would individually get, so equal marks always map to equal marks.
// The result is in input order and non-decreasing in the original score.
func Map(scores []float64, quantile func(float64) float64) ([]float64, error) {
	n := len(scores)
	if n == 0 {
		return nil, ErrNoStudents
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	byRank := make([]float64, n)
	for rank := 0; rank < n; rank++ {
		byRank[rank] = quantile((float64(rank) + 0.5) / float64(n))
	}

	mapped := make([]float64, n)
	for lo := 0; lo < n; {
		hi := lo + 1
		for hi < n && scores[order[hi]] == scores[order[lo]] {
			hi++
		}
		sum := 0.0
		for r := lo; r < hi; r++ {
			sum += byRank[r]
		}
		mean := sum / float64(hi-lo)
		for r := lo; r < hi; r++ {
			mapped[order[r]] = mean
		}
		lo = hi
	}
	return mapped, nil
}
