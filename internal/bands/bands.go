// Package bands localizes where the transport map moves scores: students
// are grouped into contiguous quantile bands by original score and each
// band reports its mean shift toward the target.
package bands

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoStudents indicates there are no scores to band.
var ErrNoStudents = errors.New("no student scores to band")

// Band is one quantile band, lowest scorers first.
type Band struct {
	// Index is 1-based, band 1 holding the lowest original scores.
	Index int
	Size  int
	// MeanOriginal and MeanMapped are the band members' mean scores
	// before and after the transport map.
	MeanOriginal float64
	MeanMapped   float64
	// Shift is the band mean of (mapped - original).
	Shift float64
}

// Report is the banded shift summary.
type Report struct {
	Bands []Band
	// OverallShift is the mean of (mapped - original) across all
	// students. It equals the size-weighted mean of the band shifts.
	OverallShift float64
}

// Build groups the (original, mapped) pairs into k contiguous equal-count
// bands by original score, the last band absorbing any remainder. When
// there are fewer students than bands, the band count drops to the
// student count rather than failing the run.
func Build(orig, mapped []float64, k int) (*Report, error) {
	n := len(orig)
	if n == 0 {
		return nil, ErrNoStudents
	}
	if len(mapped) != n {
		return nil, fmt.Errorf("got %d mapped scores for %d originals", len(mapped), n)
	}
	if k < 1 {
		return nil, fmt.Errorf("band count %d must be positive", k)
	}
	if k > n {
		k = n
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return orig[order[a]] < orig[order[b]]
	})

	size := n / k
	report := &Report{Bands: make([]Band, 0, k)}
	total := 0.0
	for b := 0; b < k; b++ {
		lo := b * size
		hi := lo + size
		if b == k-1 {
			hi = n
		}
		var sumO, sumM float64
		for _, idx := range order[lo:hi] {
			sumO += orig[idx]
			sumM += mapped[idx]
		}
		members := float64(hi - lo)
		report.Bands = append(report.Bands, Band{
			Index:        b + 1,
			Size:         hi - lo,
			MeanOriginal: sumO / members,
			MeanMapped:   sumM / members,
			Shift:        (sumM - sumO) / members,
		})
		total += sumM - sumO
	}
	report.OverallShift = total / float64(n)
	return report, nil
}
