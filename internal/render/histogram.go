package render

import (
	"fmt"
	"strings"
)

// Histogram renders normalized scores as horizontal unicode bars, one row
// per bin over [0,1]. Output depends only on the inputs.
func Histogram(values []float64, bins, width int) string {
	if bins < 1 {
		bins = 10
	}
	if width < 10 {
		width = 10
	}

	counts := make([]int, bins)
	for _, v := range values {
		b := int(v * float64(bins))
		if b >= bins {
			b = bins - 1 // score 1.0 lands in the top bin
		}
		if b < 0 {
			b = 0
		}
		counts[b]++
	}
	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	var sb strings.Builder
	for b := 0; b < bins; b++ {
		lo := float64(b) / float64(bins)
		hi := float64(b+1) / float64(bins)
		barLen := 0
		if peak > 0 {
			barLen = counts[b] * width / peak
		}
		if counts[b] > 0 && barLen == 0 {
			barLen = 1
		}
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%.2f-%.2f ", lo, hi)))
		sb.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		if counts[b] > 0 {
			sb.WriteString(dimStyle.Render(fmt.Sprintf(" %d", counts[b])))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
