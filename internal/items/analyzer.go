// Package items computes per-item psychometrics: facility (a difficulty
// proxy) and discrimination (how well the item separates strong from weak
// students), plus threshold-based classification labels.
package items

import (
	"gonum.org/v1/gonum/stat"

	"github.com/abhisek/markcurve/internal/marks"
)

// Label classifies an item.
type Label string

const (
	LabelEasy              Label = "easy"
	LabelHard              Label = "hard"
	LabelPoorDiscriminator Label = "poor_discriminator"
	LabelNormal            Label = "normal"
)

// Config holds the classification thresholds.
type Config struct {
	// FacilityEasy and FacilityHard bound the normal difficulty range;
	// easy must sit above hard.
	FacilityEasy float64
	FacilityHard float64
	// DiscrimPoor is the discrimination floor below which an item is
	// labelled a poor discriminator.
	DiscrimPoor float64
	// ExcludeSelf correlates each item against rest-score totals (the
	// student total minus the item's own contribution) instead of the
	// full total.
	ExcludeSelf bool
}

// Stats is the analysis result for one item.
type Stats struct {
	Item     string
	Facility float64
	// Discrimination is the Pearson correlation between the item's raw
	// scores and the student totals. Meaningless when Undefined is set.
	Discrimination float64
	// Undefined marks items whose discrimination is not computable
	// (zero score variance on either side of the correlation).
	Undefined bool
	Labels    []Label
}

// HasLabel reports whether the stats carry the given label.
func (s *Stats) HasLabel(l Label) bool {
	for _, have := range s.Labels {
		if have == l {
			return true
		}
	}
	return false
}

// Analyze computes facility, discrimination and labels for every item in
// table order. Items with zero variance report an undefined
// discrimination rather than failing the run.
func Analyze(t *marks.Table, totals []marks.Total, cfg Config) []Stats {
	totalScores := make([]float64, len(totals))
	for i, tot := range totals {
		totalScores[i] = tot.Score
	}
	maxTotal := t.MaxTotal()

	out := make([]Stats, 0, len(t.Items))
	for _, item := range t.Items {
		scores := t.ItemScores(item)
		s := Stats{Item: item, Facility: stat.Mean(scores, nil) / t.Max[item]}

		against := totalScores
		if cfg.ExcludeSelf {
			against = restScores(scores, totalScores, t.Max[item], maxTotal)
		}
		if against == nil || !hasVariance(scores) || !hasVariance(against) {
			s.Undefined = true
		} else {
			s.Discrimination = stat.Correlation(scores, against, nil)
		}

		s.Labels = classify(&s, cfg)
		out = append(out, s)
	}
	return out
}

// restScores rebuilds totals with the item's contribution removed,
// re-normalized by the remaining maximum. Returns nil when the item is
// the whole assessment and no rest-score exists.
func restScores(item, totals []float64, itemMax, maxTotal float64) []float64 {
	restMax := maxTotal - itemMax
	if restMax <= 0 {
		return nil
	}
	rest := make([]float64, len(totals))
	for i := range totals {
		rest[i] = (totals[i]*maxTotal - item[i]) / restMax
	}
	return rest
}

func classify(s *Stats, cfg Config) []Label {
	var labels []Label
	if s.Facility > cfg.FacilityEasy {
		labels = append(labels, LabelEasy)
	}
	if s.Facility < cfg.FacilityHard {
		labels = append(labels, LabelHard)
	}
	if !s.Undefined && s.Discrimination < cfg.DiscrimPoor {
		labels = append(labels, LabelPoorDiscriminator)
	}
	if len(labels) == 0 {
		labels = append(labels, LabelNormal)
	}
	return labels
}

func hasVariance(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return true
		}
	}
	return false
}
