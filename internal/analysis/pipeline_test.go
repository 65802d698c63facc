package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/abhisek/markcurve/internal/marks"
	"github.com/abhisek/markcurve/internal/target"
)

// singleItemTable builds a one-item table (max 1) whose totals equal the
// given scores.
func singleItemTable(scores []float64) *marks.Table {
	t := &marks.Table{
		Items: []string{"q1"},
		Max:   map[string]float64{"q1": 1},
	}
	for i, s := range scores {
		t.Records = append(t.Records, marks.Record{
			Student: "s" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Scores:  []marks.ItemScore{{Item: "q1", Score: s}},
		})
	}
	return t
}

func bimodalTable() *marks.Table {
	scores := []float64{0.2, 0.2, 0.2, 0.2, 0.2, 0.9, 0.9, 0.9, 0.9, 0.9}
	return singleItemTable(scores)
}

func TestRunErrors(t *testing.T) {
	t.Run("nil table", func(t *testing.T) {
		_, err := Run(nil, DefaultConfig(), nil)
		var derr *DataError
		if !errors.As(err, &derr) {
			t.Fatalf("Run(nil) error = %v, want *DataError", err)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := Run(&marks.Table{Items: []string{"q1"}, Max: map[string]float64{"q1": 1}}, DefaultConfig(), nil)
		var derr *DataError
		if !errors.As(err, &derr) {
			t.Fatalf("Run(empty) error = %v, want *DataError", err)
		}
	})

	t.Run("bad config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TargetDist = "cauchy"
		_, err := Run(bimodalTable(), cfg, nil)
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("Run(bad config) error = %v, want *ConfigError", err)
		}
	})
}

// The 5x0.2 / 5x0.9 class: the low band is pulled up toward the target
// mean, the top band is near zero or pushed down, and the hollow middle
// flags bimodality.
func TestRunBimodalScenario(t *testing.T) {
	rep, err := Run(bimodalTable(), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !rep.Split.Bimodal {
		t.Error("bimodality flag not set for 0.2/0.9 split")
	}
	if rep.Split.Mid != 0 {
		t.Errorf("mid share = %g, want 0", rep.Split.Mid)
	}

	first := rep.Bands[0]
	last := rep.Bands[len(rep.Bands)-1]
	if first.Shift <= 0 {
		t.Errorf("lowest band shift = %g, want positive", first.Shift)
	}
	if last.Shift > 0.02 {
		t.Errorf("highest band shift = %g, want near zero or negative", last.Shift)
	}
}

// Equal original totals must always map to equal target scores.
func TestRunFairness(t *testing.T) {
	rep, err := Run(bimodalTable(), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	for i := range rep.Original {
		for j := range rep.Original {
			if rep.Original[i] == rep.Original[j] && rep.Mapped[i] != rep.Mapped[j] {
				t.Fatalf("students %d and %d tie at %g but map to %g and %g",
					i, j, rep.Original[i], rep.Mapped[i], rep.Mapped[j])
			}
		}
	}
}

// When the class already sits exactly on the target quantiles, transport
// has nothing to move.
func TestRunIdentityScenario(t *testing.T) {
	cfg := DefaultConfig()
	dist, err := target.Build(target.Spec{
		Family:   target.FamilyTruncNorm,
		PassRate: cfg.PassRateTarget,
		PassMark: cfg.PassThreshold,
		Sigma:    cfg.Sigma,
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	n := 40
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		scores[i] = dist.Quantile((float64(i) + 0.5) / float64(n))
	}

	rep, err := Run(singleItemTable(scores), cfg, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if math.Abs(rep.OverallShift) > 1e-9 {
		t.Errorf("overall shift = %g, want ~0", rep.OverallShift)
	}
	for i := range rep.Original {
		if math.Abs(rep.Mapped[i]-rep.Original[i]) > 1e-9 {
			t.Errorf("student %d moved from %g to %g, want unchanged", i, rep.Original[i], rep.Mapped[i])
		}
	}
}

func TestRunMappedMonotoneInOriginal(t *testing.T) {
	scores := []float64{0.15, 0.82, 0.47, 0.91, 0.33, 0.47, 0.05, 0.66}
	rep, err := Run(singleItemTable(scores), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	for i := range rep.Original {
		for j := range rep.Original {
			if rep.Original[i] < rep.Original[j] && rep.Mapped[i] > rep.Mapped[j] {
				t.Fatalf("monotonicity violated: %g→%g but %g→%g",
					rep.Original[i], rep.Mapped[i], rep.Original[j], rep.Mapped[j])
			}
		}
	}
}

func TestRunHardItemRecommendation(t *testing.T) {
	table := &marks.Table{
		Items: []string{"q1", "q2"},
		Max:   map[string]float64{"q1": 5, "q2": 5},
		Records: []marks.Record{
			{Student: "a", Scores: []marks.ItemScore{{Item: "q1", Score: 0}, {Item: "q2", Score: 1}}},
			{Student: "b", Scores: []marks.ItemScore{{Item: "q1", Score: 0}, {Item: "q2", Score: 2}}},
			{Student: "c", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 3}}},
			{Student: "d", Scores: []marks.ItemScore{{Item: "q1", Score: 0}, {Item: "q2", Score: 4}}},
		},
	}
	cfg := DefaultConfig()
	cfg.FacilityHard = 0.2

	rep, err := Run(table, cfg, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// q1 facility is 0.25/5 = 0.05, below the 0.2 hard threshold.
	if math.Abs(rep.Items[0].Facility-0.05) > 1e-12 {
		t.Fatalf("q1 facility = %g, want 0.05", rep.Items[0].Facility)
	}
	if !containsText(rep, "q1 too hard — split or add partial credit.") {
		t.Errorf("missing hard-item recommendation, got %v", recTexts(rep))
	}
}

func TestRunGiveawayRecommendation(t *testing.T) {
	table := &marks.Table{
		Items: []string{"q1", "q2"},
		Max:   map[string]float64{"q1": 1, "q2": 1},
		Records: []marks.Record{
			{Student: "a", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 0.1}}},
			{Student: "b", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 0.4}}},
			{Student: "c", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 0.7}}},
			{Student: "d", Scores: []marks.ItemScore{{Item: "q1", Score: 0.8}, {Item: "q2", Score: 1}}},
		},
	}
	rep, err := Run(table, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// q1: facility 0.95 (easy) with negative discrimination (poor).
	if !containsText(rep, "q1 does not discriminate well — review or remove.") {
		t.Errorf("missing poor-discriminator recommendation, got %v", recTexts(rep))
	}
	if !containsText(rep, "q1 is a low-value giveaway — reduce weight or replace.") {
		t.Errorf("missing giveaway recommendation, got %v", recTexts(rep))
	}
}

func TestRunDeterministic(t *testing.T) {
	table := bimodalTable()
	cfg := DefaultConfig()

	a, err := Run(table, cfg, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	b, err := Run(table, cfg, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if a.OverallShift != b.OverallShift {
		t.Errorf("overall shift differs: %v vs %v", a.OverallShift, b.OverallShift)
	}
	for i := range a.Mapped {
		if a.Mapped[i] != b.Mapped[i] {
			t.Errorf("mapped[%d] differs: %v vs %v", i, a.Mapped[i], b.Mapped[i])
		}
	}
	if len(a.Recommendations) != len(b.Recommendations) {
		t.Fatalf("recommendation counts differ: %d vs %d", len(a.Recommendations), len(b.Recommendations))
	}
	for i := range a.Recommendations {
		if a.Recommendations[i] != b.Recommendations[i] {
			t.Errorf("recommendation %d differs: %+v vs %+v", i, a.Recommendations[i], b.Recommendations[i])
		}
	}
}

func containsText(rep *Report, text string) bool {
	for _, r := range rep.Recommendations {
		if r.Text == text {
			return true
		}
	}
	return false
}

func recTexts(rep *Report) string {
	var texts []string
	for _, r := range rep.Recommendations {
		texts = append(texts, r.Text)
	}
	return strings.Join(texts, " | ")
}
