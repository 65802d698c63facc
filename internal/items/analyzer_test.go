package items

import (
	"math"
	"testing"

	"github.com/abhisek/markcurve/internal/marks"
)

func defaultItemConfig() Config {
	return Config{
		FacilityEasy: 0.85,
		FacilityHard: 0.35,
		DiscrimPoor:  0.15,
	}
}

func singleItemTable(scores []float64, max float64) (*marks.Table, []marks.Total) {
	t := &marks.Table{
		Items: []string{"q1"},
		Max:   map[string]float64{"q1": max},
	}
	for i, s := range scores {
		t.Records = append(t.Records, marks.Record{
			Student: string(rune('a' + i)),
			Scores:  []marks.ItemScore{{Item: "q1", Score: s}},
		})
	}
	return t, t.Totals()
}

func TestFacility(t *testing.T) {
	table, totals := singleItemTable([]float64{2, 4, 6, 8}, 10)
	stats := Analyze(table, totals, defaultItemConfig())

	if math.Abs(stats[0].Facility-0.5) > 1e-12 {
		t.Errorf("facility = %g, want 0.5", stats[0].Facility)
	}
}

func TestDiscriminationPerfectCorrelation(t *testing.T) {
	// Single-item table: item scores and totals are the same ranking.
	table, totals := singleItemTable([]float64{2, 4, 6, 8}, 10)
	stats := Analyze(table, totals, defaultItemConfig())

	if stats[0].Undefined {
		t.Fatal("discrimination undefined, want defined")
	}
	if math.Abs(stats[0].Discrimination-1) > 1e-9 {
		t.Errorf("discrimination = %g, want 1", stats[0].Discrimination)
	}
}

func TestDiscriminationRange(t *testing.T) {
	table := &marks.Table{
		Items: []string{"q1", "q2", "q3"},
		Max:   map[string]float64{"q1": 1, "q2": 1, "q3": 1},
		Records: []marks.Record{
			{Student: "a", Scores: []marks.ItemScore{{Item: "q1", Score: 0}, {Item: "q2", Score: 1}, {Item: "q3", Score: 0.2}}},
			{Student: "b", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 0}, {Item: "q3", Score: 0.8}}},
			{Student: "c", Scores: []marks.ItemScore{{Item: "q1", Score: 0.5}, {Item: "q2", Score: 0.5}, {Item: "q3", Score: 0.5}}},
			{Student: "d", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 1}, {Item: "q3", Score: 0.1}}},
		},
	}
	stats := Analyze(table, table.Totals(), defaultItemConfig())
	for _, s := range stats {
		if s.Facility < 0 || s.Facility > 1 {
			t.Errorf("%s facility %g outside [0,1]", s.Item, s.Facility)
		}
		if s.Undefined {
			continue
		}
		if math.IsNaN(s.Discrimination) {
			t.Errorf("%s discrimination is NaN without Undefined flag", s.Item)
		}
		if s.Discrimination < -1-1e-9 || s.Discrimination > 1+1e-9 {
			t.Errorf("%s discrimination %g outside [-1,1]", s.Item, s.Discrimination)
		}
	}
}

func TestZeroVarianceItemUndefined(t *testing.T) {
	table := &marks.Table{
		Items: []string{"q1", "q2"},
		Max:   map[string]float64{"q1": 1, "q2": 1},
		Records: []marks.Record{
			{Student: "a", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 0.1}}},
			{Student: "b", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 0.9}}},
		},
	}
	stats := Analyze(table, table.Totals(), defaultItemConfig())

	if !stats[0].Undefined {
		t.Error("constant item q1 should have undefined discrimination")
	}
	if stats[0].HasLabel(LabelPoorDiscriminator) {
		t.Error("undefined discrimination must not attach poor_discriminator")
	}
	if stats[1].Undefined {
		t.Error("varying item q2 should have defined discrimination")
	}
}

func TestClassificationLabels(t *testing.T) {
	tests := []struct {
		name   string
		stats  Stats
		labels []Label
	}{
		{"easy", Stats{Facility: 0.9, Discrimination: 0.5}, []Label{LabelEasy}},
		{"hard", Stats{Facility: 0.1, Discrimination: 0.5}, []Label{LabelHard}},
		{"poor", Stats{Facility: 0.5, Discrimination: 0.05}, []Label{LabelPoorDiscriminator}},
		{"easy and poor", Stats{Facility: 0.95, Discrimination: -0.2}, []Label{LabelEasy, LabelPoorDiscriminator}},
		{"normal", Stats{Facility: 0.5, Discrimination: 0.6}, []Label{LabelNormal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(&tt.stats, defaultItemConfig())
			if len(got) != len(tt.labels) {
				t.Fatalf("classify() = %v, want %v", got, tt.labels)
			}
			for i := range got {
				if got[i] != tt.labels[i] {
					t.Errorf("label %d = %q, want %q", i, got[i], tt.labels[i])
				}
			}
		})
	}
}

func TestExcludeSelfUsesRestScores(t *testing.T) {
	// q1 and q2 move in opposition, so against rest-scores q1's
	// discrimination is exactly -1.
	table := &marks.Table{
		Items: []string{"q1", "q2"},
		Max:   map[string]float64{"q1": 1, "q2": 1},
		Records: []marks.Record{
			{Student: "a", Scores: []marks.ItemScore{{Item: "q1", Score: 0}, {Item: "q2", Score: 1}}},
			{Student: "b", Scores: []marks.ItemScore{{Item: "q1", Score: 1}, {Item: "q2", Score: 0}}},
			{Student: "c", Scores: []marks.ItemScore{{Item: "q1", Score: 0.2}, {Item: "q2", Score: 0.8}}},
		},
	}
	cfg := defaultItemConfig()
	cfg.ExcludeSelf = true
	stats := Analyze(table, table.Totals(), cfg)

	if stats[0].Undefined {
		t.Fatal("q1 rest-score discrimination should be defined")
	}
	if math.Abs(stats[0].Discrimination-(-1)) > 1e-9 {
		t.Errorf("q1 discrimination = %g, want -1", stats[0].Discrimination)
	}
}

func TestExcludeSelfSingleItemUndefined(t *testing.T) {
	table, totals := singleItemTable([]float64{1, 2, 3}, 5)
	cfg := defaultItemConfig()
	cfg.ExcludeSelf = true
	stats := Analyze(table, totals, cfg)

	if !stats[0].Undefined {
		t.Error("single-item rest-score discrimination should be undefined")
	}
}
