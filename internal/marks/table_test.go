package marks

import (
	"math"
	"testing"
)

func testTable() *Table {
	return &Table{
		Items: []string{"q1", "q2"},
		Max:   map[string]float64{"q1": 2, "q2": 8},
		Records: []Record{
			{Student: "alice", Scores: []ItemScore{{"q1", 2}, {"q2", 8}}},
			{Student: "bob", Scores: []ItemScore{{"q1", 1}, {"q2", 4}}},
			{Student: "carol", Scores: []ItemScore{{"q1", 0}, {"q2", 0}}},
		},
	}
}

func TestTotals(t *testing.T) {
	totals := testTable().Totals()

	want := []float64{1.0, 0.5, 0.0}
	for i, tot := range totals {
		if math.Abs(tot.Score-want[i]) > 1e-12 {
			t.Errorf("totals[%d] = %g, want %g", i, tot.Score, want[i])
		}
	}
	if totals[1].Student != "bob" {
		t.Errorf("totals[1].Student = %q, want bob", totals[1].Student)
	}
}

func TestTotalsWithinUnitInterval(t *testing.T) {
	for _, tot := range testTable().Totals() {
		if tot.Score < 0 || tot.Score > 1 {
			t.Errorf("total %g outside [0,1]", tot.Score)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := testTable().Validate(); err != nil {
		t.Fatalf("Validate() on good table: %v", err)
	}

	t.Run("missing item coverage", func(t *testing.T) {
		table := testTable()
		table.Records[1].Scores = table.Records[1].Scores[:1]
		if err := table.Validate(); err == nil {
			t.Error("Validate() = nil, want coverage error")
		}
	})

	t.Run("missing max", func(t *testing.T) {
		table := testTable()
		delete(table.Max, "q2")
		if err := table.Validate(); err == nil {
			t.Error("Validate() = nil, want max error")
		}
	})

	t.Run("no students", func(t *testing.T) {
		table := testTable()
		table.Records = nil
		if err := table.Validate(); err == nil {
			t.Error("Validate() = nil, want ErrNoStudents")
		}
	})
}

func TestItemScores(t *testing.T) {
	got := testTable().ItemScores("q2")
	want := []float64{8, 4, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ItemScores(q2)[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}
