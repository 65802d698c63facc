package marks

import (
	"errors"
	"fmt"
)

// ErrNoStudents indicates a table with no mark records.
var ErrNoStudents = errors.New("mark table contains no students")

// ItemScore is one raw score for one item.
type ItemScore struct {
	Item  string
	Score float64
}

// Record holds one student's raw scores, in the table's item order.
type Record struct {
	Student string
	Scores  []ItemScore
}

// Score returns the raw score for the given item.
func (r *Record) Score(item string) (float64, bool) {
	for _, s := range r.Scores {
		if s.Item == item {
			return s.Score, true
		}
	}
	return 0, false
}

// Table is the validated mark table: every record carries a score for
// every item, and every score lies within [0, Max[item]].
type Table struct {
	Items   []string
	Max     map[string]float64
	Records []Record
}

// Total is one student's normalized total score.
type Total struct {
	Student string
	Score   float64
}

// Validate checks the table invariants: at least one student, at least one
// item, positive maxima, full item coverage per record, and scores within
// [0, max]. It is called once at the loading boundary so downstream
// consumers never re-check shape.
func (t *Table) Validate() error {
	if len(t.Records) == 0 {
		return ErrNoStudents
	}
	if len(t.Items) == 0 {
		return errors.New("mark table contains no items")
	}
	for _, item := range t.Items {
		m, ok := t.Max[item]
		if !ok {
			return fmt.Errorf("item %q has no maximum score", item)
		}
		if m <= 0 {
			return fmt.Errorf("item %q has non-positive maximum %g", item, m)
		}
	}
	for _, rec := range t.Records {
		if len(rec.Scores) != len(t.Items) {
			return fmt.Errorf("student %q has %d scores, want %d", rec.Student, len(rec.Scores), len(t.Items))
		}
		for i, s := range rec.Scores {
			if s.Item != t.Items[i] {
				return fmt.Errorf("student %q score %d is for item %q, want %q", rec.Student, i, s.Item, t.Items[i])
			}
			if s.Score < 0 || s.Score > t.Max[s.Item] {
				return fmt.Errorf("student %q item %q score %g outside [0, %g]", rec.Student, s.Item, s.Score, t.Max[s.Item])
			}
		}
	}
	return nil
}

// MaxTotal returns the sum of per-item maxima.
func (t *Table) MaxTotal() float64 {
	sum := 0.0
	for _, item := range t.Items {
		sum += t.Max[item]
	}
	return sum
}

// Totals computes each student's normalized total, sum(raw)/sum(max),
// in record order. Normalized totals are always within [0,1] for a
// validated table.
func (t *Table) Totals() []Total {
	maxTotal := t.MaxTotal()
	totals := make([]Total, len(t.Records))
	for i, rec := range t.Records {
		sum := 0.0
		for _, s := range rec.Scores {
			sum += s.Score
		}
		totals[i] = Total{Student: rec.Student, Score: sum / maxTotal}
	}
	return totals
}

// ItemScores returns the raw scores for one item, in record order.
func (t *Table) ItemScores(item string) []float64 {
	out := make([]float64, len(t.Records))
	for i, rec := range t.Records {
		if s, ok := rec.Score(item); ok {
			out[i] = s
		}
	}
	return out
}
