package marks

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a mark table from CSV.
//
// The first column is the student identifier; every column whose header
// starts with "q" is an item column. An optional first data row whose
// first cell is "max" supplies per-item maximum scores. Items without a
// declared maximum default to max(highest observed score, 1).
// Non-numeric or empty item cells coerce to 0.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv input")
	}

	header := rows[0]
	rows = rows[1:]

	var items []string
	itemCol := make(map[string]int)
	for i, col := range header {
		name := strings.TrimSpace(col)
		if strings.HasPrefix(name, "q") && i > 0 {
			items = append(items, name)
			itemCol[name] = i
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no item columns (header names starting with %q) found", "q")
	}

	maxScores := make(map[string]float64)
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "max") {
		maxRow := rows[0]
		rows = rows[1:]
		for _, item := range items {
			v, err := strconv.ParseFloat(strings.TrimSpace(maxRow[itemCol[item]]), 64)
			if err != nil {
				return nil, fmt.Errorf("max row: item %q: %w", item, err)
			}
			maxScores[item] = v
		}
	}

	records := make([]Record, 0, len(rows))
	observedMax := make(map[string]float64)
	for n, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, want %d", n+2, len(row), len(header))
		}
		rec := Record{Student: strings.TrimSpace(row[0]), Scores: make([]ItemScore, len(items))}
		for i, item := range items {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[itemCol[item]]), 64)
			if err != nil {
				v = 0 // blank and non-numeric cells count as zero
			}
			rec.Scores[i] = ItemScore{Item: item, Score: v}
			if v > observedMax[item] {
				observedMax[item] = v
			}
		}
		records = append(records, rec)
	}

	for _, item := range items {
		if _, ok := maxScores[item]; ok {
			continue
		}
		m := observedMax[item]
		if m < 1 {
			m = 1
		}
		maxScores[item] = m
	}

	t := &Table{Items: items, Max: maxScores, Records: records}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads a mark table from a CSV file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open marks file: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}
