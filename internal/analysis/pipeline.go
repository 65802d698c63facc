// Package analysis orchestrates the full assessment pipeline: target
// distribution, optimal-transport mapping, band report, cohort split,
// item statistics and recommendations, assembled into one Report.
package analysis

import (
	"go.uber.org/zap"

	"github.com/abhisek/markcurve/internal/advice"
	"github.com/abhisek/markcurve/internal/bands"
	"github.com/abhisek/markcurve/internal/items"
	"github.com/abhisek/markcurve/internal/marks"
	"github.com/abhisek/markcurve/internal/otmap"
	"github.com/abhisek/markcurve/internal/target"
)

// Report is everything the renderer needs. It is a pure function of the
// mark table and the configuration; two runs over identical inputs
// produce identical reports.
type Report struct {
	Config Config

	// Students, Original and Mapped are aligned with the table's record
	// order. Original holds normalized totals, Mapped their
	// optimal-transport images on the target distribution.
	Students []string
	Original []float64
	Mapped   []float64

	Target       target.Distribution
	TargetFamily target.Family
	TargetParams string

	OverallShift    float64
	Bands           []bands.Band
	Split           bands.Split
	Items           []items.Stats
	Recommendations []advice.Recommendation
}

// Run executes the pipeline over a validated mark table. A nil logger
// disables debug logging.
func Run(table *marks.Table, cfg Config, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if table == nil || len(table.Records) == 0 {
		return nil, &DataError{Err: marks.ErrNoStudents}
	}
	if err := table.Validate(); err != nil {
		return nil, &DataError{Err: err}
	}

	totals := table.Totals()
	students := make([]string, len(totals))
	original := make([]float64, len(totals))
	for i, t := range totals {
		students[i] = t.Student
		original[i] = t.Score
	}
	logger.Debug("loaded mark table",
		zap.Int("students", len(totals)),
		zap.Int("items", len(table.Items)),
		zap.Float64("max_total", table.MaxTotal()))

	family, _ := target.ParseFamily(cfg.TargetDist)
	dist, err := target.Build(target.Spec{
		Family:        family,
		PassRate:      cfg.PassRateTarget,
		PassMark:      cfg.PassThreshold,
		Sigma:         cfg.Sigma,
		Concentration: cfg.Concentration,
	})
	if err != nil {
		return nil, &ConfigError{Option: "target_dist", Err: err}
	}
	logger.Debug("target distribution solved", zap.String("params", dist.Params()))

	mapped, err := otmap.Map(original, dist.Quantile)
	if err != nil {
		return nil, &DataError{Err: err}
	}

	bandReport, err := bands.Build(original, mapped, cfg.BandCount)
	if err != nil {
		return nil, &DataError{Err: err}
	}
	logger.Debug("band report built",
		zap.Int("bands", len(bandReport.Bands)),
		zap.Float64("overall_shift", bandReport.OverallShift))

	split := bands.Classify(original, bands.SplitConfig{
		PassThreshold: cfg.PassThreshold,
		HighThreshold: cfg.HighThreshold,
		MidFraction:   cfg.MidFraction,
		MinTailShare:  cfg.MinTailShare,
	})
	if split.Bimodal {
		logger.Debug("cohort flagged bimodal",
			zap.Float64("fail", split.Fail),
			zap.Float64("mid", split.Mid),
			zap.Float64("high", split.High))
	}

	stats := items.Analyze(table, totals, items.Config{
		FacilityEasy: cfg.FacilityEasy,
		FacilityHard: cfg.FacilityHard,
		DiscrimPoor:  cfg.DiscrimPoor,
		ExcludeSelf:  cfg.DiscriminationExcludesItem,
	})

	recs := advice.Recommend(split, stats)
	logger.Debug("recommendations generated", zap.Int("count", len(recs)))

	return &Report{
		Config:          cfg,
		Students:        students,
		Original:        original,
		Mapped:          mapped,
		Target:          dist,
		TargetFamily:    family,
		TargetParams:    dist.Params(),
		OverallShift:    bandReport.OverallShift,
		Bands:           bandReport.Bands,
		Split:           split,
		Items:           stats,
		Recommendations: recs,
	}, nil
}
