// Package render prints analysis reports for the terminal. All output is
// deterministic: fixed float formats, no timestamps, no randomness.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/markcurve/internal/analysis"
	"github.com/abhisek/markcurve/internal/items"
)

const histogramBins = 10

// Text renders the full report.
func Text(rep *analysis.Report, width int) string {
	if width < 40 {
		width = 40
	}
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("markcurve — assessment analysis"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%d students · %d items · target %s",
		len(rep.Students), len(rep.Items), rep.TargetParams)))
	sb.WriteString("\n\n")

	barWidth := width - 16
	sb.WriteString(sectionStyle.Render("current totals"))
	sb.WriteString("\n")
	sb.WriteString(Histogram(rep.Original, histogramBins, barWidth))
	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("after OT mapping"))
	sb.WriteString("\n")
	sb.WriteString(Histogram(rep.Mapped, histogramBins, barWidth))
	sb.WriteString("\n")

	sb.WriteString(sectionStyle.Render("band report"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("average shift to target %s: %s\n",
		rep.TargetFamily, shiftStyle(rep.OverallShift).Render(fmt.Sprintf("%+.3f", rep.OverallShift))))
	for _, b := range rep.Bands {
		sb.WriteString(fmt.Sprintf("  band %d/%d: %s  (mean %.3f → %.3f, %d students)\n",
			b.Index, len(rep.Bands),
			shiftStyle(b.Shift).Render(fmt.Sprintf("%+.3f", b.Shift)),
			b.MeanOriginal, b.MeanMapped, b.Size))
	}
	sb.WriteString("\n")

	sb.WriteString(sectionStyle.Render("cohort"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("fail %.0f%% · mid %.0f%% · high %.0f%%",
		rep.Split.Fail*100, rep.Split.Mid*100, rep.Split.High*100))
	if rep.Split.Bimodal {
		sb.WriteString("  ")
		sb.WriteString(badStyle.Render("bimodal"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(sectionStyle.Render("item summary"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%-10s %9s %15s  %s", "item", "facility", "discrimination", "labels")))
	sb.WriteString("\n")
	for i := range rep.Items {
		sb.WriteString(itemRow(&rep.Items[i]))
	}
	sb.WriteString("\n")

	sb.WriteString(sectionStyle.Render("recommendations"))
	sb.WriteString("\n")
	if len(rep.Recommendations) == 0 {
		sb.WriteString(goodStyle.Render("none"))
		sb.WriteString("\n")
	} else {
		for _, r := range rep.Recommendations {
			sb.WriteString(" • ")
			sb.WriteString(r.Text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func itemRow(s *items.Stats) string {
	disc := "undefined"
	if !s.Undefined {
		disc = fmt.Sprintf("%.2f", s.Discrimination)
	}
	labels := make([]string, len(s.Labels))
	for i, l := range s.Labels {
		labels[i] = string(l)
	}
	row := fmt.Sprintf("%-10s %9.2f %15s  %s\n", s.Item, s.Facility, disc, strings.Join(labels, ","))
	if s.HasLabel(items.LabelHard) || s.HasLabel(items.LabelPoorDiscriminator) {
		return warnStyle.Render(strings.TrimSuffix(row, "\n")) + "\n"
	}
	return row
}

func shiftStyle(shift float64) lipgloss.Style {
	switch {
	case shift > 0.005:
		return goodStyle
	case shift < -0.005:
		return badStyle
	default:
		return dimStyle
	}
}
