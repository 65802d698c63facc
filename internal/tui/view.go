package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/markcurve/internal/render"
)

var (
	tabActive = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#8B5CF6")).
			Padding(0, 1)
	tabInactive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).Italic(true)
	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E")).Bold(true)
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	var sb strings.Builder
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch m.page {
	case PageOverview:
		sb.WriteString(m.overviewPage())
	case PageBands:
		sb.WriteString(m.bandsPage())
	case PageItems:
		sb.WriteString(m.itemsPage())
	case PageAdvice:
		sb.WriteString(m.advicePage())
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	v.SetContent(sb.String())
	return v
}

func (m Model) renderTabs() string {
	var tabs []string
	for p := Page(0); p < pageCount; p++ {
		if p == m.page {
			tabs = append(tabs, tabActive.Render(p.Title()))
		} else {
			tabs = append(tabs, tabInactive.Render(p.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFooter() string {
	hints := "←/→ switch page · q quit"
	if m.page == PageItems {
		hints = "←/→ switch page · / filter · q quit"
	}
	if m.filtering {
		hints = "enter apply · esc clear"
	}
	return hintStyle.Render(hints)
}

func (m Model) overviewPage() string {
	rep := m.report
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d students · %d items · target %s\n", len(rep.Students), len(rep.Items), rep.TargetParams))
	sb.WriteString(fmt.Sprintf("overall shift %+.3f\n\n", rep.OverallShift))
	barWidth := m.width - 16
	sb.WriteString("current totals\n")
	sb.WriteString(render.Histogram(rep.Original, 10, barWidth))
	sb.WriteString("\nafter OT mapping\n")
	sb.WriteString(render.Histogram(rep.Mapped, 10, barWidth))
	return sb.String()
}

func (m Model) bandsPage() string {
	rep := m.report
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("average shift to target %s: %+.3f\n\n", rep.TargetFamily, rep.OverallShift))
	for _, b := range rep.Bands {
		sb.WriteString(fmt.Sprintf("  band %d/%d: %+.3f  (mean %.3f → %.3f, %d students)\n",
			b.Index, len(rep.Bands), b.Shift, b.MeanOriginal, b.MeanMapped, b.Size))
	}
	sb.WriteString(fmt.Sprintf("\nfail %.0f%% · mid %.0f%% · high %.0f%%",
		rep.Split.Fail*100, rep.Split.Mid*100, rep.Split.High*100))
	if rep.Split.Bimodal {
		sb.WriteString("  ")
		sb.WriteString(alertStyle.Render("bimodal"))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) itemsPage() string {
	var sb strings.Builder
	if m.filtering || m.filterQuery() != "" {
		sb.WriteString(m.filter.View())
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("%-10s %9s %15s  %s\n", "item", "facility", "discrimination", "labels"))
	query := m.filterQuery()
	shown := 0
	for i := range m.report.Items {
		s := &m.report.Items[i]
		if query != "" && !strings.Contains(strings.ToLower(s.Item), query) {
			continue
		}
		shown++
		disc := "undefined"
		if !s.Undefined {
			disc = fmt.Sprintf("%.2f", s.Discrimination)
		}
		labels := make([]string, len(s.Labels))
		for j, l := range s.Labels {
			labels[j] = string(l)
		}
		sb.WriteString(fmt.Sprintf("%-10s %9.2f %15s  %s\n", s.Item, s.Facility, disc, strings.Join(labels, ",")))
	}
	if shown == 0 {
		sb.WriteString(hintStyle.Render("no items match the filter"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) advicePage() string {
	if len(m.report.Recommendations) == 0 {
		return "no issues found\n"
	}
	var sb strings.Builder
	for _, r := range m.report.Recommendations {
		sb.WriteString(" • ")
		sb.WriteString(r.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
