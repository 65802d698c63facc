// Package tui is an interactive browser over an analysis report: four
// pages (overview, bands, items, advice) with an item filter. The report
// is computed before the program starts; the browser only presents it.
package tui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/markcurve/internal/analysis"
)

// Page identifies one browser page.
type Page int

const (
	PageOverview Page = iota
	PageBands
	PageItems
	PageAdvice
	pageCount
)

// Title returns the tab label for the page.
func (p Page) Title() string {
	switch p {
	case PageOverview:
		return "Overview"
	case PageBands:
		return "Bands"
	case PageItems:
		return "Items"
	case PageAdvice:
		return "Advice"
	default:
		return ""
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	report *analysis.Report
	page   Page
	width  int
	height int

	filter    textinput.Model
	filtering bool
}

// New creates the browser model for a computed report.
func New(rep *analysis.Report) Model {
	ti := textinput.New()
	ti.Placeholder = "filter items"
	ti.CharLimit = 32
	return Model{report: rep, filter: ti}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "esc":
				m.filtering = false
				m.filter.SetValue("")
				m.filter.Blur()
				return m, nil
			case "enter":
				m.filtering = false
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "right", "tab", "l":
			m.page = (m.page + 1) % pageCount
			return m, nil
		case "left", "shift+tab", "h":
			m.page = (m.page + pageCount - 1) % pageCount
			return m, nil
		case "/":
			if m.page == PageItems {
				m.filtering = true
				return m, m.filter.Focus()
			}
			return m, nil
		}
	}
	return m, nil
}

// filterQuery returns the active item filter, lowercased.
func (m Model) filterQuery() string {
	return strings.ToLower(strings.TrimSpace(m.filter.Value()))
}

// Run launches the browser and blocks until the user quits.
func Run(rep *analysis.Report) error {
	p := tea.NewProgram(New(rep))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running report browser:", err)
		return err
	}
	return nil
}
