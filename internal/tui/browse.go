package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coilworks/springpack/internal/audit"
	"github.com/coilworks/springpack/internal/optimize"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	selRow = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
)

const visibleRows = 14

type model struct {
	result   *optimize.Result
	rows     []optimize.Candidate
	cursor   int
	offset   int
	fullView bool

	width  int
	height int
}

// NewBrowser returns a bubbletea model for walking a ranked result set.
// The default view hides marginal and infeasible rows; v toggles the
// full list.
func NewBrowser(result *optimize.Result) tea.Model {
	m := model{result: result, width: 100, height: 24}
	m.rows = result.DefaultView()
	if len(m.rows) == 0 {
		m.rows = result.Candidates
		m.fullView = true
	}
	return m
}

func Browse(result *optimize.Result) error {
	p := tea.NewProgram(NewBrowser(result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = len(m.rows) - 1
		case "v":
			m.fullView = !m.fullView
			if m.fullView {
				m.rows = m.result.Candidates
			} else {
				m.rows = m.result.DefaultView()
			}
			m.cursor = 0
			m.offset = 0
		}
		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+visibleRows {
			m.offset = m.cursor - visibleRows + 1
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := "ranked candidates"
	if m.fullView {
		title += " (full)"
	}
	b.WriteString(cyan.Render(title))
	b.WriteString(dim.Render(fmt.Sprintf("  %d of %d shown", len(m.rows), len(m.result.Candidates))))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(yellow.Render("no feasible design"))
		if m.result.Reason != "" {
			b.WriteString("\n" + dim.Render(m.result.Reason))
		}
		b.WriteString("\n\n" + dim.Render("q quit"))
		return b.String()
	}

	b.WriteString(dim.Render(fmt.Sprintf("%4s  %6s %6s %6s %4s  %9s %9s %6s %6s  %-5s",
		"rank", "d", "Dm", "Na", "N", "rate", "load", "err%", "SF", "audit")))
	b.WriteString("\n")

	end := m.offset + visibleRows
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		c := m.rows[i]
		line := fmt.Sprintf("%4d  %6.2f %6.1f %6.1f %4d  %9.2f %9.1f %6.2f %6.2f  %-5s",
			i+1,
			c.Geometry.WireDiameter, c.Geometry.MeanDiameter, c.Geometry.ActiveCoils,
			c.Geometry.PackCount,
			c.Response.PackRate, c.Response.PackLoad,
			c.Score.TargetErrorPct, c.Response.SafetyFactor,
			c.Audit.Status)
		if i == m.cursor {
			b.WriteString(selRow.Render("> " + line))
		} else {
			b.WriteString(statusStyle(c.Audit.Status).Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detail(m.rows[m.cursor]))
	b.WriteString("\n")
	b.WriteString(dim.Render("j/k move   g/G ends   v toggle full view   q quit"))
	return b.String()
}

func (m model) detail(c optimize.Candidate) string {
	var b strings.Builder
	b.WriteString(white.Render("why"))
	b.WriteString("\n")
	for _, w := range c.Why {
		b.WriteString(dim.Render("  - "))
		b.WriteString(w)
		b.WriteString("\n")
	}
	for _, f := range c.Audit.Findings {
		b.WriteString(statusStyle(f.Severity).Render("  [" + string(f.Severity) + "] "))
		b.WriteString(dim.Render(f.Rule + ": "))
		b.WriteString(f.Message)
		b.WriteString("\n")
	}
	return b.String()
}

func statusStyle(s audit.Status) lipgloss.Style {
	switch s {
	case audit.Pass:
		return green
	case audit.Warn:
		return yellow
	default:
		return red
	}
}
