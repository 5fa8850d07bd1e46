// Package tui provides an interactive browser for canned deconfliction
// scenarios.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"uav-deconflict/internal/deconflict"
	"uav-deconflict/internal/scenario"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	clearStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	borderStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// resultMsg delivers a finished scenario run to the model.
type resultMsg struct {
	name   string
	report *deconflict.Report
	err    error
}

type model struct {
	scenarios map[string]*scenario.Scenario
	order     []string
	results   map[string]*deconflict.Report

	table    table.Model
	detail   viewport.Model
	width    int
	ready    bool
	quitting bool
}

func newModel() model {
	cols := []table.Column{
		{Title: "Scenario", Width: 24},
		{Title: "Status", Width: 20},
		{Title: "Conflicts", Width: 10},
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(len(scenario.Names())+1),
	)
	return model{
		scenarios: scenario.BuiltIn(),
		order:     scenario.Names(),
		results:   make(map[string]*deconflict.Report),
		table:     t,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) refreshRows() {
	rows := make([]table.Row, 0, len(m.order))
	for _, name := range m.order {
		status, count := "not run", "-"
		if rep, ok := m.results[name]; ok {
			status = string(rep.Status)
			count = fmt.Sprintf("%d", len(rep.Conflicts))
		}
		rows = append(rows, table.Row{name, status, count})
	}
	m.table.SetRows(rows)
}

func (m model) runSelected() tea.Cmd {
	row := m.table.SelectedRow()
	if row == nil {
		return nil
	}
	name := row[0]
	sc := m.scenarios[name]
	return func() tea.Msg {
		rep, err := sc.Run(context.Background())
		return resultMsg{name: name, report: rep, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.detail = viewport.New(msg.Width-2, msg.Height-m.table.Height()-4)
		m.ready = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m, m.runSelected()
		case "a":
			cmds := make([]tea.Cmd, 0, len(m.order))
			for _, name := range m.order {
				sc := m.scenarios[name]
				n := name
				cmds = append(cmds, func() tea.Msg {
					rep, err := sc.Run(context.Background())
					return resultMsg{name: n, report: rep, err: err}
				})
			}
			return m, tea.Batch(cmds...)
		}
	case resultMsg:
		if msg.err == nil {
			m.results[msg.name] = msg.report
		}
		m.refreshRows()
		m.detail.SetContent(m.detailFor(msg.name))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.refreshRows()
	return m, cmd
}

func (m *model) detailFor(name string) string {
	sc := m.scenarios[name]
	rep, ok := m.results[name]
	if sc == nil || !ok {
		return ""
	}
	var b strings.Builder
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	b.WriteString(wordwrap.String(sc.Description, width))
	b.WriteString("\n\n")
	if rep.Clear() {
		b.WriteString(clearStyle.Render("no conflicts"))
		return b.String()
	}
	for i, c := range rep.Conflicts {
		if i == 10 {
			fmt.Fprintf(&b, "... %d more\n", len(rep.Conflicts)-10)
			break
		}
		fmt.Fprintf(&b, "%s  %s & %s  (%.1f, %.1f, %.1f)  d=%.2f\n",
			c.Time.Format("15:04:05"), c.VehicleA, c.VehicleB,
			c.Location.X, c.Location.Y, c.Location.Z, c.Distance)
	}
	return conflictStyle.Render(b.String())
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Deconfliction scenarios"))
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(m.table.View()))
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.detail.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: run  a: run all  q: quit"))
	return b.String()
}

// Run starts the interactive scenario browser and blocks until it exits.
func Run() error {
	m := newModel()
	m.refreshRows()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
