// Package dashboard renders the aggregate health report in the
// terminal. Polling itself lives in the health package; Run feeds each
// completed cycle's report into the bubbletea message loop, and each
// report fully replaces the one on screen.
package dashboard

import (
	"context"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stackpad-dev/stackpad/core/stack"
	"github.com/stackpad-dev/stackpad/internal/bootstrap/health"
)

// reportMsg carries a completed poll cycle's report into the update
// loop. Each one fully replaces the displayed report.
type reportMsg stack.Report

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	nameStyle    = lipgloss.NewStyle().Width(12)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	healthyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// statusStyle maps a status string to its rendering style. Unrecognized
// values get the same neutral treatment as an explicit "unknown", so
// new upstream statuses degrade gracefully instead of breaking the
// dashboard.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case stack.StatusHealthy:
		return healthyStyle
	case stack.StatusDegraded:
		return warnStyle
	case stack.StatusUnhealthy, stack.StatusError:
		return badStyle
	case stack.StatusUnknown:
		return dimStyle
	default:
		return dimStyle
	}
}

// Model is display-only: reports arrive from outside via Program.Send,
// so the model never schedules work of its own.
type Model struct {
	report   stack.Report
	received bool
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.report = stack.Report(msg)
		m.received = true
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := titleStyle.Render("stackpad · stack health") + "\n"

	if !m.received {
		return s + dimStyle.Render("waiting for first poll…") + "\n"
	}

	s += nameStyle.Render("overall") + statusStyle(m.report.Status).Render(m.report.Status) + "\n"

	names := make([]string, 0, len(m.report.Services))
	for name := range m.report.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		status := m.report.Services[name]
		s += nameStyle.Render(name) + statusStyle(status).Render(status) + "\n"
	}

	if m.report.Error != "" {
		s += badStyle.Render(m.report.Error) + "\n"
	}
	s += dimStyle.Render(m.report.Timestamp) + "\n"
	s += dimStyle.Render("q to quit") + "\n"
	return s
}

// Run blocks on the dashboard until the user quits or the program is
// interrupted. The poller runs alongside the program and is torn down
// with it: quitting cancels the poll loop, and no further poll fires.
func Run(client *health.Client, interval time.Duration) error {
	program := tea.NewProgram(New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller := health.NewPoller(client, interval)
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Run(ctx, func(report stack.Report) {
			program.Send(reportMsg(report))
		})
	}()

	_, err := program.Run()
	cancel()
	<-done
	return err
}
