package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackpad-dev/stackpad/core/stack"
)

func TestReportReplacesViewState(t *testing.T) {
	m := New()

	healthy := stack.Report{
		Status:    stack.StatusHealthy,
		Timestamp: "2025-01-01T00:00:00Z",
		Services:  map[string]string{"database": "healthy", "redis": "healthy"},
	}
	next, _ := m.Update(reportMsg(healthy))
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "healthy")
	assert.Contains(t, view, "database")

	failed := stack.Report{
		Status:    stack.StatusError,
		Error:     "API unreachable",
		Timestamp: "2025-01-01T00:00:05Z",
	}
	next, _ = m.Update(reportMsg(failed))
	m = next.(Model)

	view = m.View()
	assert.Contains(t, view, "error")
	assert.Contains(t, view, "API unreachable")
	assert.NotContains(t, view, "database", "stale per-service rows must not survive a failed poll")
}

func TestModelIsDrivenExternally(t *testing.T) {
	// Polling belongs to health.Poller; the model schedules no work of
	// its own, neither at init nor after a report lands.
	m := New()
	assert.Nil(t, m.Init())

	next, cmd := m.Update(reportMsg(stack.Report{Status: stack.StatusHealthy}))
	assert.Nil(t, cmd)
	assert.True(t, next.(Model).received)
}

func TestUnknownStatusGetsNeutralStyle(t *testing.T) {
	assert.Equal(t, dimStyle, statusStyle(stack.StatusUnknown))
	assert.Equal(t, dimStyle, statusStyle("recovering"))
	assert.Equal(t, dimStyle, statusStyle(""))
	assert.Equal(t, healthyStyle, statusStyle(stack.StatusHealthy))
	assert.Equal(t, warnStyle, statusStyle(stack.StatusDegraded))
	assert.Equal(t, badStyle, statusStyle(stack.StatusUnhealthy))
	assert.Equal(t, badStyle, statusStyle(stack.StatusError))
}

func TestViewBeforeFirstPoll(t *testing.T) {
	m := New()
	assert.Contains(t, m.View(), "waiting for first poll")
}

func TestQuitKeys(t *testing.T) {
	m := New()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
