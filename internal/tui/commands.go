package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"taskdeck/internal/api"
)

// How long toasts and press-flashes linger.
const (
	toastDuration = 1800 * time.Millisecond
	flashDuration = 160 * time.Millisecond
)

// Message types
type tickMsg time.Time
type tasksMsg struct{ list api.TaskList }
type errMsg struct{ err error }
type commitDoneMsg struct{}
type commitErrMsg struct{ err error }
type statusClearMsg struct{ seq int }
type flashClearMsg struct{ seq int }

// tickCmd schedules the next polling refresh.
func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.cfg.RefreshInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd retrieves the task list. Failures come back as errMsg and leave
// the previous rendered state intact.
func (a *App) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := a.client.FetchTasks()
		if err != nil {
			return errMsg{err}
		}
		return tasksMsg{list}
	}
}

// confirmCmd commits a yes/no answer for a confirm-kind tile.
func (a *App) confirmCmd(id string, value bool) tea.Cmd {
	date := a.today
	return func() tea.Msg {
		if err := a.client.Confirm(id, value, date); err != nil {
			return commitErrMsg{err}
		}
		return commitDoneMsg{}
	}
}

// submitCmd commits a new logged value for a numberDiff-kind tile.
func (a *App) submitCmd(id string, value float64) tea.Cmd {
	date := a.today
	return func() tea.Msg {
		if err := a.client.SubmitValue(id, value, date); err != nil {
			return commitErrMsg{err}
		}
		return commitDoneMsg{}
	}
}

// statusClearCmd expires the current toast. The sequence number guards
// against a stale clear wiping a newer toast.
func statusClearCmd(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// flashClearCmd ends the press-flash on a tile.
func flashClearCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{seq: seq}
	})
}

// notifyCmd fires a desktop notification; failures are not worth surfacing
// on a kiosk screen.
func (a *App) notifyCmd(title, body string) tea.Cmd {
	return func() tea.Msg {
		if err := beeep.Notify("taskdeck", title+": "+body, ""); err != nil {
			a.logger.Debug("notification failed", "err", err)
		}
		return nil
	}
}
