package tui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
	"taskdeck/internal/task"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tickMsg:
		// Poll and reschedule. Refreshes are idempotent fetch-and-redraw
		// operations, so racing a commit-triggered refresh is harmless:
		// the later snapshot wins.
		return a, tea.Batch(a.fetchCmd(), a.tickCmd())

	case tasksMsg:
		return a, a.applySnapshot(msg.list)

	case errMsg:
		// A failed poll never blanks the grid; the previous snapshot
		// stays up and the next tick retries.
		a.loading = false
		a.logger.Warn("fetch failed", "err", msg.err)
		return a, a.toast("failed to load tasks")

	case commitDoneMsg:
		a.saving = false
		a.modal.Close()
		a.syncSwipe()
		// Refresh so the grid shows server-confirmed state rather than
		// an optimistic local echo.
		return a, tea.Batch(a.toast("saved ✓"), a.fetchCmd())

	case commitErrMsg:
		a.saving = false
		a.modal.Close()
		a.syncSwipe()
		a.logger.Warn("commit failed", "err", msg.err)
		return a, a.toast("save failed: " + commitErrText(msg.err))

	case statusClearMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
		}
		return a, nil

	case flashClearMsg:
		if msg.seq == a.pressSeq {
			a.pressed = -1
		}
		return a, nil
	}

	return a, nil
}

// applySnapshot installs a fresh fetch result: normalize every record,
// update the paginator total (clamping the page index), and queue achievement
// notifications for tiles that newly flipped to achieved.
func (a *App) applySnapshot(list api.TaskList) tea.Cmd {
	first := !a.haveData

	prev := make(map[string]bool, len(a.tiles))
	for _, t := range a.tiles {
		prev[t.ID] = t.Achieved
	}

	a.today = list.Today
	a.tiles = task.NormalizeAll(list.Tasks, list.Today)
	a.pager.SetTotal(len(a.tiles))
	a.clampFocus()
	a.syncSwipe()
	a.loading = false
	a.haveData = true

	var cmds []tea.Cmd
	for _, vm := range a.tiles {
		if !vm.Achieved {
			continue
		}
		if first {
			// Tiles that were achieved before we started are old
			// news; mark them silently.
			a.notified[vm.ID] = true
			continue
		}
		if !prev[vm.ID] && !a.notified[vm.ID] && a.cfg.UI.Notify {
			a.notified[vm.ID] = true
			cmds = append(cmds, a.notifyCmd(vm.Title, "goal reached"))
		}
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.modal.IsOpen() {
		return a, a.handleModalKey(msg)
	}
	return a, a.handleGridKey(msg)
}

func (a *App) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	km := a.keymap

	switch msg.String() {
	case km.Quit.Key:
		return tea.Quit

	case km.Refresh.Key:
		return a.fetchCmd()

	case km.NextPage.Key:
		if a.pager.Next() {
			a.focus = 0
		}
		return nil

	case km.PrevPage.Key:
		if a.pager.Prev() {
			a.focus = 0
		}
		return nil

	case km.NextTile.Key:
		page, _ := a.visible()
		if len(page) > 0 {
			a.focus = (a.focus + 1) % len(page)
		}
		return nil

	case km.PrevTile.Key:
		page, _ := a.visible()
		if len(page) > 0 {
			a.focus = (a.focus + len(page) - 1) % len(page)
		}
		return nil

	case km.Activate.Key, km.Activate2.Key:
		// Keyboard activation runs the identical path as a tap.
		return a.activate(a.focus)

	case km.Copy.Key:
		return a.copyFocused()
	}

	return nil
}

// activate is the single activation path shared by taps and the keyboard.
// Locked and unknown-kind tiles only flash; interactive tiles open their
// modal.
func (a *App) activate(idx int) tea.Cmd {
	page, _ := a.visible()
	if idx < 0 || idx >= len(page) {
		return nil
	}
	vm := page[idx]

	cmd := a.flash(idx)
	if a.modal.OpenFor(vm) {
		a.syncSwipe()
	}
	return cmd
}

func (a *App) copyFocused() tea.Cmd {
	page, _ := a.visible()
	if a.focus < 0 || a.focus >= len(page) {
		return nil
	}
	if err := clipboard.WriteAll(Summary(page[a.focus])); err != nil {
		a.logger.Debug("clipboard write failed", "err", err)
		return a.toast("copy failed")
	}
	return a.toast("copied")
}

func (a *App) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	km := a.keymap

	switch a.modal.Mode() {
	case ModalConfirm:
		switch msg.String() {
		case km.Yes.Key, km.Save.Key:
			// Affirmative answer: locks the tile for the day once the
			// server confirms it.
			return a.commitConfirm(true)
		case km.No.Key:
			// A "no" is a real committed answer too; it is saved but
			// never locks the tile, so the user can re-answer later.
			return a.commitConfirm(false)
		case km.Cancel.Key:
			a.modal.Close()
			a.syncSwipe()
		}
		return nil

	case ModalNumberEntry:
		switch msg.String() {
		case km.Cancel.Key:
			// Discard the pending edit; no network effect.
			a.modal.Close()
			a.syncSwipe()
			return nil
		case km.Save.Key:
			v, ok := a.modal.Value()
			if !ok {
				return a.toast("enter a number")
			}
			if a.saving {
				return nil
			}
			a.saving = true
			return a.submitCmd(a.modal.Target().ID, v)
		case km.StepUp.Key:
			a.modal.Adjust(a.cfg.Slider.Step)
			return nil
		case km.StepDown.Key:
			a.modal.Adjust(-a.cfg.Slider.Step)
			return nil
		case km.CoarseUp.Key:
			a.modal.Adjust(a.cfg.Slider.CoarseStep)
			return nil
		case km.CoarseDn.Key:
			a.modal.Adjust(-a.cfg.Slider.CoarseStep)
			return nil
		default:
			return a.modal.HandleInput(msg)
		}
	}
	return nil
}

func (a *App) commitConfirm(value bool) tea.Cmd {
	if a.saving {
		return nil
	}
	a.saving = true
	return a.confirmCmd(a.modal.Target().ID, value)
}

func (a *App) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Gestures are ignored while a modal is open: the dialog is keyboard
	// driven and a drag underneath it must not page the grid.
	if a.modal.IsOpen() {
		return a, nil
	}

	// Wheel paging, same paging logic as the arrow keys.
	if msg.Type == tea.MouseWheelUp {
		if a.pager.Prev() {
			a.focus = 0
		}
		return a, nil
	}
	if msg.Type == tea.MouseWheelDown {
		if a.pager.Next() {
			a.focus = 0
		}
		return a, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		a.swipe.Start(float64(msg.X), float64(msg.Y), time.Now())
		a.pressX, a.pressY = msg.X, msg.Y
		return a, nil

	case tea.MouseActionMotion:
		a.swipe.Move(float64(msg.X), float64(msg.Y))
		return a, nil

	case tea.MouseActionRelease:
		dx := msg.X - a.pressX
		dy := msg.Y - a.pressY

		if dir, ok := a.swipe.End(time.Now()); ok {
			if a.pager.Advance(int(dir)) {
				a.focus = 0
			}
			return a, nil
		}

		// Not a swipe: a short release near the press point is a tap.
		if abs(dx) <= 1 && abs(dy) <= 1 {
			g := layoutFor(a.width, a.pager.PageSize())
			if idx := g.tileAt(a.pressX, a.pressY); idx >= 0 {
				a.focus = idx
				a.clampFocus()
				return a, a.activate(idx)
			}
		}
		return a, nil
	}

	return a, nil
}

// commitErrText pulls the server's own message out of a commit failure when
// there is one; transport errors fall back to the Go error text.
func commitErrText(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
