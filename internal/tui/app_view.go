package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/task"
	"taskdeck/internal/tui/styles"
)

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	content := a.renderHeader() + "\n\n" + a.renderGrid()

	if a.modal.IsOpen() {
		content = overlay(content, a.renderModal(), a.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, a.renderStatusBar())
}

func (a *App) renderHeader() string {
	title := styles.Title.Render("taskdeck")
	date := styles.TileMeta.Render(a.today.Format("Mon 2 Jan 2006"))
	left := title + "  " + date

	right := PageIndicator(a.pager.Meta())
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderGrid() string {
	if a.loading && !a.haveData {
		return a.spinner.View() + " loading tasks..."
	}

	page, spacers := a.visible()

	focus := a.focus
	if a.modal.IsOpen() {
		focus = noFocus
	}
	return Grid(page, spacers, a.pager.Meta(), focus, a.pressed, a.width)
}

func (a *App) renderModal() string {
	switch a.modal.Mode() {
	case ModalConfirm:
		return a.renderConfirmModal()
	case ModalNumberEntry:
		return a.renderNumberModal()
	}
	return ""
}

func (a *App) renderConfirmModal() string {
	vm := a.modal.Target()

	body := styles.ModalTitle.Render(vm.Title) + "\n\n" +
		"Really done?\n\n" +
		styles.ModalHint.Render("y: yes • n: no • esc: cancel")
	if a.saving {
		body += "\n" + a.spinner.View() + " saving..."
	}

	return styles.ModalFrame.Width(40).Render(body)
}

func (a *App) renderNumberModal() string {
	vm := a.modal.Target()

	valStyle := styles.SliderValue
	if !a.modal.InRange() {
		// The precise field may leave the slider range; flag it but
		// keep it editable, it is what gets saved.
		valStyle = styles.SliderOutOfRange
	}

	var hint string
	if nv := vm.Number; nv != nil && nv.Start != nil {
		hint = styles.ModalHint.Render("start: "+task.FormatNumber(*nv.Start)) + "\n"
	}

	body := styles.ModalTitle.Render(vm.Title) + "\n\n" +
		"Enter the current value\n\n" +
		a.modal.slider.ViewAs(a.modal.SliderPercent()) + "\n" +
		valStyle.Render(a.modal.input.View()) + "\n" +
		hint + "\n" +
		styles.ModalHint.Render("↑/↓: step • pgup/pgdn: coarse • enter: save • esc: cancel")
	if a.saving {
		body += "\n" + a.spinner.View() + " saving..."
	}

	return styles.ModalFrame.Width(44).Render(body)
}

func (a *App) renderStatusBar() string {
	if a.status != "" {
		return styles.StatusToast.Render(a.status)
	}

	page, _ := a.visible()
	info := fmt.Sprintf("%d tasks", a.pager.Total())
	if len(page) > 0 && a.focus < len(page) && !a.modal.IsOpen() {
		info += "  •  " + Summary(page[a.focus])
	}
	return styles.StatusBar.Render(truncate(info, a.width))
}

// overlay centers dialog on top of content, replacing the covered lines.
// Bubble Tea has no z-axis; this is the classic line-splice dialog trick.
func overlay(content, dialog string, width int) string {
	dialogLines := strings.Split(dialog, "\n")
	contentLines := strings.Split(content, "\n")

	leftPad := (width - lipgloss.Width(dialog)) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	startLine := (len(contentLines) - len(dialogLines)) / 2
	if startLine < 0 {
		startLine = 0
	}

	for i, line := range dialogLines {
		padded := strings.Repeat(" ", leftPad) + line
		if startLine+i < len(contentLines) {
			contentLines[startLine+i] = padded
		} else {
			contentLines = append(contentLines, padded)
		}
	}
	return strings.Join(contentLines, "\n")
}
