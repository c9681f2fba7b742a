package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"taskdeck/internal/paging"
	"taskdeck/internal/task"
	"taskdeck/internal/tui/styles"
)

// Grid geometry. Two fixed rows like the original kiosk layout; the column
// count follows from the page size. The same numbers drive rendering and
// mouse hit-testing, so they live together here.
const (
	gridRows         = 2
	tileContentLines = 5
	gridTop          = 2 // header line + blank line
	minTileWidth     = 22
)

type gridLayout struct {
	cols  int
	tileW int // outer width, border included
	tileH int // outer height, border included
}

func layoutFor(width, pageSize int) gridLayout {
	cols := (pageSize + gridRows - 1) / gridRows
	if cols < 1 {
		cols = 1
	}
	tileW := width / cols
	if tileW < minTileWidth {
		tileW = minTileWidth
	}
	return gridLayout{cols: cols, tileW: tileW, tileH: tileContentLines + 2}
}

// tileAt maps terminal coordinates to a page-relative tile index, or -1 when
// the position is outside the grid. The caller still has to check the index
// against the page's real tile count: spacer cells hit-test like tiles.
func (g gridLayout) tileAt(x, y int) int {
	row := (y - gridTop) / g.tileH
	col := x / g.tileW
	if y < gridTop || row >= gridRows || col >= g.cols || x < 0 {
		return -1
	}
	return row*g.cols + col
}

// noFocus disables focus highlighting in a Grid call.
const noFocus = -1

// Grid renders the visible tile window. It is a pure function of its inputs:
// the whole grid is rebuilt on every call and no per-tile identity survives
// between calls. focus and pressed are page-relative tile indexes (noFocus
// to disable); spacers pads short pages so the grid never reflows.
func Grid(tiles []task.ViewModel, spacers int, meta paging.Meta, focus, pressed, width int) string {
	g := layoutFor(width, meta.PageSize)

	cells := make([]string, 0, len(tiles)+spacers)
	for i, vm := range tiles {
		cells = append(cells, renderTile(vm, g, i == focus, i == pressed))
	}
	spacer := styles.TileSpacer.Width(g.tileW - 2).Height(tileContentLines).Render("")
	for i := 0; i < spacers; i++ {
		cells = append(cells, spacer)
	}

	rows := make([]string, 0, gridRows)
	for r := 0; r < gridRows; r++ {
		lo := r * g.cols
		if lo >= len(cells) {
			break
		}
		hi := lo + g.cols
		if hi > len(cells) {
			hi = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[lo:hi]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// PageIndicator renders the "page / pages" marker.
func PageIndicator(meta paging.Meta) string {
	return styles.PageIndicator.Render(fmt.Sprintf("%d / %d", meta.PageIndex+1, meta.PageCount))
}

func renderTile(vm task.ViewModel, g gridLayout, focused, pressed bool) string {
	frame := styles.Tile
	switch {
	case pressed:
		// Press feedback renders on locked tiles too; it is the only
		// reaction a locked tile gives.
		frame = styles.TilePressed
	case focused:
		frame = styles.TileFocused
	case vm.Locked:
		frame = styles.TileLocked
	}

	inner := g.tileW - 4 // border + padding
	lines := make([]string, 0, tileContentLines)

	title := truncate(vm.Title, inner-2)
	if vm.DoneToday {
		title = truncate(vm.Title, inner-4) + " " + styles.TileTick.Render("✓")
	}
	lines = append(lines, styles.TileTitle.Render(title))

	switch vm.Kind {
	case task.KindConfirm:
		lines = append(lines, styles.TileSuccessText.Render(truncate(vm.SuccessText, inner)))
		cv := vm.Confirm
		lines = append(lines, fmt.Sprintf("%s / %s", task.FormatCount(cv.Current), task.FormatCount(cv.Goal)))
		if vm.Achieved {
			lines = append(lines, styles.TileBadge.Render("goal reached"))
		} else {
			lines = append(lines, "")
		}
		lines = append(lines, deadlineLine(vm, inner))

	case task.KindNumberDiff:
		lines = append(lines, styles.TileSuccessText.Render(truncate(vm.SuccessText, inner)))
		nv := vm.Number
		if nv.HasLog() {
			lines = append(lines,
				"so far "+deltaView(nv.ProgressSinceStart),
				"to go  "+deltaView(nv.RemainingToGoal),
			)
		} else {
			// Nothing logged yet: the deltas would all read "--",
			// so the tile shows just its title block.
			lines = append(lines, "", "")
		}
		lines = append(lines, deadlineLine(vm, inner))

	default:
		lines = append(lines,
			"",
			styles.TileDiagnostic.Render(truncate("unknown task kind: "+vm.RawKind, inner)),
			"",
			"")
	}

	content := strings.Join(lines, "\n")
	return frame.Width(g.tileW - 2).Height(tileContentLines).Render(content)
}

func deltaView(d task.Delta) string {
	s := d.String()
	if !d.Defined {
		return styles.TileMeta.Render(s)
	}
	if d.Good {
		return styles.ValueGood.Render(s)
	}
	return styles.ValueBad.Render(s)
}

func deadlineLine(vm task.ViewModel, maxWidth int) string {
	if vm.Deadline == "" {
		return ""
	}
	return styles.TileMeta.Render(truncate("until "+vm.Deadline, maxWidth))
}

// truncate shortens s to maxWidth display cells, appending "…" when cut.
// It handles wide characters correctly using runewidth.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth-1, "") + "…"
}

// Summary is the one-line plain-text form of a tile, used for the clipboard
// copy action.
func Summary(vm task.ViewModel) string {
	switch vm.Kind {
	case task.KindConfirm:
		return fmt.Sprintf("%s: %s/%s", vm.Title,
			task.FormatCount(vm.Confirm.Current), task.FormatCount(vm.Confirm.Goal))
	case task.KindNumberDiff:
		nv := vm.Number
		if !nv.HasLog() {
			return vm.Title
		}
		return fmt.Sprintf("%s: %s so far, %s to go", vm.Title,
			nv.ProgressSinceStart, nv.RemainingToGoal)
	default:
		return fmt.Sprintf("%s (unknown kind %q)", vm.Title, vm.RawKind)
	}
}
