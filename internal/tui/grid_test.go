package tui

import (
	"strings"
	"testing"

	"taskdeck/internal/paging"
	"taskdeck/internal/task"
)

func testMeta(pageSize, total, index int) paging.Meta {
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return paging.Meta{PageIndex: index, PageCount: pages, PageSize: pageSize, TotalItems: total}
}

func TestLayoutGeometry(t *testing.T) {
	g := layoutFor(120, 8)
	if g.cols != 4 {
		t.Errorf("cols = %d, want 4", g.cols)
	}
	if g.tileW != 30 {
		t.Errorf("tileW = %d, want 30", g.tileW)
	}

	// Odd page sizes round the column count up.
	g = layoutFor(120, 10)
	if g.cols != 5 {
		t.Errorf("cols = %d for pageSize 10, want 5", g.cols)
	}
}

func TestTileAt(t *testing.T) {
	g := layoutFor(120, 8) // 4 cols, tiles 30 wide, 7 tall, grid starts at row 2

	tests := []struct {
		x, y, want int
	}{
		{5, 4, 0},
		{35, 4, 1},
		{95, 3, 3},
		{5, 10, 4},  // second row
		{65, 12, 6}, // second row, third column
		{5, 0, -1},  // header
		{5, 1, -1},  // blank line above grid
		{5, 40, -1}, // below the grid
	}

	for _, tt := range tests {
		if got := g.tileAt(tt.x, tt.y); got != tt.want {
			t.Errorf("tileAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGridConfirmTile(t *testing.T) {
	tiles := []task.ViewModel{{
		ID:          "swimming",
		Title:       "Been swimming?",
		Kind:        task.KindConfirm,
		SuccessText: "2 of 26 done",
		Deadline:    "2025-12-31",
		Confirm:     &task.ConfirmView{Current: 2, Goal: 5},
	}}

	out := Grid(tiles, 7, testMeta(8, 1, 0), noFocus, noFocus, 120)

	if !strings.Contains(out, "2 / 5") {
		t.Error("confirm tile should show current/goal")
	}
	if !strings.Contains(out, "Been swimming?") {
		t.Error("tile should show its title")
	}
	if !strings.Contains(out, "until 2025-12-31") {
		t.Error("tile should show its deadline")
	}
	if strings.Contains(out, "goal reached") {
		t.Error("badge must not show before achievement")
	}
}

func TestGridAchievedBadgeAndTick(t *testing.T) {
	tiles := []task.ViewModel{{
		ID:        "swimming",
		Title:     "Been swimming?",
		Kind:      task.KindConfirm,
		Confirm:   &task.ConfirmView{Current: 5, Goal: 5},
		Achieved:  true,
		DoneToday: true,
		Locked:    true,
	}}

	out := Grid(tiles, 7, testMeta(8, 1, 0), noFocus, noFocus, 120)

	if !strings.Contains(out, "goal reached") {
		t.Error("achieved tile should show its badge")
	}
	if !strings.Contains(out, "✓") {
		t.Error("done-today tile should show a checkmark")
	}
}

func TestGridNumberDiffTile(t *testing.T) {
	tiles := []task.ViewModel{{
		ID:    "weight",
		Title: "Weigh in",
		Kind:  task.KindNumberDiff,
		Number: &task.NumberView{
			Start: fptr(92), Goal: fptr(80), Last: fptr(84.5),
			ProgressSinceStart: task.Delta{Value: 7.5, Defined: true, Good: true},
			RemainingToGoal:    task.Delta{Value: 4.5, Defined: true, Good: false},
		},
	}}

	out := Grid(tiles, 7, testMeta(8, 1, 0), noFocus, noFocus, 120)

	if !strings.Contains(out, "+7.50") {
		t.Error("tile should show the signed progress delta")
	}
	if !strings.Contains(out, "+4.50") {
		t.Error("tile should show the signed remaining delta")
	}
}

func TestGridNumberDiffNoLog(t *testing.T) {
	tiles := []task.ViewModel{{
		ID:     "weight",
		Title:  "Weigh in",
		Kind:   task.KindNumberDiff,
		Number: &task.NumberView{Start: fptr(92), Goal: fptr(80)},
	}}

	out := Grid(tiles, 7, testMeta(8, 1, 0), noFocus, noFocus, 120)

	if strings.Contains(out, "so far") || strings.Contains(out, "to go") {
		t.Error("no-log tile should not show delta rows")
	}
	if !strings.Contains(out, "Weigh in") {
		t.Error("no-log tile still shows its title")
	}
}

func TestGridUnknownKindDiagnostic(t *testing.T) {
	tiles := []task.ViewModel{{
		ID:      "x",
		Title:   "Mystery",
		Kind:    task.KindUnknown,
		RawKind: "pomodoro",
	}}

	out := Grid(tiles, 7, testMeta(8, 1, 0), noFocus, noFocus, 120)

	if !strings.Contains(out, "unknown task kind: pomodoro") {
		t.Error("unknown kind should render a diagnostic label")
	}
}

func TestGridKeepsShapeWithSpacers(t *testing.T) {
	tiles := []task.ViewModel{{
		ID: "only", Title: "Only tile", Kind: task.KindConfirm,
		Confirm: &task.ConfirmView{Current: 1, Goal: 2},
	}}

	full := Grid(make8(t), 0, testMeta(8, 8, 0), noFocus, noFocus, 120)
	short := Grid(tiles, 7, testMeta(8, 9, 1), noFocus, noFocus, 120)

	if gotF, gotS := lineCount(full), lineCount(short); gotF != gotS {
		t.Errorf("short page has %d lines, full page %d; the grid must not reflow", gotS, gotF)
	}
}

func TestSummary(t *testing.T) {
	vm := task.ViewModel{
		ID: "swimming", Title: "Been swimming?", Kind: task.KindConfirm,
		Confirm: &task.ConfirmView{Current: 2, Goal: 5},
	}
	if got := Summary(vm); got != "Been swimming?: 2/5" {
		t.Errorf("Summary = %q", got)
	}
}

func make8(t *testing.T) []task.ViewModel {
	t.Helper()
	out := make([]task.ViewModel, 8)
	for i := range out {
		out[i] = task.ViewModel{
			ID: "t", Title: "Tile", Kind: task.KindConfirm,
			Confirm: &task.ConfirmView{Current: 1, Goal: 2},
		}
	}
	return out
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
