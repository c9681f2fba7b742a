// Package tui is the kiosk's terminal user interface: a fixed grid of task
// tiles with swipe paging, modal check-in dialogs, and a polling refresh
// loop.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/gesture"
	"taskdeck/internal/paging"
	"taskdeck/internal/task"
	"taskdeck/internal/tui/styles"
)

// App is the main Bubble Tea model. It owns all view state explicitly: the
// normalized tile list of the latest snapshot, the paginator, the gesture
// router, and the modal controller. Tiles are rebuilt wholesale from every
// fetch; nothing here trusts a previous frame.
type App struct {
	// Dependencies
	client *api.Client
	cfg    *config.Config
	logger *log.Logger

	// Collaborating state machines
	pager *paging.Paginator
	swipe *gesture.Router
	modal *Modal

	// Latest snapshot
	tiles    []task.ViewModel
	today    time.Time
	haveData bool

	// Grid interaction state
	focus    int // page-relative focused tile
	pressed  int // page-relative press-flash tile, -1 when none
	pressSeq int
	pressX   int
	pressY   int

	// Transient UI state
	loading   bool
	saving    bool
	status    string
	statusSeq int
	spinner   spinner.Model

	// Tiles already announced as achieved, so a notification fires once
	// per achievement per session.
	notified map[string]bool

	keymap Keymap
	width  int
	height int
}

// NewApp creates the kiosk model. store may be nil to disable page
// persistence; logger may be nil to discard logs.
func NewApp(client *api.Client, cfg *config.Config, store paging.Store, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	pager := paging.New(cfg.UI.PageSize, cfg.UI.DeploymentKey, store)
	pager.Restore()

	swipe := gesture.NewRouter(gesture.Thresholds{
		MinDistance: cfg.Swipe.MinCells,
		Ratio:       cfg.Swipe.Ratio,
		MaxDuration: cfg.SwipeMaxDuration(),
	})

	return &App{
		client:   client,
		cfg:      cfg,
		logger:   logger,
		pager:    pager,
		swipe:    swipe,
		modal:    NewModal(cfg.Slider),
		today:    localToday(),
		pressed:  -1,
		loading:  true,
		spinner:  s,
		notified: make(map[string]bool),
		keymap:   DefaultKeymap(),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.fetchCmd(),
		a.tickCmd(),
	)
}

// visible returns the tiles on the current page plus the spacer count.
func (a *App) visible() ([]task.ViewModel, int) {
	return paging.Window(a.pager, a.tiles)
}

// syncSwipe recomputes whether drags may page: never while a modal is open,
// never when everything fits on one page.
func (a *App) syncSwipe() {
	a.swipe.SetEnabled(!a.modal.IsOpen() && a.pager.Multipage())
}

// clampFocus keeps the focused tile inside the current page's tile count.
func (a *App) clampFocus() {
	page, _ := a.visible()
	if len(page) == 0 {
		a.focus = 0
		return
	}
	if a.focus >= len(page) {
		a.focus = len(page) - 1
	}
	if a.focus < 0 {
		a.focus = 0
	}
}

// toast shows a transient status message.
func (a *App) toast(msg string) tea.Cmd {
	a.status = msg
	a.statusSeq++
	return statusClearCmd(a.statusSeq)
}

// flash triggers press feedback on a page-relative tile index.
func (a *App) flash(idx int) tea.Cmd {
	a.pressed = idx
	a.pressSeq++
	return flashClearCmd(a.pressSeq)
}

func localToday() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
