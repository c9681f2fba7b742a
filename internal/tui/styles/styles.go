// Package styles provides Lip Gloss styles for the kiosk TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for the focused tile
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Header styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	PageIndicator = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Tile styles
var (
	// Tile is the base frame for a task tile
	Tile = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// TileFocused marks the keyboard-focused tile
	TileFocused = Tile.
			BorderForeground(Highlight).
			Bold(true)

	// TileLocked dims tiles that accept no interaction today
	TileLocked = Tile.
			Faint(true)

	// TilePressed is the brief press-flash, shown for taps on any tile,
	// locked ones included
	TilePressed = Tile.
			BorderForeground(WarningColor)

	// TileSpacer keeps the grid shape fixed on short pages
	TileSpacer = lipgloss.NewStyle().
			BorderStyle(lipgloss.HiddenBorder()).
			Padding(0, 1)

	TileTitle = lipgloss.NewStyle().
			Bold(true)

	TileTick = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	TileSuccessText = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	TileMeta = lipgloss.NewStyle().
			Foreground(Subtle)

	TileBadge = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	TileDiagnostic = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// ValueGood / ValueBad tag the signed deltas on numberDiff tiles
	ValueGood = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ValueBad = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Modal styles
var (
	ModalFrame = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	ModalHint = lipgloss.NewStyle().
			Foreground(Subtle)

	SliderValue = lipgloss.NewStyle().
			Bold(true)

	SliderOutOfRange = lipgloss.NewStyle().
				Bold(true).
				Foreground(WarningColor)
)

// Status bar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	StatusToast = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)
