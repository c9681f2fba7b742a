package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/config"
	"taskdeck/internal/task"
)

// ModalMode is the state of the single active dialog.
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalConfirm
	ModalNumberEntry
)

// Modal is the finite-state controller for the tile dialog. Exactly one
// modal can be open at a time; opening while another is open is rejected
// rather than stacked.
//
// In NumberEntry mode the controller's pending value is the single source of
// truth: the precise text field and the slider are both reflections of it.
// The field may hold an out-of-range value while editing and that unclamped
// value is what gets submitted; only the slider's visual position is clamped
// to the configured range.
type Modal struct {
	mode   ModalMode
	target task.ViewModel

	rng     config.SliderConfig
	input   textinput.Model
	slider  progress.Model
	pending float64
	valid   bool
}

// NewModal returns a closed modal controller using the given slider range.
func NewModal(rng config.SliderConfig) *Modal {
	input := textinput.New()
	input.CharLimit = 10
	input.Width = 10
	input.Prompt = ""

	slider := progress.New(progress.WithDefaultGradient())
	slider.Width = 34
	slider.ShowPercentage = false

	return &Modal{
		mode:   ModalClosed,
		rng:    rng,
		input:  input,
		slider: slider,
	}
}

// Mode returns the current dialog state.
func (m *Modal) Mode() ModalMode { return m.mode }

// IsOpen reports whether any dialog is showing.
func (m *Modal) IsOpen() bool { return m.mode != ModalClosed }

// Target returns the tile the open dialog acts on.
func (m *Modal) Target() task.ViewModel { return m.target }

// OpenFor opens the dialog appropriate for the tile's kind. It reports false
// when nothing opened: a modal is already showing, the tile is locked, or
// the kind is unknown.
func (m *Modal) OpenFor(vm task.ViewModel) bool {
	if m.mode != ModalClosed || !vm.Interactive() {
		return false
	}

	switch vm.Kind {
	case task.KindConfirm:
		m.mode = ModalConfirm
		m.target = vm
		return true

	case task.KindNumberDiff:
		m.mode = ModalNumberEntry
		m.target = vm
		m.SetValue(m.seedValue(vm))
		m.input.Focus()
		m.input.CursorEnd()
		return true
	}
	return false
}

// seedValue picks the initial pending value: the most recent logged value,
// falling back to the start value, falling back to the slider minimum.
func (m *Modal) seedValue(vm task.ViewModel) float64 {
	if vm.Number != nil {
		if vm.Number.Last != nil {
			return *vm.Number.Last
		}
		if vm.Number.Start != nil {
			return *vm.Number.Start
		}
	}
	return m.rng.Min
}

// Close dismisses the dialog, discarding any pending edit.
func (m *Modal) Close() {
	m.mode = ModalClosed
	m.target = task.ViewModel{}
	m.input.Blur()
	m.input.SetValue("")
	m.pending = 0
	m.valid = false
}

// SetValue writes v through to the pending value and both input widgets.
func (m *Modal) SetValue(v float64) {
	m.pending = v
	m.valid = true
	m.input.SetValue(task.FormatNumber(v))
	m.input.CursorEnd()
}

// Adjust nudges the value by delta along the slider, clamping the result to
// the configured range. The slider write-path rebases on the clamped value
// so stepping from an out-of-range field entry re-enters the range.
func (m *Modal) Adjust(delta float64) {
	m.SetValue(m.clamp(m.Clamped() + delta))
}

// HandleInput feeds a key into the precise text field and re-parses it. The
// field text is deliberately not rewritten on parse: mid-edit states like
// "79." must survive the round trip.
func (m *Modal) HandleInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if v, err := parseValue(m.input.Value()); err == nil {
		m.pending = v
		m.valid = true
	} else {
		m.valid = false
	}
	return cmd
}

// Value returns the value a save would submit: the unclamped precise-field
// value. ok is false when the field does not currently parse.
func (m *Modal) Value() (float64, bool) {
	return m.pending, m.valid
}

// Clamped returns the pending value forced into the slider range; this is
// what the slider displays.
func (m *Modal) Clamped() float64 {
	return m.clamp(m.pending)
}

// InRange reports whether the pending value sits inside the slider range.
func (m *Modal) InRange() bool {
	return m.valid && m.pending >= m.rng.Min && m.pending <= m.rng.Max
}

// SliderPercent maps the clamped value onto [0, 1] for the progress bar.
func (m *Modal) SliderPercent() float64 {
	span := m.rng.Max - m.rng.Min
	if span <= 0 {
		return 0
	}
	return (m.Clamped() - m.rng.Min) / span
}

func (m *Modal) clamp(v float64) float64 {
	if v < m.rng.Min {
		return m.rng.Min
	}
	if v > m.rng.Max {
		return m.rng.Max
	}
	return v
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// The kiosk lives in kitchens; accept a comma decimal separator.
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
