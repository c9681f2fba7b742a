// Package task normalizes raw backend task records into display-ready view
// models. Everything in here is a pure function of its inputs; the view model
// list is rebuilt wholesale on every refresh and never mutated in place.
package task

import (
	"strings"
	"time"
)

// Kind is the task category that determines display and interaction
// semantics.
type Kind int

const (
	// KindConfirm is a yes/no daily check-in counted toward a goal count.
	KindConfirm Kind = iota
	// KindNumberDiff is a numeric log tracked against an upper-bound goal
	// (e.g. a target weight).
	KindNumberDiff
	// KindUnknown marks a record whose kind string we do not recognize.
	// Such tiles render a diagnostic label and are never interactive.
	KindUnknown
)

// ParseKind resolves a raw kind string. Matching is case-insensitive and
// accepts the legacy aliases for the counter kind. An empty string maps to
// KindConfirm: older backends omit the field for confirm tasks.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "confirm", "boolean", "count":
		return KindConfirm
	case "number_diff", "numberdiff":
		return KindNumberDiff
	default:
		return KindUnknown
	}
}

// Delta is a signed numeric difference with a good/bad tag for display.
// Undefined deltas (missing inputs) render as "--".
type Delta struct {
	Value   float64
	Defined bool
	Good    bool
}

// String renders the delta with an explicit sign and two decimals.
func (d Delta) String() string {
	if !d.Defined {
		return Undefined
	}
	return FormatSigned(d.Value)
}

// ConfirmView carries the fields specific to confirm-kind tiles.
type ConfirmView struct {
	Current float64
	Goal    float64
}

// NumberView carries the fields specific to numberDiff-kind tiles.
type NumberView struct {
	Start    *float64
	Goal     *float64
	Last     *float64
	LastDate string

	// ProgressSinceStart is start - last (positive is good).
	ProgressSinceStart Delta
	// RemainingToGoal is last - goal (<= 0 means the goal is met).
	RemainingToGoal Delta
}

// HasLog reports whether a value has ever been logged for this task.
func (n NumberView) HasLog() bool { return n.Last != nil }

// ViewModel is the derived, display-ready form of one task record. It is
// recomputed fresh on every refresh cycle and never cached across frames, so
// a corrected upstream record can un-achieve a tile.
type ViewModel struct {
	ID          string
	Title       string
	Kind        Kind
	RawKind     string
	SuccessText string
	Deadline    string

	DoneToday bool
	Achieved  bool
	Locked    bool

	// Exactly one of these is non-nil for the known kinds; both are nil
	// for KindUnknown.
	Confirm *ConfirmView
	Number  *NumberView
}

// Interactive reports whether activating the tile should open a modal.
func (v ViewModel) Interactive() bool {
	return v.Kind != KindUnknown && !v.Locked
}

// Normalize derives the view model for one raw record. today is the
// client-local calendar date used to interpret log dates; calling Normalize
// twice with the same inputs yields identical results.
func Normalize(raw RawTask, today time.Time) ViewModel {
	vm := ViewModel{
		ID:          raw.ID,
		Title:       raw.Title,
		Kind:        ParseKind(raw.Kind),
		RawKind:     raw.Kind,
		SuccessText: raw.SuccessText,
		Deadline:    raw.Deadline,
		DoneToday:   raw.DoneToday,
	}

	switch vm.Kind {
	case KindConfirm:
		cv := &ConfirmView{}
		if raw.CurrentCount != nil {
			cv.Current = *raw.CurrentCount
		}
		if raw.Goal != nil {
			cv.Goal = *raw.Goal
		}
		vm.Confirm = cv
		vm.Achieved = cv.Goal > 0 && cv.Current >= cv.Goal

	case KindNumberDiff:
		nv := &NumberView{
			Start:    raw.Start,
			Goal:     raw.Goal,
			Last:     raw.LastValue,
			LastDate: raw.LastValueDate,
		}
		if nv.Start != nil && nv.Last != nil {
			d := *nv.Start - *nv.Last
			nv.ProgressSinceStart = Delta{Value: d, Defined: true, Good: d >= 0}
		}
		if nv.Last != nil && nv.Goal != nil {
			d := *nv.Last - *nv.Goal
			nv.RemainingToGoal = Delta{Value: d, Defined: true, Good: d <= 0}
		}
		vm.Number = nv
		// Missing inputs default to not achieved: during the day's
		// first log the record can be partial.
		vm.Achieved = nv.Last != nil && nv.Goal != nil && *nv.Last <= *nv.Goal
		if !vm.DoneToday && nv.LastDate != "" {
			vm.DoneToday = nv.LastDate == today.Format("2006-01-02")
		}
	}

	// The backend may assert achievement directly; its word wins over the
	// derived value.
	if raw.Achieved != nil {
		vm.Achieved = *raw.Achieved
	}

	vm.Locked = vm.Achieved || vm.DoneToday
	return vm
}

// NormalizeAll maps Normalize over a full fetched snapshot, preserving order.
func NormalizeAll(raws []RawTask, today time.Time) []ViewModel {
	out := make([]ViewModel, len(raws))
	for i, r := range raws {
		out[i] = Normalize(r, today)
	}
	return out
}
