// Package gesture turns pointer drag sessions on the grid surface into
// page-advance intents. The router only classifies movement; it knows nothing
// about rendering or what a page is.
package gesture

import "time"

// Direction is a page-advance intent. The values feed the paginator's
// Advance directly.
type Direction int

const (
	// Forward advances to the next page (drag left).
	Forward Direction = 1
	// Back returns to the previous page (drag right).
	Back Direction = -1
)

// Thresholds qualify a drag as a page swipe. A session emits an intent only
// when the horizontal displacement exceeds MinDistance, dominates the
// vertical displacement by Ratio, and (when MaxDuration is non-zero)
// completed within MaxDuration. MaxDuration of zero disables the time bound.
type Thresholds struct {
	MinDistance float64
	Ratio       float64
	MaxDuration time.Duration
}

// DefaultThresholds returns the classic kiosk tuning: 60 units of travel,
// 1.2x horizontal dominance, 600ms.
func DefaultThresholds() Thresholds {
	return Thresholds{MinDistance: 60, Ratio: 1.2, MaxDuration: 600 * time.Millisecond}
}

// Router consumes one pointer session at a time (start, moves, end) and
// emits at most one page-advance intent per session. Session state is
// ephemeral: it is reset on end or cancel regardless of outcome, so a
// partial drag never leaks into the next session.
type Router struct {
	th      Thresholds
	enabled bool

	active  bool
	x0, y0  float64
	dx, dy  float64
	started time.Time
}

// NewRouter returns a router with the given thresholds, enabled.
func NewRouter(th Thresholds) *Router {
	return &Router{th: th, enabled: true}
}

// SetEnabled gates intent emission. A disabled router still tracks sessions
// so that enabling mid-session cannot conjure an intent from stale deltas;
// it just never emits.
func (r *Router) SetEnabled(enabled bool) { r.enabled = enabled }

// Enabled reports whether the router may emit intents.
func (r *Router) Enabled() bool { return r.enabled }

// Active reports whether a pointer session is in progress.
func (r *Router) Active() bool { return r.active }

// Start opens a session at the given coordinates.
func (r *Router) Start(x, y float64, at time.Time) {
	r.active = true
	r.x0, r.y0 = x, y
	r.dx, r.dy = 0, 0
	r.started = at
}

// Move records the current pointer position for the open session. Moves
// without a session are ignored: terminals can deliver motion events after a
// release.
func (r *Router) Move(x, y float64) {
	if !r.active {
		return
	}
	r.dx = x - r.x0
	r.dy = y - r.y0
}

// End closes the session and classifies it. It returns the page-advance
// intent and true when the drag qualified; the session state is reset either
// way.
func (r *Router) End(at time.Time) (Direction, bool) {
	if !r.active {
		return 0, false
	}
	dx, dy := r.dx, r.dy
	elapsed := at.Sub(r.started)
	r.reset()

	if !r.enabled {
		return 0, false
	}

	ax, ay := abs(dx), abs(dy)
	if ax <= r.th.MinDistance || ax <= ay*r.th.Ratio {
		return 0, false
	}
	if r.th.MaxDuration > 0 && elapsed > r.th.MaxDuration {
		return 0, false
	}

	if dx < 0 {
		return Forward, true
	}
	return Back, true
}

// Cancel aborts the session without emitting.
func (r *Router) Cancel() { r.reset() }

func (r *Router) reset() {
	r.active = false
	r.dx, r.dy = 0, 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
