package tui

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the kiosk.
type Keymap struct {
	// Grid navigation
	NextPage  Key
	PrevPage  Key
	NextTile  Key
	PrevTile  Key
	Activate  Key
	Activate2 Key

	// Actions
	Refresh Key
	Copy    Key
	Quit    Key

	// Modal
	Yes      Key
	No       Key
	Cancel   Key
	Save     Key
	StepUp   Key
	StepDown Key
	CoarseUp Key
	CoarseDn Key
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		NextPage:  Key{Key: "right", Help: "next page"},
		PrevPage:  Key{Key: "left", Help: "previous page"},
		NextTile:  Key{Key: "tab", Help: "next tile"},
		PrevTile:  Key{Key: "shift+tab", Help: "previous tile"},
		Activate:  Key{Key: "enter", Help: "open tile"},
		Activate2: Key{Key: " ", Help: "open tile"},

		Refresh: Key{Key: "r", Help: "reload"},
		Copy:    Key{Key: "y", Help: "copy tile summary"},
		Quit:    Key{Key: "q", Help: "quit"},

		Yes:      Key{Key: "y", Help: "yes"},
		No:       Key{Key: "n", Help: "no"},
		Cancel:   Key{Key: "esc", Help: "cancel"},
		Save:     Key{Key: "enter", Help: "save"},
		StepUp:   Key{Key: "up", Help: "increase"},
		StepDown: Key{Key: "down", Help: "decrease"},
		CoarseUp: Key{Key: "pgup", Help: "increase (coarse)"},
		CoarseDn: Key{Key: "pgdown", Help: "decrease (coarse)"},
	}
}
