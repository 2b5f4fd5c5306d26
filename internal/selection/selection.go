// Package selection maintains the selection wash for a buffer.
package selection

import "github.com/brackenedit/bracken/internal/overlay"

// WashID is the overlay id used for the selection background.
const WashID = "selection"

// Tracker keeps at most one selection decoration in the overlay store.
// Setting a new selection replaces the previous one.
type Tracker struct {
	store   *overlay.Store
	presets overlay.Presets
	active  bool
	rng     overlay.Range
}

// NewTracker creates a tracker writing into store.
func NewTracker(store *overlay.Store, presets overlay.Presets) *Tracker {
	return &Tracker{
		store:   store,
		presets: presets,
	}
}

// Set replaces the selection with rng. An empty range clears it.
func (t *Tracker) Set(rng overlay.Range) {
	t.store.RemoveByID(WashID)

	if rng.IsEmpty() {
		t.active = false
		t.rng = overlay.Range{}
		return
	}

	t.store.Add(t.presets.Selection(rng).WithID(WashID))
	t.active = true
	t.rng = rng
}

// Clear removes the selection.
func (t *Tracker) Clear() {
	t.store.RemoveByID(WashID)
	t.active = false
	t.rng = overlay.Range{}
}

// Active reports whether a selection is set, and its range when so.
func (t *Tracker) Active() (overlay.Range, bool) {
	return t.rng, t.active
}
