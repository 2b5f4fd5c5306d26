package overlay

import "sort"

// Store is the authoritative collection of overlays for one buffer,
// kept ascending by priority. All operations are total: removals and
// queries that match nothing are no-ops, never errors.
//
// Pointers returned by the query methods reference the store's backing
// slice and stay valid only until the next mutating call.
type Store struct {
	overlays []Overlay
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts an overlay and re-sorts the store ascending by priority.
// The sort is stable against the current physical order, so
// equal-priority overlays keep their relative order from before the
// call. A heap or bucket structure would not give that tie-break
// guarantee; keep the flat re-sorted slice.
func (s *Store) Add(o Overlay) {
	s.overlays = append(s.overlays, o)
	sort.SliceStable(s.overlays, func(i, j int) bool {
		return s.overlays[i].Priority < s.overlays[j].Priority
	})
}

// RemoveByID deletes every overlay whose id equals id. Overlays with
// no id are never matched. No-op if nothing matches.
func (s *Store) RemoveByID(id string) {
	if id == "" {
		return
	}
	s.retain(func(o Overlay) bool { return o.ID != id })
}

// RemoveInRange deletes every overlay overlapping rng.
func (s *Store) RemoveInRange(rng Range) {
	s.retain(func(o Overlay) bool { return !o.Overlaps(rng) })
}

// Clear empties the store.
func (s *Store) Clear() {
	s.overlays = s.overlays[:0]
}

// AtPosition returns all overlays covering pos in ascending-priority
// order. No additional sort is performed at query time.
func (s *Store) AtPosition(pos int) []*Overlay {
	var result []*Overlay
	for i := range s.overlays {
		if s.overlays[i].Contains(pos) {
			result = append(result, &s.overlays[i])
		}
	}
	return result
}

// InRange returns all overlays overlapping rng in ascending-priority
// order.
func (s *Store) InRange(rng Range) []*Overlay {
	var result []*Overlay
	for i := range s.overlays {
		if s.overlays[i].Overlaps(rng) {
			result = append(result, &s.overlays[i])
		}
	}
	return result
}

// GetByID returns the first overlay (in store order) with the given
// id, or nil. The pointer may be used for in-place updates such as
// extending a range. Changing Priority through it leaves the store
// order stale; use SetPriority for that.
func (s *Store) GetByID(id string) *Overlay {
	if id == "" {
		return nil
	}
	for i := range s.overlays {
		if s.overlays[i].ID == id {
			return &s.overlays[i]
		}
	}
	return nil
}

// SetPriority updates the priority of the first overlay with the given
// id and restores the sort order. Returns false if no overlay matches.
func (s *Store) SetPriority(id string, priority int) bool {
	o := s.GetByID(id)
	if o == nil {
		return false
	}
	o.Priority = priority
	sort.SliceStable(s.overlays, func(i, j int) bool {
		return s.overlays[i].Priority < s.overlays[j].Priority
	})
	return true
}

// Len returns the number of overlays in the store.
func (s *Store) Len() int {
	return len(s.overlays)
}

// IsEmpty returns true if the store holds no overlays.
func (s *Store) IsEmpty() bool {
	return len(s.overlays) == 0
}

// All returns the full ordered sequence for bulk rendering. The slice
// is the store's backing storage; callers must not mutate it.
func (s *Store) All() []Overlay {
	return s.overlays
}

// retain keeps only the overlays for which keep returns true,
// preserving their relative order.
func (s *Store) retain(keep func(Overlay) bool) {
	kept := s.overlays[:0]
	for _, o := range s.overlays {
		if keep(o) {
			kept = append(kept, o)
		}
	}
	s.overlays = kept
}
