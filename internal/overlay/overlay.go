package overlay

// Overlay is a single visual decoration over a byte range of a buffer.
type Overlay struct {
	// Range is the half-open byte range this overlay covers.
	Range Range

	// Face is the visual appearance of the overlay.
	Face Face

	// Priority controls z-ordering; higher values render on top.
	// Negative values are valid and used for background washes.
	Priority int

	// ID is an optional identifier, empty when absent. IDs are not
	// unique: overlays sharing an id form a removal group.
	ID string

	// Message is an optional tooltip shown on interaction, empty
	// when absent. Orthogonal to rendering.
	Message string
}

// New creates an overlay with default priority (0).
func New(rng Range, face Face) Overlay {
	return Overlay{Range: rng, Face: face}
}

// NewWithPriority creates an overlay with a specific priority.
func NewWithPriority(rng Range, face Face, priority int) Overlay {
	return Overlay{Range: rng, Face: face, Priority: priority}
}

// NewWithID creates an overlay with an id for later reference.
func NewWithID(rng Range, face Face, id string) Overlay {
	return Overlay{Range: rng, Face: face, ID: id}
}

// WithPriority returns a copy with the given priority.
func (o Overlay) WithPriority(priority int) Overlay {
	o.Priority = priority
	return o
}

// WithID returns a copy with the given id.
func (o Overlay) WithID(id string) Overlay {
	o.ID = id
	return o
}

// WithMessage returns a copy with the given tooltip message.
func (o Overlay) WithMessage(message string) Overlay {
	o.Message = message
	return o
}

// Contains returns true if the overlay covers the position.
func (o Overlay) Contains(pos int) bool {
	return o.Range.Contains(pos)
}

// Overlaps returns true if the overlay shares any position with rng.
func (o Overlay) Overlaps(rng Range) bool {
	return o.Range.Overlaps(rng)
}
