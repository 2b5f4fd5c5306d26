package overlay

import "fmt"

// Range is a half-open byte interval [Start, End) into one buffer.
// Start <= End is a precondition; it is not validated and query
// behavior for an inverted range is unspecified.
type Range struct {
	Start int
	End   int
}

// NewRange creates a range covering [start, end).
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Contains returns true if the position is within the range.
// The end offset itself is excluded.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

// Overlaps returns true if two ranges strictly intersect.
// Touching ranges ([5,10) and [10,15)) never overlap. An empty range
// overlaps only ranges that properly straddle its position: [5,5)
// overlaps [4,6) but not [5,9) or [2,5).
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// IsEmpty returns true if the range covers no positions.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int {
	return r.End - r.Start
}

// String returns the range in interval notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
