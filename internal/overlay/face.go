package overlay

import "github.com/brackenedit/bracken/internal/style"

// Face describes the visual appearance of an overlay. It is a closed
// set of variants; the marker method keeps the set sealed to this
// package. Faces are immutable value types with no behavior; mapping
// a Face to a concrete terminal style is the renderer's job.
type Face interface {
	face()
}

// Underline underlines the range in the given style.
type Underline struct {
	Color style.Color
	Style style.UnderlineStyle
}

// Background tints the background of the range.
type Background struct {
	Color style.Color
}

// Foreground tints the text of the range.
type Foreground struct {
	Color style.Color
}

// Styled applies a full style bundle, for decorations needing more
// than one attribute at once.
type Styled struct {
	Style style.Style
}

func (Underline) face()  {}
func (Background) face() {}
func (Foreground) face() {}
func (Styled) face()     {}
