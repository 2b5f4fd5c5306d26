package render

import (
	"unicode/utf8"

	"github.com/brackenedit/bracken/internal/overlay"
	"github.com/brackenedit/bracken/internal/style"
)

// Line renders one line of text to cells, compositing the overlays
// that cover it. lineStart is the byte offset of the line's first
// byte in the buffer; overlays are queried from the store for exactly
// the line's span and applied in the returned (ascending priority)
// order, low first, so higher priorities draw over.
func Line(text string, lineStart int, base style.Style, store *overlay.Store) []style.Cell {
	span := overlay.NewRange(lineStart, lineStart+len(text))
	return CompositeLine(text, lineStart, base, store.InRange(span))
}

// CompositeLine styles each rune of text by merging the faces of the
// overlays containing its byte offset onto base, in the given order.
func CompositeLine(text string, lineStart int, base style.Style, overlays []*overlay.Overlay) []style.Cell {
	cells := make([]style.Cell, 0, utf8.RuneCountInString(text))

	off := lineStart
	for _, r := range text {
		st := base
		for _, o := range overlays {
			if o.Contains(off) {
				st = st.Merge(FaceStyle(o.Face))
			}
		}
		cells = append(cells, style.NewStyledCell(r, st))
		off += utf8.RuneLen(r)
	}

	return cells
}
