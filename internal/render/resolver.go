// Package render turns overlays into styled cells. It resolves Face
// variants to concrete styles and composites overlay query results
// over lines of text, painting in ascending-priority order so higher
// priorities draw on top.
package render

import (
	"github.com/brackenedit/bracken/internal/overlay"
	"github.com/brackenedit/bracken/internal/style"
)

// FaceStyle resolves a Face variant to a concrete style. Unset fields
// stay default so Merge only touches what the face specifies.
func FaceStyle(face overlay.Face) style.Style {
	switch f := face.(type) {
	case overlay.Underline:
		return style.DefaultStyle().WithUnderline(f.Style, f.Color)
	case overlay.Background:
		return style.DefaultStyle().WithBackground(f.Color)
	case overlay.Foreground:
		return style.DefaultStyle().WithForeground(f.Color)
	case overlay.Styled:
		return f.Style
	default:
		return style.DefaultStyle()
	}
}
