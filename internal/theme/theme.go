// Package theme provides named decoration colors, TOML file loading,
// and live reload on file change.
package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/brackenedit/bracken/internal/overlay"
	"github.com/brackenedit/bracken/internal/style"
)

// Theme names the colors the decoration engine draws with.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Background is the editor background color.
	Background style.Color

	// Foreground is the default text color.
	Foreground style.Color

	// Alert is the error decoration color.
	Alert style.Color

	// Caution is the warning decoration color.
	Caution style.Color

	// Notice is the informational decoration color.
	Notice style.Color

	// Muted is the hint decoration color.
	Muted style.Color

	// Selection is the selection background tint.
	Selection style.Color

	// Highlight is the search-match background tint.
	Highlight style.Color
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Name:       "default",
		Background: style.ColorFromRGB(30, 30, 46),
		Foreground: style.ColorFromRGB(205, 214, 244),
		Alert:      style.ColorRed,
		Caution:    style.ColorYellow,
		Notice:     style.ColorBlue,
		Muted:      style.ColorGray,
		Selection:  style.ColorFromRGB(38, 79, 120),
		Highlight:  style.ColorFromRGB(72, 72, 0),
	}
}

// Presets binds the theme's colors to the overlay preset factory.
func (t Theme) Presets() overlay.Presets {
	return overlay.Presets{
		Alert:     t.Alert,
		Caution:   t.Caution,
		Notice:    t.Notice,
		Muted:     t.Muted,
		Wash:      t.Selection,
		Highlight: t.Highlight,
	}
}

// BaseStyle returns the theme's default text style.
func (t Theme) BaseStyle() style.Style {
	return style.NewStyle(t.Foreground).WithBackground(t.Background)
}

// InactiveSelection returns the selection tint faded toward the
// background, used when a window loses focus.
func (t Theme) InactiveSelection() style.Color {
	return Blend(t.Selection, t.Background, 0.5)
}

// Blend mixes two colors perceptually (Lab space). amount 0 returns a,
// 1 returns b. Indexed and default colors cannot be blended and return
// a unchanged.
func Blend(a, b style.Color, amount float64) style.Color {
	if a.Indexed || a.Default || b.Indexed || b.Default {
		return a
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendLab(cb, amount).Clamped()
	return style.ColorFromRGB(uint8(m.R*255+0.5), uint8(m.G*255+0.5), uint8(m.B*255+0.5))
}
