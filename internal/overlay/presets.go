package overlay

import "github.com/brackenedit/bracken/internal/style"

// Preset priority bands. Diagnostics always render above the ambient
// selection and search washes, and higher severity wins when ranges
// coincide.
const (
	PriorityError       = 10
	PriorityWarning     = 5
	PriorityInfo        = 3
	PriorityHint        = 1
	PrioritySearchMatch = -5
	PrioritySelection   = -10
)

// Presets builds pre-configured overlays for the common semantic
// categories, each with a fixed face and priority.
type Presets struct {
	// Alert is the error underline color.
	Alert style.Color
	// Caution is the warning underline color.
	Caution style.Color
	// Notice is the informational underline color.
	Notice style.Color
	// Muted is the hint underline color.
	Muted style.Color
	// Wash is the selection background tint.
	Wash style.Color
	// Highlight is the search-match background tint.
	Highlight style.Color
}

// DefaultPresets returns the built-in category colors.
func DefaultPresets() Presets {
	return Presets{
		Alert:     style.ColorRed,
		Caution:   style.ColorYellow,
		Notice:    style.ColorBlue,
		Muted:     style.ColorGray,
		Wash:      style.ColorFromRGB(38, 79, 120),
		Highlight: style.ColorFromRGB(72, 72, 0),
	}
}

// Error creates an error overlay: wavy underline, priority 10.
// An empty message means no tooltip.
func (p Presets) Error(rng Range, message string) Overlay {
	return NewWithPriority(rng, Underline{Color: p.Alert, Style: style.UnderlineWavy}, PriorityError).
		WithMessage(message)
}

// Warning creates a warning overlay: wavy underline, priority 5.
func (p Presets) Warning(rng Range, message string) Overlay {
	return NewWithPriority(rng, Underline{Color: p.Caution, Style: style.UnderlineWavy}, PriorityWarning).
		WithMessage(message)
}

// Info creates an informational overlay: wavy underline, priority 3.
func (p Presets) Info(rng Range, message string) Overlay {
	return NewWithPriority(rng, Underline{Color: p.Notice, Style: style.UnderlineWavy}, PriorityInfo).
		WithMessage(message)
}

// Hint creates a hint overlay: dotted underline, priority 1.
func (p Presets) Hint(rng Range, message string) Overlay {
	return NewWithPriority(rng, Underline{Color: p.Muted, Style: style.UnderlineDotted}, PriorityHint).
		WithMessage(message)
}

// Selection creates a selection wash: background tint, priority -10,
// so it sits under every other overlay. Carries no message.
func (p Presets) Selection(rng Range) Overlay {
	return NewWithPriority(rng, Background{Color: p.Wash}, PrioritySelection)
}

// SearchMatch creates a search-result wash: background tint,
// priority -5. Carries no message.
func (p Presets) SearchMatch(rng Range) Overlay {
	return NewWithPriority(rng, Background{Color: p.Highlight}, PrioritySearchMatch)
}

// Error creates an error overlay with the default colors.
func Error(rng Range, message string) Overlay {
	return DefaultPresets().Error(rng, message)
}

// Warning creates a warning overlay with the default colors.
func Warning(rng Range, message string) Overlay {
	return DefaultPresets().Warning(rng, message)
}

// Info creates an informational overlay with the default colors.
func Info(rng Range, message string) Overlay {
	return DefaultPresets().Info(rng, message)
}

// Hint creates a hint overlay with the default colors.
func Hint(rng Range, message string) Overlay {
	return DefaultPresets().Hint(rng, message)
}

// Selection creates a selection wash with the default colors.
func Selection(rng Range) Overlay {
	return DefaultPresets().Selection(rng)
}

// SearchMatch creates a search-result wash with the default colors.
func SearchMatch(rng Range) Overlay {
	return DefaultPresets().SearchMatch(rng)
}
