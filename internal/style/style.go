package style

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim                     // Faint/dim text
	AttrItalic                  // Italic text
	AttrBlink                   // Blinking text (rarely supported)
	AttrReverse                 // Reverse video (swap fg/bg)
	AttrStrikethrough           // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// UnderlineStyle selects how a range of text is underlined.
type UnderlineStyle uint8

const (
	// UnderlineNone draws no underline.
	UnderlineNone UnderlineStyle = iota

	// UnderlineStraight draws a single straight line.
	UnderlineStraight

	// UnderlineWavy draws a wavy/squiggly line (diagnostics).
	UnderlineWavy

	// UnderlineDotted draws a dotted line.
	UnderlineDotted

	// UnderlineDashed draws a dashed line.
	UnderlineDashed
)

// String returns the string representation of the underline style.
func (u UnderlineStyle) String() string {
	switch u {
	case UnderlineNone:
		return "none"
	case UnderlineStraight:
		return "straight"
	case UnderlineWavy:
		return "wavy"
	case UnderlineDotted:
		return "dotted"
	case UnderlineDashed:
		return "dashed"
	default:
		return "unknown"
	}
}

// Style represents the visual style of text.
type Style struct {
	Foreground     Color
	Background     Color
	Underline      UnderlineStyle
	UnderlineColor Color
	Attributes     Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{
		Foreground:     ColorDefault,
		Background:     ColorDefault,
		UnderlineColor: ColorDefault,
	}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{
		Foreground:     fg,
		Background:     ColorDefault,
		UnderlineColor: ColorDefault,
	}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithUnderline returns a new style underlined in the given style and color.
func (s Style) WithUnderline(us UnderlineStyle, color Color) Style {
	s.Underline = us
	s.UnderlineColor = color
	return s
}

// WithAttributes returns a new style with the given attributes.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	return s
}

// Bold returns a new style with bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns a new style with dim attribute added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Italic returns a new style with italic attribute added.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Reverse returns a new style with reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Strikethrough returns a new style with strikethrough attribute added.
func (s Style) Strikethrough() Style {
	s.Attributes |= AttrStrikethrough
	return s
}

// Merge combines two styles. Set fields of other win; attributes are
// additive. Used to paint decorations over base text, low priority
// first so later (higher priority) styles draw on top.
func (s Style) Merge(other Style) Style {
	result := s

	if !other.Foreground.IsDefault() {
		result.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		result.Background = other.Background
	}
	if other.Underline != UnderlineNone {
		result.Underline = other.Underline
		result.UnderlineColor = other.UnderlineColor
	}
	result.Attributes |= other.Attributes

	return result
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Underline == other.Underline &&
		s.UnderlineColor.Equals(other.UnderlineColor) &&
		s.Attributes == other.Attributes
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() &&
		s.Background.IsDefault() &&
		s.Underline == UnderlineNone &&
		s.Attributes == AttrNone
}
