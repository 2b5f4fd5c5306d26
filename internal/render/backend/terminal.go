// Package backend paints styled cells to the terminal through tcell.
package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/brackenedit/bracken/internal/style"
)

// Terminal is a tcell-backed output surface.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init initializes the screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// SetCell draws a single cell.
func (t *Terminal) SetCell(x, y int, cell style.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

// SetLine draws a row of cells starting at (x, y), honoring cell widths.
func (t *Terminal) SetLine(x, y int, cells []style.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range cells {
		t.screen.SetContent(x, y, c.Rune, nil, convertStyle(c.Style))
		x += c.Width
	}
}

// Clear erases the screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// WaitKey blocks until a key is pressed, ignoring other events.
func (t *Terminal) WaitKey() {
	for {
		ev := t.screen.PollEvent()
		switch ev.(type) {
		case *tcell.EventKey:
			return
		case nil:
			return
		}
	}
}

// convertStyle converts a style.Style to tcell.Style.
func convertStyle(s style.Style) tcell.Style {
	st := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		st = st.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		st = st.Background(convertColor(s.Background))
	}

	if s.Underline != style.UnderlineNone {
		if s.UnderlineColor.IsDefault() {
			st = st.Underline(convertUnderline(s.Underline))
		} else {
			st = st.Underline(convertUnderline(s.Underline), convertColor(s.UnderlineColor))
		}
	}

	if s.Attributes.Has(style.AttrBold) {
		st = st.Bold(true)
	}
	if s.Attributes.Has(style.AttrDim) {
		st = st.Dim(true)
	}
	if s.Attributes.Has(style.AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attributes.Has(style.AttrBlink) {
		st = st.Blink(true)
	}
	if s.Attributes.Has(style.AttrReverse) {
		st = st.Reverse(true)
	}
	if s.Attributes.Has(style.AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}

	return st
}

// convertColor converts a style.Color to tcell.Color.
func convertColor(c style.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertUnderline maps underline styles onto tcell's.
func convertUnderline(us style.UnderlineStyle) tcell.UnderlineStyle {
	switch us {
	case style.UnderlineStraight:
		return tcell.UnderlineStyleSolid
	case style.UnderlineWavy:
		return tcell.UnderlineStyleCurly
	case style.UnderlineDotted:
		return tcell.UnderlineStyleDotted
	case style.UnderlineDashed:
		return tcell.UnderlineStyleDashed
	default:
		return tcell.UnderlineStyleNone
	}
}
