// Package prompt implements the minibuffer: a single-line input field
// with a cursor, optional autocomplete suggestions, and a kind that
// tells the editor what to do with the confirmed input.
//
// Cursor motion and deletion operate on grapheme clusters, so a combining
// sequence or an emoji moves and deletes as one unit.
package prompt

import (
	"github.com/atotto/clipboard"
	"github.com/rivo/uniseg"

	"github.com/brackenedit/bracken/internal/palette"
)

// Kind determines what happens when the prompt input is confirmed.
type Kind int

const (
	// KindOpenFile opens the named file.
	KindOpenFile Kind = iota

	// KindSaveFileAs saves the buffer under the given path.
	KindSaveFileAs

	// KindSearch searches the buffer for the input.
	KindSearch

	// KindReplace replaces an earlier search target with the input.
	KindReplace

	// KindCommand executes a palette command by name.
	KindCommand
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOpenFile:
		return "open-file"
	case KindSaveFileAs:
		return "save-file-as"
	case KindSearch:
		return "search"
	case KindReplace:
		return "replace"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Prompt is the minibuffer state.
type Prompt struct {
	// Message is the label shown before the input (e.g. "Find file: ").
	Message string

	kind        Kind
	input       string
	cursor      int // byte offset into input
	search      string
	suggestions []palette.Suggestion
	selected    int // index into suggestions, -1 when none
}

// New creates an empty prompt.
func New(message string, kind Kind) *Prompt {
	return &Prompt{
		Message:  message,
		kind:     kind,
		selected: -1,
	}
}

// NewReplace creates a replace prompt. search is the text being replaced.
func NewReplace(message, search string) *Prompt {
	p := New(message, KindReplace)
	p.search = search
	return p
}

// WithSuggestions creates a prompt with an initial suggestion list.
// The first suggestion starts selected.
func WithSuggestions(message string, kind Kind, suggestions []palette.Suggestion) *Prompt {
	p := New(message, kind)
	p.suggestions = suggestions
	if len(suggestions) > 0 {
		p.selected = 0
	}
	return p
}

// Kind returns what the prompt confirms into.
func (p *Prompt) Kind() Kind { return p.kind }

// Input returns the raw text typed so far.
func (p *Prompt) Input() string { return p.input }

// Cursor returns the cursor's byte offset into the input.
func (p *Prompt) Cursor() int { return p.cursor }

// SearchTarget returns the text a replace prompt is replacing.
func (p *Prompt) SearchTarget() string { return p.search }

// Insert inserts text at the cursor and advances past it.
func (p *Prompt) Insert(text string) {
	p.input = p.input[:p.cursor] + text + p.input[p.cursor:]
	p.cursor += len(text)
}

// InsertRune inserts a single rune at the cursor.
func (p *Prompt) InsertRune(r rune) {
	p.Insert(string(r))
}

// Paste inserts the system clipboard contents at the cursor.
func (p *Prompt) Paste() error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return err
	}
	p.Insert(text)
	return nil
}

// CursorLeft moves the cursor one grapheme cluster left.
func (p *Prompt) CursorLeft() {
	p.cursor = prevBoundary(p.input, p.cursor)
}

// CursorRight moves the cursor one grapheme cluster right.
func (p *Prompt) CursorRight() {
	p.cursor = nextBoundary(p.input, p.cursor)
}

// Home moves the cursor to the start of the input.
func (p *Prompt) Home() {
	p.cursor = 0
}

// End moves the cursor past the last character.
func (p *Prompt) End() {
	p.cursor = len(p.input)
}

// Backspace removes the grapheme cluster before the cursor.
func (p *Prompt) Backspace() {
	if p.cursor == 0 {
		return
	}
	start := prevBoundary(p.input, p.cursor)
	p.input = p.input[:start] + p.input[p.cursor:]
	p.cursor = start
}

// Delete removes the grapheme cluster at the cursor.
func (p *Prompt) Delete() {
	if p.cursor >= len(p.input) {
		return
	}
	end := nextBoundary(p.input, p.cursor)
	p.input = p.input[:p.cursor] + p.input[end:]
}

// SetSuggestions replaces the suggestion list. Selection resets to the
// first entry, or to none when the list is empty.
func (p *Prompt) SetSuggestions(suggestions []palette.Suggestion) {
	p.suggestions = suggestions
	if len(suggestions) > 0 {
		p.selected = 0
	} else {
		p.selected = -1
	}
}

// Suggestions returns the current suggestion list.
func (p *Prompt) Suggestions() []palette.Suggestion {
	return p.suggestions
}

// NextSuggestion advances the selection, wrapping to the first entry.
func (p *Prompt) NextSuggestion() {
	if len(p.suggestions) == 0 {
		return
	}
	switch {
	case p.selected < 0:
		p.selected = 0
	case p.selected+1 < len(p.suggestions):
		p.selected++
	default:
		p.selected = 0
	}
}

// PrevSuggestion moves the selection back, wrapping to the last entry.
func (p *Prompt) PrevSuggestion() {
	if len(p.suggestions) == 0 {
		return
	}
	switch {
	case p.selected < 0:
		p.selected = 0
	case p.selected == 0:
		p.selected = len(p.suggestions) - 1
	default:
		p.selected--
	}
}

// Selected returns the selected suggestion, if any.
func (p *Prompt) Selected() (palette.Suggestion, bool) {
	if p.selected < 0 || p.selected >= len(p.suggestions) {
		return palette.Suggestion{}, false
	}
	return p.suggestions[p.selected], true
}

// FinalInput returns the value to confirm: the selected suggestion when
// one is active, otherwise the raw input.
func (p *Prompt) FinalInput() string {
	if s, ok := p.Selected(); ok {
		return s.GetValue()
	}
	return p.input
}

// prevBoundary returns the byte offset of the grapheme cluster boundary
// before pos.
func prevBoundary(s string, pos int) int {
	prev := 0
	state := -1
	for i := 0; i < pos; {
		cluster, _, _, next := uniseg.FirstGraphemeClusterInString(s[i:], state)
		state = next
		prev = i
		i += len(cluster)
	}
	return prev
}

// nextBoundary returns the byte offset of the grapheme cluster boundary
// after pos.
func nextBoundary(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[pos:], -1)
	return pos + len(cluster)
}
