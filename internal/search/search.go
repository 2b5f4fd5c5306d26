// Package search finds query matches in buffer text and highlights them
// through the overlay store.
package search

import (
	"regexp"

	"github.com/brackenedit/bracken/internal/overlay"
)

// MatchID is the overlay id shared by all search-match decorations.
const MatchID = "search-match"

// Engine owns the current search query and its highlighted matches.
// All match decorations carry MatchID, so a new search or a Clear
// replaces exactly the engine's own overlays.
type Engine struct {
	store   *overlay.Store
	presets overlay.Presets
	re      *regexp.Regexp
	matches []overlay.Range
}

// NewEngine creates a search engine writing highlights into store.
func NewEngine(store *overlay.Store, presets overlay.Presets) *Engine {
	return &Engine{
		store:   store,
		presets: presets,
	}
}

// SetQuery sets a literal search query. An empty query clears the search.
func (e *Engine) SetQuery(query string) error {
	if query == "" {
		e.Clear()
		return nil
	}
	return e.SetPattern(regexp.QuoteMeta(query))
}

// SetPattern sets a regular-expression search pattern. An empty pattern
// clears the search.
func (e *Engine) SetPattern(pattern string) error {
	if pattern == "" {
		e.Clear()
		return nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	e.re = re
	return nil
}

// Query returns the active pattern, or "" when no search is active.
func (e *Engine) Query() string {
	if e.re == nil {
		return ""
	}
	return e.re.String()
}

// Apply scans text for the active query and replaces the engine's
// highlights with the matches found. It returns the match count.
// Zero-width matches are skipped.
func (e *Engine) Apply(text string) int {
	e.store.RemoveByID(MatchID)
	e.matches = e.matches[:0]

	if e.re == nil {
		return 0
	}

	for _, loc := range e.re.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		rng := overlay.NewRange(loc[0], loc[1])
		e.matches = append(e.matches, rng)
		e.store.Add(e.presets.SearchMatch(rng).WithID(MatchID))
	}

	return len(e.matches)
}

// Matches returns the highlighted ranges in buffer order.
func (e *Engine) Matches() []overlay.Range {
	return e.matches
}

// Clear drops the query and removes all highlights.
func (e *Engine) Clear() {
	e.store.RemoveByID(MatchID)
	e.re = nil
	e.matches = nil
}

// Next returns the first match starting after pos, wrapping to the first
// match when none follows. The second result is false when there are no
// matches.
func (e *Engine) Next(pos int) (overlay.Range, bool) {
	if len(e.matches) == 0 {
		return overlay.Range{}, false
	}

	for _, m := range e.matches {
		if m.Start > pos {
			return m, true
		}
	}
	return e.matches[0], true
}

// Prev returns the last match starting before pos, wrapping to the last
// match when none precedes. The second result is false when there are no
// matches.
func (e *Engine) Prev(pos int) (overlay.Range, bool) {
	if len(e.matches) == 0 {
		return overlay.Range{}, false
	}

	for i := len(e.matches) - 1; i >= 0; i-- {
		if e.matches[i].Start < pos {
			return e.matches[i], true
		}
	}
	return e.matches[len(e.matches)-1], true
}
