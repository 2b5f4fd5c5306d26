package palette

import (
	"sort"
	"strings"
	"unicode"
)

// Suggestion is a single autocomplete entry.
type Suggestion struct {
	// Text is the displayed suggestion.
	Text string

	// Description is an optional one-line explanation. Empty means none.
	Description string

	// Value is the text inserted when the suggestion is accepted.
	// Empty means Text is used.
	Value string
}

// NewSuggestion creates a bare suggestion.
func NewSuggestion(text string) Suggestion {
	return Suggestion{Text: text}
}

// WithDescription creates a suggestion with a description.
func WithDescription(text, description string) Suggestion {
	return Suggestion{Text: text, Description: description}
}

// GetValue returns the insertion value, falling back to the display text.
func (s Suggestion) GetValue() string {
	if s.Value != "" {
		return s.Value
	}
	return s.Text
}

// Filter returns command suggestions matching query, best match first.
// Matching is fuzzy: every query character must appear in the command
// name in order, case-insensitively. An empty query returns the whole
// catalog in display order.
func Filter(query string) []Suggestion {
	commands := Commands()

	if query == "" {
		suggestions := make([]Suggestion, len(commands))
		for i, cmd := range commands {
			suggestions[i] = WithDescription(cmd.Name, cmd.Description)
		}
		return suggestions
	}

	queryRunes := []rune(strings.ToLower(query))

	type scored struct {
		suggestion Suggestion
		score      int
	}

	var results []scored
	for _, cmd := range commands {
		score, ok := matchScore(queryRunes, cmd.Name)
		if !ok {
			continue
		}
		results = append(results, scored{WithDescription(cmd.Name, cmd.Description), score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].suggestion.Text < results[j].suggestion.Text
	})

	suggestions := make([]Suggestion, len(results))
	for i, r := range results {
		suggestions[i] = r.suggestion
	}
	return suggestions
}

// matchScore scans text for queryRunes as an in-order subsequence and
// scores the match. Higher is better.
func matchScore(queryRunes []rune, text string) (int, bool) {
	textRunes := []rune(text)
	lowerRunes := []rune(strings.ToLower(text))

	matches := make([]int, 0, len(queryRunes))
	queryIdx := 0
	for i := 0; i < len(lowerRunes) && queryIdx < len(queryRunes); i++ {
		if lowerRunes[i] == queryRunes[queryIdx] {
			matches = append(matches, i)
			queryIdx++
		}
	}
	if queryIdx != len(queryRunes) {
		return 0, false
	}

	score := 100

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += 20
		}
	}

	for _, idx := range matches {
		if isWordBoundary(textRunes, idx) {
			score += 15
		}
	}

	if matches[0] == 0 {
		score += 25
	} else {
		score -= matches[0]
	}

	if len(matches) > 1 {
		gap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		score -= gap * 2
	}

	if score < 1 {
		score = 1
	}
	return score, true
}

// isWordBoundary reports whether the rune at idx starts a word.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, curr := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}
