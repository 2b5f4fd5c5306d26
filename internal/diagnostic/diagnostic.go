// Package diagnostic turns analyzer results into buffer decorations.
//
// A Diagnostic describes a problem over a byte range. The Annotator owns
// their presentation: each Publish replaces the previous batch of
// decorations in the overlay store, and buffer edits retract decorations
// whose ranges they touch.
package diagnostic

import (
	"fmt"
	"sort"

	"github.com/brackenedit/bracken/internal/overlay"
)

// Severity classifies a diagnostic. Lower values are more severe,
// matching the Language Server Protocol numbering.
type Severity uint8

const (
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
	SeverityInfo    Severity = 3
	SeverityHint    Severity = 4
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	case SeverityHint:
		return "Hint"
	default:
		return "Unknown"
	}
}

// Icon returns a single-character marker for gutter display.
func (s Severity) Icon() string {
	switch s {
	case SeverityError:
		return "E"
	case SeverityWarning:
		return "W"
	case SeverityInfo:
		return "I"
	case SeverityHint:
		return "H"
	default:
		return "?"
	}
}

// Diagnostic is a single analyzer finding over a byte range.
type Diagnostic struct {
	// Range is the byte range the finding covers.
	Range overlay.Range

	// Severity classifies the finding.
	Severity Severity

	// Message is the human-readable description.
	Message string

	// Source names the tool that produced the finding. Empty means unknown.
	Source string
}

// Format renders the diagnostic for a status line or picker.
func (d Diagnostic) Format() string {
	if d.Source != "" {
		return fmt.Sprintf("%s [%s] %s", d.Severity.Icon(), d.Source, d.Message)
	}
	return fmt.Sprintf("%s %s", d.Severity.Icon(), d.Message)
}

// Filter returns the diagnostics at least as severe as min, preserving
// input order.
func Filter(diags []Diagnostic, min Severity) []Diagnostic {
	if len(diags) == 0 {
		return nil
	}

	var filtered []Diagnostic
	for _, d := range diags {
		if d.Severity > min {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// SortByPosition orders diagnostics by range start, then by range end.
// The sort is stable so equal ranges keep their reported order.
func SortByPosition(diags []Diagnostic) []Diagnostic {
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Range.Start != sorted[j].Range.Start {
			return sorted[i].Range.Start < sorted[j].Range.Start
		}
		return sorted[i].Range.End < sorted[j].Range.End
	})

	return sorted
}
