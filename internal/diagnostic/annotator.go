package diagnostic

import (
	"github.com/google/uuid"

	"github.com/brackenedit/bracken/internal/event"
	"github.com/brackenedit/bracken/internal/overlay"
)

// Annotator projects diagnostics into an overlay store.
//
// Each Publish call is a full replacement: decorations from the previous
// batch are retracted before the new batch is added. Batches are keyed by
// a generated group id so the annotator never disturbs overlays owned by
// other producers.
type Annotator struct {
	store       *overlay.Store
	presets     overlay.Presets
	minSeverity Severity
	groupID     string
	published   []Diagnostic
}

// AnnotatorOption configures an Annotator.
type AnnotatorOption func(*Annotator)

// WithMinSeverity sets the least severe level the annotator will decorate.
func WithMinSeverity(min Severity) AnnotatorOption {
	return func(a *Annotator) {
		a.minSeverity = min
	}
}

// NewAnnotator creates an annotator writing into store using the given
// presets.
func NewAnnotator(store *overlay.Store, presets overlay.Presets, opts ...AnnotatorOption) *Annotator {
	a := &Annotator{
		store:       store,
		presets:     presets,
		minSeverity: SeverityHint, // decorate everything by default
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Publish replaces the annotator's decorations with those for diags.
// Diagnostics below the minimum severity are skipped.
func (a *Annotator) Publish(diags []Diagnostic) {
	a.Retract()

	filtered := SortByPosition(Filter(diags, a.minSeverity))
	if len(filtered) == 0 {
		a.published = nil
		return
	}

	a.groupID = uuid.NewString()
	for _, d := range filtered {
		a.store.Add(a.decorate(d).WithID(a.groupID))
	}
	a.published = filtered
}

// Retract removes all decorations from the current batch.
func (a *Annotator) Retract() {
	if a.groupID == "" {
		return
	}
	a.store.RemoveByID(a.groupID)
	a.groupID = ""
	a.published = nil
}

// Published returns the diagnostics currently decorating the buffer.
func (a *Annotator) Published() []Diagnostic {
	return a.published
}

// Attach subscribes the annotator to buffer content events. Decorations
// overlapping an edited range are removed; the analyzer is expected to
// republish once it has re-checked the new content.
func (a *Annotator) Attach(bus *event.Bus) {
	bus.Subscribe(event.TopicContentDeleted, func(payload any) {
		del := payload.(event.ContentDeleted)
		a.store.RemoveInRange(overlay.NewRange(del.Start, del.End))
	})
	bus.Subscribe(event.TopicContentReplaced, func(payload any) {
		rep := payload.(event.ContentReplaced)
		a.store.RemoveInRange(overlay.NewRange(rep.Start, rep.End))
	})
	bus.Subscribe(event.TopicContentInserted, func(payload any) {
		ins := payload.(event.ContentInserted)
		// An insertion invalidates any decoration spanning the
		// insertion point.
		a.store.RemoveInRange(overlay.NewRange(ins.Offset, ins.Offset+len(ins.Text)))
	})
}

// decorate builds the preset overlay for a diagnostic.
func (a *Annotator) decorate(d Diagnostic) overlay.Overlay {
	switch d.Severity {
	case SeverityError:
		return a.presets.Error(d.Range, d.Message)
	case SeverityWarning:
		return a.presets.Warning(d.Range, d.Message)
	case SeverityInfo:
		return a.presets.Info(d.Range, d.Message)
	default:
		return a.presets.Hint(d.Range, d.Message)
	}
}
