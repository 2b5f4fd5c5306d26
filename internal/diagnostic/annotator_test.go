package diagnostic

import (
	"testing"

	"github.com/brackenedit/bracken/internal/event"
	"github.com/brackenedit/bracken/internal/overlay"
)

func newTestAnnotator(opts ...AnnotatorOption) (*Annotator, *overlay.Store) {
	store := overlay.NewStore()
	return NewAnnotator(store, overlay.DefaultPresets(), opts...), store
}

func TestPublishDecoratesStore(t *testing.T) {
	a, store := newTestAnnotator()

	a.Publish([]Diagnostic{
		{Range: overlay.NewRange(0, 5), Severity: SeverityError, Message: "broken"},
		{Range: overlay.NewRange(10, 14), Severity: SeverityWarning, Message: "unused"},
	})

	if store.Len() != 2 {
		t.Fatalf("store has %d overlays, want 2", store.Len())
	}

	at := store.AtPosition(2)
	if len(at) != 1 {
		t.Fatalf("AtPosition(2) returned %d overlays, want 1", len(at))
	}
	if at[0].Priority != overlay.PriorityError {
		t.Errorf("priority = %d, want %d", at[0].Priority, overlay.PriorityError)
	}
	if at[0].Message != "broken" {
		t.Errorf("message = %q, want %q", at[0].Message, "broken")
	}
}

func TestPublishReplacesPreviousBatch(t *testing.T) {
	a, store := newTestAnnotator()

	a.Publish([]Diagnostic{
		{Range: overlay.NewRange(0, 5), Severity: SeverityError, Message: "old"},
	})
	a.Publish([]Diagnostic{
		{Range: overlay.NewRange(20, 24), Severity: SeverityWarning, Message: "new"},
	})

	if store.Len() != 1 {
		t.Fatalf("store has %d overlays, want 1", store.Len())
	}
	if got := store.AtPosition(2); len(got) != 0 {
		t.Errorf("old decoration still present: %v", got)
	}
	if got := store.AtPosition(22); len(got) != 1 {
		t.Errorf("new decoration missing at 22")
	}
}

func TestPublishLeavesOtherProducersAlone(t *testing.T) {
	a, store := newTestAnnotator()
	store.Add(overlay.Selection(overlay.NewRange(0, 30)).WithID("selection"))

	a.Publish([]Diagnostic{
		{Range: overlay.NewRange(0, 5), Severity: SeverityError, Message: "broken"},
	})
	a.Publish(nil)

	if store.Len() != 1 {
		t.Fatalf("store has %d overlays, want 1", store.Len())
	}
	if store.GetByID("selection") == nil {
		t.Error("selection overlay was removed by the annotator")
	}
}

func TestPublishHonorsMinSeverity(t *testing.T) {
	a, store := newTestAnnotator(WithMinSeverity(SeverityWarning))

	a.Publish([]Diagnostic{
		{Range: overlay.NewRange(0, 5), Severity: SeverityError, Message: "broken"},
		{Range: overlay.NewRange(6, 9), Severity: SeverityHint, Message: "rename"},
	})

	if store.Len() != 1 {
		t.Fatalf("store has %d overlays, want 1", store.Len())
	}
	if len(a.Published()) != 1 {
		t.Errorf("Published() has %d diagnostics, want 1", len(a.Published()))
	}
}

func TestRetract(t *testing.T) {
	a, store := newTestAnnotator()

	a.Publish([]Diagnostic{
		{Range: overlay.NewRange(0, 5), Severity: SeverityError, Message: "broken"},
	})
	a.Retract()

	if !store.IsEmpty() {
		t.Errorf("store has %d overlays after Retract, want 0", store.Len())
	}
	if a.Published() != nil {
		t.Error("Published() non-nil after Retract")
	}

	// Retract with nothing published is a no-op.
	a.Retract()
}

func TestAttachRemovesEditedDecorations(t *testing.T) {
	a, store := newTestAnnotator()
	bus := event.NewBus()
	a.Attach(bus)

	a.Publish([]Diagnostic{
		{Range: overlay.NewRange(0, 5), Severity: SeverityError, Message: "early"},
		{Range: overlay.NewRange(20, 25), Severity: SeverityWarning, Message: "late"},
	})

	bus.Publish(event.TopicContentDeleted, event.ContentDeleted{Start: 2, End: 4, Text: "xx"})

	if store.Len() != 1 {
		t.Fatalf("store has %d overlays after edit, want 1", store.Len())
	}
	if got := store.AtPosition(22); len(got) != 1 {
		t.Error("decoration outside the edit was removed")
	}
}
