package overlay

import (
	"testing"

	"github.com/brackenedit/bracken/internal/style"
)

func bg(c style.Color) Face {
	return Background{Color: c}
}

func TestStoreAddAndQuery(t *testing.T) {
	s := NewStore()

	s.Add(New(NewRange(5, 10), bg(style.ColorRed)))
	s.Add(New(NewRange(15, 20), bg(style.ColorBlue)))

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	got := s.AtPosition(7)
	if len(got) != 1 || got[0].Range != NewRange(5, 10) {
		t.Errorf("AtPosition(7) = %v, want one overlay at [5,10)", got)
	}

	got = s.AtPosition(17)
	if len(got) != 1 || got[0].Range != NewRange(15, 20) {
		t.Errorf("AtPosition(17) = %v, want one overlay at [15,20)", got)
	}

	if got := s.AtPosition(12); len(got) != 0 {
		t.Errorf("AtPosition(12) = %v, want empty", got)
	}
}

func TestStoreEmptyQueries(t *testing.T) {
	s := NewStore()

	if got := s.AtPosition(0); len(got) != 0 {
		t.Errorf("AtPosition on empty store = %v, want empty", got)
	}
	if got := s.InRange(NewRange(0, 100)); len(got) != 0 {
		t.Errorf("InRange on empty store = %v, want empty", got)
	}
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestStorePrioritySorting(t *testing.T) {
	s := NewStore()

	s.Add(NewWithPriority(NewRange(5, 10), bg(style.ColorRed), 10))
	s.Add(NewWithPriority(NewRange(5, 10), bg(style.ColorBlue), 5))
	s.Add(NewWithPriority(NewRange(5, 10), bg(style.ColorGreen), 15))

	got := s.AtPosition(7)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []int{5, 10, 15}
	for i, o := range got {
		if o.Priority != want[i] {
			t.Errorf("got[%d].Priority = %d, want %d", i, o.Priority, want[i])
		}
	}
}

func TestStoreSortIsNonDecreasingAfterAdd(t *testing.T) {
	s := NewStore()

	for _, p := range []int{3, -10, 7, 0, -5, 7, 12, -10} {
		s.Add(NewWithPriority(NewRange(0, 4), bg(style.ColorRed), p))

		all := s.All()
		for i := 1; i < len(all); i++ {
			if all[i-1].Priority > all[i].Priority {
				t.Fatalf("store out of order after Add(%d): %d before %d", p, all[i-1].Priority, all[i].Priority)
			}
		}
	}
}

func TestStoreEqualPriorityKeepsInsertionOrder(t *testing.T) {
	s := NewStore()

	s.Add(NewWithID(NewRange(0, 4), bg(style.ColorRed), "first").WithPriority(5))
	s.Add(NewWithID(NewRange(0, 4), bg(style.ColorBlue), "second").WithPriority(5))
	s.Add(NewWithID(NewRange(0, 4), bg(style.ColorGreen), "third").WithPriority(5))

	got := s.AtPosition(2)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].ID != want {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestStoreRemoveByID(t *testing.T) {
	s := NewStore()

	s.Add(NewWithID(NewRange(5, 10), bg(style.ColorRed), "e1"))
	s.Add(NewWithID(NewRange(15, 20), bg(style.ColorBlue), "e2"))

	s.RemoveByID("e1")

	if got := s.AtPosition(7); len(got) != 0 {
		t.Errorf("AtPosition(7) after remove = %v, want empty", got)
	}
	if got := s.AtPosition(17); len(got) != 1 {
		t.Errorf("AtPosition(17) = %v, want one overlay", got)
	}
	if s.GetByID("e1") != nil {
		t.Error("GetByID after RemoveByID should return nil")
	}
}

func TestStoreRemoveByIDGroup(t *testing.T) {
	s := NewStore()

	// Multiple overlays may share an id for group removal.
	s.Add(NewWithID(NewRange(5, 10), bg(style.ColorRed), "diag"))
	s.Add(NewWithID(NewRange(15, 20), bg(style.ColorRed), "diag"))
	s.Add(NewWithID(NewRange(25, 30), bg(style.ColorBlue), "other"))

	s.RemoveByID("diag")

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if s.GetByID("other") == nil {
		t.Error("unrelated overlay should survive group removal")
	}
}

func TestStoreRemoveByIDNeverMatchesAnonymous(t *testing.T) {
	s := NewStore()

	s.Add(New(NewRange(5, 10), bg(style.ColorRed))) // no id

	s.RemoveByID("")
	s.RemoveByID("anything")

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (anonymous overlays never matched)", s.Len())
	}
}

func TestStoreRemoveInRange(t *testing.T) {
	s := NewStore()

	s.Add(New(NewRange(5, 10), bg(style.ColorRed)))
	s.Add(New(NewRange(15, 20), bg(style.ColorBlue)))
	s.Add(New(NewRange(25, 30), bg(style.ColorGreen)))

	s.RemoveInRange(NewRange(0, 12))

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	all := s.All()
	if all[0].Range != NewRange(15, 20) || all[1].Range != NewRange(25, 30) {
		t.Errorf("survivors = %v, %v, want [15,20) then [25,30)", all[0].Range, all[1].Range)
	}
}

func TestStoreRemoveInRangeTouchingSurvives(t *testing.T) {
	s := NewStore()

	s.Add(New(NewRange(10, 15), bg(style.ColorRed)))

	s.RemoveInRange(NewRange(0, 10)) // touches at 10, no overlap

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (touching range must survive)", s.Len())
	}
}

func TestStoreRemovalIdempotence(t *testing.T) {
	s := NewStore()

	s.Add(NewWithID(NewRange(5, 10), bg(style.ColorRed), "e1"))
	s.Add(New(NewRange(15, 20), bg(style.ColorBlue)))

	s.RemoveByID("e1")
	after := s.Len()
	s.RemoveByID("e1")
	if s.Len() != after {
		t.Error("second RemoveByID changed the store")
	}

	s.RemoveInRange(NewRange(0, 12))
	after = s.Len()
	s.RemoveInRange(NewRange(0, 12))
	if s.Len() != after {
		t.Error("second RemoveInRange changed the store")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()

	s.Add(New(NewRange(5, 10), bg(style.ColorRed)))
	s.Add(New(NewRange(15, 20), bg(style.ColorBlue)))

	s.Clear()

	if !s.IsEmpty() {
		t.Error("IsEmpty() = false after Clear")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreInRange(t *testing.T) {
	s := NewStore()

	s.Add(NewWithPriority(NewRange(5, 10), bg(style.ColorRed), 2))
	s.Add(NewWithPriority(NewRange(8, 14), bg(style.ColorBlue), 1))
	s.Add(New(NewRange(20, 25), bg(style.ColorGreen)))

	got := s.InRange(NewRange(9, 16))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Ascending priority order.
	if got[0].Priority != 1 || got[1].Priority != 2 {
		t.Errorf("priorities = %d, %d, want 1, 2", got[0].Priority, got[1].Priority)
	}
}

func TestStoreGetByID(t *testing.T) {
	s := NewStore()

	s.Add(NewWithID(NewRange(5, 10), bg(style.ColorRed), "dup"))
	s.Add(NewWithID(NewRange(15, 20), bg(style.ColorBlue), "dup"))

	got := s.GetByID("dup")
	if got == nil {
		t.Fatal("GetByID returned nil")
	}
	// First in store order wins.
	if got.Range != NewRange(5, 10) {
		t.Errorf("Range = %v, want [5,10)", got.Range)
	}

	if s.GetByID("missing") != nil {
		t.Error("GetByID for unknown id should return nil")
	}
	if s.GetByID("") != nil {
		t.Error("GetByID(\"\") should return nil")
	}
}

func TestStoreGetByIDMutation(t *testing.T) {
	s := NewStore()

	s.Add(NewWithID(NewRange(5, 10), bg(style.ColorRed), "sel"))

	// Extend the range in place without remove/re-add.
	o := s.GetByID("sel")
	o.Range.End = 14

	if got := s.AtPosition(12); len(got) != 1 {
		t.Errorf("AtPosition(12) after extend = %v, want one overlay", got)
	}
}

func TestStoreSetPriority(t *testing.T) {
	s := NewStore()

	s.Add(NewWithID(NewRange(5, 10), bg(style.ColorRed), "low").WithPriority(1))
	s.Add(NewWithID(NewRange(5, 10), bg(style.ColorBlue), "high").WithPriority(9))

	if !s.SetPriority("low", 20) {
		t.Fatal("SetPriority returned false for existing id")
	}

	got := s.AtPosition(7)
	if got[0].ID != "high" || got[1].ID != "low" {
		t.Errorf("order after SetPriority = %q, %q, want high then low", got[0].ID, got[1].ID)
	}

	if s.SetPriority("missing", 3) {
		t.Error("SetPriority for unknown id should return false")
	}
}

func TestStoreReferencesAreLive(t *testing.T) {
	s := NewStore()

	s.Add(NewWithID(NewRange(5, 10), bg(style.ColorRed), "a"))

	refs := s.AtPosition(7)
	refs[0].Message = "hover text"

	if s.GetByID("a").Message != "hover text" {
		t.Error("query results should reference stored overlays, not copies")
	}
}
