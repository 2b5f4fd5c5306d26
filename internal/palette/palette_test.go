package palette

import (
	"strings"
	"testing"
)

func TestCommandsCatalog(t *testing.T) {
	commands := Commands()
	if len(commands) == 0 {
		t.Fatal("Commands() is empty")
	}

	seen := make(map[string]bool)
	for _, cmd := range commands {
		if cmd.Name == "" {
			t.Error("command with empty name")
		}
		if cmd.Description == "" {
			t.Errorf("command %q has no description", cmd.Name)
		}
		if cmd.Action == ActionNone {
			t.Errorf("command %q has no action", cmd.Name)
		}
		if seen[cmd.Name] {
			t.Errorf("duplicate command name %q", cmd.Name)
		}
		seen[cmd.Name] = true
	}
}

func TestByName(t *testing.T) {
	cmd, ok := ByName("Open File")
	if !ok {
		t.Fatal("ByName(\"Open File\") not found")
	}
	if cmd.Action != ActionOpen {
		t.Errorf("action = %v, want %v", cmd.Action, ActionOpen)
	}

	if _, ok := ByName("Frobnicate"); ok {
		t.Error("ByName found a nonexistent command")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionOpen, "open"},
		{ActionSelectAll, "select-all"},
		{ActionAddCursorNextMatch, "add-cursor-next-match"},
		{ActionNone, "none"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	got := Filter("")
	if len(got) != len(Commands()) {
		t.Errorf("Filter(\"\") returned %d suggestions, want %d", len(got), len(Commands()))
	}
	if got[0].Text != "Open File" {
		t.Errorf("first suggestion = %q, want catalog order", got[0].Text)
	}
}

func TestFilterSubsequence(t *testing.T) {
	got := Filter("svf")
	if len(got) == 0 {
		t.Fatal("Filter(\"svf\") returned nothing")
	}
	if got[0].Text != "Save File" {
		t.Errorf("best match = %q, want %q", got[0].Text, "Save File")
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	got := Filter("QUIT")
	if len(got) == 0 || got[0].Text != "Quit" {
		t.Errorf("Filter(\"QUIT\") = %v, want Quit first", got)
	}
}

func TestFilterRequiresAllCharacters(t *testing.T) {
	for _, s := range Filter("undoz") {
		t.Errorf("unexpected suggestion %q for unmatchable query", s.Text)
	}
}

func TestFilterRanksPrefixHigher(t *testing.T) {
	got := Filter("se")
	if len(got) == 0 {
		t.Fatal("Filter(\"se\") returned nothing")
	}
	// "Select ..." commands start with the query; they should outrank
	// commands that merely contain it.
	if !strings.HasPrefix(got[0].Text, "Select") {
		t.Errorf("best match = %q, want a Select command", got[0].Text)
	}
}

func TestSuggestionGetValue(t *testing.T) {
	s := NewSuggestion("display")
	if s.GetValue() != "display" {
		t.Errorf("GetValue() = %q, want %q", s.GetValue(), "display")
	}

	s.Value = "actual"
	if s.GetValue() != "actual" {
		t.Errorf("GetValue() = %q, want %q", s.GetValue(), "actual")
	}
}
