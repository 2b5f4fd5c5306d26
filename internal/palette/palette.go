// Package palette provides the command palette: a named catalog of
// editor actions with fuzzy filtering for incremental lookup.
package palette

// Action identifies an editor operation a palette command triggers.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionSave
	ActionQuit
	ActionShowHelp
	ActionUndo
	ActionRedo
	ActionCopy
	ActionCut
	ActionPaste
	ActionSelectAll
	ActionSelectWord
	ActionSelectLine
	ActionExpandSelection
	ActionAddCursorAbove
	ActionAddCursorBelow
	ActionAddCursorNextMatch
	ActionRemoveSecondaryCursors
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionSave:
		return "save"
	case ActionQuit:
		return "quit"
	case ActionShowHelp:
		return "show-help"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	case ActionCopy:
		return "copy"
	case ActionCut:
		return "cut"
	case ActionPaste:
		return "paste"
	case ActionSelectAll:
		return "select-all"
	case ActionSelectWord:
		return "select-word"
	case ActionSelectLine:
		return "select-line"
	case ActionExpandSelection:
		return "expand-selection"
	case ActionAddCursorAbove:
		return "add-cursor-above"
	case ActionAddCursorBelow:
		return "add-cursor-below"
	case ActionAddCursorNextMatch:
		return "add-cursor-next-match"
	case ActionRemoveSecondaryCursors:
		return "remove-secondary-cursors"
	default:
		return "none"
	}
}

// Command is a palette entry.
type Command struct {
	// Name is the display name (e.g. "Open File").
	Name string

	// Description is a one-line explanation shown next to the name.
	Description string

	// Action is the operation the command triggers.
	Action Action
}

// Commands returns the full palette catalog in display order.
func Commands() []Command {
	return []Command{
		{"Open File", "Open a file in a new or existing buffer", ActionOpen},
		{"Save File", "Save the current buffer to disk", ActionSave},
		{"Quit", "Exit the editor", ActionQuit},
		{"Show Help", "Display the help page with all keybindings", ActionShowHelp},
		{"Undo", "Undo the last edit", ActionUndo},
		{"Redo", "Redo the last undone edit", ActionRedo},
		{"Copy", "Copy selection to clipboard", ActionCopy},
		{"Cut", "Cut selection to clipboard", ActionCut},
		{"Paste", "Paste from clipboard", ActionPaste},
		{"Select All", "Select all text in the buffer", ActionSelectAll},
		{"Select Word", "Select the word under the cursor", ActionSelectWord},
		{"Select Line", "Select the current line", ActionSelectLine},
		{"Expand Selection", "Expand the current selection by one word", ActionExpandSelection},
		{"Add Cursor Above", "Add a cursor on the line above", ActionAddCursorAbove},
		{"Add Cursor Below", "Add a cursor on the line below", ActionAddCursorBelow},
		{"Add Cursor at Next Match", "Add a cursor at the next occurrence of the selection", ActionAddCursorNextMatch},
		{"Remove Secondary Cursors", "Remove all cursors except the primary", ActionRemoveSecondaryCursors},
	}
}

// ByName returns the command with the given display name.
func ByName(name string) (Command, bool) {
	for _, cmd := range Commands() {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}
