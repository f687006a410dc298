package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listselect/internal/ui/input/types"
)

// Decode turns a terminal key message into a list key event.
// Keys the list does not know decode to types.KeyNone.
func Decode(msg tea.KeyMsg, km KeyMap) types.KeyEvent {
	shift := msg.Type == tea.KeyShiftUp || msg.Type == tea.KeyShiftDown

	switch {
	case msg.String() == "k":
		return types.KeyEvent{Code: types.KeyK}
	case msg.String() == "j":
		return types.KeyEvent{Code: types.KeyJ}
	case key.Matches(msg, km.Up):
		return types.KeyEvent{Code: types.KeyUp, Shift: shift}
	case key.Matches(msg, km.Down):
		return types.KeyEvent{Code: types.KeyDown, Shift: shift}
	case key.Matches(msg, km.Toggle):
		return types.KeyEvent{Code: types.KeySpace}
	}
	return types.KeyEvent{}
}

// Route maps a decoded key to list actions. It holds no state: the focused
// index is passed in. The second return value reports whether the key was
// recognized, in which case the caller must not let it fall through.
func Route(ev types.KeyEvent, focused int) ([]types.Action, bool) {
	switch ev.Code {
	case types.KeyUp, types.KeyK:
		return []types.Action{types.FocusPreviousAction{}}, true
	case types.KeyDown, types.KeyJ:
		return []types.Action{types.FocusNextAction{}}, true
	case types.KeySpace:
		return []types.Action{types.ToggleAction{Index: focused, Contiguous: ev.Shift}}, true
	}
	return nil, false
}

// Hover is the pointer-hover adapter: it focuses the row under the pointer
func Hover(index int) types.Action {
	return types.FocusIndexAction{Index: index}
}

// Activate is the pointer-activate adapter: it toggles the row, extending
// from the anchor when shift is held
func Activate(index int, shift bool) types.Action {
	return types.ToggleAction{Index: index, Contiguous: shift}
}
