package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listselect/internal/ui/input/keys"
	"listselect/internal/ui/input/types"
)

type NormalMode struct {
	keyMap keys.KeyMap
}

func NewNormalMode(km keys.KeyMap) *NormalMode {
	return &NormalMode{keyMap: km}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// List keys first: up/k, down/j, space
	if actions, ok := keys.Route(keys.Decode(msg, m.keyMap), ctx.FocusedIndex()); ok {
		return actions, true
	}

	switch {
	case key.Matches(msg, m.keyMap.Search):
		if !ctx.SearchEnabled() {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()}}, true

	case key.Matches(msg, m.keyMap.Accept):
		return []types.Action{types.AcceptAction{}}, true

	case key.Matches(msg, m.keyMap.Clear):
		// Full reset: selection, disabled set and focus
		return []types.Action{types.ClearAction{}}, true

	case key.Matches(msg, m.keyMap.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keyMap.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
