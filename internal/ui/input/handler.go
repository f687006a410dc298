package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"listselect/internal/ui/input/keys"
	"listselect/internal/ui/input/modes"
	"listselect/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	keyMap      keys.KeyMap
}

func New(km keys.KeyMap) *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search"

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keyMap:      km,
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(km)
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}

			oldMode := h.currentMode
			h.currentMode = changeMode.Mode

			if h.isTextMode(h.currentMode) {
				h.textInput.Reset()
				if data, ok := changeMode.Data.(string); ok {
					h.textInput.SetValue(data)
					h.textInput.CursorEnd()
				}
				cmd = textinput.Blink
			} else if h.isTextMode(oldMode) {
				h.textInput.Blur()
			}

			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Keys a text mode did not handle go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// KeyMap returns the bindings the handler routes with
func (h *Handler) KeyMap() keys.KeyMap {
	return h.keyMap
}

// TextInput returns the text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Prompt returns the prompt of the current text mode, "" otherwise
func (h *Handler) Prompt() string {
	if m, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return m.Prompt()
	}
	return ""
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
