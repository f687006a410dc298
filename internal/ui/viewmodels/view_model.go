package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"listselect/internal/ui/input/types"
	"listselect/internal/ui/state"
	"listselect/internal/ui/views"
)

// ViewModel transforms list state into view-ready data
type ViewModel struct {
	title         string
	width         int
	height        int
	searchEnabled bool
	showHelp      bool
	help          help.Model
	keyMap        help.KeyMap
	mode          types.Mode
	prompt        string
	textInput     *textinput.Model
	statusMessage string
}

// NewViewModel creates a new view model
func NewViewModel(title string, searchEnabled, showHelp bool, keyMap help.KeyMap) *ViewModel {
	return &ViewModel{
		title:         title,
		searchEnabled: searchEnabled,
		showHelp:      showHelp,
		help:          help.New(),
		keyMap:        keyMap,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode records the active input mode and its text input, if any
func (vm *ViewModel) SetInputMode(mode types.Mode, prompt string, ti *textinput.Model) {
	vm.mode = mode
	vm.prompt = prompt
	vm.textInput = ti
}

// SetStatusMessage overrides the status line until cleared with ""
func (vm *ViewModel) SetStatusMessage(msg string) {
	vm.statusMessage = msg
}

// SetShowHelp toggles the footer help line
func (vm *ViewModel) SetShowHelp(show bool) {
	vm.showHelp = show
}

// ShowHelp reports whether the footer help line is shown
func (vm *ViewModel) ShowHelp() bool {
	return vm.showHelp
}

// BuildRows produces row descriptors for the catalog window [start, end).
// hover and activate are bound per row.
func (vm *ViewModel) BuildRows(s state.ListState, start, end int, hover func(int), activate func(int, bool)) []views.Row {
	focused := s.Focused()
	rows := make([]views.Row, 0, end-start)
	for i := start; i < end; i++ {
		index := i
		row := views.Row{
			Index:       index,
			Disabled:    s.IsDisabled(index),
			Selected:    s.IsSelected(index),
			Focused:     index == focused,
			DisplayText: s.Catalog.DisplayText(index),
			Multiple:    s.Multiple,
			Query:       s.Search.Committed,
		}
		if hover != nil {
			row.OnHover = func() { hover(index) }
		}
		if activate != nil {
			row.OnActivate = func(shift bool) { activate(index, shift) }
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(s state.ListState, rows []views.Row, offset int) views.ViewState {
	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Title:          vm.title,
		Rows:           rows,
		ViewportOffset: offset,
		Total:          s.Catalog.Len(),
		SourceTotal:    s.Source.Len(),
		SelectedCount:  s.Selection.Selected.Len(),
		Multiple:       s.Multiple,
		SearchEnabled:  vm.searchEnabled,
		Filtered:       s.Search.Filtered,
		Query:          s.Search.Committed,
		InSearchMode:   vm.mode == types.ModeSearch,
		Prompt:         vm.prompt,
		StatusMessage:  vm.statusMessage,
		ShowHelp:       vm.showHelp,
		HelpModel:      vm.help,
		KeyMap:         vm.keyMap,
	}
	if vm.textInput != nil {
		vs.TextInput = vm.textInput.View()
	}
	return vs
}
