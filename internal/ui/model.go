package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"listselect/internal/domain"
	"listselect/internal/eventbus"
	"listselect/internal/ui/input"
	"listselect/internal/ui/input/keys"
	inputtypes "listselect/internal/ui/input/types"
	"listselect/internal/ui/logic"
	"listselect/internal/ui/state"
	"listselect/internal/ui/viewmodels"
	"listselect/internal/ui/views"
)

// Model is a selectable list. It owns the list state exclusively; every
// mutation goes through one of its operations and is published on the bus
// after the new state is in place.
type Model struct {
	bus   eventbus.EventBus
	state state.ListState

	searchEnabled  bool
	keyboardEvents bool
	fixedHeight    int

	// UI-specific state not in ListState
	width       int
	height      int
	inPagerMode bool
	result      *Result
	aborted     bool

	viewport     *logic.Viewport
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	unsubscribe []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a list widget from its initial configuration. A nil bus
// gets a private one so OnChange still fires.
func NewModel(opts Options, bus eventbus.EventBus) (*Model, error) {
	if bus == nil {
		bus = eventbus.New()
	}

	st, err := state.New(opts.Items, opts.Selected, opts.Disabled, opts.Multiple)
	if err != nil {
		return nil, fmt.Errorf("invalid items: %w", err)
	}

	km := keys.DefaultKeyMap()
	m := &Model{
		bus:            bus,
		state:          st,
		searchEnabled:  opts.Search,
		keyboardEvents: opts.KeyboardEvents,
		fixedHeight:    opts.Height,
		viewport:       logic.NewViewport(20), // Will be updated on first WindowSizeMsg
		viewModel:      viewmodels.NewViewModel(opts.Title, opts.Search, opts.ShowHelp, km),
		renderer:       views.NewRenderer(nil),
		inputHandler:   input.New(km),
		helpOps:        NewHelpOps(nil),
	}
	m.viewport.SetTotal(st.Catalog.Len())

	if opts.OnChange != nil {
		onChange := opts.OnChange
		m.unsubscribe = append(m.unsubscribe, bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.SelectionChangedEvent); ok {
				onChange(event.Selection)
			}
		}))
	}

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// SetRowRenderer replaces the row renderer
func (m *Model) SetRowRenderer(r views.RowRenderer) {
	m.renderer = views.NewRenderer(r)
}

// Close detaches the OnChange subscription from the bus
func (m *Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

// State returns a snapshot of the list state
func (m *Model) State() state.ListState {
	return m.state
}

// Selection returns the current normalized selection payload
func (m *Model) Selection() domain.Selection {
	return m.state.Payload()
}

// HasSelection reports whether any index is selected
func (m *Model) HasSelection() bool {
	return m.state.Selection.Selected.Len() > 0
}

// Result returns the accepted selection, or nil when the picker was not accepted
func (m *Model) Result() *Result {
	return m.result
}

// Aborted reports whether the user quit without accepting
func (m *Model) Aborted() bool {
	return m.aborted
}

// Rows returns descriptors for the rows currently in the viewport
func (m *Model) Rows() []views.Row {
	start, end := m.viewport.Window()
	return m.viewModel.BuildRows(m.state, start, end, m.Hover, m.Activate)
}

// Selection operations

func (m *Model) Select(index int, contiguous bool) {
	m.commit(m.state.Select(index, contiguous))
}

func (m *Model) Deselect(index int, contiguous bool) {
	m.commit(m.state.Deselect(index, contiguous))
}

func (m *Model) Toggle(index int, contiguous bool) {
	m.commit(m.state.Toggle(index, contiguous))
}

// Clear resets selection, anchor, disabled set and focus
func (m *Model) Clear() {
	next, change := m.state.Clear()
	m.commit(next, change)
	m.bus.Publish(eventbus.StateClearedEvent{})
}

// EnableIndex makes index selectable and focusable again
func (m *Model) EnableIndex(index int) {
	m.commit(m.state.EnableIndex(index))
}

// DisableIndex excludes index from selection and focus
func (m *Model) DisableIndex(index int) {
	m.commit(m.state.DisableIndex(index))
}

// Focus operations

func (m *Model) FocusIndex(index int) {
	m.commit(m.state.FocusIndex(index))
}

func (m *Model) FocusNext() {
	m.commit(m.state.FocusNext())
}

func (m *Model) FocusPrevious() {
	m.commit(m.state.FocusPrevious())
}

// Search operations

// UpdateQuery stores the raw query. An empty query restores the full list.
func (m *Model) UpdateQuery(text string) {
	m.commit(m.state.UpdateQuery(text))
}

// CommitQuery filters the configured items by the stored query
func (m *Model) CommitQuery() {
	m.commit(m.state.CommitQuery())
}

// ResetQuery restores the full list
func (m *Model) ResetQuery() {
	m.commit(m.state.ResetQuery())
}

// Re-configuration. These replace one entity wholesale; focus and anchor
// are kept and no selection change is reported.

// SetItems replaces the configured items
func (m *Model) SetItems(items []domain.Item) error {
	next, change, err := m.state.WithItems(items)
	if err != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: "invalid items", Err: err})
		return fmt.Errorf("invalid items: %w", err)
	}
	m.reconfigure(next, change)
	return nil
}

// SetSelected replaces the selected set
func (m *Model) SetSelected(indices []int) {
	m.reconfigure(m.state.WithSelected(indices))
}

// SetDisabled replaces the disabled set
func (m *Model) SetDisabled(indices []int) {
	m.reconfigure(m.state.WithDisabled(indices))
}

// Pointer adapters

// Hover focuses the row under the pointer
func (m *Model) Hover(index int) {
	m.processAction(keys.Hover(index))
}

// Activate toggles the clicked row; shift extends from the anchor
func (m *Model) Activate(index int, shift bool) {
	m.processAction(keys.Activate(index, shift))
}

// commit installs next and then publishes what changed
func (m *Model) commit(next state.ListState, change state.Change) {
	m.apply(next, change, true)
}

// reconfigure installs next without reporting a selection change
func (m *Model) reconfigure(next state.ListState, change state.Change) {
	m.apply(next, change, false)
}

func (m *Model) apply(next state.ListState, change state.Change, emitSelection bool) {
	if change == 0 {
		return
	}
	prev := m.state
	m.state = next

	if change.Has(state.ChangeCatalog) {
		m.viewport.SetTotal(next.Catalog.Len())
	}
	if change.Has(state.ChangeFocus) {
		m.ensureFocusedVisible()
	}

	// State is committed above; handlers may call back into the model
	if change.Has(state.ChangeSelection) && emitSelection {
		m.bus.Publish(eventbus.SelectionChangedEvent{Selection: next.Payload()})
	}
	if change.Has(state.ChangeFocus) {
		m.bus.Publish(eventbus.FocusChangedEvent{OldIndex: prev.Focus.Focused, NewIndex: next.Focus.Focused})
	}
	if change.Has(state.ChangeDisabled) {
		m.bus.Publish(eventbus.DisabledChangedEvent{Disabled: next.Disabled.Values()})
	}
	if change.Has(state.ChangeQuery) {
		m.bus.Publish(eventbus.QueryUpdatedEvent{Query: next.Search.Query})
	}
	if change.Has(state.ChangeCatalog) {
		m.bus.Publish(eventbus.CatalogChangedEvent{
			Query:    next.Search.Committed,
			Total:    next.Source.Len(),
			Visible:  next.Catalog.Len(),
			Filtered: next.Search.Filtered,
		})
	}
}

// ensureFocusedVisible keeps the focused row inside the viewport
func (m *Model) ensureFocusedVisible() {
	if f := m.state.Focused(); f != domain.None {
		m.viewport.EnsureVisible(f)
	}
}

// input context

func (m *Model) FocusedIndex() int {
	return m.state.Focused()
}

func (m *Model) SearchEnabled() bool {
	return m.searchEnabled
}

func (m *Model) Query() string {
	return m.state.Search.Query
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	default:
		// The search box still needs cursor blinks while other messages are handled
		inputCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(inputCmd, cmd)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.keyboardEvents {
		// Keys are not routed; the terminal still needs a way out
		if msg.Type == tea.KeyCtrlC {
			return m.processAction(inputtypes.QuitAction{Force: true})
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// handleMouse maps pointer events onto the row callbacks
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.processAction(inputtypes.FocusPreviousAction{})
		return
	case tea.MouseButtonWheelDown:
		m.processAction(inputtypes.FocusNextAction{})
		return
	}

	row, ok := m.rowAt(msg.Y)
	if !ok {
		return
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		if row.OnHover != nil {
			row.OnHover()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if row.OnActivate != nil {
			row.OnActivate(msg.Shift)
		}
	}
}

// rowAt returns the row rendered on screen line y
func (m *Model) rowAt(y int) (views.Row, bool) {
	header := m.renderer.HeaderHeight(m.viewState(nil))
	index := m.viewport.RowAt(y - header)
	if index < 0 {
		return views.Row{}, false
	}
	for _, row := range m.Rows() {
		if row.Index == index {
			return row, true
		}
	}
	return views.Row{}, false
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)

	switch a := action.(type) {
	case inputtypes.FocusPreviousAction:
		m.FocusPrevious()

	case inputtypes.FocusNextAction:
		m.FocusNext()

	case inputtypes.FocusIndexAction:
		m.FocusIndex(a.Index)

	case inputtypes.ToggleAction:
		m.Toggle(a.Index, a.Contiguous)

	case inputtypes.ClearAction:
		m.Clear()

	case inputtypes.AcceptAction:
		return m.accept()

	case inputtypes.UpdateTextAction:
		m.UpdateQuery(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.UpdateQuery(a.Text)
			m.CommitQuery()
		}

	case inputtypes.CancelTextAction:
		// Cancelling empties the query, which restores the full list
		m.UpdateQuery("")

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(NewHelpRenderer().RenderHelpContentPlain())
		}
		m.viewModel.SetShowHelp(!m.viewModel.ShowHelp())
		m.updateViewportHeight()

	case inputtypes.QuitAction:
		m.aborted = true
		return func() tea.Msg { return quitMsg{} }
	}

	return nil
}

// accept records the result and ends the program
func (m *Model) accept() tea.Cmd {
	sel := m.state.Payload()
	items := make([]domain.Item, 0, len(sel.Values()))
	for _, idx := range sel.Values() {
		if item, ok := m.state.Catalog.At(idx); ok {
			items = append(items, item)
		}
	}
	m.result = &Result{Selection: sel, Items: items}
	m.bus.Publish(eventbus.AcceptedEvent{Selection: sel, Items: items})
	return func() tea.Msg { return quitMsg{} }
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if event, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.viewModel.SetStatusMessage(event.Message)
			return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return clearStatusMsg{} })
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the footer help
			log.Printf("Help pager failed: %v", msg.err)
			m.viewModel.SetShowHelp(true)
			m.updateViewportHeight()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.viewModel.SetStatusMessage("")
		return m, nil

	case quitMsg:
		return m, tea.Quit

	default:
		return m, nil
	}
}

// updateViewportHeight sizes the list to the window, or to the configured height
func (m *Model) updateViewportHeight() {
	vs := m.viewState(nil)
	h := m.height - m.renderer.HeaderHeight(vs) - m.renderer.FooterHeight(vs)
	if m.fixedHeight > 0 && (h <= 0 || m.fixedHeight < h) {
		h = m.fixedHeight
	}
	m.viewport.SetHeight(h)
	m.ensureFocusedVisible()
}

func (m *Model) viewState(rows []views.Row) views.ViewState {
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.Prompt(), m.inputHandler.TextInput())
	return m.viewModel.BuildViewState(m.state, rows, m.viewport.Offset())
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewState(m.Rows()))
}
