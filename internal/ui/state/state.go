package state

import (
	"listselect/internal/domain"
	"listselect/internal/ui/services/catalog"
	"listselect/internal/ui/services/focus"
	"listselect/internal/ui/services/search"
	"listselect/internal/ui/services/selection"
)

// Change reports which parts of a ListState a transition touched
type Change uint8

const (
	ChangeSelection Change = 1 << iota
	ChangeFocus
	ChangeDisabled
	ChangeQuery
	ChangeCatalog
)

// Has reports whether c includes part
func (c Change) Has(part Change) bool {
	return c&part != 0
}

// ListState is an immutable snapshot of the list's interaction state.
// Every transition returns a new ListState and the parts it changed.
type ListState struct {
	Source    catalog.Catalog // configured items
	Catalog   catalog.Catalog // active items, filtered when a query is committed
	Selection selection.State
	Disabled  domain.IndexSet
	Focus     focus.State
	Search    search.State
	Multiple  bool
}

// New builds the initial state. Malformed items are rejected; selected and
// disabled indices outside the list are dropped.
func New(items []domain.Item, selected, disabled []int, multiple bool) (ListState, error) {
	source, err := catalog.New(items)
	if err != nil {
		return ListState{}, err
	}
	return ListState{
		Source:    source,
		Catalog:   source,
		Selection: selection.Replace(selection.NewState(), multiple, source.Len(), selected),
		Disabled:  domain.NewIndexSet(domain.Within(source.Len(), disabled)...),
		Focus:     focus.NewState(),
		Multiple:  multiple,
	}, nil
}

func (s ListState) selectionEnv() selection.Env {
	return selection.Env{Multiple: s.Multiple, Disabled: s.Disabled, Size: s.Catalog.Len()}
}

func (s ListState) focusEnv() focus.Env {
	return focus.Env{Size: s.Catalog.Len(), Disabled: s.Disabled}
}

// Payload returns the normalized selection payload
func (s ListState) Payload() domain.Selection {
	return selection.Payload(s.Selection, s.Multiple)
}

// Focused returns the focused index, or domain.None when nothing valid is focused
func (s ListState) Focused() int {
	if !s.Catalog.Contains(s.Focus.Focused) {
		return domain.None
	}
	return s.Focus.Focused
}

// IsSelected reports whether index is selected
func (s ListState) IsSelected(index int) bool {
	return s.Selection.Selected.Contains(index)
}

// IsDisabled reports whether index is disabled
func (s ListState) IsDisabled(index int) bool {
	return s.Disabled.Contains(index)
}

// Selection transitions

func (s ListState) Select(index int, contiguous bool) (ListState, Change) {
	return s.applySelection(selection.Select(s.Selection, s.selectionEnv(), index, contiguous))
}

func (s ListState) Deselect(index int, contiguous bool) (ListState, Change) {
	return s.applySelection(selection.Deselect(s.Selection, s.selectionEnv(), index, contiguous))
}

func (s ListState) Toggle(index int, contiguous bool) (ListState, Change) {
	return s.applySelection(selection.Toggle(s.Selection, s.selectionEnv(), index, contiguous))
}

func (s ListState) applySelection(sel selection.State, ok bool) (ListState, Change) {
	if !ok {
		return s, 0
	}
	s.Selection = sel
	return s, ChangeSelection
}

// Clear resets selection, anchor, disabled set and focus
func (s ListState) Clear() (ListState, Change) {
	s.Selection = selection.Clear()
	s.Disabled = domain.NewIndexSet()
	s.Focus = focus.NewState()
	return s, ChangeSelection | ChangeDisabled | ChangeFocus
}

// DisableIndex adds index to the disabled set. A focused index loses focus.
func (s ListState) DisableIndex(index int) (ListState, Change) {
	if !s.Catalog.Contains(index) || s.Disabled.Contains(index) {
		return s, 0
	}
	s.Disabled = s.Disabled.With(index)
	change := ChangeDisabled
	if s.Focus.Focused == index {
		s.Focus = focus.NewState()
		change |= ChangeFocus
	}
	return s, change
}

// EnableIndex removes index from the disabled set
func (s ListState) EnableIndex(index int) (ListState, Change) {
	if !s.Disabled.Contains(index) {
		return s, 0
	}
	s.Disabled = s.Disabled.Without(index)
	return s, ChangeDisabled
}

// Focus transitions

func (s ListState) FocusIndex(index int) (ListState, Change) {
	return s.applyFocus(focus.FocusIndex(s.Focus, s.focusEnv(), index))
}

func (s ListState) FocusNext() (ListState, Change) {
	return s.applyFocus(focus.Next(s.Focus, s.focusEnv()))
}

func (s ListState) FocusPrevious() (ListState, Change) {
	return s.applyFocus(focus.Previous(s.Focus, s.focusEnv()))
}

func (s ListState) applyFocus(f focus.State, ok bool) (ListState, Change) {
	if !ok {
		return s, 0
	}
	s.Focus = f
	return s, ChangeFocus
}

// Search transitions

// UpdateQuery stores the raw query; an empty query resets the catalog
func (s ListState) UpdateQuery(text string) (ListState, Change) {
	q, ok := search.UpdateQuery(s.Search, text)
	var change Change
	if ok {
		s.Search = q
		change = ChangeQuery
	}
	if text == "" && s.Search.Filtered {
		var reset Change
		s, reset = s.ResetQuery()
		change |= reset
	}
	return s, change
}

// CommitQuery re-derives the active catalog from the source items.
// Indices held elsewhere in the state are left as they are.
func (s ListState) CommitQuery() (ListState, Change) {
	q, filtered, ok := search.Commit(s.Search, s.Source)
	if !ok {
		return s, 0
	}
	s.Search = q
	s.Catalog = filtered
	return s, ChangeCatalog
}

// ResetQuery restores the full source list
func (s ListState) ResetQuery() (ListState, Change) {
	if !s.Search.Filtered {
		return s, 0
	}
	s.Search, s.Catalog = search.Reset(s.Search, s.Source)
	return s, ChangeCatalog
}

// Re-configuration. Each replaces one entity wholesale and keeps focus and anchor.

// WithItems replaces the source items; the active catalog becomes unfiltered
func (s ListState) WithItems(items []domain.Item) (ListState, Change, error) {
	source, err := catalog.New(items)
	if err != nil {
		return s, 0, err
	}
	s.Source = source
	s.Catalog = source
	s.Search = search.State{Query: s.Search.Query}
	return s, ChangeCatalog, nil
}

// WithSelected replaces the selected set; indices outside the active
// catalog are dropped
func (s ListState) WithSelected(indices []int) (ListState, Change) {
	s.Selection = selection.Replace(s.Selection, s.Multiple, s.Catalog.Len(), indices)
	return s, ChangeSelection
}

// WithDisabled replaces the disabled set. A focused index that becomes
// disabled loses focus.
func (s ListState) WithDisabled(indices []int) (ListState, Change) {
	s.Disabled = domain.NewIndexSet(domain.Within(s.Catalog.Len(), indices)...)
	change := ChangeDisabled
	if s.Disabled.Contains(s.Focus.Focused) {
		s.Focus = focus.NewState()
		change |= ChangeFocus
	}
	return s, change
}
