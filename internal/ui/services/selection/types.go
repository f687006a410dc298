package selection

import (
	"listselect/internal/domain"
)

// State holds selection state
type State struct {
	Selected domain.IndexSet
	Anchor   int // last index passed to Select/Deselect, for contiguous ranges
}

// NewState creates a selection state with the given indices selected and no anchor
func NewState(selected ...int) State {
	return State{
		Selected: domain.NewIndexSet(selected...),
		Anchor:   domain.None,
	}
}

// Env is the read-only context a selection transition runs against
type Env struct {
	Multiple bool
	Disabled domain.IndexSet
	Size     int // length of the active catalog
}

func (e Env) inRange(index int) bool {
	return index >= 0 && index < e.Size
}

// clampSpan returns the inclusive range between a and b cut to the catalog bounds
func (e Env) clampSpan(a, b int) (int, int, bool) {
	if a > b {
		a, b = b, a
	}
	if a < 0 {
		a = 0
	}
	if b > e.Size-1 {
		b = e.Size - 1
	}
	return a, b, a <= b
}
