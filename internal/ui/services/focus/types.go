package focus

import (
	"listselect/internal/domain"
)

// State holds the keyboard focus
type State struct {
	Focused int
}

// NewState creates a focus state with nothing focused
func NewState() State {
	return State{Focused: domain.None}
}

// Direction represents traversal directions
type Direction int

const (
	DirectionPrevious Direction = -1
	DirectionNext     Direction = 1
)

// Env is the read-only context a focus transition runs against
type Env struct {
	Size     int
	Disabled domain.IndexSet
}
