package focus

import (
	"listselect/internal/domain"
)

// FocusIndex focuses index unless it is none, out of range or disabled
func FocusIndex(s State, env Env, index int) (State, bool) {
	if index < 0 || index >= env.Size || env.Disabled.Contains(index) {
		return s, false
	}
	if s.Focused == index {
		return s, false
	}
	return State{Focused: index}, true
}

// Next moves focus one step forward with wraparound, skipping disabled indices
func Next(s State, env Env) (State, bool) {
	return Move(s, env, DirectionNext)
}

// Previous moves focus one step backward with wraparound, skipping disabled indices
func Previous(s State, env Env) (State, bool) {
	return Move(s, env, DirectionPrevious)
}

// Move steps focus in dir. The skip loop visits each index at most once;
// when every index is disabled (or the catalog is empty) focus becomes none.
func Move(s State, env Env, dir Direction) (State, bool) {
	if env.Size == 0 {
		return clearFocus(s)
	}

	candidate := firstStep(s.Focused, env.Size, dir)
	for steps := 0; env.Disabled.Contains(candidate); steps++ {
		if steps >= env.Size-1 {
			return clearFocus(s)
		}
		candidate = step(candidate, env.Size, dir)
	}

	if candidate == s.Focused {
		return s, false
	}
	return State{Focused: candidate}, true
}

func firstStep(focused, size int, dir Direction) int {
	last := size - 1
	switch {
	case focused == domain.None || focused < 0:
		if dir == DirectionNext {
			return 0
		}
		return last
	case focused > last:
		// Left over from a larger catalog
		if dir == DirectionNext {
			return 0
		}
		return last
	default:
		return step(focused, size, dir)
	}
}

func step(index, size int, dir Direction) int {
	last := size - 1
	if dir == DirectionNext {
		if index >= last {
			return 0
		}
		return index + 1
	}
	if index <= 0 {
		return last
	}
	return index - 1
}

func clearFocus(s State) (State, bool) {
	if s.Focused == domain.None {
		return s, false
	}
	return NewState(), true
}
