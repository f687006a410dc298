package selection

import (
	"listselect/internal/domain"
)

// Select selects index. Disabled, none or out-of-range indices leave the
// state untouched and report false. In single-select mode the selection is
// replaced; in multi-select mode index is added, together with the range to
// the previous anchor when contiguous is set. The anchor always moves to index.
func Select(s State, env Env, index int, contiguous bool) (State, bool) {
	if !env.inRange(index) || env.Disabled.Contains(index) {
		return s, false
	}

	// Range math uses the anchor captured before any mutation
	anchor := s.Anchor

	if !env.Multiple {
		return State{Selected: domain.NewIndexSet(index), Anchor: index}, true
	}

	selected := s.Selected.With(index)
	if contiguous && anchor != domain.None {
		if from, to, ok := env.clampSpan(anchor, index); ok {
			selected = selected.WithRange(from, to)
		}
	}
	return State{Selected: selected, Anchor: index}, true
}

// Deselect removes index from the selection. In multi-select mode with
// contiguous set and an existing anchor, the whole range between the previous
// anchor and index is removed instead. The anchor always moves to index.
func Deselect(s State, env Env, index int, contiguous bool) (State, bool) {
	if !env.inRange(index) {
		return s, false
	}

	anchor := s.Anchor

	selected := s.Selected
	if env.Multiple && contiguous && anchor != domain.None {
		if from, to, ok := env.clampSpan(anchor, index); ok {
			selected = selected.WithoutRange(from, to)
		}
	} else {
		selected = selected.Without(index)
	}
	return State{Selected: selected, Anchor: index}, true
}

// Toggle selects index when it is not selected. An already selected index is
// deselected in multi-select mode only; in single-select mode it stays selected.
func Toggle(s State, env Env, index int, contiguous bool) (State, bool) {
	if !env.inRange(index) {
		return s, false
	}
	if !s.Selected.Contains(index) {
		return Select(s, env, index, contiguous)
	}
	if env.Multiple {
		return Deselect(s, env, index, contiguous)
	}
	return s, false
}

// Clear empties the selection and drops the anchor
func Clear() State {
	return NewState()
}

// Replace swaps the selected set wholesale, keeping the anchor. Indices
// outside [0, size) are dropped; in single-select mode only the first
// remaining index is kept.
func Replace(s State, multiple bool, size int, indices []int) State {
	indices = domain.Within(size, indices)
	if !multiple && len(indices) > 1 {
		indices = indices[:1]
	}
	return State{Selected: domain.NewIndexSet(indices...), Anchor: s.Anchor}
}

// Payload builds the normalized selection payload for s
func Payload(s State, multiple bool) domain.Selection {
	if multiple {
		return domain.Selection{
			Multiple: true,
			Indices:  s.Selected.Values(),
			Index:    domain.None,
		}
	}
	index := domain.None
	if values := s.Selected.Values(); len(values) > 0 {
		index = values[0]
	}
	return domain.Selection{Index: index}
}
