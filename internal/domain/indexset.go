package domain

import (
	"github.com/emirpasic/gods/v2/sets/treeset"
)

// IndexSet is an ordered, copy-on-write set of list indices.
// The zero value is an empty set. Mutating methods return a new set and
// leave the receiver untouched.
type IndexSet struct {
	set *treeset.Set[int]
}

// NewIndexSet builds a set from the given indices
func NewIndexSet(indices ...int) IndexSet {
	if len(indices) == 0 {
		return IndexSet{}
	}
	return IndexSet{set: treeset.New[int](indices...)}
}

// Within returns the indices that lie in [0, size), keeping their order
func Within(size int, indices []int) []int {
	kept := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < size {
			kept = append(kept, i)
		}
	}
	return kept
}

// Contains reports whether index is a member
func (s IndexSet) Contains(index int) bool {
	if s.set == nil {
		return false
	}
	return s.set.Contains(index)
}

// Len returns the number of members
func (s IndexSet) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}

// Values returns the members in ascending order
func (s IndexSet) Values() []int {
	if s.set == nil {
		return []int{}
	}
	return s.set.Values()
}

// With returns a copy of the set with indices added
func (s IndexSet) With(indices ...int) IndexSet {
	if len(indices) == 0 {
		return s
	}
	out := s.clone()
	out.set.Add(indices...)
	return out
}

// Without returns a copy of the set with indices removed
func (s IndexSet) Without(indices ...int) IndexSet {
	if len(indices) == 0 || s.Len() == 0 {
		return s
	}
	out := s.clone()
	out.set.Remove(indices...)
	return out
}

// WithRange returns a copy with every index in [from, to] added
func (s IndexSet) WithRange(from, to int) IndexSet {
	return s.With(Span(from, to)...)
}

// WithoutRange returns a copy with every index in [from, to] removed
func (s IndexSet) WithoutRange(from, to int) IndexSet {
	return s.Without(Span(from, to)...)
}

// Equal reports whether both sets hold the same members
func (s IndexSet) Equal(other IndexSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.Values() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s IndexSet) clone() IndexSet {
	if s.set == nil {
		return IndexSet{set: treeset.New[int]()}
	}
	return IndexSet{set: treeset.New[int](s.set.Values()...)}
}

// Span returns the inclusive range between a and b in ascending order
func Span(a, b int) []int {
	if a > b {
		a, b = b, a
	}
	out := make([]int, 0, b-a+1)
	for i := a; i <= b; i++ {
		out = append(out, i)
	}
	return out
}
