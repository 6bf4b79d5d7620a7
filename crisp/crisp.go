// Package crisp provides the crisp (boolean-membership) sets produced by
// fuzzy set queries such as core, support, cross-over points and alpha-cuts.
//
// Two implementations exist: Values, a map-backed set of arbitrary
// comparable elements, and Grid, a roaring-bitmap-backed set of positions in
// a sampled real grid. Both are read-only once handed to a caller.
package crisp

// Set describes a crisp set of domain elements.
type Set[T comparable] interface {
	// Contains returns true if value is a member of the set.
	Contains(value T) bool

	// Cardinality produces the number of elements in the set.
	Cardinality() uint64

	// Each enumerates the set's elements in a deterministic order. Returning
	// false from the delegate stops enumeration.
	Each(delegate func(value T) bool)

	// Slice allocates and returns the set's elements in enumeration order.
	Slice() []T

	// Equal returns true if the other set holds exactly the same elements,
	// regardless of the backing implementation.
	Equal(other Set[T]) bool
}

func equal[T comparable](lhs, rhs Set[T]) bool {
	if rhs == nil || lhs.Cardinality() != rhs.Cardinality() {
		return false
	}

	matches := true

	lhs.Each(func(value T) bool {
		matches = rhs.Contains(value)
		return matches
	})

	return matches
}

type valueSet[T comparable] struct {
	members  map[T]struct{}
	sequence []T
}

// NewValues returns a map-backed Set containing the given values. Duplicates
// are collapsed; enumeration order is the first-occurrence order of the
// arguments.
func NewValues[T comparable](values ...T) Set[T] {
	set := valueSet[T]{
		members: make(map[T]struct{}, len(values)),
	}

	for _, value := range values {
		if _, seen := set.members[value]; !seen {
			set.members[value] = struct{}{}
			set.sequence = append(set.sequence, value)
		}
	}

	return set
}

func (s valueSet[T]) Contains(value T) bool {
	_, contained := s.members[value]
	return contained
}

func (s valueSet[T]) Cardinality() uint64 {
	return uint64(len(s.sequence))
}

func (s valueSet[T]) Each(delegate func(value T) bool) {
	for _, value := range s.sequence {
		if !delegate(value) {
			break
		}
	}
}

func (s valueSet[T]) Slice() []T {
	values := make([]T, len(s.sequence))
	copy(values, s.sequence)

	return values
}

func (s valueSet[T]) Equal(other Set[T]) bool {
	return equal[T](s, other)
}
