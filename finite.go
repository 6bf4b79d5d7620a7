package fuzzyset

import (
	"fmt"
	"strings"

	"github.com/softsets/fuzzyset/crisp"
)

// Finite is a fuzzy set over an explicit collection of comparable elements.
// Element lookup is O(1) through a position index built at construction.
type Finite[T comparable] struct {
	domain    *FiniteDomain[T]
	degrees   []float64
	positions map[T]int

	core      crisp.Set[T]
	support   crisp.Set[T]
	crossOver crisp.Set[T]
}

// NewFinite builds a finite fuzzy set from an element-to-degree mapping. The
// domain is derived from the mapping's keys; its enumeration order is fixed
// at construction but otherwise unspecified, which is harmless since element
// identity, not position, governs every operation. Construction fails with
// ErrInvalidDegrees if any degree falls outside [0, 1].
func NewFinite[T comparable](grades map[T]float64) (*Finite[T], error) {
	elements := make([]T, 0, len(grades))

	for element := range grades {
		elements = append(elements, element)
	}

	return newFinite(NewFiniteDomain(elements...), func(x T) float64 {
		return grades[x]
	})
}

func newFinite[T comparable](domain *FiniteDomain[T], mu MembershipFunc[T]) (*Finite[T], error) {
	degrees, err := sampleDegrees[T](domain, mu)

	if err != nil {
		return nil, err
	}

	set := &Finite[T]{
		domain:    domain,
		degrees:   degrees,
		positions: make(map[T]int, len(domain.elements)),
	}

	for position, element := range domain.elements {
		set.positions[element] = position
	}

	set.core = set.cut(func(degree float64) bool { return degree == 1 })
	set.support = set.cut(func(degree float64) bool { return degree > 0 })
	set.crossOver = set.cut(func(degree float64) bool { return degree == 0.5 })

	return set, nil
}

func (s *Finite[T]) Domain() Domain[T] {
	return s.domain
}

func (s *Finite[T]) Mu(x T) float64 {
	if position, contained := s.positions[x]; contained {
		return s.degrees[position]
	}

	return 0
}

func (s *Finite[T]) Degrees() []float64 {
	degrees := make([]float64, len(s.degrees))
	copy(degrees, s.degrees)

	return degrees
}

func (s *Finite[T]) Height() float64 {
	height := 0.0

	for _, degree := range s.degrees {
		if degree > height {
			height = degree
		}
	}

	return height
}

func (s *Finite[T]) Core() crisp.Set[T] {
	return s.core
}

func (s *Finite[T]) Support() crisp.Set[T] {
	return s.support
}

func (s *Finite[T]) CrossOverPoints() crisp.Set[T] {
	return s.crossOver
}

func (s *Finite[T]) AlphaCut(alpha float64) (crisp.Set[T], error) {
	return alphaCutOf[T, *Finite[T]](s, alpha)
}

// TNorm builds the fuzzy intersection of the two sets: the degree at every
// element is norm(s.Mu(x), other.Mu(x)). A nil norm selects MinNorm. It
// fails with ErrDomainMismatch when the domains are unequal and with
// ErrInvalidDegrees when the norm yields a value outside [0, 1].
func (s *Finite[T]) TNorm(other *Finite[T], norm Norm) (*Finite[T], error) {
	if norm == nil {
		norm = MinNorm
	}

	return combine[T, *Finite[T]](s, other, norm)
}

// SNorm builds the fuzzy union of the two sets. A nil norm selects MaxNorm.
func (s *Finite[T]) SNorm(other *Finite[T], norm Norm) (*Finite[T], error) {
	if norm == nil {
		norm = MaxNorm
	}

	return combine[T, *Finite[T]](s, other, norm)
}

// Complement builds the set with every degree mapped through the complement
// function. A nil function selects the standard 1 - x.
func (s *Finite[T]) Complement(complement ComplementFunc) (*Finite[T], error) {
	return complementOf[T, *Finite[T]](s, complement)
}

// LessEqual reports whether s is a subset of other: pointwise <= at every
// element. Sets over unequal domains are incomparable and fail with
// ErrDomainMismatch.
func (s *Finite[T]) LessEqual(other *Finite[T]) (bool, error) {
	lessEqual, _, err := compare[T, *Finite[T]](s, other)
	return lessEqual, err
}

// Less reports whether s is a proper subset of other.
func (s *Finite[T]) Less(other *Finite[T]) (bool, error) {
	_, less, err := compare[T, *Finite[T]](s, other)
	return less, err
}

func (s *Finite[T]) GreaterEqual(other *Finite[T]) (bool, error) {
	return other.LessEqual(s)
}

func (s *Finite[T]) Greater(other *Finite[T]) (bool, error) {
	return other.Less(s)
}

func (s *Finite[T]) Equal(other Set[T]) bool {
	if otherFinite, ok := other.(*Finite[T]); ok {
		return pointwiseEqual[T, *Finite[T]](s, otherFinite)
	}

	return false
}

// String renders the set in the conventional sum notation, e.g.
// "a/0.56 + b/1.00".
func (s *Finite[T]) String() string {
	terms := make([]string, 0, len(s.degrees))

	for position, element := range s.domain.elements {
		terms = append(terms, fmt.Sprintf("%v/%.2f", element, s.degrees[position]))
	}

	return strings.Join(terms, " + ")
}

func (s *Finite[T]) fromDomain(domain Domain[T], mu MembershipFunc[T]) (*Finite[T], error) {
	grades := make(map[T]float64, domain.Len())

	domain.Each(func(element T) bool {
		grades[element] = mu(element)
		return true
	})

	return NewFinite(grades)
}

func (s *Finite[T]) selectDomain(other *Finite[T]) Domain[T] {
	return s.domain
}

func (s *Finite[T]) cut(include func(degree float64) bool) crisp.Set[T] {
	matches := make([]T, 0, len(s.degrees))

	for position, element := range s.domain.elements {
		if include(s.degrees[position]) {
			matches = append(matches, element)
		}
	}

	return crisp.NewValues(matches...)
}
