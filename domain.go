package fuzzyset

import (
	"fmt"

	"github.com/softsets/fuzzyset/num"
)

// DefaultStep is the sampling step used by continuous domains when no
// explicit step is given.
const DefaultStep = 0.1

// Domain describes the universe of elements a fuzzy set is defined over.
type Domain[T comparable] interface {
	// Each enumerates the domain's elements. The order is fixed at
	// construction and identical across repeated enumerations of the same
	// instance. Returning false from the delegate stops enumeration.
	Each(delegate func(element T) bool)

	// Slice allocates and returns the domain's elements in enumeration order.
	Slice() []T

	// Contains returns true if element belongs to the domain.
	Contains(element T) bool

	// Len returns the number of enumerable elements.
	Len() int

	// Equal returns true if the other domain is the same concrete variant
	// and represents the same element set. Equality is structural identity
	// of the represented set, not of the enumeration order.
	Equal(other Domain[T]) bool
}

// FiniteDomain is the domain of a finite fuzzy set: an explicit, deduplicated
// collection of comparable elements.
type FiniteDomain[T comparable] struct {
	elements []T
	members  map[T]struct{}
}

// NewFiniteDomain builds a finite domain from the given elements. Duplicates
// are collapsed; enumeration order is the first-occurrence order of the
// arguments.
func NewFiniteDomain[T comparable](elements ...T) *FiniteDomain[T] {
	domain := &FiniteDomain[T]{
		members: make(map[T]struct{}, len(elements)),
	}

	for _, element := range elements {
		if _, seen := domain.members[element]; !seen {
			domain.members[element] = struct{}{}
			domain.elements = append(domain.elements, element)
		}
	}

	return domain
}

func (s *FiniteDomain[T]) Each(delegate func(element T) bool) {
	for _, element := range s.elements {
		if !delegate(element) {
			break
		}
	}
}

func (s *FiniteDomain[T]) Slice() []T {
	elements := make([]T, len(s.elements))
	copy(elements, s.elements)

	return elements
}

func (s *FiniteDomain[T]) Contains(element T) bool {
	_, contained := s.members[element]
	return contained
}

func (s *FiniteDomain[T]) Len() int {
	return len(s.elements)
}

func (s *FiniteDomain[T]) Equal(other Domain[T]) bool {
	if otherFinite, ok := other.(*FiniteDomain[T]); ok {
		if len(s.elements) != len(otherFinite.elements) {
			return false
		}

		for element := range s.members {
			if _, contained := otherFinite.members[element]; !contained {
				return false
			}
		}

		return true
	}

	return false
}

func (s *FiniteDomain[T]) String() string {
	return fmt.Sprintf("FiniteDomain(%v)", s.elements)
}

// ContinuousDomain is the domain of a continuous fuzzy set: the closed real
// interval [start, end] sampled at increments of step starting from start.
//
// The sampled grid is materialized once at construction by repeated
// accumulation (start, start+step, ... while <= end). Accumulated floating
// point drift can make the final sample fall just past end and be dropped;
// callers that need an exact sample count should pick drift-free steps.
type ContinuousDomain struct {
	start float64
	end   float64
	step  float64
	grid  []float64
}

// NewContinuousDomain builds a sampled interval domain. It fails with
// ErrInvalidRange unless start <= end, step > 0 and all three values are
// finite.
func NewContinuousDomain(start, end, step float64) (*ContinuousDomain, error) {
	if !num.IsFinite(start) || !num.IsFinite(end) || !num.IsFinite(step) {
		return nil, fmt.Errorf("%w: bounds must be finite numbers", ErrInvalidRange)
	}

	if start > end || step <= 0 {
		return nil, fmt.Errorf("%w: start=%g end=%g step=%g", ErrInvalidRange, start, end, step)
	}

	domain := &ContinuousDomain{
		start: start,
		end:   end,
		step:  step,
	}

	for current := start; current <= end; current += step {
		domain.grid = append(domain.grid, current)
	}

	return domain, nil
}

// NewInterval builds a continuous domain over [start, end] sampled at
// DefaultStep.
func NewInterval(start, end float64) (*ContinuousDomain, error) {
	return NewContinuousDomain(start, end, DefaultStep)
}

func (s *ContinuousDomain) Start() float64 {
	return s.start
}

func (s *ContinuousDomain) End() float64 {
	return s.end
}

func (s *ContinuousDomain) Step() float64 {
	return s.step
}

func (s *ContinuousDomain) Each(delegate func(element float64) bool) {
	for _, element := range s.grid {
		if !delegate(element) {
			break
		}
	}
}

func (s *ContinuousDomain) Slice() []float64 {
	elements := make([]float64, len(s.grid))
	copy(elements, s.grid)

	return elements
}

// Contains returns true if x lies within [start, end]. Containment is
// interval membership, not grid membership: off-grid points inside the
// interval still belong to the domain.
func (s *ContinuousDomain) Contains(x float64) bool {
	return num.IsFinite(x) && s.start <= x && x <= s.end
}

func (s *ContinuousDomain) Len() int {
	return len(s.grid)
}

// Equal compares only (start, end). The step is a sampling-resolution detail
// excluded from equality so that two differently-sampled representations of
// the same interval compare equal and remain pointwise comparable. This is a
// deliberate contract specific to continuous domains; FiniteDomain equality
// stays exact.
func (s *ContinuousDomain) Equal(other Domain[float64]) bool {
	if otherContinuous, ok := other.(*ContinuousDomain); ok {
		return s.start == otherContinuous.start && s.end == otherContinuous.end
	}

	return false
}

func (s *ContinuousDomain) String() string {
	return fmt.Sprintf("ContinuousDomain(start=%g, end=%g, step=%g)", s.start, s.end, s.step)
}
