package fuzzyset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/softsets/fuzzyset/crisp"
)

// Continuous is a fuzzy set over a sampled real interval. The membership
// function is sampled eagerly over the domain's grid at construction;
// queries at grid points return the cached sample while off-grid queries
// inside the interval evaluate the original function directly, so non-linear
// membership functions stay exact between samples.
type Continuous struct {
	domain  *ContinuousDomain
	mu      MembershipFunc[float64]
	degrees []float64

	core      crisp.Set[float64]
	support   crisp.Set[float64]
	crossOver crisp.Set[float64]
}

// NewContinuous builds a continuous fuzzy set from a domain and a membership
// function. Construction fails with ErrInvalidDegrees if the function yields
// a value outside [0, 1] at any grid point, and with ErrInvalidRange when
// the domain or function is missing.
func NewContinuous(domain *ContinuousDomain, mu MembershipFunc[float64]) (*Continuous, error) {
	if domain == nil {
		return nil, fmt.Errorf("%w: nil domain", ErrInvalidRange)
	}

	if mu == nil {
		return nil, fmt.Errorf("%w: nil membership function", ErrInvalidRange)
	}

	degrees, err := sampleDegrees[float64](domain, mu)

	if err != nil {
		return nil, err
	}

	set := &Continuous{
		domain:  domain,
		mu:      mu,
		degrees: degrees,
	}

	set.core = set.cut(func(degree float64) bool { return degree == 1 })
	set.support = set.cut(func(degree float64) bool { return degree > 0 })
	set.crossOver = set.cut(func(degree float64) bool { return degree == 0.5 })

	return set, nil
}

func (s *Continuous) Domain() Domain[float64] {
	return s.domain
}

// Mu returns the membership degree of x, or 0 outside [start, end]. At an
// exact grid point the cached sample is returned, avoiding a second
// evaluation of a possibly expensive membership function; anywhere else the
// original function is evaluated at x directly rather than interpolated from
// neighboring samples.
func (s *Continuous) Mu(x float64) float64 {
	if !s.domain.Contains(x) {
		return 0
	}

	if position := sort.SearchFloat64s(s.domain.grid, x); position < len(s.domain.grid) && s.domain.grid[position] == x {
		return s.degrees[position]
	}

	return s.mu(x)
}

func (s *Continuous) Degrees() []float64 {
	degrees := make([]float64, len(s.degrees))
	copy(degrees, s.degrees)

	return degrees
}

func (s *Continuous) Height() float64 {
	height := 0.0

	for _, degree := range s.degrees {
		if degree > height {
			height = degree
		}
	}

	return height
}

func (s *Continuous) Core() crisp.Set[float64] {
	return s.core
}

func (s *Continuous) Support() crisp.Set[float64] {
	return s.support
}

func (s *Continuous) CrossOverPoints() crisp.Set[float64] {
	return s.crossOver
}

func (s *Continuous) AlphaCut(alpha float64) (crisp.Set[float64], error) {
	return alphaCutOf[float64, *Continuous](s, alpha)
}

// TNorm builds the fuzzy intersection of the two sets over the
// finer-resolution domain of the pair. A nil norm selects MinNorm. It fails
// with ErrDomainMismatch when the domains are unequal and with
// ErrInvalidDegrees when the norm yields a value outside [0, 1].
func (s *Continuous) TNorm(other *Continuous, norm Norm) (*Continuous, error) {
	if norm == nil {
		norm = MinNorm
	}

	return combine[float64, *Continuous](s, other, norm)
}

// SNorm builds the fuzzy union of the two sets. A nil norm selects MaxNorm.
func (s *Continuous) SNorm(other *Continuous, norm Norm) (*Continuous, error) {
	if norm == nil {
		norm = MaxNorm
	}

	return combine[float64, *Continuous](s, other, norm)
}

// Complement builds the set with every degree mapped through the complement
// function. A nil function selects the standard 1 - x.
func (s *Continuous) Complement(complement ComplementFunc) (*Continuous, error) {
	return complementOf[float64, *Continuous](s, complement)
}

// LessEqual reports whether s is a subset of other: pointwise <= over the
// finer-resolution domain of the pair. Sets over unequal domains are
// incomparable and fail with ErrDomainMismatch.
func (s *Continuous) LessEqual(other *Continuous) (bool, error) {
	lessEqual, _, err := compare[float64, *Continuous](s, other)
	return lessEqual, err
}

// Less reports whether s is a proper subset of other.
func (s *Continuous) Less(other *Continuous) (bool, error) {
	_, less, err := compare[float64, *Continuous](s, other)
	return less, err
}

func (s *Continuous) GreaterEqual(other *Continuous) (bool, error) {
	return other.LessEqual(s)
}

func (s *Continuous) Greater(other *Continuous) (bool, error) {
	return other.Less(s)
}

func (s *Continuous) Equal(other Set[float64]) bool {
	if otherContinuous, ok := other.(*Continuous); ok {
		return pointwiseEqual[float64, *Continuous](s, otherContinuous)
	}

	return false
}

// String renders the sampled set in the conventional sum notation, e.g.
// "1.0/0.40 + 1.5/0.40".
func (s *Continuous) String() string {
	terms := make([]string, 0, len(s.degrees))

	for position, x := range s.domain.grid {
		terms = append(terms, fmt.Sprintf("%v/%.2f", x, s.degrees[position]))
	}

	return strings.Join(terms, " + ")
}

func (s *Continuous) fromDomain(domain Domain[float64], mu MembershipFunc[float64]) (*Continuous, error) {
	continuousDomain, ok := domain.(*ContinuousDomain)

	if !ok {
		return nil, fmt.Errorf("%w: expected a continuous domain, got %T", ErrTypeMismatch, domain)
	}

	return NewContinuous(continuousDomain, mu)
}

// selectDomain picks the domain with the strictly smaller step: the finer
// sampling is the more precise basis for pointwise combination. Ties favor
// the receiver's domain.
func (s *Continuous) selectDomain(other *Continuous) Domain[float64] {
	if other.domain.step < s.domain.step {
		return other.domain
	}

	return s.domain
}

func (s *Continuous) cut(include func(degree float64) bool) crisp.Set[float64] {
	matches := crisp.NewGrid(s.domain.grid)

	for position, degree := range s.degrees {
		if include(degree) {
			matches.Add(uint32(position))
		}
	}

	return matches
}
