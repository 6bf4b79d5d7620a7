// Package fuzzyset models fuzzy sets: mappings from a domain to membership
// degrees in [0, 1], together with the set algebra over them (t-norms,
// s-norms, complements, pointwise ordering and derived crisp sets).
//
// Two set variants exist: Finite, defined over an explicit element
// collection, and Continuous, defined over a sampled real interval. The
// operator algebra is written once and parameterized over the variant
// capability, so both variants share identical semantics.
package fuzzyset

import (
	"fmt"
	"math"

	"github.com/softsets/fuzzyset/crisp"
	"github.com/softsets/fuzzyset/num"
	"github.com/softsets/fuzzyset/util"
)

// MembershipFunc maps a domain element to its membership degree.
type MembershipFunc[T comparable] func(x T) float64

// Norm combines two membership degrees into one. Implementations must
// satisfy the t-norm or s-norm axioms (boundary conditions, commutativity,
// monotonicity, associativity) for the combined set to remain a valid fuzzy
// intersection or union.
type Norm func(x, y float64) float64

// ComplementFunc maps a membership degree to its complement.
type ComplementFunc func(x float64) float64

// MinNorm is the default t-norm.
func MinNorm(x, y float64) float64 {
	return math.Min(x, y)
}

// MaxNorm is the default s-norm.
func MaxNorm(x, y float64) float64 {
	return math.Max(x, y)
}

// Set is the capability shared by both fuzzy set variants. Sets are
// immutable after construction; every derived value below is precomputed, so
// instances are safe to share across goroutines.
type Set[T comparable] interface {
	// Domain returns the universe the set is defined over. Domains may be
	// shared read-only across sets.
	Domain() Domain[T]

	// Mu returns the membership degree of x, or 0 if x lies outside the
	// domain.
	Mu(x T) float64

	// Degrees returns the membership degrees in domain enumeration order.
	Degrees() []float64

	// Height returns the maximum membership degree, or 0 for an empty
	// domain.
	Height() float64

	// Core returns the crisp set of elements with degree exactly 1.
	Core() crisp.Set[T]

	// Support returns the crisp set of elements with degree strictly
	// greater than 0.
	Support() crisp.Set[T]

	// CrossOverPoints returns the crisp set of elements with degree exactly
	// 0.5.
	CrossOverPoints() crisp.Set[T]

	// AlphaCut returns the crisp set of elements with degree >= alpha. It
	// fails with ErrInvalidAlpha unless alpha lies in [0, 1].
	AlphaCut(alpha float64) (crisp.Set[T], error)

	// Equal returns true if other is the same concrete variant over an
	// equal domain with pointwise-equal degrees.
	Equal(other Set[T]) bool
}

// variant is the closed capability the operator engine is written over. Each
// concrete set type contributes element lookup, construction over a domain
// and domain selection; everything else lives once in the engine below.
type variant[T comparable, S any] interface {
	Set[T]

	fromDomain(domain Domain[T], mu MembershipFunc[T]) (S, error)
	selectDomain(other S) Domain[T]
	cut(include func(degree float64) bool) crisp.Set[T]
}

// sampleDegrees evaluates mu at every domain element, validating each degree
// eagerly. All violations are collected and reported together under
// ErrInvalidDegrees; no partial degree slice is ever returned.
func sampleDegrees[T comparable](domain Domain[T], mu MembershipFunc[T]) ([]float64, error) {
	var (
		degrees   = make([]float64, 0, domain.Len())
		collector = util.NewErrorCollector()
	)

	domain.Each(func(element T) bool {
		degree := mu(element)

		if !num.IsDegree(degree) {
			collector.Add(fmt.Errorf("degree %v of element %v is not in [0, 1]", degree, element))
		}

		degrees = append(degrees, degree)
		return true
	})

	if err := collector.Combined(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDegrees, err)
	}

	return degrees, nil
}

func combine[T comparable, S variant[T, S]](lhs, rhs S, norm Norm) (S, error) {
	var zero S

	if !lhs.Domain().Equal(rhs.Domain()) {
		return zero, fmt.Errorf("%w: %v and %v", ErrDomainMismatch, lhs.Domain(), rhs.Domain())
	}

	return lhs.fromDomain(lhs.selectDomain(rhs), func(x T) float64 {
		return norm(lhs.Mu(x), rhs.Mu(x))
	})
}

func complementOf[T comparable, S variant[T, S]](set S, complement ComplementFunc) (S, error) {
	if complement == nil {
		complement = num.Complement
	}

	return set.fromDomain(set.Domain(), func(x T) float64 {
		return complement(set.Mu(x))
	})
}

// compare performs the pointwise ordering pass over the selected domain.
// lessEqual is universal pointwise <=; less additionally requires at least
// one strictly smaller degree. Sets over unequal domains are incomparable
// and fail with ErrDomainMismatch.
func compare[T comparable, S variant[T, S]](lhs, rhs S) (lessEqual, less bool, err error) {
	if !lhs.Domain().Equal(rhs.Domain()) {
		return false, false, fmt.Errorf("%w: %v and %v", ErrDomainMismatch, lhs.Domain(), rhs.Domain())
	}

	var (
		anyStrict = false
		pointwise = true
	)

	lhs.selectDomain(rhs).Each(func(x T) bool {
		lhsDegree, rhsDegree := lhs.Mu(x), rhs.Mu(x)

		if lhsDegree > rhsDegree {
			pointwise = false
			return false
		}

		if lhsDegree < rhsDegree {
			anyStrict = true
		}

		return true
	})

	return pointwise, pointwise && anyStrict, nil
}

func pointwiseEqual[T comparable, S variant[T, S]](lhs, rhs S) bool {
	if !lhs.Domain().Equal(rhs.Domain()) {
		return false
	}

	matches := true

	lhs.selectDomain(rhs).Each(func(x T) bool {
		matches = lhs.Mu(x) == rhs.Mu(x)
		return matches
	})

	return matches
}

func alphaCutOf[T comparable, S variant[T, S]](set S, alpha float64) (crisp.Set[T], error) {
	if !num.IsAlpha(alpha) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}

	return set.cut(func(degree float64) bool {
		return degree >= alpha
	}), nil
}

// TNorm applies the norm pointwise over two sets held as interface values,
// dispatching on their concrete variant. It fails with ErrTypeMismatch when
// the variants differ and ErrDomainMismatch when the domains are unequal. A
// nil norm selects MinNorm.
func TNorm[T comparable](lhs, rhs Set[T], norm Norm) (Set[T], error) {
	switch typedLHS := any(lhs).(type) {
	case *Finite[T]:
		if typedRHS, ok := any(rhs).(*Finite[T]); ok {
			return liftResult[T](typedLHS.TNorm(typedRHS, norm))
		}

	case *Continuous:
		if typedRHS, ok := any(rhs).(*Continuous); ok {
			return liftResult[T](typedLHS.TNorm(typedRHS, norm))
		}
	}

	return nil, fmt.Errorf("%w: %T and %T", ErrTypeMismatch, lhs, rhs)
}

// SNorm is the union analog of TNorm. A nil norm selects MaxNorm.
func SNorm[T comparable](lhs, rhs Set[T], norm Norm) (Set[T], error) {
	switch typedLHS := any(lhs).(type) {
	case *Finite[T]:
		if typedRHS, ok := any(rhs).(*Finite[T]); ok {
			return liftResult[T](typedLHS.SNorm(typedRHS, norm))
		}

	case *Continuous:
		if typedRHS, ok := any(rhs).(*Continuous); ok {
			return liftResult[T](typedLHS.SNorm(typedRHS, norm))
		}
	}

	return nil, fmt.Errorf("%w: %T and %T", ErrTypeMismatch, lhs, rhs)
}

// Complement returns the complement of a set held as an interface value. A
// nil complement function selects the standard 1 - x.
func Complement[T comparable](set Set[T], complement ComplementFunc) (Set[T], error) {
	switch typedSet := any(set).(type) {
	case *Finite[T]:
		return liftResult[T](typedSet.Complement(complement))

	case *Continuous:
		return liftResult[T](typedSet.Complement(complement))
	}

	return nil, fmt.Errorf("%w: %T", ErrTypeMismatch, set)
}

// LessEqual reports whether lhs is a subset of rhs: pointwise <= over the
// whole domain. It fails with ErrTypeMismatch when the variants differ,
// regardless of domain equality, and with ErrDomainMismatch when the
// variants match but the domains are unequal.
func LessEqual[T comparable](lhs, rhs Set[T]) (bool, error) {
	lessEqual, _, err := order[T](lhs, rhs)
	return lessEqual, err
}

// Less reports whether lhs is a proper subset of rhs: pointwise <= with at
// least one strictly smaller degree.
func Less[T comparable](lhs, rhs Set[T]) (bool, error) {
	_, less, err := order[T](lhs, rhs)
	return less, err
}

// GreaterEqual mirrors LessEqual with the operands swapped.
func GreaterEqual[T comparable](lhs, rhs Set[T]) (bool, error) {
	return LessEqual[T](rhs, lhs)
}

// Greater mirrors Less with the operands swapped.
func Greater[T comparable](lhs, rhs Set[T]) (bool, error) {
	return Less[T](rhs, lhs)
}

func order[T comparable](lhs, rhs Set[T]) (lessEqual, less bool, err error) {
	switch typedLHS := any(lhs).(type) {
	case *Finite[T]:
		if typedRHS, ok := any(rhs).(*Finite[T]); ok {
			return compare[T, *Finite[T]](typedLHS, typedRHS)
		}

	case *Continuous:
		if typedRHS, ok := any(rhs).(*Continuous); ok {
			return compare[float64, *Continuous](typedLHS, typedRHS)
		}
	}

	return false, false, fmt.Errorf("%w: %T and %T", ErrTypeMismatch, lhs, rhs)
}

func liftResult[T comparable, S any](result S, err error) (Set[T], error) {
	if err != nil {
		return nil, err
	}

	return any(result).(Set[T]), nil
}

var (
	_ variant[int, *Finite[int]]    = (*Finite[int])(nil)
	_ variant[float64, *Continuous] = (*Continuous)(nil)
)
