// Package tfn implements triangular fuzzy numbers (TFNs) with closed-form
// arithmetic over their alpha-cut intervals.
//
// A triangular fuzzy number is the fuzzy set of real numbers whose
// membership function rises linearly from 0 at left to 1 at peak and falls
// linearly back to 0 at right. Because such numbers are fully described by
// their (left, peak, right) corners, arithmetic is performed exactly on the
// alpha-cut bound polynomials instead of resampling membership curves: the
// package is independent of the fuzzyset set hierarchy.
package tfn

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/softsets/fuzzyset/num"
)

const peakOffset = 1.0

// Number is an immutable triangular fuzzy number with corners
// left < peak < right. The zero value is not a valid number; use one of the
// constructors.
type Number struct {
	left  float64
	peak  float64
	right float64
	cut   AlphaCut
}

// New returns the triangular number centered on peak with the default
// corner offset of 1: (peak-1, peak, peak+1). It fails with
// ErrInvalidOperand when peak is not finite.
func New(peak float64) (Number, error) {
	return FromTriple(peak-peakOffset, peak, peak+peakOffset)
}

// FromTriple builds a number from its (left, peak, right) corners. It fails
// with ErrInvalidOperand when a corner is not finite and with
// ErrInvalidBounds unless left < peak < right strictly.
func FromTriple(left, peak, right float64) (Number, error) {
	for _, value := range []float64{left, peak, right} {
		if !num.IsFinite(value) {
			return Number{}, fmt.Errorf("%w: %v", ErrInvalidOperand, value)
		}
	}

	if left >= peak {
		return Number{}, fmt.Errorf("%w: l (%g) >= n (%g)", ErrInvalidBounds, left, peak)
	}

	if right <= peak {
		return Number{}, fmt.Errorf("%w: r (%g) <= n (%g)", ErrInvalidBounds, right, peak)
	}

	return Number{
		left:  left,
		peak:  peak,
		right: right,
		cut:   cutOf(left, peak, right),
	}, nil
}

// FromSlice builds a number from a slice holding exactly (left, peak, right).
// It fails with ErrInvalidTriple for any other length.
func FromSlice(values []float64) (Number, error) {
	if len(values) != 3 {
		return Number{}, fmt.Errorf("%w, got %d", ErrInvalidTriple, len(values))
	}

	return FromTriple(values[0], values[1], values[2])
}

func (s Number) Left() float64 {
	return s.left
}

func (s Number) Peak() float64 {
	return s.peak
}

func (s Number) Right() float64 {
	return s.right
}

// Triple returns the number's corners in (left, peak, right) order.
func (s Number) Triple() (float64, float64, float64) {
	return s.left, s.peak, s.right
}

// AlphaCut returns the number's alpha-cut interval representation.
func (s Number) AlphaCut() AlphaCut {
	return s.cut
}

// Mu computes the membership degree of x. Both feet are 0 by definition and
// the two ramps agree on 1 at the peak. Non-finite queries degrade to 0.
func (s Number) Mu(x float64) float64 {
	switch {
	case !num.IsFinite(x) || x < s.left || x > s.right:
		return 0

	case x <= s.peak:
		return (x - s.left) / (s.peak - s.left)

	default:
		return (s.right - x) / (s.right - s.peak)
	}
}

// Add returns the sum of the two numbers via the Minkowski sum of their
// alpha-cut intervals.
func (s Number) Add(other Number) (Number, error) {
	return s.operate(other, AlphaCut.add)
}

// Sub returns the difference of the two numbers.
func (s Number) Sub(other Number) (Number, error) {
	return s.operate(other, AlphaCut.sub)
}

// Mul returns the product of the two numbers. The bound-wise product is only
// a faithful interval product for non-negative bounds; see AlphaCut for the
// exact contract.
func (s Number) Mul(other Number) (Number, error) {
	return s.operate(other, AlphaCut.mul)
}

// Div returns the quotient of the two numbers using exact rational bound
// evaluation. Dividing by a number whose support straddles zero fails with
// ErrInvalidOperand through the corner validation.
func (s Number) Div(other Number) (Number, error) {
	return s.operate(other, AlphaCut.div)
}

// operate runs one alpha-cut operation and recovers the result's corners by
// evaluating the derived bounds at alpha = 0 and alpha = 1: P(0) is the new
// left, P(1) the new peak (which coincides with Q(1)) and Q(0) the new right.
func (s Number) operate(other Number, op func(AlphaCut, AlphaCut) (bound, bound)) (Number, error) {
	p, q := op(s.cut, other.cut)
	return FromTriple(p(0), p(1), q(0))
}

// Neg returns the negated number: corners negate and the outer two swap.
func (s Number) Neg() Number {
	negated, _ := FromTriple(-s.right, -s.peak, -s.left)
	return negated
}

func (s Number) Equal(other Number) bool {
	return s.left == other.left && s.peak == other.peak && s.right == other.right
}

// Less reports whether other's support properly contains s's support.
// Ordering is only defined for numbers sharing a peak; numbers with
// different peaks are simply unordered, never an error.
func (s Number) Less(other Number) bool {
	return s.peak == other.peak &&
		((s.left > other.left && s.right <= other.right) ||
			(s.left >= other.left && s.right < other.right))
}

func (s Number) Greater(other Number) bool {
	return other.Less(s)
}

func (s Number) LessEqual(other Number) bool {
	return s.Equal(other) || s.Less(other)
}

func (s Number) GreaterEqual(other Number) bool {
	return other.LessEqual(s)
}

// Hash returns a digest of the number's corners, suitable for deduplicating
// numbers in map-free containers.
func (s Number) Hash() uint64 {
	var packed [24]byte

	binary.LittleEndian.PutUint64(packed[0:8], math.Float64bits(s.left))
	binary.LittleEndian.PutUint64(packed[8:16], math.Float64bits(s.peak))
	binary.LittleEndian.PutUint64(packed[16:24], math.Float64bits(s.right))

	return xxhash.Sum64(packed[:])
}

func (s Number) String() string {
	return fmt.Sprintf("Number(l=%g, n=%g, r=%g)", s.left, s.peak, s.right)
}
