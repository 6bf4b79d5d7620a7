package tfn

import (
	"fmt"

	"github.com/softsets/fuzzyset/num"
)

// AlphaCut is the alpha-parameterized interval of a triangular fuzzy number:
//
//	[p(alpha), q(alpha)] = [l + alpha*(n-l), r + alpha*(n-r)]
//
// so that p(0) = l, q(0) = r and p(1) = q(1) = n. Arithmetic over triangular
// numbers operates on these bound pairs rather than on sampled membership
// curves, which keeps every operation exact and O(1).
type AlphaCut struct {
	p linear
	q linear
}

func cutOf(left, peak, right float64) AlphaCut {
	return AlphaCut{
		p: linear{a: left, b: peak - left},
		q: linear{a: right, b: peak - right},
	}
}

// ForAlpha evaluates the interval bounds at the given alpha. It fails with
// ErrInvalidAlpha unless alpha lies in [0, 1].
func (s AlphaCut) ForAlpha(alpha float64) (float64, float64, error) {
	if !num.IsAlpha(alpha) {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}

	return s.p.at(alpha), s.q.at(alpha), nil
}

// add is the Minkowski sum of the two intervals: bounds add side by side.
func (s AlphaCut) add(other AlphaCut) (bound, bound) {
	return s.p.add(other.p).at, s.q.add(other.q).at
}

// sub subtracts the other interval: negating an interval swaps its bounds,
// hence the cross terms p1 - q2 and q1 - p2.
func (s AlphaCut) sub(other AlphaCut) (bound, bound) {
	return s.p.sub(other.q).at, s.q.sub(other.p).at
}

// mul multiplies bound-wise: [p1*p2, q1*q2]. This is a simplification of
// general interval multiplication that holds when all bounds are
// non-negative across the alpha range; intervals with negative bounds can
// yield a corner ordering the Number constructor rejects.
func (s AlphaCut) mul(other AlphaCut) (bound, bound) {
	return func(alpha float64) float64 {
			return s.p.at(alpha) * other.p.at(alpha)
		}, func(alpha float64) float64 {
			return s.q.at(alpha) * other.q.at(alpha)
		}
}

// div divides bound-wise with the cross terms of interval reciprocals:
// [p1/q2, q1/p2]. The bounds are evaluated as exact rationals; an interval
// whose bounds straddle zero produces non-finite corners the Number
// constructor rejects.
func (s AlphaCut) div(other AlphaCut) (bound, bound) {
	return func(alpha float64) float64 {
			return s.p.at(alpha) / other.q.at(alpha)
		}, func(alpha float64) float64 {
			return s.q.at(alpha) / other.p.at(alpha)
		}
}

// String renders the bound pair with its linear coefficients, e.g.
// "[1 + alpha * 1, 3 + alpha * -1]".
func (s AlphaCut) String() string {
	return fmt.Sprintf("[%g + alpha * %g, %g + alpha * %g]", s.p.a, s.p.b, s.q.a, s.q.b)
}
