// Package num holds the scalar helpers shared by the fuzzy set and fuzzy
// number packages: membership degree and alpha predicates plus the default
// complement.
package num

import "math"

// IsDegree reports whether v is a valid membership degree: a real number in
// the range [0, 1]. NaN is rejected.
func IsDegree(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// IsAlpha reports whether a is a valid alpha-cut threshold. The valid range
// coincides with the membership degree range.
func IsAlpha(a float64) bool {
	return IsDegree(a)
}

// IsFinite reports whether v is a real, finite number.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Complement is the standard fuzzy complement 1 - x.
func Complement(x float64) float64 {
	return 1 - x
}
