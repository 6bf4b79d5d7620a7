package tfn

// linear is a degree-1 polynomial a + b*alpha. The alpha-cut bounds of a
// triangular number are linear in alpha, which is what keeps the arithmetic
// below closed-form instead of resampled.
type linear struct {
	a float64
	b float64
}

func (s linear) at(alpha float64) float64 {
	return s.a + s.b*alpha
}

func (s linear) add(other linear) linear {
	return linear{a: s.a + other.a, b: s.b + other.b}
}

func (s linear) sub(other linear) linear {
	return linear{a: s.a - other.a, b: s.b - other.b}
}

// bound evaluates one side of a derived alpha-cut interval. Addition and
// subtraction of triangular numbers keep the bounds linear; multiplication
// makes them quadratic and division makes them rational. Only evaluations at
// alpha = 0 and alpha = 1 are ever needed to recover the result's corners,
// so derived bounds are carried as evaluation closures over the exact closed
// forms rather than expanded coefficient vectors.
type bound func(alpha float64) float64
