package fuzzyset_test

import (
	"math"
	"testing"

	fuzzyset "github.com/softsets/fuzzyset"
	"github.com/softsets/fuzzyset/crisp"
	"github.com/stretchr/testify/require"
)

func mustFinite[T comparable](t *testing.T, grades map[T]float64) *fuzzyset.Finite[T] {
	t.Helper()

	set, err := fuzzyset.NewFinite(grades)
	require.NoError(t, err)

	return set
}

func TestNewFinite_InvalidDegreesFailConstruction(t *testing.T) {
	_, err := fuzzyset.NewFinite(map[int]float64{1: 0.5, 2: 1.2, 3: -0.1})

	require.ErrorIs(t, err, fuzzyset.ErrInvalidDegrees)
}

func TestNewFinite_NaNDegreeFailsConstruction(t *testing.T) {
	_, err := fuzzyset.NewFinite(map[int]float64{1: math.NaN()})

	require.ErrorIs(t, err, fuzzyset.ErrInvalidDegrees)
}

func TestFinite_Mu(t *testing.T) {
	set := mustFinite(t, map[int]float64{1: 0.5, 2: 0.7, 3: 0.9})

	require.Equal(t, 0.5, set.Mu(1))
	require.Equal(t, 0.7, set.Mu(2))
	require.Equal(t, 0.9, set.Mu(3))
	require.Equal(t, 0.0, set.Mu(4))
}

func TestFinite_DegreesFollowDomainOrder(t *testing.T) {
	set := mustFinite(t, map[string]float64{"a": 0.2, "b": 0.8})

	var (
		elements = set.Domain().Slice()
		degrees  = set.Degrees()
	)

	require.Len(t, degrees, 2)

	for position, element := range elements {
		require.Equal(t, set.Mu(element), degrees[position])
	}
}

func TestFinite_DerivedSets(t *testing.T) {
	t.Run("empty set yields empty derived sets", func(t *testing.T) {
		set := mustFinite(t, map[int]float64{})

		require.Equal(t, uint64(0), set.Core().Cardinality())
		require.Equal(t, uint64(0), set.Support().Cardinality())
		require.Equal(t, uint64(0), set.CrossOverPoints().Cardinality())
	})

	t.Run("core holds elements with degree one", func(t *testing.T) {
		set := mustFinite(t, map[int]float64{1: 0.5, 2: 1.0, 3: 0.0})

		require.True(t, set.Core().Equal(crisp.NewValues(2)))
	})

	t.Run("support holds elements with positive degree", func(t *testing.T) {
		set := mustFinite(t, map[int]float64{1: 0.5, 2: 0.0, 3: 0.9})

		require.True(t, set.Support().Equal(crisp.NewValues(1, 3)))
	})

	t.Run("cross-over points hold elements with degree one half", func(t *testing.T) {
		set := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.3})

		require.True(t, set.CrossOverPoints().Equal(crisp.NewValues(2)))
	})
}

func TestFinite_AlphaCut(t *testing.T) {
	set := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.3})

	t.Run("invalid alpha", func(t *testing.T) {
		_, err := set.AlphaCut(1.1)
		require.ErrorIs(t, err, fuzzyset.ErrInvalidAlpha)
	})

	t.Run("thresholds", func(t *testing.T) {
		cut, err := set.AlphaCut(0.5)
		require.NoError(t, err)
		require.True(t, cut.Equal(crisp.NewValues(1, 2)))

		cut, err = set.AlphaCut(0.6)
		require.NoError(t, err)
		require.True(t, cut.Equal(crisp.NewValues(1)))

		cut, err = set.AlphaCut(0.7)
		require.NoError(t, err)
		require.Equal(t, uint64(0), cut.Cardinality())
	})

	t.Run("empty set", func(t *testing.T) {
		cut, err := mustFinite(t, map[int]float64{}).AlphaCut(0.5)
		require.NoError(t, err)
		require.Equal(t, uint64(0), cut.Cardinality())
	})
}

func TestFinite_Height(t *testing.T) {
	require.Equal(t, 0.0, mustFinite(t, map[int]float64{}).Height())
	require.Equal(t, 0.9, mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9}).Height())
}

func TestFinite_Equal(t *testing.T) {
	set := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9})

	require.True(t, set.Equal(mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9})))
	require.False(t, set.Equal(mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.8})))
	require.False(t, set.Equal(mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9, 4: 0.3})))
}

func TestFinite_Ordering(t *testing.T) {
	set := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9})

	mustOrder := func(t *testing.T) func(ordered bool, err error) bool {
		return func(ordered bool, err error) bool {
			t.Helper()
			require.NoError(t, err)

			return ordered
		}
	}

	t.Run("equal sets are subsets but not proper subsets", func(t *testing.T) {
		same := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9})

		require.True(t, mustOrder(t)(set.LessEqual(same)))
		require.True(t, mustOrder(t)(set.GreaterEqual(same)))
		require.False(t, mustOrder(t)(set.Less(same)))
		require.False(t, mustOrder(t)(set.Greater(same)))
	})

	t.Run("one greater degree makes a proper subset", func(t *testing.T) {
		larger := mustFinite(t, map[int]float64{1: 0.6, 2: 0.7, 3: 0.9})

		require.True(t, mustOrder(t)(set.Less(larger)))
		require.True(t, mustOrder(t)(set.LessEqual(larger)))
		require.True(t, mustOrder(t)(larger.Greater(set)))
		require.True(t, mustOrder(t)(larger.GreaterEqual(set)))
	})

	t.Run("unequal domains are incomparable", func(t *testing.T) {
		other := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 4: 0.9})

		_, err := set.LessEqual(other)
		require.ErrorIs(t, err, fuzzyset.ErrDomainMismatch)

		_, err = set.Less(other)
		require.ErrorIs(t, err, fuzzyset.ErrDomainMismatch)

		_, err = set.Greater(other)
		require.ErrorIs(t, err, fuzzyset.ErrDomainMismatch)

		_, err = set.GreaterEqual(other)
		require.ErrorIs(t, err, fuzzyset.ErrDomainMismatch)
	})
}

func TestFinite_TNorm(t *testing.T) {
	t.Run("default is min", func(t *testing.T) {
		lhs := mustFinite(t, map[int]float64{1: 0.5, 2: 0.5, 3: 0.8})
		rhs := mustFinite(t, map[int]float64{1: 0.6, 2: 0.4, 3: 0.9})

		result, err := lhs.TNorm(rhs, nil)
		require.NoError(t, err)

		require.True(t, result.Equal(mustFinite(t, map[int]float64{1: 0.5, 2: 0.4, 3: 0.8})))
	})

	t.Run("custom norm", func(t *testing.T) {
		lhs := mustFinite(t, map[int]float64{1: 0.5, 2: 0.5, 3: 0.9})
		rhs := mustFinite(t, map[int]float64{1: 0.6, 2: 0.4, 3: 0.5})

		result, err := lhs.TNorm(rhs, func(x, y float64) float64 { return x * y })
		require.NoError(t, err)

		require.True(t, result.Equal(mustFinite(t, map[int]float64{1: 0.3, 2: 0.2, 3: 0.45})))
	})

	t.Run("domain mismatch", func(t *testing.T) {
		lhs := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9})
		rhs := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 4: 0.9})

		_, err := lhs.TNorm(rhs, nil)
		require.ErrorIs(t, err, fuzzyset.ErrDomainMismatch)
	})

	t.Run("norm escaping the degree range fails the result set", func(t *testing.T) {
		set := mustFinite(t, map[string]float64{"a": 0.5, "b": 0.7})

		_, err := set.TNorm(set, func(x, y float64) float64 { return x + y })
		require.ErrorIs(t, err, fuzzyset.ErrInvalidDegrees)
	})

	t.Run("empty sets combine to the empty set", func(t *testing.T) {
		empty := mustFinite(t, map[int]float64{})

		result, err := empty.TNorm(empty, nil)
		require.NoError(t, err)
		require.True(t, result.Equal(empty))
	})
}

func TestFinite_SNorm(t *testing.T) {
	t.Run("default is max", func(t *testing.T) {
		lhs := mustFinite(t, map[int]float64{1: 0.5, 2: 0.5, 3: 0.8})
		rhs := mustFinite(t, map[int]float64{1: 0.6, 2: 0.4, 3: 0.9})

		result, err := lhs.SNorm(rhs, nil)
		require.NoError(t, err)

		require.True(t, result.Equal(mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9})))
	})

	t.Run("custom bounded-sum norm", func(t *testing.T) {
		lhs := mustFinite(t, map[int]float64{1: 0.5, 2: 0.5, 3: 0.9})
		rhs := mustFinite(t, map[int]float64{1: 0.6, 2: 0.4, 3: 0.5})

		result, err := lhs.SNorm(rhs, func(x, y float64) float64 { return math.Min(x+y, 1) })
		require.NoError(t, err)

		require.True(t, result.Equal(mustFinite(t, map[int]float64{1: 1.0, 2: 0.9, 3: 1.0})))
	})

	t.Run("domain mismatch", func(t *testing.T) {
		lhs := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 3: 0.9})
		rhs := mustFinite(t, map[int]float64{1: 0.6, 2: 0.5, 4: 0.9})

		_, err := lhs.SNorm(rhs, nil)
		require.ErrorIs(t, err, fuzzyset.ErrDomainMismatch)
	})
}

func TestFinite_Complement(t *testing.T) {
	t.Run("default is one minus the degree", func(t *testing.T) {
		set := mustFinite(t, map[int]float64{1: 0.5, 2: 1.0})

		result, err := set.Complement(nil)
		require.NoError(t, err)

		require.True(t, result.Equal(mustFinite(t, map[int]float64{1: 0.5, 2: 0.0})))
	})

	t.Run("complement escaping the degree range fails", func(t *testing.T) {
		set := mustFinite(t, map[int]float64{1: 0.5, 2: 0.7})

		_, err := set.Complement(func(x float64) float64 { return x + 1 })
		require.ErrorIs(t, err, fuzzyset.ErrInvalidDegrees)
	})
}

func TestFinite_String(t *testing.T) {
	set := mustFinite(t, map[int]float64{7: 0.564})

	require.Equal(t, "7/0.56", set.String())
}
