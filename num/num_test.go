package num_test

import (
	"math"
	"testing"

	"github.com/softsets/fuzzyset/num"
	"github.com/stretchr/testify/require"
)

func TestIsDegree(t *testing.T) {
	require.True(t, num.IsDegree(0))
	require.True(t, num.IsDegree(0.5))
	require.True(t, num.IsDegree(1))

	require.False(t, num.IsDegree(1.5))
	require.False(t, num.IsDegree(-0.5))
	require.False(t, num.IsDegree(math.NaN()))
	require.False(t, num.IsDegree(math.Inf(1)))
}

func TestIsFinite(t *testing.T) {
	require.True(t, num.IsFinite(1.0))
	require.True(t, num.IsFinite(-123.45))

	require.False(t, num.IsFinite(math.NaN()))
	require.False(t, num.IsFinite(math.Inf(1)))
	require.False(t, num.IsFinite(math.Inf(-1)))
}

func TestComplement(t *testing.T) {
	require.Equal(t, 0.5, num.Complement(0.5))
	require.Equal(t, 0.0, num.Complement(1.0))
	require.Equal(t, 1.0, num.Complement(0.0))
}
