// Package matrix_test contains unit tests for structural equality and
// tolerance comparison.
package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mhfrantz/hana/matrix"
)

// TestEqualReflexiveSymmetric verifies the basic properties of Equal.
func TestEqualReflexiveSymmetric(t *testing.T) {
	a := matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4))
	b := matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4))

	require.True(t, matrix.Equal(a, a)) // reflexive
	require.True(t, matrix.Equal(a, b)) // equal contents
	require.True(t, matrix.Equal(b, a)) // symmetric
}

// TestEqualSingleCellSensitivity ensures any one differing cell breaks equality.
func TestEqualSingleCellSensitivity(t *testing.T) {
	base := matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4))

	require.False(t, matrix.Equal(base, matrix.MustNew(matrix.Row(1, 5), matrix.Row(3, 4))))
	require.False(t, matrix.Equal(base, matrix.MustNew(matrix.Row(1, 2), matrix.Row(0, 4))))
	require.False(t, matrix.Equal(base, matrix.MustNew(matrix.Row(0, 2), matrix.Row(3, 4))))
}

// TestEqualShapeSensitivity ensures unequal shapes short-circuit to unequal.
func TestEqualShapeSensitivity(t *testing.T) {
	require.False(t, matrix.Equal(
		matrix.ColVec(1, 2), // 2×1
		matrix.MustNew(matrix.Row(3, 4), matrix.Row(5, 6)), // 2×2
	))
	require.False(t, matrix.Equal(
		matrix.ColVec(1, 2), // 2×1
		matrix.RowVec(3, 4), // 1×2: same size, different shape
	))
}

// TestEqualFunc verifies equality under a caller-supplied relation,
// including cross-type comparison.
func TestEqualFunc(t *testing.T) {
	a := matrix.MustNew(matrix.Row("GO", "FMT"))
	b := matrix.MustNew(matrix.Row("go", "fmt"))
	require.True(t, matrix.EqualFunc(strings.EqualFold, a, b))

	ints := matrix.MustNew(matrix.Row(1, 2))
	floats := matrix.MustNew(matrix.Row(1.0, 2.0))
	require.True(t, matrix.EqualFunc(func(x int, y float64) bool {
		return float64(x) == y
	}, ints, floats))
}

// TestAllClose verifies tolerance-based comparison and its error policy.
func TestAllClose(t *testing.T) {
	a := matrix.MustNew(matrix.Row(1.0, 2.0))
	b := matrix.MustNew(matrix.Row(1.0+1e-12, 2.0-1e-12))

	ok, err := matrix.AllClose(a, b, 1e-9, 1e-9)
	require.NoError(t, err)
	require.True(t, ok) // within tolerance

	far := matrix.MustNew(matrix.Row(1.0, 3.0))
	ok, err = matrix.AllClose(a, far, 1e-9, 1e-9)
	require.NoError(t, err)
	require.False(t, ok) // one cell far off

	// Shape mismatch is an error, not inequality.
	_, err = matrix.AllClose(a, matrix.MustNew(matrix.Row(1.0)), 1e-9, 1e-9)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	// Non-finite tolerances are rejected.
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, b, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Negative tolerances are normalized, not rejected.
	ok, err = matrix.AllClose(a, b, -1e-9, -1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}
