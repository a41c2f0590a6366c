// Package matrix_test contains unit tests for the matrix-product kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mhfrantz/hana/matrix"
)

// TestMatMulKnownProduct verifies a 2×3 × 3×2 product against hand-computed
// values.
func TestMatMulKnownProduct(t *testing.T) {
	a := matrix.MustNew(
		matrix.Row(1, 2, 3),
		matrix.Row(4, 5, 6),
	)
	b := matrix.MustNew(
		matrix.Row(7, 8),
		matrix.Row(9, 10),
		matrix.Row(11, 12),
	)

	got, err := matrix.MatMul(a, b)
	require.NoError(t, err)

	want := matrix.MustNew(
		matrix.Row(58, 64),   // 1·7+2·9+3·11, 1·8+2·10+3·12
		matrix.Row(139, 154), // 4·7+5·9+6·11, 4·8+5·10+6·12
	)
	require.True(t, matrix.Equal(got, want))
}

// TestMatMulIdentityNeutral verifies I·m == m.
func TestMatMulIdentityNeutral(t *testing.T) {
	m := matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4))
	i2, err := matrix.Identity[int](2)
	require.NoError(t, err)

	left, err := matrix.MatMul(i2, m)
	require.NoError(t, err)
	require.True(t, matrix.Equal(left, m))

	right, err := matrix.MatMul(m, i2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(right, m))
}

// TestMatMulInnerMismatch ensures incompatible inner dimensions are rejected.
func TestMatMulInnerMismatch(t *testing.T) {
	a := matrix.MustNew(matrix.Row(1, 2, 3)) // 1×3
	b := matrix.MustNew(matrix.Row(1, 2))    // 1×2

	_, err := matrix.MatMul(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// TestMatVec verifies matrix-vector multiplication and its error policy.
func TestMatVec(t *testing.T) {
	m := matrix.MustNew(
		matrix.Row(1, 2),
		matrix.Row(3, 4),
	)

	y, err := matrix.MatVec(m, []int{10, 20})
	require.NoError(t, err)
	require.Equal(t, []int{50, 110}, y)

	_, err = matrix.MatVec(m, []int{1, 2, 3}) // wrong length
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, err = matrix.MatVec(m, nil) // nil vector
	require.ErrorIs(t, err, matrix.ErrNilVector)
}

// TestTrace verifies the diagonal sum and the square requirement.
func TestTrace(t *testing.T) {
	m := matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4))

	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 5, tr)

	_, err = matrix.Trace(matrix.RowVec(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestProductAlias checks the MatMul facade.
func TestProductAlias(t *testing.T) {
	a := matrix.MustNew(matrix.Row(2, 0), matrix.Row(0, 2))

	p, err := matrix.Product(a, a)
	require.NoError(t, err)
	mm, err := matrix.MatMul(a, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(p, mm))
}
