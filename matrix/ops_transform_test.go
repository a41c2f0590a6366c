// Package matrix_test contains unit tests for Transpose, Map and Reduce.
package matrix_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mhfrantz/hana/matrix"
)

// TestTransposeSwapsDimensions verifies the 3×2 → 2×3 transpose.
func TestTransposeSwapsDimensions(t *testing.T) {
	m := matrix.MustNew(
		matrix.Row(1, 4),
		matrix.Row(2, 5),
		matrix.Row(3, 6),
	)

	got := matrix.Transpose(m)
	require.Equal(t, 2, got.Rows()) // dimensions swap
	require.Equal(t, 3, got.Cols())

	want := matrix.MustNew(
		matrix.Row(1, 2, 3),
		matrix.Row(4, 5, 6),
	)
	require.True(t, matrix.Equal(got, want))
}

// TestTransposeInvolution verifies Transpose(Transpose(m)) == m.
func TestTransposeInvolution(t *testing.T) {
	cases := []matrix.Matrix[int]{
		{}, // empty matrix transposes to itself
		matrix.RowVec(1, 2, 3),
		matrix.ColVec(4, 5),
		matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4)),
		matrix.MustNew(matrix.Row(7)),
	}
	for _, m := range cases {
		require.True(t, matrix.Equal(matrix.Transpose(matrix.Transpose(m)), m))
	}
}

// TestMapIdentity verifies Map with the identity function preserves the matrix.
func TestMapIdentity(t *testing.T) {
	m := matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4))

	got := matrix.Map(func(v int) int { return v }, m)
	require.True(t, matrix.Equal(got, m))
}

// TestMapChangesElementType verifies shape-preserving, type-changing mapping.
func TestMapChangesElementType(t *testing.T) {
	m := matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4))

	got := matrix.Map(strconv.Itoa, m)
	want := matrix.MustNew(matrix.Row("1", "2"), matrix.Row("3", "4"))
	require.True(t, matrix.Equal(got, want))
	require.Equal(t, m.Shape(), got.Shape()) // functor preserves shape
}

// TestMapIncrement verifies the classic "+1 everywhere" mapping.
func TestMapIncrement(t *testing.T) {
	m := matrix.MustNew(
		matrix.Row(1, 2, 3),
		matrix.Row(4, 5, 6),
		matrix.Row(7, 8, 9),
	)

	got := matrix.Map(func(v int) int { return v + 1 }, m)
	want := matrix.MustNew(
		matrix.Row(2, 3, 4),
		matrix.Row(5, 6, 7),
		matrix.Row(8, 9, 10),
	)
	require.True(t, matrix.Equal(got, want))
}

// TestMapIndex verifies the position-aware variant.
func TestMapIndex(t *testing.T) {
	z, err := matrix.Zeros[int](2, 3)
	require.NoError(t, err)

	got := matrix.MapIndex(func(i, j, _ int) int { return i*10 + j }, z)
	want := matrix.MustNew(
		matrix.Row(0, 1, 2),
		matrix.Row(10, 11, 12),
	)
	require.True(t, matrix.Equal(got, want))
}

// TestReduceRowMajorOrder verifies the fold visits cells in row-major order.
func TestReduceRowMajorOrder(t *testing.T) {
	m := matrix.MustNew(matrix.Row("a", "b"), matrix.Row("c", "d"))

	got := matrix.Reduce(func(acc, v string) string { return acc + v }, "", m)
	require.Equal(t, "abcd", got) // row 0 fully before row 1

	sum := matrix.Reduce(func(acc, v int) int { return acc + v },
		0, matrix.MustNew(matrix.Row(1, 2), matrix.Row(3, 4)))
	require.Equal(t, 10, sum)

	// Empty matrix folds to the initial accumulator.
	var empty matrix.Matrix[int]
	require.Equal(t, 7, matrix.Reduce(func(acc, _ int) int { return acc + 1 }, 7, empty))
}
