// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix-product kernels on top of the generic container: MatMul (true
//     matrix multiplication, as opposed to the elementwise Hadamard), MatVec
//     and Trace.
//
// Determinism & Performance:
//   - MatMul runs the i→k→j loop order with row-major strides and a zero-skip
//     on the left operand; no temporary tiles, one result allocation.

package matrix

// MatMul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: validate inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j accumulation over flat row-major storage, skipping
//     zero cells of A to avoid useless inner loops on sparse inputs.
//
// Inputs:
//   - a: left operand, shape r×n.
//   - b: right operand, shape n×c.
//
// Returns:
//   - Matrix[T]: fresh r×c product.
//
// Errors:
//   - ErrShapeMismatch if a.Cols() != b.Rows().
//
// Complexity: O(r·n·c) time, one allocation.
func MatMul[T Numeric](a, b Matrix[T]) (Matrix[T], error) {
	// Stage 1: inner dimensions must agree.
	if a.c != b.r {
		return Matrix[T]{}, opErrorf(opMatMul, ErrShapeMismatch)
	}

	// Stage 2: deterministic i→k→j accumulation.
	out := newDense[T](a.r, b.c)
	var zero T
	for i := 0; i < a.r; i++ {
		aBase, oBase := i*a.c, i*out.c // row base offsets
		for k := 0; k < a.c; k++ {
			aik := a.data[aBase+k]
			if aik == zero {
				continue // zero-skip: row k of B contributes nothing
			}
			bBase := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[oBase+j] += aik * b.data[bBase+j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = m·x for a vector x of length Cols().
// Errors: ErrNilVector on nil x, ErrShapeMismatch on length mismatch.
// Complexity: O(r·c) time, O(r) space.
func MatVec[T Numeric](m Matrix[T], x []T) ([]T, error) {
	if err := validateVecLen(x, m.c); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	y := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var sum T // zero value is the additive identity for every Numeric kind
		for j := 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}
	return y, nil
}

// Trace returns the sum of the diagonal cells of a square matrix.
// Errors: ErrNonSquare otherwise.
// Complexity: O(n) time.
func Trace[T Numeric](m Matrix[T]) (T, error) {
	var sum T
	if err := validateSquare(m.Shape()); err != nil {
		return sum, opErrorf(opTrace, err)
	}
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}
	return sum, nil
}
