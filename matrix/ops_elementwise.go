// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the elementwise combinator surface: the generic Zip kernel and
//     the arithmetic operations (Add, Sub, Hadamard, Div, Scale, AddScalar)
//     built on top of it.
//   - Keep all loops deterministic and cache-friendly over the flat row-major
//     storage.
//
// Design:
//   - Zip is the single binary kernel; arithmetic ops are thin closures over
//     it so validation, allocation and loop order live in exactly one place.
//   - Shape mismatch between operands is rejected before any cell is touched;
//     no partial results.
//
// Determinism & Performance:
//   - All kernels walk the flat backing slice 0..n-1 (row-major order).
//   - Exactly one allocation per call: the result's backing slice.
//
// AI-Hints:
//   - Zip's three type parameters are independent: combine a Matrix[int] with
//     a Matrix[float64] into a Matrix[string] if the closure says so.
//   - For unary transformations prefer Map (ops_transform.go).

package matrix

// Zip applies f position-wise across two equally-shaped matrices, producing
// the matrix whose cell (i,j) = f(a[i,j], b[i,j]).
//
// Inputs:
//   - f: binary combining function; called once per cell pair in row-major
//     order.
//   - a, b: operands of identical shape (element types may differ).
//
// Returns:
//   - Matrix[C]: fresh result of the common shape.
//
// Errors:
//   - ErrShapeMismatch if the operand shapes differ (checked before any call
//     to f).
//
// Complexity: O(r·c) time, one result allocation.
func Zip[A, B, C any](f func(A, B) C, a Matrix[A], b Matrix[B]) (Matrix[C], error) {
	// Stage 1: operands must be conformable.
	if err := validateSameShape(a.Shape(), b.Shape()); err != nil {
		return Matrix[C]{}, opErrorf(opZip, err)
	}

	// Stage 2: single flat pass in row-major order.
	out := newDense[C](a.r, a.c)
	for idx := range a.data { // deterministic 0..n-1
		out.data[idx] = f(a.data[idx], b.data[idx])
	}

	return out, nil
}

// zipNumeric shares the Zip plumbing for the four arithmetic operations,
// re-tagging the shape error with the public operation name.
func zipNumeric[T Numeric](tag string, f func(T, T) T, a, b Matrix[T]) (Matrix[T], error) {
	if err := validateSameShape(a.Shape(), b.Shape()); err != nil {
		return Matrix[T]{}, opErrorf(tag, err)
	}
	out := newDense[T](a.r, a.c)
	for idx := range a.data {
		out.data[idx] = f(a.data[idx], b.data[idx])
	}
	return out, nil
}

// Add returns the elementwise sum: out[i,j] = a[i,j] + b[i,j].
// Errors: ErrShapeMismatch on differently shaped operands.
// Complexity: O(r·c).
func Add[T Numeric](a, b Matrix[T]) (Matrix[T], error) {
	return zipNumeric(opAdd, func(x, y T) T { return x + y }, a, b)
}

// Sub returns the elementwise difference: out[i,j] = a[i,j] - b[i,j].
// Errors: ErrShapeMismatch on differently shaped operands.
// Complexity: O(r·c).
func Sub[T Numeric](a, b Matrix[T]) (Matrix[T], error) {
	return zipNumeric(opSub, func(x, y T) T { return x - y }, a, b)
}

// Hadamard returns the elementwise product: out[i,j] = a[i,j] * b[i,j].
// This is the position-wise product, not the matrix product (see MatMul).
// Errors: ErrShapeMismatch on differently shaped operands.
// Complexity: O(r·c).
func Hadamard[T Numeric](a, b Matrix[T]) (Matrix[T], error) {
	return zipNumeric(opHadamard, func(x, y T) T { return x * y }, a, b)
}

// Div returns the elementwise quotient: out[i,j] = a[i,j] / b[i,j].
// Division semantics are Go's for T: integer division truncates; float
// division by zero yields ±Inf/NaN per IEEE 754. The kernel does not mask
// numeric outcomes.
// Errors: ErrShapeMismatch on differently shaped operands.
// Complexity: O(r·c).
func Div[T Numeric](a, b Matrix[T]) (Matrix[T], error) {
	return zipNumeric(opDiv, func(x, y T) T { return x / y }, a, b)
}

// Scale returns alpha*m: every cell multiplied by the scalar alpha.
// Total (no error): a scalar is conformable with any shape.
// Complexity: O(r·c).
func Scale[T Numeric](m Matrix[T], alpha T) Matrix[T] {
	out := newDense[T](m.r, m.c)
	for idx := range m.data {
		out.data[idx] = alpha * m.data[idx]
	}
	return out
}

// AddScalar returns m with alpha added to every cell.
// Complexity: O(r·c).
func AddScalar[T Numeric](m Matrix[T], alpha T) Matrix[T] {
	out := newDense[T](m.r, m.c)
	for idx := range m.data {
		out.data[idx] = m.data[idx] + alpha
	}
	return out
}
