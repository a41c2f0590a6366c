// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the
//     package.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation.
//   - Keep function names explicit and intention-revealing to improve
//     discoverability.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of the
//     underlying kernels; validation happens in the kernels.

package matrix

// Sum is an alias for Add: elementwise a + b.
// Complexity: O(r·c).
func Sum[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: elementwise a − b.
// Complexity: O(r·c).
func Diff[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return Sub(a, b) }

// HadamardProd is an alias for Hadamard: elementwise product a ⊙ b.
// Complexity: O(r·c).
func HadamardProd[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return Hadamard(a, b) }

// Product is an alias for MatMul: the matrix product a × b.
// Complexity: O(r·n·c).
func Product[T Numeric](a, b Matrix[T]) (Matrix[T], error) { return MatMul(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(r·c).
func T[E any](m Matrix[E]) Matrix[E] { return Transpose(m) }

// ScaleBy is an alias for Scale: α·m.
// Complexity: O(r·c).
func ScaleBy[E Numeric](m Matrix[E], alpha E) Matrix[E] { return Scale(m, alpha) }

// ZerosLike returns a zero matrix with the same shape and element type as m.
// Complexity: O(r·c).
func ZerosLike[E any](m Matrix[E]) Matrix[E] {
	return newDense[E](m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); requires a square input.
// Errors: ErrNonSquare.
// Complexity: O(n²).
func IdentityLike[E Numeric](m Matrix[E]) (Matrix[E], error) {
	if err := validateSquare(m.Shape()); err != nil {
		return Matrix[E]{}, opErrorf(opIdentity, err)
	}
	return Identity[E](m.r)
}
