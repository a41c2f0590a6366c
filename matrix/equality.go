// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural equality over matrices: exact (Equal, EqualFunc) and
//     tolerance-based for floating-point elements (AllClose).
//
// Design:
//   - Unequal shapes short-circuit to unequal before any cell is compared.
//   - Equal requires a comparable element type; EqualFunc covers everything
//     else (and cross-type comparison).
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 comparison order with early exit on the first
//     differing cell; O(1) space.

package matrix

import "math"

// Equal reports whether a and b have the same shape and all corresponding
// cell pairs compare equal under ==. Reflexive and symmetric.
// Complexity: O(r·c) worst case, early exit on first difference.
func Equal[T comparable](a, b Matrix[T]) bool {
	if a.Shape() != b.Shape() {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}
	return true
}

// EqualFunc reports whether a and b have the same shape and eq holds for
// every corresponding cell pair. Use for element types without == or for
// cross-type comparison; the relation's properties (reflexivity, symmetry)
// are inherited from eq.
// Complexity: O(r·c) worst case, early exit.
func EqualFunc[A, B any](eq func(A, B) bool, a Matrix[A], b Matrix[B]) bool {
	if a.Shape() != b.Shape() {
		return false
	}
	for idx := range a.data {
		if !eq(a.data[idx], b.data[idx]) {
			return false
		}
	}
	return true
}

// AllClose checks elementwise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) if all cells satisfy the relation; (false, nil)
// otherwise. Negative tolerances are normalized to their absolute values.
//
// Errors:
//   - ErrNaNInf if rtol or atol is NaN or ±Inf.
//   - ErrShapeMismatch if the shapes differ.
//
// Complexity: O(r·c) time, O(1) space, early exit on first violation.
func AllClose[T Float](a, b Matrix[T], rtol, atol float64) (bool, error) {
	// Tolerances must be finite per the numeric policy.
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, opErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := validateSameShape(a.Shape(), b.Shape()); err != nil {
		return false, opErrorf(opAllClose, err)
	}

	for idx := range a.data {
		av, bv := float64(a.data[idx]), float64(b.data[idx])
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}
