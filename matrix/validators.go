// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors and kernels minimal by delegating shape/index/length
//     checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly via opErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

// validateShape ensures the requested dimensions are non-negative.
// Returns ErrBadShape otherwise. Zero dimensions pass (empty matrix).
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	return nil
}

// validateIndex ensures (i, j) addresses a cell inside shape s.
// Returns ErrOutOfRange otherwise.
// Complexity: O(1).
func validateIndex(s Shape, i, j int) error {
	if i < 0 || i >= s.Rows {
		return ErrOutOfRange
	}
	if j < 0 || j >= s.Cols {
		return ErrOutOfRange
	}
	return nil
}

// validateSameShape ensures shapes a and b are identical.
// Returns ErrShapeMismatch otherwise.
// Complexity: O(1).
func validateSameShape(a, b Shape) error {
	if a != b {
		return ErrShapeMismatch
	}
	return nil
}

// validateSquare ensures shape s is square.
// Returns ErrNonSquare otherwise.
// Complexity: O(1).
func validateSquare(s Shape) error {
	if s.Rows != s.Cols {
		return ErrNonSquare
	}
	return nil
}

// validateVecLen ensures vector x is non-nil and of exact length n.
// Returns ErrNilVector or ErrShapeMismatch.
// Complexity: O(1).
func validateVecLen[T any](x []T, n int) error {
	if x == nil {
		return ErrNilVector
	}
	if len(x) != n {
		return ErrShapeMismatch
	}
	return nil
}
