// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for the Must* helpers (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with opErrorf at the operation
// boundary — callers will still use errors.Is to match.

var (
	// ErrShapeMismatch indicates incompatible dimensions: ragged rows at
	// construction, differently shaped operands to an elementwise combinator,
	// or an inner-dimension mismatch in MatMul/MatVec.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or columns). Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At, Row, Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilRow indicates that a nil row slice was supplied at construction.
	ErrNilRow = errors.New("matrix: nil row")

	// ErrNilVector indicates that a nil vector was passed to MatVec.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Identity-like helpers, trace).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (AllClose tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation name constants for unified error wrapping and reducing magic
// strings. Every wrapped error formats as "<op>: <underlying>".
const (
	opNew      = "New"
	opZeros    = "Zeros"
	opIdentity = "Identity"
	opAt       = "At"
	opRow      = "Row"
	opCol      = "Col"
	opZip      = "Zip"
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opDiv      = "Div"
	opAllClose = "AllClose"
	opMatMul   = "MatMul"
	opMatVec   = "MatVec"
	opTrace    = "Trace"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only with err != nil.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
