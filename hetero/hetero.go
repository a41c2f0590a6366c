// SPDX-License-Identifier: MIT
// Package hetero: construction and operations over mixed-cell matrices.
//
// Purpose:
//   - Delegate every structural concern (shape validation, storage, loops)
//     to the core matrix package and add only what heterogeneity requires:
//     per-cell type checks ahead of arithmetic.
//
// Design:
//   - Arithmetic kernels validate both shapes and cell types before
//     producing any output; no partial results.
//   - Equality is total across cell types: mismatched kinds compare unequal,
//     they never error.
//
// Determinism & Performance:
//   - Fixed i→j loop order in the arithmetic kernels; cty numeric ops are
//     exact (math/big), so results are bit-reproducible.

package hetero

import (
	"fmt"

	"github.com/hashicorp/go-cty/cty"

	"github.com/mhfrantz/hana/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
)

// New builds a mixed-cell matrix from the given rows.
// Errors: matrix.ErrShapeMismatch on ragged input, matrix.ErrNilRow on a
// nil row — the core constructor's contract, unchanged.
// Complexity: O(r·c).
func New(rows ...[]Cell) (Matrix, error) {
	return matrix.New(rows...)
}

// MustNew is New that panics on invalid input; for literals in tests and
// examples only.
func MustNew(rows ...[]Cell) Matrix {
	return matrix.MustNew(rows...)
}

// RowOf packs the given cells into a row slice, ready to feed New.
func RowOf(cells ...Cell) []Cell {
	return matrix.Row(cells...)
}

// VecOf builds the n×1 column vector with one cell per row.
func VecOf(cells ...Cell) Matrix {
	return matrix.ColVec(cells...)
}

// elementwise applies f position-wise across two equally shaped matrices of
// numeric cells. Shape is checked first, then every cell pair is
// type-checked before f runs, so a failure never yields a partial matrix.
//
// Errors:
//   - matrix.ErrShapeMismatch on differing shapes.
//   - ErrCellType (wrapped with the operation tag and cell position) when
//     either cell is not a number.
//
// Complexity: O(r·c) time.
func elementwise(tag string, f func(x, y Cell) Cell, a, b Matrix) (Matrix, error) {
	// Shape gate: reuse the core sentinel so callers match one error.
	if a.Shape() != b.Shape() {
		return Matrix{}, fmt.Errorf("%s: %w", tag, matrix.ErrShapeMismatch)
	}

	rows := make([][]Cell, a.Rows())
	var x, y Cell
	for i := 0; i < a.Rows(); i++ {
		row := make([]Cell, a.Cols())
		for j := 0; j < a.Cols(); j++ {
			x, _ = a.At(i, j) // indices are in bounds after the shape gate
			y, _ = b.At(i, j)
			// Type gate: arithmetic is defined between numbers only.
			if !IsNumber(x) || !IsNumber(y) {
				return Matrix{}, fmt.Errorf("%s: cell (%d,%d): %w", tag, i, j, ErrCellType)
			}
			row[j] = f(x, y)
		}
		rows[i] = row
	}

	// Rows are rectangular by construction; New cannot fail here.
	return matrix.New(rows...)
}

// Add returns the elementwise sum of two numeric-cell matrices.
// Errors: matrix.ErrShapeMismatch, ErrCellType.
// Complexity: O(r·c).
func Add(a, b Matrix) (Matrix, error) {
	return elementwise(opAdd, func(x, y Cell) Cell { return x.Add(y) }, a, b)
}

// Sub returns the elementwise difference of two numeric-cell matrices.
// Errors: matrix.ErrShapeMismatch, ErrCellType.
// Complexity: O(r·c).
func Sub(a, b Matrix) (Matrix, error) {
	return elementwise(opSub, func(x, y Cell) Cell { return x.Subtract(y) }, a, b)
}

// Mul returns the elementwise product of two numeric-cell matrices.
// Errors: matrix.ErrShapeMismatch, ErrCellType.
// Complexity: O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	return elementwise(opMul, func(x, y Cell) Cell { return x.Multiply(y) }, a, b)
}

// Div returns the elementwise quotient of two numeric-cell matrices.
// A zero divisor cell is rejected: exact numbers have no ±Inf to absorb it.
// Errors: matrix.ErrShapeMismatch, ErrCellType, ErrDivZero.
// Complexity: O(r·c).
func Div(a, b Matrix) (Matrix, error) {
	// Pre-scan divisors so the kernel closure stays total.
	for i := 0; i < b.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			v, _ := b.At(i, j)
			if IsNumber(v) && v.RawEquals(cty.Zero) {
				return Matrix{}, fmt.Errorf("%s: cell (%d,%d): %w", opDiv, i, j, ErrDivZero)
			}
		}
	}
	return elementwise(opDiv, func(x, y Cell) Cell { return x.Divide(y) }, a, b)
}

// Equal reports whether a and b have identical shapes and every
// corresponding cell pair holds the same value. Cells of differing kinds
// (a number and a character, say) compare unequal; the comparison itself is
// total and never errors.
// Complexity: O(r·c), early exit.
func Equal(a, b Matrix) bool {
	return matrix.EqualFunc(func(x, y Cell) bool { return x.RawEquals(y) }, a, b)
}

// Map applies f to every cell, preserving shape.
// Complexity: O(r·c).
func Map(f func(Cell) Cell, m Matrix) Matrix {
	return matrix.Map(f, m)
}

// Inc adds delta to every numeric cell and leaves non-numeric cells
// untouched. Handy for shifting mixed matrices without unpacking them.
// Complexity: O(r·c).
func Inc(m Matrix, delta int64) Matrix {
	d := Int(delta)
	return matrix.Map(func(c Cell) Cell {
		if IsNumber(c) {
			return c.Add(d)
		}
		return c // characters, strings, booleans pass through unchanged
	}, m)
}

// Transpose returns mᵀ: cell (i,j) of the result equals cell (j,i) of m.
// Complexity: O(r·c).
func Transpose(m Matrix) Matrix {
	return matrix.Transpose(m)
}
