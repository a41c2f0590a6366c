// SPDX-License-Identifier: MIT
// Package matrix: the Matrix[T] value type — construction and accessors.
//
// Purpose:
//   - Define the immutable, row-major generic container used by every kernel.
//   - Provide strict constructors (New, Zeros, Identity, RowVec, ColVec) that
//     validate shape before allocation and copy caller-supplied rows.
//   - Provide O(1) shape accessors and bounds-checked indexing.
//
// Determinism & Performance:
//   - Storage is a single flat slice in row-major order (cache-friendly).
//   - Construction copies input rows exactly once; accessors never allocate
//     except Row/Col/ToRows, which return fresh copies to preserve
//     immutability.
//
// AI-Hints:
//   - The zero value Matrix[T]{} is the valid empty 0×0 matrix.
//   - Treat Matrix[T] as a value: pass and return it directly; internal
//     storage is never mutated after construction, so shallow copies are safe.
//   - Use MustNew/MustAt only for literals in tests and examples.

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is an immutable r×c grid of T cells in row-major order.
// All rows have identical length (enforced at construction) and the backing
// storage is never written after the constructor returns, so sharing a
// Matrix value across goroutines requires no synchronization.
type Matrix[T any] struct {
	r, c int // shape; both ≥ 0
	data []T // flat backing storage, length == r*c, row-major
}

// newDense allocates an r×c matrix with zero-valued cells.
// Callers must have validated r ≥ 0 and c ≥ 0.
// Complexity: O(r·c) allocation + zeroing by the runtime.
func newDense[T any](r, c int) Matrix[T] {
	return Matrix[T]{r: r, c: c, data: make([]T, r*c)}
}

// New builds a matrix from the given rows, copying each one.
// Implementation:
//   - Stage 1: validate — every row non-nil and of the first row's length.
//   - Stage 2: allocate once and copy rows into flat row-major storage.
//
// Inputs:
//   - rows: zero or more equal-length row slices; no rows ⇒ empty 0×0 matrix.
//
// Returns:
//   - Matrix[T]: fresh value; input slices are never aliased.
//
// Errors:
//   - ErrNilRow if any row is nil.
//   - ErrShapeMismatch if any row's length differs from the first row's.
//
// Complexity: O(r·c) time and space.
func New[T any](rows ...[]T) (Matrix[T], error) {
	// Empty construction yields the canonical empty matrix.
	if len(rows) == 0 {
		return Matrix[T]{}, nil
	}
	// Stage 1: validate all rows against the first row's length.
	for i, row := range rows {
		if row == nil {
			return Matrix[T]{}, opErrorf(opNew, fmt.Errorf("row %d: %w", i, ErrNilRow))
		}
		if len(row) != len(rows[0]) {
			return Matrix[T]{}, opErrorf(opNew,
				fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(rows[0]), ErrShapeMismatch))
		}
	}

	// Stage 2: single allocation, then copy row by row (fixed i order).
	m := newDense[T](len(rows), len(rows[0]))
	for i, row := range rows {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// MustNew is New that panics on invalid input. For literals in tests and
// examples only; production paths must use New and handle the error.
func MustNew[T any](rows ...[]T) Matrix[T] {
	m, err := New(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows builds a matrix from a row slice-of-slices. Thin alias of New
// with an intention-revealing name for callers that already hold [][]T.
func FromRows[T any](rows [][]T) (Matrix[T], error) {
	return New(rows...)
}

// Row packs the given cells into an ordered row slice, ready to feed New.
// It exists so construction sites read as matrix literals:
//
//	matrix.New(matrix.Row(1, 2), matrix.Row(3, 4))
//
// Complexity: O(c).
func Row[T any](cells ...T) []T {
	out := make([]T, len(cells)) // defensive copy: variadic backing array may be reused by the caller
	copy(out, cells)
	return out
}

// RowVec builds the 1×n matrix holding the given cells as its single row.
// Complexity: O(n).
func RowVec[T any](cells ...T) Matrix[T] {
	if len(cells) == 0 {
		return Matrix[T]{}
	}
	m := newDense[T](1, len(cells))
	copy(m.data, cells)
	return m
}

// ColVec builds the n×1 column vector with one cell per row.
// Complexity: O(n).
func ColVec[T any](cells ...T) Matrix[T] {
	if len(cells) == 0 {
		return Matrix[T]{}
	}
	m := newDense[T](len(cells), 1)
	copy(m.data, cells) // n×1 row-major layout coincides with the input order
	return m
}

// Zeros returns the rows×cols matrix of zero-valued cells.
// Errors: ErrBadShape if rows or cols is negative. Zero dimensions are
// permitted and yield an empty matrix.
// Complexity: O(r·c).
func Zeros[T any](rows, cols int) (Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return Matrix[T]{}, opErrorf(opZeros, err)
	}
	if rows == 0 || cols == 0 {
		return Matrix[T]{}, nil
	}
	return newDense[T](rows, cols), nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Determinism: fixed i-loop, single write per diagonal cell.
// Errors: ErrBadShape if n is negative.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity[T Numeric](n int) (Matrix[T], error) {
	if err := validateShape(n, n); err != nil {
		return Matrix[T]{}, opErrorf(opIdentity, err)
	}
	m := newDense[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = T(1)
	}
	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m Matrix[T]) Cols() int { return m.c }

// Size returns the total cell count, Rows*Cols. Complexity: O(1).
func (m Matrix[T]) Size() int { return m.r * m.c }

// Shape returns the (rows, cols) pair. Complexity: O(1).
func (m Matrix[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// IsEmpty reports whether the matrix holds no cells. Complexity: O(1).
func (m Matrix[T]) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// IsSquare reports whether Rows == Cols. Complexity: O(1).
func (m Matrix[T]) IsSquare() bool { return m.r == m.c }

// At retrieves the cell at row i, column j.
// Returns ErrOutOfRange if i<0, i≥Rows(), j<0 or j≥Cols().
// Complexity: O(1).
func (m Matrix[T]) At(i, j int) (T, error) {
	if err := validateIndex(m.Shape(), i, j); err != nil {
		var zero T
		return zero, opErrorf(opAt, err)
	}
	return m.data[i*m.c+j], nil
}

// MustAt is At that panics on an out-of-range index. For tests and examples
// where the index is a literal known to be in bounds.
func (m Matrix[T]) MustAt(i, j int) T {
	v, err := m.At(i, j)
	if err != nil {
		panic(err)
	}
	return v
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange if i is outside [0, Rows).
// Complexity: O(c).
func (m Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, opErrorf(opRow, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange if j is outside [0, Cols).
// Complexity: O(r).
func (m Matrix[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, opErrorf(opCol, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ { // strided walk down the column
		out[i] = m.data[i*m.c+j]
	}
	return out, nil
}

// ToRows returns the matrix contents as a fresh slice of fresh row slices.
// The result shares no storage with the matrix.
// Complexity: O(r·c).
func (m Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}
	return out
}

// Clone returns a structural copy with independent storage. Since matrices
// are immutable, Clone is rarely needed; it exists for callers that hand
// storage-sensitive code a guaranteed-unshared value.
// Complexity: O(r·c).
func (m Matrix[T]) Clone() Matrix[T] {
	out := newDense[T](m.r, m.c)
	copy(out.data, m.data)
	return out
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(r·c) for string construction.
func (m Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
