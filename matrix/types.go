// SPDX-License-Identifier: MIT

// Package matrix: domain types shared across constructors and kernels.
// This file intentionally contains ONLY domain-facing types (shape pair,
// numeric constraint). Errors live in errors.go per the package conventions.
package matrix

import "fmt"

// Shape is the (row-count, column-count) pair describing a matrix's
// dimensions. Shape is comparable; two matrices are conformable for an
// elementwise operation iff their Shapes are equal.
type Shape struct {
	Rows int // number of rows, ≥ 0
	Cols int // number of columns, ≥ 0
}

// Size returns the total number of cells, Rows*Cols.
// Complexity: O(1).
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// Transposed returns the shape with rows and columns swapped.
// Complexity: O(1).
func (s Shape) Transposed() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// String renders the shape as "r×c" for diagnostics.
func (s Shape) String() string {
	return fmt.Sprintf("%d×%d", s.Rows, s.Cols)
}

// Numeric is the element constraint for arithmetic kernels (Add, Sub,
// Hadamard, Div, Scale, MatMul, MatVec, Identity). It spans every built-in
// kind supporting +, -, *, / so that user-defined types (`type Celsius
// float64`) qualify via the ~ approximation.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Float is the element constraint for tolerance-based comparison (AllClose).
type Float interface {
	~float32 | ~float64
}
