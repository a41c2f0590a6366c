// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structure-level transformations: Transpose (re-pack columns as rows),
//     the functorial Map/MapIndex (apply a function to every cell, preserving
//     shape), and Reduce (row-major fold).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j), single result allocation, inputs untouched.
//
// AI-Hints:
//   - Map may change the element type: Map(strconv.Itoa, m) turns a
//     Matrix[int] into a Matrix[string] of the same shape.
//   - Transpose is a total involution: Transpose(Transpose(m)) equals m.

package matrix

// Transpose returns the matrix whose cell (i,j) equals m's cell (j,i);
// dimensions swap (rows become columns). Total: every matrix, including the
// empty one, has a transpose.
// Determinism: fixed i→j write order over the result.
// Complexity: O(r·c) time, one allocation.
func Transpose[T any](m Matrix[T]) Matrix[T] {
	out := newDense[T](m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			// out(j,i) = m(i,j); strided write, sequential read.
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}
	return out
}

// Map applies f to every cell, preserving shape and producing a matrix of
// (possibly different) cell type. Map(identity, m) is structurally equal
// to m.
// Determinism: f is called once per cell in row-major order.
// Complexity: O(r·c) time, one allocation.
func Map[A, B any](f func(A) B, m Matrix[A]) Matrix[B] {
	out := newDense[B](m.r, m.c)
	for idx := range m.data { // flat 0..n-1 walk == row-major order
		out.data[idx] = f(m.data[idx])
	}
	return out
}

// MapIndex is Map with the cell position supplied to f.
// Determinism: f is called once per cell, i→j order.
// Complexity: O(r·c) time, one allocation.
func MapIndex[A, B any](f func(i, j int, v A) B, m Matrix[A]) Matrix[B] {
	out := newDense[B](m.r, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c // row base offset
		for j := 0; j < m.c; j++ {
			out.data[base+j] = f(i, j, m.data[base+j])
		}
	}
	return out
}

// Reduce folds every cell into a single accumulator in row-major order:
// acc = f(acc, m[0,0]), then f(acc, m[0,1]), ... The empty matrix yields
// init unchanged.
// Complexity: O(r·c) time, no allocation.
func Reduce[A, B any](f func(acc B, v A) B, init B, m Matrix[A]) B {
	acc := init
	for idx := range m.data { // fixed fold order for reproducible results
		acc = f(acc, m.data[idx])
	}
	return acc
}
