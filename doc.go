// Package hana provides small, immutable, type-parameterized matrices —
// construction, indexing, transpose, elementwise arithmetic, structural
// equality and functorial mapping over a single generic container.
//
// 🚀 What is hana?
//
//	A compact, pure-Go value library built around one idea: a matrix is an
//	immutable value, and every operation returns a new one.
//	  • Construction from rows, row/column vectors, zeros & identity
//	  • Bounds-checked indexing and O(1) shape accessors
//	  • Elementwise combinators: Add, Sub, Hadamard, Div, Scale, Zip
//	  • Transpose (an involution), Map (shape-preserving, type-changing)
//	  • Structural equality and float tolerance comparison (AllClose)
//	  • Mixed-cell matrices (ints, floats, characters) via hetero
//
// ✨ Why choose hana?
//
//   - Immutable by construction – operands are never mutated, results are
//     always fresh values, so matrices are trivially safe to share
//   - Fail-fast validation – sentinel errors, errors.Is-friendly, no panics
//     on user input
//   - Deterministic – fixed row-major loop orders everywhere
//   - Generic, not boxed – Matrix[T] holds your element type directly
//
// Everything is organized under two subpackages:
//
//	matrix/ — the homogeneous generic core: Matrix[T] and its operations
//	hetero/ — heterogeneous cells (go-cty dynamic values) layered on matrix/
//
// Quick example:
//
//	m := matrix.MustNew(
//	    matrix.Row(1, 2),
//	    matrix.Row(3, 4),
//	)
//	d, _ := matrix.Add(m, m) // [[2,4],[6,8]]
//
//	go get github.com/mhfrantz/hana
package hana
