// Package matrix implements an immutable, type-parameterized matrix value
// with construction, indexing, transpose, elementwise arithmetic, structural
// equality and functorial mapping.
//
// 🚀 What is matrix?
//
//	Matrix[T] is an ordered sequence of equal-length rows stored in a single
//	flat, row-major backing slice. A matrix is created fully formed from its
//	rows and is never mutated in place: every operation (Add, Sub, Hadamard,
//	Div, Scale, Transpose, Map, Zip, ...) returns a new value.
//
// ✨ Key properties:
//   - Shape uniformity — all rows of a matrix have identical length, enforced
//     at construction (ErrShapeMismatch on ragged input)
//   - Fail-fast validation — operations on mismatched shapes or out-of-range
//     indices return sentinel errors matched via errors.Is; no panics on
//     user-triggered conditions (Must* helpers are the only panicking surface)
//   - Determinism — fixed row-major loop orders, stable output
//   - Value semantics — the zero value is the empty 0×0 matrix; copying a
//     Matrix[T] is safe and cheap (shape + shared immutable storage)
//
// ⚙️ Usage:
//
//	import "github.com/mhfrantz/hana/matrix"
//
//	m, err := matrix.New(
//	    matrix.Row(1, 2),
//	    matrix.Row(3, 4),
//	)
//	sum, err := matrix.Add(m, m)        // [[2,4],[6,8]]
//	t := matrix.Transpose(m)            // [[1,3],[2,4]]
//	sq := matrix.Map(func(v int) int { return v * v }, m)
//
// Complexity: shape accessors are O(1); At is O(1) with bounds checking;
// every producing operation is O(r·c) time and allocates exactly one result.
//
// See example_test.go for runnable examples and hetero/ for matrices with
// mixed-type cells.
package matrix
