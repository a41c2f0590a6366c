// Package hetero provides matrices whose cells mix integers, floats,
// characters, strings and booleans inside a single value.
//
// 🚀 What is hetero?
//
//	The core matrix package is homogeneous: Matrix[T] fixes one element type
//	per matrix. hetero layers true per-cell heterogeneity on top of the same
//	container by using dynamically typed cells — cty.Value from
//	github.com/hashicorp/go-cty — so a single matrix can hold 1, '2' and 9.3
//	side by side.
//
// ✨ Key properties:
//   - One container, two typings — hetero.Matrix is matrix.Matrix[cty.Value];
//     shape rules, transpose, mapping and equality short-circuiting are the
//     core package's, unchanged
//   - Checked arithmetic — Add/Sub/Mul/Div are defined only between numeric
//     cells; a non-numeric operand fails with ErrCellType naming the cell
//   - Exact numbers — cty numbers are arbitrary precision, so integer cells
//     never silently lose width
//   - Total equality — Equal compares cells of differing types without error
//     (a number simply never equals a character)
//
// ⚙️ Usage:
//
//	import "github.com/mhfrantz/hana/hetero"
//
//	m, err := hetero.New(
//	    hetero.RowOf(hetero.Int(1), hetero.Char('2'), hetero.Int(3)),
//	    hetero.RowOf(hetero.Char('4'), hetero.Char('5'), hetero.Int(6)),
//	)
//	n := hetero.Inc(m, 1) // numeric cells +1, characters untouched
//
// See example_test.go for runnable examples.
package hetero
