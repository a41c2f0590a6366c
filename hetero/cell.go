// SPDX-License-Identifier: MIT
// Package hetero: cell constructors and predicates.
//
// Purpose:
//   - Give matrices a compact literal vocabulary (Int, Float, Char, Str,
//     Bool) over cty.Value without leaking cty's full constructor surface
//     into call sites.
//
// Notes:
//   - Characters are represented as one-rune strings; cty has no rune kind
//     and string equality gives characters the comparison semantics cells
//     need.
//   - Numbers are arbitrary precision (math/big under the hood), so
//     Int(3) and Float(3.0) compare equal — numeric value, not lexical form,
//     is what a cell stores.

package hetero

import (
	"github.com/hashicorp/go-cty/cty"

	"github.com/mhfrantz/hana/matrix"
)

// Cell is a single dynamically typed matrix cell.
type Cell = cty.Value

// Matrix is a matrix of dynamically typed cells. It is the core generic
// container instantiated at Cell, so all shape accessors (Rows, Cols, Size,
// Shape, At, ...) come from matrix.Matrix unchanged.
type Matrix = matrix.Matrix[Cell]

// Int returns a numeric cell holding v exactly.
func Int(v int64) Cell { return cty.NumberIntVal(v) }

// Float returns a numeric cell holding v.
func Float(v float64) Cell { return cty.NumberFloatVal(v) }

// Char returns a character cell (a one-rune string value).
func Char(r rune) Cell { return cty.StringVal(string(r)) }

// Str returns a string cell.
func Str(s string) Cell { return cty.StringVal(s) }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return cty.BoolVal(b) }

// IsNumber reports whether c is a numeric cell (arithmetic-capable).
// Complexity: O(1).
func IsNumber(c Cell) bool { return c.Type().Equals(cty.Number) }
