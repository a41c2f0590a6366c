// SPDX-License-Identifier: MIT
// Package hetero: sentinel error set. All operations return these sentinels
// (wrapped with cell-position context); tests match them via errors.Is.

package hetero

import "errors"

var (
	// ErrCellType indicates that an arithmetic operation met a non-numeric
	// cell. The wrapped message names the operation and the (i,j) position.
	ErrCellType = errors.New("hetero: cell is not a number")

	// ErrDivZero indicates a zero divisor cell in Div. Arbitrary-precision
	// numbers have no ±Inf convention to absorb it, so the operation is
	// rejected instead.
	ErrDivZero = errors.New("hetero: division by zero cell")
)
