// Package matrix: sentinel errors and panic messages.
//
// The matrix API is total on its documented input domain: reads of unset
// cells yield the default, erasing an absent cell is a no-op, and writes
// cannot fail. The only sentinel below guards construction. Panics are
// reserved for programmer errors (wrong coordinate arity, indexing past the
// dimension count) with the stable messages defined here.
package matrix

import "errors"

// ErrInvalidDimensions indicates that a requested dimension count is negative.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// Internal panic messages (no magic strings).
const (
	panicArity      = "matrix: coordinate count does not match matrix dimensions"
	panicIndexOrder = "matrix: Index chained past the matrix dimension count"
	panicIncomplete = "matrix: accessor on an incomplete index prefix"
)
