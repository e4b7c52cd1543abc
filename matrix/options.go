// Package matrix: construction options.
//
// Options follows the plain-struct option style: a value with exported
// fields, zero-value friendly, resolved once by New. Defaults are documented
// as constants so code and comments never diverge.
package matrix

import "github.com/katalvlaran/sparsemat/store"

// DefaultDimensions is the dimension count used when Options.Dimensions is
// left at zero. Two dimensions is the classic sparse-matrix shape.
const DefaultDimensions = 2

// Options contains the tunable parameters of a Matrix.
type Options[T comparable] struct {
	// Dimensions is the coordinate tuple length. Zero selects
	// DefaultDimensions; negative values are rejected by New.
	Dimensions int

	// Default is the value implicitly held by every unstored cell.
	// Assigning it through a Ref deletes the cell's entry.
	// The zero value of T applies when left unset.
	Default T

	// Store is the backing store instance the matrix will own. Leave nil to
	// get a fresh store.Ordered (coordinate-lexicographic iteration); pass
	// store.NewHash for faster lookups, or any other Store implementation.
	// Constructor-level store tuning (e.g. a hash capacity hint) happens
	// when building this value.
	Store store.Store[T]
}

// DefaultOptions returns an Options with default settings:
// DefaultDimensions dimensions, zero-value default, Ordered backing store.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{Dimensions: DefaultDimensions}
}
