package coords

import "errors"

var (
	// ErrBadKey indicates a Key whose byte length is not a whole number of
	// encoded coordinate components.
	ErrBadKey = errors.New("coords: malformed key")
)
