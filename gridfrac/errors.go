package gridfrac

import "errors"

// Sentinel errors for gridfrac operations.
var (
	// ErrInvalidGrid indicates edge slices that are not strictly ascending
	// or carry fewer than two edges on an axis.
	ErrInvalidGrid = errors.New("gridfrac: grid edges must be strictly ascending with at least two per axis")
	// ErrLengthMismatch indicates rupture coordinate/weight slices of unequal length.
	ErrLengthMismatch = errors.New("gridfrac: rupture coordinate and weight slices must share one length")
	// ErrNoRuptures indicates an empty rupture set; the output matrix would have no rows.
	ErrNoRuptures = errors.New("gridfrac: at least one rupture is required")
)
