// Package gridfrac defines the rupture inputs and options for the
// gridfrac subpackage of github.com/katalvlaran/gridclip.
package gridfrac

import "github.com/katalvlaran/gridclip/clip"

// Ruptures holds a set of weighted line segments in parallel slices:
// rupture i runs from (X1[i], Y1[i]) to (X2[i], Y2[i]) and carries the
// scalar weight R[i] (e.g. a rupture-distance or magnitude factor).
// All five slices must share one length.
type Ruptures struct {
	X1, Y1, X2, Y2 []float64
	R              []float64
}

// Len returns the number of ruptures.
// Complexity: O(1).
func (rs Ruptures) Len() int {
	return len(rs.X1)
}

// Segment returns rupture i as a clip.Segment.
// Precondition: 0 ≤ i < rs.Len().
func (rs Ruptures) Segment(i int) clip.Segment {
	return clip.Segment{X1: rs.X1[i], Y1: rs.Y1[i], X2: rs.X2[i], Y2: rs.Y2[i]}
}

// validate returns ErrLengthMismatch unless all five slices share one length.
func (rs Ruptures) validate() error {
	n := len(rs.X1)
	if len(rs.Y1) != n || len(rs.X2) != n || len(rs.Y2) != n || len(rs.R) != n {
		return ErrLengthMismatch
	}

	return nil
}

// Options contains tunable parameters for matrix assembly.
type Options struct {
	// Workers sets the number of goroutines striping rupture rows during
	// Build. Values ≤ 1 select the serial path. Each worker writes only its
	// own matrix rows, so the output is identical for any worker count.
	Workers int
}

// DefaultOptions returns an Options with default settings: Workers=1 (serial).
func DefaultOptions() Options {
	return Options{Workers: 1}
}
