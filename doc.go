// Package gridclip computes, for a set of weighted line segments over a
// regular 2-D grid, the length of each segment falling inside every grid
// cell — the building block for cell-specific distance/attenuation
// matrices in spatial hazard modeling.
//
// 🚀 What is gridclip?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Outcode classification: 4-bit region codes of a point vs. a cell
//		• Cohen–Sutherland clipping: in-cell length fraction of a segment
//		• Grid assembly: per-(segment, cell) weighted-length matrices
//		  plus the grid-cell midpoint matrix
//
// ✨ Why choose gridclip?
//
//   - Deterministic – fixed loop orders, no global state, no randomness
//   - Boundary-exact – points on a cell edge count as inside, reference
//     clip-edge priority preserved bit-for-bit
//   - Pure Go – no cgo, float64 arithmetic end to end
//   - Parallel-ready – optional worker striping over segment rows with
//     no synchronization beyond disjoint writes
//
// Everything is organized under three subpackages:
//
//	clip/     — outcodes, rectangles, segments, the clipping kernel
//	gridfrac/ — grid model, validation, and the matrix builder
//	matrix/   — dense row-major float64 matrices used for the outputs
//
// Quick ASCII example:
//
//	y=2 ┌────┬────┐
//	    │    │  ╱ │      a segment crossing two of four cells
//	y=1 ├────┼────┤      contributes half its length to each,
//	    │  ╱ │    │      and zero to the other two.
//	y=0 └────┴────┘
//	   x=0  x=1  x=2
//
//	go get github.com/katalvlaran/gridclip
package gridclip
