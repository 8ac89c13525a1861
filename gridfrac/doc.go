// Package gridfrac assembles per-rupture, per-cell weighted-length
// matrices over a regular 2-D grid, the raw material for cell-specific
// distance/attenuation matrices in spatial hazard modeling.
//
// What:
//
//   - Grid derives nx×ny cell bounds from two strictly ascending edge
//     slices, with the fixed cell-index convention k = j*nx + i
//     (x-bin fastest).
//   - Ruptures holds weighted segments as five parallel float64 slices.
//   - Build clips every rupture against every cell (clip.Fraction) and
//     returns the NumCells×2 midpoint matrix plus the Len×NumCells
//     weighted-fraction matrix.
//
// Why:
//
//   - Seismic hazard: each cell's share of a rupture length weights its
//     attenuation term.
//   - Any accumulation of weighted line density onto a regular raster.
//
// Complexity:
//
//   - NewGrid: O(nx×ny) time and memory.
//   - Build:   O(Len × NumCells) time and memory; the (rupture × cell)
//     space is embarrassingly parallel and Options.Workers stripes
//     rupture rows across goroutines with bit-identical output.
//
// Options:
//
//   - Options.Workers: goroutine count for Build; ≤ 1 runs serially.
//
// Errors:
//
//   - ErrInvalidGrid: edges not strictly ascending, or fewer than two on an axis.
//   - ErrLengthMismatch: rupture slices of differing length.
//   - ErrNoRuptures: empty rupture set.
package gridfrac
