// Package clip implements Cohen–Sutherland outcode classification and
// segment-against-rectangle clipping, reduced to the single number the
// grid builder needs: the fraction of a segment's length inside a cell.
//
// What:
//
//   - Code computes a 4-bit outcode (Left/Right/Bottom/Top) of a point
//     against an axis-aligned Rect; boundaries count as inside.
//   - Fraction iteratively clips a Segment against a Rect and returns
//     (clipped length) / (original length) ∈ [0, 1].
//
// Why:
//
//   - Hazard grids: each cell's share of a rupture segment weights the
//     cell-specific attenuation term.
//   - Any per-cell line-density accumulation over a regular grid.
//
// Determinism:
//
//   - Fixed clip-edge priority (Top, Bottom, Right, Left) and fixed
//     endpoint preference (endpoint 1 first) reproduce the reference
//     floating-point behavior bit-for-bit.
//
// Complexity:
//
//   - Code:     O(1).
//   - Fraction: O(1) — at most four clips against a convex rectangle.
//
// Edge cases:
//
//   - Zero-length segments return exactly 0 or 1, never NaN.
//   - Zero clip denominators are skipped, never divided by.
//   - A defensive clip cap guards termination under NaN coordinates.
//
// No errors: both functions are total over float64 inputs.
package clip
