package gridfrac

import (
	"fmt"

	"github.com/katalvlaran/gridclip/clip"
	"github.com/katalvlaran/gridclip/matrix"
)

// Grid partitions the plane into nx×ny axis-aligned cells bounded by two
// strictly ascending edge slices. It is immutable once built.
//
// Cells are indexed k = j*nx + i, where i selects the x-bin [xEdges[i],
// xEdges[i+1]] and j the y-bin; the x-bin varies fastest. Downstream
// consumers index matrix columns by this exact convention.
type Grid struct {
	nx, ny         int
	xEdges, yEdges []float64
	// Per-cell bounds, length nx*ny each, laid out in cell-index order.
	xMin, yMin, xMax, yMax []float64
}

// NewGrid constructs a Grid from two edge slices. It deep-copies the input
// to ensure immutability and precomputes every cell's bounds.
// Returns ErrInvalidGrid (wrapped with axis context) when an axis has fewer
// than two edges or a non-ascending pair.
// Complexity: O(nx*ny) time and memory.
func NewGrid(xEdges, yEdges []float64) (*Grid, error) {
	if err := checkEdges("x", xEdges); err != nil {
		return nil, err
	}
	if err := checkEdges("y", yEdges); err != nil {
		return nil, err
	}

	nx, ny := len(xEdges)-1, len(yEdges)-1
	g := &Grid{
		nx:     nx,
		ny:     ny,
		xEdges: append([]float64(nil), xEdges...),
		yEdges: append([]float64(nil), yEdges...),
		xMin:   make([]float64, nx*ny),
		yMin:   make([]float64, nx*ny),
		xMax:   make([]float64, nx*ny),
		yMax:   make([]float64, nx*ny),
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			k := j*nx + i
			g.xMin[k], g.xMax[k] = g.xEdges[i], g.xEdges[i+1]
			g.yMin[k], g.yMax[k] = g.yEdges[j], g.yEdges[j+1]
		}
	}

	return g, nil
}

// checkEdges validates one axis: at least two edges, strictly ascending.
func checkEdges(axis string, edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: %s axis has %d edge(s)", ErrInvalidGrid, axis, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return fmt.Errorf("%w: %s edge %d (%v) not above edge %d (%v)",
				ErrInvalidGrid, axis, i, edges[i], i-1, edges[i-1])
		}
	}

	return nil
}

// NumCellsX returns the number of x-bins.
// Complexity: O(1).
func (g *Grid) NumCellsX() int {
	return g.nx
}

// NumCellsY returns the number of y-bins.
// Complexity: O(1).
func (g *Grid) NumCellsY() int {
	return g.ny
}

// NumCells returns the total cell count nx*ny.
// Complexity: O(1).
func (g *Grid) NumCells() int {
	return g.nx * g.ny
}

// CellIndex maps bin coordinates (i, j) to the cell index j*nx + i.
// Complexity: O(1).
func (g *Grid) CellIndex(i, j int) int {
	return j*g.nx + i
}

// Coordinate converts a cell index back to its bin coordinates (i, j).
// Complexity: O(1).
func (g *Grid) Coordinate(k int) (i, j int) {
	return k % g.nx, k / g.nx
}

// CellBounds returns the bounding rectangle of cell k.
// Precondition: 0 ≤ k < NumCells().
// Complexity: O(1).
func (g *Grid) CellBounds(k int) clip.Rect {
	return clip.Rect{XMin: g.xMin[k], YMin: g.yMin[k], XMax: g.xMax[k], YMax: g.yMax[k]}
}

// Midpoints returns a NumCells×2 matrix whose row k holds the center of
// cell k: column 0 the x midpoint, column 1 the y midpoint.
// Returns nil for a grid with no cells (a zero-value Grid rather than one
// built by NewGrid).
// Complexity: O(nx*ny) time and memory.
func (g *Grid) Midpoints() *matrix.Dense {
	mid, err := matrix.NewDense(g.NumCells(), 2)
	if err != nil {
		return nil
	}
	for k := 0; k < g.NumCells(); k++ {
		bounds := g.CellBounds(k)
		row := mid.Row(k)
		row[0] = bounds.MidX()
		row[1] = bounds.MidY()
	}

	return mid
}
