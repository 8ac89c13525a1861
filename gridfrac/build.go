package gridfrac

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/gridclip/clip"
	"github.com/katalvlaran/gridclip/matrix"
)

// Build assembles the two output matrices for a rupture set over a grid:
//
//   - mid:   NumCells×2, row k = center of cell k (see Grid.Midpoints).
//   - rfrac: Len×NumCells, entry (i, k) = R[i] × fraction of rupture i's
//     length inside cell k.
//
// Every entry of rfrac is finite, bounded by |R[i]| in magnitude, and
// carries R[i]'s sign. Columns follow the Grid cell-index convention
// (x-bin fastest).
//
// Returns ErrInvalidGrid for a grid with no cells (a zero-value Grid rather
// than one built by NewGrid), ErrLengthMismatch when the rupture slices
// disagree in length, and ErrNoRuptures for an empty set; no partial
// computation is performed.
//
// opts.Workers > 1 stripes rupture rows across that many goroutines. Each
// worker writes only its own rows of rfrac, so no synchronization beyond
// the final WaitGroup is needed and the result is identical to the serial
// path.
//
// Complexity: O(Len × NumCells) time, O(Len × NumCells) memory.
func Build(g *Grid, rs Ruptures, opts Options) (mid, rfrac *matrix.Dense, err error) {
	if g.NumCells() == 0 {
		return nil, nil, fmt.Errorf("%w: grid has no cells; use NewGrid", ErrInvalidGrid)
	}
	if err = rs.validate(); err != nil {
		return nil, nil, err
	}
	noData := rs.Len()
	if noData == 0 {
		return nil, nil, ErrNoRuptures
	}

	mid = g.Midpoints()
	rfrac, _ = matrix.NewDense(noData, g.NumCells()) // dims > 0 checked above

	workers := opts.Workers
	if workers > noData {
		workers = noData
	}
	if workers <= 1 {
		for i := 0; i < noData; i++ {
			fillRow(g, rs, rfrac, i)
		}

		return mid, rfrac, nil
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < noData; i += workers {
				fillRow(g, rs, rfrac, i)
			}
		}(w)
	}
	wg.Wait()

	return mid, rfrac, nil
}

// fillRow writes rupture i's weighted fractions into its rfrac row.
// Rows are disjoint, so concurrent calls for distinct i need no locking.
func fillRow(g *Grid, rs Ruptures, rfrac *matrix.Dense, i int) {
	seg := rs.Segment(i)
	weight := rs.R[i]
	row := rfrac.Row(i)
	for k := range row {
		row[k] = weight * clip.Fraction(seg, g.CellBounds(k))
	}
}
