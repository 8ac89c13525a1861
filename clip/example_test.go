// File: clip/example_test.go
package clip_test

import (
	"fmt"

	"github.com/katalvlaran/gridclip/clip"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Fraction
////////////////////////////////////////////////////////////////////////////////

// ExampleFraction demonstrates clipping one segment against the four cells
// of a 2×2 unit grid.
// Scenario:
//
//   - Segment from (0.5,0.5) to (1.5,1.5), length √2.
//   - Half its length lies in the lower-left cell, half in the upper-right,
//     and none in the other two.
func ExampleFraction() {
	s := clip.Segment{X1: 0.5, Y1: 0.5, X2: 1.5, Y2: 1.5}
	cells := []clip.Rect{
		{XMin: 0, YMin: 0, XMax: 1, YMax: 1},
		{XMin: 1, YMin: 0, XMax: 2, YMax: 1},
		{XMin: 0, YMin: 1, XMax: 1, YMax: 2},
		{XMin: 1, YMin: 1, XMax: 2, YMax: 2},
	}

	for k, cell := range cells {
		fmt.Printf("cell %d fraction %.2f\n", k, clip.Fraction(s, cell))
	}

	// Output:
	// cell 0 fraction 0.50
	// cell 1 fraction 0.00
	// cell 2 fraction 0.00
	// cell 3 fraction 0.50
}

////////////////////////////////////////////////////////////////////////////////
// Example: Code
////////////////////////////////////////////////////////////////////////////////

// ExampleCode shows the nine outcode regions around a rectangle; points on
// a boundary count as inside on that axis.
func ExampleCode() {
	r := clip.Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

	fmt.Println(clip.Code(0.5, 0.5, r)) // inside
	fmt.Println(clip.Code(-1, 0.5, r))  // left
	fmt.Println(clip.Code(2, 2, r))     // right|top
	fmt.Println(clip.Code(1, 0.5, r))   // on the right edge: inside

	// Output:
	// 0
	// 1
	// 10
	// 0
}
