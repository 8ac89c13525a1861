// Package clip defines the core types for the clipping kernel:
// outcodes, axis-aligned rectangles, and line segments.
package clip

import "math"

// Outcode is a 4-bit classification of a point against a rectangle's four
// half-plane boundaries. Inside is 0. Each axis contributes at most one bit,
// so Left|Right and Bottom|Top never occur in a value produced by Code.
type Outcode uint8

const (
	// Inside marks a point within the rectangle, boundaries included.
	Inside Outcode = 0
	// Left marks x < XMin.
	Left Outcode = 1
	// Right marks x > XMax.
	Right Outcode = 2
	// Bottom marks y < YMin.
	Bottom Outcode = 4
	// Top marks y > YMax.
	Top Outcode = 8
)

// Rect is an axis-aligned rectangle. Callers must ensure XMin < XMax and
// YMin < YMax; gridfrac guarantees this for cells derived from valid edges.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Contains reports whether (x, y) lies inside r, boundaries included.
// Complexity: O(1).
func (r Rect) Contains(x, y float64) bool {
	return Code(x, y, r) == Inside
}

// MidX returns the x coordinate of r's center.
func (r Rect) MidX() float64 {
	return (r.XMin + r.XMax) / 2
}

// MidY returns the y coordinate of r's center.
func (r Rect) MidY() float64 {
	return (r.YMin + r.YMax) / 2
}

// Segment is a straight line segment from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Length returns the Euclidean length of s.
// Complexity: O(1).
func (s Segment) Length() float64 {
	dx, dy := s.X1-s.X2, s.Y1-s.Y2

	return math.Sqrt(dx*dx + dy*dy)
}
