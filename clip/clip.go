package clip

import "math"

// maxClips bounds the number of endpoint clips in Fraction. A convex
// rectangle clips each endpoint at most once per axis, so four clips
// always suffice for finite well-formed input; the bound only guards
// termination against degenerate or NaN coordinates.
const maxClips = 4

// Code classifies (x, y) against r with a 4-bit outcode.
// Points exactly on a boundary contribute no bit on that axis, so the
// boundary counts as inside. Pure function, defined for all finite inputs.
// Complexity: O(1).
func Code(x, y float64, r Rect) Outcode {
	code := Inside
	if x < r.XMin {
		code |= Left
	} else if x > r.XMax {
		code |= Right
	}
	if y < r.YMin {
		code |= Bottom
	} else if y > r.YMax {
		code |= Top
	}

	return code
}

// Fraction returns the fraction of s's length lying inside r, in [0, 1].
//
// Iterative Cohen–Sutherland: outcodes for both endpoints are recomputed
// after every clip; the loop accepts when both are Inside, rejects when the
// codes share a bit, and otherwise clips one endpoint (preferring endpoint 1)
// against a single edge chosen by the fixed priority Top, Bottom, Right,
// Left. The priority order fixes intermediate rounding and must not change.
//
// The total length is taken from the original endpoints before any clip, so
// the accepted fraction is (clipped length) / (original length).
//
// A zero-length segment returns 1 when the point is inside r and 0 when
// outside; the division by zero length is never performed. A clip edge whose
// denominator is zero is skipped as "no clip needed on this axis"; if no
// edge remains or the clip bound is exhausted, the current clipped fraction
// (clamped, NaN mapped to 0) is returned as the defensive fallback.
//
// Complexity: O(1) — at most maxClips iterations.
func Fraction(s Segment, r Rect) float64 {
	total := s.Length()
	x1, y1, x2, y2 := s.X1, s.Y1, s.X2, s.Y2
	code1 := Code(x1, y1, r)
	code2 := Code(x2, y2, r)

	if total == 0 {
		if code1 == Inside {
			return 1
		}

		return 0
	}

	clips := 0
	for {
		if code1 == Inside && code2 == Inside {
			return fractionOf(x1, y1, x2, y2, total)
		}
		if code1&code2 != 0 {
			return 0
		}
		if clips == maxClips {
			break
		}

		// Prefer endpoint 1 when both are outside.
		out := code1
		if out == Inside {
			out = code2
		}

		// One edge per iteration, fixed priority, zero denominators skipped.
		var x, y float64
		switch {
		case out&Top != 0 && y2 != y1:
			x = x1 + (x2-x1)*(r.YMax-y1)/(y2-y1)
			y = r.YMax
		case out&Bottom != 0 && y2 != y1:
			x = x1 + (x2-x1)*(r.YMin-y1)/(y2-y1)
			y = r.YMin
		case out&Right != 0 && x2 != x1:
			y = y1 + (y2-y1)*(r.XMax-x1)/(x2-x1)
			x = r.XMax
		case out&Left != 0 && x2 != x1:
			y = y1 + (y2-y1)*(r.XMin-x1)/(x2-x1)
			x = r.XMin
		default:
			// No clippable edge left; only reachable for malformed input.
			return fractionOf(x1, y1, x2, y2, total)
		}

		if out == code1 {
			x1, y1 = x, y
			code1 = Code(x1, y1, r)
		} else {
			x2, y2 = x, y
			code2 = Code(x2, y2, r)
		}
		clips++
	}

	return fractionOf(x1, y1, x2, y2, total)
}

// fractionOf reports the length fraction for the current working endpoints,
// clamped into [0, 1] with NaN mapped to 0. Clamping is a no-op for finite
// well-formed input up to rounding; it keeps the defensive fallbacks finite.
func fractionOf(x1, y1, x2, y2, total float64) float64 {
	dx, dy := x1-x2, y1-y2
	f := math.Sqrt(dx*dx+dy*dy) / total
	switch {
	case math.IsNaN(f):
		return 0
	case f < 0:
		return 0
	case f > 1:
		return 1
	}

	return f
}
