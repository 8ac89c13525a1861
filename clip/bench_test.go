package clip_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridclip/clip"
)

// BenchmarkFraction measures the clipping kernel on a deterministic mix of
// inside, crossing, and rejected segments against one unit cell.
func BenchmarkFraction(b *testing.B) {
	const n = 1024
	rng := rand.New(rand.NewSource(42))
	segs := make([]clip.Segment, n)
	for i := range segs {
		segs[i] = clip.Segment{
			X1: 3*rng.Float64() - 1, Y1: 3*rng.Float64() - 1,
			X2: 3*rng.Float64() - 1, Y2: 3*rng.Float64() - 1,
		}
	}
	cell := clip.Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = clip.Fraction(segs[i%n], cell)
	}
}

// BenchmarkCode measures the outcode classifier alone.
func BenchmarkCode(b *testing.B) {
	cell := clip.Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = clip.Code(float64(i%7)-3, float64(i%5)-2, cell)
	}
}
