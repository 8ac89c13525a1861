package gridfrac_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridclip/gridfrac"
)

// benchInputs builds a 50×50 grid over [0,50]² and n ruptures with a fixed
// seed so all benchmarks see identical work.
func benchInputs(b *testing.B, n int) (*gridfrac.Grid, gridfrac.Ruptures) {
	b.Helper()
	edges := make([]float64, 51)
	for i := range edges {
		edges[i] = float64(i)
	}
	g, err := gridfrac.NewGrid(edges, edges)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	rs := gridfrac.Ruptures{
		X1: make([]float64, n), Y1: make([]float64, n),
		X2: make([]float64, n), Y2: make([]float64, n),
		R: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		rs.X1[i] = 50 * rng.Float64()
		rs.Y1[i] = 50 * rng.Float64()
		rs.X2[i] = 50 * rng.Float64()
		rs.Y2[i] = 50 * rng.Float64()
		rs.R[i] = rng.Float64()
	}

	return g, rs
}

// BenchmarkBuild_Serial measures the single-goroutine hot loop on
// 200 ruptures × 2500 cells.
func BenchmarkBuild_Serial(b *testing.B) {
	g, rs := benchInputs(b, 200)
	opts := gridfrac.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gridfrac.Build(g, rs, opts)
	}
}

// BenchmarkBuild_Workers4 measures the same workload striped over four
// goroutines.
func BenchmarkBuild_Workers4(b *testing.B) {
	g, rs := benchInputs(b, 200)
	opts := gridfrac.Options{Workers: 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gridfrac.Build(g, rs, opts)
	}
}
