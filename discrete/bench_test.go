package discrete_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/discrete"
)

// benchChain builds a chain of n binary variables with n−1 random pairwise
// potentials, deterministic per seed.
func benchChain(b *testing.B, n int) *discrete.FactorGraph {
	b.Helper()
	rng := rand.New(rand.NewSource(42))

	fg, err := discrete.NewFactorGraph()
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n-1; i++ {
		u := core.DiscreteKey{ID: core.Key(fmt.Sprintf("v%03d", i)), Card: 2}
		v := core.DiscreteKey{ID: core.Key(fmt.Sprintf("v%03d", i+1)), Card: 2}
		table := []float64{rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()}
		f, factorErr := discrete.NewFactor(core.DiscreteKeys{u, v}, table)
		if factorErr != nil {
			b.Fatal(factorErr)
		}
		if addErr := fg.Add(f); addErr != nil {
			b.Fatal(addErr)
		}
	}

	return fg
}

// BenchmarkSumProduct_Chain measures full sum-product elimination of a
// 32-variable binary chain (the clique domain stays constant at 4).
func BenchmarkSumProduct_Chain(b *testing.B) {
	fg := benchChain(b, 32)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := fg.SumProduct(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOptimize_Chain measures max-product elimination plus the reverse
// decoding pass on the same chain.
func BenchmarkOptimize_Chain(b *testing.B) {
	fg := benchChain(b, 32)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := fg.Optimize(); err != nil {
			b.Fatal(err)
		}
	}
}
