// Package discrete_test: unit tests for the FactorGraph surface — universe
// aggregation, products, scaled products, and point evaluation.
package discrete_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/discrete"
)

func chainGraph(t *testing.T) *discrete.FactorGraph {
	t.Helper()
	// phi(A,B) and phi(B,C): the three-variable chain used across tests.
	ab := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})
	bc := mustFactor(t, core.DiscreteKeys{keyB, keyC}, []float64{5, 6, 7, 8})
	fg, err := discrete.NewFactorGraph(ab, bc)
	require.NoError(t, err)

	return fg
}

func TestFactorGraph_AddNil(t *testing.T) {
	fg, err := discrete.NewFactorGraph()
	require.NoError(t, err)
	require.ErrorIs(t, fg.Add(nil), discrete.ErrNilFactor)

	_, err = discrete.NewFactorGraph(nil)
	require.ErrorIs(t, err, discrete.ErrNilFactor)
}

func TestFactorGraph_Universe(t *testing.T) {
	fg := chainGraph(t)
	require.Equal(t, 2, fg.Size())
	require.Equal(t, []core.Key{"A", "B", "C"}, fg.Keys())
	require.Equal(t, map[core.Key]int{"A": 2, "B": 2, "C": 2}, fg.DiscreteKeys().CardinalityMap())
}

func TestFactorGraph_ProductMatchesDirectEnumeration(t *testing.T) {
	fg := chainGraph(t)
	product, err := fg.Product()
	require.NoError(t, err)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				values := core.Values{"A": a, "B": b, "C": c}
				direct, evalErr := fg.Evaluate(values)
				require.NoError(t, evalErr)
				tabled, atErr := product.Evaluate(values)
				require.NoError(t, atErr)
				require.InDelta(t, direct, tabled, 1e-12, "assignment %v", values)
			}
		}
	}
}

func TestFactorGraph_EmptyProductIsUnit(t *testing.T) {
	fg, err := discrete.NewFactorGraph()
	require.NoError(t, err)

	product, err := fg.Product()
	require.NoError(t, err)
	got, err := product.Evaluate(core.Values{})
	require.NoError(t, err)
	require.Equal(t, 1.0, got)
}

func TestFactorGraph_ScaledProduct_Invertible(t *testing.T) {
	// Ten factors spanning many orders of magnitude: the naive product
	// ranges over ~1e-30..1e+10 territory where scaling matters.
	fg, err := discrete.NewFactorGraph()
	require.NoError(t, err)
	tables := [][]float64{
		{1e-4, 2e-4, 3e-4, 4e-4},
		{5e3, 6e3, 7e3, 8e3},
		{1e-6, 2e-6, 3e-6, 4e-6},
		{9e2, 8e2, 7e2, 6e2},
		{1e-5, 5e-5, 2e-5, 4e-5},
		{3e4, 2e4, 1e4, 5e4},
		{2e-3, 4e-3, 8e-3, 1e-3},
		{7e1, 6e1, 5e1, 4e1},
		{1e-7, 3e-7, 9e-7, 2e-7},
		{4e5, 3e5, 2e5, 1e5},
	}
	for _, table := range tables {
		require.NoError(t, fg.Add(mustFactor(t, core.DiscreteKeys{keyA, keyB}, table)))
	}

	product, err := fg.Product()
	require.NoError(t, err)
	scaled, scale, err := fg.ScaledProduct()
	require.NoError(t, err)

	// The scaled table is bounded: its maximum is exactly 1 after the last
	// rescale, far from underflow.
	require.InDelta(t, 1.0, scaled.Max(), 1e-12)

	// Multiplying the recorded scale back recovers the true product.
	recovered, err := scaled.Scale(scale)
	require.NoError(t, err)
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			values := core.Values{"A": a, "B": b}
			want, evalErr := product.Evaluate(values)
			require.NoError(t, evalErr)
			got, atErr := recovered.Evaluate(values)
			require.NoError(t, atErr)
			require.InEpsilon(t, want, got, 1e-9, "assignment %v", values)
		}
	}
}

func TestFactorGraph_Equals(t *testing.T) {
	require.True(t, chainGraph(t).Equals(chainGraph(t), 1e-12))

	other := chainGraph(t)
	extra := mustFactor(t, core.DiscreteKeys{keyC}, []float64{1, 1})
	require.NoError(t, other.Add(extra))
	require.False(t, chainGraph(t).Equals(other, 1e-12))
}
