// Package discrete_test contains unit tests for the Factor type: algebra,
// marginalization, normalization, and diagnostics.
package discrete_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/discrete"
)

var (
	keyA = core.DiscreteKey{ID: "A", Card: 2}
	keyB = core.DiscreteKey{ID: "B", Card: 2}
	keyC = core.DiscreteKey{ID: "C", Card: 2}
)

func mustFactor(t *testing.T, keys core.DiscreteKeys, table []float64) *discrete.Factor {
	t.Helper()
	f, err := discrete.NewFactor(keys, table)
	require.NoError(t, err)

	return f
}

func TestNewFactor_RejectsNegative(t *testing.T) {
	_, err := discrete.NewFactor(core.DiscreteKeys{keyA}, []float64{1, -0.5})
	require.ErrorIs(t, err, discrete.ErrNegativeValue)
}

func TestFactor_Evaluate(t *testing.T) {
	f := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})

	got, err := f.Evaluate(core.Values{"A": 1, "B": 0})
	require.NoError(t, err)
	require.Equal(t, 3.0, got)

	// Extra keys are ignored; missing keys are an error.
	got, err = f.Evaluate(core.Values{"A": 0, "B": 1, "Z": 5})
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	_, err = f.Evaluate(core.Values{"A": 0})
	require.ErrorIs(t, err, discrete.ErrIncompleteAssignment)
}

func TestFactor_MulAlignsSharedKeys(t *testing.T) {
	ab := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})
	bc := mustFactor(t, core.DiscreteKeys{keyB, keyC}, []float64{5, 6, 7, 8})

	product, err := ab.Mul(bc)
	require.NoError(t, err)
	require.Equal(t, []core.Key{"A", "B", "C"}, product.Keys())

	// phi(A=1,B=1)*phi(B=1,C=0) = 4*7.
	got, err := product.Evaluate(core.Values{"A": 1, "B": 1, "C": 0})
	require.NoError(t, err)
	require.Equal(t, 28.0, got)
}

func TestFactor_Mul_CardinalityMismatch(t *testing.T) {
	a2 := mustFactor(t, core.DiscreteKeys{{ID: "A", Card: 2}}, []float64{1, 2})
	a3 := mustFactor(t, core.DiscreteKeys{{ID: "A", Card: 3}}, []float64{1, 2, 3})

	_, err := a2.Mul(a3)
	require.ErrorIs(t, err, discrete.ErrCardinalityMismatch)
}

func TestFactor_SumOutAndMaxOut(t *testing.T) {
	f := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 9, 3, 4})

	summed, err := f.SumOut(keyB)
	require.NoError(t, err)
	got, err := summed.Evaluate(core.Values{"A": 0})
	require.NoError(t, err)
	require.Equal(t, 10.0, got)

	maxed, err := f.MaxOut(keyA)
	require.NoError(t, err)
	got, err = maxed.Evaluate(core.Values{"B": 1})
	require.NoError(t, err)
	require.Equal(t, 9.0, got)
}

func TestFactor_MaxSumNormalize(t *testing.T) {
	f := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})
	require.Equal(t, 4.0, f.Max())
	require.Equal(t, 10.0, f.Sum())

	normalized := f.Normalize()
	require.InDelta(t, 1.0, normalized.Sum(), 1e-12)
	got, err := normalized.Evaluate(core.Values{"A": 1, "B": 1})
	require.NoError(t, err)
	require.InDelta(t, 0.4, got, 1e-12)
}

func TestFactor_Normalize_AllZeroStaysZero(t *testing.T) {
	f := mustFactor(t, core.DiscreteKeys{keyA}, []float64{0, 0})
	normalized := f.Normalize()
	got, err := normalized.Evaluate(core.Values{"A": 0})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestFactor_Equals(t *testing.T) {
	f := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})
	g := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4.000000001})
	h := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 5})

	require.True(t, f.Equals(g, 1e-6))
	require.False(t, f.Equals(h, 1e-6))
	require.False(t, f.Equals(nil, 1e-6))
}

func TestFactor_Stats(t *testing.T) {
	f := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})

	s, err := f.Stats()
	require.NoError(t, err)
	require.Equal(t, 4, s.Count)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 4.0, s.Max)
	require.InDelta(t, 2.5, s.Mean, 1e-12)
	require.InDelta(t, 2.5, s.Median, 1e-12)
}
