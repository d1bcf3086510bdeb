// Package discrete_test: unit tests for the elimination primitives —
// normalization invariants, residual semantics, the zero-mass policy, and
// the MPE variant's unnormalized tables.
package discrete_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/discrete"
)

func TestEliminate_Validation(t *testing.T) {
	ab := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})

	// Empty clique and empty frontal set.
	_, _, err := discrete.Eliminate(nil, core.DiscreteKeys{keyA})
	require.ErrorIs(t, err, discrete.ErrEmptyClique)
	_, _, err = discrete.Eliminate([]*discrete.Factor{ab}, nil)
	require.ErrorIs(t, err, discrete.ErrEmptyClique)

	// Nil clique member.
	_, _, err = discrete.Eliminate([]*discrete.Factor{ab, nil}, core.DiscreteKeys{keyA})
	require.ErrorIs(t, err, discrete.ErrNilFactor)

	// Frontal key outside the clique.
	_, _, err = discrete.Eliminate([]*discrete.Factor{ab}, core.DiscreteKeys{{ID: "Z", Card: 2}})
	require.ErrorIs(t, err, discrete.ErrEmptyClique)

	// Frontal cardinality disagrees with the clique's record.
	_, _, err = discrete.Eliminate([]*discrete.Factor{ab}, core.DiscreteKeys{{ID: "A", Card: 3}})
	require.ErrorIs(t, err, discrete.ErrCardinalityMismatch)
}

func TestEliminate_ConditionalIsNormalizedPerParent(t *testing.T) {
	ab := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})
	bc := mustFactor(t, core.DiscreteKeys{keyB, keyC}, []float64{5, 6, 7, 8})

	conditional, residual, err := discrete.Eliminate([]*discrete.Factor{ab, bc}, core.DiscreteKeys{keyB})
	require.NoError(t, err)
	require.Equal(t, []core.Key{"B"}, conditional.Frontals().IDs())
	require.Equal(t, []core.Key{"A", "C"}, conditional.Parents().IDs())
	require.Equal(t, 1, conditional.NrFrontals())

	// For every parent assignment, summing P(B | A, C) over B yields 1.
	for a := 0; a < 2; a++ {
		for c := 0; c < 2; c++ {
			total := 0.0
			for b := 0; b < 2; b++ {
				p, evalErr := conditional.Evaluate(core.Values{"A": a, "B": b, "C": c})
				require.NoError(t, evalErr)
				total += p
			}
			require.InDelta(t, 1.0, total, 1e-12, "A=%d C=%d", a, c)
		}
	}

	// The residual is the frontal marginal of the clique product.
	for a := 0; a < 2; a++ {
		for c := 0; c < 2; c++ {
			want := 0.0
			for b := 0; b < 2; b++ {
				va, _ := ab.Evaluate(core.Values{"A": a, "B": b})
				vb, _ := bc.Evaluate(core.Values{"B": b, "C": c})
				want += va * vb
			}
			got, evalErr := residual.Evaluate(core.Values{"A": a, "C": c})
			require.NoError(t, evalErr)
			require.InDelta(t, want, got, 1e-12)
		}
	}
}

func TestEliminate_ZeroMassBranchFallsBackToUniform(t *testing.T) {
	// For B=1 the whole A column is zero: no mass reaches that branch, so
	// P(A | B=1) is undefined under division. The documented policy yields
	// the uniform distribution instead of NaN.
	ab := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{
		// A=0: B=0 -> 2, B=1 -> 0
		2, 0,
		// A=1: B=0 -> 6, B=1 -> 0
		6, 0,
	})

	conditional, residual, err := discrete.Eliminate([]*discrete.Factor{ab}, core.DiscreteKeys{keyA})
	require.NoError(t, err)

	// Healthy branch: P(A=1 | B=0) = 6/8.
	p, err := conditional.Evaluate(core.Values{"A": 1, "B": 0})
	require.NoError(t, err)
	require.InDelta(t, 0.75, p, 1e-12)

	// Zero-mass branch: uniform over card(A) = 2.
	for a := 0; a < 2; a++ {
		p, err = conditional.Evaluate(core.Values{"A": a, "B": 1})
		require.NoError(t, err)
		require.InDelta(t, 0.5, p, 1e-12)
	}

	// The residual honestly reports the zero mass.
	got, err := residual.Evaluate(core.Values{"B": 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestEliminateForMPE_ResidualIsUnnormalizedMax(t *testing.T) {
	ab := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 9, 3, 4})

	lookup, residual, err := discrete.EliminateForMPE([]*discrete.Factor{ab}, core.DiscreteKeys{keyA})
	require.NoError(t, err)
	require.Equal(t, []core.Key{"A"}, lookup.Frontals().IDs())
	require.Equal(t, []core.Key{"B"}, lookup.Parents().IDs())

	// max over A at B=0 is 3 (A=1), at B=1 is 9 (A=0) — raw potentials,
	// never normalized.
	got, err := residual.Evaluate(core.Values{"B": 0})
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
	got, err = residual.Evaluate(core.Values{"B": 1})
	require.NoError(t, err)
	require.Equal(t, 9.0, got)

	// Arg-max decoding against decoded parents.
	best, err := lookup.ArgMax(core.Values{"B": 0})
	require.NoError(t, err)
	require.Equal(t, core.Values{"A": 1}, best)
	best, err = lookup.ArgMax(core.Values{"B": 1})
	require.NoError(t, err)
	require.Equal(t, core.Values{"A": 0}, best)

	// Missing parent values are rejected.
	_, err = lookup.ArgMax(core.Values{})
	require.ErrorIs(t, err, discrete.ErrIncompleteAssignment)
}

func TestEliminateForMPE_TieBreaksLexicographicFirst(t *testing.T) {
	// Both values of A attain the maximum: the first in enumeration order
	// (A=0) must win, reproducibly.
	a := mustFactor(t, core.DiscreteKeys{keyA}, []float64{7, 7})

	lookup, _, err := discrete.EliminateForMPE([]*discrete.Factor{a}, core.DiscreteKeys{keyA})
	require.NoError(t, err)

	best, err := lookup.ArgMax(core.Values{})
	require.NoError(t, err)
	require.Equal(t, core.Values{"A": 0}, best)
}

func TestEliminate_TwoStepChainViaPrimitives(t *testing.T) {
	// Eliminating {B} and then {A, C} with the primitives directly yields a
	// two-step Bayes net P(B | A,C) · P(A,C) factoring the chain joint.
	ab := mustFactor(t, core.DiscreteKeys{keyA, keyB}, []float64{1, 2, 3, 4})
	bc := mustFactor(t, core.DiscreteKeys{keyB, keyC}, []float64{5, 6, 7, 8})

	condB, residAC, err := discrete.Eliminate([]*discrete.Factor{ab, bc}, core.DiscreteKeys{keyB})
	require.NoError(t, err)

	condAC, residEmpty, err := discrete.Eliminate([]*discrete.Factor{residAC}, core.DiscreteKeys{keyA, keyC})
	require.NoError(t, err)
	require.Equal(t, 2, condAC.NrFrontals())
	require.Empty(t, condAC.Parents())

	net := discrete.BayesNet{condB, condAC}

	// Total mass Z of the unnormalized joint sits in the final residual.
	z, err := residEmpty.Evaluate(core.Values{})
	require.NoError(t, err)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				values := core.Values{"A": a, "B": b, "C": c}
				va, _ := ab.Evaluate(core.Values{"A": a, "B": b})
				vb, _ := bc.Evaluate(core.Values{"B": b, "C": c})
				p, evalErr := net.Evaluate(values)
				require.NoError(t, evalErr)
				require.InDelta(t, va*vb, p*z, 1e-9, "assignment %v", values)
			}
		}
	}
}
