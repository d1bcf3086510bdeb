// Package core_test: unit tests for assignment Values helpers.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/core"
)

func TestValues_CloneIsIndependent(t *testing.T) {
	v := core.Values{"A": 1, "B": 0}
	c := v.Clone()
	c["A"] = 0
	require.Equal(t, 1, v["A"], "mutating the clone must not touch the original")
}

func TestValues_Filter(t *testing.T) {
	v := core.Values{"A": 1, "B": 2, "X": 0}
	keys := core.DiscreteKeys{{ID: "A", Card: 2}, {ID: "B", Card: 3}, {ID: "C", Card: 2}}

	sub := v.Filter(keys)
	require.Equal(t, core.Values{"A": 1, "B": 2}, sub)
}

func TestValues_Missing(t *testing.T) {
	v := core.Values{"A": 1}
	keys := core.DiscreteKeys{{ID: "A", Card: 2}, {ID: "B", Card: 3}, {ID: "C", Card: 2}}

	missing := v.Missing(keys)
	require.Equal(t, []core.Key{"B", "C"}, missing.IDs())
}

func TestValues_MergeOtherWins(t *testing.T) {
	v := core.Values{"A": 0, "B": 1}
	merged := v.Merge(core.Values{"B": 2, "C": 0})
	require.Equal(t, core.Values{"A": 0, "B": 2, "C": 0}, merged)
	// Receiver untouched.
	require.Equal(t, core.Values{"A": 0, "B": 1}, v)
}

func TestValues_Equal(t *testing.T) {
	require.True(t, core.Values{"A": 1}.Equal(core.Values{"A": 1}))
	require.False(t, core.Values{"A": 1}.Equal(core.Values{"A": 0}))
	require.False(t, core.Values{"A": 1}.Equal(core.Values{"A": 1, "B": 0}))
}
