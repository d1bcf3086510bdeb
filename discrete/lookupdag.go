// Package discrete: LookupDAG — the max-product elimination output.
package discrete

import (
	"github.com/katalvlaran/factorgraph/core"
)

// LookupDAG is an ordered sequence of lookup tables, one per elimination
// step, in elimination order. It supports a single reverse-order decoding
// pass producing the maximizing joint assignment (MPE). The tables are
// unnormalized by construction; treating the DAG as a distribution is a
// caller error.
type LookupDAG []*LookupTable

// ArgMax decodes the maximizing joint assignment in one reverse pass.
//
// The last-eliminated table has no parents; every earlier table's parents
// were eliminated at later steps and are therefore already decoded when the
// reverse pass reaches it. Each step is a pure table lookup with the
// documented lexicographic first-max tie-break — no backtracking search.
//
// Errors: ErrIncompleteAssignment for a malformed DAG whose parent keys are
// not covered by later steps (cannot occur for MaxProduct output).
// Complexity: O(steps · frontal domain size).
func (dag LookupDAG) ArgMax() (core.Values, error) {
	decoded := make(core.Values)
	for i := len(dag) - 1; i >= 0; i-- {
		best, err := dag[i].ArgMax(decoded)
		if err != nil {
			return nil, err
		}
		decoded = decoded.Merge(best)
	}

	return decoded, nil
}
