// Package discrete: BayesNet — the sum-product elimination output.
package discrete

import (
	"github.com/katalvlaran/factorgraph/core"
)

// BayesNet is an ordered sequence of conditionals, one per elimination
// step, in elimination order. Multiplied together they factor the joint
// distribution encoded by the eliminated graph (up to the graph's total
// mass, which the final residual carried away).
type BayesNet []*Conditional

// Evaluate returns the product of every conditional at the assignment —
// the normalized joint probability of a full variable assignment.
//
// Errors: ErrIncompleteAssignment, decision.ErrIndexOutOfRange.
// Complexity: O(conditionals · keys per conditional).
func (bn BayesNet) Evaluate(values core.Values) (float64, error) {
	result := 1.0
	for _, c := range bn {
		p, err := c.Evaluate(values)
		if err != nil {
			return 0, err
		}
		result *= p
	}

	return result, nil
}

// Equals reports pairwise equality of the conditionals within tol, in
// order.
func (bn BayesNet) Equals(other BayesNet, tol float64) bool {
	if len(bn) != len(other) {
		return false
	}
	for i, c := range bn {
		if !c.Equals(other[i], tol) {
			return false
		}
	}

	return true
}
