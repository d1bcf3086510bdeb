// Package discrete: elimination outputs.
// This file declares Conditional — P(frontals | parents), normalized per
// parent assignment — and LookupTable, its max-product analogue holding the
// UNNORMALIZED clique table for arg-max decoding. A LookupTable is not a
// probability table and must never be treated as one.
package discrete

import (
	"errors"
	"math"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/decision"
)

// Conditional represents P(frontals | parents) over discrete variables.
// For every fixed parent assignment the frontal values sum to one; the
// normalization invariant holds for every Conditional ever produced by
// elimination (zero-mass parent branches fall back to the uniform
// distribution — see Eliminate).
type Conditional struct {
	frontals core.DiscreteKeys      // sorted by ID
	parents  core.DiscreteKeys      // sorted by ID
	tree     decision.Tree[float64] // normalized table
}

// NewConditional builds a conditional from an unnormalized table over
// (frontals..., parents...) in the given order, last key varying fastest.
// The table is normalized per parent assignment; a zero-mass parent branch
// becomes the uniform distribution over the frontal domain.
//
// Errors: core.ErrBadCardinality / core.ErrDuplicateKey,
// decision.ErrLeafCountMismatch, ErrNegativeValue, ErrEmptyClique if
// frontals is empty.
func NewConditional(frontals, parents core.DiscreteKeys, table []float64) (*Conditional, error) {
	if len(frontals) == 0 {
		return nil, ErrEmptyClique
	}

	joint, err := NewFactor(frontals.Union(parents), table)
	if err != nil {
		return nil, err
	}

	tree, _, err := normalizeOverFrontals(joint, frontals.Sorted())
	if err != nil {
		return nil, err
	}

	return &Conditional{
		frontals: frontals.Sorted(),
		parents:  parents.Sorted(),
		tree:     tree,
	}, nil
}

// normalizeOverFrontals divides the joint clique table by its frontal
// marginal, broadcasting over parent assignments. Zero-mass parent branches
// (residual exactly 0, hence every numerator 0) get the uniform
// distribution 1/|frontal domain| — the documented deterministic policy for
// the undefined 0/0 branch; no NaN ever escapes.
func normalizeOverFrontals(joint *Factor, frontals core.DiscreteKeys) (decision.Tree[float64], *Factor, error) {
	residual, err := joint.SumOut(frontals...)
	if err != nil {
		return decision.Tree[float64]{}, nil, err
	}

	uniform := 1.0 / float64(frontals.DomainSize())
	tree, err := joint.tree.Combine(residual.tree, func(num, den float64) float64 {
		if den == 0 {
			return uniform
		}

		return num / den
	})
	if err != nil {
		return decision.Tree[float64]{}, nil, err
	}

	return tree, residual, nil
}

// Frontals returns a copy of the frontal keys (sorted by ID).
func (c *Conditional) Frontals() core.DiscreteKeys {
	keys := make(core.DiscreteKeys, len(c.frontals))
	copy(keys, c.frontals)

	return keys
}

// Parents returns a copy of the parent (separator) keys (sorted by ID).
func (c *Conditional) Parents() core.DiscreteKeys {
	keys := make(core.DiscreteKeys, len(c.parents))
	copy(keys, c.parents)

	return keys
}

// DiscreteKeys returns frontal keys followed by parent keys.
func (c *Conditional) DiscreteKeys() core.DiscreteKeys {
	return c.Frontals().Union(c.parents)
}

// NrFrontals returns the number of frontal variables.
func (c *Conditional) NrFrontals() int { return len(c.frontals) }

// Evaluate returns P(frontals | parents) at one full assignment of the
// conditional's keys (extra keys in values are ignored).
//
// Errors: ErrIncompleteAssignment, decision.ErrIndexOutOfRange.
func (c *Conditional) Evaluate(values core.Values) (float64, error) {
	v, err := c.tree.At(values)
	if errors.Is(err, decision.ErrIncompleteAssignment) {
		return 0, ErrIncompleteAssignment
	}
	if err != nil {
		return 0, err
	}

	return v, nil
}

// LogProbability returns log P at the assignment (-Inf for zero mass).
func (c *Conditional) LogProbability(values core.Values) (float64, error) {
	p, err := c.Evaluate(values)
	if err != nil {
		return 0, err
	}

	return math.Log(p), nil
}

// Error returns the negative log probability at the assignment.
func (c *Conditional) Error(values core.Values) (float64, error) {
	logP, err := c.LogProbability(values)
	if err != nil {
		return 0, err
	}

	return -logP, nil
}

// NegLogConstant returns 0: a discrete conditional is already a normalized
// probability table and carries no separate normalizing constant.
func (c *Conditional) NegLogConstant() float64 { return 0 }

// Equals reports whether both conditionals share the same frontal/parent
// structure and agree on every table entry within tol.
func (c *Conditional) Equals(other *Conditional, tol float64) bool {
	if other == nil {
		return false
	}
	if !sameKeys(c.frontals, other.frontals) || !sameKeys(c.parents, other.parents) {
		return false
	}

	equal := true
	c.tree.Visit(func(values core.Values, leaf float64) {
		o, err := other.tree.At(values)
		if err != nil || math.Abs(leaf-o) > tol {
			equal = false
		}
	})

	return equal
}

// sameKeys reports element-wise equality of two key collections.
func sameKeys(a, b core.DiscreteKeys) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// LookupTable is the max-product analogue of a Conditional: for every
// parent assignment it encodes the frontal combination(s) attaining the
// clique maximum, kept UNNORMALIZED so downstream decoding multiplies true
// potentials, never probabilities.
type LookupTable struct {
	frontals core.DiscreteKeys      // sorted by ID
	parents  core.DiscreteKeys      // sorted by ID
	tree     decision.Tree[float64] // unnormalized clique product
}

// Frontals returns a copy of the frontal keys (sorted by ID).
func (lt *LookupTable) Frontals() core.DiscreteKeys {
	keys := make(core.DiscreteKeys, len(lt.frontals))
	copy(keys, lt.frontals)

	return keys
}

// Parents returns a copy of the parent keys (sorted by ID).
func (lt *LookupTable) Parents() core.DiscreteKeys {
	keys := make(core.DiscreteKeys, len(lt.parents))
	copy(keys, lt.parents)

	return keys
}

// NrFrontals returns the number of frontal variables.
func (lt *LookupTable) NrFrontals() int { return len(lt.frontals) }

// ArgMax returns the frontal assignment maximizing the clique potential
// given fully decoded parent values.
//
// Tie-breaking is deterministic and reproducible: frontal assignments are
// enumerated lexicographically (keys ascending by ID, value indices
// ascending, last key fastest) and the FIRST assignment attaining the
// maximum wins.
//
// Errors: ErrIncompleteAssignment if parentValues misses a parent key.
// Complexity: O(frontal domain size)
func (lt *LookupTable) ArgMax(parentValues core.Values) (core.Values, error) {
	// 1) Every parent must be decoded before this step.
	if len(parentValues.Missing(lt.parents)) > 0 {
		return nil, ErrIncompleteAssignment
	}

	// 2) Scan the frontal domain in lexicographic order, keeping the first
	//    assignment that strictly improves on the best seen so far.
	best := math.Inf(-1)
	var bestValues core.Values
	assignment := parentValues.Clone()

	var walk func(depth int) error
	walk = func(depth int) error {
		if depth == len(lt.frontals) {
			v, err := lt.tree.At(assignment)
			if err != nil {
				return err
			}
			if v > best {
				best = v
				bestValues = assignment.Filter(lt.frontals)
			}

			return nil
		}

		k := lt.frontals[depth]
		for i := 0; i < k.Card; i++ {
			assignment[k.ID] = i
			if err := walk(depth + 1); err != nil {
				return err
			}
		}
		delete(assignment, k.ID)

		return nil
	}

	if err := walk(0); err != nil {
		return nil, err
	}

	return bestValues, nil
}
