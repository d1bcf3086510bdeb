// Package hybrid: the discrete-indexed mixture of Gaussian conditionals.
// A Mixture selects one Gaussian conditional per joint assignment of its
// discrete parent keys, stored as an immutable decision tree with Gaussian
// leaves. Restrict slices the tree as parents become known; the continuous
// frontal key is never touched.
package hybrid

import (
	"errors"
	"math"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/decision"
)

// Mixture is a conditional P(x | D1..Dk) whose Gaussian component is chosen
// by the values of its discrete parent keys.
type Mixture struct {
	frontal core.Key                 // continuous frontal key, fixed for life
	parents core.DiscreteKeys        // discrete parents, sorted by ID
	tree    decision.Tree[*Gaussian] // one component per parent combination
}

// NewMixture builds a mixture from one Gaussian component per joint parent
// assignment. components is indexed row-major in the GIVEN parent order
// with the last key varying fastest (see decision.New).
//
// Errors (in order of checking):
//  1. core.ErrBadCardinality / core.ErrDuplicateKey on a bad parent set.
//  2. ErrComponentMismatch if the component count does not cover the parent
//     domain, a component is nil, or components disagree on the frontal key
//     or its dimension.
//
// Complexity: O(parent domain size).
func NewMixture(parents core.DiscreteKeys, components []*Gaussian) (*Mixture, error) {
	if err := parents.Validate(); err != nil {
		return nil, err
	}
	if len(components) != parents.DomainSize() || len(components) == 0 {
		return nil, ErrComponentMismatch
	}

	// Components must agree on the frontal key and dimension: Restrict may
	// surface any one of them as the resolved Gaussian.
	first := components[0]
	for _, c := range components {
		if c == nil {
			return nil, ErrComponentMismatch
		}
		if c.FrontalKey() != first.FrontalKey() || c.Dim() != first.Dim() {
			return nil, ErrComponentMismatch
		}
	}

	tree, err := decision.New(parents, components)
	if err != nil {
		return nil, err
	}

	return &Mixture{frontal: first.FrontalKey(), parents: parents.Sorted(), tree: tree}, nil
}

// fromTree wraps an already-sliced component tree. Internal: Restrict
// guarantees the invariants established by NewMixture.
func mixtureFromTree(frontal core.Key, parents core.DiscreteKeys, tree decision.Tree[*Gaussian]) *Mixture {
	return &Mixture{frontal: frontal, parents: parents, tree: tree}
}

// FrontalKey returns the continuous frontal key.
func (m *Mixture) FrontalKey() core.Key { return m.frontal }

// Parents returns a copy of the discrete parent keys (sorted by ID).
func (m *Mixture) Parents() core.DiscreteKeys {
	keys := make(core.DiscreteKeys, len(m.parents))
	copy(keys, m.parents)

	return keys
}

// NrFrontals returns 1: the continuous frontal key.
func (m *Mixture) NrFrontals() int { return 1 }

// Choose returns the single Gaussian component at a fully determined parent
// assignment.
//
// Errors: ErrIncompleteAssignment if a parent key is unassigned,
// decision.ErrIndexOutOfRange for a value outside a parent's domain.
func (m *Mixture) Choose(assignment core.Values) (*Gaussian, error) {
	g, err := m.tree.At(assignment)
	if errors.Is(err, decision.ErrIncompleteAssignment) {
		return nil, ErrIncompleteAssignment
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Restrict slices the component tree by fixing every assigned parent key to
// its given value, returning a mixture indexed only by the still-unassigned
// parents. Keys in the assignment that are not parents of this mixture are
// ignored. The receiver is never modified.
//
// Errors: decision.ErrIndexOutOfRange for a value outside a parent domain.
// Complexity: O(tree nodes) per assigned key.
func (m *Mixture) Restrict(assignment core.Values) (*Mixture, error) {
	parentValues := assignment.Filter(m.parents)

	tree := m.tree
	remaining := make(core.DiscreteKeys, 0, len(m.parents))
	var err error
	for _, k := range m.parents {
		v, assigned := parentValues[k.ID]
		if !assigned {
			remaining = append(remaining, k)

			continue
		}
		tree, err = tree.Choose(k.ID, v)
		if err != nil {
			return nil, err
		}
	}

	return mixtureFromTree(m.frontal, remaining, tree), nil
}

// Error returns the error of the component selected by the discrete part,
// evaluated at the continuous part.
//
// Errors: ErrIncompleteAssignment, ErrIncompleteValues, ErrBadDimension.
func (m *Mixture) Error(values Values) (float64, error) {
	g, err := m.Choose(values.Discrete)
	if err != nil {
		return 0, err
	}

	return g.Error(values.Continuous)
}

// LogProbability returns the selected component's log density.
func (m *Mixture) LogProbability(values Values) (float64, error) {
	g, err := m.Choose(values.Discrete)
	if err != nil {
		return 0, err
	}

	return g.LogProbability(values.Continuous)
}

// NegLogConstant returns the minimum negative log constant over all
// components, so that every per-component negLogConstant − NegLogConstant
// is non-negative.
func (m *Mixture) NegLogConstant() float64 {
	nlc := math.Inf(1)
	m.tree.Visit(func(_ core.Values, g *Gaussian) {
		if c := g.NegLogConstant(); c < nlc {
			nlc = c
		}
	})

	return nlc
}

// Equals reports whether both mixtures share the frontal key and parent
// structure and hold pairwise equal components within tol.
func (m *Mixture) Equals(other *Mixture, tol float64) bool {
	if other == nil || m.frontal != other.frontal {
		return false
	}
	if len(m.parents) != len(other.parents) {
		return false
	}
	for i, k := range m.parents {
		if other.parents[i] != k {
			return false
		}
	}

	equal := true
	m.tree.Visit(func(values core.Values, g *Gaussian) {
		o, err := other.tree.At(values)
		if err != nil || !g.Equals(o, tol) {
			equal = false
		}
	})

	return equal
}
