// Package discrete: elimination primitives.
// Eliminate and EliminateForMPE consume one pre-selected clique of factors
// plus a frontal key set (chosen by an external elimination-tree builder or
// by the drivers in this package) and produce one conditional-like output
// plus one residual (separator) factor. Both are pure functions: inputs are
// never mutated and every output is freshly allocated.
package discrete

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/core"
)

// Eliminate removes the frontal variables from a clique of factors under
// sum-product semantics.
//
// Algorithm:
//  1. Form the pointwise product of every clique factor (decision-tree
//     multiplication aligned on shared keys).
//  2. Sum the product over the full domain of each frontal key to obtain
//     the residual factor over the separator keys.
//  3. Divide the product by the residual, broadcasting over parent
//     assignments, to obtain the normalized Conditional. A parent branch of
//     zero mass (residual exactly 0) is undefined under division; the
//     documented deterministic policy assigns the uniform distribution
//     1/|frontal domain| instead of propagating NaN.
//
// Errors (in order of checking):
//  1. ErrEmptyClique if the clique or the frontal set is empty, or a
//     frontal key is not among the clique's variables.
//  2. ErrNilFactor for a nil clique member.
//  3. ErrCardinalityMismatch if a key's domain size disagrees between
//     factors of the clique or with the frontal key set.
//
// Complexity: O(clique joint domain size).
func Eliminate(clique []*Factor, frontals core.DiscreteKeys) (*Conditional, *Factor, error) {
	product, sortedFrontals, separator, err := cliqueProduct(clique, frontals)
	if err != nil {
		return nil, nil, err
	}

	tree, residual, err := normalizeOverFrontals(product, sortedFrontals)
	if err != nil {
		return nil, nil, err
	}

	conditional := &Conditional{
		frontals: sortedFrontals,
		parents:  separator,
		tree:     tree,
	}

	return conditional, residual, nil
}

// EliminateForMPE removes the frontal variables from a clique under
// max-product semantics: the residual entry for every separator assignment
// is the UNNORMALIZED maximum over the frontal domain (what downstream
// cliques multiply against), and the returned LookupTable keeps the full
// unnormalized clique table so ArgMax can later decode the maximizing
// frontal combination. Tie-breaking during decoding is lexicographic
// first-max (see LookupTable.ArgMax).
//
// Errors: as for Eliminate.
// Complexity: O(clique joint domain size).
func EliminateForMPE(clique []*Factor, frontals core.DiscreteKeys) (*LookupTable, *Factor, error) {
	product, sortedFrontals, separator, err := cliqueProduct(clique, frontals)
	if err != nil {
		return nil, nil, err
	}

	residual, err := product.MaxOut(sortedFrontals...)
	if err != nil {
		return nil, nil, err
	}

	lookup := &LookupTable{
		frontals: sortedFrontals,
		parents:  separator,
		tree:     product.tree,
	}

	return lookup, residual, nil
}

// cliqueProduct validates a clique + frontal set and returns the clique
// product together with the sorted frontal keys and the separator keys.
func cliqueProduct(clique []*Factor, frontals core.DiscreteKeys) (*Factor, core.DiscreteKeys, core.DiscreteKeys, error) {
	// 1) A clique must hold at least one factor and one frontal key.
	if len(clique) == 0 || len(frontals) == 0 {
		return nil, nil, nil, ErrEmptyClique
	}

	// 2) The frontal set itself must be well-formed.
	if err := frontals.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("frontal keys: %w", err)
	}

	// 3) Pointwise product of the clique. Mul surfaces cross-factor
	//    cardinality disagreements as ErrCardinalityMismatch.
	product := clique[0]
	if product == nil {
		return nil, nil, nil, ErrNilFactor
	}
	var err error
	for _, f := range clique[1:] {
		if f == nil {
			return nil, nil, nil, ErrNilFactor
		}
		product, err = product.Mul(f)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	// 4) Frontals must be a subset of the clique's variables, with agreeing
	//    cardinalities.
	universe := product.DiscreteKeys()
	for _, fk := range frontals {
		pos := universe.Index(fk.ID)
		if pos < 0 {
			return nil, nil, nil, fmt.Errorf("frontal %q not in clique: %w", fk.ID, ErrEmptyClique)
		}
		if universe[pos].Card != fk.Card {
			return nil, nil, nil, fmt.Errorf("frontal %q: %w", fk.ID, ErrCardinalityMismatch)
		}
	}

	// 5) Separator = clique variables minus frontals, canonical order.
	separator := make(core.DiscreteKeys, 0, len(universe)-len(frontals))
	for _, k := range universe {
		if !frontals.Contains(k.ID) {
			separator = append(separator, k)
		}
	}

	return product, frontals.Sorted(), separator, nil
}
