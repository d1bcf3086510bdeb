// Package discrete: elimination drivers.
// SumProduct, MaxProduct and Optimize walk a full elimination ordering over
// the graph, one frontal variable per step: the clique at each step is
// every remaining factor mentioning that variable (external junction-tree
// builders that group variables differently can call the elimination
// primitives directly). Each driver call is a pure function of the graph
// and ordering — no state survives between calls.
package discrete

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/core"
)

// SumProduct eliminates every variable of the graph under sum-product
// semantics, collecting the per-step conditionals into a BayesNet in
// elimination order. Together the conditionals factor the full joint
// (up to the graph's total mass).
//
// Errors: ErrInvalidOrdering, ErrUnknownOrderingType,
// ErrCardinalityMismatch, ErrEmptyClique.
// Complexity: bounded by the largest intermediate clique domain.
func (fg *FactorGraph) SumProduct(opts ...Option) (BayesNet, error) {
	r, err := fg.newRunner(opts)
	if err != nil {
		return nil, err
	}

	net := make(BayesNet, 0, len(r.ordering))
	for _, id := range r.ordering {
		clique, frontal, stepErr := r.takeClique(id)
		if stepErr != nil {
			return nil, stepErr
		}

		conditional, residual, elimErr := Eliminate(clique, core.DiscreteKeys{frontal})
		if elimErr != nil {
			return nil, elimErr
		}

		r.remaining = append(r.remaining, residual)
		net = append(net, conditional)
	}

	return net, nil
}

// MaxProduct performs the identical traversal under max-product semantics,
// producing a LookupDAG of unnormalized lookup tables in elimination order.
//
// Errors: as for SumProduct.
func (fg *FactorGraph) MaxProduct(opts ...Option) (LookupDAG, error) {
	r, err := fg.newRunner(opts)
	if err != nil {
		return nil, err
	}

	dag := make(LookupDAG, 0, len(r.ordering))
	for _, id := range r.ordering {
		clique, frontal, stepErr := r.takeClique(id)
		if stepErr != nil {
			return nil, stepErr
		}

		lookup, residual, elimErr := EliminateForMPE(clique, core.DiscreteKeys{frontal})
		if elimErr != nil {
			return nil, elimErr
		}

		r.remaining = append(r.remaining, residual)
		dag = append(dag, lookup)
	}

	return dag, nil
}

// Optimize finds the maximum probable explanation: it runs MaxProduct and
// decodes the resulting LookupDAG in a single reverse pass — no search, no
// backtracking, because each lookup table already encodes the locally
// optimal frontal choice for every possible parent assignment.
//
// Errors: as for MaxProduct, plus ErrIncompleteAssignment on a malformed
// DAG (cannot occur for DAGs produced by MaxProduct on a valid graph).
func (fg *FactorGraph) Optimize(opts ...Option) (core.Values, error) {
	dag, err := fg.MaxProduct(opts...)
	if err != nil {
		return nil, err
	}

	return dag.ArgMax()
}

// runner holds the per-call state of one driver execution: the resolved
// ordering, the graph's cardinality view, and the shrinking factor pool.
type runner struct {
	ordering  Ordering          // resolved, validated elimination ordering
	cards     map[core.Key]int  // universe key → cardinality
	remaining []*Factor         // factors not yet consumed by a clique
}

// newRunner resolves the options into a validated ordering and seeds the
// factor pool with the graph's factors (the pool is a fresh slice; the
// graph itself is never touched).
func (fg *FactorGraph) newRunner(opts []Option) (*runner, error) {
	// 1) Apply functional options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Resolve the ordering: explicit one validates as a permutation,
	//    otherwise compute from the ordering type.
	universe := fg.DiscreteKeys()
	ordering := cfg.Ordering
	if ordering != nil {
		if err := validatePermutation(ordering, universe); err != nil {
			return nil, err
		}
	} else {
		var err error
		ordering, err = ComputeOrdering(universe, cfg.OrderingType)
		if err != nil {
			return nil, err
		}
	}

	return &runner{
		ordering:  ordering,
		cards:     universe.CardinalityMap(),
		remaining: fg.Factors(),
	}, nil
}

// takeClique removes every remaining factor mentioning id from the pool and
// returns them together with id's frontal key. For a validated ordering the
// clique is never empty: each variable appears in some factor initially,
// and residuals keep every separator variable alive until its own step.
func (r *runner) takeClique(id core.Key) ([]*Factor, core.DiscreteKey, error) {
	var clique, rest []*Factor
	for _, f := range r.remaining {
		if f.DiscreteKeys().Contains(id) {
			clique = append(clique, f)
		} else {
			rest = append(rest, f)
		}
	}

	if len(clique) == 0 {
		return nil, core.DiscreteKey{}, fmt.Errorf("variable %q: %w", id, ErrEmptyClique)
	}

	r.remaining = rest

	return clique, core.DiscreteKey{ID: id, Card: r.cards[id]}, nil
}
