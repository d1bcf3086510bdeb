// Package discrete implements exact inference on discrete factor graphs by
// variable elimination: sum-product (posterior Bayes nets) and max-product
// (lookup DAGs with one-pass MPE decoding).
//
// Overview:
//
//   - A Factor maps every joint assignment of its keys to a value >= 0,
//     stored as an immutable, structurally shared decision tree.
//   - A FactorGraph is an ordered sequence of factors. It supports the
//     whole-graph Product, an underflow-safe ScaledProduct (with a
//     recoverable scale), direct point Evaluation, and the elimination
//     drivers.
//   - Eliminate / EliminateForMPE are the elimination primitives: one
//     clique of factors plus one frontal key set in, one conditional (or
//     lookup table) plus one residual separator factor out. External
//     junction-tree builders may call them directly with their own cliques.
//   - SumProduct walks an ordering one variable at a time and collects the
//     per-step conditionals into a BayesNet; MaxProduct collects
//     unnormalized LookupTables into a LookupDAG; Optimize decodes the DAG
//     in a single reverse pass into the maximum probable explanation.
//
// Determinism guarantees (documented policies, covered by tests):
//
//   - Zero-mass parent branches during normalization become the uniform
//     distribution over the frontal domain — never NaN.
//   - MPE tie-breaks select the lexicographically first maximizing frontal
//     assignment (keys ascending by ID, value indices ascending).
//   - The NATURAL ordering is the key IDs sorted ascending.
//
// Purity and concurrency:
//
//   - Every operation is synchronous and side-effect-free on its inputs:
//     factors, graphs and orderings are never mutated; outputs are freshly
//     allocated and immutable. Shared decision trees are read-only, so
//     concurrent readers need no locking.
//
// Errors (sentinel):
//
//	– ErrNilFactor            nil factor where one is required.
//	– ErrNegativeValue        factor entry below zero.
//	– ErrEmptyClique          empty clique / empty or non-subset frontal set.
//	– ErrCardinalityMismatch  a variable's domain size disagrees between factors.
//	– ErrInvalidOrdering      ordering is not a permutation of the universe.
//	– ErrUnknownOrderingType  ordering policy outside the declared set.
//	– ErrIncompleteAssignment evaluation or decode lacked a required value.
//
// Example usage:
//
//	a := core.DiscreteKey{ID: "A", Card: 2}
//	b := core.DiscreteKey{ID: "B", Card: 2}
//	phi, _ := discrete.NewFactor(core.DiscreteKeys{a, b}, []float64{1, 2, 3, 4})
//	fg, _ := discrete.NewFactorGraph(phi)
//	net, _ := fg.SumProduct()                                  // natural ordering
//	mpe, _ := fg.Optimize(discrete.WithOrdering(discrete.Ordering{"B", "A"}))
//	_ = net
//	_ = mpe
package discrete
