// Package decision: tree algebra.
// This file implements Apply (leaf transform), Combine (pointwise op over
// the union key set), Fold (single-key elimination), and Visit (ordered
// enumeration). All operations return fresh trees and never mutate inputs.
package decision

import (
	"github.com/katalvlaran/factorgraph/core"
)

// Apply returns a tree of identical structure whose every leaf is f(leaf).
// Shared subtrees of the input stay shared in the output (memoized rewrite).
// Complexity: O(distinct nodes)
func (t Tree[L]) Apply(f func(L) L) Tree[L] {
	memo := make(map[*node[L]]*node[L])

	var walk func(n *node[L]) *node[L]
	walk = func(n *node[L]) *node[L] {
		if out, ok := memo[n]; ok {
			return out
		}

		var out *node[L]
		if n.isLeaf() {
			out = &node[L]{leaf: f(n.leaf)}
		} else {
			branches := make([]*node[L], len(n.branches))
			for i, child := range n.branches {
				branches[i] = walk(child)
			}
			out = &node[L]{key: n.key, branches: branches}
		}
		memo[n] = out

		return out
	}

	return Tree[L]{root: walk(t.root), keys: t.Keys()}
}

// Combine applies op pointwise over the union of both trees' key sets,
// aligning shared keys by a synchronized canonical-order descent. op is not
// assumed commutative: receiver leaves are always the first argument (so
// division and subtraction behave as expected).
//
// Errors: ErrCardinalityConflict if the operands disagree on the cardinality
// of a shared key.
// Complexity: O(product of the union domain) worst case; far less when the
// operands share structure.
func (t Tree[L]) Combine(other Tree[L], op func(L, L) L) (Tree[L], error) {
	// 1) Shared keys must agree on cardinality before any descent.
	cards := t.keys.CardinalityMap()
	for _, k := range other.keys {
		if c, shared := cards[k.ID]; shared && c != k.Card {
			return Tree[L]{}, ErrCardinalityConflict
		}
	}

	// 2) Synchronized descent over both trees.
	return Tree[L]{
		root: combineNodes(t.root, other.root, op),
		keys: t.keys.Union(other.keys).Sorted(),
	}, nil
}

// combineNodes merges two canonical-order subtrees. Whichever side branches
// on the earlier key drives the descent; a side that is a leaf (or branches
// on a later key) is broadcast across the other side's branches.
func combineNodes[L any](a, b *node[L], op func(L, L) L) *node[L] {
	// Both constants: apply op.
	if a.isLeaf() && b.isLeaf() {
		return &node[L]{leaf: op(a.leaf, b.leaf)}
	}

	// Decide which key branches first in canonical order.
	switch {
	case a.isLeaf() || (!b.isLeaf() && b.key.ID < a.key.ID):
		// b branches first: broadcast a across b's children.
		branches := make([]*node[L], len(b.branches))
		for i, child := range b.branches {
			branches[i] = combineNodes(a, child, op)
		}

		return &node[L]{key: b.key, branches: branches}

	case b.isLeaf() || a.key.ID < b.key.ID:
		// a branches first: broadcast b across a's children.
		branches := make([]*node[L], len(a.branches))
		for i, child := range a.branches {
			branches[i] = combineNodes(child, b, op)
		}

		return &node[L]{key: a.key, branches: branches}

	default:
		// Same key on both sides: descend pairwise.
		branches := make([]*node[L], len(a.branches))
		for i := range a.branches {
			branches[i] = combineNodes(a.branches[i], b.branches[i], op)
		}

		return &node[L]{key: a.key, branches: branches}
	}
}

// Fold eliminates key from the tree by op-folding the card slices obtained
// from fixing key to each of its values in ascending order:
//
//	result = op(...op(op(t|key=0, t|key=1), t|key=2)..., t|key=Card-1)
//
// Sum- and max-marginalization are Fold with addition and math.Max. Paths
// constant in key contribute their value Card times, which is exactly the
// marginalization semantics for a factor that does not depend on key.
//
// Errors: ErrKeyNotFound if key.ID is not in the tree's key set,
// ErrCardinalityConflict if key.Card disagrees with the tree's record.
// Complexity: Card-1 Combines over the sliced trees.
func (t Tree[L]) Fold(key core.DiscreteKey, op func(L, L) L) (Tree[L], error) {
	pos := t.keys.Index(key.ID)
	if pos < 0 {
		return Tree[L]{}, ErrKeyNotFound
	}
	if t.keys[pos].Card != key.Card {
		return Tree[L]{}, ErrCardinalityConflict
	}

	// Slice 0 seeds the accumulator; slices 1..Card-1 fold in ascending
	// order (the deterministic traversal order documented for tie-breaks).
	acc, err := t.Choose(key.ID, 0)
	if err != nil {
		return Tree[L]{}, err
	}
	for i := 1; i < key.Card; i++ {
		slice, chooseErr := t.Choose(key.ID, i)
		if chooseErr != nil {
			return Tree[L]{}, chooseErr
		}
		acc, err = acc.Combine(slice, op)
		if err != nil {
			return Tree[L]{}, err
		}
	}

	return acc, nil
}

// Visit calls fn for every joint assignment of the tree's key set, in
// lexicographic order (keys ascending by ID, value indices ascending, last
// key fastest). The assignment passed to fn is a fresh copy each call.
// Complexity: O(domain size · depth)
func (t Tree[L]) Visit(fn func(values core.Values, leaf L)) {
	vals := make(core.Values, len(t.keys))

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(t.keys) {
			leaf, _ := t.At(vals) // complete by construction
			fn(vals.Clone(), leaf)

			return
		}

		k := t.keys[depth]
		for i := 0; i < k.Card; i++ {
			vals[k.ID] = i
			walk(depth + 1)
		}
		delete(vals, k.ID)
	}

	walk(0)
}
