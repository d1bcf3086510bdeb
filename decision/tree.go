// Package decision: tree representation and construction.
// This file declares the node layout, the Tree type, the NewLeaf/New
// constructors, point evaluation (At), and branch fixing (Choose).
package decision

import (
	"github.com/katalvlaran/factorgraph/core"
)

// node is either a leaf (branches == nil) or a choice over key's domain.
// Nodes are immutable after construction; subtrees are shared by pointer.
type node[L any] struct {
	leaf     L                // payload when branches == nil
	key      core.DiscreteKey // branching key otherwise
	branches []*node[L]       // one child per value in [0, key.Card)
}

// isLeaf reports whether n carries a payload rather than a choice.
func (n *node[L]) isLeaf() bool { return n.branches == nil }

// Tree is an immutable decision tree over a finite set of discrete keys.
//
// keys holds the canonical (ID-sorted) key set the tree was built over; a
// key may be absent from individual paths when equal branches collapsed, in
// which case the tree is constant in that key along those paths.
//
// The zero Tree is not valid; always construct via NewLeaf, New, or an
// operation on an existing tree.
type Tree[L any] struct {
	root *node[L]
	keys core.DiscreteKeys // sorted by ID, ascending
}

// NewLeaf returns the constant tree holding v, defined over no keys.
// Complexity: O(1)
func NewLeaf[L any](v L) Tree[L] {
	return Tree[L]{root: &node[L]{leaf: v}}
}

// New builds a dense tree over keys from a flat leaf slice.
//
// leaves is indexed row-major in the GIVEN key order with the last key
// varying fastest: for keys (A card 2, B card 3), leaves[i*3+j] is the
// value at A=i, B=j. Internally the tree is stored in canonical (ID-sorted)
// order regardless of the order given.
//
// Errors (in order of checking):
//  1. core.ErrBadCardinality / core.ErrDuplicateKey via keys.Validate().
//  2. ErrLeafCountMismatch if len(leaves) != keys.DomainSize().
//
// Complexity: O(domain size)
func New[L any](keys core.DiscreteKeys, leaves []L) (Tree[L], error) {
	// 1) Validate the key set itself.
	if err := keys.Validate(); err != nil {
		return Tree[L]{}, err
	}

	// 2) The slice must cover the joint domain exactly.
	if len(leaves) != keys.DomainSize() {
		return Tree[L]{}, ErrLeafCountMismatch
	}

	// 3) Build in canonical order, translating each canonical assignment to
	//    its flat index under the caller's key order (last key fastest).
	sorted := keys.Sorted()
	vals := make(core.Values, len(sorted))

	var build func(depth int) *node[L]
	build = func(depth int) *node[L] {
		if depth == len(sorted) {
			// Flat index under the given order: fold left, last key fastest.
			idx := 0
			for _, k := range keys {
				idx = idx*k.Card + vals[k.ID]
			}

			return &node[L]{leaf: leaves[idx]}
		}

		k := sorted[depth]
		branches := make([]*node[L], k.Card)
		for i := 0; i < k.Card; i++ {
			vals[k.ID] = i
			branches[i] = build(depth + 1)
		}
		delete(vals, k.ID)

		return &node[L]{key: k, branches: branches}
	}

	return Tree[L]{root: build(0), keys: sorted}, nil
}

// Keys returns a copy of the tree's canonical key set (sorted by ID).
// Complexity: O(k)
func (t Tree[L]) Keys() core.DiscreteKeys {
	keys := make(core.DiscreteKeys, len(t.keys))
	copy(keys, t.keys)

	return keys
}

// At evaluates the tree at one assignment. Keys the tree is constant in may
// be omitted from values; every key actually branched on along the path must
// be present and in range.
//
// Errors: ErrIncompleteAssignment, ErrIndexOutOfRange.
// Complexity: O(depth)
func (t Tree[L]) At(values core.Values) (L, error) {
	var zero L
	n := t.root
	for !n.isLeaf() {
		v, ok := values[n.key.ID]
		if !ok {
			return zero, ErrIncompleteAssignment
		}
		if v < 0 || v >= n.key.Card {
			return zero, ErrIndexOutOfRange
		}
		n = n.branches[v]
	}

	return n.leaf, nil
}

// Choose fixes key id to the given value index, returning a tree that no
// longer mentions id. Subtrees untouched by the choice are shared, not
// copied. If id never actually branches along a path (the tree is constant
// in id there), that path is returned unchanged.
//
// Errors: ErrKeyNotFound if id is not in the tree's key set,
// ErrIndexOutOfRange if index is outside the key's domain.
// Complexity: O(nodes above and at id's level)
func (t Tree[L]) Choose(id core.Key, index int) (Tree[L], error) {
	pos := t.keys.Index(id)
	if pos < 0 {
		return Tree[L]{}, ErrKeyNotFound
	}
	if index < 0 || index >= t.keys[pos].Card {
		return Tree[L]{}, ErrIndexOutOfRange
	}

	remaining := make(core.DiscreteKeys, 0, len(t.keys)-1)
	remaining = append(remaining, t.keys[:pos]...)
	remaining = append(remaining, t.keys[pos+1:]...)

	return Tree[L]{root: chooseNode(t.root, id, index), keys: remaining}, nil
}

// chooseNode descends to nodes branching on id and replaces them with the
// selected child. Nodes below id's canonical position cannot mention id, so
// recursion stops as soon as the path key passes id in the canonical order.
func chooseNode[L any](n *node[L], id core.Key, index int) *node[L] {
	// Leaf, or a subtree whose keys are all past id: constant in id.
	if n.isLeaf() || n.key.ID > id {
		return n
	}

	// The branching key is id itself: pick the chosen child.
	if n.key.ID == id {
		return n.branches[index]
	}

	// Above id: rebuild this level, sharing children where unchanged.
	branches := make([]*node[L], len(n.branches))
	collapsed := true
	for i, child := range n.branches {
		branches[i] = chooseNode(child, id, index)
		if branches[i] != branches[0] {
			collapsed = false
		}
	}

	// All children became the same subtree: the choice made this level
	// irrelevant, so drop it (structural sharing keeps this cheap).
	if collapsed {
		return branches[0]
	}

	return &node[L]{key: n.key, branches: branches}
}
