// Package decision provides immutable, structurally shared decision trees —
// the compact representation behind every discrete factor and every hybrid
// mixture in this module.
//
// Overview:
//
//   - A Tree[L] maps each joint assignment of a finite set of discrete keys
//     to a leaf of type L. Internal nodes branch on one key; along any
//     root-to-leaf path key IDs appear in strictly increasing lexicographic
//     order (the canonical order), so two trees over overlapping key sets
//     can be aligned by a single synchronized descent.
//   - Trees are never mutated after construction. Choose, Combine, Apply and
//     Fold all return new trees that may share whole subtrees with their
//     inputs; because nothing ever writes to a node, shared subtrees are safe
//     to read from any number of goroutines without locking.
//   - A key may be absent from some paths of a tree (e.g. after Combine
//     collapsed equal branches): the tree is then constant in that key along
//     those paths. Choose on an absent key is the identity, and Fold accounts
//     for the key's full domain by folding the per-value slices, so
//     marginalization stays correct.
//
// Operations:
//
//   - NewLeaf / New           – build a constant tree, or a dense tree from a
//     flat leaf slice (last given key varies fastest).
//   - At(values)              – evaluate at one full assignment.
//   - Choose(key, index)      – fix one key to one value, dropping the key.
//   - Apply(f)                – transform every leaf, preserving structure.
//   - Combine(other, op)      – pointwise op over the union key set.
//   - Fold(key, op)           – eliminate one key by op-folding its values
//     (sum-out and max-out are Fold with + and max).
//   - Visit(fn)               – enumerate all assignments lexicographically.
//
// Complexity:
//
//	– At:      O(depth) = O(k) for k keys.
//	– Combine: O(|result|) nodes, bounded by the product domain size.
//	– Fold:    card-1 Combines of the per-value slices.
//
// Errors (sentinel):
//
//	– ErrLeafCountMismatch    if New receives len(leaves) != domain size.
//	– ErrIncompleteAssignment if At lacks a value for a key on the path.
//	– ErrIndexOutOfRange      if a value index is outside [0, Card).
//	– ErrKeyNotFound          if Choose/Fold name a key the tree never held.
//	– ErrCardinalityConflict  if two operands disagree on a key's Card.
//
// Example usage:
//
//	ab := core.DiscreteKeys{{ID: "A", Card: 2}, {ID: "B", Card: 2}}
//	t, _ := decision.New(ab, []float64{1, 2, 3, 4}) // A=0: (1,2); A=1: (3,4)
//	v, _ := t.At(core.Values{"A": 1, "B": 0})       // 3
//	s, _ := t.Fold(ab[1], func(a, b float64) float64 { return a + b })
//	_ = v
//	_ = s // tree over A alone: (3, 7)
package decision
