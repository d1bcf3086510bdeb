// Package core defines the variable-key universe shared by every inference
// package: opaque keys, discrete keys with finite cardinalities, and
// assignment values.
//
// Overview:
//
//   - Key is an opaque identifier for a variable. Discrete variables carry a
//     cardinality (finite domain size ≥ 1) via DiscreteKey; a variable's
//     cardinality must be identical everywhere its key appears across all
//     factors and conditionals of a computation. The invariant is global but
//     checked lazily at the point of use (see discrete.ErrCardinalityMismatch).
//   - DiscreteKeys is an ordered set of DiscreteKey with set-style helpers
//     (Contains, Index, Union, CardinalityMap). Order is significant: frontal
//     keys precede parent keys in conditionals, and the canonical tree order
//     is derived from key IDs.
//   - Values maps keys to discrete value indices in [0, Card). It is the
//     assignment type consumed by evaluation, elimination and restriction.
//
// Design:
//
//   - All types here are plain values (strings, small structs, maps). Callers
//     may share them freely; no operation in this module ever mutates a
//     Values or DiscreteKeys it receives — helpers that "change" something
//     return a fresh copy.
//   - No ambient registries: cardinalities travel with the keys themselves,
//     so every operation receives an explicit, immutable key→cardinality
//     view rather than consulting global state.
//
// Errors (sentinel):
//
//	– ErrBadCardinality if a DiscreteKey is constructed with Card < 1.
//	– ErrDuplicateKey   if a key ID occurs twice where uniqueness is required.
//
// Example usage:
//
//	a := core.NewDiscreteKey("A", 2)
//	b := core.NewDiscreteKey("B", 3)
//	keys := core.DiscreteKeys{a, b}
//	assignment := core.Values{"A": 1, "B": 2}
//	_ = keys.CardinalityMap()["B"] // 3
//	_ = assignment.Filter(keys)    // both entries survive
package core
