// Package core: central key types and sentinel errors.
// This file declares Key, DiscreteKey, DiscreteKeys, the NewDiscreteKey
// constructor, and the sentinel errors shared by key-level operations.
package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core key operations.
var (
	// ErrBadCardinality indicates a DiscreteKey with a domain size below 1.
	ErrBadCardinality = errors.New("core: cardinality must be >= 1")

	// ErrDuplicateKey indicates a key ID occurred twice in a context that
	// requires each variable to appear exactly once.
	ErrDuplicateKey = errors.New("core: duplicate key")
)

// Key is an opaque identifier for a variable.
//
// Keys are compared by value; the canonical order used by decision trees and
// the NATURAL elimination ordering is plain lexicographic order on the ID.
type Key string

// DiscreteKey pairs a variable key with the size of its finite domain.
//
// Card is the number of admissible values; assignments for this key are
// indices in [0, Card). A key's cardinality must agree everywhere the key
// appears within one computation.
type DiscreteKey struct {
	// ID is the variable's identifier.
	ID Key

	// Card is the domain size (>= 1).
	Card int
}

// NewDiscreteKey constructs a DiscreteKey, returning ErrBadCardinality when
// card < 1. Use this in code paths that receive cardinalities from callers;
// composite-literal construction remains fine for compile-time constants.
func NewDiscreteKey(id Key, card int) (DiscreteKey, error) {
	if card < 1 {
		return DiscreteKey{}, ErrBadCardinality
	}

	return DiscreteKey{ID: id, Card: card}, nil
}

// DiscreteKeys is an ordered collection of DiscreteKey.
//
// Order is meaningful (frontals precede parents in conditionals), so helpers
// never re-sort the receiver; Sorted returns a fresh sorted copy instead.
type DiscreteKeys []DiscreteKey

// IDs returns the key identifiers in collection order.
// Complexity: O(n)
func (dk DiscreteKeys) IDs() []Key {
	ids := make([]Key, len(dk))
	for i, k := range dk {
		ids[i] = k.ID
	}

	return ids
}

// Contains reports whether id occurs in the collection.
// Complexity: O(n)
func (dk DiscreteKeys) Contains(id Key) bool {
	return dk.Index(id) >= 0
}

// Index returns the position of id in the collection, or -1 if absent.
// Complexity: O(n)
func (dk DiscreteKeys) Index(id Key) int {
	for i, k := range dk {
		if k.ID == id {
			return i
		}
	}

	return -1
}

// Union merges two collections, preserving receiver order and appending keys
// of other that are not yet present (first occurrence wins; cardinality
// conflicts are NOT detected here — consumers validate lazily).
// Complexity: O(n·m) on small key sets, which is the expected regime.
func (dk DiscreteKeys) Union(other DiscreteKeys) DiscreteKeys {
	merged := make(DiscreteKeys, len(dk), len(dk)+len(other))
	copy(merged, dk)
	for _, k := range other {
		if !merged.Contains(k.ID) {
			merged = append(merged, k)
		}
	}

	return merged
}

// Sorted returns a fresh copy ordered lexicographically by key ID.
// The receiver is never modified.
// Complexity: O(n log n)
func (dk DiscreteKeys) Sorted() DiscreteKeys {
	sorted := make(DiscreteKeys, len(dk))
	copy(sorted, dk)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return sorted
}

// CardinalityMap returns an explicit key→cardinality view of the collection.
// Later duplicates are ignored (first occurrence wins), mirroring Union.
// Complexity: O(n)
func (dk DiscreteKeys) CardinalityMap() map[Key]int {
	cards := make(map[Key]int, len(dk))
	for _, k := range dk {
		if _, seen := cards[k.ID]; !seen {
			cards[k.ID] = k.Card
		}
	}

	return cards
}

// DomainSize returns the product of all cardinalities — the number of joint
// assignments over the collection. An empty collection has domain size 1.
// Complexity: O(n)
func (dk DiscreteKeys) DomainSize() int {
	size := 1
	for _, k := range dk {
		size *= k.Card
	}

	return size
}

// Validate checks every cardinality and the uniqueness of IDs, returning
// ErrBadCardinality or ErrDuplicateKey on the first violation.
// Complexity: O(n)
func (dk DiscreteKeys) Validate() error {
	seen := make(map[Key]struct{}, len(dk))
	for _, k := range dk {
		if k.Card < 1 {
			return ErrBadCardinality
		}
		if _, dup := seen[k.ID]; dup {
			return ErrDuplicateKey
		}
		seen[k.ID] = struct{}{}
	}

	return nil
}
