// Package discrete: elimination orderings.
// An Ordering lists each variable of a graph's universe exactly once; the
// drivers walk it front to back, eliminating one frontal variable per step.
// Computing GOOD orderings (minimum-degree, fill heuristics) belongs to an
// external ordering service — this file provides only the NATURAL ordering
// and permutation validation.
package discrete

import (
	"sort"

	"github.com/katalvlaran/factorgraph/core"
)

// Ordering is a sequence of variable keys to eliminate, front to back.
type Ordering []core.Key

// OrderingType selects a built-in ordering policy.
type OrderingType int

const (
	// OrderingNatural orders keys ascending lexicographically by ID — a
	// deterministic permutation requiring no dependency analysis.
	OrderingNatural OrderingType = iota
)

// ComputeOrdering returns a permutation of keys under the given policy.
//
// Errors: ErrUnknownOrderingType for a policy outside the declared set.
// Complexity: O(n log n)
func ComputeOrdering(keys core.DiscreteKeys, orderingType OrderingType) (Ordering, error) {
	switch orderingType {
	case OrderingNatural:
		ids := keys.IDs()
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		return Ordering(ids), nil
	default:
		return nil, ErrUnknownOrderingType
	}
}

// validatePermutation checks that ordering contains every key of universe
// exactly once and nothing else.
func validatePermutation(ordering Ordering, universe core.DiscreteKeys) error {
	if len(ordering) != len(universe) {
		return ErrInvalidOrdering
	}

	seen := make(map[core.Key]struct{}, len(ordering))
	for _, id := range ordering {
		if !universe.Contains(id) {
			return ErrInvalidOrdering
		}
		if _, dup := seen[id]; dup {
			return ErrInvalidOrdering
		}
		seen[id] = struct{}{}
	}

	return nil
}
