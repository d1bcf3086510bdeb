// Package core: discrete assignments.
// This file declares Values — the key→value-index assignment map consumed by
// evaluation, elimination and restriction — together with its subset helpers.
package core

// Values assigns a discrete value index to each of a set of keys.
//
// A value for key k must lie in [0, Card(k)); callers that evaluate factors
// validate the range lazily. Values is a plain map: share freely, but treat
// instances handed to this module as read-only — every helper below returns
// a fresh map instead of mutating the receiver.
type Values map[Key]int

// Clone returns an independent copy of the assignment.
// Complexity: O(n)
func (v Values) Clone() Values {
	cloned := make(Values, len(v))
	for k, val := range v {
		cloned[k] = val
	}

	return cloned
}

// Filter returns the sub-assignment whose keys occur in keys.
// Used by hybrid.Restrict to extract the discrete-parent portion of a larger
// assignment. The receiver is not modified.
// Complexity: O(|keys|)
func (v Values) Filter(keys DiscreteKeys) Values {
	filtered := make(Values, len(keys))
	for _, k := range keys {
		if val, ok := v[k.ID]; ok {
			filtered[k.ID] = val
		}
	}

	return filtered
}

// Missing returns the keys of the collection that the assignment does not
// cover, preserving collection order.
// Complexity: O(|keys|)
func (v Values) Missing(keys DiscreteKeys) DiscreteKeys {
	var missing DiscreteKeys
	for _, k := range keys {
		if _, ok := v[k.ID]; !ok {
			missing = append(missing, k)
		}
	}

	return missing
}

// Merge returns a new assignment holding every entry of the receiver plus
// every entry of other; on key collision the entry of other wins.
// Complexity: O(n + m)
func (v Values) Merge(other Values) Values {
	merged := v.Clone()
	for k, val := range other {
		merged[k] = val
	}

	return merged
}

// Equal reports whether two assignments cover the same keys with the same
// values.
// Complexity: O(n)
func (v Values) Equal(other Values) bool {
	if len(v) != len(other) {
		return false
	}
	for k, val := range v {
		if o, ok := other[k]; !ok || o != val {
			return false
		}
	}

	return true
}
