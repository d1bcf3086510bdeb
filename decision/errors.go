// Package decision: sentinel error set.
// All tree operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on caller-triggered error conditions;
// panics are reserved for programmer errors in private helpers.
package decision

import "errors"

var (
	// ErrLeafCountMismatch is returned by New when the flat leaf slice does
	// not cover the joint domain of the given keys exactly.
	ErrLeafCountMismatch = errors.New("decision: leaf count does not match joint domain size")

	// ErrIncompleteAssignment indicates At was called with an assignment that
	// lacks a value for a key encountered on the evaluation path.
	ErrIncompleteAssignment = errors.New("decision: assignment does not cover a tree key")

	// ErrIndexOutOfRange indicates a value index outside [0, Card) for the
	// key it is paired with.
	ErrIndexOutOfRange = errors.New("decision: value index out of range")

	// ErrKeyNotFound indicates Choose or Fold named a key that is not part of
	// the tree's key set.
	ErrKeyNotFound = errors.New("decision: key not found in tree")

	// ErrCardinalityConflict indicates two operands of Combine (or a Fold
	// argument) disagree on the cardinality of a shared key.
	ErrCardinalityConflict = errors.New("decision: cardinality conflict on shared key")
)
