// Package discrete: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// discrete package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on caller-triggered
// error conditions.
package discrete

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "discrete: ..." for consistency. Do not %w
// wrap these sentinels when returning directly; if context is essential,
// wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers
// still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/negative factor -> empty clique / frontal violations ->
// cardinality mismatch -> ordering violations -> assignment gaps.

var (
	// ErrNilFactor indicates a nil *Factor was passed where a factor is
	// required (Add, Eliminate clique members).
	ErrNilFactor = errors.New("discrete: factor is nil")

	// ErrNegativeValue indicates a factor table entry below zero; factors
	// are non-negative by definition.
	ErrNegativeValue = errors.New("discrete: factor value is negative")

	// ErrEmptyClique indicates an elimination call with no factors, an empty
	// frontal set, or a frontal key outside the clique's variable set.
	ErrEmptyClique = errors.New("discrete: empty or invalid elimination clique")

	// ErrCardinalityMismatch indicates a variable's domain size disagrees
	// between factors of one computation. The invariant is global but
	// checked lazily at the operation that first joins the disagreeing
	// factors.
	ErrCardinalityMismatch = errors.New("discrete: cardinality mismatch between factors")

	// ErrInvalidOrdering indicates the supplied ordering is not an exact
	// permutation of the factor graph's variable universe.
	ErrInvalidOrdering = errors.New("discrete: ordering is not a permutation of the graph keys")

	// ErrUnknownOrderingType indicates an OrderingType outside the declared
	// set was passed to ComputeOrdering.
	ErrUnknownOrderingType = errors.New("discrete: unknown ordering type")

	// ErrIncompleteAssignment indicates an evaluation or decode step lacked
	// a value for a required variable.
	ErrIncompleteAssignment = errors.New("discrete: assignment does not cover required keys")
)
