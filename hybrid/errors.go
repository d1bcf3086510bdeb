// Package hybrid: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on caller-triggered error conditions.
package hybrid

import "errors"

var (
	// ErrUnrecognizedKind indicates a dispatch on a Conditional wrapping
	// none of the three known kinds (the degenerate empty state).
	ErrUnrecognizedKind = errors.New("hybrid: conditional kind not handled")

	// ErrNilInner indicates a wrapper constructor received a nil inner
	// conditional.
	ErrNilInner = errors.New("hybrid: inner conditional is nil")

	// ErrNilMatrix indicates a Gaussian constructor received a nil matrix or
	// vector block.
	ErrNilMatrix = errors.New("hybrid: nil matrix block")

	// ErrBadDimension indicates inconsistent block dimensions in a Gaussian
	// (R not square, d length mismatch, parent block row mismatch) or a
	// continuous value of the wrong length.
	ErrBadDimension = errors.New("hybrid: dimension mismatch")

	// ErrSingular indicates a square-root block R with a non-positive
	// diagonal entry — the conditional would have no finite normalization
	// constant.
	ErrSingular = errors.New("hybrid: non-positive diagonal in R")

	// ErrIncompleteValues indicates an evaluation lacked the value vector of
	// a continuous key.
	ErrIncompleteValues = errors.New("hybrid: missing continuous value")

	// ErrIncompleteAssignment indicates a mixture lookup lacked the value of
	// a discrete parent.
	ErrIncompleteAssignment = errors.New("hybrid: assignment does not cover discrete parents")

	// ErrComponentMismatch indicates mixture components that disagree on the
	// continuous frontal key or its dimension, or a component count that
	// does not match the parent domain.
	ErrComponentMismatch = errors.New("hybrid: inconsistent mixture components")
)
