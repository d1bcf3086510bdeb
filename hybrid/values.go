// Package hybrid: mixed assignments.
// A hybrid assignment carries vector values for continuous keys alongside
// index values for discrete keys; dispatch hands each wrapped kind only the
// sub-part it understands.
package hybrid

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/factorgraph/core"
)

// ContinuousValues assigns a column vector to each continuous key.
// Instances handed to this package are read-only; nothing here mutates or
// retains the vectors beyond the call.
type ContinuousValues map[core.Key]*mat.VecDense

// Values is a mixed assignment over continuous and discrete variables.
type Values struct {
	// Continuous holds vector values for continuous keys.
	Continuous ContinuousValues

	// Discrete holds value indices for discrete keys.
	Discrete core.Values
}
