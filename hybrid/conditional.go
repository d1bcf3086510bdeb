// Package hybrid: the polymorphic conditional wrapper.
// A Conditional wraps exactly one of three inner kinds — continuous-only
// Gaussian, discrete-only conditional, or discrete-indexed Mixture — fixed
// for its lifetime, behind one capability interface. Callers ask what it is
// via AsGaussian/AsDiscrete/AsHybrid and act on the answer; they never
// branch on a type tag directly.
package hybrid

import (
	"math"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/discrete"
)

// Conditional is a closed tagged wrapper over the three conditional kinds.
// The zero value is the degenerate empty state: every query operation on it
// fails with ErrUnrecognizedKind. Conditionals are immutable; Restrict only
// ever yields new ones.
type Conditional struct {
	gaussian *Gaussian
	discrete *discrete.Conditional
	mixture  *Mixture
}

// NewFromGaussian wraps a continuous-only Gaussian conditional.
//
// Errors: ErrNilInner.
func NewFromGaussian(g *Gaussian) (*Conditional, error) {
	if g == nil {
		return nil, ErrNilInner
	}

	return &Conditional{gaussian: g}, nil
}

// NewFromDiscrete wraps a discrete-only conditional.
//
// Errors: ErrNilInner.
func NewFromDiscrete(c *discrete.Conditional) (*Conditional, error) {
	if c == nil {
		return nil, ErrNilInner
	}

	return &Conditional{discrete: c}, nil
}

// NewFromMixture wraps a discrete-indexed mixture of Gaussians.
//
// Errors: ErrNilInner.
func NewFromMixture(m *Mixture) (*Conditional, error) {
	if m == nil {
		return nil, ErrNilInner
	}

	return &Conditional{mixture: m}, nil
}

// AsGaussian returns the inner Gaussian, or nil if the wrapped kind is not
// continuous-only.
func (c *Conditional) AsGaussian() *Gaussian { return c.gaussian }

// AsDiscrete returns the inner discrete conditional, or nil if the wrapped
// kind is not discrete-only.
func (c *Conditional) AsDiscrete() *discrete.Conditional { return c.discrete }

// AsHybrid returns the inner mixture, or nil if the wrapped kind is not a
// hybrid mixture.
func (c *Conditional) AsHybrid() *Mixture { return c.mixture }

// ContinuousKeys returns the ordered continuous keys of the wrapped kind
// (empty for a discrete-only conditional).
func (c *Conditional) ContinuousKeys() []core.Key {
	switch {
	case c.gaussian != nil:
		return c.gaussian.Keys()
	case c.mixture != nil:
		return []core.Key{c.mixture.FrontalKey()}
	default:
		return nil
	}
}

// DiscreteKeys returns the ordered discrete keys of the wrapped kind (empty
// for a continuous-only Gaussian).
func (c *Conditional) DiscreteKeys() core.DiscreteKeys {
	switch {
	case c.discrete != nil:
		return c.discrete.DiscreteKeys()
	case c.mixture != nil:
		return c.mixture.Parents()
	default:
		return nil
	}
}

// NrFrontals returns how many of the leading keys (continuous first, then
// discrete) are frontal rather than parents.
func (c *Conditional) NrFrontals() int {
	switch {
	case c.gaussian != nil:
		return c.gaussian.NrFrontals()
	case c.discrete != nil:
		return c.discrete.NrFrontals()
	case c.mixture != nil:
		return c.mixture.NrFrontals()
	default:
		return 0
	}
}

// Error dispatches to the wrapped kind, passing only the relevant sub-part
// of the assignment (continuous for Gaussian, discrete for discrete, both
// for a mixture).
//
// Errors: ErrUnrecognizedKind on the empty state, plus the inner kind's own
// errors.
func (c *Conditional) Error(values Values) (float64, error) {
	switch {
	case c.gaussian != nil:
		return c.gaussian.Error(values.Continuous)
	case c.mixture != nil:
		return c.mixture.Error(values)
	case c.discrete != nil:
		return c.discrete.Error(values.Discrete)
	default:
		return 0, ErrUnrecognizedKind
	}
}

// LogProbability dispatches the log density / log probability query.
//
// Errors: as for Error.
func (c *Conditional) LogProbability(values Values) (float64, error) {
	switch {
	case c.gaussian != nil:
		return c.gaussian.LogProbability(values.Continuous)
	case c.mixture != nil:
		return c.mixture.LogProbability(values)
	case c.discrete != nil:
		return c.discrete.LogProbability(values.Discrete)
	default:
		return 0, ErrUnrecognizedKind
	}
}

// NegLogConstant dispatches the normalization-constant query. A discrete
// conditional is already a normalized probability table, so its constant
// is 0.
//
// Errors: ErrUnrecognizedKind on the empty state.
func (c *Conditional) NegLogConstant() (float64, error) {
	switch {
	case c.gaussian != nil:
		return c.gaussian.NegLogConstant(), nil
	case c.mixture != nil:
		return c.mixture.NegLogConstant(), nil
	case c.discrete != nil:
		return c.discrete.NegLogConstant(), nil
	default:
		return 0, ErrUnrecognizedKind
	}
}

// Evaluate returns exp(LogProbability).
//
// Errors: as for LogProbability.
func (c *Conditional) Evaluate(values Values) (float64, error) {
	logP, err := c.LogProbability(values)
	if err != nil {
		return 0, err
	}

	return math.Exp(logP), nil
}

// Restrict specializes the conditional by substituting known values for
// some or all of its discrete parents. It never changes the continuous
// frontal key or NrFrontals; only the discrete-parent set can shrink.
//
// Case analysis:
//  1. Gaussian or discrete wrapped: nothing to resolve — an equivalent
//     wrapper is returned unchanged.
//  2. Mixture, parents fully determined: the single component at that
//     parent combination is returned wrapped as a Gaussian-only
//     conditional.
//  3. Mixture, parents partially determined: the component tree is sliced
//     per assigned key; the reduced mixture — indexed only by the
//     still-unassigned parents — is returned wrapped.
//  4. Mixture, no parent assigned: the conditional is returned unchanged.
//
// Errors: ErrUnrecognizedKind on the empty state,
// decision.ErrIndexOutOfRange for an assignment value outside a parent's
// domain.
func (c *Conditional) Restrict(assignment core.Values) (*Conditional, error) {
	// Case 1: no discrete-parent mixture to resolve.
	if c.gaussian != nil {
		return NewFromGaussian(c.gaussian)
	}
	if c.discrete != nil {
		return NewFromDiscrete(c.discrete)
	}
	if c.mixture == nil {
		return nil, ErrUnrecognizedKind
	}

	parents := c.mixture.Parents()
	parentValues := assignment.Filter(parents)

	// Case 2: fully determined — resolve to the single component.
	if len(parentValues) == len(parents) {
		g, err := c.mixture.Choose(parentValues)
		if err != nil {
			return nil, err
		}

		return NewFromGaussian(g)
	}

	// Case 3: partially determined — slice away the assigned parents.
	if len(parentValues) > 0 {
		reduced, err := c.mixture.Restrict(parentValues)
		if err != nil {
			return nil, err
		}

		return NewFromMixture(reduced)
	}

	// Case 4: nothing assigned — unchanged.
	return NewFromMixture(c.mixture)
}

// Equals structurally compares the wrapped kinds (they must match) and then
// delegates to the matching inner kind's tolerance-based equality. Two
// empty conditionals are equal; mismatched kinds never are.
func (c *Conditional) Equals(other *Conditional, tol float64) bool {
	if other == nil {
		return false
	}
	switch {
	case c.gaussian != nil:
		return other.gaussian != nil && c.gaussian.Equals(other.gaussian, tol)
	case c.discrete != nil:
		return other.discrete != nil && c.discrete.Equals(other.discrete, tol)
	case c.mixture != nil:
		return other.mixture != nil && c.mixture.Equals(other.mixture, tol)
	default:
		return other.gaussian == nil && other.discrete == nil && other.mixture == nil
	}
}
