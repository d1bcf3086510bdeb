// Package hybrid unifies three conditional kinds — continuous-only
// Gaussian, discrete-only, and discrete-indexed mixtures of Gaussians —
// behind one capability interface, and provides the Restrict specialization
// algorithm that resolves a mixture as its discrete parents become known.
//
// Overview:
//
//   - Gaussian is a linear-Gaussian conditional P(x_F | x_P) in square-root
//     form: error(x) = ½‖R·x_F + Σ A_j·x_Pj − d‖², R upper-triangular with
//     positive diagonal (gonum/mat blocks).
//   - Mixture selects one Gaussian per joint assignment of its discrete
//     parent keys, stored as an immutable decision tree with Gaussian
//     leaves. The continuous frontal key is fixed for the mixture's life.
//   - Conditional wraps exactly one inner kind (or none — the degenerate
//     empty state every query rejects). Capability accessors AsGaussian /
//     AsDiscrete / AsHybrid return the inner object or nil; callers branch
//     on these, never on a type tag.
//
// Restrict (case-analyzed specialization):
//
//   - Gaussian/discrete wrapped     → equivalent wrapper, unchanged.
//   - Mixture, all parents known    → the single component, Gaussian-wrapped.
//   - Mixture, some parents known   → component tree sliced per assigned
//     key, reduced mixture wrapped.
//   - Mixture, no parents known     → unchanged.
//
// Restrict never changes the continuous frontal key or NrFrontals, and
// never mutates its receiver: each call allocates a fresh wrapper around
// shared immutable inners.
//
// Errors (sentinel):
//
//	– ErrUnrecognizedKind     query/restrict on the empty wrapped state.
//	– ErrNilInner             wrapper constructor given a nil inner.
//	– ErrNilMatrix            Gaussian constructor given a nil block.
//	– ErrBadDimension         inconsistent block or value dimensions.
//	– ErrSingular             non-positive diagonal in R.
//	– ErrIncompleteValues     missing continuous value vector.
//	– ErrIncompleteAssignment missing discrete parent value.
//	– ErrComponentMismatch    inconsistent mixture components.
//
// Example usage:
//
//	r := mat.NewTriDense(1, mat.Upper, []float64{1})
//	g0, _ := hybrid.NewGaussian("x", r, mat.NewVecDense(1, []float64{0}))
//	g1, _ := hybrid.NewGaussian("x", r, mat.NewVecDense(1, []float64{5}))
//	mode := core.DiscreteKeys{{ID: "M", Card: 2}}
//	mix, _ := hybrid.NewMixture(mode, []*hybrid.Gaussian{g0, g1})
//	cond, _ := hybrid.NewFromMixture(mix)
//	resolved, _ := cond.Restrict(core.Values{"M": 1}) // Gaussian-only now
//	_ = resolved.AsGaussian()
package hybrid
