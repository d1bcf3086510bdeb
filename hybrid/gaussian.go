// Package hybrid: the Gaussian conditional.
// A Gaussian is a linear-Gaussian conditional P(x_F | x_P) in square-root
// form: error(x) = ½‖R·x_F + Σ_j A_j·x_Pj − d‖², with R upper-triangular
// and positive on the diagonal. It is the continuous-only inner kind of a
// hybrid Conditional and the leaf type of a Mixture.
package hybrid

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/factorgraph/core"
)

// Parent is one conditioning block of a Gaussian: the parent's key and its
// coefficient matrix A (rows = frontal dimension, cols = parent dimension).
type Parent struct {
	Key core.Key
	A   *mat.Dense
}

// Gaussian is an immutable linear-Gaussian conditional with one frontal
// continuous key and any number of continuous parents.
type Gaussian struct {
	frontal core.Key      // frontal continuous key
	r       *mat.TriDense // upper-triangular square-root block (n×n)
	d       *mat.VecDense // right-hand side (length n)
	parents []Parent      // conditioning blocks, in declaration order
}

// NewGaussian constructs the conditional P(frontal | parents...) with
// error(x) = ½‖R·x_F + Σ A_j·x_Pj − d‖².
//
// Errors (in order of checking):
//  1. ErrNilMatrix    if r, d, or any parent block is nil.
//  2. ErrBadDimension if d or a parent block disagrees with R's size.
//  3. ErrSingular     if R has a non-positive diagonal entry.
//
// Complexity: O(n + parents).
func NewGaussian(frontal core.Key, r *mat.TriDense, d *mat.VecDense, parents ...Parent) (*Gaussian, error) {
	// 1) All blocks must exist.
	if r == nil || d == nil {
		return nil, ErrNilMatrix
	}
	for _, p := range parents {
		if p.A == nil {
			return nil, ErrNilMatrix
		}
	}

	// 2) Shapes must agree with the frontal dimension n.
	n, _ := r.Triangle()
	if d.Len() != n {
		return nil, ErrBadDimension
	}
	for _, p := range parents {
		rows, _ := p.A.Dims()
		if rows != n {
			return nil, ErrBadDimension
		}
	}

	// 3) A valid square-root block has a strictly positive diagonal;
	//    anything else has no finite normalization constant.
	for i := 0; i < n; i++ {
		if r.At(i, i) <= 0 {
			return nil, ErrSingular
		}
	}

	return &Gaussian{frontal: frontal, r: r, d: d, parents: parents}, nil
}

// FrontalKey returns the frontal continuous key.
func (g *Gaussian) FrontalKey() core.Key { return g.frontal }

// Keys returns the conditional's continuous keys, frontal first.
func (g *Gaussian) Keys() []core.Key {
	keys := make([]core.Key, 0, 1+len(g.parents))
	keys = append(keys, g.frontal)
	for _, p := range g.parents {
		keys = append(keys, p.Key)
	}

	return keys
}

// NrFrontals returns 1: a Gaussian conditional has one frontal key.
func (g *Gaussian) NrFrontals() int { return 1 }

// Dim returns the frontal dimension n.
func (g *Gaussian) Dim() int {
	n, _ := g.r.Triangle()

	return n
}

// Error returns ½‖R·x_F + Σ A_j·x_Pj − d‖² at the given continuous values.
//
// Errors: ErrIncompleteValues if a key's vector is missing,
// ErrBadDimension if a vector has the wrong length.
// Complexity: O(n² + n·parent dims).
func (g *Gaussian) Error(values ContinuousValues) (float64, error) {
	n := g.Dim()

	// 1) Frontal contribution: e = R·x_F.
	x, ok := values[g.frontal]
	if !ok || x == nil {
		return 0, ErrIncompleteValues
	}
	if x.Len() != n {
		return 0, ErrBadDimension
	}
	e := mat.NewVecDense(n, nil)
	e.MulVec(g.r, x)

	// 2) Parent contributions: e += A_j·x_Pj.
	var contrib mat.VecDense
	for _, p := range g.parents {
		xp, okP := values[p.Key]
		if !okP || xp == nil {
			return 0, ErrIncompleteValues
		}
		_, cols := p.A.Dims()
		if xp.Len() != cols {
			return 0, ErrBadDimension
		}
		contrib.MulVec(p.A, xp)
		e.AddVec(e, &contrib)
	}

	// 3) Residual against the right-hand side.
	e.SubVec(e, g.d)

	return 0.5 * mat.Dot(e, e), nil
}

// NegLogConstant returns the negative log normalization constant:
//
//	½·n·log(2π) − Σ_i log R_ii
//
// (det Σ^{-1/2} = Π R_ii for the square-root form).
func (g *Gaussian) NegLogConstant() float64 {
	n := g.Dim()
	nlc := 0.5 * float64(n) * math.Log(2*math.Pi)
	for i := 0; i < n; i++ {
		nlc -= math.Log(g.r.At(i, i))
	}

	return nlc
}

// LogProbability returns log p(x_F | x_P) = −NegLogConstant − Error.
func (g *Gaussian) LogProbability(values ContinuousValues) (float64, error) {
	e, err := g.Error(values)
	if err != nil {
		return 0, err
	}

	return -g.NegLogConstant() - e, nil
}

// Evaluate returns exp(LogProbability) — the conditional density.
func (g *Gaussian) Evaluate(values ContinuousValues) (float64, error) {
	logP, err := g.LogProbability(values)
	if err != nil {
		return 0, err
	}

	return math.Exp(logP), nil
}

// Equals reports whether both conditionals share keys and agree on every
// block within tol (element-wise, via mat.EqualApprox).
func (g *Gaussian) Equals(other *Gaussian, tol float64) bool {
	if other == nil {
		return false
	}
	if g.frontal != other.frontal || len(g.parents) != len(other.parents) {
		return false
	}
	if !mat.EqualApprox(g.r, other.r, tol) || !mat.EqualApprox(g.d, other.d, tol) {
		return false
	}
	for i, p := range g.parents {
		if p.Key != other.parents[i].Key || !mat.EqualApprox(p.A, other.parents[i].A, tol) {
			return false
		}
	}

	return true
}
