// Package discrete: the Factor type.
// A Factor maps every joint assignment of its discrete keys to a value >= 0,
// stored as an immutable, structurally shared decision tree. Factors are
// produced once and never mutated; every operation returns a fresh Factor.
package discrete

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/decision"
)

// Factor is a non-negative function of a finite set of discrete variables,
// representing unnormalized belief over its keys.
type Factor struct {
	keys core.DiscreteKeys      // canonical (ID-sorted) key set
	tree decision.Tree[float64] // potential table
}

// NewFactor builds a factor from a dense table. table is indexed row-major
// in the GIVEN key order with the last key varying fastest (see
// decision.New). Every entry must be >= 0.
//
// Errors: core.ErrBadCardinality / core.ErrDuplicateKey,
// decision.ErrLeafCountMismatch, ErrNegativeValue.
// Complexity: O(domain size)
func NewFactor(keys core.DiscreteKeys, table []float64) (*Factor, error) {
	// 1) Reject negative entries before building anything.
	for i, v := range table {
		if v < 0 {
			return nil, fmt.Errorf("entry %d (%g): %w", i, v, ErrNegativeValue)
		}
	}

	// 2) Build the dense tree (validates keys and table length).
	tree, err := decision.New(keys, table)
	if err != nil {
		return nil, err
	}

	return &Factor{keys: tree.Keys(), tree: tree}, nil
}

// NewConstantFactor returns the keyless factor with the given value — the
// multiplicative identity of a factor graph when value is 1.
func NewConstantFactor(value float64) (*Factor, error) {
	if value < 0 {
		return nil, ErrNegativeValue
	}

	return &Factor{tree: decision.NewLeaf(value)}, nil
}

// fromTree wraps an already-built tree as a Factor. Internal: callers
// guarantee non-negativity is preserved by the producing operation.
func fromTree(tree decision.Tree[float64]) *Factor {
	return &Factor{keys: tree.Keys(), tree: tree}
}

// DiscreteKeys returns a copy of the factor's key set (sorted by ID).
func (f *Factor) DiscreteKeys() core.DiscreteKeys {
	keys := make(core.DiscreteKeys, len(f.keys))
	copy(keys, f.keys)

	return keys
}

// Keys returns the factor's key IDs (sorted ascending).
func (f *Factor) Keys() []core.Key { return f.keys.IDs() }

// Evaluate returns the factor's value at one assignment. The assignment may
// mention extra keys; every factor key must be covered and in range.
//
// Errors: ErrIncompleteAssignment, decision.ErrIndexOutOfRange.
// Complexity: O(number of keys)
func (f *Factor) Evaluate(values core.Values) (float64, error) {
	v, err := f.tree.At(values)
	if errors.Is(err, decision.ErrIncompleteAssignment) {
		return 0, ErrIncompleteAssignment
	}
	if err != nil {
		return 0, err
	}

	return v, nil
}

// Mul returns the pointwise product of two factors over the union of their
// key sets, aligning shared keys.
//
// Errors: ErrNilFactor, ErrCardinalityMismatch (domain size disagreement on
// a shared key — the lazily checked global invariant).
// Complexity: O(union domain size) worst case.
func (f *Factor) Mul(other *Factor) (*Factor, error) {
	if other == nil {
		return nil, ErrNilFactor
	}

	product, err := f.tree.Combine(other.tree, func(a, b float64) float64 { return a * b })
	if errors.Is(err, decision.ErrCardinalityConflict) {
		return nil, ErrCardinalityMismatch
	}
	if err != nil {
		return nil, err
	}

	return fromTree(product), nil
}

// SumOut marginalizes the given keys out of the factor by summation, in the
// order given.
//
// Errors: decision.ErrKeyNotFound if a key is absent,
// ErrCardinalityMismatch if a key's Card disagrees with the factor's record.
// Complexity: O(domain size) per key.
func (f *Factor) SumOut(keys ...core.DiscreteKey) (*Factor, error) {
	return f.foldOut(keys, func(a, b float64) float64 { return a + b })
}

// MaxOut eliminates the given keys by maximization instead of summation —
// the max-product analogue of SumOut.
//
// Errors: as for SumOut.
func (f *Factor) MaxOut(keys ...core.DiscreteKey) (*Factor, error) {
	return f.foldOut(keys, math.Max)
}

// foldOut applies tree.Fold per key with the given operator.
func (f *Factor) foldOut(keys core.DiscreteKeys, op func(float64, float64) float64) (*Factor, error) {
	tree := f.tree
	var err error
	for _, k := range keys {
		tree, err = tree.Fold(k, op)
		if errors.Is(err, decision.ErrCardinalityConflict) {
			return nil, ErrCardinalityMismatch
		}
		if err != nil {
			return nil, err
		}
	}

	return fromTree(tree), nil
}

// Max returns the largest value in the factor's table.
// Complexity: O(domain size)
func (f *Factor) Max() float64 {
	best := math.Inf(-1)
	f.tree.Visit(func(_ core.Values, leaf float64) {
		if leaf > best {
			best = leaf
		}
	})

	return best
}

// Sum returns the total mass of the factor's table.
// Complexity: O(domain size)
func (f *Factor) Sum() float64 {
	var total float64
	f.tree.Visit(func(_ core.Values, leaf float64) { total += leaf })

	return total
}

// Normalize returns the factor divided by its total mass, so entries sum to
// one. An all-zero factor is returned unchanged (there is no distribution to
// recover — documented deterministic policy, no NaN propagation).
// Complexity: O(domain size)
func (f *Factor) Normalize() *Factor {
	total := f.Sum()
	if total == 0 {
		return f
	}

	return fromTree(f.tree.Apply(func(v float64) float64 { return v / total }))
}

// Scale returns the factor with every entry multiplied by s (s >= 0).
//
// Errors: ErrNegativeValue if s < 0.
func (f *Factor) Scale(s float64) (*Factor, error) {
	if s < 0 {
		return nil, ErrNegativeValue
	}

	return fromTree(f.tree.Apply(func(v float64) float64 { return v * s })), nil
}

// Equals reports whether both factors cover the same keys and agree on every
// entry within tol.
// Complexity: O(domain size)
func (f *Factor) Equals(other *Factor, tol float64) bool {
	if other == nil {
		return false
	}
	if len(f.keys) != len(other.keys) {
		return false
	}
	for i, k := range f.keys {
		if other.keys[i] != k {
			return false
		}
	}

	equal := true
	f.tree.Visit(func(values core.Values, leaf float64) {
		o, err := other.tree.At(values)
		if err != nil || math.Abs(leaf-o) > tol {
			equal = false
		}
	})

	return equal
}
