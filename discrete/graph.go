// Package discrete: the FactorGraph type.
// A FactorGraph is an ordered collection of shared, immutable factors. It
// aggregates the variable universe and supports whole-graph products, point
// evaluation, and the elimination drivers (drivers.go).
package discrete

import (
	"github.com/katalvlaran/factorgraph/core"
)

// FactorGraph is an ordered sequence of discrete factors. Factors are
// shared, never copied, and never mutated once added; the graph itself only
// grows via Add.
type FactorGraph struct {
	factors []*Factor
}

// NewFactorGraph creates a factor graph holding the given factors, in order.
//
// Errors: ErrNilFactor if any factor is nil.
func NewFactorGraph(factors ...*Factor) (*FactorGraph, error) {
	fg := &FactorGraph{factors: make([]*Factor, 0, len(factors))}
	for _, f := range factors {
		if err := fg.Add(f); err != nil {
			return nil, err
		}
	}

	return fg, nil
}

// Add appends a factor to the graph.
//
// Errors: ErrNilFactor.
// Complexity: O(1)
func (fg *FactorGraph) Add(f *Factor) error {
	if f == nil {
		return ErrNilFactor
	}
	fg.factors = append(fg.factors, f)

	return nil
}

// Size returns the number of factors in the graph.
func (fg *FactorGraph) Size() int { return len(fg.factors) }

// Factors returns a copy of the factor sequence (factors themselves are
// shared — they are immutable).
func (fg *FactorGraph) Factors() []*Factor {
	factors := make([]*Factor, len(fg.factors))
	copy(factors, fg.factors)

	return factors
}

// DiscreteKeys returns the graph's variable universe — the union of every
// factor's keys — in canonical (ID-sorted) order. On a cardinality
// disagreement between factors the first-seen cardinality is reported here;
// the disagreement itself surfaces as ErrCardinalityMismatch at the first
// operation that joins the factors.
// Complexity: O(total keys²) on small key sets.
func (fg *FactorGraph) DiscreteKeys() core.DiscreteKeys {
	var universe core.DiscreteKeys
	for _, f := range fg.factors {
		universe = universe.Union(f.DiscreteKeys())
	}

	return universe.Sorted()
}

// Keys returns the universe key IDs in canonical order.
func (fg *FactorGraph) Keys() []core.Key { return fg.DiscreteKeys().IDs() }

// Product returns the pointwise product of every factor as a single factor.
// The empty graph yields the constant factor 1.
//
// Errors: ErrCardinalityMismatch.
// Complexity: O(joint domain size).
func (fg *FactorGraph) Product() (*Factor, error) {
	product, err := NewConstantFactor(1)
	if err != nil {
		return nil, err
	}
	for _, f := range fg.factors {
		product, err = product.Mul(f)
		if err != nil {
			return nil, err
		}
	}

	return product, nil
}

// ScaledProduct returns the product of every factor, divided after each
// multiplication by the running maximum value, to bound the magnitude away
// from zero when many small potentials are multiplied. The accumulated
// scale is returned alongside so the true product is recoverable:
//
//	Product() == scaled.Scale(scale) within floating tolerance.
//
// Errors: ErrCardinalityMismatch.
// Complexity: O(joint domain size) per factor.
func (fg *FactorGraph) ScaledProduct() (*Factor, float64, error) {
	product, err := NewConstantFactor(1)
	if err != nil {
		return nil, 0, err
	}

	scale := 1.0
	for _, f := range fg.factors {
		product, err = product.Mul(f)
		if err != nil {
			return nil, 0, err
		}

		// Divide by the running maximum; skip degenerate all-zero tables
		// (nothing to rescale, and 0/0 must not occur).
		if m := product.Max(); m > 0 {
			product, err = product.Scale(1 / m)
			if err != nil {
				return nil, 0, err
			}
			scale *= m
		}
	}

	return product, scale, nil
}

// Evaluate returns the joint potential of the graph at one fully specified
// assignment, multiplying each factor's value directly — no intermediate
// full-table materialization.
//
// Errors: ErrIncompleteAssignment, decision.ErrIndexOutOfRange.
// Complexity: O(total keys across factors).
func (fg *FactorGraph) Evaluate(values core.Values) (float64, error) {
	result := 1.0
	for _, f := range fg.factors {
		v, err := f.Evaluate(values)
		if err != nil {
			return 0, err
		}
		result *= v
	}

	return result, nil
}

// Equals reports whether both graphs hold pairwise equal factors (same
// order, same keys, entries within tol).
func (fg *FactorGraph) Equals(other *FactorGraph, tol float64) bool {
	if other == nil || len(fg.factors) != len(other.factors) {
		return false
	}
	for i, f := range fg.factors {
		if !f.Equals(other.factors[i], tol) {
			return false
		}
	}

	return true
}
