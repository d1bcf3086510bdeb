// Package hybrid_test provides runnable examples for the hybrid conditional
// wrapper and its Restrict specialization.
package hybrid_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/hybrid"
)

// ExampleConditional_Restrict resolves a two-mode mixture to a plain
// Gaussian once its discrete parent becomes known.
func ExampleConditional_Restrict() {
	// 1) Two unit-variance components in square-root form: R = [1], so the
	//    right-hand side d is the mean directly.
	r := mat.NewTriDense(1, mat.Upper, []float64{1})
	g0, _ := hybrid.NewGaussian("x", r, mat.NewVecDense(1, []float64{0}))
	g1, _ := hybrid.NewGaussian("x", r, mat.NewVecDense(1, []float64{5}))

	// 2) A binary mode variable M selects the component.
	mode := core.DiscreteKeys{{ID: "M", Card: 2}}
	mix, _ := hybrid.NewMixture(mode, []*hybrid.Gaussian{g0, g1})
	cond, _ := hybrid.NewFromMixture(mix)

	// 3) Once M is observed, Restrict specializes the conditional to the
	//    selected component: the result is Gaussian-only.
	resolved, err := cond.Restrict(core.Values{"M": 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) The resolved density peaks at the second component's mean x = 5.
	p, _ := resolved.Evaluate(hybrid.Values{
		Continuous: hybrid.ContinuousValues{"x": mat.NewVecDense(1, []float64{5})},
	})
	fmt.Printf("gaussian=%v p(x=5)=%.4f\n", resolved.AsGaussian() != nil, p)
	// Output: gaussian=true p(x=5)=0.3989
}
