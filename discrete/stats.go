// Package discrete: potential-table diagnostics.
// Summary statistics over a factor's potential values. Useful for spotting
// tables whose mass spans many orders of magnitude — the regime where
// ScaledProduct matters — without printing the table itself.
package discrete

import (
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/factorgraph/core"
)

// Stats summarizes the distribution of a factor's potential values.
type Stats struct {
	Count  int     // number of table entries (joint domain size)
	Min    float64 // smallest potential
	Max    float64 // largest potential
	Mean   float64 // arithmetic mean of the potentials
	Median float64 // median of the potentials
}

// Stats computes summary statistics of the factor's potential table.
// Complexity: O(domain size log domain size) (median sort dominates).
func (f *Factor) Stats() (Stats, error) {
	var data []float64
	f.tree.Visit(func(_ core.Values, leaf float64) { data = append(data, leaf) })

	minV, err := stats.Min(data)
	if err != nil {
		return Stats{}, err
	}
	maxV, err := stats.Max(data)
	if err != nil {
		return Stats{}, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return Stats{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Count:  len(data),
		Min:    minV,
		Max:    maxV,
		Mean:   mean,
		Median: median,
	}, nil
}
