// Package stats computes descriptive statistics over dataset columns:
// per-column summaries, Pearson correlation matrices, quartile buckets,
// and boxplot five-number summaries.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/CellarBytes/vinoscope-cli/internal/dataset"
)

// Summary holds per-column descriptive statistics, pandas-describe style.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes a Summary for one column. Quartiles use linear
// interpolation between order statistics.
func Describe(column string, values []float64) Summary {
	s := Summary{Column: column, Count: len(values)}
	if len(values) == 0 {
		return s
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q1 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	s.Q3 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	return s
}

// DescribeAll summarizes the 11 attribute columns followed by quality.
func DescribeAll(ds *dataset.Dataset) ([]Summary, error) {
	out := make([]Summary, 0, len(dataset.Attributes)+1)
	for _, name := range ds.AttributeNames() {
		vals, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Describe(name, vals))
	}
	out = append(out, Describe(dataset.QualityColumn, ds.QualityAsFloat()))
	return out, nil
}
