package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/CellarBytes/vinoscope-cli/internal/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix with unit diagonal.
// Degenerate (zero-variance) columns produce NaN off-diagonal entries, which
// are carried through to the report rather than masked.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// Pair is one correlated column pair.
type Pair struct {
	A, B string
	R    float64
}

// Correlations computes the pairwise Pearson matrix over the given columns.
// A nil column list means all 11 attributes.
func Correlations(ds *dataset.Dataset, columns []string) (*CorrMatrix, error) {
	if columns == nil {
		columns = ds.AttributeNames()
	}
	data := make([][]float64, len(columns))
	for i, name := range columns {
		vals, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		data[i] = vals
	}

	n := len(columns)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := stat.Correlation(data[i], data[j], nil)
			values[i][j] = r
			values[j][i] = r
		}
	}
	cols := make([]string, n)
	copy(cols, columns)
	return &CorrMatrix{Columns: cols, Values: values}, nil
}

// At returns the coefficient for the (i, j) column pair.
func (m *CorrMatrix) At(i, j int) float64 { return m.Values[i][j] }

// TopPairs returns the n pairs with the largest |r|, strongest first.
// NaN entries cannot be ranked and are skipped.
func (m *CorrMatrix) TopPairs(n int) []Pair {
	var pairs []Pair
	for i := 0; i < len(m.Columns); i++ {
		for j := i + 1; j < len(m.Columns); j++ {
			r := m.Values[i][j]
			if math.IsNaN(r) {
				continue
			}
			pairs = append(pairs, Pair{A: m.Columns[i], B: m.Columns[j], R: r})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		ai, aj := math.Abs(pairs[i].R), math.Abs(pairs[j].R)
		if ai == aj {
			return pairs[i].A+pairs[i].B < pairs[j].A+pairs[j].B
		}
		return ai > aj
	})
	if n > 0 && n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}
