// Package regress fits ordinary-least-squares models of numeric quality on
// subsets of the physicochemical attributes.
package regress

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/CellarBytes/vinoscope-cli/internal/dataset"
)

// Model is one fitted least-squares model: an intercept, one coefficient per
// predictor (ordered as Predictors), and the coefficient of determination.
type Model struct {
	Predictors   []string  `json:"predictors"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
	R2           float64   `json:"r_squared"`
	N            int       `json:"n"`
}

// DefaultNest returns the canonical nested predictor sets: volatile acidity
// alone, then the six next most informative attributes, then all eleven.
// Each set extends the previous one, so fitted R² is non-decreasing.
func DefaultNest() [][]string {
	tier1 := []string{"volatile acidity"}
	tier2 := append(append([]string{}, tier1...),
		"citric acid", "sulphates", "alcohol", "chlorides", "density", "pH")
	tier3 := append(append([]string{}, tier2...),
		"residual sugar", "fixed acidity", "free sulfur dioxide", "total sulfur dioxide")
	return [][]string{tier1, tier2, tier3}
}

// Fit solves a single closed-form least-squares fit of quality on the given
// predictors. A rank-deficient design matrix (e.g. a zero-variance predictor)
// surfaces as a solve error.
func Fit(ds *dataset.Dataset, predictors []string) (*Model, error) {
	if len(predictors) == 0 {
		return nil, fmt.Errorf("fit: no predictors given")
	}
	n := ds.NumRows()
	y := ds.QualityAsFloat()

	// Design matrix with an intercept column.
	x := mat.NewDense(n, len(predictors)+1, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
	}
	for j, name := range predictors {
		col, err := ds.Column(name)
		if err != nil {
			return nil, fmt.Errorf("fit: %w", err)
		}
		x.SetCol(j+1, col)
	}

	var beta mat.Dense
	if err := beta.Solve(x, mat.NewDense(n, 1, y)); err != nil {
		return nil, fmt.Errorf("fit %v: solve least squares: %w", predictors, err)
	}

	var fitted mat.Dense
	fitted.Mul(x, &beta)
	estimates := mat.Col(nil, 0, &fitted)

	m := &Model{
		Predictors:   append([]string{}, predictors...),
		Intercept:    beta.At(0, 0),
		Coefficients: make([]float64, len(predictors)),
		R2:           stat.RSquaredFrom(estimates, y, nil),
		N:            n,
	}
	for j := range predictors {
		m.Coefficients[j] = beta.At(j+1, 0)
	}
	return m, nil
}

// FitNested fits one model per predictor set. Sets are expected to be
// nested (each extending the previous), as produced by DefaultNest.
func FitNested(ds *dataset.Dataset, sets [][]string) ([]*Model, error) {
	models := make([]*Model, 0, len(sets))
	for _, set := range sets {
		m, err := Fit(ds, set)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}
