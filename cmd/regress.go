package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CellarBytes/vinoscope-cli/internal/regress"
	"github.com/CellarBytes/vinoscope-cli/internal/utils"
)

var (
	regPredictors []string
	regJSON       bool
)

var regressCmd = &cobra.Command{
	Use:   "regress <csv>",
	Short: "Fit least-squares models of quality on the input attributes",
	Long: `Fits ordinary least squares of numeric quality on physicochemical
attributes. With --predictors a single model is fitted; without it the
default nested trio is reported (volatile acidity alone, the seven-attribute
set, then all eleven).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig()
		if err != nil {
			return err
		}
		ds, err := loadDataset(args[0], c)
		if err != nil {
			return err
		}

		var models []*regress.Model
		if len(regPredictors) > 0 {
			m, err := regress.Fit(ds, regPredictors)
			if err != nil {
				return err
			}
			models = []*regress.Model{m}
		} else {
			models, err = regress.FitNested(ds, regress.DefaultNest())
			if err != nil {
				return err
			}
		}

		if regJSON {
			b, err := utils.PrettyJSON(models)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		for i, m := range models {
			fmt.Printf("Model %d: %d predictor(s), n=%d, R²=%.4f\n", i+1, len(m.Predictors), m.N, m.R2)
			fmt.Printf("  (intercept): %.5f\n", m.Intercept)
			for j, p := range m.Predictors {
				fmt.Printf("  %s: %.5f\n", p, m.Coefficients[j])
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regressCmd)
	regressCmd.Flags().StringSliceVar(&regPredictors, "predictors", nil, "comma-separated predictor columns (default: nested trio)")
	regressCmd.Flags().BoolVar(&regJSON, "json", false, "emit fitted models as indented JSON")
}
