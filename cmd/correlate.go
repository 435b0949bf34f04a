package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CellarBytes/vinoscope-cli/internal/stats"
	"github.com/CellarBytes/vinoscope-cli/internal/utils"
)

var (
	corTop  int
	corJSON bool
)

var correlateCmd = &cobra.Command{
	Use:   "correlate <csv>",
	Short: "Compute the Pearson correlation matrix over the input attributes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig()
		if err != nil {
			return err
		}
		ds, err := loadDataset(args[0], c)
		if err != nil {
			return err
		}
		corr, err := stats.Correlations(ds, nil)
		if err != nil {
			return err
		}

		if corJSON {
			b, err := utils.PrettyJSON(struct {
				Columns []string     `json:"columns"`
				Values  [][]float64  `json:"values"`
				Top     []stats.Pair `json:"top_pairs"`
			}{corr.Columns, corr.Values, corr.TopPairs(corTop)})
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		fmt.Println("[TOP PAIRS]")
		for _, p := range corr.TopPairs(corTop) {
			fmt.Printf("- %s ~ %s: r=%.3f\n", p.A, p.B, p.R)
		}
		fmt.Println("\n[MATRIX]")
		printMatrix(corr)
		return nil
	},
}

// printMatrix renders the symmetric matrix with short column heads; the full
// names are listed above the grid.
func printMatrix(corr *stats.CorrMatrix) {
	for i, name := range corr.Columns {
		fmt.Printf("c%-2d %s\n", i+1, name)
	}
	fmt.Printf("%4s", "")
	for i := range corr.Columns {
		fmt.Printf(" %6s", fmt.Sprintf("c%d", i+1))
	}
	fmt.Println()
	for i, row := range corr.Values {
		fmt.Printf("%-4s", fmt.Sprintf("c%d", i+1))
		var cells []string
		for _, r := range row {
			if math.IsNaN(r) {
				cells = append(cells, fmt.Sprintf(" %6s", "NaN"))
				continue
			}
			cells = append(cells, fmt.Sprintf(" %6.2f", r))
		}
		fmt.Println(strings.Join(cells, ""))
	}
}

func init() {
	rootCmd.AddCommand(correlateCmd)
	correlateCmd.Flags().IntVar(&corTop, "top", 10, "number of top pairs to list")
	correlateCmd.Flags().BoolVar(&corJSON, "json", false, "emit the matrix as indented JSON")
}
