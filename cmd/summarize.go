package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/CellarBytes/vinoscope-cli/internal/report"
	"github.com/CellarBytes/vinoscope-cli/internal/stats"
)

var (
	sumOutputPath string
	sumSampleRows int
	sumTopPairs   int
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <csv>",
	Short: "Print a compact dataset summary (shape, per-column stats, top correlations)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig()
		if err != nil {
			return err
		}
		if sumSampleRows > 0 {
			c.SampleRows = sumSampleRows
		}
		if sumTopPairs > 0 {
			c.TopPairs = sumTopPairs
		}

		ds, err := loadDataset(args[0], c)
		if err != nil {
			return err
		}
		summaries, err := stats.DescribeAll(ds)
		if err != nil {
			return err
		}
		corr, err := stats.Correlations(ds, nil)
		if err != nil {
			return err
		}

		doc := &report.Document{
			ID:           uuid.NewString(),
			Generated:    time.Now(),
			DatasetName:  ds.Name(),
			Rows:         ds.NumRows(),
			Cols:         len(ds.Header()),
			Summaries:    summaries,
			SampleHeader: ds.Header(),
			SampleRows:   ds.SampleRows(c.SampleRows),
			TopPairs:     corr.TopPairs(c.TopPairs),
		}
		md := doc.Markdown()

		if sumOutputPath != "" {
			if err := os.WriteFile(sumOutputPath, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote summary to %s\n", sumOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().StringVarP(&sumOutputPath, "output", "o", "", "optional path to write the summary (Markdown)")
	summarizeCmd.Flags().IntVar(&sumSampleRows, "sample-rows", 0, "number of sample rows to include (overrides config)")
	summarizeCmd.Flags().IntVar(&sumTopPairs, "top", 0, "number of top correlated pairs to list (overrides config)")
}
