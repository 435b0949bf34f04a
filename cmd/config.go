package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/CellarBytes/vinoscope-cli/internal/config"
	"github.com/CellarBytes/vinoscope-cli/internal/utils"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit persisted configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig()
		if err != nil {
			return err
		}
		b, err := utils.PrettyJSON(c)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfgpkg.Path(cfgFile)
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig()
		if err != nil {
			return err
		}
		key, val := args[0], args[1]
		switch key {
		case "histogram_bins":
			c.HistogramBins, err = strconv.Atoi(val)
		case "sample_rows":
			c.SampleRows, err = strconv.Atoi(val)
		case "top_pairs":
			c.TopPairs, err = strconv.Atoi(val)
		case "jitter":
			c.Jitter, err = strconv.ParseFloat(val, 64)
		case "log_scale_columns":
			c.LogScaleColumns = splitList(val)
		case "report_title":
			c.ReportTitle = val
		case "delimiter":
			c.Delimiter = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", key, err)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s = %s\n", key, val)
		return nil
	},
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
}
