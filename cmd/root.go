package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/CellarBytes/vinoscope-cli/internal/config"
	"github.com/CellarBytes/vinoscope-cli/internal/dataset"
)

var (
	// Global flags (wired to config/viper)
	cfgFile       string
	debug         bool
	flagDelimiter string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "vinoscope",
	Short: "Vinoscope CLI: exploratory analysis of the red-wine quality dataset",
	Long: `Vinoscope is a CLI tool that loads the red-wine quality CSV into memory,
computes descriptive statistics, correlations, and nested linear models, and
renders everything into a single static HTML report.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.vinoscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	if rootCmd.PersistentFlags().Changed("delimiter") {
		cfg.Delimiter = flagDelimiter
	}
}

// activeConfig returns the loaded configuration, loading defaults if startup
// config loading failed.
func activeConfig() (*cfgpkg.Global, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}

// loadDataset opens the CSV with the configured delimiter and sample size.
func loadDataset(path string, c *cfgpkg.Global) (*dataset.Dataset, error) {
	opt := dataset.DefaultOptions()
	if c.SampleRows > 0 {
		opt.SampleRows = c.SampleRows
	}
	switch c.Delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return nil, fmt.Errorf("unsupported delimiter: %q", c.Delimiter)
	}
	ds, err := dataset.Load(path, opt)
	if err != nil {
		return nil, err
	}
	if debug {
		fmt.Fprintf(os.Stderr, "loaded %s: %d rows\n", ds.Name(), ds.NumRows())
	}
	return ds, nil
}
