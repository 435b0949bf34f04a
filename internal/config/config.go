package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	HistogramBins   int                `mapstructure:"histogram_bins" yaml:"histogram_bins"`
	SampleRows      int                `mapstructure:"sample_rows" yaml:"sample_rows"`
	TopPairs        int                `mapstructure:"top_pairs" yaml:"top_pairs"`
	Jitter          float64            `mapstructure:"jitter" yaml:"jitter"`
	LogScaleColumns []string           `mapstructure:"log_scale_columns" yaml:"log_scale_columns"`
	AxisCaps        map[string]float64 `mapstructure:"axis_caps" yaml:"axis_caps"`
	ReportTitle     string             `mapstructure:"report_title" yaml:"report_title"`
	Delimiter       string             `mapstructure:"delimiter" yaml:"delimiter"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.vinoscope/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".vinoscope")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Path returns the effective config file path for display.
func Path(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".vinoscope", "config.yaml"), nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("VINOSCOPE")
	v.AutomaticEnv()

	// Defaults reproduce the documented report with no flags at all.
	v.SetDefault("histogram_bins", 20)
	v.SetDefault("sample_rows", 5)
	v.SetDefault("top_pairs", 4)
	v.SetDefault("jitter", 0.25)
	v.SetDefault("log_scale_columns", []string{"residual sugar", "chlorides", "sulphates"})
	v.SetDefault("axis_caps", map[string]float64{"residual sugar": 9, "chlorides": 0.3})
	v.SetDefault("report_title", "Red Wine Quality: Exploratory Analysis")
	v.SetDefault("delimiter", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".vinoscope")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
