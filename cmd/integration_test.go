package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/CellarBytes/vinoscope-cli/internal/dataset"
)

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

// writeTestCSV writes a small wine-shaped CSV into dir and returns its path.
func writeTestCSV(t *testing.T, dir string, rows int) string {
	t.Helper()
	rng := rand.New(rand.NewSource(3))
	var b strings.Builder
	header := append(append([]string{}, dataset.Attributes...), dataset.QualityColumn)
	b.WriteString(strings.Join(header, ",") + "\n")
	for i := 0; i < rows; i++ {
		cols := []string{
			fmt.Sprintf("%.2f", 6+3*rng.Float64()),
			fmt.Sprintf("%.3f", 0.2+0.6*rng.Float64()),
			fmt.Sprintf("%.2f", rng.Float64()),
			fmt.Sprintf("%.1f", 1.5+6*rng.Float64()),
			fmt.Sprintf("%.3f", 0.04+0.1*rng.Float64()),
			fmt.Sprintf("%.0f", 5+40*rng.Float64()),
			fmt.Sprintf("%.0f", 20+100*rng.Float64()),
			fmt.Sprintf("%.4f", 0.99+0.01*rng.Float64()),
			fmt.Sprintf("%.2f", 2.9+0.8*rng.Float64()),
			fmt.Sprintf("%.2f", 0.4+0.8*rng.Float64()),
			fmt.Sprintf("%.1f", 9+4*rng.Float64()),
			strconv.Itoa(3 + i%6),
		}
		b.WriteString(strings.Join(cols, ",") + "\n")
	}
	path := filepath.Join(dir, "wine.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestCLI_ReportEndToEnd(t *testing.T) {
	// Use a temp HOME to isolate config
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	csvPath := writeTestCSV(t, home, 48)
	outPath := filepath.Join(home, "report.html")

	runCmd(t, "report", csvPath, "-o", outPath)

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	html := string(b)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<canvas",
		"Summary statistics",
		"Correlation matrix",
		"Linear models",
		"new Chart(",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("report missing %q", want)
		}
	}
}

func TestCLI_SummarizeWritesMarkdown(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	csvPath := writeTestCSV(t, home, 24)
	outPath := filepath.Join(home, "summary.md")

	runCmd(t, "summarize", csvPath, "-o", outPath)

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(b), "[DATASET SUMMARY]") {
		t.Fatalf("summary missing header: %s", b)
	}
	if !strings.Contains(string(b), "Rows: 24") {
		t.Fatalf("summary missing row count: %s", b)
	}
}

func TestCLI_RegressAndCorrelate(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	csvPath := writeTestCSV(t, home, 36)
	runCmd(t, "regress", csvPath, "--json")
	runCmd(t, "regress", csvPath, "--predictors", "alcohol,pH")
	runCmd(t, "correlate", csvPath, "--top", "3")
}

func TestCLI_ReportFailsOnMissingFile(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	rootCmd.SetArgs([]string{"report", filepath.Join(home, "absent.csv"), "-o", filepath.Join(home, "r.html")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestCLI_ConfigRoundTrip(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)
	cfg = nil // force a reload against the temp HOME

	runCmd(t, "config", "set", "histogram_bins", "12")

	path := filepath.Join(home, ".vinoscope", "config.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(b), "histogram_bins: 12") {
		t.Fatalf("config not persisted: %s", b)
	}
	runCmd(t, "config", "path")
	runCmd(t, "config", "show")
}
