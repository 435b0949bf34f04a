package report_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CellarBytes/vinoscope-cli/internal/chart"
	"github.com/CellarBytes/vinoscope-cli/internal/regress"
	"github.com/CellarBytes/vinoscope-cli/internal/report"
	"github.com/CellarBytes/vinoscope-cli/internal/stats"
)

func sampleDocument() *report.Document {
	return &report.Document{
		Title:       "Red Wine Quality: Exploratory Analysis",
		ID:          "test-run",
		Generated:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		DatasetName: "winequality-red.csv",
		Rows:        1599,
		Cols:        12,
		Summaries: []stats.Summary{
			{Column: "alcohol", Count: 1599, Mean: 10.42, Std: 1.07, Min: 8.4, Q1: 9.5, Median: 10.2, Q3: 11.1, Max: 14.9},
		},
		SampleHeader: []string{"alcohol", "quality"},
		SampleRows:   [][]string{{"9.4", "5"}, {"9.8", "5"}},
		Corr: &stats.CorrMatrix{
			Columns: []string{"alcohol", "pH", "citric acid"},
			Values: [][]float64{
				{1, 0.21, math.NaN()},
				{0.21, 1, -0.54},
				{math.NaN(), -0.54, 1},
			},
		},
		TopPairs: []stats.Pair{{A: "pH", B: "citric acid", R: -0.54}},
		Univariate: []chart.Chart{
			chart.Histogram("alcohol", []float64{9, 10, 11, 12}, chart.HistogramOptions{Bins: 2}),
		},
		Scatters: []chart.Chart{
			chart.Scatter("pH", "citric acid", []float64{3, 3.2}, []float64{0.4, 0.2}, chart.ScatterOptions{R: -0.54, HasR: true}),
		},
		Models: []*regress.Model{
			{Predictors: []string{"volatile acidity"}, Intercept: 6.57, Coefficients: []float64{-1.76}, R2: 0.153, N: 1599},
			{Predictors: []string{"volatile acidity", "alcohol"}, Intercept: 3.1, Coefficients: []float64{-1.4, 0.32}, R2: 0.317, N: 1599},
		},
		Notes: []string{"correlation of alcohol with citric acid is undefined (zero variance)"},
	}
}

func TestHTMLSections(t *testing.T) {
	doc := sampleDocument()
	out, err := doc.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"<title>Red Wine Quality: Exploratory Analysis</title>",
		"cdn.jsdelivr.net/npm/chart.js",
		"chartjs-chart-boxplot",
		"Summary statistics",
		"Correlation matrix",
		`id="hist-alcohol"`,
		`id="scatter-ph-citric-acid"`,
		"new Chart(document.getElementById(",
		"Model 1: 1 predictor(s)",
		"zero variance",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered HTML missing %q", want)
		}
	}
}

func TestHTMLSurfacesNaN(t *testing.T) {
	out, err := sampleDocument().HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, ">NaN</td>") {
		t.Fatal("NaN correlation cells must render as NaN, not be masked")
	}
}

func TestHTMLDeterministic(t *testing.T) {
	doc := sampleDocument()
	a, err := doc.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := doc.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if a != b {
		t.Fatal("rendering the same document twice must be identical")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	if err := sampleDocument().WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(b), "<!DOCTYPE html>") {
		t.Fatal("report file must be a standalone HTML document")
	}
}

func TestMarkdownSummary(t *testing.T) {
	md := sampleDocument().Markdown()
	for _, want := range []string{
		"[DATASET SUMMARY]",
		"File: winequality-red.csv",
		"Rows: 1599",
		"[COLUMNS]",
		"- alcohol: n=1599",
		"[CORRELATIONS]",
		"- pH ~ citric acid: r=-0.540",
		"[SAMPLE ROWS]",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q in:\n%s", want, md)
		}
	}
}
