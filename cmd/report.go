package cmd

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/CellarBytes/vinoscope-cli/internal/chart"
	cfgpkg "github.com/CellarBytes/vinoscope-cli/internal/config"
	"github.com/CellarBytes/vinoscope-cli/internal/dataset"
	"github.com/CellarBytes/vinoscope-cli/internal/regress"
	"github.com/CellarBytes/vinoscope-cli/internal/report"
	"github.com/CellarBytes/vinoscope-cli/internal/stats"
)

var (
	repOutputPath string
	repTitle      string
	repBins       int
	repTopPairs   int
)

// qualityPairs are the attribute pairs shown with quality as color.
var qualityPairs = [][2]string{
	{"alcohol", "volatile acidity"},
	{"sulphates", "alcohol"},
}

// quartilePairs map an attribute pair to the third attribute that gets
// quartile-bucketed for color.
var quartilePairs = []struct {
	x, y, binned string
}{
	{"fixed acidity", "citric acid", "pH"},
	{"fixed acidity", "alcohol", "density"},
}

var reportCmd = &cobra.Command{
	Use:   "report <csv>",
	Short: "Run the full analysis pipeline and write a static HTML report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := activeConfig()
		if err != nil {
			return err
		}
		if repBins > 0 {
			c.HistogramBins = repBins
		}
		if repTopPairs > 0 {
			c.TopPairs = repTopPairs
		}
		title := c.ReportTitle
		if repTitle != "" {
			title = repTitle
		}

		doc, err := buildDocument(args[0], title, c)
		if err != nil {
			return err
		}
		if err := doc.WriteFile(repOutputPath); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote report to %s\n", repOutputPath)
		return nil
	},
}

// buildDocument runs the pipeline stages in order: load, summarize, chart,
// correlate, regress. The first failing stage aborts the run.
func buildDocument(path, title string, c *cfgpkg.Global) (*report.Document, error) {
	ds, err := loadDataset(path, c)
	if err != nil {
		return nil, err
	}
	summaries, err := stats.DescribeAll(ds)
	if err != nil {
		return nil, err
	}
	corr, err := stats.Correlations(ds, nil)
	if err != nil {
		return nil, err
	}
	top := corr.TopPairs(c.TopPairs)

	univariate, err := buildHistograms(ds, c)
	if err != nil {
		return nil, err
	}
	boxplots, err := buildBoxplots(ds)
	if err != nil {
		return nil, err
	}
	scatters, err := buildScatters(ds, top, c.Jitter)
	if err != nil {
		return nil, err
	}
	multivariate, err := buildMultivariate(ds)
	if err != nil {
		return nil, err
	}
	models, err := regress.FitNested(ds, regress.DefaultNest())
	if err != nil {
		return nil, err
	}

	doc := &report.Document{
		Title:        title,
		ID:           uuid.NewString(),
		Generated:    time.Now(),
		DatasetName:  ds.Name(),
		Rows:         ds.NumRows(),
		Cols:         len(ds.Header()),
		Summaries:    summaries,
		SampleHeader: ds.Header(),
		SampleRows:   ds.SampleRows(c.SampleRows),
		Corr:         corr,
		TopPairs:     top,
		Univariate:   univariate,
		Boxplots:     boxplots,
		Scatters:     scatters,
		Multivariate: multivariate,
		Models:       models,
		Notes:        collectNotes(corr),
	}
	return doc, nil
}

func buildHistograms(ds *dataset.Dataset, c *cfgpkg.Global) ([]chart.Chart, error) {
	logScale := map[string]bool{}
	for _, name := range c.LogScaleColumns {
		logScale[name] = true
	}
	var charts []chart.Chart
	for _, name := range ds.AttributeNames() {
		vals, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart.Histogram(name, vals, chart.HistogramOptions{
			Bins: c.HistogramBins,
			LogY: logScale[name],
			XMax: c.AxisCaps[name],
		}))
	}
	return charts, nil
}

func buildBoxplots(ds *dataset.Dataset) ([]chart.Chart, error) {
	levels := ds.QualityLevels()
	scores := ds.Quality()
	var charts []chart.Chart
	for _, name := range ds.AttributeNames() {
		vals, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		byLevel := stats.GroupByQuality(vals, scores)
		groups := make([]chart.BoxGroup, 0, len(levels))
		for _, lvl := range levels {
			groups = append(groups, chart.BoxGroup{
				Label: strconv.Itoa(lvl),
				Box:   toChartBox(stats.Box(byLevel[lvl])),
			})
		}
		charts = append(charts, chart.BoxByGroup(name, dataset.QualityColumn, groups))
	}
	return charts, nil
}

func buildScatters(ds *dataset.Dataset, top []stats.Pair, jitterPct float64) ([]chart.Chart, error) {
	var charts []chart.Chart
	for _, p := range top {
		xs, err := ds.Column(p.A)
		if err != nil {
			return nil, err
		}
		ys, err := ds.Column(p.B)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart.Scatter(p.A, p.B, xs, ys, chart.ScatterOptions{
			JitterX: jitterAmp(xs, jitterPct),
			JitterY: jitterAmp(ys, jitterPct),
			R:       p.R,
			HasR:    true,
		}))
	}
	return charts, nil
}

func buildMultivariate(ds *dataset.Dataset) ([]chart.Chart, error) {
	var charts []chart.Chart

	scores := ds.Quality()
	for _, pair := range qualityPairs {
		xs, err := ds.Column(pair[0])
		if err != nil {
			return nil, err
		}
		ys, err := ds.Column(pair[1])
		if err != nil {
			return nil, err
		}
		groups := make([]chart.ScatterGroup, 0, 6)
		for _, lvl := range ds.QualityLevels() {
			g := chart.ScatterGroup{
				Label: fmt.Sprintf("quality %d", lvl),
				Color: chart.QualityColor(lvl),
			}
			for i, s := range scores {
				if s == lvl {
					g.Points = append(g.Points, chart.Point{X: xs[i], Y: ys[i]})
				}
			}
			groups = append(groups, g)
		}
		charts = append(charts, chart.ScatterGrouped(pair[0], pair[1], dataset.QualityColumn, groups))
	}

	for _, spec := range quartilePairs {
		xs, err := ds.Column(spec.x)
		if err != nil {
			return nil, err
		}
		ys, err := ds.Column(spec.y)
		if err != nil {
			return nil, err
		}
		binned, err := ds.Column(spec.binned)
		if err != nil {
			return nil, err
		}
		q, err := stats.QuartileBuckets(spec.binned, binned)
		if err != nil {
			return nil, err
		}
		groups := make([]chart.ScatterGroup, 4)
		for i := range groups {
			groups[i] = chart.ScatterGroup{
				Label: q.Buckets[i].Label,
				Color: chart.GroupColor(i),
			}
		}
		for i, bucket := range q.Assign {
			groups[bucket].Points = append(groups[bucket].Points, chart.Point{X: xs[i], Y: ys[i]})
		}
		charts = append(charts, chart.ScatterGrouped(spec.x, spec.y, spec.binned+" quartile", groups))
	}
	return charts, nil
}

// collectNotes surfaces degenerate statistics rather than masking them.
func collectNotes(corr *stats.CorrMatrix) []string {
	var notes []string
	for i := range corr.Columns {
		for j := i + 1; j < len(corr.Columns); j++ {
			if math.IsNaN(corr.Values[i][j]) {
				notes = append(notes,
					fmt.Sprintf("correlation of %s with %s is undefined (zero variance)", corr.Columns[i], corr.Columns[j]))
			}
		}
	}
	return notes
}

// jitterAmp converts the configured jitter percentage into a data-unit
// amplitude relative to the column's observed range.
func jitterAmp(vals []float64, pct float64) float64 {
	if pct <= 0 || len(vals) == 0 {
		return 0
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return pct / 100 * (hi - lo)
}

func toChartBox(b stats.BoxStats) chart.Box {
	return chart.Box{Min: b.Min, Q1: b.Q1, Median: b.Median, Q3: b.Q3, Max: b.Max, Outliers: b.Outliers}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "report.html", "path for the rendered HTML report")
	reportCmd.Flags().StringVar(&repTitle, "title", "", "report title (overrides config)")
	reportCmd.Flags().IntVar(&repBins, "bins", 0, "histogram bin count (overrides config)")
	reportCmd.Flags().IntVar(&repTopPairs, "top-pairs", 0, "number of top correlated pairs to plot (overrides config)")
}
