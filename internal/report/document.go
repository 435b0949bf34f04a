// Package report assembles analysis outputs into a single static HTML
// document: narrative prose, summary tables, a correlation heatmap, and
// embedded Chart.js charts. It can also render a compact markdown summary
// for terminal use.
package report

import (
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/CellarBytes/vinoscope-cli/internal/chart"
	"github.com/CellarBytes/vinoscope-cli/internal/regress"
	"github.com/CellarBytes/vinoscope-cli/internal/stats"
	"github.com/CellarBytes/vinoscope-cli/internal/utils"
)

// Document collects every rendered section of one analysis run. Any failing
// stage aborts before a Document is assembled; rendering itself does not
// recompute anything.
type Document struct {
	Title     string
	ID        string
	Generated time.Time

	DatasetName string
	Rows        int
	Cols        int

	Summaries    []stats.Summary
	SampleHeader []string
	SampleRows   [][]string

	Corr     *stats.CorrMatrix
	TopPairs []stats.Pair

	Univariate   []chart.Chart
	Boxplots     []chart.Chart
	Scatters     []chart.Chart
	Multivariate []chart.Chart

	Models []*regress.Model

	Notes []string
}

// WriteFile renders the document and writes it atomically.
func (d *Document) WriteFile(path string) error {
	out, err := d.HTML()
	if err != nil {
		return err
	}
	if err := utils.SafeWriteFile(path, []byte(out)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// HTML renders the full static report.
func (d *Document) HTML() (string, error) {
	var b strings.Builder
	var charts []chart.Chart

	d.writeHead(&b)

	b.WriteString(`<div class="container">` + "\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(d.Title))
	fmt.Fprintf(&b, `<p class="meta">Generated %s &middot; dataset %s &middot; run %s</p>`+"\n",
		esc(d.Generated.Format("2006-01-02 15:04:05")), esc(d.DatasetName), esc(d.ID))

	d.writeOverview(&b)
	d.writeSummaryTable(&b)
	d.writeSampleRows(&b)

	b.WriteString(`<div class="section"><h2>Univariate distributions</h2>` + "\n")
	b.WriteString(`<p>` + esc(univariateText()) + `</p>` + "\n")
	charts = append(charts, d.writeChartGrid(&b, d.Univariate)...)
	b.WriteString("</div>\n")

	b.WriteString(`<div class="section"><h2>Attributes by quality</h2>` + "\n")
	b.WriteString(`<p>` + esc(boxplotText()) + `</p>` + "\n")
	charts = append(charts, d.writeChartGrid(&b, d.Boxplots)...)
	b.WriteString("</div>\n")

	d.writeCorrelation(&b)

	b.WriteString(`<div class="section"><h2>Most correlated pairs</h2>` + "\n")
	b.WriteString(`<p>` + esc(scatterText(d.TopPairs)) + `</p>` + "\n")
	charts = append(charts, d.writeChartGrid(&b, d.Scatters)...)
	b.WriteString("</div>\n")

	b.WriteString(`<div class="section"><h2>Three-way views</h2>` + "\n")
	b.WriteString(`<p>` + esc(multivariateText()) + `</p>` + "\n")
	charts = append(charts, d.writeChartGrid(&b, d.Multivariate)...)
	b.WriteString("</div>\n")

	d.writeRegression(&b)
	d.writeNotes(&b)

	b.WriteString("</div>\n")

	if err := writeChartScripts(&b, charts); err != nil {
		return "", err
	}
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func (d *Document) writeHead(b *strings.Builder) {
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>` + esc(d.Title) + `</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<script src="https://cdn.jsdelivr.net/npm/@sgratzl/chartjs-chart-boxplot@4"></script>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
       background: #f5f5f5; color: #333; line-height: 1.6; padding: 20px; }
.container { max-width: 1200px; margin: 0 auto; }
.meta { color: #666; margin-bottom: 24px; font-size: 0.9em; }
.section { margin-bottom: 40px; }
h1 { color: #2c3e50; margin-bottom: 8px; }
h2 { color: #2c3e50; margin: 20px 0; padding-bottom: 10px; border-bottom: 2px solid #3498db; }
p { margin-bottom: 16px; max-width: 900px; }
table { border-collapse: collapse; background: white; border-radius: 8px;
        overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1); margin-bottom: 20px; }
th, td { padding: 8px 12px; text-align: right; border-bottom: 1px solid #eee; }
th { background: #2c3e50; color: white; font-weight: 600; }
td:first-child, th:first-child { text-align: left; }
.chart-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(380px, 1fr));
              gap: 20px; margin-bottom: 20px; }
.chart-cell { background: white; border-radius: 8px; padding: 12px;
              box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
.chart-cell h3 { font-size: 0.95em; color: #2c3e50; margin-bottom: 8px; }
.chart-wrapper { position: relative; height: 300px; }
.heatmap td { text-align: center; font-size: 0.8em; min-width: 52px; }
.heatmap th { font-size: 0.75em; }
.notes { color: #666; font-size: 0.9em; }
</style>
</head>
<body>
`)
}

func (d *Document) writeOverview(b *strings.Builder) {
	b.WriteString(`<div class="section"><h2>Overview</h2>` + "\n")
	fmt.Fprintf(b, "<p>%s</p>\n", esc(overviewText(d.Rows, d.Cols)))
	b.WriteString("</div>\n")
}

func (d *Document) writeSummaryTable(b *strings.Builder) {
	if len(d.Summaries) == 0 {
		return
	}
	b.WriteString(`<div class="section"><h2>Summary statistics</h2>` + "\n<table>\n")
	b.WriteString("<tr><th>column</th><th>count</th><th>mean</th><th>std</th><th>min</th><th>25%</th><th>50%</th><th>75%</th><th>max</th></tr>\n")
	for _, s := range d.Summaries {
		fmt.Fprintf(b, "<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			esc(s.Column), s.Count, num(s.Mean), num(s.Std), num(s.Min), num(s.Q1), num(s.Median), num(s.Q3), num(s.Max))
	}
	b.WriteString("</table>\n</div>\n")
}

func (d *Document) writeSampleRows(b *strings.Builder) {
	if len(d.SampleRows) == 0 {
		return
	}
	b.WriteString(`<div class="section"><h2>Sample rows</h2>` + "\n<table>\n<tr>")
	for _, h := range d.SampleHeader {
		fmt.Fprintf(b, "<th>%s</th>", esc(h))
	}
	b.WriteString("</tr>\n")
	for _, row := range d.SampleRows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(b, "<td>%s</td>", esc(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n</div>\n")
}

func (d *Document) writeCorrelation(b *strings.Builder) {
	if d.Corr == nil {
		return
	}
	b.WriteString(`<div class="section"><h2>Correlation matrix</h2>` + "\n")
	fmt.Fprintf(b, "<p>%s</p>\n", esc(correlationText(d.TopPairs)))
	b.WriteString(`<table class="heatmap">` + "\n<tr><th></th>")
	for _, c := range d.Corr.Columns {
		fmt.Fprintf(b, "<th>%s</th>", esc(c))
	}
	b.WriteString("</tr>\n")
	for i, row := range d.Corr.Values {
		fmt.Fprintf(b, "<tr><th>%s</th>", esc(d.Corr.Columns[i]))
		for _, r := range row {
			if math.IsNaN(r) {
				b.WriteString(`<td style="background:#ecf0f1;color:#7f8c8d">NaN</td>`)
				continue
			}
			fmt.Fprintf(b, `<td style="background:%s">%.2f</td>`, heatColor(r), r)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n</div>\n")
}

func (d *Document) writeRegression(b *strings.Builder) {
	if len(d.Models) == 0 {
		return
	}
	b.WriteString(`<div class="section"><h2>Linear models</h2>` + "\n")
	fmt.Fprintf(b, "<p>%s</p>\n", esc(regressionText(d.Models)))
	for i, m := range d.Models {
		fmt.Fprintf(b, "<h3>Model %d: %d predictor(s), R&sup2; = %.3f</h3>\n<table>\n", i+1, len(m.Predictors), m.R2)
		b.WriteString("<tr><th>term</th><th>coefficient</th></tr>\n")
		fmt.Fprintf(b, "<tr><td>(intercept)</td><td>%s</td></tr>\n", num(m.Intercept))
		for j, p := range m.Predictors {
			fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td></tr>\n", esc(p), num(m.Coefficients[j]))
		}
		b.WriteString("</table>\n")
	}
	b.WriteString("</div>\n")
}

func (d *Document) writeNotes(b *strings.Builder) {
	if len(d.Notes) == 0 {
		return
	}
	b.WriteString(`<div class="section"><h2>Notes</h2><ul class="notes">` + "\n")
	for _, n := range d.Notes {
		fmt.Fprintf(b, "<li>%s</li>\n", esc(n))
	}
	b.WriteString("</ul></div>\n")
}

// writeChartGrid emits canvas placeholders for a group of charts and returns
// them for script emission at the bottom of the page.
func (d *Document) writeChartGrid(b *strings.Builder, charts []chart.Chart) []chart.Chart {
	if len(charts) == 0 {
		return nil
	}
	b.WriteString(`<div class="chart-grid">` + "\n")
	for _, c := range charts {
		fmt.Fprintf(b, `<div class="chart-cell"><h3>%s</h3><div class="chart-wrapper"><canvas id="%s"></canvas></div></div>`+"\n",
			esc(c.Title), esc(c.ID))
	}
	b.WriteString("</div>\n")
	return charts
}

func writeChartScripts(b *strings.Builder, charts []chart.Chart) error {
	if len(charts) == 0 {
		return nil
	}
	b.WriteString("<script>\n")
	for _, c := range charts {
		cfg, err := c.ConfigJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "new Chart(document.getElementById(%q), %s);\n", c.ID, cfg)
	}
	b.WriteString("</script>\n")
	return nil
}

// heatColor maps r in [-1,1] onto a blue-white-red diverging background.
func heatColor(r float64) string {
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	if r >= 0 {
		return fmt.Sprintf("rgba(192,57,43,%.2f)", 0.05+0.75*r)
	}
	return fmt.Sprintf("rgba(41,128,185,%.2f)", 0.05-0.75*r)
}

func esc(s string) string { return html.EscapeString(s) }

func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4g", v)
}
