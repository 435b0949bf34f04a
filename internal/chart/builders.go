package chart

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// jitterSeed fixes the jitter stream so repeated builds of the same chart
// produce identical configs.
const jitterSeed = 1599

// HistogramOptions tunes a univariate histogram.
type HistogramOptions struct {
	Bins int     // number of bins; <= 0 falls back to 20
	LogY bool    // log-scale the count axis for right-skewed columns
	XMax float64 // drop values above this cap; 0 means no cap
}

// Histogram renders one attribute's distribution as a bar chart.
func Histogram(column string, values []float64, opt HistogramOptions) Chart {
	bins := opt.Bins
	if bins <= 0 {
		bins = 20
	}
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if opt.XMax > 0 && v > opt.XMax {
			continue
		}
		kept = append(kept, v)
	}
	sort.Float64s(kept)

	labels := make([]string, bins)
	counts := make([]float64, bins)
	if len(kept) > 0 {
		lo := kept[0]
		hi := kept[len(kept)-1]
		if hi == lo {
			hi = lo + 1
		}
		dividers := make([]float64, bins+1)
		floats.Span(dividers, lo, hi)
		// Nudge the last divider so the max value lands in the final bin.
		dividers[bins] = math.Nextafter(hi, math.Inf(1))
		counts = stat.Histogram(nil, dividers, kept, nil)
		for i := 0; i < bins; i++ {
			labels[i] = fmt.Sprintf("%.3g", (dividers[i]+dividers[i+1])/2)
		}
	}

	opts := baseOptions(column, "count")
	if opt.LogY {
		scaleOf(opts, "y")["type"] = "logarithmic"
	}
	title := fmt.Sprintf("Distribution of %s", column)
	if opt.XMax > 0 {
		title = fmt.Sprintf("%s (capped at %.3g)", title, opt.XMax)
	}
	return Chart{
		ID:    "hist-" + slug(column),
		Title: title,
		Config: Config{
			Type: "bar",
			Data: Data{
				Labels: labels,
				Datasets: []Dataset{{
					Label:           column,
					Data:            counts,
					BackgroundColor: translucent(palette[0], 0.7),
					BorderColor:     palette[0],
					BorderWidth:     1,
				}},
			},
			Options: opts,
		},
	}
}

// BoxGroup is one labeled box in a grouped boxplot.
type BoxGroup struct {
	Label string
	Box   Box
}

// BoxByGroup renders an attribute's per-group boxplots, one box per ordinal
// level, using the Chart.js boxplot plugin format.
func BoxByGroup(column, groupName string, groups []BoxGroup) Chart {
	labels := make([]string, len(groups))
	boxes := make([]Box, len(groups))
	colors := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		boxes[i] = g.Box
		colors[i] = translucent(GroupColor(i), 0.6)
	}
	return Chart{
		ID:    "box-" + slug(column),
		Title: fmt.Sprintf("%s by %s", column, groupName),
		Config: Config{
			Type: "boxplot",
			Data: Data{
				Labels: labels,
				Datasets: []Dataset{{
					Label:           column,
					Data:            boxes,
					BackgroundColor: colors,
					BorderColor:     "#2c3e50",
					BorderWidth:     1,
				}},
			},
			Options: baseOptions(groupName, column),
		},
	}
}

// ScatterOptions tunes a bivariate scatter plot.
type ScatterOptions struct {
	// JitterX and JitterY are uniform jitter amplitudes in data units,
	// applied symmetrically around each point.
	JitterX, JitterY float64
	// R, when set, annotates the title with the Pearson coefficient.
	R    float64
	HasR bool
}

// Scatter renders one attribute pair as a jittered point cloud.
func Scatter(xName, yName string, xs, ys []float64, opt ScatterOptions) Chart {
	rng := rand.New(rand.NewSource(jitterSeed))
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{
			X: xs[i] + jitter(rng, opt.JitterX),
			Y: ys[i] + jitter(rng, opt.JitterY),
		}
	}
	title := fmt.Sprintf("%s vs %s", yName, xName)
	if opt.HasR {
		title = fmt.Sprintf("%s (r=%.3f)", title, opt.R)
	}
	return Chart{
		ID:    fmt.Sprintf("scatter-%s-%s", slug(xName), slug(yName)),
		Title: title,
		Config: Config{
			Type: "scatter",
			Data: Data{
				Datasets: []Dataset{{
					Label:           title,
					Data:            points,
					BackgroundColor: translucent(palette[0], 0.35),
					PointRadius:     2.5,
				}},
			},
			Options: baseOptions(xName, yName),
		},
	}
}

// ScatterGroup is one colored point series in a grouped scatter.
type ScatterGroup struct {
	Label  string
	Color  string
	Points []Point
}

// ScatterGrouped renders an attribute pair with a third variable as color:
// one dataset per group, legend shown.
func ScatterGrouped(xName, yName, groupName string, groups []ScatterGroup) Chart {
	datasets := make([]Dataset, len(groups))
	for i, g := range groups {
		datasets[i] = Dataset{
			Label:           g.Label,
			Data:            g.Points,
			BackgroundColor: translucent(g.Color, 0.5),
			PointRadius:     2.5,
		}
	}
	opts := baseOptions(xName, yName)
	showLegend(opts)
	return Chart{
		ID:    fmt.Sprintf("scatter-%s-%s-by-%s", slug(xName), slug(yName), slug(groupName)),
		Title: fmt.Sprintf("%s vs %s by %s", yName, xName, groupName),
		Config: Config{
			Type:    "scatter",
			Data:    Data{Datasets: datasets},
			Options: opts,
		},
	}
}

func jitter(rng *rand.Rand, amplitude float64) float64 {
	if amplitude <= 0 {
		return 0
	}
	return (rng.Float64() - 0.5) * 2 * amplitude
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
