package report

import (
	"fmt"
	"strings"

	"github.com/CellarBytes/vinoscope-cli/internal/regress"
	"github.com/CellarBytes/vinoscope-cli/internal/stats"
)

func overviewText(rows, cols int) string {
	return fmt.Sprintf("The dataset holds %d red-wine samples described by %d columns: "+
		"eleven continuous physicochemical measurements and an ordinal sensory quality "+
		"score. Quality is treated as an ordered category for the visual sections and "+
		"coerced back to a number for the linear models at the end of this report.",
		rows, cols)
}

func univariateText() string {
	return "One histogram per attribute. Several columns are strongly right-skewed " +
		"(residual sugar and chlorides in particular), so those axes are log-scaled " +
		"or capped to keep the bulk of the distribution readable."
}

func boxplotText() string {
	return "Each attribute split by quality score. Level-to-level shifts of the " +
		"boxes hint at which measurements move with perceived quality; whiskers " +
		"follow the usual 1.5 IQR rule with outliers drawn individually."
}

func correlationText(top []stats.Pair) string {
	s := "Pearson correlation over the eleven input attributes. " +
		"Red cells are positive, blue negative; the diagonal is 1 by construction."
	if len(top) > 0 {
		p := top[0]
		s += fmt.Sprintf(" The strongest pairing is %s with %s (r=%.2f).", p.A, p.B, p.R)
	}
	return s
}

func scatterText(top []stats.Pair) string {
	if len(top) == 0 {
		return "Scatter plots for the most correlated attribute pairs."
	}
	names := make([]string, 0, len(top))
	for _, p := range top {
		names = append(names, fmt.Sprintf("%s/%s", p.A, p.B))
	}
	return fmt.Sprintf("Jittered scatter plots for the top pairs by |r|: %s. "+
		"The Pearson coefficient is printed in each title.", strings.Join(names, ", "))
}

func multivariateText() string {
	return "Attribute pairs with a third variable as color: first the quality score " +
		"itself, then a quartile-bucketed attribute. Buckets are equal-frequency and " +
		"named after the attribute actually binned."
}

func regressionText(models []*regress.Model) string {
	if len(models) == 0 {
		return ""
	}
	last := models[len(models)-1]
	s := fmt.Sprintf("Three nested least-squares fits of quality on growing predictor "+
		"sets. Adding predictors can only raise R-squared; the full model with %d "+
		"attributes explains %.1f%% of the variance in quality",
		len(last.Predictors), 100*last.R2)
	if len(models) > 1 {
		s += fmt.Sprintf(", up from %.1f%% with %d", 100*models[0].R2, len(models[0].Predictors))
	}
	return s + ". Ordinal quality makes a linear fit a coarse instrument, but the nesting shows how much each attribute block buys."
}
