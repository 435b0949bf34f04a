package stats

import "sort"

// BoxStats is a five-number boxplot summary with Tukey whiskers: the whisker
// ends sit on the most extreme values within 1.5 IQR of the quartiles, and
// points beyond are outliers.
type BoxStats struct {
	Min      float64 // lower whisker end
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64 // upper whisker end
	Outliers []float64
}

// Box computes boxplot statistics for one group of values.
func Box(values []float64) BoxStats {
	var b BoxStats
	if len(values) == 0 {
		return b
	}
	s := Describe("", values)
	b.Q1, b.Median, b.Q3 = s.Q1, s.Median, s.Q3

	iqr := b.Q3 - b.Q1
	loFence := b.Q1 - 1.5*iqr
	hiFence := b.Q3 + 1.5*iqr

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	b.Min = sorted[len(sorted)-1]
	b.Max = sorted[0]
	for _, v := range sorted {
		if v < loFence || v > hiFence {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b
}

// GroupByQuality splits an attribute column by ordinal score. The scores
// slice is parallel to values; the returned map is keyed by score.
func GroupByQuality(values []float64, scores []int) map[int][]float64 {
	groups := make(map[int][]float64)
	for i, v := range values {
		if i >= len(scores) {
			break
		}
		groups[scores[i]] = append(groups[scores[i]], v)
	}
	return groups
}
