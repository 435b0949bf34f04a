package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Bucket is one equal-frequency quartile bin over a column's observed range.
type Bucket struct {
	Label  string
	Lo, Hi float64
}

// Quartiles is a quartile bucketing of a numeric column: four buckets with
// non-decreasing bounds covering [min, max], plus a per-row bin assignment.
// Boundary values fall into the lower bucket.
type Quartiles struct {
	Column  string
	Bounds  [3]float64 // q1, median, q3
	Buckets [4]Bucket
	Assign  []int // bucket index per input row
}

// QuartileBuckets partitions values into 4 equal-frequency bins named after
// the column actually binned.
func QuartileBuckets(column string, values []float64) (*Quartiles, error) {
	if len(values) < 4 {
		return nil, fmt.Errorf("quartile buckets for %q: need at least 4 values, have %d", column, len(values))
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q := &Quartiles{Column: column}
	q.Bounds[0] = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q.Bounds[1] = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	q.Bounds[2] = stat.Quantile(0.75, stat.LinInterp, sorted, nil)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	edges := []float64{lo, q.Bounds[0], q.Bounds[1], q.Bounds[2], hi}
	for i := 0; i < 4; i++ {
		q.Buckets[i] = Bucket{
			Label: fmt.Sprintf("%s Q%d", column, i+1),
			Lo:    edges[i],
			Hi:    edges[i+1],
		}
	}

	q.Assign = make([]int, len(values))
	for i, v := range values {
		switch {
		case v <= q.Bounds[0]:
			q.Assign[i] = 0
		case v <= q.Bounds[1]:
			q.Assign[i] = 1
		case v <= q.Bounds[2]:
			q.Assign[i] = 2
		default:
			q.Assign[i] = 3
		}
	}
	return q, nil
}
