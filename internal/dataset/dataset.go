package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Attributes lists the physicochemical input columns in canonical order.
var Attributes = []string{
	"fixed acidity",
	"volatile acidity",
	"citric acid",
	"residual sugar",
	"chlorides",
	"free sulfur dioxide",
	"total sulfur dioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
}

// QualityColumn is the ordinal output column.
const QualityColumn = "quality"

// ErrUnknownColumn is returned when a referenced column is not in the dataset.
var ErrUnknownColumn = errors.New("unknown column")

// Options controls CSV loading behavior.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects between ',' and ';' from the header line.
	Delimiter rune
	// SampleRows determines how many raw rows to retain for report samples.
	SampleRows int
}

// DefaultOptions returns reasonable defaults for loading the wine dataset.
func DefaultOptions() Options {
	return Options{SampleRows: 5}
}

// Dataset is a loaded-once, read-only table: 11 float64 attribute columns plus
// an integer quality column. Accessors return copies so callers cannot mutate
// the loaded data.
type Dataset struct {
	name    string
	cols    map[string][]float64
	quality []int
	samples [][]string
}

// Load reads a CSV file into a Dataset. An unnamed leading index column is
// discarded. All canonical attribute columns and the quality column must be
// present; any non-numeric cell is fatal.
func Load(path string, opt Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim, err = sniffDelimiter(path)
		if err != nil {
			return nil, err
		}
	}

	r := csv.NewReader(f)
	r.Comma = delim
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("read csv: %s has no data rows", filepath.Base(path))
	}

	records = dropIndexColumn(records)
	for i, h := range records[0] {
		records[0][i] = normalizeHeader(h)
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(map[string]series.Type{QualityColumn: series.Int}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("load records: %w", df.Err)
	}

	have := map[string]bool{}
	for _, n := range df.Names() {
		have[n] = true
	}
	for _, want := range append(append([]string{}, Attributes...), QualityColumn) {
		if !have[want] {
			return nil, fmt.Errorf("load %s: %w: %q", filepath.Base(path), ErrUnknownColumn, want)
		}
	}

	ds := &Dataset{
		name: filepath.Base(path),
		cols: make(map[string][]float64, len(Attributes)),
	}
	for _, name := range Attributes {
		col := df.Col(name)
		if col.Err != nil {
			return nil, fmt.Errorf("column %q: %w", name, col.Err)
		}
		vals := col.Float()
		for i, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("column %q: non-numeric value at row %d", name, i+1)
			}
		}
		ds.cols[name] = vals
	}
	q := df.Col(QualityColumn)
	if q.Err != nil {
		return nil, fmt.Errorf("column %q: %w", QualityColumn, q.Err)
	}
	ds.quality, err = q.Int()
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", QualityColumn, err)
	}
	for i, v := range ds.quality {
		if v < 0 || v > 10 {
			return nil, fmt.Errorf("column %q: score %d at row %d outside [0,10]", QualityColumn, v, i+1)
		}
	}

	sample := opt.SampleRows
	if sample <= 0 {
		sample = DefaultOptions().SampleRows
	}
	if sample > len(records)-1 {
		sample = len(records) - 1
	}
	ds.samples = records[:sample+1] // header plus first rows

	return ds, nil
}

// NumRows reports the row count; constant for the lifetime of the Dataset.
func (d *Dataset) NumRows() int { return len(d.quality) }

// Name reports the base name of the loaded file.
func (d *Dataset) Name() string { return d.name }

// AttributeNames returns the 11 numeric attribute names in canonical order.
func (d *Dataset) AttributeNames() []string {
	out := make([]string, len(Attributes))
	copy(out, Attributes)
	return out
}

// Column returns a copy of the named attribute column.
func (d *Dataset) Column(name string) ([]float64, error) {
	vals, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out, nil
}

// Quality returns a copy of the ordinal quality column.
func (d *Dataset) Quality() []int {
	out := make([]int, len(d.quality))
	copy(out, d.quality)
	return out
}

// QualityAsFloat returns quality coerced back to numeric for regression.
func (d *Dataset) QualityAsFloat() []float64 {
	out := make([]float64, len(d.quality))
	for i, v := range d.quality {
		out[i] = float64(v)
	}
	return out
}

// QualityLevels returns the distinct observed quality scores in ascending order.
func (d *Dataset) QualityLevels() []int {
	seen := map[int]bool{}
	for _, v := range d.quality {
		seen[v] = true
	}
	levels := make([]int, 0, len(seen))
	for v := range seen {
		levels = append(levels, v)
	}
	sort.Ints(levels)
	return levels
}

// Header returns the column names in canonical order, quality last.
func (d *Dataset) Header() []string {
	return append(d.AttributeNames(), QualityColumn)
}

// SampleRows returns up to n retained raw rows (without the header line).
func (d *Dataset) SampleRows(n int) [][]string {
	rows := d.samples
	if len(rows) == 0 {
		return nil
	}
	rows = rows[1:]
	if n > 0 && n < len(rows) {
		rows = rows[:n]
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string{}, r...)
	}
	return out
}

// sniffDelimiter inspects the header line and picks ';' when it dominates ','.
// The UCI wine files ship semicolon-separated; re-exports are usually comma.
func sniffDelimiter(path string) (rune, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("sniff delimiter: %w", err)
	}
	line := string(b)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';', nil
	}
	return ',', nil
}

// dropIndexColumn removes a leading unnamed (or pandas-style "Unnamed: 0")
// index column, if present.
func dropIndexColumn(records [][]string) [][]string {
	if len(records) == 0 || len(records[0]) == 0 {
		return records
	}
	first := strings.TrimSpace(records[0][0])
	if first != "" && !strings.HasPrefix(first, "Unnamed:") {
		return records
	}
	for i, rec := range records {
		if len(rec) > 0 {
			records[i] = rec[1:]
		}
	}
	return records
}

// normalizeHeader maps common header spellings onto the canonical names,
// e.g. "fixed_acidity" -> "fixed acidity".
func normalizeHeader(h string) string {
	s := strings.TrimSpace(h)
	s = strings.ReplaceAll(s, "_", " ")
	if strings.EqualFold(s, "ph") {
		return "pH"
	}
	return strings.ToLower(s)
}
