package dataset_test

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/CellarBytes/vinoscope-cli/internal/dataset"
)

// writeWineCSV writes a synthetic wine-shaped CSV and returns its path.
func writeWineCSV(t *testing.T, delim string, withIndex bool, rows int) string {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	var b strings.Builder
	header := append(append([]string{}, dataset.Attributes...), dataset.QualityColumn)
	if withIndex {
		b.WriteString(delim)
	}
	b.WriteString(strings.Join(header, delim) + "\n")
	for i := 0; i < rows; i++ {
		q := 3 + i%6
		cols := []string{
			fmt.Sprintf("%.2f", 6+3*rng.Float64()),     // fixed acidity
			fmt.Sprintf("%.3f", 0.2+0.6*rng.Float64()), // volatile acidity
			fmt.Sprintf("%.2f", rng.Float64()),         // citric acid
			fmt.Sprintf("%.1f", 1.5+6*rng.Float64()),   // residual sugar
			fmt.Sprintf("%.3f", 0.04+0.1*rng.Float64()),
			fmt.Sprintf("%.0f", 5+40*rng.Float64()),
			fmt.Sprintf("%.0f", 20+100*rng.Float64()),
			fmt.Sprintf("%.4f", 0.99+0.01*rng.Float64()),
			fmt.Sprintf("%.2f", 2.9+0.8*rng.Float64()),
			fmt.Sprintf("%.2f", 0.4+0.8*rng.Float64()),
			fmt.Sprintf("%.1f", 9+4*rng.Float64()),
			strconv.Itoa(q),
		}
		if withIndex {
			b.WriteString(strconv.Itoa(i) + delim)
		}
		b.WriteString(strings.Join(cols, delim) + "\n")
	}
	path := filepath.Join(t.TempDir(), "wine.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadCommaAndSemicolon(t *testing.T) {
	for _, delim := range []string{",", ";"} {
		path := writeWineCSV(t, delim, false, 24)
		ds, err := dataset.Load(path, dataset.DefaultOptions())
		if err != nil {
			t.Fatalf("load with %q: %v", delim, err)
		}
		if ds.NumRows() != 24 {
			t.Fatalf("rows with %q: got %d, want 24", delim, ds.NumRows())
		}
		if got := len(ds.AttributeNames()); got != 11 {
			t.Fatalf("attributes: got %d, want 11", got)
		}
	}
}

func TestLoadDropsIndexColumn(t *testing.T) {
	path := writeWineCSV(t, ",", true, 12)
	ds, err := dataset.Load(path, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.NumRows() != 12 {
		t.Fatalf("rows: got %d, want 12", ds.NumRows())
	}
	if _, err := ds.Column("fixed acidity"); err != nil {
		t.Fatalf("fixed acidity after index drop: %v", err)
	}
}

func TestLoadNormalizesHeaders(t *testing.T) {
	path := writeWineCSV(t, ",", false, 8)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(b)
	content = strings.Replace(content, "fixed acidity", "Fixed_Acidity", 1)
	content = strings.Replace(content, "pH", "ph", 1)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	ds, err := dataset.Load(path, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, name := range []string{"fixed acidity", "pH"} {
		if _, err := ds.Column(name); err != nil {
			t.Fatalf("column %q: %v", name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.csv"), dataset.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeWineCSV(t, ",", false, 8)
	b, _ := os.ReadFile(path)
	content := strings.Replace(string(b), "alcohol", "booze", 1)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	_, err := dataset.Load(path, dataset.DefaultOptions())
	if !errors.Is(err, dataset.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestLoadRejectsNonNumeric(t *testing.T) {
	path := writeWineCSV(t, ",", false, 8)
	b, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	fields := strings.Split(lines[3], ",")
	fields[4] = "n/a"
	lines[3] = strings.Join(fields, ",")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if _, err := dataset.Load(path, dataset.DefaultOptions()); err == nil {
		t.Fatal("expected error for non-numeric cell")
	}
}

func TestColumnUnknown(t *testing.T) {
	ds := mustLoad(t, writeWineCSV(t, ",", false, 8))
	if _, err := ds.Column("tannins"); !errors.Is(err, dataset.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestQualityIsOrdinal(t *testing.T) {
	ds := mustLoad(t, writeWineCSV(t, ",", false, 30))
	levels := ds.QualityLevels()
	if !reflect.DeepEqual(levels, []int{3, 4, 5, 6, 7, 8}) {
		t.Fatalf("levels: got %v", levels)
	}
	q := ds.Quality()
	qf := ds.QualityAsFloat()
	for i := range q {
		if float64(q[i]) != qf[i] {
			t.Fatalf("numeric coercion mismatch at %d: %d vs %g", i, q[i], qf[i])
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ds := mustLoad(t, writeWineCSV(t, ",", false, 10))
	col, _ := ds.Column("alcohol")
	col[0] = -999
	again, _ := ds.Column("alcohol")
	if again[0] == -999 {
		t.Fatal("Column exposed internal storage")
	}
	q := ds.Quality()
	q[0] = -1
	if ds.Quality()[0] == -1 {
		t.Fatal("Quality exposed internal storage")
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	path := writeWineCSV(t, ";", false, 40)
	a := mustLoad(t, path)
	b := mustLoad(t, path)
	for _, name := range a.AttributeNames() {
		ca, _ := a.Column(name)
		cb, _ := b.Column(name)
		if !reflect.DeepEqual(ca, cb) {
			t.Fatalf("column %q differs between loads", name)
		}
	}
	if !reflect.DeepEqual(a.Quality(), b.Quality()) {
		t.Fatal("quality differs between loads")
	}
}

func TestSampleRows(t *testing.T) {
	ds := mustLoad(t, writeWineCSV(t, ",", false, 10))
	rows := ds.SampleRows(3)
	if len(rows) != 3 {
		t.Fatalf("sample rows: got %d, want 3", len(rows))
	}
	if len(rows[0]) != 12 {
		t.Fatalf("sample width: got %d, want 12", len(rows[0]))
	}
}

// TestRealDataset checks the documented invariants of the UCI file when it is
// available alongside the tests.
func TestRealDataset(t *testing.T) {
	path := filepath.Join("testdata", "winequality-red.csv")
	if _, err := os.Stat(path); err != nil {
		t.Skip("winequality-red.csv not present")
	}
	ds, err := dataset.Load(path, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ds.NumRows() != 1599 {
		t.Fatalf("rows: got %d, want 1599", ds.NumRows())
	}
	for _, q := range ds.Quality() {
		if q < 3 || q > 8 {
			t.Fatalf("quality %d outside observed range [3,8]", q)
		}
	}
	ranges := map[string][2]float64{
		"pH":      {2.5, 4.5},
		"density": {0.98, 1.05},
	}
	for name, r := range ranges {
		col, err := ds.Column(name)
		if err != nil {
			t.Fatalf("column %q: %v", name, err)
		}
		for i, v := range col {
			if v < r[0] || v > r[1] {
				t.Fatalf("%s row %d: %g outside plausible range %v", name, i, v, r)
			}
		}
	}
	citric, _ := ds.Column("citric acid")
	zeros := 0
	for _, v := range citric {
		if v == 0 {
			zeros++
		}
	}
	if zeros != 132 {
		t.Fatalf("zero citric acid rows: got %d, want 132", zeros)
	}
}

func mustLoad(t *testing.T, path string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(path, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return ds
}
