package coefficient

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Axis names one dimension of the residual-resistance grid.
type Axis int

const (
	Slenderness Axis = iota // L / ∇^(1/3)
	Prismatic               // ∇ / (L · A_m)
	Froude                  // v / sqrt(g · L)
)

func (a Axis) String() string {
	switch a {
	case Slenderness:
		return "slenderness"
	case Prismatic:
		return "prismatic coefficient"
	case Froude:
		return "froude number"
	default:
		return "unknown axis"
	}
}

// crScale converts the file's Cr×1000 column to Cr.
const crScale = 1000.0

//go:embed data/cr.txt
var defaultTableData string

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Parse(strings.NewReader(defaultTableData))
})

// Default returns the process-wide table built from the embedded data file.
// It is parsed once on first use and must not be modified.
func Default() *Table {
	t, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("coefficient: embedded table: %v", err))
	}
	return t
}

// Table is a read-only regular grid of residual-resistance coefficients indexed
// by slenderness, prismatic coefficient and Froude number.
type Table struct {
	axes   [3][]float64
	values []float64 // row-major over axes, Froude fastest
}

// Load parses a table file from disk.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coefficient: open table: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads whitespace separated rows of
//
//	slenderness prismatic froude cr×1000
//
// Blank lines and lines starting with '#' are skipped. The rows must cover every
// combination of the distinct axis values, in any order, and each axis needs at
// least two distinct values.
func Parse(r io.Reader) (*Table, error) {
	var (
		rows [][3]float64
		crs  []float64
		sc   = bufio.NewScanner(r)
		ln   int
	)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: want 4 columns, got %d", ErrMalformedTable, ln, len(fields))
		}
		var nums [4]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: line %d: column %d: %q", ErrMalformedTable, ln, i+1, f)
			}
			nums[i] = v
		}
		if nums[3] < 0 {
			return nil, fmt.Errorf("%w: line %d: negative coefficient %g", ErrMalformedTable, ln, nums[3])
		}
		rows = append(rows, [3]float64{nums[0], nums[1], nums[2]})
		crs = append(crs, nums[3]/crScale)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	t := &Table{}
	for a := range t.axes {
		var ax []float64
		for _, rw := range rows {
			ax = append(ax, rw[a])
		}
		slices.Sort(ax)
		ax = slices.Compact(ax)
		if len(ax) < 2 {
			return nil, fmt.Errorf("%w: %s axis needs at least 2 values, got %d", ErrMalformedTable, Axis(a), len(ax))
		}
		t.axes[a] = ax
	}

	n := len(t.axes[0]) * len(t.axes[1]) * len(t.axes[2])
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows for a %dx%dx%d grid", ErrMalformedTable,
			len(rows), len(t.axes[0]), len(t.axes[1]), len(t.axes[2]))
	}

	t.values = make([]float64, n)
	seen := make([]bool, n)
	for i, rw := range rows {
		var idx [3]int
		for a := range idx {
			idx[a], _ = slices.BinarySearch(t.axes[a], rw[a])
		}
		k := t.offset(idx[0], idx[1], idx[2])
		if seen[k] {
			return nil, fmt.Errorf("%w: duplicate point (%g, %g, %g)", ErrMalformedTable, rw[0], rw[1], rw[2])
		}
		seen[k] = true
		t.values[k] = crs[i]
	}
	return t, nil
}

func (t *Table) offset(i, j, k int) int {
	return (i*len(t.axes[1])+j)*len(t.axes[2]) + k
}

// Bounds returns the smallest and largest tabulated value on axis a.
func (t *Table) Bounds(a Axis) (lo, hi float64) {
	ax := t.axes[a]
	return ax[0], ax[len(ax)-1]
}

// Points returns a copy of the tabulated values on axis a.
func (t *Table) Points(a Axis) []float64 {
	return slices.Clone(t.axes[a])
}

// Contains reports whether v lies inside the tabulated range of axis a.
func (t *Table) Contains(a Axis, v float64) bool {
	lo, hi := t.Bounds(a)
	return v >= lo && v <= hi
}

// At returns the tabulated coefficient at grid node (i, j, k).
func (t *Table) At(i, j, k int) float64 {
	return t.values[t.offset(i, j, k)]
}
