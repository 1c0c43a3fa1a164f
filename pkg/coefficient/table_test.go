package coefficient

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2x2x3 grid; Cr×1000 = slenderness + 10*prismatic + 100*froude so every
// multilinear interpolation is exact.
const smallGrid = `
# slenderness prismatic froude cr*1000
4 0.5 0.1 19.0
4 0.5 0.2 29.0
4 0.5 0.3 39.0
4 0.7 0.1 21.0
4 0.7 0.2 31.0
4 0.7 0.3 41.0
8 0.5 0.1 23.0
8 0.5 0.2 33.0
8 0.5 0.3 43.0
8 0.7 0.1 25.0
8 0.7 0.2 35.0
8 0.7 0.3 45.0
`

func linearCr(m, cp, fn float64) float64 {
	return (m + 10*cp + 100*fn) / 1000
}

func mustParse(t *testing.T, src string) *Table {
	t.Helper()
	tbl, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	return tbl
}

func TestParse_SmallGrid(t *testing.T) {
	tbl := mustParse(t, smallGrid)

	assert.Equal(t, []float64{4, 8}, tbl.Points(Slenderness))
	assert.Equal(t, []float64{0.5, 0.7}, tbl.Points(Prismatic))
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, tbl.Points(Froude))

	lo, hi := tbl.Bounds(Froude)
	assert.Equal(t, 0.1, lo)
	assert.Equal(t, 0.3, hi)
	assert.InDelta(t, 0.045, tbl.At(1, 1, 2), 1e-15)
}

func TestParse_RowOrderIrrelevant(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(smallGrid), "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	a := mustParse(t, smallGrid)
	b := mustParse(t, strings.Join(lines, "\n"))
	assert.Equal(t, a.values, b.values)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"wrong_columns": "4 0.5 0.1\n",
		"not_a_number":  "4 0.5 0.1 abc\n8 0.5 0.1 1\n",
		"nan":           "4 0.5 0.1 NaN\n",
		"negative_cr":   "4 0.5 0.1 -1\n",
		"single_value_axis": "4 0.5 0.1 1\n4 0.5 0.2 1\n" +
			"4 0.7 0.1 1\n4 0.7 0.2 1\n",
		"incomplete_grid": strings.Replace(smallGrid, "8 0.7 0.3 45.0\n", "", 1),
		"duplicate_point": strings.Replace(smallGrid, "8 0.7 0.3 45.0", "8 0.7 0.2 45.0", 1),
		"empty":           "# nothing\n\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedTable)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cr.txt")
	require.NoError(t, os.WriteFile(path, []byte(smallGrid), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, tbl.Points(Froude), 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLookup_NodesExact(t *testing.T) {
	tbl := mustParse(t, smallGrid)
	for i, m := range tbl.Points(Slenderness) {
		for j, cp := range tbl.Points(Prismatic) {
			for k, fn := range tbl.Points(Froude) {
				got, err := tbl.Lookup(m, cp, fn)
				require.NoError(t, err)
				assert.Equal(t, tbl.At(i, j, k), got, "node (%g, %g, %g)", m, cp, fn)
			}
		}
	}
}

func TestLookup_Interpolates(t *testing.T) {
	tbl := mustParse(t, smallGrid)
	points := [][3]float64{
		{6, 0.6, 0.15},
		{4, 0.5, 0.25},
		{7.3, 0.52, 0.299},
		{4.1, 0.69, 0.101},
	}
	for _, p := range points {
		got, err := tbl.Lookup(p[0], p[1], p[2])
		require.NoError(t, err)
		assert.InDelta(t, linearCr(p[0], p[1], p[2]), got, 1e-15, "point %v", p)
	}
}

func TestLookup_OutOfRange(t *testing.T) {
	tbl := mustParse(t, smallGrid)

	cases := []struct {
		name string
		pt   [3]float64
		axis Axis
	}{
		{"froude_above", [3]float64{6, 0.6, 0.31}, Froude},
		{"froude_below", [3]float64{6, 0.6, 0.05}, Froude},
		{"slenderness_below", [3]float64{3.9, 0.6, 0.2}, Slenderness},
		{"prismatic_above", [3]float64{6, 0.75, 0.2}, Prismatic},
		{"froude_nan", [3]float64{6, 0.6, math.NaN()}, Froude},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tbl.Lookup(tc.pt[0], tc.pt[1], tc.pt[2])
			require.ErrorIs(t, err, ErrOutOfRange)

			var re *RangeError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tc.axis, re.Axis)
			assert.Contains(t, re.Error(), tc.axis.String())
		})
	}
}

func TestLookupWith_Clamp(t *testing.T) {
	tbl := mustParse(t, smallGrid)

	got, err := tbl.LookupWith(Clamp, 6, 0.6, 0.9)
	require.NoError(t, err)
	assert.InDelta(t, linearCr(6, 0.6, 0.3), got, 1e-15)

	got, err = tbl.LookupWith(Clamp, 2, 0.9, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, linearCr(4, 0.7, 0.1), got, 1e-15)

	_, err = tbl.LookupWith(Clamp, 6, 0.6, math.Inf(1))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestContains(t *testing.T) {
	tbl := mustParse(t, smallGrid)
	assert.True(t, tbl.Contains(Froude, 0.1))
	assert.True(t, tbl.Contains(Froude, 0.3))
	assert.False(t, tbl.Contains(Froude, 0.3000001))
	assert.False(t, tbl.Contains(Slenderness, 3.99))
}

func TestDefault(t *testing.T) {
	tbl := Default()
	require.NotNil(t, tbl)
	assert.Same(t, tbl, Default(), "default table is built once")

	lo, hi := tbl.Bounds(Slenderness)
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 8.0, hi)
	lo, hi = tbl.Bounds(Prismatic)
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 0.8, hi)
	lo, hi = tbl.Bounds(Froude)
	assert.Equal(t, 0.1, lo)
	assert.Equal(t, 0.45, hi)

	cr, err := tbl.Lookup(6.0, 0.6, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.0005648, cr, 1e-15)

	t.Run("non_decreasing_in_froude", func(t *testing.T) {
		for _, m := range []float64{4, 5.25, 6.99, 8} {
			for _, cp := range []float64{0.5, 0.613, 0.8} {
				prev := 0.0
				for fn := 0.10; fn <= 0.45; fn += 0.01 {
					cr, err := tbl.Lookup(m, cp, fn)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, cr, prev, "m=%g cp=%g fn=%g", m, cp, fn)
					prev = cr
				}
			}
		}
	})
}

func TestAxisAndPolicyString(t *testing.T) {
	assert.Equal(t, "froude number", Froude.String())
	assert.Equal(t, "unknown axis", Axis(9).String())
	assert.Equal(t, "reject", Reject.String())
	assert.Equal(t, "clamp", Clamp.String())
}
