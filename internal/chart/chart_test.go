package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"asciisky/internal/healpix"
	"asciisky/internal/skyproj"
	"asciisky/internal/sphere"
)

func testContext() skyproj.Context {
	return skyproj.NewContext(60000.0, sphere.LSST)
}

// requireSameFloats compares two columns treating NaN as equal to NaN.
func requireSameFloats(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %v", i, got[i])
			continue
		}
		require.InDelta(t, want[i], got[i], tol, "index %d", i)
	}
}

func requireSameLists(t *testing.T, want, got [][]float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		requireSameFloats(t, want[i], got[i], tol)
	}
}

func TestTableColumnShapeChecks(t *testing.T) {
	tab := NewTable(3)
	err := tab.SetFloat("v", []float64{1, 2})
	require.ErrorIs(t, err, ErrShapeMismatch)
	err = tab.SetList("l", [][]float64{{1}, {2}})
	require.ErrorIs(t, err, ErrShapeMismatch)
	err = tab.SetLabels("s", []string{"a"})
	require.ErrorIs(t, err, ErrShapeMismatch)

	require.NoError(t, tab.SetFloat("v", []float64{1, 2, 3}))
	require.Equal(t, []float64{1, 2, 3}, tab.Float("v"))
	require.True(t, tab.HasFloat("v"))
	require.Nil(t, tab.Float("missing"))
}

func TestMakeHealpixTableSinglePixel(t *testing.T) {
	nside := 8
	values := make([]float64, healpix.Npix(nside))
	for i := range values {
		values[i] = math.NaN()
	}
	values[100] = 3.5

	ht, err := MakeHealpixTable(values, nside, 2, testContext())
	require.NoError(t, err)
	require.Equal(t, 1, ht.Rows())
	require.Equal(t, nside, ht.Nside)

	require.Equal(t, []float64{100}, ht.Float(ColHpid))
	require.Equal(t, []float64{3.5}, ht.Float(ColValue))

	row, ok := ht.RowOf(100)
	require.True(t, ok)
	require.Equal(t, 0, row)
	_, ok = ht.RowOf(101)
	require.False(t, ok)

	wantRA, wantDecl := healpix.PixToAng(nside, 100, false)
	require.InDelta(t, wantRA, ht.Float(ColCenterRA)[0], 1e-12)
	require.InDelta(t, wantDecl, ht.Float(ColCenterDecl)[0], 1e-12)

	for _, col := range []string{ColRA, ColDecl, ColXHp, ColYHp, ColZHp,
		ColXOrth, ColYOrth, ColZOrth, ColXLaea, ColYLaea,
		ColXMoll, ColYMoll, ColXHz, ColYHz} {
		require.Len(t, ht.List(col), 1, "column %s", col)
		require.Len(t, ht.List(col)[0], 8, "column %s", col)
	}
}

func TestMakeHealpixTableRegrids(t *testing.T) {
	values := make([]float64, healpix.Npix(2))
	for i := range values {
		values[i] = 1
	}
	ht, err := MakeHealpixTable(values, 4, 1, testContext())
	require.NoError(t, err)
	require.Equal(t, healpix.Npix(4), ht.Rows())
	for _, v := range ht.Float(ColValue) {
		require.Equal(t, 1.0, v)
	}
}

func TestMakeHealpixTableErrors(t *testing.T) {
	_, err := MakeHealpixTable(make([]float64, 100), 8, 1, testContext())
	require.ErrorIs(t, err, ErrShapeMismatch)

	values := make([]float64, healpix.Npix(2))
	for i := range values {
		values[i] = math.NaN()
	}
	_, err = MakeHealpixTable(values, 2, 1, testContext())
	require.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestMakeHealpixTableIdempotent(t *testing.T) {
	values := make([]float64, healpix.Npix(4))
	for i := range values {
		values[i] = float64(i % 7)
	}
	ctx := testContext()

	a, err := MakeHealpixTable(values, 4, 1, ctx)
	require.NoError(t, err)
	b, err := MakeHealpixTable(values, 4, 1, ctx)
	require.NoError(t, err)

	requireSameLists(t, a.List(ColXOrth), b.List(ColXOrth), 0)
	requireSameLists(t, a.List(ColXMoll), b.List(ColXMoll), 0)
	requireSameFloats(t, a.Float(ColValue), b.Float(ColValue), 0)
}

func TestMakeSparseHealpixTable(t *testing.T) {
	m := healpix.NewSparseMap(4)
	m.Set(10, 1.5)
	m.Set(11, 2.5)
	m.Set(12, math.NaN())

	ht, err := MakeSparseHealpixTable(m, 4, 1, testContext())
	require.NoError(t, err)
	require.Equal(t, 2, ht.Rows())
	require.Equal(t, []float64{10, 11}, ht.Float(ColHpid))
}

func TestAttachFloat(t *testing.T) {
	nside := 2
	values := make([]float64, healpix.Npix(nside))
	for i := range values {
		values[i] = 1
	}
	ht, err := MakeHealpixTable(values, nside, 1, testContext())
	require.NoError(t, err)

	ht.AttachFloat("extra", map[int]float64{0: 9, 5: 7})
	extra := ht.Float("extra")
	require.Equal(t, 9.0, extra[0])
	require.Equal(t, 7.0, extra[5])
	require.True(t, math.IsNaN(extra[1]))
}

func TestGraticuleBreakCount(t *testing.T) {
	spec := DefaultGraticuleSpec()
	tab := MakeGraticulePoints(spec, testContext())

	// 9 declination lines and 13 RA lines, one break row per line.
	require.Equal(t, 22, CountBreaks(tab))

	// Break rows are NaN in every projected column too.
	for row := 0; row < tab.Rows(); row++ {
		if !tab.IsBreak(row) {
			continue
		}
		for _, col := range []string{ColXOrth, ColXLaea, ColXMoll, ColXHz} {
			require.True(t, math.IsNaN(tab.Float(col)[row]), "col %s row %d", col, row)
		}
	}
}

func TestGraticuleEndsWithBreak(t *testing.T) {
	tab := MakeGraticulePoints(DefaultGraticuleSpec(), testContext())
	require.True(t, tab.IsBreak(tab.Rows()-1))
	require.False(t, tab.IsBreak(0))
}

func TestHorizonGraticuleRebuilds(t *testing.T) {
	ctx1 := testContext()
	ctx2 := ctx1
	ctx2.MJD += 0.25

	spec := DefaultHorizonGraticuleSpec()
	tab := MakeHorizonGraticulePoints(spec, ctx1)
	Refresh(tab, ctx2)

	fresh := MakeHorizonGraticulePoints(spec, ctx2)
	require.Equal(t, fresh.Rows(), tab.Rows())
	requireSameFloats(t, fresh.Float(ColRA), tab.Float(ColRA), 1e-9)
	requireSameFloats(t, fresh.Float(ColAlt), tab.Float(ColAlt), 1e-9)
	requireSameFloats(t, fresh.Float(ColXOrth), tab.Float(ColXOrth), 1e-9)
}

func TestHorizonCircleStaysOnHorizon(t *testing.T) {
	ctx := testContext()
	tab := MakeHorizonCirclePoints(90, 0, 90, 0, 360, 1, ctx)

	require.Equal(t, 361, tab.Rows())
	for _, alt := range tab.Float(ColAlt) {
		require.InDelta(t, 0, alt, 1e-6)
	}

	// Rebuilding for a later time keeps it on the horizon.
	ctx2 := ctx
	ctx2.MJD += 0.3
	Refresh(tab, ctx2)
	for _, alt := range tab.Float(ColAlt) {
		require.InDelta(t, 0, alt, 1e-6)
	}
}

func TestEclipticCircle(t *testing.T) {
	tab := MakeEclipticPoints(testContext())
	ra := tab.Float(ColRA)
	decl := tab.Float(ColDecl)
	for i := range ra {
		sep := sphere.AngularSeparation(ra[i], decl[i], eclipticPoleRA, eclipticPoleDecl)
		require.InDelta(t, 90, sep, 1e-6, "point %d", i)
	}
}

func TestCircleBearings(t *testing.T) {
	tab := MakeCirclePoints(100, -45, 30, 0, 90, 30, testContext())
	require.Equal(t, []float64{0, 30, 60, 90}, tab.Float(ColBearing))
}
