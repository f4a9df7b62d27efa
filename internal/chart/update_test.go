package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"asciisky/internal/healpix"
)

func TestRefreshMatchesRebuild(t *testing.T) {
	values := make([]float64, healpix.Npix(4))
	for i := range values {
		values[i] = float64(i % 5)
	}

	ctx1 := testContext()
	ctx2 := ctx1
	ctx2.MJD += 0.3
	ctx2.CenterAltDeg = 45
	ctx2.CenterAzDeg = 30

	refreshed, err := MakeHealpixTable(values, 4, 1, ctx1)
	require.NoError(t, err)
	Refresh(refreshed.Table, ctx2)

	fresh, err := MakeHealpixTable(values, 4, 1, ctx2)
	require.NoError(t, err)

	requireSameLists(t, fresh.List(ColXOrth), refreshed.List(ColXOrth), 1e-9)
	requireSameLists(t, fresh.List(ColYOrth), refreshed.List(ColYOrth), 1e-9)
	requireSameLists(t, fresh.List(ColZOrth), refreshed.List(ColZOrth), 1e-9)
	requireSameLists(t, fresh.List(ColXHz), refreshed.List(ColXHz), 1e-9)
	requireSameLists(t, fresh.List(ColYHz), refreshed.List(ColYHz), 1e-9)
}

func TestRefreshKeepsTimeIndependentColumns(t *testing.T) {
	values := make([]float64, healpix.Npix(2))
	for i := range values {
		values[i] = 1
	}

	ctx := testContext()
	ht, err := MakeHealpixTable(values, 2, 1, ctx)
	require.NoError(t, err)

	before := func(col string) [][]float64 {
		rows := ht.List(col)
		out := make([][]float64, len(rows))
		for i, r := range rows {
			out[i] = append([]float64(nil), r...)
		}
		return out
	}
	ra := before(ColRA)
	xHp := before(ColXHp)
	laea := before(ColXLaea)
	moll := before(ColXMoll)

	ctx2 := ctx
	ctx2.MJD += 0.5
	Refresh(ht.Table, ctx2)

	// The stored sphere geometry and the time-independent projections
	// survive the update untouched.
	requireSameLists(t, ra, ht.List(ColRA), 0)
	requireSameLists(t, xHp, ht.List(ColXHp), 0)
	requireSameLists(t, laea, ht.List(ColXLaea), 0)
	requireSameLists(t, moll, ht.List(ColXMoll), 0)
}

func TestRefreshScalarStream(t *testing.T) {
	ctx1 := testContext()
	ctx2 := ctx1
	ctx2.MJD += 0.2

	refreshed := MakeGraticulePoints(DefaultGraticuleSpec(), ctx1)
	Refresh(refreshed, ctx2)

	fresh := MakeGraticulePoints(DefaultGraticuleSpec(), ctx2)
	requireSameFloats(t, fresh.Float(ColXOrth), refreshed.Float(ColXOrth), 1e-9)
	requireSameFloats(t, fresh.Float(ColXHz), refreshed.Float(ColXHz), 1e-9)
	requireSameFloats(t, fresh.Float(ColXMoll), refreshed.Float(ColXMoll), 0)
}

func TestClampContext(t *testing.T) {
	b := DefaultControlBounds(60000)

	ctx := testContext()
	ctx.CenterAltDeg = 300
	ctx.CenterAzDeg = -200
	ctx.MJD = 70000
	err := ClampContext(&ctx, b)
	require.ErrorIs(t, err, ErrOutOfBoundsControl)
	require.Equal(t, 90.0, ctx.CenterAltDeg)
	require.Equal(t, -90.0, ctx.CenterAzDeg)
	require.Equal(t, 60001.0, ctx.MJD)

	ok := testContext()
	ok.CenterAltDeg = 45
	require.NoError(t, ClampContext(&ok, b))
	require.Equal(t, 45.0, ok.CenterAltDeg)
}

func TestClampedContextProducesFiniteGeometry(t *testing.T) {
	values := make([]float64, healpix.Npix(2))
	for i := range values {
		values[i] = 1
	}

	ctx := testContext()
	ctx.CenterAltDeg = 500
	err := ClampContext(&ctx, DefaultControlBounds(testContext().MJD))
	require.ErrorIs(t, err, ErrOutOfBoundsControl)

	ht, err := MakeHealpixTable(values, 2, 1, ctx)
	require.NoError(t, err)
	finite := 0
	for _, row := range ht.List(ColXOrth) {
		for _, v := range row {
			if !math.IsNaN(v) {
				finite++
			}
		}
	}
	require.Greater(t, finite, 0)
}
