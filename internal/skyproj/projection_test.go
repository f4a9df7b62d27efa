package skyproj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"asciisky/internal/sphere"
)

func testContext() Context {
	return NewContext(60000.2, sphere.LSST)
}

func TestOrthographicZenith(t *testing.T) {
	ctx := testContext()
	lst := ctx.LST()

	x, y, z := OrthographicAng([]float64{lst}, []float64{ctx.Site.LatitudeDeg}, ctx)
	require.InDelta(t, 0, x[0], 1e-9)
	require.InDelta(t, 0, y[0], 1e-9)
	require.InDelta(t, -1, z[0], 1e-9)
}

func TestOrthographicCullsFarSide(t *testing.T) {
	ctx := testContext()
	lst := ctx.LST()

	// The nadir point is behind the visible face.
	x, y, z := OrthographicAng(
		[]float64{math.Mod(lst+180, 360)},
		[]float64{-ctx.Site.LatitudeDeg}, ctx)
	require.True(t, math.IsNaN(x[0]))
	require.True(t, math.IsNaN(y[0]))
	require.True(t, math.IsNaN(z[0]))
}

func TestOrthographicInsideUnitDisc(t *testing.T) {
	ctx := testContext()
	var ra, dec []float64
	for r := 0.0; r < 360; r += 15 {
		for d := -85.0; d <= 85; d += 17 {
			ra = append(ra, r)
			dec = append(dec, d)
		}
	}
	x, y, _ := OrthographicXYZ(vecsOf(ra, dec), ctx)
	visible := 0
	for i := range x {
		if math.IsNaN(x[i]) {
			continue
		}
		visible++
		require.LessOrEqual(t, x[i]*x[i]+y[i]*y[i], 1+1e-9)
	}
	// Roughly half the sphere faces the viewer.
	require.Greater(t, visible, len(x)/4)
	require.Less(t, visible, 3*len(x)/4)
}

func TestOrthographicRecentering(t *testing.T) {
	ctx := testContext()
	ctx.CenterAltDeg = 40
	ctx.CenterAzDeg = 120

	// The requested center lands on the viewer axis.
	ra, dec := sphere.HorizonToEq(40, 120, ctx.MJD, ctx.Site, ctx.Transform)
	x, y, z := OrthographicAng([]float64{ra}, []float64{dec}, ctx)
	require.InDelta(t, 0, x[0], 1e-9)
	require.InDelta(t, 0, y[0], 1e-9)
	require.InDelta(t, -1, z[0], 1e-9)
}

func TestHorizonXY(t *testing.T) {
	ctx := testContext()
	lst := ctx.LST()

	// Zenith projects to the origin.
	x, y := HorizonXY([]float64{lst}, []float64{ctx.Site.LatitudeDeg}, ctx)
	require.InDelta(t, 0, x[0], 1e-9)
	require.InDelta(t, 0, y[0], 1e-9)

	// The nadir is below the altitude limit.
	x, y = HorizonXY([]float64{math.Mod(lst+180, 360)}, []float64{-ctx.Site.LatitudeDeg}, ctx)
	require.True(t, math.IsNaN(x[0]))
	require.True(t, math.IsNaN(y[0]))
}

func TestHorizonXYNorthOnHorizon(t *testing.T) {
	ctx := testContext()
	ra, dec := sphere.HorizonToEq(0.001, 0, ctx.MJD, ctx.Site, ctx.Transform)
	x, y := HorizonXY([]float64{ra}, []float64{dec}, ctx)
	require.InDelta(t, 0, x[0], 1e-6)
	require.InDelta(t, math.Pi/2, y[0], 1e-4)
}

func TestLaeaPoles(t *testing.T) {
	ctx := testContext() // southern site, south pole centered

	x, y := LaeaXY([]float64{0}, []float64{-90}, ctx)
	require.InDelta(t, 0, x[0], 1e-9)
	require.InDelta(t, 0, y[0], 1e-9)

	// The opposite pole is inside the culled cap.
	x, y = LaeaXY([]float64{0}, []float64{90}, ctx)
	require.True(t, math.IsNaN(x[0]))
	require.True(t, math.IsNaN(y[0]))
}

func TestLaeaEquatorRadius(t *testing.T) {
	ctx := testContext()
	x, y := LaeaXY([]float64{0, 90, 180, 270}, []float64{0, 0, 0, 0}, ctx)
	for i := range x {
		r := math.Sqrt(x[i]*x[i] + y[i]*y[i])
		require.InDelta(t, math.Sqrt2, r, 1e-9, "point %d", i)
	}
	// East appears to the left.
	require.Less(t, x[1], 0.0)
}

func TestLaeaNorthernSite(t *testing.T) {
	ctx := NewContext(60000, sphere.Site{Name: "north", LatitudeDeg: 45, LongitudeDeg: 0})
	x, y := LaeaXY([]float64{10}, []float64{90}, ctx)
	require.InDelta(t, 0, x[0], 1e-9)
	require.InDelta(t, 0, y[0], 1e-9)
	x, _ = LaeaXY([]float64{10}, []float64{-90}, ctx)
	require.True(t, math.IsNaN(x[0]))
}

func TestMollweide(t *testing.T) {
	ctx := testContext()

	x, y := MollweideXY([]float64{0}, []float64{0}, 0, ctx)
	require.InDelta(t, 0, x[0], 1e-9)
	require.InDelta(t, 0, y[0], 1e-9)

	// The poles sit at y = ±sqrt(2).
	_, y = MollweideXY([]float64{123}, []float64{90}, 0, ctx)
	require.InDelta(t, math.Sqrt2, y[0], 1e-6)
	_, y = MollweideXY([]float64{123}, []float64{-90}, 0, ctx)
	require.InDelta(t, -math.Sqrt2, y[0], 1e-6)
}

func TestMollweideSeam(t *testing.T) {
	ctx := testContext()

	x, _ := MollweideXY([]float64{180.5}, []float64{0}, 5, ctx)
	require.True(t, math.IsNaN(x[0]))

	x, _ = MollweideXY([]float64{180.5}, []float64{0}, 0, ctx)
	require.False(t, math.IsNaN(x[0]))
}

func TestNaNPropagation(t *testing.T) {
	ctx := testContext()
	nan := []float64{math.NaN()}

	x, y := HorizonXY(nan, nan, ctx)
	require.True(t, math.IsNaN(x[0]) && math.IsNaN(y[0]))
	x, y = LaeaXY(nan, nan, ctx)
	require.True(t, math.IsNaN(x[0]) && math.IsNaN(y[0]))
	x, y = MollweideXY(nan, nan, 0, ctx)
	require.True(t, math.IsNaN(x[0]) && math.IsNaN(y[0]))
	alt, az := HorizonAltAz(nan, nan, ctx)
	require.True(t, math.IsNaN(alt[0]) && math.IsNaN(az[0]))
}

func vecsOf(ra, dec []float64) []sphere.Vec {
	vs := make([]sphere.Vec, len(ra))
	for i := range ra {
		vs[i] = sphere.AngToVec(ra[i], dec[i])
	}
	return vs
}
