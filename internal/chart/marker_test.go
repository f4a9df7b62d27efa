package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakePointsTableShapeMismatch(t *testing.T) {
	_, err := MakePointsTable(
		[]float64{1, 2},
		[]float64{1},
		[]string{"a", "b"},
		[]float64{1, 1},
		testContext())
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMarkerWindow(t *testing.T) {
	ctx := testContext() // mjd 60000
	markers := []Marker{
		NewMarker(10, -20, "always", 5),
		{RA: 30, Decl: -40, Name: "windowed", GlyphSize: 5,
			MinMJD: 59999.5, MaxMJD: 60000.5},
	}

	tab, err := MakeMarkerTable(markers, ctx)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, tab.Float(ColInWindow))

	// Past the window's end only the unbounded marker stays visible.
	ctx2 := ctx
	ctx2.MJD = 60000.9
	Refresh(tab, ctx2)
	require.Equal(t, []float64{1, 0}, tab.Float(ColInWindow))

	ctx3 := ctx
	ctx3.MJD = 59999.1
	Refresh(tab, ctx3)
	require.Equal(t, []float64{1, 0}, tab.Float(ColInWindow))
}

func TestUnwindowedMarkersHaveNoWindowColumns(t *testing.T) {
	tab, err := MakeMarkerTable([]Marker{NewMarker(0, 0, "m", 1)}, testContext())
	require.NoError(t, err)
	require.False(t, tab.HasFloat(ColInWindow))
	require.False(t, tab.HasFloat(ColMinMJD))
}

func TestNorthPoleMarkerFromSouthernSite(t *testing.T) {
	// From a southern site the equal-area view is centered on the south
	// pole and culls the cap around the north pole; the other all-sky
	// projections still show the marker.
	tab, err := MakeMarkerTable([]Marker{NewMarker(0, 90, "polaris-ish", 3)}, testContext())
	require.NoError(t, err)

	require.True(t, math.IsNaN(tab.Float(ColXLaea)[0]))
	require.True(t, math.IsNaN(tab.Float(ColYLaea)[0]))
	require.False(t, math.IsNaN(tab.Float(ColXMoll)[0]))
	require.False(t, math.IsNaN(tab.Float(ColRA)[0]))
}

func TestMakePatchesTable(t *testing.T) {
	ra := [][]float64{{10, 12, 12, 10}, {20, 22, 22, 20}}
	decl := [][]float64{{-30, -30, -28, -28}, {-40, -40, -38, -38}}

	tab, err := MakePatchesTable(ra, decl, testContext())
	require.NoError(t, err)
	require.Equal(t, 2, tab.Rows())
	require.Len(t, tab.List(ColXMoll), 2)
	require.Len(t, tab.List(ColXMoll)[0], 4)
}

func TestMakePatchesTableErrors(t *testing.T) {
	_, err := MakePatchesTable(
		[][]float64{{1, 2, 3}, {1, 2, 3, 4}},
		[][]float64{{0, 0, 0}, {0, 0, 0, 0}},
		testContext())
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = MakePatchesTable(nil, nil, testContext())
	require.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestSolarSystemTableTracksTime(t *testing.T) {
	ctx := testContext()
	tab := MakeSolarSystemTable(ctx)
	require.Equal(t, []string{"sun", "moon"}, tab.Labels(ColName))

	sunRA := tab.Float(ColRA)[0]
	moonRA := tab.Float(ColRA)[1]

	ctx2 := ctx
	ctx2.MJD += 1
	Refresh(tab, ctx2)

	// The sun moves about a degree per day, the moon about thirteen.
	require.Greater(t, math.Abs(sunRA-tab.Float(ColRA)[0]), 0.5)
	require.Greater(t, math.Abs(moonRA-tab.Float(ColRA)[1]), 5.0)
}
