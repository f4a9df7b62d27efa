package sphere

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngToVecAxes(t *testing.T) {
	v := AngToVec(0, 0)
	require.InDelta(t, 1, v.X, 1e-15)
	require.InDelta(t, 0, v.Y, 1e-15)
	require.InDelta(t, 0, v.Z, 1e-15)

	v = AngToVec(90, 0)
	require.InDelta(t, 0, v.X, 1e-15)
	require.InDelta(t, 1, v.Y, 1e-15)

	v = AngToVec(0, 90)
	require.InDelta(t, 1, v.Z, 1e-15)
}

func TestVecToAngRoundtrip(t *testing.T) {
	for _, ra := range []float64{0, 17.25, 123, 251.5, 359.9} {
		for _, dec := range []float64{-88, -45.5, 0, 33.3, 89} {
			gotRA, gotDec := VecToAng(AngToVec(ra, dec))
			require.InDelta(t, ra, gotRA, 1e-9)
			require.InDelta(t, dec, gotDec, 1e-9)
		}
	}
}

func TestRotateCart(t *testing.T) {
	vs := []Vec{{X: 1, Y: 0, Z: 0}}
	RotateCart(0, 0, 1, 90, vs)
	require.InDelta(t, 0, vs[0].X, 1e-12)
	require.InDelta(t, 1, vs[0].Y, 1e-12)
	require.InDelta(t, 0, vs[0].Z, 1e-12)

	// A full turn is the identity.
	vs = []Vec{{X: 0.2, Y: -0.5, Z: 0.3}}
	RotateCart(1, 1, 1, 360, vs)
	require.InDelta(t, 0.2, vs[0].X, 1e-12)
	require.InDelta(t, -0.5, vs[0].Y, 1e-12)
	require.InDelta(t, 0.3, vs[0].Z, 1e-12)
}

func TestOffsetSepBearPreservesSeparation(t *testing.T) {
	for _, bear := range []float64{0, 45, 90, 135, 180, 270, 315} {
		ra, dec := OffsetSepBear(40, -20, 30, bear)
		require.InDelta(t, 30, AngularSeparation(40, -20, ra, dec), 1e-9,
			"bearing %v", bear)
	}
}

func TestOffsetSepBearDueNorth(t *testing.T) {
	ra, dec := OffsetSepBear(0, 0, 30, 0)
	require.InDelta(t, 0, ra, 1e-9)
	require.InDelta(t, 30, dec, 1e-9)
}

func TestAlmost90(t *testing.T) {
	require.Less(t, Almost90, 90.0)
	require.Greater(t, Almost90, 89.999999)
}

func TestAngularSeparation(t *testing.T) {
	require.InDelta(t, 90, AngularSeparation(0, 0, 90, 0), 1e-12)
	require.InDelta(t, 180, AngularSeparation(0, 0, 180, 0), 1e-6)
	require.InDelta(t, 0, AngularSeparation(123, 45, 123, 45), 1e-12)
}
