package sphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Resolution is the smallest angle difference (in the trig domain)
// treated as distinct from zero. Trig on angles that should be exactly
// 90 degrees lands slightly above or below the axis depending on
// rounding, which draws horizon circles with irregular gaps; comparing
// against Resolution instead of 0 keeps the rendering consistent.
const Resolution = 1e-15

// Almost90 is a latitude-like angle in degrees just shy of 90, used in
// place of exact 90 to stay off the pole singularities.
var Almost90 = (math.Acos(0) - 2*Resolution) * 180 / math.Pi

// Degrees per sidereal day of Earth rotation.
const siderealRate = 360.9856405809225

// Vec is a point on (or direction from the center of) the unit sphere.
type Vec struct {
	X, Y, Z float64
}

// AngToVec converts equatorial coordinates in degrees to a unit vector.
// RA=0, Dec=0 is +x; RA=90, Dec=0 is +y; Dec=90 is +z.
func AngToVec(raDeg, decDeg float64) Vec {
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180
	return Vec{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// VecToAng converts a unit vector back to equatorial coordinates in
// degrees, with RA in [0, 360).
func VecToAng(v Vec) (raDeg, decDeg float64) {
	ra := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if ra < 0 {
		ra += 360
	}
	dec := math.Asin(math.Max(-1, math.Min(1, v.Z))) * 180 / math.Pi
	return ra, dec
}

// RotateCart rotates each vector in vs about the axis (ux, uy, uz) by
// angleDeg degrees, right-handed. The result replaces vs in place.
func RotateCart(ux, uy, uz, angleDeg float64, vs []Vec) {
	rot := r3.NewRotation(angleDeg*math.Pi/180, r3.Vec{X: ux, Y: uy, Z: uz})
	for i, v := range vs {
		r := rot.Rotate(r3.Vec{X: v.X, Y: v.Y, Z: v.Z})
		vs[i] = Vec{X: r.X, Y: r.Y, Z: r.Z}
	}
}

// RotateOne rotates a single vector about the given axis.
func RotateOne(ux, uy, uz, angleDeg float64, v Vec) Vec {
	vs := []Vec{v}
	RotateCart(ux, uy, uz, angleDeg, vs)
	return vs[0]
}

// OffsetSepBear walks from a starting point a given angular separation
// along a given bearing (east of north). All arguments and results are
// in degrees.
func OffsetSepBear(raDeg, decDeg, sepDeg, bearDeg float64) (outRa, outDec float64) {
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180
	sep := sepDeg * math.Pi / 180
	bear := bearDeg * math.Pi / 180

	sinDec := math.Sin(dec)*math.Cos(sep) + math.Cos(dec)*math.Sin(sep)*math.Cos(bear)
	sinDec = math.Max(-1, math.Min(1, sinDec))
	newDec := math.Asin(sinDec)
	dRa := math.Atan2(
		math.Sin(bear)*math.Sin(sep)*math.Cos(dec),
		math.Cos(sep)-math.Sin(dec)*sinDec,
	)

	outRa = math.Mod((ra+dRa)*180/math.Pi, 360)
	if outRa < 0 {
		outRa += 360
	}
	outDec = newDec * 180 / math.Pi
	return outRa, outDec
}

// AngularSeparation returns the angle in degrees between two points
// given in equatorial degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	a := AngToVec(ra1, dec1)
	b := AngToVec(ra2, dec2)
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z
	return math.Acos(math.Max(-1, math.Min(1, dot))) * 180 / math.Pi
}
