package skyproj

import (
	"math"

	"asciisky/internal/sphere"
)

// OrthographicXYZ converts unit vectors on the celestial sphere to the
// orthographic "armillary" view: the sphere as seen from outside, with
// the point at (CenterAltDeg, CenterAzDeg) toward the viewer and the
// north celestial pole's projection up. +x is to the right (west when
// centered on the zenith), +y up, +z out of the screen behind the
// viewer; points with z above the floating-point resolution are behind
// the sphere's visible face and map to NaN.
//
// The transform is three rotations (align the pole, tilt by the
// site's colatitude, spin by the local sidereal time) plus two more to
// move the requested center to the viewer axis. Both the one-time
// builders and the per-event refresh call this same function.
func OrthographicXYZ(vecs []sphere.Vec, ctx Context) (x, y, z []float64) {
	work := make([]sphere.Vec, len(vecs))
	copy(work, vecs)

	lat := ctx.Site.LatitudeDeg
	lst := ctx.LST()

	// RA=0 to the -y axis, then tilt so the zenith faces the viewer.
	sphere.RotateCart(0, 0, 1, -90, work)
	sphere.RotateCart(1, 0, 0, lat+90, work)

	// The celestial pole after the same two rotations: the spin by
	// sidereal time is about this axis, so it stays put.
	npole := sphere.RotateOne(0, 0, 1, -90, sphere.Vec{X: 0, Y: 0, Z: 1})
	npole = sphere.RotateOne(1, 0, 0, lat+90, npole)
	sphere.RotateCart(npole.X, npole.Y, npole.Z, -lst, work)

	// Spin about the viewer axis until the pole's projection points up.
	orient := math.Atan2(npole.Y, npole.X) * 180 / math.Pi
	sphere.RotateCart(0, 0, 1, 90-orient, work)

	// Bring the requested center to the viewer axis. With the default
	// center (alt 90, az 0) both angles are zero and this is a no-op.
	centerAlt := nudge90(ctx.CenterAltDeg)
	if ctx.CenterAzDeg != 0 {
		sphere.RotateCart(0, 0, 1, -ctx.CenterAzDeg, work)
	}
	if centerAlt != 90 {
		sphere.RotateCart(1, 0, 0, centerAlt-90, work)
	}

	x = make([]float64, len(work))
	y = make([]float64, len(work))
	z = make([]float64, len(work))
	for i, v := range work {
		if math.IsNaN(v.X) || v.Z > sphere.Resolution {
			x[i] = math.NaN()
			y[i] = math.NaN()
			z[i] = math.NaN()
			continue
		}
		x[i], y[i], z[i] = v.X, v.Y, v.Z
	}
	return x, y, z
}

// OrthographicAng is OrthographicXYZ for points given as equatorial
// coordinates in degrees.
func OrthographicAng(ra, dec []float64, ctx Context) (x, y, z []float64) {
	vecs := make([]sphere.Vec, len(ra))
	for i := range ra {
		vecs[i] = sphere.AngToVec(ra[i], nudge90(dec[i]))
	}
	return OrthographicXYZ(vecs, ctx)
}
