// Package skyproj converts points on the celestial sphere into the
// planar coordinates of each supported sky projection. All transforms
// are vectorized over slices and return NaN for points that are
// invisible or degenerate in a projection; they never panic on them.
package skyproj

import (
	"math"

	"asciisky/internal/sphere"
)

// Context carries the observing state every projection depends on.
// It is owned by the composing application; projectors and builders
// only read it.
type Context struct {
	MJD  float64
	Site sphere.Site

	// Orientation of the orthographic (armillary) view. Center alt 90
	// and az 0 is the zenith-toward-viewer orientation.
	CenterAltDeg float64
	CenterAzDeg  float64

	// Transform selects the fast or precise equatorial/horizon math.
	Transform sphere.TransformKind

	// AltLimitDeg is the altitude below which the horizon projection
	// hides points.
	AltLimitDeg float64

	// LaeaLimitDeg is the angular distance from the equal-area "up"
	// pole beyond which points are hidden, keeping clear of the
	// projection singularity at the opposite pole.
	LaeaLimitDeg float64
}

// NewContext returns a context with the default orientation and
// limits for a site and time.
func NewContext(mjd float64, site sphere.Site) Context {
	return Context{
		MJD:          mjd,
		Site:         site,
		CenterAltDeg: 90,
		CenterAzDeg:  0,
		LaeaLimitDeg: 88,
	}
}

// LST returns the local sidereal time in degrees for the context.
func (c Context) LST() float64 {
	return sphere.LST(c.MJD, c.Site)
}

// NorthUp reports whether the equal-area projection is centered on
// the north celestial pole. Southern sites look at the south pole.
func (c Context) NorthUp() bool {
	return c.Site.LatitudeDeg >= 0
}

// LaeaLimitDecl returns the declination beyond which (toward the
// opposite pole) the equal-area projection hides points.
func (c Context) LaeaLimitDecl() float64 {
	if c.NorthUp() {
		return -c.LaeaLimitDeg
	}
	return c.LaeaLimitDeg
}

// nudge90 moves angles of exactly +/-90 degrees just off the pole.
// Exact poles make the trig land on either side of a branch cut
// depending on rounding, which renders boundary circles with
// irregular gaps; nudging the input is the structural fix.
func nudge90(deg float64) float64 {
	if deg == 90 {
		return sphere.Almost90
	}
	if deg == -90 {
		return -sphere.Almost90
	}
	return deg
}

func nan2() (float64, float64) {
	return math.NaN(), math.NaN()
}
