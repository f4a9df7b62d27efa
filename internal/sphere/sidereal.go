package sphere

import "math"

// J2000 epoch as a Modified Julian Date.
const J2000 = 51544.5

// Site describes an observing site. Longitude is positive east.
type Site struct {
	Name         string
	LatitudeDeg  float64
	LongitudeDeg float64
}

// LSST is the default observing site.
var LSST = Site{Name: "LSST", LatitudeDeg: -30.2444, LongitudeDeg: -70.7494}

// GMST returns the Greenwich mean sidereal time in degrees [0, 360)
// for the given MJD, using the linear expansion about J2000.
func GMST(mjd float64) float64 {
	gmst := math.Mod(280.46061837+360.98564736629*(mjd-J2000), 360)
	if gmst < 0 {
		gmst += 360
	}
	return gmst
}

// GMSTPrecise adds the slow polynomial terms of the IAU expression.
// The difference from GMST is below an arcsecond for decades around
// J2000 but matters for long-baseline comparisons.
func GMSTPrecise(mjd float64) float64 {
	t := (mjd - J2000) / 36525
	gmst := 280.46061837 +
		360.98564736629*(mjd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	gmst = math.Mod(gmst, 360)
	if gmst < 0 {
		gmst += 360
	}
	return gmst
}

// LST returns the local mean sidereal time in degrees for a site.
func LST(mjd float64, site Site) float64 {
	lst := math.Mod(GMST(mjd)+site.LongitudeDeg, 360)
	if lst < 0 {
		lst += 360
	}
	return lst
}

// MJDForLST returns the MJD within the same UT day as mjd at which the
// local sidereal time equals lstDeg.
func MJDForLST(lstDeg, mjd float64, site Site) float64 {
	mjdStart := math.Floor(mjd)
	lstStart := LST(mjdStart, site)
	delta := math.Mod(lstDeg-lstStart, 360)
	if delta < 0 {
		delta += 360
	}
	return mjdStart + delta/siderealRate
}
