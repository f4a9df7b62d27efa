package skyproj

import (
	"math"

	"asciisky/internal/sphere"
)

// HorizonAltAz converts equatorial coordinates (degrees) to altitude
// and azimuth for the context's time and site.
func HorizonAltAz(ra, dec []float64, ctx Context) (alt, az []float64) {
	alt = make([]float64, len(ra))
	az = make([]float64, len(ra))
	for i := range ra {
		if math.IsNaN(ra[i]) || math.IsNaN(dec[i]) {
			alt[i], az[i] = nan2()
			continue
		}
		alt[i], az[i] = sphere.EqToHorizon(ra[i], nudge90(dec[i]), ctx.MJD, ctx.Site, ctx.Transform)
	}
	return alt, az
}

// HorizonXY converts equatorial coordinates (degrees) to the planar
// horizon projection: +x points west and +y north, with the radial
// coordinate equal to the zenith distance in radians. Points at or
// below the altitude limit map to NaN.
func HorizonXY(ra, dec []float64, ctx Context) (x, y []float64) {
	x = make([]float64, len(ra))
	y = make([]float64, len(ra))
	for i := range ra {
		if math.IsNaN(ra[i]) || math.IsNaN(dec[i]) {
			x[i], y[i] = nan2()
			continue
		}
		alt, az := sphere.EqToHorizon(ra[i], nudge90(dec[i]), ctx.MJD, ctx.Site, ctx.Transform)
		if alt < ctx.AltLimitDeg {
			x[i], y[i] = nan2()
			continue
		}
		zd := math.Pi/2 - alt*math.Pi/180
		azRad := az * math.Pi / 180
		x[i] = -zd * math.Sin(azRad)
		y[i] = zd * math.Cos(azRad)
	}
	return x, y
}

// LaeaXY converts equatorial coordinates (degrees) to the Lambert
// azimuthal equal-area projection centered on the celestial pole above
// the site's hemisphere. The radial coordinate is 2*sin(c/2) for
// angular distance c from the center, so the whole sphere fits in a
// disc of radius 2 and the opposite pole stays finite. Points within
// LaeaLimitDeg of the opposite pole map to NaN. The x axis is flipped
// so east appears to the left, as on the sky.
func LaeaXY(ra, dec []float64, ctx Context) (x, y []float64) {
	x = make([]float64, len(ra))
	y = make([]float64, len(ra))
	north := ctx.NorthUp()
	limit := ctx.LaeaLimitDecl()
	for i := range ra {
		if math.IsNaN(ra[i]) || math.IsNaN(dec[i]) {
			x[i], y[i] = nan2()
			continue
		}
		d := nudge90(dec[i])
		if (north && d < limit) || (!north && d > limit) {
			x[i], y[i] = nan2()
			continue
		}
		var c float64 // angular distance from the center pole
		if north {
			c = (90 - d) * math.Pi / 180
		} else {
			c = (90 + d) * math.Pi / 180
		}
		r := 2 * math.Sin(c/2)
		raRad := ra[i] * math.Pi / 180
		x[i] = -r * math.Sin(raRad)
		if north {
			y[i] = -r * math.Cos(raRad)
		} else {
			y[i] = r * math.Cos(raRad)
		}
	}
	return x, y
}

// MollweideXY converts equatorial coordinates (degrees) to the
// Mollweide projection with the x axis flipped for sky display.
// seamDeg hides points within that many degrees (scaled by 1/cos(dec))
// of the RA=180 seam so polylines and patches crossing the
// discontinuity do not smear across the map; pass 0 to keep them.
func MollweideXY(ra, dec []float64, seamDeg float64, ctx Context) (x, y []float64) {
	x = make([]float64, len(ra))
	y = make([]float64, len(ra))
	for i := range ra {
		if math.IsNaN(ra[i]) || math.IsNaN(dec[i]) {
			x[i], y[i] = nan2()
			continue
		}
		d := nudge90(dec[i])
		if seamDeg > 0 {
			tol := seamDeg / math.Cos(d*math.Pi/180)
			if math.Abs(wrapRA(ra[i])-180) < tol {
				x[i], y[i] = nan2()
				continue
			}
		}
		x[i], y[i] = mollweidePoint(ra[i], d)
	}
	return x, y
}

func wrapRA(ra float64) float64 {
	ra = math.Mod(ra, 360)
	if ra < 0 {
		ra += 360
	}
	return ra
}

func mollweidePoint(raDeg, decDeg float64) (x, y float64) {
	// Longitude measured from RA=0, wrapped into [-180, 180).
	lon := wrapRA(raDeg)
	if lon >= 180 {
		lon -= 360
	}
	lam := lon * math.Pi / 180
	phi := decDeg * math.Pi / 180

	// Solve 2t + sin(2t) = pi*sin(phi) by Newton iteration.
	t := phi
	for i := 0; i < 20; i++ {
		f := 2*t + math.Sin(2*t) - math.Pi*math.Sin(phi)
		df := 2 + 2*math.Cos(2*t)
		if math.Abs(df) < sphere.Resolution {
			break // converged onto the pole
		}
		dt := f / df
		t -= dt
		if math.Abs(dt) < 1e-12 {
			break
		}
	}

	x = -(2 * math.Sqrt2 / math.Pi) * lam * math.Cos(t)
	y = math.Sqrt2 * math.Sin(t)
	return x, y
}
