package chart

import (
	"math"

	"asciisky/internal/skyproj"
	"asciisky/internal/sphere"
)

// Poles of the reference planes drawn by Decorate, in ICRS degrees.
const (
	eclipticPoleRA   = 270.0
	eclipticPoleDecl = 66.5607
	galacticPoleRA   = 192.85948
	galacticPoleDecl = 27.12825
)

// projectScalarColumns fills the ra/decl, unit-vector, and every
// projection column of a point-stream table from equatorial
// coordinates. NaN rows (break sentinels) stay NaN throughout.
func projectScalarColumns(t *Table, ra, decl []float64, mollSeamDeg float64, ctx skyproj.Context) {
	vecs := make([]sphere.Vec, len(ra))
	xHp := make([]float64, len(ra))
	yHp := make([]float64, len(ra))
	zHp := make([]float64, len(ra))
	for i := range ra {
		if math.IsNaN(ra[i]) || math.IsNaN(decl[i]) {
			vecs[i] = sphere.Vec{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
		} else {
			vecs[i] = sphere.AngToVec(ra[i], decl[i])
		}
		xHp[i], yHp[i], zHp[i] = vecs[i].X, vecs[i].Y, vecs[i].Z
	}

	xOrth, yOrth, zOrth := skyproj.OrthographicXYZ(vecs, ctx)
	xLaea, yLaea := skyproj.LaeaXY(ra, decl, ctx)
	xMoll, yMoll := skyproj.MollweideXY(ra, decl, mollSeamDeg, ctx)
	xHz, yHz := skyproj.HorizonXY(ra, decl, ctx)

	t.mollSeamDeg = mollSeamDeg
	_ = t.SetFloat(ColRA, ra)
	_ = t.SetFloat(ColDecl, decl)
	_ = t.SetFloat(ColXHp, xHp)
	_ = t.SetFloat(ColYHp, yHp)
	_ = t.SetFloat(ColZHp, zHp)
	_ = t.SetFloat(ColXOrth, xOrth)
	_ = t.SetFloat(ColYOrth, yOrth)
	_ = t.SetFloat(ColZOrth, zOrth)
	_ = t.SetFloat(ColXLaea, xLaea)
	_ = t.SetFloat(ColYLaea, yLaea)
	_ = t.SetFloat(ColXMoll, xMoll)
	_ = t.SetFloat(ColYMoll, yMoll)
	_ = t.SetFloat(ColXHz, xHz)
	_ = t.SetFloat(ColYHz, yHz)
}

// circleAngles walks a circle of the given radius around a center,
// sampling at stepDeg from startBear to endBear inclusive (bearings
// east of north).
func circleAngles(centerRA, centerDecl, radiusDeg, startBear, endBear, stepDeg float64) (bearings, ra, decl []float64) {
	for b := startBear; b <= endBear; b += stepDeg {
		r, d := sphere.OffsetSepBear(centerRA, centerDecl, radiusDeg, b)
		bearings = append(bearings, b)
		ra = append(ra, r)
		decl = append(decl, d)
	}
	return bearings, ra, decl
}

// MakeCirclePoints builds a table of points along a circle (or arc)
// on the sphere, centered on an equatorial position.
func MakeCirclePoints(centerRA, centerDecl, radiusDeg, startBear, endBear, stepDeg float64, ctx skyproj.Context) *Table {
	bearings, ra, decl := circleAngles(centerRA, centerDecl, radiusDeg, startBear, endBear, stepDeg)
	t := NewTable(len(ra))
	projectScalarColumns(t, ra, decl, stepDeg, ctx)
	_ = t.SetFloat(ColBearing, bearings)
	return t
}

// MakeHorizonCirclePoints builds a circle whose center is fixed in
// horizon coordinates (for the horizon itself, pass alt near 90 and
// the zenith distance as radius). The table remembers its horizon
// anchor, so a refresh re-derives the equatorial payload for the new
// time instead of letting the circle drift with the sky.
func MakeHorizonCirclePoints(altDeg, azDeg, radiusDeg, startBear, endBear, stepDeg float64, ctx skyproj.Context) *Table {
	if altDeg == 90 {
		altDeg = sphere.Almost90
	}
	centerRA, centerDecl := sphere.HorizonToEq(altDeg, azDeg, ctx.MJD, ctx.Site, ctx.Transform)
	t := MakeCirclePoints(centerRA, centerDecl, radiusDeg, startBear, endBear, stepDeg, ctx)

	alt, az := skyproj.HorizonAltAz(t.Float(ColRA), t.Float(ColDecl), ctx)
	_ = t.SetFloat(ColAlt, alt)
	_ = t.SetFloat(ColAz, az)

	t.rebuild = func(ctx skyproj.Context) *Table {
		return MakeHorizonCirclePoints(altDeg, azDeg, radiusDeg, startBear, endBear, stepDeg, ctx)
	}
	return t
}

// MakeEclipticPoints builds the ecliptic as a 90-degree circle around
// the ecliptic pole.
func MakeEclipticPoints(ctx skyproj.Context) *Table {
	return MakeCirclePoints(eclipticPoleRA, eclipticPoleDecl, 90, 0, 360, 1, ctx)
}

// MakeGalacticPlanePoints builds the galactic plane as a 90-degree
// circle around the galactic pole.
func MakeGalacticPlanePoints(ctx skyproj.Context) *Table {
	return MakeCirclePoints(galacticPoleRA, galacticPoleDecl, 90, 0, 360, 1, ctx)
}
