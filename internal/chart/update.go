package chart

import (
	"fmt"

	"asciisky/internal/skyproj"
	"asciisky/internal/sphere"
)

// ControlBounds limits the interactive projection controls. Values
// outside the bounds are clamped, never applied raw.
type ControlBounds struct {
	MinAlt, MaxAlt float64
	MinAz, MaxAz   float64
	MinMJD, MaxMJD float64
}

// DefaultControlBounds returns the standard control ranges around a
// reference time: one day of slack either side of it, the full
// altitude range, and an azimuth range wide enough to wrap past north
// in both directions.
func DefaultControlBounds(mjd float64) ControlBounds {
	return ControlBounds{
		MinAlt: -90, MaxAlt: 90,
		MinAz: -90, MaxAz: 360,
		MinMJD: mjd - 1, MaxMJD: mjd + 1,
	}
}

// ClampContext forces the context's controls into bounds. When any
// control was out of bounds it is clamped in place and an error
// wrapping ErrOutOfBoundsControl reports what was adjusted; the
// clamped context is still usable.
func ClampContext(ctx *skyproj.Context, b ControlBounds) error {
	var clamped []string
	clamp := func(v *float64, lo, hi float64, name string) {
		if *v < lo {
			*v = lo
			clamped = append(clamped, name)
		} else if *v > hi {
			*v = hi
			clamped = append(clamped, name)
		}
	}
	clamp(&ctx.CenterAltDeg, b.MinAlt, b.MaxAlt, "alt")
	clamp(&ctx.CenterAzDeg, b.MinAz, b.MaxAz, "az")
	clamp(&ctx.MJD, b.MinMJD, b.MaxMJD, "mjd")
	if clamped != nil {
		return fmt.Errorf("%w: clamped %v", ErrOutOfBoundsControl, clamped)
	}
	return nil
}

// Refresh re-derives every time-dependent column of a table for a new
// context, leaving geometry and time-independent projections alone.
// Horizon-anchored tables regenerate wholesale through their rebuild
// hook; all others re-project the stored unit vectors, so the
// orthographic columns move with the sky while the pixel boundaries
// stay byte-for-byte identical.
func Refresh(t *Table, ctx skyproj.Context) {
	if t.rebuild != nil {
		fresh := t.rebuild(ctx)
		t.rows = fresh.rows
		t.floats = fresh.floats
		t.lists = fresh.lists
		t.labels = fresh.labels
		t.mollSeamDeg = fresh.mollSeamDeg
		return
	}

	refreshScalars(t, ctx)
	refreshLists(t, ctx)

	if t.HasFloat(ColMinMJD) && t.HasFloat(ColMaxMJD) {
		_ = t.SetFloat(ColInWindow,
			windowColumn(t.Float(ColMinMJD), t.Float(ColMaxMJD), ctx.MJD))
	}
}

func refreshScalars(t *Table, ctx skyproj.Context) {
	xHp, yHp, zHp := t.Float(ColXHp), t.Float(ColYHp), t.Float(ColZHp)
	if xHp != nil && yHp != nil && zHp != nil {
		vecs := make([]sphere.Vec, len(xHp))
		for i := range vecs {
			vecs[i] = sphere.Vec{X: xHp[i], Y: yHp[i], Z: zHp[i]}
		}
		xo, yo, zo := skyproj.OrthographicXYZ(vecs, ctx)
		_ = t.SetFloat(ColXOrth, xo)
		_ = t.SetFloat(ColYOrth, yo)
		_ = t.SetFloat(ColZOrth, zo)
	}

	ra, decl := t.Float(ColRA), t.Float(ColDecl)
	if ra != nil && decl != nil {
		xh, yh := skyproj.HorizonXY(ra, decl, ctx)
		_ = t.SetFloat(ColXHz, xh)
		_ = t.SetFloat(ColYHz, yh)
	}
}

func refreshLists(t *Table, ctx skyproj.Context) {
	xHpL, yHpL, zHpL := t.List(ColXHp), t.List(ColYHp), t.List(ColZHp)
	if xHpL != nil && yHpL != nil && zHpL != nil {
		xHp, widths := flattenList(xHpL)
		yHp, _ := flattenList(yHpL)
		zHp, _ := flattenList(zHpL)
		vecs := make([]sphere.Vec, len(xHp))
		for i := range vecs {
			vecs[i] = sphere.Vec{X: xHp[i], Y: yHp[i], Z: zHp[i]}
		}
		xo, yo, zo := skyproj.OrthographicXYZ(vecs, ctx)
		_ = t.SetList(ColXOrth, reshapeList(xo, widths))
		_ = t.SetList(ColYOrth, reshapeList(yo, widths))
		_ = t.SetList(ColZOrth, reshapeList(zo, widths))
	}

	raL, declL := t.List(ColRA), t.List(ColDecl)
	if raL != nil && declL != nil {
		ra, widths := flattenList(raL)
		decl, _ := flattenList(declL)
		xh, yh := skyproj.HorizonXY(ra, decl, ctx)
		_ = t.SetList(ColXHz, reshapeList(xh, widths))
		_ = t.SetList(ColYHz, reshapeList(yh, widths))
	}
}
