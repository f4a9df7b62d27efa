package chart

import (
	"asciisky/internal/skyproj"
	"asciisky/internal/sphere"
)

// MakeSolarSystemTable builds sun and moon markers for the context's
// time. Their equatorial positions depend on the MJD, so the table
// regenerates wholesale on refresh like the horizon-anchored geometry.
func MakeSolarSystemTable(ctx skyproj.Context) *Table {
	sunRA, sunDecl := sphere.SunPosition(ctx.MJD)
	moonRA, moonDecl := sphere.MoonPosition(ctx.MJD)

	t, _ := MakePointsTable(
		[]float64{sunRA, moonRA},
		[]float64{sunDecl, moonDecl},
		[]string{"sun", "moon"},
		[]float64{8, 8},
		ctx,
	)
	t.rebuild = func(ctx skyproj.Context) *Table {
		return MakeSolarSystemTable(ctx)
	}
	return t
}
