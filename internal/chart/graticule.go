package chart

import (
	"fmt"
	"math"
	"sort"

	"asciisky/internal/skyproj"
	"asciisky/internal/sphere"
)

// GraticuleSpec describes a grid of declination and right-ascension
// lines. Angles in degrees.
type GraticuleSpec struct {
	MinDecl, MaxDecl, DeclSpace float64
	MinRA, MaxRA, RASpace       float64
	StepDeg                     float64
}

// DefaultGraticuleSpec matches the standard whole-sky grid.
func DefaultGraticuleSpec() GraticuleSpec {
	return GraticuleSpec{
		MinDecl: -80, MaxDecl: 80, DeclSpace: 20,
		MinRA: 0, MaxRA: 360, RASpace: 30,
		StepDeg: 1,
	}
}

// HorizonGraticuleSpec describes a grid of altitude and azimuth lines.
type HorizonGraticuleSpec struct {
	MinAlt, MaxAlt, AltSpace float64
	MinAz, MaxAz, AzSpace    float64
	StepDeg                  float64
}

// DefaultHorizonGraticuleSpec matches the standard horizon grid.
func DefaultHorizonGraticuleSpec() HorizonGraticuleSpec {
	return HorizonGraticuleSpec{
		MinAlt: 0, MaxAlt: 80, AltSpace: 20,
		MinAz: 0, MaxAz: 360, AzSpace: 30,
		StepDeg: 1,
	}
}

// stream accumulates the rows of a connected-polyline table, inserting
// one all-NaN break row after each line so a single polyline renderer
// draws disjoint lines.
type stream struct {
	ra, decl, alt, az []float64
	label             []string
	hasAltAz          bool
	lines             int
}

func (s *stream) addLine(label string, ra, decl []float64) {
	s.ra = append(s.ra, ra...)
	s.decl = append(s.decl, decl...)
	for range ra {
		s.label = append(s.label, label)
	}
	s.endLine()
}

func (s *stream) endLine() {
	s.ra = append(s.ra, math.NaN())
	s.decl = append(s.decl, math.NaN())
	if s.hasAltAz {
		s.alt = append(s.alt, math.NaN())
		s.az = append(s.az, math.NaN())
	}
	s.label = append(s.label, "")
	s.lines++
}

func (s *stream) table(mollSeamDeg float64, ctx skyproj.Context) *Table {
	t := NewTable(len(s.ra))
	projectScalarColumns(t, s.ra, s.decl, mollSeamDeg, ctx)
	_ = t.SetLabels(ColGraticule, s.label)
	if s.hasAltAz {
		_ = t.SetFloat(ColAlt, s.alt)
		_ = t.SetFloat(ColAz, s.az)
	}
	return t
}

// MakeGraticulePoints builds the declination/RA grid as one table of
// connected-line points with break sentinels. The number of break rows
// always equals the number of lines.
func MakeGraticulePoints(spec GraticuleSpec, ctx skyproj.Context) *Table {
	s := &stream{}

	for decl := spec.MinDecl; decl <= spec.MaxDecl+1e-9; decl += spec.DeclSpace {
		var ra, dc []float64
		for r := 0.0; r <= 360+1e-9; r += spec.StepDeg {
			ra = append(ra, r)
			dc = append(dc, decl)
		}
		s.addLine(fmt.Sprintf("decl%g", decl), ra, dc)
	}

	for raLine := spec.MinRA; raLine <= spec.MaxRA+1e-9; raLine += spec.RASpace {
		var ra, dc []float64
		for d := spec.MinDecl; d <= spec.MaxDecl+1e-9; d += spec.StepDeg {
			ra = append(ra, raLine)
			dc = append(dc, d)
		}
		s.addLine(fmt.Sprintf("ra%g", raLine), ra, dc)
	}

	// Graticule lines are sampled finely enough that no extra seam
	// margin is needed in the Mollweide columns.
	return s.table(0, ctx)
}

// MakeHorizonGraticulePoints builds the altitude/azimuth grid. The
// geometry is fixed in horizon coordinates, so the table rebuilds its
// equatorial payload on refresh.
func MakeHorizonGraticulePoints(spec HorizonGraticuleSpec, ctx skyproj.Context) *Table {
	s := &stream{hasAltAz: true}

	// Altitude lines are circles of zenith distance 90-alt around the
	// zenith.
	for alt := spec.MinAlt; alt <= spec.MaxAlt+1e-9; alt += spec.AltSpace {
		zenRA, zenDecl := sphere.HorizonToEq(sphere.Almost90, 0, ctx.MJD, ctx.Site, ctx.Transform)
		_, ra, decl := circleAngles(zenRA, zenDecl, 90-alt, 0, 360+spec.StepDeg, spec.StepDeg)
		for i := range ra {
			a, z := sphere.EqToHorizon(ra[i], decl[i], ctx.MJD, ctx.Site, ctx.Transform)
			s.ra = append(s.ra, ra[i])
			s.decl = append(s.decl, decl[i])
			s.alt = append(s.alt, a)
			s.az = append(s.az, z)
			s.label = append(s.label, fmt.Sprintf("alt%g", alt))
		}
		s.endLine()
	}

	// Azimuth lines are meridian arcs: great circles through the
	// zenith, sampled and then filtered to the requested altitude band.
	for az := spec.MinAz; az <= spec.MaxAz+1e-9; az += spec.AzSpace {
		centerRA, centerDecl := sphere.HorizonToEq(0, az+90, ctx.MJD, ctx.Site, ctx.Transform)
		_, ra, decl := circleAngles(centerRA, centerDecl, 90, 0, 360+spec.StepDeg, spec.StepDeg)

		type arcPoint struct{ ra, decl, alt, az float64 }
		var arc []arcPoint
		for i := range ra {
			a, z := sphere.EqToHorizon(ra[i], decl[i], ctx.MJD, ctx.Site, ctx.Transform)
			azErr := math.Abs(z - az)
			if azErr > 180 {
				azErr = 360 - azErr
			}
			if a > spec.MinAlt && a <= spec.MaxAlt && azErr < 1 {
				arc = append(arc, arcPoint{ra[i], decl[i], a, z})
			}
		}
		sort.Slice(arc, func(i, j int) bool { return arc[i].alt < arc[j].alt })
		for _, p := range arc {
			s.ra = append(s.ra, p.ra)
			s.decl = append(s.decl, p.decl)
			s.alt = append(s.alt, p.alt)
			s.az = append(s.az, p.az)
			s.label = append(s.label, fmt.Sprintf("az%g", az))
		}
		s.endLine()
	}

	t := s.table(0, ctx)
	t.rebuild = func(ctx skyproj.Context) *Table {
		return MakeHorizonGraticulePoints(spec, ctx)
	}
	return t
}

// CountBreaks returns the number of break sentinel rows in a stream
// table.
func CountBreaks(t *Table) int {
	n := 0
	for row := 0; row < t.Rows(); row++ {
		if t.IsBreak(row) {
			n++
		}
	}
	return n
}
