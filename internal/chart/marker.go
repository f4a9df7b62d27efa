package chart

import (
	"fmt"
	"math"

	"asciisky/internal/skyproj"
	"asciisky/internal/sphere"
)

// Marker is a named point on the sky with an optional MJD validity
// window. Unbounded window edges are NaN.
type Marker struct {
	RA, Decl  float64
	Name      string
	GlyphSize float64
	MinMJD    float64
	MaxMJD    float64
}

// NewMarker returns a marker with no validity window.
func NewMarker(ra, decl float64, name string, size float64) Marker {
	return Marker{RA: ra, Decl: decl, Name: name, GlyphSize: size,
		MinMJD: math.NaN(), MaxMJD: math.NaN()}
}

// MakePointsTable builds a point table for positions on the sphere.
// All slices must have equal length.
func MakePointsTable(ra, decl []float64, names []string, sizes []float64, ctx skyproj.Context) (*Table, error) {
	if len(decl) != len(ra) || len(names) != len(ra) || len(sizes) != len(ra) {
		return nil, fmt.Errorf("%w: points columns have lengths %d/%d/%d/%d",
			ErrShapeMismatch, len(ra), len(decl), len(names), len(sizes))
	}
	t := NewTable(len(ra))
	projectScalarColumns(t, ra, decl, 0, ctx)
	_ = t.SetLabels(ColName, names)
	_ = t.SetFloat(ColGlyphSize, sizes)
	return t, nil
}

// MakeMarkerTable builds a point table from markers, adding the MJD
// window columns when any marker carries one. The visibility column is
// recomputed on every refresh; renderers use it as an opacity toggle
// rather than dropping rows.
func MakeMarkerTable(markers []Marker, ctx skyproj.Context) (*Table, error) {
	n := len(markers)
	ra := make([]float64, n)
	decl := make([]float64, n)
	names := make([]string, n)
	sizes := make([]float64, n)
	minMJD := make([]float64, n)
	maxMJD := make([]float64, n)
	windowed := false
	for i, m := range markers {
		ra[i], decl[i] = m.RA, m.Decl
		names[i], sizes[i] = m.Name, m.GlyphSize
		minMJD[i], maxMJD[i] = m.MinMJD, m.MaxMJD
		if !math.IsNaN(m.MinMJD) || !math.IsNaN(m.MaxMJD) {
			windowed = true
		}
	}

	t, err := MakePointsTable(ra, decl, names, sizes, ctx)
	if err != nil {
		return nil, err
	}
	if windowed {
		_ = t.SetFloat(ColMinMJD, minMJD)
		_ = t.SetFloat(ColMaxMJD, maxMJD)
		_ = t.SetFloat(ColInWindow, windowColumn(minMJD, maxMJD, ctx.MJD))
	}
	return t, nil
}

func windowColumn(minMJD, maxMJD []float64, mjd float64) []float64 {
	in := make([]float64, len(minMJD))
	for i := range in {
		in[i] = 1
		if !math.IsNaN(minMJD[i]) && mjd < minMJD[i] {
			in[i] = 0
		}
		if !math.IsNaN(maxMJD[i]) && mjd > maxMJD[i] {
			in[i] = 0
		}
	}
	return in
}

// MakePatchesTable builds a polygon table for patches given as per-row
// vertex coordinate lists. Every patch must have the same number of
// vertices.
func MakePatchesTable(ra, decl [][]float64, ctx skyproj.Context) (*Table, error) {
	if len(ra) != len(decl) {
		return nil, fmt.Errorf("%w: %d ra rows vs %d decl rows", ErrShapeMismatch, len(ra), len(decl))
	}
	if len(ra) == 0 {
		return nil, fmt.Errorf("%w: no patches", ErrDegenerateGeometry)
	}
	nvert := len(ra[0])
	for i := range ra {
		if len(ra[i]) != nvert || len(decl[i]) != nvert {
			return nil, fmt.Errorf("%w: patch %d has %d/%d vertices, want %d",
				ErrShapeMismatch, i, len(ra[i]), len(decl[i]), nvert)
		}
	}

	flatRA, widths := flattenList(ra)
	flatDecl, _ := flattenList(decl)

	vecs := make([]sphere.Vec, len(flatRA))
	xHp := make([]float64, len(flatRA))
	yHp := make([]float64, len(flatRA))
	zHp := make([]float64, len(flatRA))
	for i := range flatRA {
		vecs[i] = sphere.AngToVec(flatRA[i], flatDecl[i])
		xHp[i], yHp[i], zHp[i] = vecs[i].X, vecs[i].Y, vecs[i].Z
	}

	xOrth, yOrth, zOrth := skyproj.OrthographicXYZ(vecs, ctx)
	xLaea, yLaea := skyproj.LaeaXY(flatRA, flatDecl, ctx)
	xMoll, yMoll := skyproj.MollweideXY(flatRA, flatDecl, 0, ctx)
	xHz, yHz := skyproj.HorizonXY(flatRA, flatDecl, ctx)

	t := NewTable(len(ra))
	for name, flat := range map[string][]float64{
		ColRA: flatRA, ColDecl: flatDecl,
		ColXHp: xHp, ColYHp: yHp, ColZHp: zHp,
		ColXOrth: xOrth, ColYOrth: yOrth, ColZOrth: zOrth,
		ColXLaea: xLaea, ColYLaea: yLaea,
		ColXMoll: xMoll, ColYMoll: yMoll,
		ColXHz: xHz, ColYHz: yHz,
	} {
		_ = t.SetList(name, reshapeList(flat, widths))
	}
	return t, nil
}
