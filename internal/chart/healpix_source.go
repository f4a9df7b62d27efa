package chart

import (
	"fmt"
	"math"

	"asciisky/internal/healpix"
	"asciisky/internal/skyproj"
	"asciisky/internal/sphere"
)

// HealpixTable is a coordinate table with one row per finite healpix
// pixel, each row holding the pixel's boundary polygon in every
// projection, plus a pixel-id index so callers can attach extra scalar
// columns to existing rows without rebuilding geometry.
type HealpixTable struct {
	*Table
	Nside int
	rowOf map[int]int
}

// RowOf returns the table row for a pixel id.
func (h *HealpixTable) RowOf(hpid int) (int, bool) {
	row, ok := h.rowOf[hpid]
	return row, ok
}

// AttachFloat adds a scalar column keyed by pixel id. Pixels missing
// from byPixel get NaN.
func (h *HealpixTable) AttachFloat(name string, byPixel map[int]float64) {
	col := make([]float64, h.Rows())
	for i := range col {
		col[i] = math.NaN()
	}
	for hpid, v := range byPixel {
		if row, ok := h.rowOf[hpid]; ok {
			col[row] = v
		}
	}
	// Length matches rows by construction.
	_ = h.SetFloat(name, col)
}

// MakeHealpixTable builds the boundary table for a dense RING-ordered
// map of pixel values. The map is regridded (NaN-safely) to
// displayNside when the resolutions differ; boundStep sets the number
// of boundary points per pixel edge.
func MakeHealpixTable(values []float64, displayNside, boundStep int, ctx skyproj.Context) (*HealpixTable, error) {
	inputNside, err := healpix.NpixToNside(len(values))
	if err != nil {
		return nil, fmt.Errorf("%w: %d values is not a whole healpix map", ErrShapeMismatch, len(values))
	}

	display := values
	if inputNside != displayNside {
		display, err = healpix.UDGradeNaN(values, displayNside)
		if err != nil {
			return nil, fmt.Errorf("%w: regrid to nside %d: %v", ErrShapeMismatch, displayNside, err)
		}
	}

	var hpids []int
	var finite []float64
	for pix, v := range display {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			hpids = append(hpids, pix)
			finite = append(finite, v)
		}
	}
	return buildHealpixTable(hpids, finite, displayNside, boundStep, false, ctx)
}

// MakeSparseHealpixTable builds the boundary table from a sparse map
// (NEST-ordered valid pixels). The map is degraded when its resolution
// exceeds displayNside; a coarser sparse map is used at its own
// resolution, as upsampling valid-pixel sets would fabricate coverage.
func MakeSparseHealpixTable(m *healpix.SparseMap, displayNside, boundStep int, ctx skyproj.Context) (*HealpixTable, error) {
	if displayNside < m.Nside() {
		m = m.Degrade(displayNside)
	}
	hpids := m.ValidPixels()
	finite := make([]float64, 0, len(hpids))
	kept := hpids[:0]
	for _, pix := range hpids {
		v, _ := m.Value(pix)
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			kept = append(kept, pix)
			finite = append(finite, v)
		}
	}
	return buildHealpixTable(kept, finite, m.Nside(), boundStep, true, ctx)
}

func buildHealpixTable(hpids []int, values []float64, nside, boundStep int, nest bool, ctx skyproj.Context) (*HealpixTable, error) {
	if boundStep < 1 {
		boundStep = 1
	}
	if len(hpids) == 0 {
		return nil, fmt.Errorf("%w: nside %d map has no finite pixels", ErrDegenerateGeometry, nside)
	}

	npix := len(hpids)
	nvert := 4 * boundStep

	// One authoritative set of boundary unit vectors per pixel; every
	// projection below derives from this same flattened list, so
	// vertex i means the same boundary point in every column.
	vecs := make([]sphere.Vec, 0, npix*nvert)
	for _, pix := range hpids {
		vecs = append(vecs, healpix.Boundaries(nside, pix, boundStep, nest)...)
	}

	ra := make([]float64, len(vecs))
	decl := make([]float64, len(vecs))
	for i, v := range vecs {
		ra[i], decl[i] = sphere.VecToAng(v)
	}

	xOrth, yOrth, zOrth := skyproj.OrthographicXYZ(vecs, ctx)
	xLaea, yLaea := skyproj.LaeaXY(ra, decl, ctx)
	seam := healpix.Resolution(nside)
	xMoll, yMoll := skyproj.MollweideXY(ra, decl, seam, ctx)
	xHz, yHz := skyproj.HorizonXY(ra, decl, ctx)

	widths := make([]int, npix)
	for i := range widths {
		widths[i] = nvert
	}

	t := NewTable(npix)
	t.mollSeamDeg = seam

	hpidCol := make([]float64, npix)
	centerRA := make([]float64, npix)
	centerDecl := make([]float64, npix)
	rowOf := make(map[int]int, npix)
	for i, pix := range hpids {
		hpidCol[i] = float64(pix)
		centerRA[i], centerDecl[i] = healpix.PixToAng(nside, pix, nest)
		rowOf[pix] = i
	}
	if err := t.SetFloat(ColHpid, hpidCol); err != nil {
		return nil, err
	}
	_ = t.SetFloat(ColValue, values)
	_ = t.SetFloat(ColCenterRA, centerRA)
	_ = t.SetFloat(ColCenterDecl, centerDecl)

	xHp := make([]float64, len(vecs))
	yHp := make([]float64, len(vecs))
	zHp := make([]float64, len(vecs))
	for i, v := range vecs {
		xHp[i], yHp[i], zHp[i] = v.X, v.Y, v.Z
	}

	for name, flat := range map[string][]float64{
		ColRA: ra, ColDecl: decl,
		ColXHp: xHp, ColYHp: yHp, ColZHp: zHp,
		ColXOrth: xOrth, ColYOrth: yOrth, ColZOrth: zOrth,
		ColXLaea: xLaea, ColYLaea: yLaea,
		ColXMoll: xMoll, ColYMoll: yMoll,
		ColXHz: xHz, ColYHz: yHz,
	} {
		_ = t.SetList(name, reshapeList(flat, widths))
	}

	return &HealpixTable{Table: t, Nside: nside, rowOf: rowOf}, nil
}
