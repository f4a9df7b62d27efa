package chart

import (
	"fmt"
	"math"

	"asciisky/internal/skyproj"
)

// Column names shared by every table. One row of a polygon table keeps
// its vertex coordinates in list columns; point and stream tables use
// the scalar columns. Vertex i of a row refers to the same physical
// boundary point in every projection's column.
const (
	ColHpid       = "hpid"
	ColValue      = "value"
	ColCenterRA   = "center_ra"
	ColCenterDecl = "center_decl"
	ColRA         = "ra"
	ColDecl       = "decl"
	ColAlt        = "alt"
	ColAz         = "az"
	ColBearing    = "bearing"
	ColXHp        = "x_hp"
	ColYHp        = "y_hp"
	ColZHp        = "z_hp"
	ColXOrth      = "x_orth"
	ColYOrth      = "y_orth"
	ColZOrth      = "z_orth"
	ColXLaea      = "x_laea"
	ColYLaea      = "y_laea"
	ColXMoll      = "x_moll"
	ColYMoll      = "y_moll"
	ColXHz        = "x_hz"
	ColYHz        = "y_hz"
	ColName       = "name"
	ColGlyphSize  = "glyph_size"
	ColMinMJD     = "min_mjd"
	ColMaxMJD     = "max_mjd"
	ColInWindow   = "in_mjd_window"
	ColGraticule  = "grat"
)

// Table is a column-oriented store of projected geometry. Mutation is
// by full-column replacement only, so a reader never sees a
// half-updated column and a later correct update fully supersedes a
// bad one.
type Table struct {
	rows   int
	floats map[string][]float64
	lists  map[string][][]float64
	labels map[string][]string

	// mollSeamDeg is the seam-culling tolerance this table was built
	// with, reused verbatim on refresh.
	mollSeamDeg float64

	// rebuild, when set, regenerates the table for a new context.
	// Only horizon-anchored geometry (the horizon circle, alt/az
	// graticules) uses it: such tables are fixed in horizon
	// coordinates, so their equatorial payload itself depends on the
	// time and must be re-derived rather than re-projected.
	rebuild func(ctx Context) *Table
}

// Context is the projection context type tables refresh against.
type Context = skyproj.Context

// NewTable returns an empty table expecting the given row count.
func NewTable(rows int) *Table {
	return &Table{
		rows:   rows,
		floats: make(map[string][]float64),
		lists:  make(map[string][][]float64),
		labels: make(map[string][]string),
	}
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// SetFloat replaces a scalar column wholesale.
func (t *Table) SetFloat(name string, values []float64) error {
	if len(values) != t.rows {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows",
			ErrShapeMismatch, name, len(values), t.rows)
	}
	t.floats[name] = values
	return nil
}

// SetList replaces a per-row list column wholesale.
func (t *Table) SetList(name string, values [][]float64) error {
	if len(values) != t.rows {
		return fmt.Errorf("%w: column %q has %d rows, table has %d",
			ErrShapeMismatch, name, len(values), t.rows)
	}
	t.lists[name] = values
	return nil
}

// SetLabels replaces a string column wholesale.
func (t *Table) SetLabels(name string, values []string) error {
	if len(values) != t.rows {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows",
			ErrShapeMismatch, name, len(values), t.rows)
	}
	t.labels[name] = values
	return nil
}

// Float returns a scalar column, or nil if absent.
func (t *Table) Float(name string) []float64 { return t.floats[name] }

// List returns a list column, or nil if absent.
func (t *Table) List(name string) [][]float64 { return t.lists[name] }

// Labels returns a string column, or nil if absent.
func (t *Table) Labels(name string) []string { return t.labels[name] }

// HasFloat reports whether a scalar column exists.
func (t *Table) HasFloat(name string) bool {
	_, ok := t.floats[name]
	return ok
}

// IsBreak reports whether a row of a stream table is an all-NaN break
// sentinel separating one connected line from the next.
func (t *Table) IsBreak(row int) bool {
	ra, decl := t.floats[ColRA], t.floats[ColDecl]
	if ra == nil || decl == nil {
		return false
	}
	return math.IsNaN(ra[row]) && math.IsNaN(decl[row])
}

// flattenList concatenates the rows of a list column; widths reports
// the per-row vertex counts for reshaping.
func flattenList(rows [][]float64) (flat []float64, widths []int) {
	widths = make([]int, len(rows))
	total := 0
	for i, r := range rows {
		widths[i] = len(r)
		total += len(r)
	}
	flat = make([]float64, 0, total)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return flat, widths
}

func reshapeList(flat []float64, widths []int) [][]float64 {
	out := make([][]float64, len(widths))
	pos := 0
	for i, w := range widths {
		out[i] = flat[pos : pos+w : pos+w]
		pos += w
	}
	return out
}
