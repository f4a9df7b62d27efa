package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"asciisky/internal/chart"
)

// Frame maps a square patch of projection-plane coordinates onto a
// rectangular canvas region. Extent is the half-width of the world
// square; Aspect compensates for character cells being taller than
// wide.
type Frame struct {
	X0, Y0 int
	W, H   int
	Extent float64
	Aspect float64
}

// NewFrame builds a frame filling the given canvas region.
func NewFrame(x0, y0, w, h int, extent, aspect float64) Frame {
	if aspect <= 0 {
		aspect = 2.0
	}
	return Frame{X0: x0, Y0: y0, W: w, H: h, Extent: extent, Aspect: aspect}
}

// scale returns cells per world unit along y (x uses scale*Aspect).
func (f Frame) scale() float64 {
	if f.Extent <= 0 {
		return 0
	}
	sx := float64(f.W) / (2 * f.Extent * f.Aspect)
	sy := float64(f.H) / (2 * f.Extent)
	return math.Min(sx, sy)
}

// ToCell converts world coordinates to a canvas cell. The third result
// is false for NaN input or points outside the frame.
func (f Frame) ToCell(x, y float64) (int, int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	s := f.scale()
	cx := f.X0 + f.W/2 + int(math.Round(x*s*f.Aspect))
	cy := f.Y0 + f.H/2 - int(math.Round(y*s))
	if cx < f.X0 || cx >= f.X0+f.W || cy < f.Y0 || cy >= f.Y0+f.H {
		return 0, 0, false
	}
	return cx, cy, true
}

func (f Frame) toCellUnbounded(x, y float64) (int, int) {
	s := f.scale()
	cx := f.X0 + f.W/2 + int(math.Round(x*s*f.Aspect))
	cy := f.Y0 + f.H/2 - int(math.Round(y*s))
	return cx, cy
}

// ToWorld converts a cell center back to world coordinates.
func (f Frame) ToWorld(cx, cy int) (float64, float64) {
	s := f.scale()
	if s == 0 {
		return math.NaN(), math.NaN()
	}
	x := float64(cx-f.X0-f.W/2) / (s * f.Aspect)
	y := float64(f.Y0+f.H/2-cy) / s
	return x, y
}

// ChartRenderer draws chart tables into a canvas through a frame.
type ChartRenderer struct {
	canvas *Canvas
	frame  Frame
}

// NewChartRenderer creates a renderer for one view's canvas region.
func NewChartRenderer(canvas *Canvas, frame Frame) *ChartRenderer {
	return &ChartRenderer{canvas: canvas, frame: frame}
}

// UpdateFrame repoints the renderer at a new canvas region.
func (r *ChartRenderer) UpdateFrame(frame Frame) {
	r.frame = frame
}

// FillPolygons paints each row's boundary polygon, colored by the
// row's value through the colormap. Rows whose vertices are NaN in
// this projection are invisible and skipped; a polygon is drawn only
// when every vertex is finite, so shapes never smear across a seam.
func (r *ChartRenderer) FillPolygons(t *chart.Table, xCol, yCol string, cmap *Colormap) {
	xs := t.List(xCol)
	ys := t.List(yCol)
	values := t.Float(chart.ColValue)
	if xs == nil || ys == nil {
		return
	}

	for row := range xs {
		vx, vy := xs[row], ys[row]
		if !allFinite(vx) || !allFinite(vy) {
			continue
		}
		style := tcell.StyleDefault
		if cmap != nil && values != nil {
			s, ok := cmap.Style(values[row])
			if !ok {
				continue
			}
			style = s
		}
		r.fillPolygon(vx, vy, style)
	}
}

func (r *ChartRenderer) fillPolygon(vx, vy []float64, style tcell.Style) {
	minX, maxX := vx[0], vx[0]
	minY, maxY := vy[0], vy[0]
	for i := range vx {
		minX = math.Min(minX, vx[i])
		maxX = math.Max(maxX, vx[i])
		minY = math.Min(minY, vy[i])
		maxY = math.Max(maxY, vy[i])
	}

	cx0, cy0 := r.frame.toCellUnbounded(minX, maxY)
	cx1, cy1 := r.frame.toCellUnbounded(maxX, minY)
	cx0 = max(cx0, r.frame.X0)
	cy0 = max(cy0, r.frame.Y0)
	cx1 = min(cx1, r.frame.X0+r.frame.W-1)
	cy1 = min(cy1, r.frame.Y0+r.frame.H-1)

	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			wx, wy := r.frame.ToWorld(cx, cy)
			if pointInPolygon(wx, wy, vx, vy) {
				r.canvas.Set(cx, cy, '█', style)
			}
		}
	}

	// Boundary pass: small polygons can fall between cell centers, so
	// at least trace the outline.
	r.drawRing(vx, vy, '█', style)
}

func (r *ChartRenderer) drawRing(vx, vy []float64, char rune, style tcell.Style) {
	n := len(vx)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		x0, y0, ok0 := r.frame.ToCell(vx[i], vy[i])
		x1, y1, ok1 := r.frame.ToCell(vx[j], vy[j])
		if ok0 && ok1 {
			r.canvas.DrawLine(x0, y0, x1, y1, char, style)
		}
	}
}

// pointInPolygon is an even-odd ray crossing test.
func pointInPolygon(x, y float64, vx, vy []float64) bool {
	inside := false
	n := len(vx)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if (vy[i] > y) != (vy[j] > y) &&
			x < (vx[j]-vx[i])*(y-vy[i])/(vy[j]-vy[i])+vx[i] {
			inside = !inside
		}
	}
	return inside
}

// DrawPolyline draws a stream table as connected lines, breaking at
// NaN sentinel rows and at points culled by the projection.
func (r *ChartRenderer) DrawPolyline(t *chart.Table, xCol, yCol string, char rune, style tcell.Style) {
	xs := t.Float(xCol)
	ys := t.Float(yCol)
	if xs == nil || ys == nil {
		return
	}

	havePrev := false
	var px, py int
	for row := 0; row < t.Rows(); row++ {
		if t.IsBreak(row) {
			havePrev = false
			continue
		}
		cx, cy, ok := r.frame.ToCell(xs[row], ys[row])
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			r.canvas.DrawLine(px, py, cx, cy, char, style)
		} else {
			r.canvas.Set(cx, cy, char, style)
		}
		px, py = cx, cy
		havePrev = true
	}
}

// DrawPoints draws a point table as glyphs with optional labels.
// Markers outside their MJD validity window are hidden, not removed.
func (r *ChartRenderer) DrawPoints(t *chart.Table, xCol, yCol string, style tcell.Style) {
	xs := t.Float(xCol)
	ys := t.Float(yCol)
	if xs == nil || ys == nil {
		return
	}
	names := t.Labels(chart.ColName)
	sizes := t.Float(chart.ColGlyphSize)
	window := t.Float(chart.ColInWindow)

	for row := 0; row < t.Rows(); row++ {
		if window != nil && window[row] == 0 {
			continue
		}
		cx, cy, ok := r.frame.ToCell(xs[row], ys[row])
		if !ok {
			continue
		}
		glyph := '●'
		if sizes != nil {
			glyph = GlyphForSize(sizes[row])
		}
		r.canvas.Set(cx, cy, glyph, style)

		if names != nil && names[row] != "" {
			if cx+1+len(names[row]) < r.frame.X0+r.frame.W {
				r.canvas.DrawText(cx+1, cy, names[row], StyleLabel)
			}
		}
	}
}

func allFinite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
