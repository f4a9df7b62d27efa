package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"asciisky/internal/chart"
)

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 5)
	require.Equal(t, 10, c.Width())
	require.Equal(t, 5, c.Height())

	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	c.Set(3, 2, 'x', style)
	cell := c.Get(3, 2)
	require.Equal(t, 'x', cell.Char)
	require.Equal(t, style, cell.Style)

	// Out-of-bounds writes and reads are ignored.
	c.Set(-1, 0, 'y', style)
	c.Set(10, 0, 'y', style)
	require.Equal(t, ' ', c.Get(-1, 0).Char)
	require.Equal(t, ' ', c.Get(99, 99).Char)

	c.Clear()
	require.Equal(t, ' ', c.Get(3, 2).Char)
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(1, 1, 8, 8, '*', tcell.StyleDefault)
	require.Equal(t, '*', c.Get(1, 1).Char)
	require.Equal(t, '*', c.Get(8, 8).Char)
	require.Equal(t, '*', c.Get(4, 4).Char)
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawText(2, 1, "hi", tcell.StyleDefault)
	require.Equal(t, 'h', c.Get(2, 1).Char)
	require.Equal(t, 'i', c.Get(3, 1).Char)
}

func TestFrameToCell(t *testing.T) {
	f := NewFrame(0, 0, 40, 20, 1, 2)

	cx, cy, ok := f.ToCell(0, 0)
	require.True(t, ok)
	require.Equal(t, 20, cx)
	require.Equal(t, 10, cy)

	// +y is up on screen.
	_, cyTop, ok := f.ToCell(0, 0.5)
	require.True(t, ok)
	require.Less(t, cyTop, cy)

	_, _, ok = f.ToCell(math.NaN(), 0)
	require.False(t, ok)

	_, _, ok = f.ToCell(5, 0)
	require.False(t, ok)
}

func TestFrameRoundtrip(t *testing.T) {
	f := NewFrame(3, 2, 40, 20, 1.5, 2)
	for _, p := range [][2]float64{{0, 0}, {0.7, -0.9}, {-1.2, 1.1}} {
		cx, cy, ok := f.ToCell(p[0], p[1])
		require.True(t, ok)
		wx, wy := f.ToWorld(cx, cy)
		// Round trip is accurate to one cell.
		require.InDelta(t, p[0], wx, 0.3)
		require.InDelta(t, p[1], wy, 0.3)
	}
}

func TestColormap(t *testing.T) {
	cm := DefaultColormap(0, 10)

	_, ok := cm.Color(math.NaN())
	require.False(t, ok)
	_, ok = cm.Color(math.Inf(1))
	require.False(t, ok)

	lo, ok := cm.Color(0)
	require.True(t, ok)
	hi, ok := cm.Color(10)
	require.True(t, ok)
	require.NotEqual(t, lo, hi)

	// Values beyond the range clamp to the ends.
	below, _ := cm.Color(-5)
	require.Equal(t, lo, below)
	above, _ := cm.Color(99)
	require.Equal(t, hi, above)
}

func TestValueRange(t *testing.T) {
	min, max := ValueRange([]float64{math.NaN(), 2, 5, math.Inf(1), -1})
	require.Equal(t, -1.0, min)
	require.Equal(t, 5.0, max)

	min, max = ValueRange([]float64{math.NaN()})
	require.Equal(t, 0.0, min)
	require.Equal(t, 1.0, max)
}

func TestFillPolygons(t *testing.T) {
	c := NewCanvas(40, 20)
	r := NewChartRenderer(c, NewFrame(0, 0, 40, 20, 1, 2))

	tab := chart.NewTable(1)
	require.NoError(t, tab.SetList("x", [][]float64{{-0.5, 0.5, 0.5, -0.5}}))
	require.NoError(t, tab.SetList("y", [][]float64{{-0.5, -0.5, 0.5, 0.5}}))

	r.FillPolygons(tab, "x", "y", nil)
	require.Equal(t, '█', c.Get(20, 10).Char)
	require.Equal(t, ' ', c.Get(1, 1).Char)
}

func TestFillPolygonsSkipsNaNRows(t *testing.T) {
	c := NewCanvas(40, 20)
	r := NewChartRenderer(c, NewFrame(0, 0, 40, 20, 1, 2))

	tab := chart.NewTable(1)
	require.NoError(t, tab.SetList("x", [][]float64{{math.NaN(), 0.5, 0.5, -0.5}}))
	require.NoError(t, tab.SetList("y", [][]float64{{-0.5, -0.5, 0.5, 0.5}}))

	r.FillPolygons(tab, "x", "y", nil)
	require.Equal(t, ' ', c.Get(20, 10).Char)
}

func TestDrawPolylineHonorsBreaks(t *testing.T) {
	c := NewCanvas(41, 21)
	r := NewChartRenderer(c, NewFrame(0, 0, 41, 21, 1, 2))

	nan := math.NaN()
	tab := chart.NewTable(5)
	// ra/decl carry the break sentinel; x/y are the projected line.
	require.NoError(t, tab.SetFloat(chart.ColRA, []float64{0, 0, nan, 0, 0}))
	require.NoError(t, tab.SetFloat(chart.ColDecl, []float64{0, 0, nan, 0, 0}))
	require.NoError(t, tab.SetFloat("x", []float64{-0.9, -0.6, nan, 0.6, 0.9}))
	require.NoError(t, tab.SetFloat("y", []float64{0, 0, nan, 0, 0}))

	r.DrawPolyline(tab, "x", "y", '.', tcell.StyleDefault)

	// Both segments drawn, nothing across the break.
	left, _, ok := r.frame.ToCell(-0.75, 0)
	require.True(t, ok)
	require.Equal(t, '.', c.Get(left, 10).Char)
	right, _, _ := r.frame.ToCell(0.75, 0)
	require.Equal(t, '.', c.Get(right, 10).Char)
	mid, _, _ := r.frame.ToCell(0, 0)
	require.Equal(t, ' ', c.Get(mid, 10).Char)
}

func TestDrawPointsWindow(t *testing.T) {
	c := NewCanvas(40, 20)
	r := NewChartRenderer(c, NewFrame(0, 0, 40, 20, 1, 2))

	tab := chart.NewTable(2)
	require.NoError(t, tab.SetFloat("x", []float64{-0.5, 0.5}))
	require.NoError(t, tab.SetFloat("y", []float64{0, 0}))
	require.NoError(t, tab.SetFloat(chart.ColInWindow, []float64{1, 0}))

	r.DrawPoints(tab, "x", "y", StyleMarker)

	visX, _, _ := r.frame.ToCell(-0.5, 0)
	hidX, _, _ := r.frame.ToCell(0.5, 0)
	require.NotEqual(t, ' ', c.Get(visX, 10).Char)
	require.Equal(t, ' ', c.Get(hidX, 10).Char)
}

func TestGlyphForSize(t *testing.T) {
	require.Equal(t, '●', GlyphForSize(10))
	require.Equal(t, '·', GlyphForSize(1))
	require.NotEqual(t, GlyphForSize(1), GlyphForSize(8))
}
