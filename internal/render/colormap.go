package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps scalar values onto terminal colors by blending between
// gradient stops in a perceptual color space.
type Colormap struct {
	min, max float64
	stops    []colorful.Color
}

// NewColormap builds a colormap over [min, max] from at least two
// gradient stops. A degenerate range renders everything as the first
// stop rather than dividing by zero.
func NewColormap(min, max float64, stops ...colorful.Color) *Colormap {
	if len(stops) < 2 {
		stops = defaultStops()
	}
	return &Colormap{min: min, max: max, stops: stops}
}

// DefaultColormap is the standard dark-blue-to-yellow value ramp.
func DefaultColormap(min, max float64) *Colormap {
	return NewColormap(min, max, defaultStops()...)
}

func defaultStops() []colorful.Color {
	return []colorful.Color{
		{R: 0.05, G: 0.03, B: 0.35},
		{R: 0.12, G: 0.40, B: 0.55},
		{R: 0.20, G: 0.72, B: 0.47},
		{R: 0.95, G: 0.90, B: 0.15},
	}
}

// Color returns the tcell color for a value, clamping to the range
// ends. The second result is false for NaN or infinite values, which
// have no color.
func (c *Colormap) Color(v float64) (tcell.Color, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return tcell.ColorDefault, false
	}
	f := 0.0
	if c.max > c.min {
		f = (v - c.min) / (c.max - c.min)
	}
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}

	// Position within the stop sequence.
	pos := f * float64(len(c.stops)-1)
	i := int(pos)
	if i >= len(c.stops)-1 {
		i = len(c.stops) - 2
	}
	blended := c.stops[i].BlendLuv(c.stops[i+1], pos-float64(i)).Clamped()

	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}

// Style returns a fill style for a value.
func (c *Colormap) Style(v float64) (tcell.Style, bool) {
	col, ok := c.Color(v)
	if !ok {
		return tcell.StyleDefault, false
	}
	return tcell.StyleDefault.Foreground(col), true
}

// ValueRange scans a column for its finite minimum and maximum. An
// all-NaN column yields (0, 1) so a colormap over it stays usable.
func ValueRange(values []float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > max {
		return 0, 1
	}
	return min, max
}
