package ui

import (
	"fmt"

	"asciisky/internal/render"
)

// StatusView displays the observing state behind the charts: the site,
// the time, and the derived sidereal time.
type StatusView struct {
	chart         *SkyChart
	x, y          int
	width, height int
}

// NewStatusView creates a status readout for a chart.
func NewStatusView(x, y, width, height int, chart *SkyChart) *StatusView {
	return &StatusView{
		chart:  chart,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

// Draw renders the status view to the canvas
func (s *StatusView) Draw(canvas *render.Canvas) {
	canvas.DrawBox(s.x, s.y, s.width, s.height, render.StyleFrame)
	canvas.DrawText(s.x+2, s.y, " observing ", render.StyleTitle)

	ctx := s.chart.Ctx
	lines := []string{
		fmt.Sprintf("site: %s", ctx.Site.Name),
		fmt.Sprintf("lat:  %+8.4f°", ctx.Site.LatitudeDeg),
		fmt.Sprintf("lon:  %+8.4f°", ctx.Site.LongitudeDeg),
		fmt.Sprintf("mjd:  %.5f", ctx.MJD),
		fmt.Sprintf("lst:  %7.3f°", s.chart.LST()),
	}

	for i, line := range lines {
		y := s.y + 1 + i
		if y >= s.y+s.height-1 {
			break
		}
		s.drawLine(canvas, s.x+2, y, line)
	}

	help := "tab/↑↓ select  ←→ adjust  q quit"
	if len(help) < s.width-2 {
		canvas.DrawText(s.x+(s.width-len(help))/2, s.y+s.height-1, help, render.StyleLabel.Dim(true))
	}
}

// drawLine draws a single line of text clipped to the panel
func (s *StatusView) drawLine(canvas *render.Canvas, x, y int, text string) {
	i := 0
	for _, ch := range text {
		if i >= s.width-4 {
			break
		}
		canvas.Set(x+i, y, ch, render.StyleLabel)
		i++
	}
}

// UpdateDimensions updates the view dimensions
func (s *StatusView) UpdateDimensions(x, y, width, height int) {
	s.x = x
	s.y = y
	s.width = width
	s.height = height
}
