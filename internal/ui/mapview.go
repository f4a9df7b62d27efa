package ui

import (
	"asciisky/internal/chart"
	"asciisky/internal/render"
)

// Projection describes one map view variant: which projected column
// pair it draws, how much of the projection plane it shows, and which
// controls apply to it.
type Projection struct {
	Name   string
	XCol   string
	YCol   string
	Extent float64

	// Controls that change this view's geometry. The sliders are
	// global; these flags only drive the view's control legend.
	UsesOrientation bool
	UsesTime        bool
}

// The four standard views. Extents are the natural half-widths of each
// projection plane with a small margin: the orthographic sphere has
// radius 1, the equal-area disc radius 2, Mollweide spans 2*sqrt(2) in
// x, and the horizon plane reaches a zenith distance of pi/2 radians.
var (
	Armillary = Projection{
		Name: "armillary", XCol: chart.ColXOrth, YCol: chart.ColYOrth,
		Extent: 1.05, UsesOrientation: true, UsesTime: true,
	}
	Planisphere = Projection{
		Name: "planisphere", XCol: chart.ColXLaea, YCol: chart.ColYLaea,
		Extent: 2.1,
	}
	Mollweide = Projection{
		Name: "mollweide", XCol: chart.ColXMoll, YCol: chart.ColYMoll,
		Extent: 2.9,
	}
	Horizon = Projection{
		Name: "horizon", XCol: chart.ColXHz, YCol: chart.ColYHz,
		Extent: 1.7, UsesTime: true,
	}
)

// SkyView draws one projection of the shared chart into a rectangular
// region of the screen canvas.
type SkyView struct {
	proj        Projection
	x, y, w, h  int
	aspectRatio float64
}

// NewSkyView creates a view for a projection at a screen region.
func NewSkyView(proj Projection, x, y, w, h int, aspectRatio float64) *SkyView {
	return &SkyView{proj: proj, x: x, y: y, w: w, h: h, aspectRatio: aspectRatio}
}

// UpdateDimensions moves the view when the terminal is resized.
func (v *SkyView) UpdateDimensions(x, y, w, h int) {
	v.x, v.y, v.w, v.h = x, y, w, h
}

// Projection returns the view's projection descriptor.
func (v *SkyView) Projection() Projection { return v.proj }

// Draw renders every connected table of the chart into this view's
// region, layered so the sky map sits under the reference lines and
// the markers sit on top.
func (v *SkyView) Draw(canvas *render.Canvas, c *SkyChart) {
	canvas.DrawBox(v.x, v.y, v.w, v.h, render.StyleFrame)
	canvas.DrawText(v.x+2, v.y, " "+v.proj.Name+" ", render.StyleTitle)

	inner := render.NewFrame(v.x+1, v.y+1, v.w-2, v.h-2, v.proj.Extent, v.aspectRatio)
	r := render.NewChartRenderer(canvas, inner)

	// Filled layers first.
	c.Tables(func(name string, layer Layer, t *chart.Table) {
		switch layer {
		case LayerHealpix:
			r.FillPolygons(t, v.proj.XCol, v.proj.YCol, c.Colormap())
		case LayerPatches:
			r.FillPolygons(t, v.proj.XCol, v.proj.YCol, nil)
		}
	})

	c.Tables(func(name string, layer Layer, t *chart.Table) {
		switch layer {
		case LayerGraticule:
			r.DrawPolyline(t, v.proj.XCol, v.proj.YCol, '·', render.StyleGraticule)
		case LayerHorizonGraticule:
			r.DrawPolyline(t, v.proj.XCol, v.proj.YCol, '·', render.StyleHorizonGrat)
		case LayerEcliptic:
			r.DrawPolyline(t, v.proj.XCol, v.proj.YCol, '~', render.StyleEcliptic)
		case LayerGalactic:
			r.DrawPolyline(t, v.proj.XCol, v.proj.YCol, '-', render.StyleGalactic)
		case LayerHorizonCircle, LayerCircle:
			r.DrawPolyline(t, v.proj.XCol, v.proj.YCol, '=', render.StyleHorizonCircle)
		}
	})

	c.Tables(func(name string, layer Layer, t *chart.Table) {
		switch layer {
		case LayerStar:
			r.DrawPoints(t, v.proj.XCol, v.proj.YCol, render.StyleStar)
		case LayerMarker:
			r.DrawPoints(t, v.proj.XCol, v.proj.YCol, render.StyleMarker)
		}
	})
}
