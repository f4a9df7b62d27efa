package ui

import (
	"fmt"
	"math"

	"asciisky/internal/catalog"
	"asciisky/internal/chart"
	"asciisky/internal/debug"
	"asciisky/internal/render"
	"asciisky/internal/skyproj"
)

// Layer tells the views how to draw a table.
type Layer int

const (
	LayerHealpix Layer = iota
	LayerGraticule
	LayerHorizonGraticule
	LayerEcliptic
	LayerGalactic
	LayerHorizonCircle
	LayerCircle
	LayerPatches
	LayerMarker
	LayerStar
)

// maxStarMarkers suppresses the star layer entirely when a magnitude
// cut still leaves too many points for a character grid to show
// legibly.
const maxStarMarkers = 2000

type namedTable struct {
	name  string
	layer Layer
	table *chart.Table
}

// SkyChart is the shared state behind every view: one projection
// context plus every connected table. Moving a control updates the
// context once and refreshes each table in place, so all views stay
// synchronized by construction.
type SkyChart struct {
	Ctx    skyproj.Context
	Bounds chart.ControlBounds

	tables  []namedTable
	healpix *chart.HealpixTable
	cmap    *render.Colormap
}

// NewSkyChart creates a chart for a context, with control bounds
// centered on the context's time.
func NewSkyChart(ctx skyproj.Context) *SkyChart {
	return &SkyChart{
		Ctx:    ctx,
		Bounds: chart.DefaultControlBounds(ctx.MJD),
	}
}

// Connect registers an externally built table under a name. Connected
// tables participate in every subsequent control update.
func (c *SkyChart) Connect(name string, layer Layer, t *chart.Table) {
	c.tables = append(c.tables, namedTable{name: name, layer: layer, table: t})
}

// Table returns a connected table by name, or nil.
func (c *SkyChart) Table(name string) *chart.Table {
	for _, nt := range c.tables {
		if nt.name == name {
			return nt.table
		}
	}
	return nil
}

// Tables visits the connected tables in draw order.
func (c *SkyChart) Tables(visit func(name string, layer Layer, t *chart.Table)) {
	for _, nt := range c.tables {
		visit(nt.name, nt.layer, nt.table)
	}
}

// Colormap returns the colormap for the healpix layer, or nil before
// AddHealpix.
func (c *SkyChart) Colormap() *render.Colormap { return c.cmap }

// AddHealpix builds the pixel boundary table for a dense RING map and
// connects it, deriving the colormap range from the finite values.
func (c *SkyChart) AddHealpix(values []float64, displayNside, boundStep int) (*chart.HealpixTable, error) {
	ht, err := chart.MakeHealpixTable(values, displayNside, boundStep, c.Ctx)
	if err != nil {
		return nil, err
	}
	min, max := render.ValueRange(ht.Float(chart.ColValue))
	c.cmap = render.DefaultColormap(min, max)
	c.healpix = ht
	c.Connect("healpix", LayerHealpix, ht.Table)
	return ht, nil
}

// AddGraticules connects the equatorial grid.
func (c *SkyChart) AddGraticules(spec chart.GraticuleSpec) {
	c.Connect("graticule", LayerGraticule, chart.MakeGraticulePoints(spec, c.Ctx))
}

// AddHorizonGraticules connects the altitude/azimuth grid.
func (c *SkyChart) AddHorizonGraticules(spec chart.HorizonGraticuleSpec) {
	c.Connect("horizon_graticule", LayerHorizonGraticule, chart.MakeHorizonGraticulePoints(spec, c.Ctx))
}

// AddHorizonCircle connects the horizon itself.
func (c *SkyChart) AddHorizonCircle() {
	c.Connect("horizon", LayerHorizonCircle,
		chart.MakeHorizonCirclePoints(90, 0, 90, 0, 360, 1, c.Ctx))
}

// AddMarker connects a single named marker as its own table.
func (c *SkyChart) AddMarker(m chart.Marker) error {
	t, err := chart.MakeMarkerTable([]chart.Marker{m}, c.Ctx)
	if err != nil {
		return err
	}
	c.Connect("marker:"+m.Name, LayerMarker, t)
	return nil
}

// AddSunMoon connects sun and moon markers.
func (c *SkyChart) AddSunMoon() {
	c.Connect("solar_system", LayerMarker, chart.MakeSolarSystemTable(c.Ctx))
}

// AddPatches connects survey-field footprint polygons.
func (c *SkyChart) AddPatches(ra, decl [][]float64) error {
	t, err := chart.MakePatchesTable(ra, decl, c.Ctx)
	if err != nil {
		return err
	}
	c.Connect("patches", LayerPatches, t)
	return nil
}

// AddStars connects catalog stars brighter than magLimit, sizing the
// glyphs by magnitude. The layer is dropped wholesale when the cut
// leaves too many points to draw legibly.
func (c *SkyChart) AddStars(stars []catalog.Star, magLimit float64) error {
	bright := catalog.BrighterThan(stars, magLimit)
	if len(bright) > maxStarMarkers {
		debug.Log().Int("stars", len(bright)).Float64("mag_limit", magLimit).
			Msg("star layer suppressed, too many sources after cut")
		return nil
	}
	ra := make([]float64, len(bright))
	decl := make([]float64, len(bright))
	names := make([]string, len(bright))
	sizes := make([]float64, len(bright))
	for i, s := range bright {
		ra[i], decl[i] = s.RA, s.Decl
		sizes[i] = starGlyphSize(s.Magnitude, magLimit)
	}
	t, err := chart.MakePointsTable(ra, decl, names, sizes, c.Ctx)
	if err != nil {
		return err
	}
	c.Connect("stars", LayerStar, t)
	return nil
}

// starGlyphSize maps magnitude to glyph size: brighter stars get
// bigger glyphs, with the faintest admitted magnitude at size 1.
func starGlyphSize(mag, magLimit float64) float64 {
	if math.IsNaN(mag) {
		return 1
	}
	size := 1 + (magLimit-mag)*2
	if size > 10 {
		size = 10
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Decorate connects the standard reference overlays: equatorial
// graticules, ecliptic, and galactic plane.
func (c *SkyChart) Decorate() {
	c.AddGraticules(chart.DefaultGraticuleSpec())
	c.Connect("ecliptic", LayerEcliptic, chart.MakeEclipticPoints(c.Ctx))
	c.Connect("galactic", LayerGalactic, chart.MakeGalacticPlanePoints(c.Ctx))
}

// SetControls applies slider values to the shared context and runs the
// update protocol over every connected table. Out-of-bounds values are
// clamped before use and reported, never applied raw.
func (c *SkyChart) SetControls(altDeg, azDeg, mjd float64) error {
	next := c.Ctx
	next.CenterAltDeg = altDeg
	next.CenterAzDeg = azDeg
	next.MJD = mjd

	err := chart.ClampContext(&next, c.Bounds)
	if err != nil {
		debug.Error().Err(err).Msg("control out of bounds")
		err = fmt.Errorf("controls: %w", err)
	}

	c.Ctx = next
	for _, nt := range c.tables {
		chart.Refresh(nt.table, c.Ctx)
	}
	return err
}

// LST returns the local sidereal time in degrees for the current
// context.
func (c *SkyChart) LST() float64 { return c.Ctx.LST() }
