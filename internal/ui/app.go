package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"asciisky/internal/render"
)

// panelHeight is the height of the control strip under the charts.
const panelHeight = 7

// mjdStep is one minute of time.
const mjdStep = 1.0 / (24 * 60)

// App is the main application controller: four synchronized chart
// views over one shared SkyChart, driven by keyboard sliders.
type App struct {
	screen      tcell.Screen
	chart       *SkyChart
	views       []*SkyView
	controls    *ControlView
	status      *StatusView
	canvas      *render.Canvas
	aspectRatio float64
	dirty       bool
	quit        chan struct{}
}

// NewApp creates the application over a populated chart.
func NewApp(chart *SkyChart, aspectRatio float64) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	width, height := screen.Size()

	ctx := chart.Ctx
	sliders := []*Slider{
		{Label: "alt", Min: chart.Bounds.MinAlt, Max: chart.Bounds.MaxAlt,
			Step: 1, Value: ctx.CenterAltDeg, Fmt: "%+6.1f°"},
		{Label: "az", Min: chart.Bounds.MinAz, Max: chart.Bounds.MaxAz,
			Step: 1, Value: ctx.CenterAzDeg, Fmt: "%+6.1f°"},
		{Label: "mjd", Min: chart.Bounds.MinMJD, Max: chart.Bounds.MaxMJD,
			Step: mjdStep, Value: ctx.MJD, Fmt: "%.5f"},
	}

	app := &App{
		screen: screen,
		chart:  chart,
		views: []*SkyView{
			NewSkyView(Armillary, 0, 0, 1, 1, aspectRatio),
			NewSkyView(Horizon, 0, 0, 1, 1, aspectRatio),
			NewSkyView(Planisphere, 0, 0, 1, 1, aspectRatio),
			NewSkyView(Mollweide, 0, 0, 1, 1, aspectRatio),
		},
		aspectRatio: aspectRatio,
		dirty:       true,
		quit:        make(chan struct{}),
	}
	app.controls = NewControlView(0, 0, 1, 1, sliders)
	app.status = NewStatusView(0, 0, 1, 1, chart)
	app.layout(width, height)

	return app, nil
}

// layout tiles the four views above the control strip.
func (a *App) layout(width, height int) {
	chartH := height - panelHeight
	if chartH < 4 {
		chartH = 4
	}
	vw := width / 2
	vh := chartH / 2

	a.views[0].UpdateDimensions(0, 0, vw, vh)
	a.views[1].UpdateDimensions(vw, 0, width-vw, vh)
	a.views[2].UpdateDimensions(0, vh, vw, chartH-vh)
	a.views[3].UpdateDimensions(vw, vh, width-vw, chartH-vh)

	controlsW := width * 3 / 5
	a.controls.UpdateDimensions(0, chartH, controlsW, panelHeight)
	a.status.UpdateDimensions(controlsW, chartH, width-controlsW, panelHeight)

	a.canvas = render.NewCanvas(width, height)
}

// Run starts the application main loop
func (a *App) Run() error {
	defer a.cleanup()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case <-ticker.C:
			if a.dirty {
				a.render()
				a.dirty = false
			}

		default:
			if a.screen.HasPendingEvent() {
				ev := a.screen.PollEvent()
				if !a.handleEvent(ev) {
					return nil
				}
			}
		}
	}
}

// render renders every view to the screen
func (a *App) render() {
	a.canvas.Clear()

	for _, v := range a.views {
		v.Draw(a.canvas, a.chart)
	}
	a.controls.Draw(a.canvas)
	a.status.Draw(a.canvas)

	a.screen.Clear()
	a.canvas.Blit(a.screen, 0, 0)
	a.screen.Show()
}

// applyControls pushes the slider values into the shared chart and
// refreshes every connected table.
func (a *App) applyControls() {
	sliders := a.controls.Sliders()
	// Clamp errors are logged inside SetControls; the clamped values
	// are already in range here because the sliders clamp themselves.
	_ = a.chart.SetControls(sliders[0].Value, sliders[1].Value, sliders[2].Value)
	a.dirty = true
}

// handleEvent processes keyboard events
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			close(a.quit)
			return false

		case tcell.KeyTab, tcell.KeyDown:
			a.controls.SelectNext()
			a.dirty = true

		case tcell.KeyBacktab, tcell.KeyUp:
			a.controls.SelectPrev()
			a.dirty = true

		case tcell.KeyLeft:
			if s := a.controls.Selected(); s != nil {
				s.Dec()
				a.applyControls()
			}

		case tcell.KeyRight:
			if s := a.controls.Selected(); s != nil {
				s.Inc()
				a.applyControls()
			}

		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				close(a.quit)
				return false

			case 'r', 'R':
				a.render()
			}
		}

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

// handleResize handles terminal resize events
func (a *App) handleResize() {
	a.screen.Sync()
	width, height := a.screen.Size()
	a.layout(width, height)
	a.dirty = true
}

// cleanup performs cleanup before exit
func (a *App) cleanup() {
	if a.screen != nil {
		a.screen.Fini()
	}
}
