package ui

import (
	"fmt"
	"math"

	"asciisky/internal/render"
)

// Slider is one keyboard-driven control: a labeled value on a track.
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Step  float64
	Value float64
	Fmt   string
}

// Inc moves the slider up one step, clamping at the top.
func (s *Slider) Inc() {
	s.Value = math.Min(s.Value+s.Step, s.Max)
}

// Dec moves the slider down one step, clamping at the bottom.
func (s *Slider) Dec() {
	s.Value = math.Max(s.Value-s.Step, s.Min)
}

// ControlView displays the sliders and tracks which one has keyboard
// focus.
type ControlView struct {
	sliders       []*Slider
	selectedIndex int
	x, y          int
	width, height int
}

// NewControlView creates the control panel for a set of sliders.
func NewControlView(x, y, width, height int, sliders []*Slider) *ControlView {
	return &ControlView{
		sliders: sliders,
		x:       x,
		y:       y,
		width:   width,
		height:  height,
	}
}

// Sliders returns the sliders in display order.
func (c *ControlView) Sliders() []*Slider { return c.sliders }

// SelectNext moves focus down
func (c *ControlView) SelectNext() {
	if c.selectedIndex < len(c.sliders)-1 {
		c.selectedIndex++
	}
}

// SelectPrev moves focus up
func (c *ControlView) SelectPrev() {
	if c.selectedIndex > 0 {
		c.selectedIndex--
	}
}

// Selected returns the focused slider
func (c *ControlView) Selected() *Slider {
	if c.selectedIndex >= 0 && c.selectedIndex < len(c.sliders) {
		return c.sliders[c.selectedIndex]
	}
	return nil
}

// Draw renders the control panel to the canvas
func (c *ControlView) Draw(canvas *render.Canvas) {
	canvas.DrawBox(c.x, c.y, c.width, c.height, render.StyleFrame)
	canvas.DrawText(c.x+2, c.y, " controls ", render.StyleTitle)

	for i, s := range c.sliders {
		y := c.y + 1 + i
		if y >= c.y+c.height-1 {
			break
		}

		labelStyle := render.StyleLabel
		if i == c.selectedIndex {
			labelStyle = render.StyleSliderFocus
		}

		label := fmt.Sprintf("%-4s", s.Label)
		canvas.DrawText(c.x+2, y, label, labelStyle)

		value := fmt.Sprintf(s.Fmt, s.Value)
		trackX := c.x + 2 + len(label) + 1
		trackW := c.width - (len(label) + len(value) + 7)
		if trackW < 3 {
			continue
		}

		canvas.Set(trackX, y, '[', render.StyleSliderTrack)
		for j := 0; j < trackW; j++ {
			canvas.Set(trackX+1+j, y, '─', render.StyleSliderTrack)
		}
		canvas.Set(trackX+trackW+1, y, ']', render.StyleSliderTrack)

		frac := 0.0
		if s.Max > s.Min {
			frac = (s.Value - s.Min) / (s.Max - s.Min)
		}
		knob := trackX + 1 + int(frac*float64(trackW-1))
		knobStyle := render.StyleSliderKnob
		if i == c.selectedIndex {
			knobStyle = render.StyleSliderFocus
		}
		canvas.Set(knob, y, '●', knobStyle)

		canvas.DrawText(trackX+trackW+3, y, value, labelStyle)
	}
}

// UpdateDimensions updates the view dimensions
func (c *ControlView) UpdateDimensions(x, y, width, height int) {
	c.x = x
	c.y = y
	c.width = width
	c.height = height
}
