package render

import (
	"github.com/gdamore/tcell/v2"
)

// Style definitions for the sky chart layers
var (
	StyleGraticule     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleHorizonGrat   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	StyleEcliptic      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleGalactic      = tcell.StyleDefault.Foreground(tcell.ColorDarkBlue)
	StyleHorizonCircle = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	StyleMarker        = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleStar          = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleLabel         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleFrame         = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleTitle         = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleSliderTrack   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleSliderKnob    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleSliderFocus   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// GlyphForSize picks a point glyph by marker size, so brighter stars
// and bigger markers read larger on a character grid.
func GlyphForSize(size float64) rune {
	switch {
	case size >= 8:
		return '●'
	case size >= 5:
		return '•'
	case size >= 3:
		return '∙'
	default:
		return '·'
	}
}
