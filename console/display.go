// Package console owns the main loop: it pumps terminal events, steps the
// active screen and presents the LED grid on a tcell screen.
package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/VA24d/Pixelate/grid"
)

// LED presentation bounds. Size and spacing are kept in the same units the
// on/off hardware panel used so saved preferences stay meaningful; the
// terminal renderer quantizes them to character cells.
const (
	minLEDSize = 5
	maxLEDSize = 60
	minSpacing = 0
	maxSpacing = 30
	minGap     = 0
	maxGap     = 10

	ledSizeStep = 2
)

// Display converts the logical 19x19 grid into terminal cells. Each LED
// becomes a block of 2*scale x scale cells so it stays roughly square in
// a character raster.
type Display struct {
	ledSize int
	spacing int
	gap     int
	round   bool
}

func NewDisplay() *Display {
	return &Display{ledSize: 16, spacing: 10, gap: 2}
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (d *Display) AdjustLEDSize(dir int) {
	d.ledSize = clampI(d.ledSize+dir*ledSizeStep, minLEDSize, maxLEDSize)
}

func (d *Display) AdjustSpacing(dir int) {
	d.spacing = clampI(d.spacing+dir, minSpacing, maxSpacing)
}

func (d *Display) AdjustGap(dir int) {
	d.gap = clampI(d.gap+dir, minGap, maxGap)
}

func (d *Display) ToggleStyle() {
	d.round = !d.round
}

func (d *Display) scale() int {
	return clampI(d.ledSize/16, 1, 3)
}

// cellSize is the footprint of one LED including its spacing margin.
func (d *Display) cellSize() (int, int) {
	s := d.scale()
	margin := d.spacing / 10
	return 2*s + margin, s + margin
}

func (d *Display) fillRune() rune {
	switch {
	case d.round:
		return '●'
	case d.gap >= 5:
		return '▓'
	default:
		return '█'
	}
}

// Render draws the whole grid centered on the terminal. Off LEDs are drawn
// dimmed so the panel lattice stays visible on dark backgrounds.
func (d *Display) Render(s tcell.Screen, g *grid.Grid) {
	w, h := s.Size()
	cw, ch := d.cellSize()
	ox := (w - grid.Size*cw) / 2
	oy := (h - grid.Size*ch) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	scale := d.scale()
	fill := d.fillRune()

	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			c := g.GetPixel(x, y)
			if c == (grid.RGB{}) {
				c = c.Dim()
			}
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			for yy := 0; yy < scale; yy++ {
				for xx := 0; xx < 2*scale; xx++ {
					s.SetContent(ox+x*cw+xx, oy+y*ch+yy, fill, nil, style)
				}
			}
		}
	}
}
