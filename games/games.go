// Package games contains the console's screens: the boot animation, the
// carousel menu and the eight playable games. Every screen draws into the
// shared LED grid and implements core.Screen.
package games

import "github.com/VA24d/Pixelate/grid"

// Beeper plays a tone of the given frequency (Hz) and duration (ms)
// through Play. A nil Beeper is silent.
type Beeper func(freq, ms int)

func (b Beeper) Play(freq, ms int) {
	if b != nil {
		b(freq, ms)
	}
}

// ScoreFunc reports a finished run's score for high-score tracking.
// A nil ScoreFunc discards scores.
type ScoreFunc func(game string, value int)

func (f ScoreFunc) Report(game string, value int) {
	if f != nil {
		f(game, value)
	}
}

// Small '<' arrow centered at (x, y).
func drawLeftArrow(g *grid.Grid, x, y int, c grid.RGB) {
	for _, d := range [][2]int{{0, 0}, {1, -1}, {1, 1}, {2, -2}, {2, 2}} {
		g.SetPixel(x+d[0], y+d[1], c)
	}
}

// Small '>' arrow centered at (x, y).
func drawRightArrow(g *grid.Grid, x, y int, c grid.RGB) {
	for _, d := range [][2]int{{0, 0}, {-1, -1}, {-1, 1}, {-2, -2}, {-2, 2}} {
		g.SetPixel(x+d[0], y+d[1], c)
	}
}

// Dim meter bar: width background pixels with the first filled ones lit.
func drawMeter(g *grid.Grid, x, y, width, filled int, c grid.RGB) {
	dim := grid.RGB{
		R: uint8(max(10, int(c.R)/5)),
		G: uint8(max(10, int(c.G)/5)),
		B: uint8(max(10, int(c.B)/5)),
	}
	for i := 0; i < width; i++ {
		g.SetPixel(x+i, y, dim)
	}
	for i := 0; i < filled && i < width; i++ {
		g.SetPixel(x+i, y, c)
	}
}

// centerX centers a string across the full panel width.
func centerX(s string, scale, spacing int) int {
	zone := grid.TextZone{X: 0, Y: 0, W: grid.Size, H: grid.Size}
	return grid.CenteredX(zone, len(s), scale, spacing)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
