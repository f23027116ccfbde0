package games

import (
	"math"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
)

const bootDuration = 3.0

// Boot runs the power-on animation. It finishes on its own after three
// seconds or immediately on Enter or Space.
type Boot struct {
	g        *grid.Grid
	beep     Beeper
	elapsed  float64
	chimed   bool
	finished bool
}

func NewBoot(g *grid.Grid, beep Beeper) *Boot {
	return &Boot{g: g, beep: beep}
}

func (b *Boot) Update(dt float64) {
	b.elapsed += dt
	if !b.chimed && b.elapsed >= 0.2 {
		b.chimed = true
		b.beep.Play(660, 120)
	}
	if b.elapsed >= bootDuration {
		b.finished = true
	}
}

func (b *Boot) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyEnter) || in.Pressed(core.KeySpace) {
		b.finished = true
	}
}

func (b *Boot) Running() bool { return !b.finished }

func (b *Boot) Render() {
	b.g.Clear(grid.RGB{})
	switch {
	case b.elapsed < 1.0:
		b.renderHSweep(b.elapsed)
	case b.elapsed < 2.0:
		b.renderVSweep(b.elapsed - 1.0)
	default:
		b.renderWave(b.elapsed - 2.0)
	}
}

// Stage one: a rainbow front sweeping left to right with a fading tail.
func (b *Boot) renderHSweep(t float64) {
	front := t * float64(grid.Size+6)
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			d := float64(x)
			if d > front {
				continue
			}
			fade := clampF(1.0-(front-d)/8.0, 0, 1)
			hue := math.Mod(d*16+t*120, 360)
			b.g.SetPixel(x, y, grid.HSV(hue, 1, fade))
		}
	}
}

// Stage two: the same front, top to bottom.
func (b *Boot) renderVSweep(t float64) {
	front := t * float64(grid.Size+6)
	for y := 0; y < grid.Size; y++ {
		if float64(y) > front {
			continue
		}
		fade := clampF(1.0-(front-float64(y))/8.0, 0, 1)
		for x := 0; x < grid.Size; x++ {
			hue := math.Mod(float64(y)*16+t*120+180, 360)
			b.g.SetPixel(x, y, grid.HSV(hue, 1, fade))
		}
	}
}

// Stage three: a circular rainbow wave radiating from the center.
func (b *Boot) renderWave(t float64) {
	cx, cy := 9.0, 9.0
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			v := 0.5 + 0.5*math.Sin(d*0.9-t*8)
			hue := math.Mod(d*24+t*90, 360)
			b.g.SetPixel(x, y, grid.HSV(hue, 1, v))
		}
	}
}
