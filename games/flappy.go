package games

import (
	"math"
	"math/rand"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
)

const (
	flapGravity   = 18.0
	flapImpulse   = -7.0
	flapPipeSpeed = 7.0
	flapPipeGap   = 6
	flapPipeEvery = 8.0 // columns between pipes
	flapBirdX     = 4
)

type flapPipe struct {
	x      float64
	gapTop int // first open row of the gap
	passed bool
}

// Flappy: tap to stay airborne, slip through the gaps.
type Flappy struct {
	g     *grid.Grid
	beep  Beeper
	score ScoreFunc

	birdY  float64
	velY   float64
	pipes  []*flapPipe
	points int
	t      float64
	dead   bool
	wait   bool // pre-start hover
	done   bool
}

func NewFlappy(g *grid.Grid, beep Beeper, score ScoreFunc) *Flappy {
	f := &Flappy{g: g, beep: beep, score: score}
	f.reset()
	return f
}

func (f *Flappy) reset() {
	f.birdY = 9
	f.velY = 0
	f.pipes = []*flapPipe{newFlapPipe(float64(grid.Size + 2))}
	f.points = 0
	f.dead = false
	f.wait = true
}

func newFlapPipe(x float64) *flapPipe {
	return &flapPipe{x: x, gapTop: 2 + rand.Intn(grid.Size-flapPipeGap-4)}
}

func (f *Flappy) Running() bool { return !f.done }

func (f *Flappy) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyEscape) {
		f.done = true
		return
	}
	if in.PressedRune('r') {
		f.reset()
		return
	}
	if !in.Pressed(core.KeySpace) && !in.Pressed(core.KeyUp) {
		return
	}
	if f.dead {
		f.reset()
		return
	}
	f.wait = false
	f.velY = flapImpulse
	f.beep.Play(700, 25)
}

func (f *Flappy) Update(dt float64) {
	f.t += dt
	if f.dead {
		return
	}
	if f.wait {
		f.birdY = 9 + 1.2*math.Sin(f.t*3)
		return
	}
	f.velY += flapGravity * dt
	f.birdY += f.velY * dt

	last := f.pipes[len(f.pipes)-1]
	if last.x < float64(grid.Size)-flapPipeEvery {
		f.pipes = append(f.pipes, newFlapPipe(float64(grid.Size+1)))
	}
	alive := f.pipes[:0]
	for _, p := range f.pipes {
		p.x -= flapPipeSpeed * dt
		if !p.passed && p.x < flapBirdX {
			p.passed = true
			f.points++
			f.beep.Play(880, 40)
		}
		if p.x > -2 {
			alive = append(alive, p)
		}
	}
	f.pipes = alive
	f.checkCollision()
}

func (f *Flappy) checkCollision() {
	by := int(math.Round(f.birdY))
	if by < 0 || by >= grid.Size {
		f.die()
		return
	}
	for _, p := range f.pipes {
		if int(math.Round(p.x)) != flapBirdX {
			continue
		}
		if by < p.gapTop || by >= p.gapTop+flapPipeGap {
			f.die()
			return
		}
	}
}

func (f *Flappy) die() {
	f.dead = true
	f.score.Report("flappy", f.points)
	f.beep.Play(160, 300)
}

func (f *Flappy) Render() {
	f.g.Clear(grid.RGB{B: 18})
	green := grid.RGB{R: 0, G: 200, B: 0}
	for _, p := range f.pipes {
		x := int(math.Round(p.x))
		for y := 0; y < grid.Size; y++ {
			if y >= p.gapTop && y < p.gapTop+flapPipeGap {
				continue
			}
			f.g.SetPixel(x, y, green)
		}
	}
	by := int(math.Round(f.birdY))
	bird := grid.RGB{R: 255, G: 210, B: 0}
	if f.dead {
		bird = grid.RGB{R: 255, G: 60, B: 60}
	}
	f.g.SetPixel(flapBirdX, by, bird)
	f.g.SetPixel(flapBirdX-1, by, grid.RGB{R: 255, G: 160, B: 0})
	f.g.RenderNumber(f.points, 1, 0, grid.RGB{R: 255, G: 255, B: 255}, 1)
	if f.dead {
		f.g.RenderText("DEAD", centerX("DEAD", 1, 1), 12, grid.RGB{R: 255, G: 60, B: 60}, 1, 1)
	}
}
