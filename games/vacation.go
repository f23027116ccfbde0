package games

import (
	"math"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
)

// Vacation is a slideshow of animated postcard scenes, plus any photos
// found in the configured photo directory scaled down to the panel.
type Vacation struct {
	g    *grid.Grid
	beep Beeper

	photos  []photoSlide
	index   int
	animate bool
	t       float64
	done    bool
}

func NewVacation(g *grid.Grid, beep Beeper, photoDir string) *Vacation {
	v := &Vacation{g: g, beep: beep, animate: true}
	v.photos = loadPhotoSlides(photoDir)
	return v
}

func (v *Vacation) slideCount() int { return 2 + len(v.photos) }

func (v *Vacation) Running() bool { return !v.done }

func (v *Vacation) HandleInput(in *core.Input) {
	switch {
	case in.Pressed(core.KeyEscape):
		v.done = true
	case in.Pressed(core.KeyLeft):
		v.index = (v.index - 1 + v.slideCount()) % v.slideCount()
		v.beep.Play(440, 30)
	case in.Pressed(core.KeyRight):
		v.index = (v.index + 1) % v.slideCount()
		v.beep.Play(440, 30)
	case in.Pressed(core.KeySpace):
		v.animate = !v.animate
	}
}

func (v *Vacation) Update(dt float64) {
	if v.animate {
		v.t += dt
	}
}

func (v *Vacation) Render() {
	switch v.index {
	case 0:
		v.renderBeach()
	case 1:
		v.renderWaterfall()
	default:
		v.photos[v.index-2].draw(v.g)
	}
}

func (v *Vacation) renderBeach() {
	// Sky, sun, sea with rolling wave crests, sand.
	v.g.Clear(grid.RGB{R: 40, G: 120, B: 220})
	v.g.FillRect(14, 2, 3, 3, grid.RGB{R: 255, G: 220, B: 40})
	for y := 9; y < 14; y++ {
		for x := 0; x < grid.Size; x++ {
			c := grid.RGB{R: 0, G: 90, B: 180}
			phase := float64(x)*0.7 + v.t*2 + float64(y)
			if math.Sin(phase) > 0.82 {
				c = grid.RGB{R: 180, G: 220, B: 255}
			}
			v.g.SetPixel(x, y, c)
		}
	}
	v.g.FillRect(0, 14, grid.Size, 5, grid.RGB{R: 230, G: 200, B: 120})
	trunk := grid.RGB{R: 130, G: 80, B: 30}
	for y := 10; y < 15; y++ {
		v.g.SetPixel(3, y, trunk)
	}
	leaf := grid.RGB{R: 0, G: 170, B: 50}
	sway := int(math.Round(math.Sin(v.t * 1.5)))
	for _, d := range [][2]int{{-2, 0}, {-1, -1}, {0, -1}, {1, -1}, {2, 0}} {
		v.g.SetPixel(3+d[0]+sway, 9+d[1], leaf)
	}
}

func (v *Vacation) renderWaterfall() {
	v.g.Clear(grid.RGB{R: 30, G: 60, B: 30})
	rock := grid.RGB{R: 90, G: 80, B: 70}
	v.g.FillRect(0, 0, 6, grid.Size, rock)
	v.g.FillRect(13, 0, 6, grid.Size, rock)
	// Falling water: bright streaks scroll downward.
	for y := 0; y < 15; y++ {
		for x := 6; x < 13; x++ {
			c := grid.RGB{R: 60, G: 140, B: 230}
			if (y+x*3+int(v.t*12))%5 == 0 {
				c = grid.RGB{R: 200, G: 230, B: 255}
			}
			v.g.SetPixel(x, y, c)
		}
	}
	// Splash pool with foam.
	for y := 15; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			c := grid.RGB{R: 40, G: 110, B: 200}
			if math.Sin(float64(x)*1.3+v.t*5+float64(y)*2) > 0.7 {
				c = grid.RGB{R: 220, G: 240, B: 255}
			}
			v.g.SetPixel(x, y, c)
		}
	}
}
