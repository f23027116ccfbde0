package editor

import (
	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/games"
	"github.com/VA24d/Pixelate/grid"
	"github.com/VA24d/Pixelate/sprite"
)

// Paint palette shared by the sprite editors.
var palette = []grid.RGB{
	{R: 255, G: 255, B: 255},
	{R: 255, G: 40, B: 40},
	{R: 255, G: 150, B: 0},
	{R: 255, G: 230, B: 0},
	{R: 0, G: 220, B: 0},
	{R: 0, G: 200, B: 255},
	{R: 60, G: 90, B: 255},
	{R: 255, G: 60, B: 220},
}

// OverlayEditor paints a named sprite in place on the panel. The sprite's
// own pixels draw over a dim checker background so erased cells stay
// visible.
type OverlayEditor struct {
	g     *grid.Grid
	store *sprite.Store
	beep  games.Beeper

	name   string
	sp     *sprite.Sprite
	ox, oy int
	cx, cy int
	color  int
	savedT float64
	t      float64
	done   bool
}

func NewOverlayEditor(g *grid.Grid, store *sprite.Store, beep games.Beeper, name string, w, h, ox, oy int) *OverlayEditor {
	return &OverlayEditor{
		g:     g,
		store: store,
		beep:  beep,
		name:  name,
		sp:    store.GetOrCreate(name, w, h),
		ox:    ox,
		oy:    oy,
	}
}

func (e *OverlayEditor) Running() bool { return !e.done }

// openSprite switches the editor onto another named sprite.
func (e *OverlayEditor) openSprite(name string, w, h int) {
	e.name = name
	e.sp = e.store.GetOrCreate(name, w, h)
	e.cx, e.cy = 0, 0
}

func (e *OverlayEditor) Update(dt float64) {
	e.t += dt
	if e.savedT > 0 {
		e.savedT -= dt
	}
}

func (e *OverlayEditor) HandleInput(in *core.Input) {
	switch {
	case in.Pressed(core.KeyEscape):
		e.done = true
	case in.Pressed(core.KeyLeft):
		e.cx = (e.cx - 1 + e.sp.W) % e.sp.W
	case in.Pressed(core.KeyRight):
		e.cx = (e.cx + 1) % e.sp.W
	case in.Pressed(core.KeyUp):
		e.cy = (e.cy - 1 + e.sp.H) % e.sp.H
	case in.Pressed(core.KeyDown):
		e.cy = (e.cy + 1) % e.sp.H
	case in.Pressed(core.KeySpace):
		e.sp.Set(e.cx, e.cy, palette[e.color])
	case in.Pressed(core.KeyBackspace), in.PressedRune('x'):
		e.sp.Erase(e.cx, e.cy)
	case in.PressedRune('c'):
		e.color = (e.color + 1) % len(palette)
		e.beep.Play(520, 25)
	case in.PressedRune('s'):
		e.saveSprite()
	}
}

func (e *OverlayEditor) saveSprite() {
	e.store.Put(e.name, e.sp)
	if err := e.store.Save(); err == nil {
		e.savedT = 1.0
		e.beep.Play(880, 60)
	}
}

func (e *OverlayEditor) Render() {
	e.g.Clear(grid.RGB{})
	e.renderCanvas()
	e.renderPalette()
}

func (e *OverlayEditor) renderCanvas() {
	for y := 0; y < e.sp.H; y++ {
		for x := 0; x < e.sp.W; x++ {
			c, ok := e.sp.Get(x, y)
			if !ok {
				// Checker background marks empty cells.
				c = grid.RGB{R: 14, G: 14, B: 14}
				if (x+y)%2 == 0 {
					c = grid.RGB{R: 22, G: 22, B: 22}
				}
			}
			e.g.SetPixel(e.ox+x, e.oy+y, c)
		}
	}
	if int(e.t*4)%2 == 0 {
		e.g.SetPixel(e.ox+e.cx, e.oy+e.cy, palette[e.color])
	}
}

// renderPalette draws the color row on the bottom edge with the active
// color marked.
func (e *OverlayEditor) renderPalette() {
	y := grid.Size - 1
	for i, c := range palette {
		x := 1 + i*2
		e.g.SetPixel(x, y, c)
		if i == e.color {
			e.g.SetPixel(x, y-1, grid.RGB{R: 255, G: 255, B: 255})
		}
	}
	if e.savedT > 0 {
		e.g.SetPixel(grid.Size-1, y, grid.RGB{R: 0, G: 255, B: 0})
	}
}
