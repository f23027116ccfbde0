// Package editor holds the console's drawing tools: the font editor for
// reshaping the 3x5 text glyphs and the overlay editors for pixel art
// sprites.
package editor

import (
	"strings"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/fontstore"
	"github.com/VA24d/Pixelate/games"
	"github.com/VA24d/Pixelate/grid"
)

const (
	atlasCols    = 4
	atlasRows    = 3
	atlasPerPage = atlasCols * atlasRows
	glyphScale   = 3
)

type fontView int

const (
	fontAtlas fontView = iota
	fontEdit
)

// FontEditor lets the player redraw any character of the 3x5 font. The
// atlas view pages through the charset; the edit view blows one glyph up
// for pixel by pixel editing. Changes are stored as overrides so the
// builtin font stays intact underneath.
type FontEditor struct {
	g     *grid.Grid
	store *fontstore.Store
	beep  games.Beeper

	view   fontView
	page   int
	cursor int // index within the page
	ch     rune
	work   grid.Glyph
	cx, cy int
	savedT float64
	t      float64
	done   bool
}

func NewFontEditor(g *grid.Grid, store *fontstore.Store, beep games.Beeper) *FontEditor {
	return &FontEditor{g: g, store: store, beep: beep}
}

func (e *FontEditor) Running() bool { return !e.done }

func (e *FontEditor) pageCount() int {
	return (len(grid.Charset()) + atlasPerPage - 1) / atlasPerPage
}

func (e *FontEditor) charAt(page, cell int) (rune, bool) {
	idx := page*atlasPerPage + cell
	cs := grid.Charset()
	if idx < 0 || idx >= len(cs) {
		return 0, false
	}
	return rune(cs[idx]), true
}

// openGlyph loads a character into the working buffer, preferring the
// saved override over the builtin shape.
func (e *FontEditor) openGlyph(ch rune) {
	e.ch = ch
	if gl, ok := e.store.Glyph(ch); ok {
		e.work = gl
	} else if gl, ok := grid.BuiltinGlyph(ch); ok {
		e.work = gl
	} else {
		e.work = grid.Glyph{}
	}
	e.cx, e.cy = 0, 0
	e.view = fontEdit
}

func (e *FontEditor) Update(dt float64) {
	e.t += dt
	if e.savedT > 0 {
		e.savedT -= dt
	}
}

func (e *FontEditor) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyEscape) {
		if e.view == fontEdit {
			e.view = fontAtlas
			return
		}
		e.done = true
		return
	}
	if e.view == fontAtlas {
		e.handleAtlas(in)
	} else {
		e.handleEdit(in)
	}
}

func (e *FontEditor) handleAtlas(in *core.Input) {
	switch {
	case in.Pressed(core.KeyLeft):
		e.cursor = (e.cursor - 1 + atlasPerPage) % atlasPerPage
	case in.Pressed(core.KeyRight):
		e.cursor = (e.cursor + 1) % atlasPerPage
	case in.Pressed(core.KeyUp):
		e.cursor = (e.cursor - atlasCols + atlasPerPage) % atlasPerPage
	case in.Pressed(core.KeyDown):
		e.cursor = (e.cursor + atlasCols) % atlasPerPage
	case in.PressedRune('n'):
		e.page = (e.page + 1) % e.pageCount()
	case in.PressedRune('p'):
		e.page = (e.page - 1 + e.pageCount()) % e.pageCount()
	case in.Pressed(core.KeyEnter), in.Pressed(core.KeySpace):
		if ch, ok := e.charAt(e.page, e.cursor); ok {
			e.openGlyph(ch)
			e.beep.Play(660, 30)
		}
	default:
		e.jumpToTyped(in)
	}
}

func (e *FontEditor) handleEdit(in *core.Input) {
	switch {
	case in.Pressed(core.KeyLeft):
		e.cx = (e.cx - 1 + grid.GlyphW) % grid.GlyphW
	case in.Pressed(core.KeyRight):
		e.cx = (e.cx + 1) % grid.GlyphW
	case in.Pressed(core.KeyUp):
		e.cy = (e.cy - 1 + grid.GlyphH) % grid.GlyphH
	case in.Pressed(core.KeyDown):
		e.cy = (e.cy + 1) % grid.GlyphH
	case in.Pressed(core.KeySpace):
		e.work[e.cy][e.cx] = 1 - e.work[e.cy][e.cx]
	case in.Pressed(core.KeyBackspace):
		e.work = grid.Glyph{}
	case in.Pressed(core.KeyTab):
		e.view = fontAtlas
	case in.PressedRune('s'):
		e.save()
	case in.PressedRune('r'):
		e.reset()
	default:
		e.jumpToTyped(in)
	}
}

// jumpToTyped opens the glyph for any charset character the player types.
func (e *FontEditor) jumpToTyped(in *core.Input) {
	for _, p := range in.Presses() {
		if p.Key != core.KeyNone || p.Rune == 0 {
			continue
		}
		ch := p.Rune
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if idx := strings.IndexRune(grid.Charset(), ch); idx >= 0 {
			e.page = idx / atlasPerPage
			e.cursor = idx % atlasPerPage
			e.openGlyph(ch)
			return
		}
	}
}

func (e *FontEditor) save() {
	e.store.SetGlyph(e.ch, e.work)
	if err := e.store.Save(); err == nil {
		e.savedT = 1.0
		e.beep.Play(880, 60)
	}
	e.g.SetFontOverrides(e.store.Overrides())
}

// reset drops the override and restores the builtin shape.
func (e *FontEditor) reset() {
	e.store.ClearGlyph(e.ch)
	err := e.store.Save()
	e.g.SetFontOverrides(e.store.Overrides())
	if gl, ok := grid.BuiltinGlyph(e.ch); ok {
		e.work = gl
	} else {
		e.work = grid.Glyph{}
	}
	if err == nil {
		e.beep.Play(330, 60)
	}
}

func (e *FontEditor) Render() {
	e.g.Clear(grid.RGB{})
	if e.view == fontAtlas {
		e.renderAtlas()
	} else {
		e.renderEdit()
	}
}

func (e *FontEditor) renderAtlas() {
	white := grid.RGB{R: 255, G: 255, B: 255}
	overridden := grid.RGB{R: 255, G: 210, B: 0}
	for cell := 0; cell < atlasPerPage; cell++ {
		ch, ok := e.charAt(e.page, cell)
		if !ok {
			continue
		}
		x := 1 + (cell%atlasCols)*4
		y := (cell / atlasCols) * 6
		c := white
		if _, ok := e.store.Glyph(ch); ok {
			c = overridden
		}
		e.g.RenderText(string(ch), x, y, c, 1, 1)
		if cell == e.cursor {
			blink := grid.RGB{R: 0, G: 160, B: 255}
			e.g.DrawLine(x-1, y+5, x+3, y+5, blink)
		}
	}
	// Page dots along the bottom edge.
	for i := 0; i < e.pageCount(); i++ {
		c := grid.RGB{R: 60, G: 60, B: 60}
		if i == e.page {
			c = grid.RGB{R: 0, G: 160, B: 255}
		}
		e.g.SetPixel(6+i*2, 18, c)
	}
}

func (e *FontEditor) renderEdit() {
	// Blown up working glyph.
	for gy := 0; gy < grid.GlyphH; gy++ {
		for gx := 0; gx < grid.GlyphW; gx++ {
			c := grid.RGB{R: 25, G: 25, B: 25}
			if e.work[gy][gx] != 0 {
				c = grid.RGB{R: 255, G: 255, B: 255}
			}
			e.g.FillRect(1+gx*glyphScale, 1+gy*glyphScale, glyphScale, glyphScale, c)
		}
	}
	// Cursor outline pulses over its cell.
	if int(e.t*3)%2 == 0 {
		cx, cy := 1+e.cx*glyphScale, 1+e.cy*glyphScale
		blink := grid.RGB{R: 0, G: 160, B: 255}
		e.g.DrawLine(cx, cy, cx+glyphScale-1, cy, blink)
		e.g.DrawLine(cx, cy+glyphScale-1, cx+glyphScale-1, cy+glyphScale-1, blink)
		e.g.DrawLine(cx, cy, cx, cy+glyphScale-1, blink)
		e.g.DrawLine(cx+glyphScale-1, cy, cx+glyphScale-1, cy+glyphScale-1, blink)
	}
	// Live preview at actual size next to the workspace.
	for gy := 0; gy < grid.GlyphH; gy++ {
		for gx := 0; gx < grid.GlyphW; gx++ {
			if e.work[gy][gx] != 0 {
				e.g.SetPixel(13+gx, 2+gy, grid.RGB{R: 255, G: 210, B: 0})
			}
		}
	}
	e.g.RenderText(string(e.ch), 11, 8, grid.RGB{R: 0, G: 160, B: 255}, 1, 1)
	saveC := grid.RGB{R: 120, G: 120, B: 120}
	if e.savedT > 0 {
		saveC = grid.RGB{R: 0, G: 255, B: 0}
	}
	e.g.RenderText("S", 11, 14, saveC, 1, 1)
}
