package games

import (
	"math"
	"strings"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
	"github.com/VA24d/Pixelate/sprite"
)

// MenuChoice is what the player picked when the menu screen stops running.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceGame
	ChoiceFontEditor
	ChoiceCardEditor
	ChoiceHUDEditor
)

// Card describes one menu entry.
type Card struct {
	Name string
	ID   string
	logo func(g *grid.Grid, ox int, t float64)
}

// Cards is the carousel order. ID doubles as the high-score key.
var Cards = []Card{
	{Name: "PONG", ID: "pong", logo: logoPong},
	{Name: "SNAKE", ID: "snake", logo: logoSnake},
	{Name: "FLAP", ID: "flappy", logo: logoFlappy},
	{Name: "BBALL", ID: "basketball", logo: logoBasketball},
	{Name: "PETS", ID: "pets", logo: logoPets},
	{Name: "VACAY", ID: "vacation", logo: logoVacation},
	{Name: "FIGHT", ID: "fight", logo: logoFight},
	{Name: "RACE", ID: "race", logo: logoRace},
}

// Menu is the card carousel shown after boot. When it stops running the
// console reads Choice and Selected to decide what to launch.
type Menu struct {
	g       *grid.Grid
	sprites *sprite.Store
	beep    Beeper
	best    func(id string) (int, bool)

	index  int
	offset float64
	smooth bool
	t      float64
	done   bool

	Choice   MenuChoice
	Selected int
}

func NewMenu(g *grid.Grid, sprites *sprite.Store, beep Beeper, best func(id string) (int, bool)) *Menu {
	return &Menu{g: g, sprites: sprites, beep: beep, best: best, smooth: true}
}

func (m *Menu) Running() bool { return !m.done }

// Reset rearms the menu after a game or editor returns to it.
func (m *Menu) Reset() {
	m.done = false
	m.Choice = ChoiceNone
}

func (m *Menu) Update(dt float64) {
	m.t += dt
	target := float64(m.index)
	if !m.smooth {
		m.offset = target
		return
	}
	diff := target - m.offset
	if math.Abs(diff) < 0.01 {
		m.offset = target
		return
	}
	m.offset += diff * math.Min(1, dt*10)
}

func (m *Menu) HandleInput(in *core.Input) {
	switch {
	case in.Pressed(core.KeyLeft):
		if m.index > 0 {
			m.index--
			if !m.smooth {
				m.offset = float64(m.index)
			}
			m.beep.Play(440, 40)
		}
	case in.Pressed(core.KeyRight):
		if m.index < len(Cards)-1 {
			m.index++
			if !m.smooth {
				m.offset = float64(m.index)
			}
			m.beep.Play(440, 40)
		}
	case in.Pressed(core.KeyEnter), in.Pressed(core.KeySpace):
		m.Choice = ChoiceGame
		m.Selected = m.index
		m.done = true
		m.beep.Play(880, 80)
	case in.PressedRune('f'):
		m.Choice = ChoiceFontEditor
		m.done = true
	case in.PressedRune('e'):
		m.Choice = ChoiceCardEditor
		m.Selected = m.index
		m.done = true
	case in.PressedRune('h'):
		m.Choice = ChoiceHUDEditor
		m.done = true
	case in.PressedRune('m'):
		m.smooth = !m.smooth
	}
}

// CurrentCard is the card under the cursor, used by the card editor.
func (m *Menu) CurrentCard() Card { return Cards[m.index] }

func (m *Menu) Render() {
	m.g.Clear(grid.RGB{})
	base := int(math.Floor(m.offset))
	frac := m.offset - float64(base)
	m.renderCard(base, -int(math.Round(frac*float64(grid.Size))))
	if frac != 0 {
		m.renderCard(base+1, grid.Size-int(math.Round(frac*float64(grid.Size))))
	}
	// Arrows and the name strip stay fixed while cards slide.
	pulse := uint8(120 + 80*math.Sin(m.t*4))
	drawLeftArrow(m.g, 1, 9, grid.RGB{R: pulse, G: pulse, B: pulse})
	drawRightArrow(m.g, 17, 9, grid.RGB{R: pulse, G: pulse, B: pulse})
	name := Cards[m.index].Name
	m.g.RenderText(name, centerX(name, 1, 1), 0, grid.RGB{R: 255, G: 255, B: 255}, 1, 1)
	if m.best != nil {
		if v, ok := m.best(Cards[m.index].ID); ok && v > 0 {
			m.g.RenderNumber(v, 1, 14, grid.RGB{R: 255, G: 200, B: 0}, 1)
		}
	}
}

// renderCard draws card i shifted horizontally by ox LED columns. A saved
// menu_card overlay replaces the builtin logo, and a menu_logo sprite
// replaces just the logo art.
func (m *Menu) renderCard(i, ox int) {
	i = ((i % len(Cards)) + len(Cards)) % len(Cards)
	card := Cards[i]
	key := strings.ToLower(card.Name)
	if m.sprites != nil {
		if s := m.sprites.Get("menu_card_" + key); s != nil && s.Len() > 0 {
			s.Draw(m.g, ox, 2)
			return
		}
		if s := m.sprites.Get("menu_logo_" + key); s != nil && s.Len() > 0 {
			s.Draw(m.g, ox+(grid.Size-s.W)/2, 6)
			return
		}
	}
	card.logo(m.g, ox, m.t)
}

// DrawCardLogo draws card i's builtin logo art. The card editor uses it
// to seed an overlay from the stock artwork.
func DrawCardLogo(g *grid.Grid, i int) {
	if i < 0 || i >= len(Cards) {
		return
	}
	Cards[i].logo(g, 0, 0)
}

func logoPong(g *grid.Grid, ox int, t float64) {
	white := grid.RGB{R: 255, G: 255, B: 255}
	for dy := 0; dy < 4; dy++ {
		g.SetPixel(ox+4, 7+dy, white)
		g.SetPixel(ox+14, 7+dy, white)
	}
	bx := 9 + int(3*math.Sin(t*3))
	g.SetPixel(ox+bx, 9, grid.RGB{R: 255, G: 220, B: 0})
}

func logoSnake(g *grid.Grid, ox int, t float64) {
	green := grid.RGB{R: 0, G: 220, B: 0}
	body := []grid.Point{
		{X: 5, Y: 11}, {X: 6, Y: 11}, {X: 7, Y: 11}, {X: 7, Y: 10},
		{X: 7, Y: 9}, {X: 8, Y: 9}, {X: 9, Y: 9}, {X: 10, Y: 9},
		{X: 11, Y: 9}, {X: 11, Y: 8}, {X: 11, Y: 7}, {X: 12, Y: 7}, {X: 13, Y: 7},
	}
	for _, p := range body {
		g.SetPixel(ox+p.X, p.Y, green)
	}
	g.SetPixel(ox+13, 7, grid.RGB{R: 120, G: 255, B: 120})
	g.SetPixel(ox+5, 8, grid.RGB{R: 255, G: 60, B: 60})
}

func logoFlappy(g *grid.Grid, ox int, t float64) {
	by := 9 + int(1.5*math.Sin(t*4))
	yellow := grid.RGB{R: 255, G: 210, B: 0}
	g.FillRect(ox+7, by-1, 3, 3, yellow)
	g.SetPixel(ox+10, by, grid.RGB{R: 255, G: 120, B: 0})
	g.SetPixel(ox+8, by-1, grid.RGB{R: 0, G: 0, B: 0})
	green := grid.RGB{R: 0, G: 180, B: 0}
	for y := 4; y < 8; y++ {
		g.SetPixel(ox+14, y, green)
	}
	for y := 12; y < 16; y++ {
		g.SetPixel(ox+14, y, green)
	}
}

func logoBasketball(g *grid.Grid, ox int, t float64) {
	orange := grid.RGB{R: 255, G: 120, B: 0}
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx*dx+dy*dy <= 5 {
				g.SetPixel(ox+9+dx, 9+dy, orange)
			}
		}
	}
	line := grid.RGB{R: 80, G: 30, B: 0}
	for dy := -2; dy <= 2; dy++ {
		g.SetPixel(ox+9, 9+dy, line)
	}
	for dx := -2; dx <= 2; dx++ {
		g.SetPixel(ox+9+dx, 9, line)
	}
}

func logoPets(g *grid.Grid, ox int, t float64) {
	tan := grid.RGB{R: 220, G: 170, B: 90}
	g.FillRect(ox+6, 7, 7, 6, tan)
	g.SetPixel(ox+6, 6, tan)
	g.SetPixel(ox+12, 6, tan)
	dark := grid.RGB{R: 40, G: 20, B: 0}
	blink := math.Mod(t, 3) > 2.8
	if !blink {
		g.SetPixel(ox+8, 9, dark)
		g.SetPixel(ox+10, 9, dark)
	}
	g.SetPixel(ox+9, 11, grid.RGB{R: 160, G: 60, B: 60})
}

func logoVacation(g *grid.Grid, ox int, t float64) {
	sun := grid.RGB{R: 255, G: 220, B: 40}
	g.FillRect(ox+12, 5, 2, 2, sun)
	sea := grid.RGB{R: 0, G: 110, B: 200}
	for x := 0; x < grid.Size; x++ {
		off := 0
		if (x+int(t*4))%4 < 2 {
			off = 1
		}
		g.SetPixel(ox+x, 13+off, sea)
	}
	trunk := grid.RGB{R: 130, G: 80, B: 30}
	g.SetPixel(ox+5, 12, trunk)
	g.SetPixel(ox+5, 11, trunk)
	g.SetPixel(ox+5, 10, trunk)
	leaf := grid.RGB{R: 0, G: 180, B: 60}
	g.SetPixel(ox+4, 9, leaf)
	g.SetPixel(ox+5, 9, leaf)
	g.SetPixel(ox+6, 9, leaf)
	g.SetPixel(ox+3, 10, leaf)
	g.SetPixel(ox+7, 10, leaf)
}

func logoFight(g *grid.Grid, ox int, t float64) {
	drawStick(g, ox+6, 9, grid.RGB{R: 80, G: 160, B: 255}, 1)
	drawStick(g, ox+12, 9, grid.RGB{R: 255, G: 80, B: 80}, -1)
}

// Minimal stick figure for the fight logo, facing dir.
func drawStick(g *grid.Grid, x, y int, c grid.RGB, dir int) {
	g.SetPixel(x, y, c)
	g.SetPixel(x, y+1, c)
	g.SetPixel(x, y+2, c)
	g.SetPixel(x+dir, y+1, c)
	g.SetPixel(x-dir, y+3, c)
	g.SetPixel(x+dir, y+3, c)
}

func logoRace(g *grid.Grid, ox int, t float64) {
	gray := grid.RGB{R: 90, G: 90, B: 90}
	for y := 4; y < 16; y++ {
		w := 2 + (y-4)/3
		g.SetPixel(ox+9-w, y, gray)
		g.SetPixel(ox+9+w, y, gray)
		if (y+int(t*8))%4 < 2 {
			g.SetPixel(ox+9, y, grid.RGB{R: 230, G: 230, B: 230})
		}
	}
	red := grid.RGB{R: 255, G: 40, B: 40}
	g.FillRect(ox+8, 12, 3, 2, red)
	g.SetPixel(ox+9, 11, red)
}
