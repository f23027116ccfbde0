package games

import (
	"math"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
)

// Per second stat decay for each species. Dogs are needy, cats mostly
// look after themselves.
var petSpecies = []struct {
	name  string
	decay float64
	body  grid.RGB
}{
	{name: "DOG", decay: 0.30, body: grid.RGB{R: 200, G: 150, B: 80}},
	{name: "CAT", decay: 0.18, body: grid.RGB{R: 120, G: 120, B: 130}},
	{name: "DINO", decay: 0.22, body: grid.RGB{R: 80, G: 200, B: 100}},
}

const petMaxStat = 10.0

// Pets is a little virtual pet. Keep food, fun and energy up; actions
// trade one stat against another.
type Pets struct {
	g    *grid.Grid
	beep Beeper

	species int
	hunger  float64 // 10 full, 0 starving
	fun     float64
	energy  float64
	actionT float64
	action  string
	t       float64
	done    bool
}

func NewPets(g *grid.Grid, beep Beeper) *Pets {
	p := &Pets{g: g, beep: beep}
	p.resetStats()
	return p
}

func (p *Pets) resetStats() {
	p.hunger = 7
	p.fun = 7
	p.energy = 7
}

func (p *Pets) Running() bool { return !p.done }

func (p *Pets) clampStats() {
	p.hunger = clampF(p.hunger, 0, petMaxStat)
	p.fun = clampF(p.fun, 0, petMaxStat)
	p.energy = clampF(p.energy, 0, petMaxStat)
}

func (p *Pets) HandleInput(in *core.Input) {
	switch {
	case in.Pressed(core.KeyEscape):
		p.done = true
	case in.Pressed(core.KeyLeft):
		p.species = (p.species - 1 + len(petSpecies)) % len(petSpecies)
		p.resetStats()
		p.beep.Play(440, 40)
	case in.Pressed(core.KeyRight):
		p.species = (p.species + 1) % len(petSpecies)
		p.resetStats()
		p.beep.Play(440, 40)
	case in.PressedRune('a'): // feed: fills the belly, a heavy meal tires
		p.hunger += 3
		p.energy -= 0.5
		p.flash("FEED")
	case in.PressedRune('s'): // play: fun up, burns food and energy
		p.fun += 3
		p.hunger -= 1
		p.energy -= 1.5
		p.flash("PLAY")
	case in.PressedRune('d'): // rest: energy up, boredom creeps in
		p.energy += 3.5
		p.fun -= 1
		p.flash("REST")
	}
	p.clampStats()
}

func (p *Pets) flash(a string) {
	p.action = a
	p.actionT = 0.8
	p.beep.Play(660, 50)
}

func (p *Pets) Update(dt float64) {
	p.t += dt
	if p.actionT > 0 {
		p.actionT -= dt
	}
	decay := petSpecies[p.species].decay * dt
	p.hunger -= decay
	p.fun -= decay * 0.8
	p.energy -= decay * 0.6
	p.clampStats()
}

// mood is the lowest stat: a pet is only as happy as its worst need.
func (p *Pets) mood() float64 {
	return math.Min(p.hunger, math.Min(p.fun, p.energy))
}

func (p *Pets) Render() {
	p.g.Clear(grid.RGB{})
	sp := petSpecies[p.species]
	p.g.RenderText(sp.name, centerX(sp.name, 1, 1), 0, grid.RGB{R: 255, G: 255, B: 255}, 1, 1)

	p.renderFace(sp.body)

	drawMeter(p.g, 1, 15, 8, int(math.Round(p.hunger*0.8)), grid.RGB{R: 255, G: 160, B: 0})
	drawMeter(p.g, 1, 16, 8, int(math.Round(p.fun*0.8)), grid.RGB{R: 255, G: 80, B: 200})
	drawMeter(p.g, 1, 17, 8, int(math.Round(p.energy*0.8)), grid.RGB{R: 0, G: 200, B: 255})

	if p.actionT > 0 {
		p.g.RenderText(p.action, 11, 15, grid.RGB{R: 255, G: 255, B: 0}, 1, 1)
	}
}

func (p *Pets) renderFace(body grid.RGB) {
	bob := int(math.Round(math.Sin(p.t * 2)))
	y := 7 + bob
	p.g.FillRect(6, y, 7, 6, body)
	switch p.species {
	case 0: // floppy ears
		p.g.SetPixel(6, y-1, body)
		p.g.SetPixel(12, y-1, body)
	case 1: // pointy ears
		p.g.SetPixel(7, y-1, body)
		p.g.SetPixel(11, y-1, body)
	case 2: // back spikes
		p.g.SetPixel(7, y-1, grid.RGB{R: 40, G: 140, B: 60})
		p.g.SetPixel(9, y-1, grid.RGB{R: 40, G: 140, B: 60})
		p.g.SetPixel(11, y-1, grid.RGB{R: 40, G: 140, B: 60})
	}

	dark := grid.RGB{R: 30, G: 30, B: 30}
	blink := math.Mod(p.t, 4) > 3.85
	if !blink {
		p.g.SetPixel(8, y+2, dark)
		p.g.SetPixel(10, y+2, dark)
	}

	mouth := grid.RGB{R: 160, G: 60, B: 60}
	switch m := p.mood(); {
	case m > 6: // smile
		p.g.SetPixel(8, y+4, mouth)
		p.g.SetPixel(9, y+5, mouth)
		p.g.SetPixel(10, y+4, mouth)
	case m > 3: // flat
		p.g.SetPixel(8, y+4, mouth)
		p.g.SetPixel(9, y+4, mouth)
		p.g.SetPixel(10, y+4, mouth)
	default: // frown
		p.g.SetPixel(8, y+5, mouth)
		p.g.SetPixel(9, y+4, mouth)
		p.g.SetPixel(10, y+5, mouth)
	}
}
