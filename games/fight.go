package games

import (
	"math"
	"math/rand"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
)

const (
	fightGroundY   = 15
	fightGravity   = 24.0
	fightJumpVel   = -10.0
	fightWalkSpeed = 7.0
	fightMaxHP     = 10
	fightPunchCD   = 0.45
	fightPunchHit  = 0.12 // active window at the start of a punch
	fightPunchDmg  = 1
	fightReach     = 2.2
)

type fighter struct {
	x, y     float64
	vy       float64
	face     int // +1 right, -1 left
	hp       int
	punchT   float64 // time left in current punch
	cd       float64 // cooldown until next punch
	grounded bool
}

func (f *fighter) punching() bool { return f.punchT > 0 }

func (f *fighter) startPunch() bool {
	if f.cd > 0 {
		return false
	}
	f.punchT = fightPunchHit
	f.cd = fightPunchCD
	return true
}

// Fight is a one round stick figure brawl against the computer. Arrows
// move, up jumps, space punches.
type Fight struct {
	g     *grid.Grid
	beep  Beeper
	score ScoreFunc

	p1     fighter
	p2     fighter
	p1Move float64
	aiT    float64
	aiDir  float64
	t      float64
	over   bool
	won    bool
	done   bool
}

func NewFight(g *grid.Grid, beep Beeper, score ScoreFunc) *Fight {
	f := &Fight{g: g, beep: beep, score: score}
	f.reset()
	return f
}

func (f *Fight) reset() {
	f.p1 = fighter{x: 4, y: fightGroundY, face: 1, hp: fightMaxHP, grounded: true}
	f.p2 = fighter{x: 14, y: fightGroundY, face: -1, hp: fightMaxHP, grounded: true}
	f.over = false
}

func (f *Fight) Running() bool { return !f.done }

func (f *Fight) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyEscape) {
		f.done = true
		return
	}
	if f.over {
		if in.Pressed(core.KeySpace) || in.Pressed(core.KeyEnter) {
			f.reset()
		}
		return
	}
	f.p1Move = 0
	if in.Held(core.KeyLeft) {
		f.p1Move = -1
		f.p1.face = -1
	}
	if in.Held(core.KeyRight) {
		f.p1Move = 1
		f.p1.face = 1
	}
	if in.Pressed(core.KeyUp) && f.p1.grounded {
		f.p1.vy = fightJumpVel
		f.p1.grounded = false
	}
	if in.Pressed(core.KeySpace) {
		if f.p1.startPunch() {
			f.beep.Play(300, 30)
		}
	}
}

func (f *Fight) Update(dt float64) {
	f.t += dt
	if f.over {
		return
	}
	f.p1.x += f.p1Move * fightWalkSpeed * dt
	f.stepFighter(&f.p1, dt)
	f.stepFighter(&f.p2, dt)
	f.updateAI(dt)

	if f.p1.punching() && f.inReach(&f.p1, &f.p2) {
		f.land(&f.p1, &f.p2)
	}
	if f.p2.punching() && f.inReach(&f.p2, &f.p1) {
		f.land(&f.p2, &f.p1)
	}
}

func (f *Fight) stepFighter(ft *fighter, dt float64) {
	ft.cd = math.Max(0, ft.cd-dt)
	ft.punchT = math.Max(0, ft.punchT-dt)
	if !ft.grounded {
		ft.vy += fightGravity * dt
		ft.y += ft.vy * dt
		if ft.y >= fightGroundY {
			ft.y = fightGroundY
			ft.vy = 0
			ft.grounded = true
		}
	}
	ft.x = clampF(ft.x, 1, grid.Size-2)
}

// The computer closes the gap, punches in range and occasionally jumps.
func (f *Fight) updateAI(dt float64) {
	f.aiT -= dt
	if f.aiT <= 0 {
		f.aiT = 0.2 + rand.Float64()*0.3
		gap := f.p1.x - f.p2.x
		switch {
		case math.Abs(gap) > fightReach*0.9:
			f.aiDir = math.Copysign(1, gap)
		case rand.Float64() < 0.3:
			f.aiDir = -math.Copysign(1, gap) // back off
		default:
			f.aiDir = 0
		}
		if math.Abs(gap) < fightReach && rand.Float64() < 0.6 {
			f.p2.startPunch()
		}
		if f.p2.grounded && rand.Float64() < 0.1 {
			f.p2.vy = fightJumpVel
			f.p2.grounded = false
		}
	}
	f.p2.x += f.aiDir * fightWalkSpeed * 0.8 * dt
	if f.p1.x > f.p2.x {
		f.p2.face = 1
	} else {
		f.p2.face = -1
	}
}

// inReach: the attacker's fist points at the target and is close enough,
// with some vertical tolerance for jump punches.
func (f *Fight) inReach(atk, def *fighter) bool {
	dx := def.x - atk.x
	if math.Copysign(1, dx) != float64(atk.face) {
		return false
	}
	return math.Abs(dx) <= fightReach && math.Abs(def.y-atk.y) <= 2
}

func (f *Fight) land(atk, def *fighter) {
	atk.punchT = 0 // one hit per punch
	def.hp -= fightPunchDmg
	def.x += float64(atk.face) * 1.2
	f.beep.Play(200, 50)
	if def.hp <= 0 {
		f.over = true
		f.won = def == &f.p2
		winnerHP := f.p1.hp
		if !f.won {
			winnerHP = 0
		}
		f.score.Report("fight", winnerHP)
		f.beep.Play(700, 200)
	}
}

func (f *Fight) Render() {
	f.g.Clear(grid.RGB{})
	ground := grid.RGB{R: 60, G: 40, B: 20}
	for x := 0; x < grid.Size; x++ {
		f.g.SetPixel(x, fightGroundY+1, ground)
	}
	drawMeter(f.g, 0, 0, 8, f.p1.hp*8/fightMaxHP, grid.RGB{R: 80, G: 160, B: 255})
	drawMeter(f.g, 11, 0, 8, f.p2.hp*8/fightMaxHP, grid.RGB{R: 255, G: 80, B: 80})

	f.renderFighter(&f.p1, grid.RGB{R: 80, G: 160, B: 255})
	f.renderFighter(&f.p2, grid.RGB{R: 255, G: 80, B: 80})

	if f.over {
		msg := "KO"
		f.g.RenderText(msg, centerX(msg, 1, 1), 5, grid.HSV(math.Mod(f.t*180, 360), 1, 1), 1, 1)
		who := "P1"
		if !f.won {
			who = "CPU"
		}
		f.g.RenderText(who, centerX(who, 1, 1), 11, grid.RGB{R: 255, G: 255, B: 255}, 1, 1)
	}
}

func (f *Fight) renderFighter(ft *fighter, c grid.RGB) {
	x, y := int(math.Round(ft.x)), int(math.Round(ft.y))
	f.g.SetPixel(x, y-3, c) // head
	f.g.SetPixel(x, y-2, c) // torso
	f.g.SetPixel(x, y-1, c) // hips
	f.g.SetPixel(x-1, y, c) // legs
	f.g.SetPixel(x+1, y, c)
	if ft.punching() {
		f.g.SetPixel(x+ft.face, y-2, grid.RGB{R: 255, G: 255, B: 255})
		f.g.SetPixel(x+2*ft.face, y-2, grid.RGB{R: 255, G: 255, B: 255})
	} else {
		f.g.SetPixel(x+ft.face, y-2, c)
	}
}
