package games

import (
	"math"
	"math/rand"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
)

const (
	bballWinScore   = 11
	bballPlayerSpd  = 8.0
	bballAISpd      = 6.5
	bballShotSpeed  = 14.0
	bballStealRange = 1.6
	bballStealOdds  = 0.08
	bballShotRange  = 9.0
)

var bballHoops = [2]grid.Point{{X: 1, Y: 9}, {X: 17, Y: 9}} // team 0 attacks hoop 1 and vice versa

// shotProbability falls off with distance to the hoop. Layups are close to
// automatic, half court heaves mostly miss.
func shotProbability(dist float64) float64 {
	return clampF(0.9-0.055*dist, 0.15, 0.9)
}

type bballPlayer struct {
	x, y  float64
	team  int
	human bool
}

type bballBall struct {
	inFlight bool
	holder   int // player index, -1 when loose or in flight
	x, y     float64
	fromX    float64
	fromY    float64
	toX      float64
	toY      float64
	progress float64
	flight   float64 // total flight time
	scoring  bool    // decided at launch
	shotDist float64
	shooter  int
}

// Basketball is two on two. You run the blue point guard; everyone else is
// computer controlled. Baskets are worth two, first team to eleven wins.
type Basketball struct {
	g     *grid.Grid
	beep  Beeper
	score ScoreFunc

	players [4]bballPlayer // 0,1 team 0 (0 human), 2,3 team 1
	ball    bballBall
	scores  [2]int
	moveX   float64
	moveY   float64
	stealCD float64
	msg     string
	msgT    float64
	t       float64
	over    bool
	done    bool
}

func NewBasketball(g *grid.Grid, beep Beeper, score ScoreFunc) *Basketball {
	b := &Basketball{g: g, beep: beep, score: score}
	b.resetCourt(0)
	return b
}

func (b *Basketball) resetCourt(possession int) {
	b.players[0] = bballPlayer{x: 5, y: 7, team: 0, human: true}
	b.players[1] = bballPlayer{x: 5, y: 12, team: 0}
	b.players[2] = bballPlayer{x: 13, y: 7, team: 1}
	b.players[3] = bballPlayer{x: 13, y: 12, team: 1}
	b.ball = bballBall{holder: possession * 2}
}

func (b *Basketball) Running() bool { return !b.done }

func (b *Basketball) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyEscape) {
		b.done = true
		return
	}
	if b.over {
		if in.Pressed(core.KeySpace) || in.Pressed(core.KeyEnter) {
			b.scores = [2]int{}
			b.over = false
			b.resetCourt(0)
		}
		return
	}
	b.moveX, b.moveY = 0, 0
	if in.HeldRune('a') || in.Held(core.KeyLeft) {
		b.moveX = -1
	}
	if in.HeldRune('d') || in.Held(core.KeyRight) {
		b.moveX = 1
	}
	if in.HeldRune('w') || in.Held(core.KeyUp) {
		b.moveY = -1
	}
	if in.HeldRune('s') || in.Held(core.KeyDown) {
		b.moveY = 1
	}
	if in.Pressed(core.KeySpace) {
		if b.ball.holder == 0 {
			b.shoot(0)
		} else {
			b.trySteal(0)
		}
	}
	if in.PressedRune('p') && b.ball.holder == 0 {
		b.pass(0, 1)
	}
}

func (b *Basketball) Update(dt float64) {
	b.t += dt
	if b.msgT > 0 {
		b.msgT -= dt
	}
	if b.over {
		return
	}
	b.stealCD = math.Max(0, b.stealCD-dt)

	p := &b.players[0]
	p.x = clampF(p.x+b.moveX*bballPlayerSpd*dt, 0, grid.Size-1)
	p.y = clampF(p.y+b.moveY*bballPlayerSpd*dt, 2, grid.Size-1)

	for i := 1; i < 4; i++ {
		b.updateAI(i, dt)
	}
	b.updateBall(dt)
}

// updateAI picks a role for one computer player each frame: carry the ball
// up court, chase the carrier, find space on offense, or fall back and
// guard the hoop.
func (b *Basketball) updateAI(i int, dt float64) {
	p := &b.players[i]
	var tx, ty float64
	switch {
	case b.ball.holder == i: // carry
		hoop := bballHoops[1-p.team]
		tx, ty = float64(hoop.X), float64(hoop.Y)
		d := math.Hypot(tx-p.x, ty-p.y)
		if d < bballShotRange && rand.Float64() < 0.8*dt {
			b.shoot(i)
			return
		}
	case b.ball.holder >= 0 && b.players[b.ball.holder].team != p.team:
		carrier := &b.players[b.ball.holder]
		if b.nearestDefender(b.ball.holder) == i { // chase
			tx, ty = carrier.x, carrier.y
			if math.Hypot(tx-p.x, ty-p.y) < bballStealRange {
				b.trySteal(i)
			}
		} else { // defense
			hoop := bballHoops[p.team]
			tx = (carrier.x + float64(hoop.X)) / 2
			ty = (carrier.y + float64(hoop.Y)) / 2
		}
	case b.ball.holder >= 0: // offense, drift toward the far lane
		hoop := bballHoops[1-p.team]
		tx = float64(hoop.X)
		ty = p.y
		if b.players[b.ball.holder].y > 9 {
			ty = 5
		} else {
			ty = 13
		}
	default: // loose or airborne ball, converge on it
		tx, ty = b.ball.x, b.ball.y
	}
	dx, dy := tx-p.x, ty-p.y
	d := math.Hypot(dx, dy)
	if d > 0.2 {
		p.x = clampF(p.x+dx/d*bballAISpd*dt, 0, grid.Size-1)
		p.y = clampF(p.y+dy/d*bballAISpd*dt, 2, grid.Size-1)
	}
}

func (b *Basketball) nearestDefender(carrier int) int {
	c := b.players[carrier]
	best, bestD := -1, math.MaxFloat64
	for i := range b.players {
		if b.players[i].team == c.team || b.players[i].human {
			continue
		}
		d := math.Hypot(b.players[i].x-c.x, b.players[i].y-c.y)
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

func (b *Basketball) trySteal(i int) {
	if b.ball.holder < 0 || b.players[b.ball.holder].team == b.players[i].team {
		return
	}
	if b.players[i].human && b.stealCD > 0 {
		return
	}
	c := b.players[b.ball.holder]
	if math.Hypot(c.x-b.players[i].x, c.y-b.players[i].y) > bballStealRange {
		return
	}
	if b.players[i].human {
		b.stealCD = 0.5
	}
	if rand.Float64() < bballStealOdds {
		b.ball.holder = i
		b.beep.Play(500, 60)
	}
}

func (b *Basketball) pass(from, to int) {
	b.launch(from, b.players[to].x, b.players[to].y, false)
}

func (b *Basketball) shoot(i int) {
	hoop := bballHoops[1-b.players[i].team]
	b.launch(i, float64(hoop.X), float64(hoop.Y), true)
	b.beep.Play(600, 40)
}

func (b *Basketball) launch(from int, tx, ty float64, shot bool) {
	p := b.players[from]
	d := math.Hypot(tx-p.x, ty-p.y)
	b.ball = bballBall{
		inFlight: true,
		holder:   -1,
		x:        p.x, y: p.y,
		fromX: p.x, fromY: p.y,
		toX: tx, toY: ty,
		flight:   math.Max(d/bballShotSpeed, 0.15),
		shotDist: d,
		scoring:  shot && rand.Float64() < shotProbability(d),
		shooter:  from,
	}
	if !shot {
		b.ball.scoring = false
		b.ball.shotDist = -1
	}
}

func (b *Basketball) updateBall(dt float64) {
	if b.ball.holder >= 0 {
		h := b.players[b.ball.holder]
		b.ball.x, b.ball.y = h.x, h.y
		return
	}
	if !b.ball.inFlight {
		// Loose ball, first player to touch it picks it up.
		for i := range b.players {
			if math.Hypot(b.players[i].x-b.ball.x, b.players[i].y-b.ball.y) < 1.2 {
				b.ball.holder = i
				return
			}
		}
		return
	}
	b.ball.progress += dt / b.ball.flight
	u := clampF(b.ball.progress, 0, 1)
	b.ball.x = b.ball.fromX + (b.ball.toX-b.ball.fromX)*u
	// Arc: lift the ball along the flight path.
	arc := 3 * math.Sin(u*math.Pi)
	b.ball.y = b.ball.fromY + (b.ball.toY-b.ball.fromY)*u - arc*0.3
	if b.ball.progress < 1 {
		return
	}
	b.ball.inFlight = false
	b.ball.x, b.ball.y = b.ball.toX, b.ball.toY
	if b.ball.shotDist < 0 {
		return // pass lands loose for the receiver to grab
	}
	if b.ball.scoring {
		b.basket(b.players[b.ball.shooter].team)
	} else {
		b.msg, b.msgT = "MISS", 0.8
		b.ball.x += rand.Float64()*3 - 1.5
		b.ball.y += rand.Float64()*3 - 1.5
	}
}

func (b *Basketball) basket(team int) {
	b.scores[team] += 2
	b.beep.Play(880, 120)
	b.msg, b.msgT = "SCORE", 0.8
	if b.scores[team] >= bballWinScore {
		b.over = true
		b.score.Report("basketball", b.scores[0])
		return
	}
	b.resetCourt(1 - team)
}

func (b *Basketball) Render() {
	b.g.Clear(grid.RGB{R: 14, G: 8, B: 4})
	hoopC := grid.RGB{R: 255, G: 120, B: 0}
	for _, h := range bballHoops {
		b.g.SetPixel(h.X, h.Y-1, hoopC)
		b.g.SetPixel(h.X, h.Y+1, hoopC)
		b.g.SetPixel(h.X, h.Y, grid.RGB{R: 120, G: 50, B: 0})
	}
	colors := [4]grid.RGB{
		{R: 80, G: 160, B: 255},
		{R: 40, G: 90, B: 200},
		{R: 255, G: 80, B: 80},
		{R: 200, G: 40, B: 40},
	}
	for i, p := range b.players {
		b.g.SetPixel(int(math.Round(p.x)), int(math.Round(p.y)), colors[i])
	}
	ball := grid.RGB{R: 255, G: 160, B: 20}
	if b.ball.inFlight {
		ball = grid.RGB{R: 255, G: 220, B: 120}
	}
	b.g.SetPixel(int(math.Round(b.ball.x)), int(math.Round(b.ball.y)), ball)

	b.g.RenderNumber(b.scores[0], 1, 0, colors[0], 1)
	b.g.RenderNumber(b.scores[1], 12, 0, colors[2], 1)
	if b.msgT > 0 {
		b.g.RenderText(b.msg, centerX(b.msg, 1, 1), 7, grid.RGB{R: 255, G: 255, B: 255}, 1, 1)
	}
	if b.over {
		win := "P1"
		if b.scores[1] > b.scores[0] {
			win = "CPU"
		}
		b.g.RenderText(win, centerX(win, 1, 1), 7, grid.HSV(math.Mod(b.t*120, 360), 1, 1), 1, 1)
	}
}
