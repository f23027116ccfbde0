package games

import (
	"math"
	"math/rand"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
)

const (
	pongWinScore     = 5
	pongPaddleH      = 4
	pongBaseSpeed    = 9.0
	pongMaxSpeed     = 16.0
	pongPaddleSpeed  = 11.0
	pongAISpeed      = 8.5
	pongTrailLen     = 6
	pongServeDelay   = 0.8
	pongSpinTransfer = 0.5
)

type pongPhase int

const (
	pongModeSelect pongPhase = iota
	pongServing
	pongRally
	pongOver
)

// Pong is the two paddle classic. One or two players; the left paddle is
// always human, the right one is the computer in single player mode.
type Pong struct {
	g     *grid.Grid
	beep  Beeper
	score ScoreFunc

	phase    pongPhase
	twoUp    bool
	leftY    float64
	rightY   float64
	leftVel  float64
	rightVel float64
	ballX    float64
	ballY    float64
	velX     float64
	velY     float64
	trail    []grid.Point
	scoreL   int
	scoreR   int
	timer    float64
	t        float64
	winLeft  bool
	lastLeft bool
	done     bool
}

func NewPong(g *grid.Grid, beep Beeper, score ScoreFunc) *Pong {
	p := &Pong{g: g, beep: beep, score: score}
	p.resetPositions(1)
	return p
}

func (p *Pong) Running() bool { return !p.done }

func (p *Pong) resetPositions(dir int) {
	mid := float64(grid.Size-pongPaddleH) / 2
	p.leftY, p.rightY = mid, mid
	p.ballX, p.ballY = 9, 9
	angle := (rand.Float64()*0.8 - 0.4)
	p.velX = pongBaseSpeed * math.Cos(angle) * float64(dir)
	p.velY = pongBaseSpeed * math.Sin(angle)
	p.trail = p.trail[:0]
	p.timer = pongServeDelay
}

func (p *Pong) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyEscape) {
		p.done = true
		return
	}
	switch p.phase {
	case pongModeSelect:
		if in.PressedRune('1') {
			p.twoUp = false
			p.phase = pongServing
		}
		if in.PressedRune('2') {
			p.twoUp = true
			p.phase = pongServing
		}
	case pongServing, pongRally:
		p.leftVel = 0
		if in.HeldRune('w') {
			p.leftVel = -pongPaddleSpeed
		}
		if in.HeldRune('s') {
			p.leftVel = pongPaddleSpeed
		}
		if p.twoUp {
			p.rightVel = 0
			if in.Held(core.KeyUp) {
				p.rightVel = -pongPaddleSpeed
			}
			if in.Held(core.KeyDown) {
				p.rightVel = pongPaddleSpeed
			}
		}
	case pongOver:
		if in.Pressed(core.KeySpace) || in.Pressed(core.KeyEnter) {
			p.scoreL, p.scoreR = 0, 0
			p.phase = pongModeSelect
			p.resetPositions(1)
		}
	}
}

func (p *Pong) Update(dt float64) {
	p.t += dt
	switch p.phase {
	case pongServing:
		p.movePaddles(dt)
		p.timer -= dt
		if p.timer <= 0 {
			p.phase = pongRally
		}
	case pongRally:
		p.movePaddles(dt)
		p.moveBall(dt)
	}
}

func (p *Pong) movePaddles(dt float64) {
	p.leftY = clampF(p.leftY+p.leftVel*dt, 0, float64(grid.Size-pongPaddleH))
	if p.twoUp {
		p.rightY = clampF(p.rightY+p.rightVel*dt, 0, float64(grid.Size-pongPaddleH))
		return
	}
	// Computer tracks the ball center with capped speed and a slow
	// wobble so it stays beatable.
	target := p.ballY - pongPaddleH/2 + 1.5*math.Sin(p.t*2.3)
	diff := target - p.rightY
	step := clampF(diff, -pongAISpeed*dt, pongAISpeed*dt)
	p.rightY = clampF(p.rightY+step, 0, float64(grid.Size-pongPaddleH))
}

func (p *Pong) moveBall(dt float64) {
	p.ballX += p.velX * dt
	p.ballY += p.velY * dt

	if p.ballY < 0 {
		p.ballY = -p.ballY
		p.velY = -p.velY
		p.beep.Play(330, 25)
	}
	if p.ballY > grid.Size-1 {
		p.ballY = 2*(grid.Size-1) - p.ballY
		p.velY = -p.velY
		p.beep.Play(330, 25)
	}

	if p.velX < 0 && p.ballX <= 1 && p.ballX >= 0 {
		if p.ballY >= p.leftY-0.5 && p.ballY <= p.leftY+pongPaddleH+0.5 {
			p.bounce(&p.velX, p.leftY)
			p.ballX = 1
		}
	}
	if p.velX > 0 && p.ballX >= grid.Size-2 && p.ballX <= grid.Size-1 {
		if p.ballY >= p.rightY-0.5 && p.ballY <= p.rightY+pongPaddleH+0.5 {
			p.bounce(&p.velX, p.rightY)
			p.ballX = grid.Size - 2
		}
	}

	if p.ballX < -1 {
		p.pointScored(false)
	} else if p.ballX > grid.Size {
		p.pointScored(true)
	}

	p.trail = append(p.trail, grid.Point{X: int(math.Round(p.ballX)), Y: int(math.Round(p.ballY))})
	if len(p.trail) > pongTrailLen {
		p.trail = p.trail[len(p.trail)-pongTrailLen:]
	}
}

// bounce reverses horizontal travel, speeds the ball up a little and adds
// spin from where the ball struck the paddle. Edge hits deflect hard,
// center hits return flat.
func (p *Pong) bounce(vx *float64, paddleY float64) {
	speed := math.Min(math.Abs(*vx)*1.06, pongMaxSpeed)
	if *vx > 0 {
		*vx = -speed
	} else {
		*vx = speed
	}
	offset := (p.ballY-paddleY)/pongPaddleH - 0.5
	p.velY += offset * speed * pongSpinTransfer
	p.velY = clampF(p.velY, -0.8*speed, 0.8*speed)
	p.beep.Play(523, 30)
}

func (p *Pong) pointScored(left bool) {
	p.lastLeft = left
	if left {
		p.scoreL++
	} else {
		p.scoreR++
	}
	p.beep.Play(220, 120)
	if p.scoreL >= pongWinScore || p.scoreR >= pongWinScore {
		p.phase = pongOver
		p.winLeft = p.scoreL > p.scoreR
		p.score.Report("pong", max(p.scoreL, p.scoreR))
		p.beep.Play(784, 200)
		return
	}
	dir := 1
	if left {
		dir = -1
	}
	p.resetPositions(dir)
	p.phase = pongServing
}

func (p *Pong) Render() {
	p.g.Clear(grid.RGB{})
	switch p.phase {
	case pongModeSelect:
		p.g.RenderText("PONG", centerX("PONG", 1, 1), 1, grid.RGB{R: 255, G: 255, B: 255}, 1, 1)
		p.g.RenderText("1P", 3, 8, grid.RGB{R: 0, G: 255, B: 0}, 1, 1)
		p.g.RenderText("2P", 11, 8, grid.RGB{R: 0, G: 160, B: 255}, 1, 1)
		return
	case pongOver:
		winner := "P2"
		c := grid.RGB{R: 255, G: 80, B: 80}
		if p.winLeft {
			winner = "P1"
			c = grid.RGB{R: 80, G: 160, B: 255}
		}
		p.g.RenderText(winner, centerX(winner, 1, 1), 3, c, 1, 1)
		p.g.RenderText("WINS", centerX("WINS", 1, 1), 10, grid.HSV(math.Mod(p.t*120, 360), 1, 1), 1, 1)
		return
	}

	for i, pt := range p.trail {
		hue := math.Mod(p.t*60+float64(i)*25, 360)
		v := float64(i+1) / float64(len(p.trail)+1) * 0.5
		p.g.SetPixel(pt.X, pt.Y, grid.HSV(hue, 1, v))
	}
	white := grid.RGB{R: 255, G: 255, B: 255}
	for dy := 0; dy < pongPaddleH; dy++ {
		p.g.SetPixel(0, int(math.Round(p.leftY))+dy, grid.RGB{R: 80, G: 160, B: 255})
		p.g.SetPixel(grid.Size-1, int(math.Round(p.rightY))+dy, grid.RGB{R: 255, G: 80, B: 80})
	}
	p.g.SetPixel(int(math.Round(p.ballX)), int(math.Round(p.ballY)), white)
	cl := grid.RGB{R: 80, G: 160, B: 255}
	cr := grid.RGB{R: 255, G: 80, B: 80}
	// the scorer's digit pulses during the serve pause
	if p.phase == pongServing && p.scoreL+p.scoreR > 0 {
		pulse := 0.6 + 0.4*math.Sin(p.t*12)
		if p.lastLeft {
			cl = cl.Scale(pulse)
		} else {
			cr = cr.Scale(pulse)
		}
	}
	p.g.RenderNumber(p.scoreL, 3, 0, cl, 1)
	p.g.RenderNumber(p.scoreR, 13, 0, cr, 1)
}
