package games

import (
	"math"
	"math/rand"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
	"github.com/VA24d/Pixelate/sprite"
)

const (
	raceMinSpeed  = 3.0
	raceMaxSpeed  = 13.0
	raceAccel     = 4.0
	raceBrake     = 8.0
	raceCoast     = 1.5
	raceSteer     = 9.0
	raceCarY      = 15
	raceTrafficCD = 1.4
)

var raceLanes = [3]float64{-3, 0, 3}

type raceCar struct {
	lane   float64 // offset from road center
	dist   float64 // distance ahead of the player
	passed bool
}

// Race is a forward scrolling lane dodger drawn with a fake perspective:
// the road widens toward the bottom of the panel and curves drift the
// player sideways.
type Race struct {
	g       *grid.Grid
	beep    Beeper
	score   ScoreFunc
	sprites *sprite.Store

	playerX  float64 // offset from road center
	speed    float64
	steer    float64
	throttle float64
	curve    float64
	curveT   float64
	dist     float64
	points   int
	traffic  []raceCar
	spawnT   float64
	t        float64
	crashed  bool
	done     bool
}

func NewRace(g *grid.Grid, sprites *sprite.Store, beep Beeper, score ScoreFunc) *Race {
	r := &Race{g: g, sprites: sprites, beep: beep, score: score}
	r.reset()
	return r
}

func (r *Race) reset() {
	r.playerX = 0
	r.speed = raceMinSpeed
	r.curve = 0
	r.dist = 0
	r.points = 0
	r.traffic = nil
	r.spawnT = raceTrafficCD
	r.crashed = false
}

func (r *Race) Running() bool { return !r.done }

// roadHalfWidth gives the road's half width at screen row y. Rows near the
// horizon are narrow, rows near the player are wide.
func roadHalfWidth(y int) int {
	w := 3 + (y-3)*5/(grid.Size-4)
	if w < 3 {
		w = 3
	}
	if w > 8 {
		w = 8
	}
	return w
}

func (r *Race) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyEscape) {
		r.done = true
		return
	}
	if r.crashed {
		if in.Pressed(core.KeySpace) || in.Pressed(core.KeyEnter) {
			r.reset()
		}
		return
	}
	r.steer = 0
	if in.Held(core.KeyLeft) {
		r.steer = -1
	}
	if in.Held(core.KeyRight) {
		r.steer = 1
	}
	r.throttle = 0
	if in.Held(core.KeyUp) {
		r.throttle = 1
	}
	if in.Held(core.KeyDown) {
		r.throttle = -1
	}
}

func (r *Race) Update(dt float64) {
	r.t += dt
	if r.crashed {
		return
	}
	r.playerX += r.steer * raceSteer * dt
	switch r.throttle {
	case 1:
		r.speed = clampF(r.speed+raceAccel*dt, raceMinSpeed, raceMaxSpeed)
	case -1:
		r.speed = clampF(r.speed-raceBrake*dt, raceMinSpeed, raceMaxSpeed)
	default:
		r.speed = clampF(r.speed-raceCoast*dt, raceMinSpeed, raceMaxSpeed)
	}

	// Curves wander slowly and push the car off center at speed.
	r.curveT -= dt
	if r.curveT <= 0 {
		r.curveT = 2 + rand.Float64()*3
		r.curve = (rand.Float64()*2 - 1) * 1.4
	}
	r.playerX += r.curve * (r.speed / raceMaxSpeed) * dt
	r.dist += r.speed * dt

	half := float64(roadHalfWidth(raceCarY))
	if r.playerX < -half || r.playerX > half {
		r.crash()
		return
	}

	r.spawnT -= dt
	if r.spawnT <= 0 {
		r.spawnT = raceTrafficCD * (0.7 + rand.Float64()*0.8) * raceMaxSpeed / r.speed
		r.traffic = append(r.traffic, raceCar{
			lane: raceLanes[rand.Intn(len(raceLanes))],
			dist: 20,
		})
	}
	alive := r.traffic[:0]
	for _, c := range r.traffic {
		// Traffic rolls slower than the player, so it approaches.
		c.dist -= (r.speed - raceMinSpeed + 1) * dt
		if !c.passed && c.dist < -0.9 {
			c.passed = true
			r.points++
			r.beep.Play(660, 30)
		}
		if c.dist > -2 {
			alive = append(alive, c)
		}
	}
	r.traffic = alive

	for _, c := range r.traffic {
		if c.dist < 0.8 && c.dist > -0.8 && math.Abs(c.lane-r.playerX) < 1.4 {
			r.crash()
			return
		}
	}
}

func (r *Race) crash() {
	r.crashed = true
	r.score.Report("race", r.points)
	r.beep.Play(140, 400)
}

// carScreenPos projects a traffic car onto the panel. dist 0 is the player
// row, dist 20 is the horizon.
func carScreenPos(lane, dist, playerX float64) (int, int, bool) {
	if dist < -1 || dist > 20 {
		return 0, 0, false
	}
	depth := clampF(dist/20, 0, 1)
	y := raceCarY - int(math.Round(depth*float64(raceCarY-3)))
	half := float64(roadHalfWidth(y))
	x := 9 + int(math.Round((lane-playerX*depth)*half/8))
	return x, y, true
}

func (r *Race) Render() {
	r.g.Clear(grid.RGB{G: 24, B: 6})
	gray := grid.RGB{R: 70, G: 70, B: 70}
	for y := 3; y < grid.Size; y++ {
		half := roadHalfWidth(y)
		shift := int(math.Round(-r.playerX * float64(half) / 8))
		r.g.SetPixel(9+shift-half, y, gray)
		r.g.SetPixel(9+shift+half, y, gray)
		for x := 9 + shift - half + 1; x < 9+shift+half; x++ {
			r.g.SetPixel(x, y, grid.RGB{R: 26, G: 26, B: 26})
		}
		if (y+int(r.dist*2))%4 < 2 {
			r.g.SetPixel(9+shift, y, grid.RGB{R: 200, G: 200, B: 200})
		}
	}
	for _, c := range r.traffic {
		if x, y, ok := carScreenPos(c.lane, c.dist, r.playerX); ok {
			r.g.SetPixel(x, y, grid.RGB{R: 255, G: 200, B: 0})
			if y < grid.Size-1 && c.dist < 10 {
				r.g.SetPixel(x, y+1, grid.RGB{R: 200, G: 150, B: 0})
			}
		}
	}
	carC := grid.RGB{R: 255, G: 40, B: 40}
	if r.crashed {
		carC = grid.HSV(math.Mod(r.t*300, 360), 1, 1)
	}
	r.g.SetPixel(9, raceCarY, carC)
	r.g.SetPixel(8, raceCarY+1, carC)
	r.g.SetPixel(9, raceCarY+1, carC)
	r.g.SetPixel(10, raceCarY+1, carC)

	r.renderHUD()
	if r.crashed {
		r.g.RenderText("CRASH", centerX("CRASH", 1, 1), 7, grid.RGB{R: 255, G: 255, B: 255}, 1, 1)
	}
}

// renderHUD draws the score, with optional saved sprite badges down the
// left edge when the player has drawn them.
func (r *Race) renderHUD() {
	scoreX, scoreY := 1, 0
	if r.sprites != nil {
		if s := r.sprites.Get("hud_race_dist"); s != nil && s.Len() > 0 {
			s.Draw(r.g, 0, 0)
		}
		if s := r.sprites.Get("hud_race_score"); s != nil && s.Len() > 0 {
			s.Draw(r.g, 0, 6)
			scoreX, scoreY = s.W+1, 6
		}
	}
	r.g.RenderNumber(r.points, scoreX, scoreY, grid.RGB{R: 255, G: 255, B: 255}, 1)
	// Speed bar along the top right.
	filled := int((r.speed - raceMinSpeed) / (raceMaxSpeed - raceMinSpeed) * 6)
	drawMeter(r.g, 12, 1, 6, filled, grid.RGB{R: 0, G: 220, B: 255})
}
