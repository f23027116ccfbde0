package games

import (
	"math"
	"math/rand"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
)

const snakeTickRate = 8.0 // moves per second

// Snake grows one segment per food eaten. Hitting a wall or your own body
// ends the run.
type Snake struct {
	g     *grid.Grid
	beep  Beeper
	score ScoreFunc

	body    []grid.Point // head is the last element
	dir     grid.Point
	nextDir grid.Point
	food    grid.Point
	acc     float64
	t       float64
	points  int
	dead    bool
	done    bool
}

func NewSnake(g *grid.Grid, beep Beeper, score ScoreFunc) *Snake {
	s := &Snake{g: g, beep: beep, score: score}
	s.reset()
	return s
}

func (s *Snake) reset() {
	s.body = []grid.Point{{X: 7, Y: 9}, {X: 8, Y: 9}, {X: 9, Y: 9}}
	s.dir = grid.Point{X: 1, Y: 0}
	s.nextDir = s.dir
	s.points = 0
	s.acc = 0
	s.dead = false
	s.spawnFood()
}

func (s *Snake) Running() bool { return !s.done }

func (s *Snake) head() grid.Point { return s.body[len(s.body)-1] }

// spawnFood places food on a random cell not covered by the body.
func (s *Snake) spawnFood() {
	occupied := make(map[grid.Point]bool, len(s.body))
	for _, p := range s.body {
		occupied[p] = true
	}
	free := make([]grid.Point, 0, grid.Size*grid.Size-len(s.body))
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			p := grid.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return
	}
	s.food = free[rand.Intn(len(free))]
}

func (s *Snake) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyEscape) {
		s.done = true
		return
	}
	if s.dead {
		if in.Pressed(core.KeySpace) || in.Pressed(core.KeyEnter) {
			s.reset()
		}
		return
	}
	want := s.nextDir
	switch {
	case in.Pressed(core.KeyUp):
		want = grid.Point{X: 0, Y: -1}
	case in.Pressed(core.KeyDown):
		want = grid.Point{X: 0, Y: 1}
	case in.Pressed(core.KeyLeft):
		want = grid.Point{X: -1, Y: 0}
	case in.Pressed(core.KeyRight):
		want = grid.Point{X: 1, Y: 0}
	}
	// Reversing into yourself is never allowed.
	if want.X == -s.dir.X && want.Y == -s.dir.Y {
		return
	}
	s.nextDir = want
}

func (s *Snake) Update(dt float64) {
	s.t += dt
	if s.dead {
		return
	}
	s.acc += dt
	for s.acc >= 1.0/snakeTickRate {
		s.acc -= 1.0 / snakeTickRate
		s.step()
		if s.dead {
			return
		}
	}
}

func (s *Snake) step() {
	s.dir = s.nextDir
	h := s.head()
	next := grid.Point{X: h.X + s.dir.X, Y: h.Y + s.dir.Y}

	if next.X < 0 || next.X >= grid.Size || next.Y < 0 || next.Y >= grid.Size {
		s.die()
		return
	}
	grows := next == s.food
	// The tail cell vacates this tick, so chasing it is safe.
	body := s.body
	if !grows {
		body = body[1:]
	}
	for _, p := range body {
		if p == next {
			s.die()
			return
		}
	}

	if grows {
		s.body = append(s.body, next)
		s.points++
		s.beep.Play(660, 40)
		s.spawnFood()
	} else {
		copy(s.body, s.body[1:])
		s.body[len(s.body)-1] = next
	}
}

func (s *Snake) die() {
	s.dead = true
	s.score.Report("snake", s.points)
	s.beep.Play(180, 250)
}

func (s *Snake) Render() {
	s.g.Clear(grid.RGB{})
	if s.dead {
		s.g.RenderText("DEAD", centerX("DEAD", 1, 1), 3, grid.RGB{R: 255, G: 60, B: 60}, 1, 1)
		s.g.RenderNumber(s.points, centerX("00", 1, 1), 11, grid.RGB{R: 255, G: 255, B: 255}, 1)
		return
	}
	for i, p := range s.body {
		v := 0.45 + 0.55*float64(i+1)/float64(len(s.body))
		s.g.SetPixel(p.X, p.Y, grid.RGB{G: uint8(255 * v)})
	}
	h := s.head()
	s.g.SetPixel(h.X, h.Y, grid.RGB{R: 150, G: 255, B: 150})
	pulse := 0.6 + 0.4*math.Sin(s.t*6)
	s.g.SetPixel(s.food.X, s.food.Y, grid.RGB{R: uint8(255 * pulse), G: uint8(40 * pulse)})
}
