package games

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/grid"
	"github.com/VA24d/Pixelate/sprite"
)

// press builds an Input carrying a single key press for one frame.
func press(t *testing.T, p core.Press) *core.Input {
	t.Helper()
	tr := core.NewTracker()
	now := time.Now()
	tr.Observe(p, now)
	return tr.Frame(now)
}

func keyPress(t *testing.T, k core.Key) *core.Input {
	return press(t, core.Press{Key: k})
}

func TestPongEdgeHitAddsSpin(t *testing.T) {
	p := NewPong(grid.New(), nil, nil)
	p.phase = pongRally
	p.leftY = 7
	p.ballX = 1
	p.ballY = 7 // top edge of a stationary paddle
	p.velX = -pongBaseSpeed
	p.velY = 0
	p.moveBall(0.016)
	if p.velX <= 0 {
		t.Fatalf("Expected a bounce off the left paddle, velX %v", p.velX)
	}
	if p.velY >= 0 {
		t.Errorf("Expected upward spin from a top-edge hit, velY %v", p.velY)
	}
	limit := 0.8 * math.Abs(p.velX)
	if math.Abs(p.velY) > limit+1e-9 {
		t.Errorf("Expected vertical speed capped at %v, got %v", limit, p.velY)
	}
}

func TestPongCenterHitStaysFlat(t *testing.T) {
	p := NewPong(grid.New(), nil, nil)
	p.phase = pongRally
	p.leftY = 7
	p.ballX = 1
	p.ballY = p.leftY + pongPaddleH/2 // dead center
	p.velX = -pongBaseSpeed
	p.velY = 0
	p.moveBall(0.016)
	if p.velY != 0 {
		t.Errorf("Expected no spin from a center hit, velY %v", p.velY)
	}
}

func TestSnakeIgnoresReversal(t *testing.T) {
	s := NewSnake(grid.New(), nil, nil)
	if s.dir != (grid.Point{X: 1, Y: 0}) {
		t.Fatalf("Expected initial direction right, got %v", s.dir)
	}
	s.HandleInput(keyPress(t, core.KeyLeft))
	if s.nextDir != (grid.Point{X: 1, Y: 0}) {
		t.Errorf("Expected reversal to be ignored, got %v", s.nextDir)
	}
	s.HandleInput(keyPress(t, core.KeyUp))
	if s.nextDir != (grid.Point{X: 0, Y: -1}) {
		t.Errorf("Expected direction up, got %v", s.nextDir)
	}
}

func TestSnakeStepMovesHead(t *testing.T) {
	s := NewSnake(grid.New(), nil, nil)
	s.food = grid.Point{X: 0, Y: 0}
	head := s.head()
	s.step()
	want := grid.Point{X: head.X + 1, Y: head.Y}
	if s.head() != want {
		t.Errorf("Expected head %v, got %v", want, s.head())
	}
	if len(s.body) != 3 {
		t.Errorf("Expected length 3 without food, got %d", len(s.body))
	}
}

func TestSnakeWallKills(t *testing.T) {
	var reported int
	s := NewSnake(grid.New(), nil, func(game string, v int) { reported = v })
	s.body = []grid.Point{{X: 16, Y: 9}, {X: 17, Y: 9}, {X: 18, Y: 9}}
	s.points = 4
	s.step()
	if !s.dead {
		t.Error("Expected snake to die at the wall")
	}
	if reported != 4 {
		t.Errorf("Expected score 4 reported, got %d", reported)
	}
}

func TestSnakeEatsAndGrows(t *testing.T) {
	s := NewSnake(grid.New(), nil, nil)
	head := s.head()
	s.food = grid.Point{X: head.X + 1, Y: head.Y}
	s.step()
	if len(s.body) != 4 {
		t.Errorf("Expected length 4 after eating, got %d", len(s.body))
	}
	if s.points != 1 {
		t.Errorf("Expected 1 point, got %d", s.points)
	}
	for _, p := range s.body {
		if p == s.food {
			t.Errorf("Expected food off the body, got %v on it", s.food)
		}
	}
}

func TestFlappyPassScoresOnce(t *testing.T) {
	f := NewFlappy(grid.New(), nil, nil)
	f.wait = false
	f.birdY = 9
	f.velY = 0
	f.pipes = []*flapPipe{{x: flapBirdX + 0.5, gapTop: 7}}
	f.Update(0.1)
	if f.points != 1 {
		t.Fatalf("Expected 1 point after passing, got %d", f.points)
	}
	pts := f.points
	f.Update(0.05)
	if f.points != pts {
		t.Errorf("Expected pass to score once, got %d", f.points)
	}
}

func TestFlappyPipeCollision(t *testing.T) {
	f := NewFlappy(grid.New(), nil, nil)
	f.wait = false
	f.birdY = 2
	f.pipes = []*flapPipe{{x: flapBirdX, gapTop: 7}}
	f.checkCollision()
	if !f.dead {
		t.Error("Expected collision above the gap")
	}

	f = NewFlappy(grid.New(), nil, nil)
	f.wait = false
	f.birdY = 9
	f.pipes = []*flapPipe{{x: flapBirdX, gapTop: 7}}
	f.checkCollision()
	if f.dead {
		t.Error("Expected bird inside the gap to survive")
	}
}

func TestFlappyFlapSetsImpulse(t *testing.T) {
	f := NewFlappy(grid.New(), nil, nil)
	f.HandleInput(keyPress(t, core.KeySpace))
	if f.wait {
		t.Error("Expected first flap to start the run")
	}
	if f.velY != flapImpulse {
		t.Errorf("Expected velocity %v, got %v", flapImpulse, f.velY)
	}
}

func TestShotProbabilityFallsWithDistance(t *testing.T) {
	close := shotProbability(2)
	far := shotProbability(12)
	if close <= far {
		t.Errorf("Expected close shots to be likelier, got %v vs %v", close, far)
	}
	if p := shotProbability(100); p < 0.1 {
		t.Errorf("Expected a floor on shot probability, got %v", p)
	}
	if p := shotProbability(0); p > 0.95 {
		t.Errorf("Expected no guaranteed shots, got %v", p)
	}
}

func TestBasketballBasketAndWin(t *testing.T) {
	var final int
	b := NewBasketball(grid.New(), nil, func(game string, v int) { final = v })
	b.basket(0)
	if b.scores[0] != 2 {
		t.Errorf("Expected 2 points per basket, got %d", b.scores[0])
	}
	b.scores[0] = 10
	b.basket(0)
	if !b.over {
		t.Error("Expected game over at 11 or more")
	}
	if final != 12 {
		t.Errorf("Expected final score 12 reported, got %d", final)
	}
}

func TestFightPunchLandsInReach(t *testing.T) {
	f := NewFight(grid.New(), nil, nil)
	f.p1.x, f.p2.x = 8, 9.5
	f.p1.face = 1
	if !f.p1.startPunch() {
		t.Fatal("Expected punch to start off cooldown")
	}
	f.Update(0.01)
	if f.p2.hp != fightMaxHP-fightPunchDmg {
		t.Errorf("Expected %d hp after a hit, got %d", fightMaxHP-fightPunchDmg, f.p2.hp)
	}
	if f.p1.punching() {
		t.Error("Expected punch consumed after landing")
	}
}

func TestFightPunchRespectsFacingAndRange(t *testing.T) {
	f := NewFight(grid.New(), nil, nil)
	f.p1.x, f.p2.x = 8, 9.5
	f.p1.face = -1 // looking away
	f.p1.startPunch()
	f.Update(0.01)
	if f.p2.hp != fightMaxHP {
		t.Errorf("Expected no damage facing away, got %d hp", f.p2.hp)
	}

	f = NewFight(grid.New(), nil, nil)
	f.p1.x, f.p2.x = 2, 14
	f.p1.face = 1
	f.p1.startPunch()
	f.Update(0.01)
	if f.p2.hp != fightMaxHP {
		t.Errorf("Expected no damage out of range, got %d hp", f.p2.hp)
	}
}

func TestFightPunchCooldown(t *testing.T) {
	f := NewFight(grid.New(), nil, nil)
	if !f.p1.startPunch() {
		t.Fatal("Expected first punch to start")
	}
	if f.p1.startPunch() {
		t.Error("Expected second punch blocked by cooldown")
	}
}

func TestPetsStatsDecayAndClamp(t *testing.T) {
	p := NewPets(grid.New(), nil)
	before := p.hunger
	p.Update(2)
	if p.hunger >= before {
		t.Errorf("Expected hunger to decay from %v, got %v", before, p.hunger)
	}
	p.hunger = 9.5
	p.hunger += 3
	p.clampStats()
	if p.hunger != petMaxStat {
		t.Errorf("Expected clamp at %v, got %v", petMaxStat, p.hunger)
	}
	p.energy = -5
	p.clampStats()
	if p.energy != 0 {
		t.Errorf("Expected clamp at 0, got %v", p.energy)
	}
}

func TestPetsActionKeys(t *testing.T) {
	p := NewPets(grid.New(), nil)
	p.HandleInput(press(t, core.Press{Rune: 'a'}))
	if p.action != "FEED" {
		t.Errorf("Expected feed on A, got %q", p.action)
	}
	p.HandleInput(press(t, core.Press{Rune: 's'}))
	if p.action != "PLAY" {
		t.Errorf("Expected play on S, got %q", p.action)
	}
	p.HandleInput(press(t, core.Press{Rune: 'd'}))
	if p.action != "REST" {
		t.Errorf("Expected rest on D, got %q", p.action)
	}
}

func TestPetsSpeciesDecayRates(t *testing.T) {
	if petSpecies[0].decay <= petSpecies[1].decay {
		t.Error("Expected the dog to decay faster than the cat")
	}
}

func TestRaceHUDBadgePlacement(t *testing.T) {
	store := sprite.NewStore(filepath.Join(t.TempDir(), "sprites.json"))
	dist := sprite.NewSprite(4, 5)
	dist.Set(0, 0, grid.RGB{R: 200})
	store.Put("hud_race_dist", dist)
	badge := sprite.NewSprite(4, 5)
	badge.Set(0, 0, grid.RGB{G: 200})
	store.Put("hud_race_score", badge)

	r := NewRace(grid.New(), store, nil, nil)
	r.Render()
	if got := r.g.GetPixel(0, 0); got != (grid.RGB{R: 200}) {
		t.Errorf("Expected distance badge at the top left, got %v", got)
	}
	if got := r.g.GetPixel(0, 6); got != (grid.RGB{G: 200}) {
		t.Errorf("Expected score badge below it, got %v", got)
	}
}

func TestRoadHalfWidthPerspective(t *testing.T) {
	if roadHalfWidth(3) >= roadHalfWidth(18) {
		t.Errorf("Expected the road to widen toward the player, got %d vs %d",
			roadHalfWidth(3), roadHalfWidth(18))
	}
	for y := 3; y < grid.Size; y++ {
		w := roadHalfWidth(y)
		if w < 3 || w > 8 {
			t.Errorf("Expected half width in [3,8] at row %d, got %d", y, w)
		}
	}
}

func TestRaceOffRoadCrashes(t *testing.T) {
	var reported int
	r := NewRace(grid.New(), nil, nil, func(game string, v int) { reported = v })
	r.dist = 55
	r.points = 5
	r.playerX = 20
	r.Update(0.01)
	if !r.crashed {
		t.Error("Expected a crash off the road edge")
	}
	if reported != 5 {
		t.Errorf("Expected score 5 reported, got %d", reported)
	}
}

func TestRacePassingScoresOnce(t *testing.T) {
	r := NewRace(grid.New(), nil, nil, nil)
	r.speed = raceMaxSpeed
	r.traffic = []raceCar{{lane: 3, dist: -0.85}}
	r.Update(0.05)
	if r.points != 1 {
		t.Fatalf("Expected 1 point for passing, got %d", r.points)
	}
	r.Update(0.05)
	if r.points != 1 {
		t.Errorf("Expected passing to score once, got %d", r.points)
	}
}

func TestMenuClampsAndSelects(t *testing.T) {
	m := NewMenu(grid.New(), nil, nil, nil)
	m.HandleInput(keyPress(t, core.KeyLeft))
	if m.index != 0 {
		t.Errorf("Expected first card to stay put on left, got %d", m.index)
	}
	for i := 0; i < len(Cards)+3; i++ {
		m.HandleInput(keyPress(t, core.KeyRight))
	}
	if m.index != len(Cards)-1 {
		t.Errorf("Expected last card to clamp on right, got %d", m.index)
	}
	m.HandleInput(keyPress(t, core.KeyEnter))
	if m.Running() {
		t.Error("Expected menu to stop after selection")
	}
	if m.Choice != ChoiceGame || m.Selected != len(Cards)-1 {
		t.Errorf("Expected last card selected, got %v/%d", m.Choice, m.Selected)
	}
}

func TestMenuEditorShortcuts(t *testing.T) {
	m := NewMenu(grid.New(), nil, nil, nil)
	m.HandleInput(press(t, core.Press{Rune: 'f'}))
	if m.Choice != ChoiceFontEditor {
		t.Errorf("Expected font editor choice, got %v", m.Choice)
	}
	m.Reset()
	m.HandleInput(press(t, core.Press{Rune: 'e'}))
	if m.Choice != ChoiceCardEditor {
		t.Errorf("Expected card editor choice, got %v", m.Choice)
	}
	m.Reset()
	m.HandleInput(press(t, core.Press{Rune: 'h'}))
	if m.Choice != ChoiceHUDEditor {
		t.Errorf("Expected HUD editor choice, got %v", m.Choice)
	}
}
