package console

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/editor"
	"github.com/VA24d/Pixelate/fontstore"
	"github.com/VA24d/Pixelate/games"
	"github.com/VA24d/Pixelate/grid"
	"github.com/VA24d/Pixelate/logger"
	"github.com/VA24d/Pixelate/remote"
	"github.com/VA24d/Pixelate/score"
	"github.com/VA24d/Pixelate/sound"
	"github.com/VA24d/Pixelate/sprite"
)

// broadcastEvery throttles frames pushed to websocket viewers. Spectators
// do not need the full frame rate.
const broadcastEvery = 100 * time.Millisecond

// Options carries the wired up dependencies for a Console. Sound, Scores,
// Hub and PhotoDir may be nil or empty; the console degrades gracefully.
type Options struct {
	FPS      int
	Sound    *sound.Player
	Scores   *score.Store
	Sprites  *sprite.Store
	Fonts    *fontstore.Store
	Hub      *remote.Hub
	PhotoDir string
	Log      *slog.Logger
}

// Console runs the state machine boot -> menu -> game/editor -> menu on a
// tcell screen.
type Console struct {
	screen  tcell.Screen
	opts    Options
	log     *slog.Logger
	g       *grid.Grid
	display *Display
	tracker *core.Tracker
	manager *core.Manager
	menu    *games.Menu
	current core.Screen

	beeper   games.Beeper
	scoreFn  games.ScoreFunc
	lastCast time.Time
	quit     bool
}

func New(screen tcell.Screen, opts Options) *Console {
	c := &Console{
		screen:  screen,
		opts:    opts,
		log:     opts.Log,
		g:       grid.New(),
		display: NewDisplay(),
		tracker: core.NewTracker(),
		manager: core.NewManager(),
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	if opts.Fonts != nil {
		c.g.SetFontOverrides(opts.Fonts.Overrides())
	}
	c.beeper = func(freq, ms int) {
		if opts.Sound != nil {
			opts.Sound.Beep(freq, time.Duration(ms)*time.Millisecond)
		}
	}
	c.scoreFn = func(game string, value int) {
		if opts.Scores == nil {
			return
		}
		improved, err := opts.Scores.Record(game, value)
		if err != nil {
			c.log.Error("record score", "game", game, "error", err)
			return
		}
		if improved {
			c.log.Info("new best", "game", game, "score", value)
		}
	}
	c.menu = games.NewMenu(c.g, opts.Sprites, c.beeper, c.bestScore)
	c.current = games.NewBoot(c.g, c.beeper)
	return c
}

func (c *Console) bestScore(id string) (int, bool) {
	if c.opts.Scores == nil {
		return 0, false
	}
	v, ok, err := c.opts.Scores.Best(id)
	if err != nil {
		c.log.Error("read best score", "game", id, "error", err)
		return 0, false
	}
	return v, ok
}

// Run drives the frame loop until the player quits or the context is
// cancelled.
func (c *Console) Run(ctx context.Context) {
	fps := c.opts.FPS
	if fps <= 0 {
		fps = 60
	}
	frame := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	last := time.Now()
	for !c.quit {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			c.handleEvent(ev)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > 0.25 {
				dt = 0.25 // clamp after suspends so nothing teleports
			}
			c.step(dt)
		}
	}
}

func (c *Console) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			c.quit = true
			return
		}
		if p, ok := translateKey(ev); ok {
			c.tracker.Observe(p, time.Now())
		}
	case *tcell.EventResize:
		c.screen.Sync()
	}
}

// translateKey maps a tcell key event onto the console's input model.
// Letters are lowercased so bindings ignore shift state.
func translateKey(ev *tcell.EventKey) (core.Press, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.Press{Key: core.KeyUp}, true
	case tcell.KeyDown:
		return core.Press{Key: core.KeyDown}, true
	case tcell.KeyLeft:
		return core.Press{Key: core.KeyLeft}, true
	case tcell.KeyRight:
		return core.Press{Key: core.KeyRight}, true
	case tcell.KeyEnter:
		return core.Press{Key: core.KeyEnter}, true
	case tcell.KeyEscape:
		return core.Press{Key: core.KeyEscape}, true
	case tcell.KeyTab:
		return core.Press{Key: core.KeyTab}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.Press{Key: core.KeyBackspace}, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return core.Press{Key: core.KeySpace}, true
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return core.Press{Rune: r}, true
	}
	return core.Press{}, false
}

func (c *Console) step(dt float64) {
	in := c.tracker.Frame(time.Now())
	c.handleGlobalKeys(in)
	if c.quit {
		return
	}
	c.current.HandleInput(in)
	c.current.Update(dt)
	if !c.current.Running() {
		c.advance()
	}
	c.current.Render()
	c.present()
}

// handleGlobalKeys adjusts the LED presentation and sound from any screen.
// The editors get the whole rune keyboard to themselves, so rune bindings
// are skipped there.
func (c *Console) handleGlobalKeys(in *core.Input) {
	if c.manager.State() == core.StateEditor {
		return
	}
	for _, p := range in.Presses() {
		if p.Key != core.KeyNone {
			continue
		}
		switch p.Rune {
		case '+', '=':
			c.display.AdjustLEDSize(1)
		case '-':
			c.display.AdjustLEDSize(-1)
		case '[':
			c.display.AdjustSpacing(-1)
		case ']':
			c.display.AdjustSpacing(1)
		case ',':
			c.display.AdjustGap(-1)
		case '.':
			c.display.AdjustGap(1)
		case 't':
			c.display.ToggleStyle()
		case 'o':
			if c.opts.Sound != nil {
				on := c.opts.Sound.Toggle()
				c.log.Info("sound toggled", "enabled", on)
			}
		case 'q':
			c.quit = true
		}
	}
}

// advance moves the state machine when the current screen stops running.
func (c *Console) advance() {
	switch c.manager.State() {
	case core.StateBoot:
		if c.opts.Sound != nil {
			c.opts.Sound.Melody()
		}
		c.toMenu()
	case core.StateMenu:
		c.leaveMenu()
	default:
		c.toMenu()
	}
}

func (c *Console) toMenu() {
	c.menu.Reset()
	c.current = c.menu
	c.manager.SetState(core.StateMenu)
}

func (c *Console) leaveMenu() {
	switch c.menu.Choice {
	case games.ChoiceGame:
		c.current = c.newGame(c.menu.Selected)
		c.manager.SetState(core.StatePlaying)
		c.log.Info("game started", "game", games.Cards[c.menu.Selected].ID)
	case games.ChoiceFontEditor:
		if c.opts.Fonts == nil {
			c.toMenu()
			return
		}
		c.current = editor.NewFontEditor(c.g, c.opts.Fonts, c.beeper)
		c.manager.SetState(core.StateEditor)
	case games.ChoiceCardEditor:
		if c.opts.Sprites == nil {
			c.toMenu()
			return
		}
		c.current = editor.NewCardEditor(c.g, c.opts.Sprites, c.beeper, c.menu.Selected)
		c.manager.SetState(core.StateEditor)
	case games.ChoiceHUDEditor:
		if c.opts.Sprites == nil {
			c.toMenu()
			return
		}
		c.current = editor.NewHUDEditor(c.g, c.opts.Sprites, c.beeper)
		c.manager.SetState(core.StateEditor)
	default:
		c.toMenu()
	}
}

func (c *Console) newGame(i int) core.Screen {
	switch games.Cards[i].ID {
	case "pong":
		return games.NewPong(c.g, c.beeper, c.scoreFn)
	case "snake":
		return games.NewSnake(c.g, c.beeper, c.scoreFn)
	case "flappy":
		return games.NewFlappy(c.g, c.beeper, c.scoreFn)
	case "basketball":
		return games.NewBasketball(c.g, c.beeper, c.scoreFn)
	case "pets":
		return games.NewPets(c.g, c.beeper)
	case "vacation":
		return games.NewVacation(c.g, c.beeper, c.opts.PhotoDir)
	case "fight":
		return games.NewFight(c.g, c.beeper, c.scoreFn)
	case "race":
		return games.NewRace(c.g, c.opts.Sprites, c.beeper, c.scoreFn)
	}
	return c.menu
}

func (c *Console) present() {
	c.screen.Clear()
	c.display.Render(c.screen, c.g)
	c.screen.Show()
	c.broadcast()
}

// broadcast pushes the current frame to websocket viewers, rate limited.
func (c *Console) broadcast() {
	if c.opts.Hub == nil || time.Since(c.lastCast) < broadcastEvery {
		return
	}
	c.lastCast = time.Now()
	payload, err := remote.EncodeFrame(c.g.Snapshot())
	if err != nil {
		c.log.Error("encode frame", "error", err)
		return
	}
	c.opts.Hub.Broadcast(payload)
}
