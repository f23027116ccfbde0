package console

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/games"
)

func newTestConsole(t *testing.T) *Console {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	t.Cleanup(screen.Fini)
	return New(screen, Options{})
}

func (c *Console) pressKey(p core.Press) {
	c.tracker.Observe(p, time.Now())
}

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want core.Press
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.Press{Key: core.KeyUp}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.Press{Key: core.KeyEnter}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.Press{Key: core.KeySpace}},
		{tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), core.Press{Rune: 'a'}},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.Press{Rune: 'x'}},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), core.Press{Key: core.KeyBackspace}},
	}
	for _, tc := range cases {
		got, ok := translateKey(tc.ev)
		if !ok {
			t.Errorf("Expected a translation for %v", tc.ev.Key())
			continue
		}
		if got != tc.want {
			t.Errorf("Expected %v, got %v", tc.want, got)
		}
	}
	if _, ok := translateKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); ok {
		t.Error("Expected unmapped keys to be dropped")
	}
}

func TestDisplayAdjustmentBounds(t *testing.T) {
	d := NewDisplay()
	for i := 0; i < 50; i++ {
		d.AdjustLEDSize(-1)
	}
	if d.ledSize != minLEDSize {
		t.Errorf("Expected led size clamped at %d, got %d", minLEDSize, d.ledSize)
	}
	for i := 0; i < 50; i++ {
		d.AdjustLEDSize(1)
	}
	if d.ledSize != maxLEDSize {
		t.Errorf("Expected led size clamped at %d, got %d", maxLEDSize, d.ledSize)
	}
	for i := 0; i < 50; i++ {
		d.AdjustSpacing(1)
		d.AdjustGap(1)
	}
	if d.spacing != maxSpacing || d.gap != maxGap {
		t.Errorf("Expected spacing %d and gap %d, got %d and %d",
			maxSpacing, maxGap, d.spacing, d.gap)
	}
}

func TestDisplayStyleRunes(t *testing.T) {
	d := NewDisplay()
	if d.fillRune() != '█' {
		t.Errorf("Expected solid block by default, got %c", d.fillRune())
	}
	d.gap = 6
	if d.fillRune() != '▓' {
		t.Errorf("Expected shaded block with a wide gap, got %c", d.fillRune())
	}
	d.ToggleStyle()
	if d.fillRune() != '●' {
		t.Errorf("Expected round style, got %c", d.fillRune())
	}
}

func TestBootAdvancesToMenu(t *testing.T) {
	c := newTestConsole(t)
	if c.manager.State() != core.StateBoot {
		t.Fatalf("Expected boot state, got %v", c.manager.State())
	}
	c.current.Update(4) // run the animation out
	c.step(0.016)
	if c.manager.State() != core.StateMenu {
		t.Errorf("Expected menu state after boot, got %v", c.manager.State())
	}
	if c.current != core.Screen(c.menu) {
		t.Error("Expected the menu to be the active screen")
	}
}

func TestMenuLaunchesGameAndReturns(t *testing.T) {
	c := newTestConsole(t)
	c.current.Update(4)
	c.step(0.016)

	c.pressKey(core.Press{Key: core.KeyEnter})
	c.step(0.016)
	if c.manager.State() != core.StatePlaying {
		t.Fatalf("Expected playing state, got %v", c.manager.State())
	}
	if _, ok := c.current.(*games.Pong); !ok {
		t.Errorf("Expected pong on the first card, got %T", c.current)
	}

	c.pressKey(core.Press{Key: core.KeyEscape})
	c.step(0.016)
	if c.manager.State() != core.StateMenu {
		t.Errorf("Expected menu state after leaving the game, got %v", c.manager.State())
	}
	if !c.menu.Running() {
		t.Error("Expected the menu rearmed")
	}
}

func TestGlobalKeys(t *testing.T) {
	c := newTestConsole(t)
	before := c.display.ledSize
	c.pressKey(core.Press{Rune: '+'})
	c.step(0.016)
	if c.display.ledSize != before+ledSizeStep {
		t.Errorf("Expected led size %d, got %d", before+ledSizeStep, c.display.ledSize)
	}
	c.pressKey(core.Press{Rune: 'q'})
	c.step(0.016)
	if !c.quit {
		t.Error("Expected q to quit")
	}
}
