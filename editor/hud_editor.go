package editor

import (
	"strings"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/games"
	"github.com/VA24d/Pixelate/grid"
	"github.com/VA24d/Pixelate/sprite"
)

// Named HUD badges the games look up at render time.
var hudSprites = []string{"hud_race_dist", "hud_race_score"}

const (
	hudSpriteW = 6
	hudSpriteH = 5
)

// HUDEditor paints the small HUD badge sprites. Tab cycles through the
// badge names, everything else works like the overlay editor.
type HUDEditor struct {
	*OverlayEditor
	idx int
}

func NewHUDEditor(g *grid.Grid, store *sprite.Store, beep games.Beeper) *HUDEditor {
	return &HUDEditor{
		OverlayEditor: NewOverlayEditor(g, store, beep, hudSprites[0], hudSpriteW, hudSpriteH, 2, 2),
	}
}

func (e *HUDEditor) HandleInput(in *core.Input) {
	if in.Pressed(core.KeyTab) {
		e.idx = (e.idx + 1) % len(hudSprites)
		e.openSprite(hudSprites[e.idx], hudSpriteW, hudSpriteH)
		e.beep.Play(520, 25)
		return
	}
	e.OverlayEditor.HandleInput(in)
}

func (e *HUDEditor) Render() {
	e.OverlayEditor.Render()
	// The name's last segment tells which badge is open.
	label := e.name[strings.LastIndexByte(e.name, '_')+1:]
	e.g.RenderText(label, 1, 10, grid.RGB{R: 180, G: 180, B: 180}, 1, 1)
}
