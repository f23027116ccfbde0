package editor

import (
	"strings"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/games"
	"github.com/VA24d/Pixelate/grid"
	"github.com/VA24d/Pixelate/sprite"
)

// Card overlays sit under the name strip: full width, rows 2 through 18.
const (
	cardOverlayW = grid.Size
	cardOverlayH = grid.Size - 2
	cardOverlayY = 2
)

// CardEditor customizes one menu card's artwork. It is an overlay editor
// pinned to the card area, plus a bake command that copies the stock logo
// into the overlay as a starting point.
type CardEditor struct {
	*OverlayEditor
	card int
}

func NewCardEditor(g *grid.Grid, store *sprite.Store, beep games.Beeper, card int) *CardEditor {
	name := "menu_card_" + strings.ToLower(games.Cards[card].Name)
	return &CardEditor{
		OverlayEditor: NewOverlayEditor(g, store, beep, name, cardOverlayW, cardOverlayH, 0, cardOverlayY),
		card:          card,
	}
}

func (e *CardEditor) HandleInput(in *core.Input) {
	if in.PressedRune('b') {
		e.bake()
		return
	}
	e.OverlayEditor.HandleInput(in)
}

// bake renders the builtin logo off screen and copies its lit pixels into
// the overlay sprite.
func (e *CardEditor) bake() {
	scratch := grid.New()
	games.DrawCardLogo(scratch, e.card)
	for y := 0; y < e.sp.H; y++ {
		for x := 0; x < e.sp.W; x++ {
			c := scratch.GetPixel(x, y+cardOverlayY)
			if c != (grid.RGB{}) {
				e.sp.Set(x, y, c)
			}
		}
	}
	e.beep.Play(700, 50)
}

func (e *CardEditor) Render() {
	e.OverlayEditor.Render()
	name := games.Cards[e.card].Name
	e.g.RenderText(name, 1, 0, grid.RGB{R: 255, G: 255, B: 255}, 1, 1)
}
