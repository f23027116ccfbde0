package editor

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/VA24d/Pixelate/core"
	"github.com/VA24d/Pixelate/fontstore"
	"github.com/VA24d/Pixelate/grid"
	"github.com/VA24d/Pixelate/sprite"
)

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

func runePress(t *testing.T, r rune) *core.Input {
	return press(t, core.Press{Rune: r})
}

func TestFontEditorTypedJump(t *testing.T) {
	store := fontstore.NewStore(filepath.Join(t.TempDir(), "font_overrides.json"))
	e := NewFontEditor(grid.New(), store, nil)
	e.HandleInput(runePress(t, 'z'))
	if e.view != fontEdit {
		t.Fatal("Expected typing a letter to open the edit view")
	}
	if e.ch != 'Z' {
		t.Errorf("Expected glyph Z, got %c", e.ch)
	}
	builtin, _ := grid.BuiltinGlyph('Z')
	if e.work != builtin {
		t.Error("Expected the builtin shape loaded into the buffer")
	}
}

func TestFontEditorToggleAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font_overrides.json")
	store := fontstore.NewStore(path)
	e := NewFontEditor(grid.New(), store, nil)
	e.openGlyph('A')
	before := e.work[0][0]
	e.HandleInput(keyPress(t, core.KeySpace))
	if e.work[0][0] == before {
		t.Error("Expected space to toggle the cell under the cursor")
	}
	e.HandleInput(runePress(t, 's'))

	fresh := fontstore.NewStore(path)
	fresh.Load()
	gl, ok := fresh.Glyph('A')
	if !ok {
		t.Fatal("Expected the override persisted")
	}
	if gl != e.work {
		t.Errorf("Expected saved glyph %v, got %v", e.work, gl)
	}
}

func TestFontEditorResetDropsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font_overrides.json")
	store := fontstore.NewStore(path)
	store.SetGlyph('A', grid.Glyph{{1, 1, 1}})
	e := NewFontEditor(grid.New(), store, nil)
	e.openGlyph('A')
	e.HandleInput(runePress(t, 'r'))
	if _, ok := store.Glyph('A'); ok {
		t.Error("Expected reset to drop the override")
	}
	builtin, _ := grid.BuiltinGlyph('A')
	if e.work != builtin {
		t.Error("Expected the builtin shape restored")
	}
}

func TestFontEditorResetSilentOnSaveError(t *testing.T) {
	// A directory path cannot be written, so Save fails.
	store := fontstore.NewStore(t.TempDir())
	beeps := 0
	e := NewFontEditor(grid.New(), store, func(freq, ms int) { beeps++ })
	e.openGlyph('A')
	beeps = 0
	e.HandleInput(runePress(t, 'r'))
	if beeps != 0 {
		t.Errorf("Expected no confirmation beep when saving fails, got %d", beeps)
	}
}

func TestFontEditorEscapeBacksOut(t *testing.T) {
	store := fontstore.NewStore(filepath.Join(t.TempDir(), "f.json"))
	e := NewFontEditor(grid.New(), store, nil)
	e.openGlyph('A')
	e.HandleInput(keyPress(t, core.KeyEscape))
	if e.view != fontAtlas {
		t.Error("Expected escape to return to the atlas first")
	}
	if !e.Running() {
		t.Fatal("Expected the editor still running")
	}
	e.HandleInput(keyPress(t, core.KeyEscape))
	if e.Running() {
		t.Error("Expected a second escape to close the editor")
	}
}

func TestOverlayEditorPaintAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.json")
	store := sprite.NewStore(path)
	e := NewOverlayEditor(grid.New(), store, nil, "hud_race_score", 5, 5, 0, 0)
	e.HandleInput(keyPress(t, core.KeySpace))
	if _, ok := e.sp.Get(0, 0); !ok {
		t.Fatal("Expected space to paint the cursor cell")
	}
	e.HandleInput(runePress(t, 'c'))
	if e.color != 1 {
		t.Errorf("Expected color cycled to 1, got %d", e.color)
	}
	e.HandleInput(runePress(t, 's'))

	fresh := sprite.NewStore(path)
	fresh.Load()
	sp := fresh.Get("hud_race_score")
	if sp == nil || sp.Len() != 1 {
		t.Error("Expected one painted pixel persisted")
	}

	e.HandleInput(runePress(t, 'x'))
	if _, ok := e.sp.Get(0, 0); ok {
		t.Error("Expected x to erase the cursor cell")
	}
}

func TestOverlayEditorCursorWraps(t *testing.T) {
	store := sprite.NewStore(filepath.Join(t.TempDir(), "s.json"))
	e := NewOverlayEditor(grid.New(), store, nil, "n", 4, 3, 0, 0)
	e.HandleInput(keyPress(t, core.KeyLeft))
	if e.cx != 3 {
		t.Errorf("Expected cursor x to wrap to 3, got %d", e.cx)
	}
	e.HandleInput(keyPress(t, core.KeyUp))
	if e.cy != 2 {
		t.Errorf("Expected cursor y to wrap to 2, got %d", e.cy)
	}
}

func TestHUDEditorCyclesBadges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.json")
	store := sprite.NewStore(path)
	e := NewHUDEditor(grid.New(), store, nil)
	if e.name != "hud_race_dist" {
		t.Fatalf("Expected the distance badge first, got %q", e.name)
	}
	e.HandleInput(keyPress(t, core.KeyTab))
	if e.name != "hud_race_score" {
		t.Errorf("Expected tab to open the score badge, got %q", e.name)
	}
	e.HandleInput(keyPress(t, core.KeySpace))
	e.HandleInput(runePress(t, 's'))

	reread := sprite.NewStore(path)
	reread.Load()
	s := reread.Get("hud_race_score")
	if s == nil || s.Len() != 1 {
		t.Error("Expected the painted score badge to persist")
	}
}

func TestCardEditorBakeSeedsOverlay(t *testing.T) {
	store := sprite.NewStore(filepath.Join(t.TempDir(), "sprites.json"))
	e := NewCardEditor(grid.New(), store, nil, 0)
	if e.sp.Len() != 0 {
		t.Fatalf("Expected an empty overlay, got %d pixels", e.sp.Len())
	}
	e.HandleInput(runePress(t, 'b'))
	if e.sp.Len() == 0 {
		t.Error("Expected bake to copy the stock logo into the overlay")
	}
}
