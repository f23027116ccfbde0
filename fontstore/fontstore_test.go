package fontstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/VA24d/Pixelate/grid"
)

func TestRoundtripSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font_overrides.json")

	st := NewStore(path)
	st.SetGlyph('A', grid.Glyph{
		{1, 0, 1},
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
		{1, 0, 1},
	})
	if err := st.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	st2 := NewStore(path)
	st2.Load()

	// Lookup is case-insensitive.
	g, ok := st2.Glyph('a')
	if !ok {
		t.Fatal("Expected glyph to survive roundtrip")
	}
	if g[0] != [3]int{1, 0, 1} {
		t.Errorf("Expected first row {1 0 1}, got %v", g[0])
	}
}

func TestLoadSkipsMalformedGlyphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font_overrides.json")
	payload := `{"A": [[1,1,1]], "B": [[1,1,1],[1,0,1],[1,1,0],[1,0,1],[1,1,0]]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	st := NewStore(path)
	st.Load()

	if _, ok := st.Glyph('A'); ok {
		t.Error("Expected glyph with wrong row count to be rejected")
	}
	if _, ok := st.Glyph('B'); !ok {
		t.Error("Expected well-formed glyph to load")
	}
}

func TestClearGlyph(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "font_overrides.json"))
	st.SetGlyph('x', grid.Glyph{{1, 1, 1}})
	st.ClearGlyph('X')
	if _, ok := st.Glyph('x'); ok {
		t.Error("Expected glyph to be cleared case-insensitively")
	}
}

func TestNonBinaryCellsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font_overrides.json")
	payload := `{"C": [[7,0,0],[0,0,0],[0,0,0],[0,0,0],[0,0,0]]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	st := NewStore(path)
	st.Load()
	g, ok := st.Glyph('C')
	if !ok {
		t.Fatal("Expected glyph to load")
	}
	if g[0][0] != 1 {
		t.Errorf("Expected non-zero cell normalized to 1, got %d", g[0][0])
	}
}
