package sprite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/VA24d/Pixelate/grid"
)

func TestRoundtripSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.json")

	st := NewStore(path)
	s := st.GetOrCreate("test", 3, 3)
	s.Set(1, 1, grid.RGB{R: 10, G: 20, B: 30})

	if err := st.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	st2 := NewStore(path)
	st2.Load()
	s2 := st2.Get("test")
	if s2 == nil {
		t.Fatal("Expected sprite to survive roundtrip")
	}
	if s2.W != 3 || s2.H != 3 {
		t.Errorf("Expected 3x3 sprite, got %dx%d", s2.W, s2.H)
	}
	c, ok := s2.Get(1, 1)
	if !ok {
		t.Fatal("Expected pixel (1,1) to be set")
	}
	if c != (grid.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("Expected {10 20 30}, got %v", c)
	}
}

func TestLoadMalformedFileYieldsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := NewStore(path)
	st.Load()
	if len(st.Names()) != 0 {
		t.Errorf("Expected empty store from malformed file, got %v", st.Names())
	}
}

func TestGetOrCreateReplacesOnSizeMismatch(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "sprites.json"))

	s := st.GetOrCreate("logo", 5, 5)
	s.Set(0, 0, grid.White)

	s2 := st.GetOrCreate("logo", 9, 6)
	if s2.Len() != 0 {
		t.Error("Expected fresh sprite when dimensions change")
	}
	if s2.W != 9 || s2.H != 6 {
		t.Errorf("Expected 9x6, got %dx%d", s2.W, s2.H)
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	s := NewSprite(2, 2)
	s.Set(5, 5, grid.White)
	s.Set(-1, 0, grid.White)
	if s.Len() != 0 {
		t.Errorf("Expected no pixels set, got %d", s.Len())
	}
}
