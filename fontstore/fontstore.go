// Package fontstore persists user-editable 3x5 glyph overrides for the
// grid font. Kept separate from the sprite store: glyphs are binary masks,
// not full-color sprites. Only overrides are stored; missing characters
// fall back to the built-in font.
package fontstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/VA24d/Pixelate/grid"
)

// Store loads and saves glyph overrides from a single JSON file:
//
//	{"A": [[0,1,0],[1,0,1],[1,1,1],[1,0,1],[1,0,1]], ...}
type Store struct {
	path      string
	overrides map[rune]grid.Glyph
}

// NewStore creates a store backed by the given file. Call Load before use.
func NewStore(path string) *Store {
	return &Store{path: path, overrides: make(map[rune]grid.Glyph)}
}

// coerceGlyph validates a raw 5x3 matrix, normalizing cells to 0/1.
func coerceGlyph(raw [][]int) (grid.Glyph, bool) {
	var g grid.Glyph
	if len(raw) != 5 {
		return g, false
	}
	for y, row := range raw {
		if len(row) != 3 {
			return g, false
		}
		for x, v := range row {
			if v != 0 {
				g[y][x] = 1
			}
		}
	}
	return g, true
}

// Load reads the backing file. A missing or malformed file yields an empty
// override set; malformed glyphs are skipped.
func (st *Store) Load() {
	st.overrides = make(map[rune]grid.Glyph)

	data, err := os.ReadFile(st.path)
	if err != nil {
		return
	}

	var raw map[string][][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return
	}

	for key, rows := range raw {
		ch := firstUpper(key)
		if ch == 0 {
			continue
		}
		if g, ok := coerceGlyph(rows); ok {
			st.overrides[ch] = g
		}
	}
}

// Save writes the overrides to the backing file.
func (st *Store) Save() error {
	raw := make(map[string][][]int, len(st.overrides))
	for ch, g := range st.overrides {
		rows := make([][]int, 5)
		for y := 0; y < 5; y++ {
			rows[y] = []int{g[y][0], g[y][1], g[y][2]}
		}
		raw[string(ch)] = rows
	}

	if dir := filepath.Dir(st.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create font dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal font overrides: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("write font overrides: %w", err)
	}
	return nil
}

// Overrides returns a copy of all stored overrides.
func (st *Store) Overrides() map[rune]grid.Glyph {
	out := make(map[rune]grid.Glyph, len(st.overrides))
	for ch, g := range st.overrides {
		out[ch] = g
	}
	return out
}

// Glyph returns the override for ch (case-insensitive) and whether one is
// stored.
func (st *Store) Glyph(ch rune) (grid.Glyph, bool) {
	g, ok := st.overrides[toUpper(ch)]
	return g, ok
}

// SetGlyph stores an override for ch (case-insensitive).
func (st *Store) SetGlyph(ch rune, g grid.Glyph) {
	st.overrides[toUpper(ch)] = g
}

// ClearGlyph removes the override for ch.
func (st *Store) ClearGlyph(ch rune) {
	delete(st.overrides, toUpper(ch))
}

func toUpper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

func firstUpper(s string) rune {
	for _, ch := range s {
		return toUpper(ch)
	}
	return 0
}
