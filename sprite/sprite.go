// Package sprite provides the user-editable pixel-art store. Sprites are
// named sparse pixel maps persisted as a flat JSON file so menu logos and
// HUD icons can be tweaked live via the editors.
package sprite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/VA24d/Pixelate/grid"
)

// Sprite is a sparse pixel-color map of a fixed size.
type Sprite struct {
	W, H   int
	pixels map[grid.Point]grid.RGB
}

// NewSprite creates an empty sprite of the given size.
func NewSprite(w, h int) *Sprite {
	return &Sprite{W: w, H: h, pixels: make(map[grid.Point]grid.RGB)}
}

// Get returns the color at (x, y) and whether a pixel is set there.
func (s *Sprite) Get(x, y int) (grid.RGB, bool) {
	c, ok := s.pixels[grid.Point{X: x, Y: y}]
	return c, ok
}

// Set paints a pixel. Out-of-bounds coordinates are ignored.
func (s *Sprite) Set(x, y int, c grid.RGB) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return
	}
	s.pixels[grid.Point{X: x, Y: y}] = c
}

// Erase removes a pixel.
func (s *Sprite) Erase(x, y int) {
	delete(s.pixels, grid.Point{X: x, Y: y})
}

// Len returns the number of set pixels.
func (s *Sprite) Len() int {
	return len(s.pixels)
}

// Draw blits the sprite onto the grid at (ox, oy). Unset pixels are
// transparent.
func (s *Sprite) Draw(g *grid.Grid, ox, oy int) {
	for p, c := range s.pixels {
		g.SetPixel(ox+p.X, oy+p.Y, c)
	}
}

// Persisted shape:
//
//	{"<name>": {"w": 9, "h": 6, "pixels": {"x,y": [r, g, b], ...}}, ...}
type spriteJSON struct {
	W      int              `json:"w"`
	H      int              `json:"h"`
	Pixels map[string][]int `json:"pixels"`
}

// Store loads and saves named sprites from a single JSON file.
type Store struct {
	path    string
	sprites map[string]*Sprite
}

// NewStore creates a store backed by the given file. Call Load before use.
func NewStore(path string) *Store {
	return &Store{path: path, sprites: make(map[string]*Sprite)}
}

// Load reads the backing file. A missing or malformed file yields an empty
// store; malformed entries are skipped.
func (st *Store) Load() {
	st.sprites = make(map[string]*Sprite)

	data, err := os.ReadFile(st.path)
	if err != nil {
		return
	}

	var raw map[string]spriteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return
	}

	for name, sj := range raw {
		if sj.W <= 0 || sj.H <= 0 {
			continue
		}
		s := NewSprite(sj.W, sj.H)
		for key, ch := range sj.Pixels {
			var x, y int
			if _, err := fmt.Sscanf(key, "%d,%d", &x, &y); err != nil {
				continue
			}
			if len(ch) != 3 {
				continue
			}
			s.Set(x, y, grid.ClampRGB(ch[0], ch[1], ch[2]))
		}
		st.sprites[name] = s
	}
}

// Save writes all sprites to the backing file, creating the directory if
// needed. Pixel keys are sorted for stable diffs.
func (st *Store) Save() error {
	raw := make(map[string]spriteJSON, len(st.sprites))
	for name, s := range st.sprites {
		sj := spriteJSON{W: s.W, H: s.H, Pixels: make(map[string][]int, len(s.pixels))}
		for p, c := range s.pixels {
			sj.Pixels[fmt.Sprintf("%d,%d", p.X, p.Y)] = []int{int(c.R), int(c.G), int(c.B)}
		}
		raw[name] = sj
	}

	if dir := filepath.Dir(st.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create sprite dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sprites: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("write sprites: %w", err)
	}
	return nil
}

// Get returns a sprite by name, or nil.
func (st *Store) Get(name string) *Sprite {
	return st.sprites[name]
}

// GetOrCreate returns the named sprite, replacing it with a fresh empty one
// if it does not exist or its dimensions differ.
func (st *Store) GetOrCreate(name string, w, h int) *Sprite {
	s := st.sprites[name]
	if s == nil || s.W != w || s.H != h {
		s = NewSprite(w, h)
		st.sprites[name] = s
	}
	return s
}

// Remove deletes a sprite from the store and returns it, or nil.
func (st *Store) Remove(name string) *Sprite {
	s := st.sprites[name]
	delete(st.sprites, name)
	return s
}

// Put inserts a sprite under the given name.
func (st *Store) Put(name string, s *Sprite) {
	st.sprites[name] = s
}

// Names returns all sprite names, sorted.
func (st *Store) Names() []string {
	names := make([]string, 0, len(st.sprites))
	for name := range st.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
