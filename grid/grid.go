// Package grid implements the simulated 19x19 RGB LED matrix: a fixed-size
// framebuffer with bounds-checked pixel writes, shape primitives and a tiny
// 3x5 bitmap font with runtime glyph overrides.
package grid

// Size is the LED matrix edge length in pixels.
const Size = 19

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Grid is the LED framebuffer. Writes outside the matrix are silently
// ignored so game code can draw partially off-screen shapes without
// bounds arithmetic.
type Grid struct {
	cells     [Size][Size]RGB
	overrides map[rune]Glyph
}

// New creates a cleared grid.
func New() *Grid {
	return &Grid{}
}

// SetPixel sets a single LED color. Out-of-bounds writes are dropped.
func (g *Grid) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return
	}
	g.cells[y][x] = c
}

// GetPixel returns the LED color at (x, y), or black when out of bounds.
func (g *Grid) GetPixel(x, y int) RGB {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return Black
	}
	return g.cells[y][x]
}

// Clear fills the entire grid with one color.
func (g *Grid) Clear(c RGB) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			g.cells[y][x] = c
		}
	}
}

// FillRect fills a rectangular area, clipped to the grid.
func (g *Grid) FillRect(x, y, w, h int, c RGB) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			g.SetPixel(x+dx, y+dy, c)
		}
	}
}

// DrawLine draws a line between two points using Bresenham's algorithm.
func (g *Grid) DrawLine(x1, y1, x2, y2 int, c RGB) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		g.SetPixel(x, y, c)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Snapshot returns a copy of the framebuffer contents.
func (g *Grid) Snapshot() [Size][Size]RGB {
	return g.cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
