package grid

import "strconv"

// Glyph dimensions in cells.
const (
	GlyphW = 3
	GlyphH = 5
)

// Glyph is a 3x5 binary bitmap for one character: 5 rows of 3 cells.
type Glyph [GlyphH][GlyphW]int

// Built-in 3x5 font covering A-Z, 0-9, space and hyphen.
var font3x5 = map[rune]Glyph{
	'0': {{1, 1, 1}, {1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	'1': {{0, 1, 0}, {1, 1, 0}, {0, 1, 0}, {0, 1, 0}, {1, 1, 1}},
	'2': {{1, 1, 1}, {0, 0, 1}, {1, 1, 1}, {1, 0, 0}, {1, 1, 1}},
	'3': {{1, 1, 1}, {0, 0, 1}, {1, 1, 1}, {0, 0, 1}, {1, 1, 1}},
	'4': {{1, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 0, 1}, {0, 0, 1}},
	'5': {{1, 1, 1}, {1, 0, 0}, {1, 1, 1}, {0, 0, 1}, {1, 1, 1}},
	'6': {{1, 1, 1}, {1, 0, 0}, {1, 1, 1}, {1, 0, 1}, {1, 1, 1}},
	'7': {{1, 1, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
	'8': {{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {1, 0, 1}, {1, 1, 1}},
	'9': {{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {0, 0, 1}, {1, 1, 1}},
	'A': {{0, 1, 0}, {1, 0, 1}, {1, 1, 1}, {1, 0, 1}, {1, 0, 1}},
	'B': {{1, 1, 0}, {1, 0, 1}, {1, 1, 0}, {1, 0, 1}, {1, 1, 0}},
	'C': {{1, 1, 1}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 1, 1}},
	'D': {{1, 1, 0}, {1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 0}},
	'E': {{1, 1, 1}, {1, 0, 0}, {1, 1, 1}, {1, 0, 0}, {1, 1, 1}},
	'F': {{1, 1, 1}, {1, 0, 0}, {1, 1, 1}, {1, 0, 0}, {1, 0, 0}},
	'G': {{1, 1, 1}, {1, 0, 0}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	'H': {{1, 0, 1}, {1, 0, 1}, {1, 1, 1}, {1, 0, 1}, {1, 0, 1}},
	'I': {{1, 1, 1}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {1, 1, 1}},
	'J': {{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {1, 0, 1}, {0, 1, 0}},
	'K': {{1, 0, 1}, {1, 1, 0}, {1, 0, 0}, {1, 1, 0}, {1, 0, 1}},
	'L': {{1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 1, 1}},
	'M': {{1, 0, 1}, {1, 1, 1}, {1, 1, 1}, {1, 0, 1}, {1, 0, 1}},
	'N': {{1, 0, 1}, {1, 1, 1}, {1, 1, 1}, {1, 0, 1}, {1, 0, 1}},
	'O': {{1, 1, 1}, {1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	'P': {{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {1, 0, 0}, {1, 0, 0}},
	'Q': {{1, 1, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 0, 1}},
	'R': {{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {1, 1, 0}, {1, 0, 1}},
	'S': {{1, 1, 1}, {1, 0, 0}, {1, 1, 1}, {0, 0, 1}, {1, 1, 1}},
	'T': {{1, 1, 1}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
	'U': {{1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}},
	'V': {{1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {0, 1, 0}},
	'W': {{1, 0, 1}, {1, 0, 1}, {1, 1, 1}, {1, 1, 1}, {1, 0, 1}},
	'X': {{1, 0, 1}, {1, 0, 1}, {0, 1, 0}, {1, 0, 1}, {1, 0, 1}},
	'Y': {{1, 0, 1}, {1, 0, 1}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
	'Z': {{1, 1, 1}, {0, 0, 1}, {0, 1, 0}, {1, 0, 0}, {1, 1, 1}},
	' ': {},
	'-': {{0, 0, 0}, {0, 0, 0}, {1, 1, 1}, {0, 0, 0}, {0, 0, 0}},
}

// BuiltinGlyph returns the built-in bitmap for ch (uppercased) and whether
// the font contains it. Overrides are not consulted.
func BuiltinGlyph(ch rune) (Glyph, bool) {
	g, ok := font3x5[upper(ch)]
	return g, ok
}

// Charset returns the characters the built-in font covers, in display order.
func Charset() string {
	return "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -"
}

// SetFontOverrides replaces the per-character glyph overrides used by
// RenderText. Keys are uppercased. A nil map clears all overrides.
func (g *Grid) SetFontOverrides(overrides map[rune]Glyph) {
	if overrides == nil {
		g.overrides = nil
		return
	}
	m := make(map[rune]Glyph, len(overrides))
	for ch, glyph := range overrides {
		m[upper(ch)] = glyph
	}
	g.overrides = m
}

// FontOverrides returns the active glyph overrides.
func (g *Grid) FontOverrides() map[rune]Glyph {
	out := make(map[rune]Glyph, len(g.overrides))
	for ch, glyph := range g.overrides {
		out[ch] = glyph
	}
	return out
}

func (g *Grid) glyphFor(ch rune) (Glyph, bool) {
	ch = upper(ch)
	if glyph, ok := g.overrides[ch]; ok {
		return glyph, true
	}
	glyph, ok := font3x5[ch]
	return glyph, ok
}

// RenderText draws text at (x, y) using the 3x5 font. Characters outside
// the font are skipped. Spacing is in unscaled pixels between characters.
func (g *Grid) RenderText(text string, x, y int, c RGB, scale, spacing int) {
	if scale < 1 {
		scale = 1
	}
	if spacing < 0 {
		spacing = 0
	}

	cursorX := x
	for _, ch := range text {
		glyph, ok := g.glyphFor(ch)
		if !ok {
			continue
		}
		for dy := 0; dy < 5; dy++ {
			for dx := 0; dx < 3; dx++ {
				if glyph[dy][dx] == 0 {
					continue
				}
				for sy := 0; sy < scale; sy++ {
					for sx := 0; sx < scale; sx++ {
						g.SetPixel(cursorX+dx*scale+sx, y+dy*scale+sy, c)
					}
				}
			}
		}
		cursorX += (3 + spacing) * scale
	}
}

// RenderNumber draws a number using the 3x5 font with default spacing.
func (g *Grid) RenderNumber(n int, x, y int, c RGB, scale int) {
	g.RenderText(strconv.Itoa(n), x, y, c, scale, 1)
}

func upper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
