package grid

import "testing"

func TestRenderTextUsesOverrides(t *testing.T) {
	g := New()

	// Custom glyph for 'A' lighting only the top-center pixel.
	g.SetFontOverrides(map[rune]Glyph{
		'A': {{0, 1, 0}},
	})

	color := RGB{9, 8, 7}
	g.RenderText("A", 0, 0, color, 1, 1)

	if got := g.GetPixel(1, 0); got != color {
		t.Errorf("Expected override pixel (1,0) to be %v, got %v", color, got)
	}
	if g.GetPixel(0, 0) != Black {
		t.Error("Expected pixel (0,0) to stay black under override")
	}
	if g.GetPixel(2, 0) != Black {
		t.Error("Expected pixel (2,0) to stay black under override")
	}
}

func TestOverrideKeysUppercased(t *testing.T) {
	g := New()
	g.SetFontOverrides(map[rune]Glyph{
		'a': {{1, 1, 1}},
	})

	g.RenderText("A", 0, 0, White, 1, 1)
	if g.GetPixel(0, 0) != White {
		t.Error("Expected lowercase override key to apply to uppercase text")
	}
}

func TestRenderTextLowercaseCoercion(t *testing.T) {
	g := New()
	g.RenderText("l", 0, 0, White, 1, 1)

	// 'L' lights its full bottom row.
	for x := 0; x < 3; x++ {
		if g.GetPixel(x, 4) != White {
			t.Errorf("Expected bottom row pixel %d of L to be lit", x)
		}
	}
}

func TestRenderTextSkipsUnknownRunes(t *testing.T) {
	g := New()
	g.RenderText("!", 0, 0, White, 1, 1)

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.GetPixel(x, y) != Black {
				t.Fatalf("Expected grid to stay black for unknown rune, pixel (%d, %d) set", x, y)
			}
		}
	}
}

func TestRenderTextScale(t *testing.T) {
	g := New()
	// 'I' at scale 2: top row fully lit across 6 pixels.
	g.RenderText("I", 0, 0, White, 2, 1)

	for x := 0; x < 6; x++ {
		if g.GetPixel(x, 0) != White {
			t.Errorf("Expected scaled top row pixel %d to be lit", x)
		}
	}
}

func TestCenteredX(t *testing.T) {
	// 5 characters at scale 1, spacing 1 => width 20, wider than the zone.
	if got := CenteredX(Title, 5, 1, 1); got != Title.X {
		t.Errorf("Expected clamp to zone origin, got %d", got)
	}
	// 2 characters => width 8, centered in 19 => offset 5.
	if got := CenteredX(Title, 2, 1, 1); got != 5 {
		t.Errorf("Expected centered x 5, got %d", got)
	}
}
