package grid

import "testing"

func TestSetPixelBoundsChecked(t *testing.T) {
	g := New()

	// Out-of-bounds writes must not panic and must not wrap.
	g.SetPixel(-1, 0, White)
	g.SetPixel(0, -1, White)
	g.SetPixel(Size, 0, White)
	g.SetPixel(0, Size, White)

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.GetPixel(x, y) != Black {
				t.Errorf("Expected pixel (%d, %d) to stay black after out-of-bounds writes", x, y)
			}
		}
	}
}

func TestGetPixelOutOfBounds(t *testing.T) {
	g := New()
	g.Clear(RGB{10, 20, 30})

	if got := g.GetPixel(-1, 5); got != Black {
		t.Errorf("Expected black for out-of-bounds read, got %v", got)
	}
	if got := g.GetPixel(5, Size); got != Black {
		t.Errorf("Expected black for out-of-bounds read, got %v", got)
	}
}

func TestClampRGB(t *testing.T) {
	c := ClampRGB(13, -5, 9999)
	if c != (RGB{13, 0, 255}) {
		t.Errorf("Expected {13 0 255}, got %v", c)
	}
}

func TestFillRectClips(t *testing.T) {
	g := New()
	g.FillRect(17, 17, 5, 5, White)

	if g.GetPixel(18, 18) != White {
		t.Error("Expected in-bounds corner of rect to be filled")
	}
	// Nothing else should have changed.
	if g.GetPixel(0, 0) != Black {
		t.Error("Expected far corner to stay black")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	g := New()
	g.DrawLine(2, 3, 10, 12, White)

	if g.GetPixel(2, 3) != White {
		t.Error("Expected line start to be set")
	}
	if g.GetPixel(10, 12) != White {
		t.Error("Expected line end to be set")
	}
}

func TestBlendAndScale(t *testing.T) {
	c := RGB{100, 100, 100}

	if got := c.Blend(White, 0); got != c {
		t.Errorf("Expected alpha 0 to keep dst, got %v", got)
	}
	if got := c.Blend(White, 1); got != White {
		t.Errorf("Expected alpha 1 to take src, got %v", got)
	}
	if got := c.Scale(0); got != Black {
		t.Errorf("Expected scale 0 to be black, got %v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Expected scale >= 1 to be unchanged, got %v", got)
	}
}
