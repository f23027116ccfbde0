package grid

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from the terminal backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Yellow = RGB{255, 255, 0}
)

// ClampRGB builds an RGB from arbitrary int channels, clamping to 0..255.
// Game logic should only produce in-range values; clamping here prevents
// channel wraparound from propagating to the display.
func ClampRGB(r, g, b int) RGB {
	return RGB{clampChannel(r), clampChannel(g), clampChannel(b)}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return Black
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Dim returns the faint off-state version of a color used for unlit LEDs,
// with a small floor so the LED lattice stays visible on black.
func (c RGB) Dim() RGB {
	return RGB{
		R: uint8(max(5, int(c.R)/10)),
		G: uint8(max(5, int(c.G)/10)),
		B: uint8(max(5, int(c.B)/10)),
	}
}

// HSV converts hue (0-360), saturation (0-1) and value (0-1) to RGB.
func HSV(h, s, v float64) RGB {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return RGB{r, g, b}
}
