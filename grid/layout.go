package grid

// Text layout zones. On a 19x19 matrix text must be confined to small
// regions or screens become unreadable; these are the shared conventions
// every screen uses.

// TextZone is a rectangular text region on the grid.
type TextZone struct {
	X, Y, W, H int
}

// Standard zones.
var (
	Title = TextZone{X: 0, Y: 0, W: Size, H: 5}
	Hint  = TextZone{X: 0, Y: 14, W: Size, H: 5}

	HUDLeft  = TextZone{X: 0, Y: 0, W: 9, H: 7}
	HUDRight = TextZone{X: 10, Y: 0, W: 9, H: 7}
)

// TextWidth returns the rendered width of a string of the given length.
// Spacing is unscaled, matching RenderText.
func TextWidth(chars, scale, spacing int) int {
	return chars * (3 + spacing) * scale
}

// CenteredX returns the x position that centers a string inside a zone.
func CenteredX(zone TextZone, chars, scale, spacing int) int {
	w := TextWidth(chars, scale, spacing)
	off := (zone.W - w) / 2
	if off < 0 {
		off = 0
	}
	return zone.X + off
}
