package remote

import (
	"encoding/json"

	"github.com/VA24d/Pixelate/grid"
)

// Frame is the wire format for one rendered LED frame. Pixels are row-major
// [r, g, b] triples, 361 of them for the 19x19 matrix.
type Frame struct {
	W      int      `json:"w"`
	H      int      `json:"h"`
	Pixels [][3]int `json:"pixels"`
}

// EncodeFrame serializes a framebuffer snapshot for broadcast.
func EncodeFrame(cells [grid.Size][grid.Size]grid.RGB) ([]byte, error) {
	f := Frame{
		W:      grid.Size,
		H:      grid.Size,
		Pixels: make([][3]int, 0, grid.Size*grid.Size),
	}
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			c := cells[y][x]
			f.Pixels = append(f.Pixels, [3]int{int(c.R), int(c.G), int(c.B)})
		}
	}
	return json.Marshal(f)
}
