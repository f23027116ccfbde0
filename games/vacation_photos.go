package games

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"

	"github.com/VA24d/Pixelate/grid"
)

type photoSlide struct {
	pixels [grid.Size][grid.Size]grid.RGB
}

func (p *photoSlide) draw(g *grid.Grid) {
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			g.SetPixel(x, y, p.pixels[y][x])
		}
	}
}

// loadPhotoSlides reads every png and jpeg in dir and scales each down to
// the panel. Unreadable files are skipped; an empty or missing dir just
// means no photo slides.
func loadPhotoSlides(dir string) []photoSlide {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var slides []photoSlide
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			continue
		}
		slides = append(slides, downscale(img))
	}
	return slides
}

// downscale averages the source into a panel sized thumbnail. CatmullRom
// keeps more detail than nearest neighbor at this tiny size.
func downscale(src image.Image) photoSlide {
	dst := image.NewRGBA(image.Rect(0, 0, grid.Size, grid.Size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	var s photoSlide
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			s.pixels[y][x] = grid.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		}
	}
	return s
}
