package boardextract

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	lightTile  = color.RGBA{255, 255, 255, 255}
	darkTile   = color.RGBA{0, 0, 0, 255}
	background = color.RGBA{128, 128, 128, 255}
)

func newCanvas(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func evenTiles(n, size int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = size
	}
	return out
}

// drawBoard paints an alternating board whose column widths and row heights
// are given explicitly, starting light at (x0, y0).
func drawBoard(img *image.RGBA, x0, y0 int, cols, rows []int) {
	y := y0
	for r, h := range rows {
		x := x0
		for c, w := range cols {
			col := lightTile
			if (r+c)%2 == 1 {
				col = darkTile
			}
			draw.Draw(img, image.Rect(x, y, x+w, y+h), &image.Uniform{col}, image.Point{}, draw.Src)
			x += w
		}
		y += h
	}
}

func mustSource(img image.Image) PixelSource {
	src, err := NewImageSource(img)
	if err != nil {
		panic(err)
	}
	return src
}
