package boardextract

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DebugImage copies src and outlines every candidate, each in its own hue.
// The selected board, if any, also gets its 8x8 grid drawn.
func DebugImage(src image.Image, candidates []Candidate, selected *Candidate) image.Image {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	for i, c := range candidates {
		hue := 360 * float64(i) / float64(max(len(candidates), 1))
		col := colorful.Hsv(hue, 1, 1)
		r := c.Rect().Add(bounds.Min)
		drawRect(dst, r, col)
		drawString(dst, r.Min.X+2, r.Min.Y+12, fmt.Sprintf("%d %dx%d", i, c.Width, c.Height), col)
	}

	if selected != nil {
		drawGrid(dst, selected.Rect().Add(bounds.Min), color.RGBA{255, 0, 0, 255})
	}
	return dst
}

// Crop returns the pixels of c as a new image with origin (0, 0).
func Crop(src image.Image, c Candidate) image.Image {
	r := c.Rect().Add(src.Bounds().Min).Intersect(src.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

func drawRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, c)
		dst.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, c)
		dst.Set(r.Max.X-1, y, c)
	}
}

func drawGrid(dst *image.RGBA, r image.Rectangle, c color.Color) {
	width := r.Dx()
	height := r.Dy()

	// vertical lines
	for i := 1; i < tilesPerSide; i++ {
		x := r.Min.X + (width * i / tilesPerSide)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			dst.Set(x, y, c)
		}
	}

	// horizontal lines
	for i := 1; i < tilesPerSide; i++ {
		y := r.Min.Y + (height * i / tilesPerSide)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

func drawString(dst *image.RGBA, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}
