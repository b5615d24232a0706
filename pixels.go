package boardextract

import (
	"fmt"
	"image"
	"os"

	"go.viam.com/rdk/rimage"
)

// PixelSource is a read-only raster. Coordinates are zero based.
type PixelSource interface {
	Width() int
	Height() int
	RGB(x, y int) (r, g, b uint8)
}

// imageSource adapts an image.Image, hiding a non-zero bounds origin.
type imageSource struct {
	img    image.Image
	bounds image.Rectangle
}

// NewImageSource wraps img as a PixelSource.
func NewImageSource(img image.Image) (PixelSource, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %v", ErrInvalidArgument, b)
	}
	return &imageSource{img: img, bounds: b}, nil
}

func (s *imageSource) Width() int {
	return s.bounds.Dx()
}

func (s *imageSource) Height() int {
	return s.bounds.Dy()
}

func (s *imageSource) RGB(x, y int) (uint8, uint8, uint8) {
	if rgba, ok := s.img.(*image.RGBA); ok {
		c := rgba.RGBAAt(s.bounds.Min.X+x, s.bounds.Min.Y+y)
		return c.R, c.G, c.B
	}
	r, g, b, _ := s.img.At(s.bounds.Min.X+x, s.bounds.Min.Y+y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

// LoadImage reads an image file, failing with ErrImageNotFound when the path
// is not an existing regular file.
func LoadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrImageNotFound, path)
	}
	return rimage.ReadImageFromFile(path)
}
