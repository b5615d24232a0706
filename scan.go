package boardextract

import "fmt"

// Axis selects the direction a run is measured along.
type Axis int

const (
	// AxisNone is the zero value and is rejected by the scanner.
	AxisNone Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

func (a Axis) step() (int, int) {
	switch a {
	case AxisX:
		return 1, 0
	case AxisY:
		return 0, 1
	default:
		return 0, 0
	}
}

// intensity is the mean of the three channels, each normalized to [0,1].
func intensity(r, g, b uint8) float32 {
	return float32(int(r)+int(g)+int(b)) / (255 * 3)
}

func colorDelta(a, b float32) float32 {
	d := b - a
	if d < 0 {
		return -d
	}
	return d
}

// scanSegment measures how many pixels, starting at (x, y) and walking along
// axis, stay within maxDelta of the baseline. With adapt set the baseline
// follows the last accepted pixel, otherwise it stays at the start pixel.
//
// The walk stops as soon as either coordinate would leave the image, whatever
// the axis. If it stops there without a deviation the distance to the edge
// along axis is returned.
func scanSegment(src PixelSource, x, y int, axis Axis, maxDelta float32, adapt bool) (int, error) {
	dx, dy := axis.step()
	if dx == 0 && dy == 0 {
		return 0, fmt.Errorf("%w: a scan direction is required", ErrInvalidArgument)
	}

	width, height := src.Width(), src.Height()
	origin := intensity(src.RGB(x, y))

	for i := 0; x+i < width && y+i < height; i++ {
		scan := intensity(src.RGB(x+i*dx, y+i*dy))
		if colorDelta(origin, scan) > maxDelta {
			return i, nil
		}
		if adapt {
			origin = scan
		}
	}

	if axis == AxisX {
		return width - x, nil
	}
	return height - y, nil
}
