package boardextract

import (
	"fmt"
	"image"
	"math"
)

// tilesPerSide is the number of squares along each edge of a chessboard.
const tilesPerSide = 8

// Candidate is the bounding box of a hypothesized chessboard.
type Candidate struct {
	X      int `json:"x" mapstructure:"x"`
	Y      int `json:"y" mapstructure:"y"`
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// Rect returns the candidate as an image.Rectangle.
func (c Candidate) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Contains reports whether pixel (x, y) lies inside the candidate.
func (c Candidate) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}

// Size is the metric boards are ranked by.
func (c Candidate) Size() int {
	return c.Width + c.Height
}

func (c Candidate) String() string {
	return fmt.Sprintf("{x:%d y:%d w:%d h:%d}", c.X, c.Y, c.Width, c.Height)
}

// coverage marks pixels that belong to candidates registered so far.
type coverage struct {
	width int
	mask  []bool
}

func newCoverage(width, height int) *coverage {
	return &coverage{width: width, mask: make([]bool, width*height)}
}

func (cv *coverage) covered(x, y int) bool {
	return cv.mask[y*cv.width+x]
}

func (cv *coverage) add(c Candidate) {
	height := len(cv.mask) / cv.width
	maxX := min(c.X+c.Width, cv.width)
	maxY := min(c.Y+c.Height, height)
	for y := c.Y; y < maxY; y++ {
		row := cv.mask[y*cv.width : (y+1)*cv.width]
		for x := c.X; x < maxX; x++ {
			row[x] = true
		}
	}
}

// searcher holds the per call state of one raster walk.
type searcher struct {
	src       PixelSource
	width     int
	height    int
	maxDelta  float32
	tolerance float32
	minTile   int
	adapt     bool
}

// FindChessboards walks src in row-major order and returns every chessboard
// candidate in the order it was found. No candidates is not an error.
//
// A pixel inside a candidate registered earlier in the walk is never probed
// again, so the result depends on the raster order.
func FindChessboards(src PixelSource, cfg Config) ([]Candidate, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil pixel source", ErrInvalidArgument)
	}
	if src.Width() <= 0 || src.Height() <= 0 {
		return nil, fmt.Errorf("%w: pixel source is %dx%d", ErrInvalidArgument, src.Width(), src.Height())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &searcher{
		src:       src,
		width:     src.Width(),
		height:    src.Height(),
		maxDelta:  float32(cfg.MaxColorDelta),
		tolerance: float32(cfg.SegmentRatioTolerance),
		minTile:   cfg.MinTileSize,
		adapt:     cfg.AdaptColorDuringScan,
	}
	cov := newCoverage(s.width, s.height)

	candidates := []Candidate{}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; {
			if cov.covered(x, y) {
				x++
				continue
			}
			c, found, next, err := s.probe(x, y)
			if err != nil {
				return nil, err
			}
			if found {
				candidates = append(candidates, c)
				cov.add(c)
			}
			x = next
		}
	}
	return candidates, nil
}

// probe tries to grow a board from (x, y). It returns the candidate when
// eight x runs and eight y runs agree with the first tile, and the next x the
// walk should probe on this row.
func (s *searcher) probe(x, y int) (Candidate, bool, int, error) {
	tile, width, ok, err := s.probeX(x, y)
	if err != nil {
		return Candidate{}, false, 0, err
	}
	if !ok {
		// skip the run that failed, always making progress
		return Candidate{}, false, x + max(tile, 1), nil
	}

	next := x + tilesPerSide*tile
	height, ok, err := s.probeY(x, y, tile)
	if err != nil || !ok {
		return Candidate{}, false, next, err
	}
	return Candidate{X: x, Y: y, Width: width, Height: height}, true, next, nil
}

// probeX returns the first run length, the summed width and whether all
// eight runs were consistent.
func (s *searcher) probeX(x, y int) (int, int, bool, error) {
	tile, cumulative := 0, 0
	startX := x
	for i := 0; i < tilesPerSide; i++ {
		if startX+tile > s.width {
			return tile, cumulative, false, nil
		}
		length, err := scanSegment(s.src, startX, y, AxisX, s.maxDelta, s.adapt)
		if err != nil {
			return tile, cumulative, false, err
		}
		startX += length
		cumulative += length

		if i == 0 {
			tile = length
			if length < s.minTile {
				return tile, cumulative, false, nil
			}
			continue
		}
		if !s.consistent(length, tile) {
			return tile, cumulative, false, nil
		}
	}
	return tile, cumulative, true, nil
}

// probeY checks eight y runs in column x against the tile length found on
// the x axis. A partial column produces nothing.
func (s *searcher) probeY(x, y, tile int) (int, bool, error) {
	cumulative := 0
	startY := y
	for i := 0; i < tilesPerSide; i++ {
		if startY+tile > s.height {
			return 0, false, nil
		}
		length, err := scanSegment(s.src, x, startY, AxisY, s.maxDelta, s.adapt)
		if err != nil {
			return 0, false, err
		}
		startY += length
		cumulative += length

		if !s.consistent(length, tile) {
			return 0, false, nil
		}
	}
	return cumulative, true, nil
}

func (s *searcher) consistent(length, tile int) bool {
	ratio := float32(length) / float32(tile)
	return float32(math.Abs(float64(1-ratio))) <= s.tolerance
}
