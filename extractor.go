package boardextract

import (
	"image"
	"strings"

	"go.viam.com/rdk/logging"
)

// BoardExtractor finds chessboards in a single image.
type BoardExtractor struct {
	Config Config

	src    PixelSource
	logger logging.Logger
}

// NewBoardExtractor builds an extractor over an in-memory image.
func NewBoardExtractor(img image.Image, cfg Config, logger logging.Logger) (*BoardExtractor, error) {
	src, err := NewImageSource(img)
	if err != nil {
		return nil, err
	}
	return &BoardExtractor{
		Config: cfg,
		src:    src,
		logger: logger.Sublogger("extractor"),
	}, nil
}

// NewBoardExtractorFromFile loads the image at path first.
func NewBoardExtractorFromFile(path string, cfg Config, logger logging.Logger) (*BoardExtractor, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewBoardExtractor(img, cfg, logger)
}

// Source returns the pixels being searched.
func (e *BoardExtractor) Source() PixelSource {
	return e.src
}

// FindChessboards returns every candidate in discovery order.
func (e *BoardExtractor) FindChessboards() ([]Candidate, error) {
	candidates, err := FindChessboards(e.src, e.Config)
	if err != nil {
		return nil, err
	}
	e.logger.Debugw("chessboard search done",
		"size", [2]int{e.src.Width(), e.src.Height()},
		"found", len(candidates),
		"detail", describeCandidates(candidates),
	)
	return candidates, nil
}

// FindChessboard returns the candidate picked by mode, ok is false if none.
func (e *BoardExtractor) FindChessboard(mode SelectMode) (Candidate, bool, error) {
	candidates, err := e.FindChessboards()
	if err != nil {
		return Candidate{}, false, err
	}
	c, ok, err := SelectBoard(candidates, mode)
	if err != nil {
		return Candidate{}, false, err
	}
	if ok {
		e.logger.Debugf("selected %v board %v", mode, c)
	}
	return c, ok, nil
}

// FindLargest is FindChessboard(SelectLargest).
func (e *BoardExtractor) FindLargest() (Candidate, bool, error) {
	return e.FindChessboard(SelectLargest)
}

// describeCandidates renders one candidate per line.
func describeCandidates(candidates []Candidate) string {
	var sb strings.Builder
	for i, c := range candidates {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
