package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/rimage"

	"boardextract"
)

func main() {
	app := &cli.App{
		Name:      "boardextract",
		Usage:     "find chessboards in an image",
		ArgsUsage: "<input.jpg>",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "max-color-delta", Value: boardextract.DefaultConfig().MaxColorDelta},
			&cli.Float64Flag{Name: "segment-ratio-tolerance", Value: boardextract.DefaultConfig().SegmentRatioTolerance},
			&cli.IntFlag{Name: "min-tile-size", Value: boardextract.DefaultConfig().MinTileSize},
			&cli.BoolFlag{Name: "adapt-color", Value: boardextract.DefaultConfig().AdaptColorDuringScan},
			&cli.StringFlag{Name: "select", Value: "largest", Usage: "largest or smallest"},
			&cli.StringFlag{Name: "out", Usage: "annotated output, default <input>_output<ext>"},
			&cli.BoolFlag{Name: "crop", Usage: "write only the selected board"},
			&cli.BoolFlag{Name: "debug"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowAppHelp(c)
	}
	inputFile := c.Args().First()

	logger := logging.NewLogger("boardextract")
	if c.Bool("debug") {
		logger.SetLevel(logging.DEBUG)
	}

	cfg := boardextract.Config{
		MaxColorDelta:         c.Float64("max-color-delta"),
		SegmentRatioTolerance: c.Float64("segment-ratio-tolerance"),
		MinTileSize:           c.Int("min-tile-size"),
		AdaptColorDuringScan:  c.Bool("adapt-color"),
	}
	mode, err := boardextract.ParseSelectMode(c.String("select"))
	if err != nil {
		return err
	}

	outputFile := c.String("out")
	if outputFile == "" {
		// input.jpg -> input_output.jpg
		ext := filepath.Ext(inputFile)
		outputFile = strings.TrimSuffix(inputFile, ext) + "_output" + ext
	}

	input, err := boardextract.LoadImage(inputFile)
	if err != nil {
		return err
	}
	fmt.Printf("Image size: %dx%d\n", input.Bounds().Dx(), input.Bounds().Dy())

	ex, err := boardextract.NewBoardExtractor(input, cfg, logger)
	if err != nil {
		return err
	}

	candidates, err := ex.FindChessboards()
	if err != nil {
		return err
	}

	fmt.Printf("Found %d chessboard(s):\n", len(candidates))
	for i, cand := range candidates {
		fmt.Printf("  %d: x=%d y=%d width=%d height=%d\n", i, cand.X, cand.Y, cand.Width, cand.Height)
	}

	board, ok, err := boardextract.SelectBoard(candidates, mode)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No chessboard selected")
		if c.Bool("crop") {
			return nil
		}
	} else {
		fmt.Printf("Selected (%v): %v\n", mode, board)
	}

	out := boardextract.DebugImage(input, candidates, nil)
	switch {
	case ok && c.Bool("crop"):
		out = boardextract.Crop(input, board)
	case ok:
		out = boardextract.DebugImage(input, candidates, &board)
	}

	if err := rimage.WriteImageToFile(outputFile, out); err != nil {
		return err
	}
	fmt.Printf("Saved output image to %s\n", outputFile)
	return nil
}
