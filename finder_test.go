package boardextract

import (
	"errors"
	"testing"

	"github.com/mitchellh/mapstructure"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"
)

func decodeCmd(t *testing.T, m map[string]interface{}) finderCmd {
	t.Helper()
	var cmd finderCmd
	err := mapstructure.Decode(m, &cmd)
	test.That(t, err, test.ShouldBeNil)
	return cmd
}

func TestFinderCmdFind(t *testing.T) {
	logger := logging.NewTestLogger(t)

	img := newCanvas(300, 160, background)
	drawBoard(img, 10, 20, evenTiles(8, 8), evenTiles(8, 8))
	drawBoard(img, 120, 30, evenTiles(8, 12), evenTiles(8, 12))

	cmd := decodeCmd(t, map[string]interface{}{"find": map[string]interface{}{}, "select": "smallest"})
	res, err := runFinderCmd(img, ExtractorAttrs{}, cmd, true, logger)
	test.That(t, err, test.ShouldBeNil)

	boards := res["boards"].([]interface{})
	test.That(t, len(boards), test.ShouldEqual, 2)
	test.That(t, boards[1], test.ShouldResemble, map[string]interface{}{"x": 120, "y": 30, "width": 96, "height": 96})
	test.That(t, res["board"], test.ShouldResemble, map[string]interface{}{"x": 10, "y": 20, "width": 64, "height": 64})
}

func TestFinderCmdOverrides(t *testing.T) {
	logger := logging.NewTestLogger(t)

	img := newCanvas(300, 160, background)
	drawBoard(img, 10, 20, evenTiles(8, 8), evenTiles(8, 8))
	drawBoard(img, 120, 30, evenTiles(8, 12), evenTiles(8, 12))

	// tiles of 8 are now too small
	cmd := decodeCmd(t, map[string]interface{}{"find": map[string]interface{}{"min_tile_size": 10}})
	res, err := runFinderCmd(img, ExtractorAttrs{}, cmd, true, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(res["boards"].([]interface{})), test.ShouldEqual, 1)
	_, hasBoard := res["board"]
	test.That(t, hasBoard, test.ShouldBeFalse)

	cmd = decodeCmd(t, map[string]interface{}{"find": map[string]interface{}{"max_color_delta": 3}})
	_, err = runFinderCmd(img, ExtractorAttrs{}, cmd, true, logger)
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
}

func TestFinderCmdSelectNone(t *testing.T) {
	logger := logging.NewTestLogger(t)

	cmd := decodeCmd(t, map[string]interface{}{"select": "largest"})
	res, err := runFinderCmd(newCanvas(40, 40, background), ExtractorAttrs{}, cmd, false, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res["board"], test.ShouldBeNil)
	_, hasBoards := res["boards"]
	test.That(t, hasBoards, test.ShouldBeFalse)

	cmd = decodeCmd(t, map[string]interface{}{"select": "widest"})
	_, err = runFinderCmd(newCanvas(40, 40, background), ExtractorAttrs{}, cmd, false, logger)
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
}
