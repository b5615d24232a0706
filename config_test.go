package boardextract

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	test.That(t, cfg.MaxColorDelta, test.ShouldEqual, 0.1)
	test.That(t, cfg.SegmentRatioTolerance, test.ShouldEqual, 0.05)
	test.That(t, cfg.MinTileSize, test.ShouldEqual, 4)
	test.That(t, cfg.AdaptColorDuringScan, test.ShouldBeTrue)
	test.That(t, cfg.Validate(), test.ShouldBeNil)
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{MaxColorDelta: 1.5, SegmentRatioTolerance: -1, MinTileSize: 0}
	err := cfg.Validate()
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_color_delta")
	test.That(t, err.Error(), test.ShouldContainSubstring, "segment_ratio_tolerance")
	test.That(t, err.Error(), test.ShouldContainSubstring, "min_tile_size")
}

func TestConfigOverrides(t *testing.T) {
	cfg, err := DefaultConfig().WithOverrides(map[string]interface{}{
		"max_color_delta": 0.25,
		"min_tile_size":   "6",
		"adapt_color":     false,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.MaxColorDelta, test.ShouldEqual, 0.25)
	test.That(t, cfg.MinTileSize, test.ShouldEqual, 6)
	test.That(t, cfg.AdaptColorDuringScan, test.ShouldBeFalse)
	test.That(t, cfg.SegmentRatioTolerance, test.ShouldEqual, 0.05)

	_, err = DefaultConfig().WithOverrides(map[string]interface{}{"tile": 3})
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)

	_, err = DefaultConfig().WithOverrides(map[string]interface{}{"min_tile_size": -2})
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
}

func TestExtractorAttrs(t *testing.T) {
	tile := 8
	adapt := false
	attrs := ExtractorAttrs{MinTileSize: &tile, AdaptColor: &adapt, Select: "smallest"}

	cfg := attrs.Config()
	test.That(t, cfg.MinTileSize, test.ShouldEqual, 8)
	test.That(t, cfg.AdaptColorDuringScan, test.ShouldBeFalse)
	test.That(t, cfg.MaxColorDelta, test.ShouldEqual, 0.1)
	test.That(t, attrs.validate(), test.ShouldBeNil)

	mode, err := attrs.Mode()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mode, test.ShouldEqual, SelectSmallest)

	bad := ExtractorAttrs{Select: "middle"}
	test.That(t, bad.validate(), test.ShouldNotBeNil)

	crop := &BoardCropConfig{}
	_, _, err = crop.Validate("")
	test.That(t, err, test.ShouldNotBeNil)

	crop.Input = "cam"
	deps, _, err := crop.Validate("")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, deps, test.ShouldResemble, []string{"cam"})

	finder := &BoardFinderConfig{Camera: "cam", Extractor: bad}
	_, _, err = finder.Validate("")
	test.That(t, err, test.ShouldNotBeNil)
}
