package boardextract

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/multierr"
)

// Config tunes the board search.
type Config struct {
	// MaxColorDelta is the largest normalized intensity difference still
	// considered the same region.
	MaxColorDelta float64 `json:"max_color_delta" mapstructure:"max_color_delta"`
	// SegmentRatioTolerance is the allowed relative deviation of a run from
	// the first tile run.
	SegmentRatioTolerance float64 `json:"segment_ratio_tolerance" mapstructure:"segment_ratio_tolerance"`
	// MinTileSize is the shortest accepted first run, in pixels.
	MinTileSize int `json:"min_tile_size" mapstructure:"min_tile_size"`
	// AdaptColorDuringScan moves the comparison baseline to each scanned pixel.
	AdaptColorDuringScan bool `json:"adapt_color" mapstructure:"adapt_color"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MaxColorDelta:         0.1,
		SegmentRatioTolerance: 0.05,
		MinTileSize:           4,
		AdaptColorDuringScan:  true,
	}
}

// Validate reports every out of range field at once.
func (c Config) Validate() error {
	var err error
	if c.MaxColorDelta < 0 || c.MaxColorDelta > 1 {
		err = multierr.Append(err, fmt.Errorf("max_color_delta %v not in [0,1]", c.MaxColorDelta))
	}
	if c.SegmentRatioTolerance < 0 || c.SegmentRatioTolerance > 1 {
		err = multierr.Append(err, fmt.Errorf("segment_ratio_tolerance %v not in [0,1]", c.SegmentRatioTolerance))
	}
	if c.MinTileSize < 1 {
		err = multierr.Append(err, fmt.Errorf("min_tile_size %d must be at least 1", c.MinTileSize))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

// WithOverrides returns a copy of c with the fields present in m replaced.
// Numbers may arrive as any numeric type or string, as they do from JSON.
func (c Config) WithOverrides(m map[string]interface{}) (Config, error) {
	out := c
	if len(m) == 0 {
		return out, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return c, err
	}
	if err := dec.Decode(m); err != nil {
		return c, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return out, out.Validate()
}
