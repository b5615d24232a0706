package boardextract

import (
	"go.uber.org/multierr"
)

// ExtractorAttrs are the optional search settings shared by the resources.
// Unset fields keep their DefaultConfig value.
type ExtractorAttrs struct {
	MaxColorDelta         *float64 `json:"max_color_delta,omitempty"`
	SegmentRatioTolerance *float64 `json:"segment_ratio_tolerance,omitempty"`
	MinTileSize           *int     `json:"min_tile_size,omitempty"`
	AdaptColor            *bool    `json:"adapt_color,omitempty"`

	// Select is "largest" (default) or "smallest".
	Select string `json:"select,omitempty"`
}

// Config merges the set attributes over DefaultConfig.
func (a ExtractorAttrs) Config() Config {
	cfg := DefaultConfig()
	if a.MaxColorDelta != nil {
		cfg.MaxColorDelta = *a.MaxColorDelta
	}
	if a.SegmentRatioTolerance != nil {
		cfg.SegmentRatioTolerance = *a.SegmentRatioTolerance
	}
	if a.MinTileSize != nil {
		cfg.MinTileSize = *a.MinTileSize
	}
	if a.AdaptColor != nil {
		cfg.AdaptColorDuringScan = *a.AdaptColor
	}
	return cfg
}

// Mode parses Select.
func (a ExtractorAttrs) Mode() (SelectMode, error) {
	return ParseSelectMode(a.Select)
}

func (a ExtractorAttrs) validate() error {
	_, err := a.Mode()
	return multierr.Combine(a.Config().Validate(), err)
}
