package boardextract

import (
	"context"
	"fmt"

	"go.viam.com/rdk/components/camera"
	"go.viam.com/rdk/data"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/pointcloud"
	"go.viam.com/rdk/resource"
	"go.viam.com/rdk/spatialmath"
)

var BoardCropModel = family.WithModel("board-crop")

func init() {
	resource.RegisterComponent(camera.API, BoardCropModel,
		resource.Registration[camera.Camera, *BoardCropConfig]{
			Constructor: newBoardCropCamera,
		},
	)
}

type BoardCropConfig struct {
	Input     string         // camera to search for boards
	Debug     bool           `json:"debug,omitempty"` // annotate instead of crop
	Extractor ExtractorAttrs `json:"extractor,omitempty"`
}

func (cfg *BoardCropConfig) Validate(path string) ([]string, []string, error) {
	if cfg.Input == "" {
		return nil, nil, fmt.Errorf("need an input")
	}
	if err := cfg.Extractor.validate(); err != nil {
		return nil, nil, err
	}
	return []string{cfg.Input}, nil, nil
}

func newBoardCropCamera(ctx context.Context, deps resource.Dependencies, rawConf resource.Config, logger logging.Logger) (camera.Camera, error) {
	conf, err := resource.NativeConfig[*BoardCropConfig](rawConf)
	if err != nil {
		return nil, err
	}

	return NewBoardCropCamera(ctx, deps, rawConf.ResourceName(), conf, logger)
}

func NewBoardCropCamera(ctx context.Context, deps resource.Dependencies, name resource.Name, conf *BoardCropConfig, logger logging.Logger) (camera.Camera, error) {
	var err error

	bc := &BoardCropCamera{
		name:   name,
		conf:   conf,
		logger: logger,
		cfg:    conf.Extractor.Config(),
	}

	bc.mode, err = conf.Extractor.Mode()
	if err != nil {
		return nil, err
	}

	bc.input, err = camera.FromProvider(deps, conf.Input)
	if err != nil {
		return nil, err
	}

	return bc, nil
}

type BoardCropCamera struct {
	resource.AlwaysRebuild
	resource.TriviallyCloseable

	name   resource.Name
	conf   *BoardCropConfig
	logger logging.Logger

	cfg  Config
	mode SelectMode

	input camera.Camera
}

func (bc *BoardCropCamera) Image(ctx context.Context, mimeType string, extra map[string]interface{}) ([]byte, camera.ImageMetadata, error) {
	return camera.GetImageFromGetImages(ctx, nil, bc, extra, nil)
}

func (bc *BoardCropCamera) Images(ctx context.Context, filterSourceNames []string, extra map[string]interface{}) ([]camera.NamedImage, resource.ResponseMetadata, error) {
	ni, rm, err := bc.input.Images(ctx, nil, extra)
	if err != nil {
		return nil, rm, err
	}

	if len(ni) == 0 {
		return nil, rm, fmt.Errorf("no images returned from input camera")
	}

	srcImg, err := ni[0].Image(ctx)
	if err != nil {
		return nil, rm, err
	}

	ex, err := NewBoardExtractor(srcImg, bc.cfg, bc.logger)
	if err != nil {
		return nil, rm, err
	}

	candidates, err := ex.FindChessboards()
	if err != nil {
		return nil, rm, err
	}

	board, ok, err := SelectBoard(candidates, bc.mode)
	if err != nil {
		return nil, rm, err
	}

	dst := srcImg
	switch {
	case bc.conf.Debug && ok:
		dst = DebugImage(srcImg, candidates, &board)
	case bc.conf.Debug:
		dst = DebugImage(srcImg, candidates, nil)
	case ok:
		dst = Crop(srcImg, board)
	default:
		return nil, rm, fmt.Errorf("no chessboard found in %v image", ni[0].SourceName)
	}

	result, err := camera.NamedImageFromImage(dst, ni[0].SourceName, "", data.Annotations{})
	if err != nil {
		return nil, rm, err
	}
	return []camera.NamedImage{result}, rm, nil
}

func (bc *BoardCropCamera) DoCommand(ctx context.Context, cmd map[string]interface{}) (map[string]interface{}, error) {
	return nil, fmt.Errorf("DoCommand not supported")
}

func (bc *BoardCropCamera) NextPointCloud(ctx context.Context, extra map[string]interface{}) (pointcloud.PointCloud, error) {
	return nil, fmt.Errorf("NextPointCloud not supported")
}

func (bc *BoardCropCamera) Properties(ctx context.Context) (camera.Properties, error) {
	return camera.Properties{}, nil
}

func (bc *BoardCropCamera) Geometries(ctx context.Context, extra map[string]interface{}) ([]spatialmath.Geometry, error) {
	return nil, nil
}

func (bc *BoardCropCamera) Name() resource.Name {
	return bc.name
}
