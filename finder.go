package boardextract

import (
	"context"
	"fmt"
	"image"

	"github.com/mitchellh/mapstructure"

	"go.viam.com/rdk/components/camera"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	generic "go.viam.com/rdk/services/generic"
	"go.viam.com/utils/trace"
)

var BoardFinderModel = family.WithModel("board-finder")

func init() {
	resource.RegisterService(generic.API, BoardFinderModel,
		resource.Registration[resource.Resource, *BoardFinderConfig]{
			Constructor: newBoardFinder,
		},
	)
}

type BoardFinderConfig struct {
	Camera    string
	Extractor ExtractorAttrs `json:"extractor,omitempty"`
}

func (cfg *BoardFinderConfig) Validate(path string) ([]string, []string, error) {
	if cfg.Camera == "" {
		return nil, nil, fmt.Errorf("need a camera")
	}
	if err := cfg.Extractor.validate(); err != nil {
		return nil, nil, err
	}
	return []string{cfg.Camera}, nil, nil
}

type boardFinder struct {
	resource.AlwaysRebuild

	name resource.Name

	logger logging.Logger
	conf   *BoardFinderConfig

	cam camera.Camera
}

func newBoardFinder(ctx context.Context, deps resource.Dependencies, rawConf resource.Config, logger logging.Logger) (resource.Resource, error) {
	conf, err := resource.NativeConfig[*BoardFinderConfig](rawConf)
	if err != nil {
		return nil, err
	}

	return NewBoardFinder(ctx, deps, rawConf.ResourceName(), conf, logger)
}

func NewBoardFinder(ctx context.Context, deps resource.Dependencies, name resource.Name, conf *BoardFinderConfig, logger logging.Logger) (resource.Resource, error) {
	var err error

	s := &boardFinder{
		name:   name,
		logger: logger,
		conf:   conf,
	}

	s.cam, err = camera.FromProvider(deps, conf.Camera)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *boardFinder) Name() resource.Name {
	return s.name
}

// ----

// finderCmd is the DoCommand payload. "find" takes config overrides and
// returns every candidate, "select" returns one board.
type finderCmd struct {
	Find   map[string]interface{}
	Select string
}

func (s *boardFinder) DoCommand(ctx context.Context, cmdMap map[string]interface{}) (map[string]interface{}, error) {
	var cmd finderCmd
	err := mapstructure.Decode(cmdMap, &cmd)
	if err != nil {
		return nil, err
	}

	_, wantFind := cmdMap["find"]
	if !wantFind && cmd.Select == "" {
		return nil, fmt.Errorf("bad cmd %v", cmdMap)
	}

	ctx, span := trace.StartSpan(ctx, "board-finder::DoCommand")
	defer span.End()

	img, err := s.capture(ctx)
	if err != nil {
		return nil, err
	}

	return runFinderCmd(img, s.conf.Extractor, cmd, wantFind, s.logger)
}

// runFinderCmd answers a decoded command against one image.
func runFinderCmd(img image.Image, attrs ExtractorAttrs, cmd finderCmd, wantFind bool, logger logging.Logger) (map[string]interface{}, error) {
	cfg, err := attrs.Config().WithOverrides(cmd.Find)
	if err != nil {
		return nil, err
	}

	ex, err := NewBoardExtractor(img, cfg, logger)
	if err != nil {
		return nil, err
	}

	candidates, err := ex.FindChessboards()
	if err != nil {
		return nil, err
	}

	res := map[string]interface{}{}
	if wantFind {
		boards := make([]interface{}, 0, len(candidates))
		for _, c := range candidates {
			m, err := candidateToMap(c)
			if err != nil {
				return nil, err
			}
			boards = append(boards, m)
		}
		res["boards"] = boards
	}

	if cmd.Select != "" {
		mode, err := ParseSelectMode(cmd.Select)
		if err != nil {
			return nil, err
		}
		board, ok, err := SelectBoard(candidates, mode)
		if err != nil {
			return nil, err
		}
		if ok {
			m, err := candidateToMap(board)
			if err != nil {
				return nil, err
			}
			res["board"] = m
		} else {
			res["board"] = nil
		}
	}

	return res, nil
}

func candidateToMap(c Candidate) (map[string]interface{}, error) {
	m := map[string]interface{}{}
	err := mapstructure.Decode(c, &m)
	return m, err
}

func (s *boardFinder) capture(ctx context.Context) (image.Image, error) {
	ni, _, err := s.cam.Images(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(ni) == 0 {
		return nil, fmt.Errorf("no images returned from %v", s.conf.Camera)
	}
	return ni[0].Image(ctx)
}

func (s *boardFinder) Close(context.Context) error {
	return nil
}
