// Package assets turns tool configuration into configured importers and
// loaded scenes. It is the only place where config values are translated
// into binding-level flags and properties.
package assets

import (
	"fmt"

	"github.com/Faultbox/go-assimp/internal/config"
	"github.com/Faultbox/go-assimp/pkg/assimp"
)

// Steps maps an import preset name to post-processing flags.
func Steps(cfg config.ImportConfig) (assimp.PostProcess, error) {
	var steps assimp.PostProcess
	switch cfg.Preset {
	case "", "none":
		steps = assimp.ProcessTriangulate | assimp.ProcessSortByPType
	case "fast":
		steps = assimp.PresetTargetRealtimeFast
	case "quality":
		steps = assimp.PresetTargetRealtimeQuality
	case "maxquality":
		steps = assimp.PresetTargetRealtimeMaxQuality
	default:
		return 0, fmt.Errorf("unknown import preset %q", cfg.Preset)
	}

	if cfg.FlipUVs {
		steps |= assimp.ProcessFlipUVs
	}
	if cfg.RemoveDegenerates {
		steps |= assimp.ProcessFindDegenerates
	}
	if cfg.Validate {
		steps |= assimp.ProcessValidateDataStructure
	}
	return steps, nil
}

// NewImporter builds an importer configured per cfg. The caller owns the
// returned importer and must Close it.
func NewImporter(cfg config.ImportConfig) (*assimp.Importer, error) {
	steps, err := Steps(cfg)
	if err != nil {
		return nil, err
	}

	imp := assimp.NewImporter()
	imp.AddProcessingSteps(steps)

	if cfg.SmoothingAngle > 0 {
		imp.SetProperty(assimp.GenNormalsMaxSmoothingAngle(cfg.SmoothingAngle))
	}
	if cfg.RemoveDegenerates {
		imp.SetProperty(assimp.FindDegeneratesRemove(true))
	}

	if cfg.NativeLog {
		assimp.LogStreamStderr().Attach()
		assimp.EnableVerboseLogging(cfg.NativeLogVerbose)
	}

	return imp, nil
}

// Load imports one file with a fresh importer configured per cfg.
func Load(cfg config.ImportConfig, path string) (*assimp.Scene, error) {
	imp, err := NewImporter(cfg)
	if err != nil {
		return nil, err
	}
	defer imp.Close()

	return imp.ReadFile(path)
}
