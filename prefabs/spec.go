package prefabs

import (
	"fmt"

	"github.com/milk9111/ledgehop/camera"
	"github.com/milk9111/ledgehop/parallax"
	"github.com/milk9111/ledgehop/ui"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile   = "player.yaml"
	CameraFile   = "camera.yaml"
	ParallaxFile = "parallax.yaml"
	UIFile       = "ui.yaml"
	GameFile     = "game.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds the runtime settings in game.yaml.
type GameSpec struct {
	Title     string  `yaml:"title"`
	AppName   string  `yaml:"app_name"`
	Level     string  `yaml:"level"`
	Backend   string  `yaml:"backend"`
	FixedStep float64 `yaml:"fixed_step"`
	MaxSteps  int     `yaml:"max_steps"`
	Music     string  `yaml:"music"`
}

func LoadGameSpec() (GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return spec, err
	}
	if spec.FixedStep <= 0 {
		return spec, fmt.Errorf("prefabs: %s: fixed_step must be > 0", GameFile)
	}
	return spec, nil
}

func LoadCameraSpec() (camera.Config, error) {
	cfg := camera.DefaultConfig()
	data, err := Load(CameraFile)
	if err != nil {
		return cfg, fmt.Errorf("prefabs: load %s: %w", CameraFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("prefabs: unmarshal %s: %w", CameraFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", CameraFile, err)
	}
	return cfg, nil
}

func LoadParallaxSpec() (parallax.Config, error) {
	cfg, err := LoadSpec[parallax.Config](ParallaxFile)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", ParallaxFile, err)
	}
	return cfg, nil
}

func LoadUISpec() (ui.Config, error) {
	return LoadSpec[ui.Config](UIFile)
}
