package prefabs

import (
	"fmt"

	"github.com/milk9111/ledgehop/movement"
	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is a named bag of component specs decoded lazily.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type BodyComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SoundCueSpec names the clip played for each controller event.
type SoundCueSpec struct {
	Jump   string `yaml:"jump"`
	Land   string `yaml:"land"`
	Dash   string `yaml:"dash"`
	Hazard string `yaml:"hazard"`
}

type PlayerSpec struct {
	Name     string
	Body     BodyComponentSpec
	Movement movement.Config
	Sounds   SoundCueSpec
}

// LoadPlayerSpec decodes player.yaml. Movement fields missing from the file
// keep their defaults.
func LoadPlayerSpec() (PlayerSpec, error) {
	build, err := LoadEntityBuildSpec(PlayerFile)
	if err != nil {
		return PlayerSpec{}, err
	}
	spec := PlayerSpec{
		Name:     build.Name,
		Body:     BodyComponentSpec{Width: 0.8, Height: 1.6},
		Movement: movement.DefaultConfig(),
	}
	if raw, ok := build.Components["body"]; ok {
		if spec.Body, err = DecodeComponentSpec[BodyComponentSpec](raw); err != nil {
			return spec, fmt.Errorf("prefabs: %s body: %w", PlayerFile, err)
		}
	}
	if raw, ok := build.Components["movement"]; ok {
		if err := decodeInto(raw, &spec.Movement); err != nil {
			return spec, fmt.Errorf("prefabs: %s movement: %w", PlayerFile, err)
		}
	}
	if raw, ok := build.Components["sounds"]; ok {
		if spec.Sounds, err = DecodeComponentSpec[SoundCueSpec](raw); err != nil {
			return spec, fmt.Errorf("prefabs: %s sounds: %w", PlayerFile, err)
		}
	}
	if spec.Body.Width <= 0 || spec.Body.Height <= 0 {
		return spec, fmt.Errorf("prefabs: %s: body size must be positive", PlayerFile)
	}
	if err := spec.Movement.Validate(); err != nil {
		return spec, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return spec, nil
}

// decodeInto overlays raw onto an already populated value.
func decodeInto[T any](raw any, out *T) error {
	b, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}
