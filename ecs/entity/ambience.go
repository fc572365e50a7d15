package entity

import (
	"fmt"

	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/parallax"
)

// NewParallax creates the background layer field.
func NewParallax(w *ecs.World, cfg parallax.Config) (ecs.Entity, error) {
	field, err := parallax.NewField(cfg)
	if err != nil {
		return 0, fmt.Errorf("parallax: %w", err)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ParallaxComponent, &component.Parallax{Field: field}); err != nil {
		return 0, fmt.Errorf("parallax: add field: %w", err)
	}
	return e, nil
}

// RequestMusic queues a track change for the music system.
func RequestMusic(w *ecs.World, track string, loop bool) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MusicRequestComponent, &component.MusicRequest{Track: track, Loop: loop}); err != nil {
		return fmt.Errorf("music: add request: %w", err)
	}
	return nil
}
