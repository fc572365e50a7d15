package entity

import (
	"fmt"

	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/levels"
	"github.com/milk9111/ledgehop/physics"
)

// LoadLevelToWorld hands the level's merged colliders to phys and creates the
// bounds, static tile and goal entities.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, phys physics.World) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}
	width, height := lvl.Size()
	spawn := lvl.Spawn()
	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent, &component.LevelBounds{
		Width:  width,
		Height: height,
		SpawnX: spawn.X,
		SpawnY: spawn.Y,
	}); err != nil {
		return fmt.Errorf("level: add bounds: %w", err)
	}

	rects := lvl.Colliders()
	if phys != nil {
		phys.SetStatics(rects)
	}
	for _, r := range rects {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.StaticTileComponent, &component.StaticTile{Rect: r}); err != nil {
			return fmt.Errorf("level: add tile: %w", err)
		}
	}

	for _, g := range lvl.Goals() {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.GoalComponent, &component.Goal{Bounds: g}); err != nil {
			return fmt.Errorf("level: add goal: %w", err)
		}
	}

	if lvl.Music != "" {
		if err := RequestMusic(w, lvl.Music, true); err != nil {
			return err
		}
	}
	return nil
}
