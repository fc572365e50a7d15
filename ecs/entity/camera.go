package entity

import (
	"fmt"

	"github.com/milk9111/ledgehop/camera"
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/movement"
)

// NewCameraAt creates the camera centered on start, clamped to the level
// bounds when the world has them.
func NewCameraAt(w *ecs.World, cfg camera.Config, target string, start movement.Vec2) (ecs.Entity, error) {
	follower, err := camera.NewFollower(cfg, start)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	if be, ok := ecs.First(w, component.LevelBoundsComponent); ok {
		if b, ok := ecs.Get(w, be, component.LevelBoundsComponent); ok {
			follower.SetBounds(&camera.Bounds{MaxX: b.Width, MaxY: b.Height})
		}
	}
	follower.Snap(start)

	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	pos := follower.Position()
	if err := ecs.Add(w, cam, component.TransformComponent, &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, cam, component.CameraComponent, &component.Camera{
		TargetName: target,
		Follower:   follower,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return cam, nil
}
