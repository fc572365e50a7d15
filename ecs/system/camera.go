package system

import (
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/movement"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
	dt           float64
}

func NewCameraSystem(dt float64) *CameraSystem {
	return &CameraSystem{dt: dt}
}

// Update eases the camera entity toward its target's transform.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !cs.camEntity.Valid() || !ecs.IsAlive(w, cs.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent); ok {
			cs.camEntity = camEntity
		}
	}
	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok || camComp.Follower == nil {
		return
	}

	if !cs.targetEntity.Valid() || !ecs.IsAlive(w, cs.targetEntity) {
		if targetEntity := findEntityByNameOrTag(w, camComp.TargetName); targetEntity.Valid() {
			cs.targetEntity = targetEntity
		}
	}

	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}
	pos := camComp.Follower.Update(movement.Vec2{X: target.X, Y: target.Y}, cs.dt)
	if camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent); ok {
		camTransform.X = pos.X
		camTransform.Y = pos.Y
	}
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" {
		if e, ok := ecs.First(w, component.PlayerTagComponent); ok {
			return e
		}
	}
	return 0
}
