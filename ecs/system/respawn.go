package system

import (
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
)

// RespawnSystem teleports players holding a RespawnRequest to their last
// safe position, or the level spawn, and resets their controller.
type RespawnSystem struct {
	phys physics.World
}

func NewRespawnSystem(phys physics.World) *RespawnSystem {
	return &RespawnSystem{phys: phys}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil || s.phys == nil {
		return
	}
	var pending []ecs.Entity
	ecs.ForEach(w, component.RespawnRequestComponent, func(e ecs.Entity, _ *component.RespawnRequest) {
		pending = append(pending, e)
	})
	for _, e := range pending {
		ecs.Remove(w, e, component.RespawnRequestComponent)
		p, ok := ecs.Get(w, e, component.PlayerComponent)
		if !ok {
			continue
		}
		pos := s.respawnPoint(w, e, p)
		s.phys.SpawnPlayer(pos, movement.Vec2{X: p.Width, Y: p.Height})
		if p.Controller != nil {
			p.Controller.Reset()
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			t.X, t.Y = pos.X, pos.Y
		}
		w.Events().Push(ecs.Event{Type: ecs.EventRespawned, Entity: e, Data: pos})
	}
}

func (s *RespawnSystem) respawnPoint(w *ecs.World, e ecs.Entity, p *component.Player) movement.Vec2 {
	if safe, ok := ecs.Get(w, e, component.SafeRespawnComponent); ok && safe.Initialized {
		return movement.Vec2{X: safe.X, Y: safe.Y}
	}
	if be, ok := ecs.First(w, component.LevelBoundsComponent); ok {
		if b, ok := ecs.Get(w, be, component.LevelBoundsComponent); ok {
			return movement.Vec2{X: b.SpawnX, Y: b.SpawnY + p.Height/2}
		}
	}
	return movement.Vec2{}
}
