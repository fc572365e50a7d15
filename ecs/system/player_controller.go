package system

import (
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/physics"
)

// PlayerControllerSystem runs one controller step per fixed tick and hands
// the resulting velocity to the physics body.
type PlayerControllerSystem struct {
	phys physics.World
	dt   float64
}

func NewPlayerControllerSystem(phys physics.World, dt float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{phys: phys, dt: dt}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || s.phys == nil {
		return
	}
	ecs.ForEach(w, component.PlayerComponent, func(e ecs.Entity, p *component.Player) {
		if p.Controller == nil {
			return
		}
		v := p.Controller.Step(s.dt, s.phys.PlayerBody())
		s.phys.SetPlayerVelocity(v)
	})
}
