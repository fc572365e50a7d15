package system

import (
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/physics"
)

// killPlaneMargin is how far below the level floor a body may fall before it
// counts as lost.
const killPlaneMargin = 4.0

// PhysicsSystem steps the physics world, copies the body back into the
// player's transform and controller, and turns hazard contact into a
// respawn request.
type PhysicsSystem struct {
	phys physics.World
	dt   float64
}

func NewPhysicsSystem(phys physics.World, dt float64) *PhysicsSystem {
	return &PhysicsSystem{phys: phys, dt: dt}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || s.phys == nil {
		return
	}
	s.phys.Step(s.dt)
	hit := s.phys.TakeHazardHit()

	ecs.ForEach2(w, component.PlayerComponent, component.TransformComponent, func(e ecs.Entity, p *component.Player, t *component.Transform) {
		body := s.phys.PlayerBody()
		t.X, t.Y = body.Center.X, body.Center.Y
		if p.Controller != nil {
			p.Controller.SyncVelocity(s.phys.PlayerVelocity())
		}

		lost := t.Y < -killPlaneMargin
		if hit || lost {
			if ecs.Has(w, e, component.RespawnRequestComponent) {
				return
			}
			p.Deaths++
			w.Events().Push(ecs.Event{Type: ecs.EventHazardHit, Entity: e})
			_ = ecs.Add(w, e, component.RespawnRequestComponent, &component.RespawnRequest{})
			return
		}

		if p.Controller == nil {
			return
		}
		st := p.Controller.State()
		if st.IsGrounded() && !st.IsDashing() {
			if safe, ok := ecs.Get(w, e, component.SafeRespawnComponent); ok {
				safe.X, safe.Y = t.X, t.Y
				safe.Initialized = true
			}
		}
	})
}
