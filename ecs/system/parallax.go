package system

import (
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
)

// ParallaxSystem scrolls background fields against the camera's x motion.
type ParallaxSystem struct {
	dt float64
}

func NewParallaxSystem(dt float64) *ParallaxSystem {
	return &ParallaxSystem{dt: dt}
}

func (s *ParallaxSystem) Update(w *ecs.World) {
	cam, ok := ecs.First(w, component.CameraTagComponent)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, cam, component.TransformComponent)
	if !ok {
		return
	}
	ecs.ForEach(w, component.ParallaxComponent, func(e ecs.Entity, p *component.Parallax) {
		p.Field.Update(t.X, s.dt)
	})
}
